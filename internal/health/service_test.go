package health

import (
	"context"
	"errors"
	"testing"

	"github.com/Zachkp/folio/internal/loader"
)

// --- Mocks ---

type fixedStatus loader.Status

func (f fixedStatus) Status() loader.Status { return loader.Status(f) }

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(map[string]StatusSource{
		"recipes":   fixedStatus(loader.Loaded),
		"portfolio": fixedStatus(loader.Loaded),
	}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["recipes"] != "loaded" {
		t.Errorf("expected recipes loaded, got %q", r.Checks["recipes"])
	}
	if r.Checks["preferences"] != "ok" {
		t.Errorf("expected preferences ok, got %q", r.Checks["preferences"])
	}
}

func TestCheck_Pending(t *testing.T) {
	svc := New(map[string]StatusSource{
		"recipes":   fixedStatus(loader.Pending),
		"portfolio": fixedStatus(loader.Loaded),
	}, nil)
	r := svc.Check(context.Background())

	if r.Status != Starting {
		t.Errorf("expected %q, got %q", Starting, r.Status)
	}
	if _, ok := r.Checks["preferences"]; ok {
		t.Error("expected no preferences check without a store")
	}
}

func TestCheck_FailedOutranksPending(t *testing.T) {
	svc := New(map[string]StatusSource{
		"recipes":   fixedStatus(loader.Failed),
		"portfolio": fixedStatus(loader.Pending),
	}, nil)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
}

func TestCheck_StoreError(t *testing.T) {
	svc := New(map[string]StatusSource{"recipes": fixedStatus(loader.Loaded)}, &mockPinger{err: errors.New("disk I/O error")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["preferences"] != "error" {
		t.Errorf("expected preferences error, got %q", r.Checks["preferences"])
	}
}
