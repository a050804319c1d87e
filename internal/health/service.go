// Package health aggregates document load status and store reachability.
package health

import (
	"context"

	"github.com/Zachkp/folio/internal/loader"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates everything loaded and the store answers.
	Healthy Status = "ok"
	// Starting indicates at least one document set is still loading.
	Starting Status = "starting"
	// Degraded indicates a failed load or an unreachable store.
	Degraded Status = "degraded"
)

// StatusSource reports a document set's load status.
type StatusSource interface {
	Status() loader.Status
}

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Report aggregates per-component results.
type Report struct {
	Status Status            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	documents map[string]StatusSource
	store     Pinger
}

// New creates a Service. store can be nil.
func New(documents map[string]StatusSource, store Pinger) *Service {
	return &Service{documents: documents, store: store}
}

// Check inspects every component.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]string, len(s.documents)+1)
	status := Healthy

	for name, src := range s.documents {
		st := src.Status()
		checks[name] = st.String()
		switch st {
		case loader.Failed:
			status = Degraded
		case loader.Pending:
			if status == Healthy {
				status = Starting
			}
		}
	}

	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			checks["preferences"] = "error"
			status = Degraded
		} else {
			checks["preferences"] = "ok"
		}
	}

	return Report{Status: status, Checks: checks}
}
