package prefs

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/logger"
)

// KV is the persistence behind the theme service.
type KV interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Set(ctx context.Context, visitorID, key, value string) error
}

// Service reads and flips a visitor's theme. Persistence failures are logged
// and never fail the request; the caller's cookie copy still applies.
type Service struct {
	kv KV
}

// NewService creates a Service. kv may be nil, in which case only the
// caller-supplied cookie value is used.
func NewService(kv KV) *Service {
	return &Service{kv: kv}
}

// Current resolves the visitor's theme from the store, then the cookie copy,
// then the system hint.
func (s *Service) Current(ctx context.Context, visitorID, cookie, system string) Theme {
	return Resolve(s.stored(ctx, visitorID, cookie), system)
}

// Toggle flips the visitor's current theme and persists the new value.
func (s *Service) Toggle(ctx context.Context, visitorID, cookie, system string) Theme {
	next := s.Current(ctx, visitorID, cookie, system).Toggle()
	if s.kv != nil && visitorID != "" {
		if err := s.kv.Set(ctx, visitorID, ThemeKey, string(next)); err != nil {
			logger.FromContext(ctx).Warn("persist theme", zap.Error(err))
		}
	}
	return next
}

func (s *Service) stored(ctx context.Context, visitorID, cookie string) string {
	if s.kv == nil || visitorID == "" {
		return cookie
	}
	v, err := s.kv.Get(ctx, visitorID, ThemeKey)
	if err != nil {
		logger.FromContext(ctx).Warn("load theme", zap.Error(err))
		return cookie
	}
	if v == "" {
		return cookie
	}
	return v
}
