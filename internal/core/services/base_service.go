package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Location is the regional timezone new timestamps are expressed in.
	Location *time.Location
	// Clock is overridden in tests.
	Clock func() time.Time
}

// Now returns the current time in the configured location.
func (s *BaseService) Now() time.Time {
	now := time.Now
	if s.Clock != nil {
		now = s.Clock
	}
	if s.Location == nil {
		return now()
	}
	return now().In(s.Location)
}

// GetLogger gets the request scoped logger from context, falling back to the global one.
func (s *BaseService) GetLogger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, fields map[string]any) {
	s.GetLogger(ctx).Error().Err(err).Fields(fields).Msg(msg)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, fields map[string]any) {
	s.GetLogger(ctx).Info().Fields(fields).Msg(msg)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, fields map[string]any) {
	s.GetLogger(ctx).Debug().Fields(fields).Msg(msg)
}
