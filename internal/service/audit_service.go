package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hotel-booking-service/internal/events"
)

// AuditService records entity-change events as structured log entries so every
// write carries a who/what/when trail beyond the createdBy/modifiedBy columns.
type AuditService struct {
	logger     *zap.Logger
	dispatcher events.Dispatcher
}

// NewAuditService builds the service.
func NewAuditService(logger *zap.Logger, dispatcher events.Dispatcher) *AuditService {
	return &AuditService{logger: logger, dispatcher: dispatcher}
}

// RegisterHandlers subscribes the audit recorder to all entity-change events.
func (s *AuditService) RegisterHandlers() {
	for _, t := range []events.EventType{
		events.EventEntityCreated,
		events.EventEntityUpdated,
		events.EventEntityDeleted,
		events.EventEntityStatusToggled,
		events.EventRoleAssigned,
	} {
		s.dispatcher.Subscribe(t, s.record)
	}
}

func (s *AuditService) record(_ context.Context, e events.Event) error {
	s.logger.Info("audit",
		zap.String("event_id", e.ID),
		zap.String("type", string(e.Type)),
		zap.String("entity", e.Entity),
		zap.Int("entity_id", e.EntityID),
		zap.String("actor", e.Actor),
		zap.Time("at", e.Timestamp),
		zap.String("detail", e.Detail),
	)
	return nil
}
