package service

import (
	"context"
	"strings"
	"time"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/unitofwork"
	"hr-chatbot-be/pkg/events"
	pktNats "hr-chatbot-be/pkg/nats"

	"github.com/google/uuid"
)

type IAuditService interface {
	Start() error
}

// auditService drains the audit stream into system_logs so operator actions
// and security-relevant events survive log rotation.
type auditService struct {
	subscriber *pktNats.Subscriber
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuditService(
	subscriber *pktNats.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IAuditService {
	return &auditService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (s *auditService) Start() error {
	return s.subscriber.Subscribe("audit.>", "audit-logger", s.handle)
}

func (s *auditService) handle(ctx context.Context, event events.Event) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.SystemLog{
		Id:        uuid.New(),
		Level:     "info",
		Module:    "audit",
		Message:   strings.TrimPrefix(event.EventType(), "audit."),
		Details:   event.Payload(),
		CreatedAt: time.Now(),
	}

	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		s.logger.Error("audit", "failed to persist audit event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
		return err
	}
	return nil
}
