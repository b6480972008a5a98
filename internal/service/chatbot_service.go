package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/memory"
	"hr-chatbot-be/internal/repository/specification"
	"hr-chatbot-be/internal/repository/unitofwork"
	"hr-chatbot-be/pkg/events"
	"hr-chatbot-be/pkg/llm"
	pktNats "hr-chatbot-be/pkg/nats"
	"hr-chatbot-be/pkg/pipeline/executor"
	"hr-chatbot-be/pkg/pipeline/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetSessionDetail(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, question string) (*dto.SendMessageResponse, error)
	FinalizeSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	CanDeleteSession(ctx context.Context, sessionId uuid.UUID) (bool, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	GetSourceData(ctx context.Context, userId uuid.UUID, messageId uuid.UUID) (*dto.SourceDataResponse, error)
}

type chatbotService struct {
	uowFactory     unitofwork.RepositoryFactory
	pipeline       *executor.Executor
	validator      *validator.Validator
	refStore       *memory.ReferenceStore
	logger         logger.ILogger
	usagePublisher IPublisherService
	eventPublisher *pktNats.Publisher
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	pipeline *executor.Executor,
	questionValidator *validator.Validator,
	refStore *memory.ReferenceStore,
	sysLogger logger.ILogger,
	usagePublisher IPublisherService,
	eventPublisher *pktNats.Publisher,
) IChatbotService {
	return &chatbotService{
		uowFactory:     uowFactory,
		pipeline:       pipeline,
		validator:      questionValidator,
		refStore:       refStore,
		logger:         sysLogger,
		usagePublisher: usagePublisher,
		eventPublisher: eventPublisher,
	}
}

func (s *chatbotService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      "Sesión nueva",
		State:     constant.ChatSessionStateActive,
		StartedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.publishAudit(ctx, events.TypeSessionCreated, map[string]interface{}{
		"session_id": session.Id.String(),
		"user_id":    userId.String(),
	})

	return &dto.CreateSessionResponse{
		Id:   session.Id,
		Name: session.Name,
	}, nil
}

func (s *chatbotService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "started_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		blockedCount, err := uow.BlockedQuestionRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.GetAllSessionsResponse{
			Id:         session.Id,
			Name:       session.Name,
			State:      session.State,
			StartedAt:  session.StartedAt,
			EndedAt:    session.EndedAt,
			HasBlocked: blockedCount > 0,
		})
	}
	return result, nil
}

func (s *chatbotService) GetSessionDetail(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		item := &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Sender:    msg.Sender,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		}
		if msg.Metadata != nil {
			item.Metadata = &dto.MessageMetadataDTO{
				Kind: msg.Metadata.Kind,
				Ids:  msg.Metadata.Ids,
			}
		}
		if msg.Sender == constant.ChatMessageSenderAssistant {
			snapshot, err := uow.SnapshotRepository().FindOne(ctx, specification.ByMessageID{MessageID: msg.Id})
			if err != nil {
				return nil, err
			}
			item.HasSnapshot = snapshot != nil
		}
		result = append(result, item)
	}

	activeContext, err := uow.PromptContextRepository().FindOne(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	contextName := ""
	if activeContext != nil {
		contextName = activeContext.Name
	}

	return &dto.SessionDetailResponse{
		Id:            session.Id,
		Name:          session.Name,
		State:         session.State,
		StartedAt:     session.StartedAt,
		EndedAt:       session.EndedAt,
		ActiveContext: contextName,
		Messages:      result,
	}, nil
}

func (s *chatbotService) SendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, question string) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session.State == constant.ChatSessionStateFinalized {
		return nil, fiber.NewError(fiber.StatusConflict, "session is finalized")
	}

	// Persist the user message first. It survives whatever happens next.
	if err := s.persistUserMessage(ctx, uow, session, question); err != nil {
		return nil, err
	}

	valid, reason := s.validator.Validate(question)
	if !valid {
		if err := s.persistBlocked(ctx, uow, session, question, reason); err != nil {
			return nil, err
		}
		s.publishUsage(ctx, userId, true)
		s.publishAudit(ctx, events.TypeQuestionBlocked, map[string]interface{}{
			"session_id": session.Id.String(),
			"reason":     reason,
		})
		return &dto.SendMessageResponse{
			SessionId:   session.Id,
			SessionName: session.Name,
			Success:     false,
			Answer:      constant.WarningOffTopic,
		}, nil
	}

	excluded, err := s.loadExcludedTerms(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	history, err := s.loadHistory(ctx, uow, session.Id)
	if err != nil {
		return nil, err
	}
	customContext, err := s.loadActiveContext(ctx, uow)
	if err != nil {
		return nil, err
	}

	var prior *executor.Reference
	if ref, ok := s.refStore.Get(session.Id); ok {
		prior = &executor.Reference{Kind: ref.Kind, Ids: ref.Ids}
	}

	result, err := s.pipeline.Run(ctx, question, history, excluded, customContext, prior)
	if err != nil {
		if errors.Is(err, executor.ErrInvalidQuery) {
			if err := s.persistWarning(ctx, uow, session.Id, constant.WarningInvalidQuery); err != nil {
				return nil, err
			}
			s.publishUsage(ctx, userId, false)
			return &dto.SendMessageResponse{
				SessionId:   session.Id,
				SessionName: session.Name,
				Success:     false,
				Answer:      constant.WarningInvalidQuery,
			}, nil
		}
		s.logger.Error("chatbot", "pipeline failed", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusBadGateway, constant.WarningGenericError)
	}

	assistantMsg, err := s.persistAnswer(ctx, uow, session.Id, result)
	if err != nil {
		return nil, err
	}

	if assistantMsg.Metadata != nil {
		s.refStore.Set(session.Id, assistantMsg.Metadata)
	}
	s.publishUsage(ctx, userId, false)

	res := &dto.SendMessageResponse{
		SessionId:   session.Id,
		SessionName: session.Name,
		Success:     true,
		Answer:      result.Answer,
		HasSnapshot: len(result.Rows) > 0,
		MessageId:   assistantMsg.Id,
	}
	if assistantMsg.Metadata != nil {
		res.Metadata = &dto.MessageMetadataDTO{
			Kind: assistantMsg.Metadata.Kind,
			Ids:  assistantMsg.Metadata.Ids,
		}
	}
	return res, nil
}

func (s *chatbotService) FinalizeSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}
	if session.State == constant.ChatSessionStateFinalized {
		return fiber.NewError(fiber.StatusConflict, "session already finalized")
	}

	now := time.Now()
	session.State = constant.ChatSessionStateFinalized
	session.EndedAt = &now
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return err
	}

	s.publishAudit(ctx, events.TypeSessionFinalized, map[string]interface{}{
		"session_id": session.Id.String(),
	})
	return nil
}

// CanDeleteSession reports whether a session is deletable. Sessions holding
// at least one blocked question are retained as evidence and never removed.
func (s *chatbotService) CanDeleteSession(ctx context.Context, sessionId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	blockedCount, err := uow.BlockedQuestionRepository().Count(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return false, err
	}
	return blockedCount == 0, nil
}

func (s *chatbotService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}

	deletable, err := s.CanDeleteSession(ctx, session.Id)
	if err != nil {
		return err
	}
	if !deletable {
		return fiber.NewError(fiber.StatusConflict,
			"No se puede eliminar esta sesión porque contiene preguntas bloqueadas")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Snapshots hang off messages, clear them first
	if err := uow.SnapshotRepository().DeleteAllBySessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.refStore.Clear(session.Id)
	s.publishAudit(ctx, events.TypeSessionDeleted, map[string]interface{}{
		"session_id": session.Id.String(),
	})
	return nil
}

func (s *chatbotService) GetSourceData(ctx context.Context, userId uuid.UUID, messageId uuid.UUID) (*dto.SourceDataResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message, err := uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "message not found")
	}
	if _, err := s.findOwnedSession(ctx, uow, userId, message.SessionId); err != nil {
		return nil, err
	}

	snapshot, err := uow.SnapshotRepository().FindOne(ctx, specification.ByMessageID{MessageID: messageId})
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "no source data for this message")
	}

	return &dto.SourceDataResponse{
		MessageId: messageId,
		Rows:      snapshot.Rows,
	}, nil
}

// --- internals ---

func (s *chatbotService) findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return session, nil
}

// persistUserMessage stores the inbound message and, when it is the first
// user message of the session, derives the session name from it.
func (s *chatbotService) persistUserMessage(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, question string) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	count, err := uow.ChatMessageRepository().Count(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.Filter("sender", constant.ChatMessageSenderUser),
	)
	if err != nil {
		return err
	}

	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Sender:    constant.ChatMessageSenderUser,
		Content:   question,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		return err
	}

	if count == 0 {
		session.Name = truncateName(question)
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return err
		}
	}

	return uow.Commit()
}

// persistBlocked stores the fixed warning and the evidentiary record in one
// transaction.
func (s *chatbotService) persistBlocked(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, question, reason string) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	warning := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Sender:    constant.ChatMessageSenderAssistant,
		Content:   constant.WarningOffTopic,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, warning); err != nil {
		return err
	}

	blocked := &entity.BlockedQuestion{
		Id:        uuid.New(),
		SessionId: session.Id,
		Question:  question,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if err := uow.BlockedQuestionRepository().Create(ctx, blocked); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *chatbotService) persistWarning(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, warning string) error {
	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		Sender:    constant.ChatMessageSenderAssistant,
		Content:   warning,
		CreatedAt: time.Now(),
	}
	return uow.ChatMessageRepository().Create(ctx, msg)
}

// persistAnswer writes the assistant message, its metadata and the result
// snapshot as one atomic unit.
func (s *chatbotService) persistAnswer(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, result *executor.Result) (*entity.ChatMessage, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		Sender:    constant.ChatMessageSenderAssistant,
		Content:   result.Answer,
		CreatedAt: time.Now(),
	}
	if result.Kind != "" && len(result.Ids) > 0 {
		msg.Metadata = &entity.MessageMetadata{
			Kind: result.Kind,
			Ids:  result.Ids,
		}
	}
	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	if len(result.Rows) > 0 {
		snapshot := &entity.ResultSnapshot{
			Id:        uuid.New(),
			MessageId: msg.Id,
			Rows:      result.Rows,
			CreatedAt: time.Now(),
		}
		if err := uow.SnapshotRepository().Create(ctx, snapshot); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *chatbotService) loadExcludedTerms(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]string, error) {
	terms, err := uow.ExcludedTermRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(terms))
	for _, t := range terms {
		result = append(result, t.Term)
	}
	return result, nil
}

func (s *chatbotService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) ([]llm.Message, error) {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	history := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		role := "assistant"
		if msg.Sender == constant.ChatMessageSenderUser {
			role = "user"
		}
		history = append(history, llm.Message{Role: role, Content: msg.Content})
	}
	return history, nil
}

func (s *chatbotService) loadActiveContext(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	active, err := uow.PromptContextRepository().FindOne(ctx, specification.ActiveOnly{})
	if err != nil {
		return "", err
	}
	if active == nil {
		return "", nil
	}
	return active.SystemPrompt, nil
}

func (s *chatbotService) publishUsage(ctx context.Context, userId uuid.UUID, blocked bool) {
	if s.usagePublisher == nil {
		return
	}
	payload, err := json.Marshal(dto.UsageEventMessage{
		UserId:  userId,
		Blocked: blocked,
		At:      time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.usagePublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish usage event: %v\n", err)
	}
}

func (s *chatbotService) publishAudit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func truncateName(question string) string {
	name := strings.TrimSpace(question)
	if len([]rune(name)) > constant.SessionNameMaxLen {
		name = string([]rune(name)[:constant.SessionNameMaxLen])
	}
	return name
}
