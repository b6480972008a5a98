package service

import (
	"context"
	"sort"
	"time"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/specification"
	"hr-chatbot-be/internal/repository/unitofwork"
	"hr-chatbot-be/pkg/events"
	pktNats "hr-chatbot-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GetContexts(ctx context.Context) ([]*dto.PromptContextResponse, error)
	CreateContext(ctx context.Context, req *dto.CreatePromptContextRequest) (*dto.PromptContextResponse, error)
	ActivateContext(ctx context.Context, contextId uuid.UUID) error
	DeactivateContext(ctx context.Context, contextId uuid.UUID) error
	DeleteContext(ctx context.Context, contextId uuid.UUID) error
	GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	GetUsageStats(ctx context.Context, since time.Time) ([]*dto.UsageStatResponse, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		logger:         sysLogger,
		eventPublisher: eventPublisher,
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSessions, err := uow.ChatSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSessions, err := uow.ChatSessionRepository().Count(ctx,
		specification.ByState{State: constant.ChatSessionStateActive})
	if err != nil {
		return nil, err
	}
	totalMessages, err := uow.ChatMessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	blockedQuestions, err := uow.BlockedQuestionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().Truncate(24 * time.Hour)
	messagesToday, err := uow.UsageStatRepository().SumMessages(ctx,
		specification.Filter("day", today))
	if err != nil {
		return nil, err
	}

	recentSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "started_at", Desc: true},
		specification.Pagination{Limit: 5})
	if err != nil {
		return nil, err
	}
	recentBlocked, err := uow.BlockedQuestionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5})
	if err != nil {
		return nil, err
	}
	frequentTerms, err := s.frequentTerms(ctx, uow, 5)
	if err != nil {
		return nil, err
	}
	activeContext, err := uow.PromptContextRepository().FindOne(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	res := &dto.DashboardResponse{
		TotalUsers:       totalUsers,
		TotalSessions:    totalSessions,
		ActiveSessions:   activeSessions,
		TotalMessages:    totalMessages,
		BlockedQuestions: blockedQuestions,
		MessagesToday:    messagesToday,
		RecentSessions:   make([]dto.RecentSessionResponse, 0, len(recentSessions)),
		RecentBlocked:    make([]dto.RecentBlockedResponse, 0, len(recentBlocked)),
		FrequentTerms:    frequentTerms,
	}
	for _, session := range recentSessions {
		res.RecentSessions = append(res.RecentSessions, dto.RecentSessionResponse{
			Id:        session.Id,
			Name:      session.Name,
			State:     session.State,
			StartedAt: session.StartedAt,
		})
	}
	for _, blocked := range recentBlocked {
		res.RecentBlocked = append(res.RecentBlocked, dto.RecentBlockedResponse{
			Question:  blocked.Question,
			Reason:    blocked.Reason,
			CreatedAt: blocked.CreatedAt,
		})
	}
	if activeContext != nil {
		res.ActiveContext = activeContext.Name
	}
	return res, nil
}

func (s *adminService) frequentTerms(ctx context.Context, uow unitofwork.UnitOfWork, top int) ([]dto.TermFrequencyResponse, error) {
	terms, err := uow.ExcludedTermRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, t := range terms {
		counts[t.Term]++
	}
	result := make([]dto.TermFrequencyResponse, 0, len(counts))
	for term, count := range counts {
		result = append(result, dto.TermFrequencyResponse{Term: term, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Term < result[j].Term
	})
	if len(result) > top {
		result = result[:top]
	}
	return result, nil
}

func (s *adminService) GetContexts(ctx context.Context) ([]*dto.PromptContextResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contexts, err := uow.PromptContextRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PromptContextResponse, 0, len(contexts))
	for _, c := range contexts {
		result = append(result, toContextResponse(c))
	}
	return result, nil
}

func (s *adminService) CreateContext(ctx context.Context, req *dto.CreatePromptContextRequest) (*dto.PromptContextResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	promptContext := &entity.PromptContext{
		Id:           uuid.New(),
		Name:         req.Name,
		SystemPrompt: req.SystemPrompt,
		Active:       false,
		CreatedAt:    time.Now(),
	}
	if err := uow.PromptContextRepository().Create(ctx, promptContext); err != nil {
		return nil, err
	}
	return toContextResponse(promptContext), nil
}

// ActivateContext switches the single active context. Deactivation of every
// other row and activation of the chosen one commit together.
func (s *adminService) ActivateContext(ctx context.Context, contextId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	promptContext, err := uow.PromptContextRepository().FindOne(ctx, specification.ByID{ID: contextId})
	if err != nil {
		return err
	}
	if promptContext == nil {
		return fiber.NewError(fiber.StatusNotFound, "context not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PromptContextRepository().DeactivateAll(ctx); err != nil {
		return err
	}
	promptContext.Active = true
	if err := uow.PromptContextRepository().Update(ctx, promptContext); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NewEvent(events.TypeContextActivated, map[string]interface{}{
			"context_id": contextId.String(),
			"name":       promptContext.Name,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("admin", "failed to publish context activation event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}

func (s *adminService) DeactivateContext(ctx context.Context, contextId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	promptContext, err := uow.PromptContextRepository().FindOne(ctx, specification.ByID{ID: contextId})
	if err != nil {
		return err
	}
	if promptContext == nil {
		return fiber.NewError(fiber.StatusNotFound, "context not found")
	}
	if !promptContext.Active {
		return nil
	}

	promptContext.Active = false
	return uow.PromptContextRepository().Update(ctx, promptContext)
}

func (s *adminService) DeleteContext(ctx context.Context, contextId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	promptContext, err := uow.PromptContextRepository().FindOne(ctx, specification.ByID{ID: contextId})
	if err != nil {
		return err
	}
	if promptContext == nil {
		return fiber.NewError(fiber.StatusNotFound, "context not found")
	}
	return uow.PromptContextRepository().Delete(ctx, contextId)
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) GetUsageStats(ctx context.Context, since time.Time) ([]*dto.UsageStatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.UsageStatRepository().FindAll(ctx,
		specification.OrderBy{Field: "day", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UsageStatResponse, 0, len(stats))
	for _, stat := range stats {
		if stat.Day.Before(since) {
			continue
		}
		result = append(result, &dto.UsageStatResponse{
			UserId:   stat.UserId,
			Day:      stat.Day,
			Messages: stat.Messages,
			Blocked:  stat.Blocked,
		})
	}
	return result, nil
}

func toContextResponse(c *entity.PromptContext) *dto.PromptContextResponse {
	return &dto.PromptContextResponse{
		Id:           c.Id,
		Name:         c.Name,
		SystemPrompt: c.SystemPrompt,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
