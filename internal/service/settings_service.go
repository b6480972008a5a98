package service

import (
	"context"
	"strings"
	"time"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/specification"
	"hr-chatbot-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISettingsService interface {
	GetExcludedTerms(ctx context.Context, userId uuid.UUID) ([]*dto.ExcludedTermResponse, error)
	AddExcludedTerm(ctx context.Context, userId uuid.UUID, req *dto.AddExcludedTermRequest) (*dto.ExcludedTermResponse, error)
	RemoveExcludedTerm(ctx context.Context, userId uuid.UUID, termId uuid.UUID) error
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory) ISettingsService {
	return &settingsService{uowFactory: uowFactory}
}

func (s *settingsService) GetExcludedTerms(ctx context.Context, userId uuid.UUID) ([]*dto.ExcludedTermResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	terms, err := uow.ExcludedTermRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ExcludedTermResponse, 0, len(terms))
	for _, term := range terms {
		result = append(result, &dto.ExcludedTermResponse{
			Id:        term.Id,
			Term:      term.Term,
			CreatedAt: term.CreatedAt,
		})
	}
	return result, nil
}

func (s *settingsService) AddExcludedTerm(ctx context.Context, userId uuid.UUID, req *dto.AddExcludedTermRequest) (*dto.ExcludedTermResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Terms are stored lowercase, one per user
	normalized := strings.ToLower(strings.TrimSpace(req.Term))
	if normalized == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "term cannot be empty")
	}

	existing, err := uow.ExcludedTermRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByTerm{Term: normalized},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "term already excluded")
	}

	term := &entity.ExcludedTerm{
		Id:        uuid.New(),
		UserId:    userId,
		Term:      normalized,
		CreatedAt: time.Now(),
	}
	if err := uow.ExcludedTermRepository().Create(ctx, term); err != nil {
		return nil, err
	}

	return &dto.ExcludedTermResponse{
		Id:        term.Id,
		Term:      term.Term,
		CreatedAt: term.CreatedAt,
	}, nil
}

func (s *settingsService) RemoveExcludedTerm(ctx context.Context, userId uuid.UUID, termId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	term, err := uow.ExcludedTermRepository().FindOne(ctx,
		specification.ByID{ID: termId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if term == nil {
		return fiber.NewError(fiber.StatusNotFound, "term not found")
	}

	return uow.ExcludedTermRepository().Delete(ctx, term.Id)
}
