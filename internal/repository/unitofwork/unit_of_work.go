package unitofwork

import (
	"context"

	"hr-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	BlockedQuestionRepository() contract.BlockedQuestionRepository
	SnapshotRepository() contract.SnapshotRepository

	ExcludedTermRepository() contract.ExcludedTermRepository
	PromptContextRepository() contract.PromptContextRepository

	SystemLogRepository() contract.SystemLogRepository
	UsageStatRepository() contract.UsageStatRepository

	DatasetRepository() contract.DatasetRepository
	QueryRunner() contract.QueryRunner
}
