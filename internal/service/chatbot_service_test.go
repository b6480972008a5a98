package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hr-chatbot-be/internal/constant"
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/internal/repository/memory"
	"hr-chatbot-be/internal/repository/specification"
	"hr-chatbot-be/internal/repository/unitofwork"
	"hr-chatbot-be/pkg/llm"
	"hr-chatbot-be/pkg/pipeline/executor"
	"hr-chatbot-be/pkg/pipeline/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory unit of work ---

type fakeUow struct {
	sessions  map[uuid.UUID]*entity.ChatSession
	messages  []*entity.ChatMessage
	blocked   []*entity.BlockedQuestion
	snapshots []*entity.ResultSnapshot
	terms     []*entity.ExcludedTerm
	contexts  []*entity.PromptContext
	users     []*entity.User

	commits   int
	rollbacks int
}

func newFakeUow() *fakeUow {
	return &fakeUow{sessions: make(map[uuid.UUID]*entity.ChatSession)}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { u.commits++; return nil }
func (u *fakeUow) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                       { return &fakeUserRepo{u} }
func (u *fakeUow) SystemLogRepository() contract.SystemLogRepository             { return nil }
func (u *fakeUow) UsageStatRepository() contract.UsageStatRepository             { return nil }
func (u *fakeUow) DatasetRepository() contract.DatasetRepository                 { return nil }
func (u *fakeUow) QueryRunner() contract.QueryRunner                             { return nil }
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository         { return &fakeSessionRepo{u} }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository         { return &fakeMessageRepo{u} }
func (u *fakeUow) BlockedQuestionRepository() contract.BlockedQuestionRepository { return &fakeBlockedRepo{u} }
func (u *fakeUow) SnapshotRepository() contract.SnapshotRepository               { return &fakeSnapshotRepo{u} }
func (u *fakeUow) ExcludedTermRepository() contract.ExcludedTermRepository       { return &fakeTermRepo{u} }
func (u *fakeUow) PromptContextRepository() contract.PromptContextRepository     { return &fakeContextRepo{u} }

type fakeUserRepo struct{ u *fakeUow }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.u.users = append(r.u.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, existing := range r.u.users {
		if existing.Id == user.Id {
			r.u.users[i] = user
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, user := range r.u.users {
		if userMatches(user, specs) {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var result []*entity.User
	for _, user := range r.u.users {
		if userMatches(user, specs) {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func userMatches(user *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if user.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		}
	}
	return true
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeSessionRepo struct{ u *fakeUow }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.u.sessions[session.Id] = session
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	r.u.sessions[session.Id] = session
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.u.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, session := range r.u.sessions {
		if sessionMatches(session, specs) {
			return session, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var result []*entity.ChatSession
	for _, session := range r.u.sessions {
		if sessionMatches(session, specs) {
			result = append(result, session)
		}
	}
	return result, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func sessionMatches(session *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if session.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if session.UserId != s.UserID {
				return false
			}
		case specification.ByState:
			if session.State != s.State {
				return false
			}
		}
	}
	return true
}

type fakeMessageRepo struct{ u *fakeUow }

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.u.messages = append(r.u.messages, message)
	return nil
}

func (r *fakeMessageRepo) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.u.messages[:0]
	for _, msg := range r.u.messages {
		if msg.SessionId != sessionId {
			kept = append(kept, msg)
		}
	}
	r.u.messages = kept
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	for _, msg := range r.u.messages {
		if messageMatches(msg, specs) {
			return msg, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var result []*entity.ChatMessage
	for _, msg := range r.u.messages {
		if messageMatches(msg, specs) {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func messageMatches(msg *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if msg.Id != s.ID {
				return false
			}
		case specification.BySessionID:
			if msg.SessionId != s.SessionID {
				return false
			}
		case specification.FilterBy:
			if s.Field == "sender" && msg.Sender != s.Value {
				return false
			}
		}
	}
	return true
}

type fakeBlockedRepo struct{ u *fakeUow }

func (r *fakeBlockedRepo) Create(ctx context.Context, blocked *entity.BlockedQuestion) error {
	r.u.blocked = append(r.u.blocked, blocked)
	return nil
}

func (r *fakeBlockedRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlockedQuestion, error) {
	var result []*entity.BlockedQuestion
	for _, b := range r.u.blocked {
		if blockedMatches(b, specs) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBlockedRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func blockedMatches(b *entity.BlockedQuestion, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.BySessionID); ok && b.SessionId != s.SessionID {
			return false
		}
	}
	return true
}

type fakeSnapshotRepo struct{ u *fakeUow }

func (r *fakeSnapshotRepo) Create(ctx context.Context, snapshot *entity.ResultSnapshot) error {
	r.u.snapshots = append(r.u.snapshots, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	byMessage := make(map[uuid.UUID]bool)
	for _, msg := range r.u.messages {
		if msg.SessionId == sessionId {
			byMessage[msg.Id] = true
		}
	}
	kept := r.u.snapshots[:0]
	for _, snap := range r.u.snapshots {
		if !byMessage[snap.MessageId] {
			kept = append(kept, snap)
		}
	}
	r.u.snapshots = kept
	return nil
}

func (r *fakeSnapshotRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResultSnapshot, error) {
	for _, snap := range r.u.snapshots {
		matched := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByMessageID); ok && snap.MessageId != s.MessageID {
				matched = false
			}
		}
		if matched {
			return snap, nil
		}
	}
	return nil, nil
}

type fakeTermRepo struct{ u *fakeUow }

func (r *fakeTermRepo) Create(ctx context.Context, term *entity.ExcludedTerm) error {
	r.u.terms = append(r.u.terms, term)
	return nil
}

func (r *fakeTermRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeTermRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExcludedTerm, error) {
	return nil, nil
}

func (r *fakeTermRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExcludedTerm, error) {
	return r.u.terms, nil
}

type fakeContextRepo struct{ u *fakeUow }

func (r *fakeContextRepo) Create(ctx context.Context, promptContext *entity.PromptContext) error {
	r.u.contexts = append(r.u.contexts, promptContext)
	return nil
}

func (r *fakeContextRepo) Update(ctx context.Context, promptContext *entity.PromptContext) error {
	for i, c := range r.u.contexts {
		if c.Id == promptContext.Id {
			r.u.contexts[i] = promptContext
			return nil
		}
	}
	return nil
}

func (r *fakeContextRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range r.u.contexts {
		if c.Id == id {
			r.u.contexts = append(r.u.contexts[:i], r.u.contexts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeContextRepo) DeactivateAll(ctx context.Context) error {
	for _, c := range r.u.contexts {
		c.Active = false
	}
	return nil
}

func (r *fakeContextRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptContext, error) {
	for _, c := range r.u.contexts {
		if contextMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func contextMatches(c *entity.PromptContext, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !c.Active {
				return false
			}
		}
	}
	return true
}

func (r *fakeContextRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptContext, error) {
	return r.u.contexts, nil
}

// --- pipeline fakes ---

type scriptedProvider struct {
	responses []string
	prompts   []string
	calls     int
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		p.prompts = append(p.prompts, history[0].Content)
	}
	if p.calls >= len(p.responses) {
		return "", errors.New("no scripted response")
	}
	resp := p.responses[p.calls]
	p.calls++
	return resp, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, nil, options...)
}

type staticRunner struct {
	rows []map[string]interface{}
}

func (r *staticRunner) Execute(ctx context.Context, query string) ([]map[string]interface{}, error) {
	return r.rows, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

type capturedUsage struct {
	payloads [][]byte
}

func (c *capturedUsage) Publish(ctx context.Context, payload []byte) error {
	c.payloads = append(c.payloads, payload)
	return nil
}

// --- helpers ---

func newTestService(uow *fakeUow, provider *scriptedProvider, rows []map[string]interface{}) (IChatbotService, *capturedUsage) {
	usage := &capturedUsage{}
	pipeline := executor.New(provider, &staticRunner{rows: rows}, 1000)
	svc := NewChatbotService(
		&fakeFactory{uow: uow},
		pipeline,
		validator.New(),
		memory.NewReferenceStore(time.Minute),
		nopLogger{},
		usage,
		nil,
	)
	return svc, usage
}

func seedSession(uow *fakeUow, userId uuid.UUID, state string) *entity.ChatSession {
	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      "Sesión nueva",
		State:     state,
		StartedAt: time.Now(),
	}
	uow.sessions[session.Id] = session
	return session
}

// --- tests ---

func TestSendMessageAnswers(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	provider := &scriptedProvider{responses: []string{
		"SELECT c.id_contrato FROM contrato c LIMIT 100",
		"El contrato con mayor honorario es el 7.\n{\"id_contrato\": [7]}",
	}}
	rows := []map[string]interface{}{{"id_contrato": int64(7)}}
	svc, usage := newTestService(uow, provider, rows)

	res, err := svc.SendMessage(context.Background(), userId, session.Id, "cuál es el contrato con mayor honorario")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "El contrato con mayor honorario es el 7.", res.Answer)
	assert.True(t, res.HasSnapshot)
	require.NotNil(t, res.Metadata)
	assert.Equal(t, "id_contrato", res.Metadata.Kind)
	assert.Equal(t, []int64{7}, res.Metadata.Ids)

	// user question plus assistant answer persisted
	assert.Len(t, uow.messages, 2)
	assert.Equal(t, constant.ChatMessageSenderUser, uow.messages[0].Sender)
	assert.Equal(t, constant.ChatMessageSenderAssistant, uow.messages[1].Sender)
	assert.Len(t, uow.snapshots, 1)
	assert.Len(t, usage.payloads, 1)
}

func TestSendMessageNamesSessionFromFirstQuestion(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	provider := &scriptedProvider{responses: []string{
		"SELECT id_contrato FROM contrato",
		"No se encontró información.",
	}}
	svc, _ := newTestService(uow, provider, nil)

	question := strings.Repeat("honorarios de contratos por región ", 5)
	_, err := svc.SendMessage(context.Background(), userId, session.Id, question)
	require.NoError(t, err)

	assert.Len(t, []rune(session.Name), constant.SessionNameMaxLen)
	assert.Equal(t, string([]rune(question)[:constant.SessionNameMaxLen]), session.Name)
}

func TestSendMessageTrimsWhitespaceFromSessionName(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	provider := &scriptedProvider{responses: []string{
		"SELECT id_contrato FROM contrato",
		"No se encontró información.",
	}}
	svc, _ := newTestService(uow, provider, nil)

	_, err := svc.SendMessage(context.Background(), userId, session.Id, "   cuánto se pagó en abril  \n")
	require.NoError(t, err)

	assert.Equal(t, "cuánto se pagó en abril", session.Name)
}

func TestSendMessageCarriesPriorReferenceToFollowUp(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	provider := &scriptedProvider{responses: []string{
		"SELECT c.id_contrato FROM contrato c ORDER BY c.honorario_total_bruto DESC LIMIT 100",
		"Los contratos con mayor honorario son el 12 y el 15.\n{\"id_contrato\": [12, 15]}",
		"SELECT c.id_contrato FROM contrato c WHERE c.id_contrato IN (12, 15)",
		"Aquí está el detalle de los contratos anteriores.",
	}}
	rows := []map[string]interface{}{
		{"id_contrato": int64(12)},
		{"id_contrato": int64(15)},
	}
	svc, _ := newTestService(uow, provider, rows)

	_, err := svc.SendMessage(context.Background(), userId, session.Id, "dame el top de honorarios")
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), userId, session.Id, "muestra el detalle de los anteriores")
	require.NoError(t, err)

	// prompts: first generation, first composition, second generation, second
	// composition. Only the second generation sees the cached reference.
	require.Len(t, provider.prompts, 4)
	assert.NotContains(t, provider.prompts[0], "id_contrato = [")
	assert.Contains(t, provider.prompts[2], "id_contrato = [12, 15]")
}

func TestSendMessageBlocksOffTopicQuestion(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	provider := &scriptedProvider{}
	svc, usage := newTestService(uow, provider, nil)

	res, err := svc.SendMessage(context.Background(), userId, session.Id, "cuánto cuesta cocinar un pastel de papas")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, constant.WarningOffTopic, res.Answer)
	assert.Zero(t, provider.calls)

	require.Len(t, uow.blocked, 1)
	assert.Equal(t, validator.ReasonOutOfContext, uow.blocked[0].Reason)
	assert.Len(t, usage.payloads, 1)

	// user question and the fixed warning both persisted
	assert.Len(t, uow.messages, 2)
	assert.Equal(t, constant.WarningOffTopic, uow.messages[1].Content)
}

func TestSendMessageWarnsOnRejectedSql(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	provider := &scriptedProvider{responses: []string{
		"DROP TABLE contrato",
	}}
	svc, _ := newTestService(uow, provider, nil)

	res, err := svc.SendMessage(context.Background(), userId, session.Id, "dame los honorarios de abril")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, constant.WarningInvalidQuery, res.Answer)
	// no evidentiary record for a bad generation, only the warning message
	assert.Empty(t, uow.blocked)
	assert.Equal(t, constant.WarningInvalidQuery, uow.messages[len(uow.messages)-1].Content)
}

func TestSendMessageRejectsFinalizedSession(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateFinalized)

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	_, err := svc.SendMessage(context.Background(), userId, session.Id, "dame los honorarios")

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
	assert.Empty(t, uow.messages)
}

func TestSendMessageRejectsForeignSession(t *testing.T) {
	uow := newFakeUow()
	owner := uuid.New()
	session := seedSession(uow, owner, constant.ChatSessionStateActive)

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	_, err := svc.SendMessage(context.Background(), uuid.New(), session.Id, "dame los honorarios")

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestDeleteSessionRefusesWithBlockedQuestions(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)
	uow.blocked = append(uow.blocked, &entity.BlockedQuestion{
		Id:        uuid.New(),
		SessionId: session.Id,
		Question:  "pregunta bloqueada",
		Reason:    validator.ReasonOutOfContext,
		CreatedAt: time.Now(),
	})

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	deletable, derr := svc.CanDeleteSession(context.Background(), session.Id)
	require.NoError(t, derr)
	assert.False(t, deletable)

	err := svc.DeleteSession(context.Background(), userId, session.Id)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "preguntas bloqueadas")
	assert.Contains(t, uow.sessions, session.Id)
}

func TestDeleteSessionRemovesMessagesAndSnapshots(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	msg := &entity.ChatMessage{Id: uuid.New(), SessionId: session.Id, Sender: constant.ChatMessageSenderAssistant}
	uow.messages = append(uow.messages, msg)
	uow.snapshots = append(uow.snapshots, &entity.ResultSnapshot{Id: uuid.New(), MessageId: msg.Id})

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	deletable, derr := svc.CanDeleteSession(context.Background(), session.Id)
	require.NoError(t, derr)
	assert.True(t, deletable)

	require.NoError(t, svc.DeleteSession(context.Background(), userId, session.Id))

	assert.NotContains(t, uow.sessions, session.Id)
	assert.Empty(t, uow.messages)
	assert.Empty(t, uow.snapshots)
}

func TestFinalizeSession(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	require.NoError(t, svc.FinalizeSession(context.Background(), userId, session.Id))
	assert.Equal(t, constant.ChatSessionStateFinalized, session.State)
	require.NotNil(t, session.EndedAt)

	err := svc.FinalizeSession(context.Background(), userId, session.Id)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
}

func TestGetSourceData(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	session := seedSession(uow, userId, constant.ChatSessionStateActive)

	msg := &entity.ChatMessage{Id: uuid.New(), SessionId: session.Id, Sender: constant.ChatMessageSenderAssistant}
	uow.messages = append(uow.messages, msg)
	rows := []map[string]interface{}{{"id_contrato": int64(3), "honorario_total_bruto": int64(900000)}}
	uow.snapshots = append(uow.snapshots, &entity.ResultSnapshot{Id: uuid.New(), MessageId: msg.Id, Rows: rows})

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	res, err := svc.GetSourceData(context.Background(), userId, msg.Id)
	require.NoError(t, err)
	assert.Equal(t, msg.Id, res.MessageId)
	assert.Equal(t, rows, res.Rows)

	// message without snapshot
	bare := &entity.ChatMessage{Id: uuid.New(), SessionId: session.Id, Sender: constant.ChatMessageSenderAssistant}
	uow.messages = append(uow.messages, bare)

	_, err = svc.GetSourceData(context.Background(), userId, bare.Id)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestGetAllSessionsFlagsBlocked(t *testing.T) {
	uow := newFakeUow()
	userId := uuid.New()
	clean := seedSession(uow, userId, constant.ChatSessionStateActive)
	dirty := seedSession(uow, userId, constant.ChatSessionStateActive)
	uow.blocked = append(uow.blocked, &entity.BlockedQuestion{
		Id:        uuid.New(),
		SessionId: dirty.Id,
	})

	svc, _ := newTestService(uow, &scriptedProvider{}, nil)

	sessions, err := svc.GetAllSessions(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	flags := make(map[uuid.UUID]bool, 2)
	for _, s := range sessions {
		flags[s.Id] = s.HasBlocked
	}
	assert.False(t, flags[clean.Id])
	assert.True(t, flags[dirty.Id])
}
