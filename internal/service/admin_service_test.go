package service

import (
	"context"
	"testing"
	"time"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(uow *fakeUow) IAdminService {
	return NewAdminService(&fakeFactory{uow: uow}, nopLogger{}, nil)
}

func seedContext(uow *fakeUow, name string, active bool) *entity.PromptContext {
	c := &entity.PromptContext{
		Id:        uuid.New(),
		Name:      name,
		Active:    active,
		CreatedAt: time.Now(),
	}
	uow.contexts = append(uow.contexts, c)
	return c
}

func TestActivateContextIsExclusive(t *testing.T) {
	uow := newFakeUow()
	current := seedContext(uow, "Formal", true)
	next := seedContext(uow, "Resumido", false)
	svc := newTestAdminService(uow)

	err := svc.ActivateContext(context.Background(), next.Id)
	require.NoError(t, err)

	assert.False(t, current.Active)
	assert.True(t, next.Active)
	assert.Equal(t, 1, uow.commits)

	active := 0
	for _, c := range uow.contexts {
		if c.Active {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestActivateContextNotFound(t *testing.T) {
	uow := newFakeUow()
	seedContext(uow, "Formal", false)
	svc := newTestAdminService(uow)

	err := svc.ActivateContext(context.Background(), uuid.New())

	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusNotFound, ferr.Code)
	assert.Equal(t, 0, uow.commits)
}

func TestDeactivateContext(t *testing.T) {
	uow := newFakeUow()
	active := seedContext(uow, "Formal", true)
	svc := newTestAdminService(uow)

	require.NoError(t, svc.DeactivateContext(context.Background(), active.Id))
	assert.False(t, active.Active)

	// already inactive, second call is a no-op
	require.NoError(t, svc.DeactivateContext(context.Background(), active.Id))
	assert.False(t, active.Active)
}

func TestCreateContextStartsInactive(t *testing.T) {
	uow := newFakeUow()
	svc := newTestAdminService(uow)

	res, err := svc.CreateContext(context.Background(), &dto.CreatePromptContextRequest{
		Name:         "Detallado",
		SystemPrompt: "Responde con el máximo detalle disponible.",
	})
	require.NoError(t, err)

	assert.False(t, res.Active)
	require.Len(t, uow.contexts, 1)
	assert.False(t, uow.contexts[0].Active)
}

func TestDeleteContext(t *testing.T) {
	uow := newFakeUow()
	c := seedContext(uow, "Formal", false)
	svc := newTestAdminService(uow)

	require.NoError(t, svc.DeleteContext(context.Background(), c.Id))
	assert.Empty(t, uow.contexts)

	err := svc.DeleteContext(context.Background(), c.Id)
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusNotFound, ferr.Code)
}
