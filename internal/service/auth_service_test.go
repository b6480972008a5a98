package service

import (
	"context"
	"testing"
	"time"

	"hr-chatbot-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(uow *fakeUow, cost int) IAuthService {
	return NewAuthService(&fakeFactory{uow: uow}, nil, nil, time.Hour, cost)
}

func TestRegisterHashesWithConfiguredCost(t *testing.T) {
	uow := newFakeUow()
	svc := newTestAuthService(uow, bcrypt.MinCost)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana.perez@uta.cl",
		Password: "clave-segura-123",
		FullName: "Ana Pérez",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	require.Len(t, uow.users, 1)
	require.NotNil(t, uow.users[0].PasswordHash)
	cost, err := bcrypt.Cost([]byte(*uow.users[0].PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestRegisterFallsBackToDefaultCost(t *testing.T) {
	uow := newFakeUow()
	svc := newTestAuthService(uow, 0)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jorge.rojas@uta.cl",
		Password: "clave-segura-123",
		FullName: "Jorge Rojas",
	})
	require.NoError(t, err)

	require.Len(t, uow.users, 1)
	cost, err := bcrypt.Cost([]byte(*uow.users[0].PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uow := newFakeUow()
	svc := newTestAuthService(uow, bcrypt.MinCost)

	req := &dto.RegisterRequest{
		Email:    "ana.perez@uta.cl",
		Password: "clave-segura-123",
		FullName: "Ana Pérez",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
	assert.Len(t, uow.users, 1)
}

func TestLoginVerifiesPassword(t *testing.T) {
	uow := newFakeUow()
	svc := newTestAuthService(uow, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana.perez@uta.cl",
		Password: "clave-segura-123",
		FullName: "Ana Pérez",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana.perez@uta.cl",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.NotNil(t, uow.users[0].LastLoginAt)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana.perez@uta.cl",
		Password: "clave-equivocada",
	})
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusUnauthorized, fiberErr.Code)
}
