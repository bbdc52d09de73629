package api

import (
	"context"
	"net/http"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
)

// AuthClient implementa o AuthRepository.
type AuthClient struct {
	client *Client
}

// NewAuthClient cria um novo AuthClient.
func NewAuthClient(client *Client) repository.AuthRepository {
	return &AuthClient{client: client}
}

// Login envia as credenciais. O token e o usuário podem vir no topo da
// resposta ou dentro de data.
func (a *AuthClient) Login(ctx context.Context, creds entity.Credentials) (entity.Session, string, error) {
	const op = "POST /auth/login"

	status, env, err := a.client.do(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return entity.Session{}, "", err
	}
	if status != http.StatusOK {
		return entity.Session{}, "", &types.ServerError{Status: status, Message: env.errorMessage(status)}
	}

	session := entity.Session{Token: env.Token}
	if err := decodeData(op, env.User, &session.User); err != nil {
		return entity.Session{}, "", err
	}

	if session.Token == "" {
		var nested struct {
			Token string      `json:"token"`
			User  entity.User `json:"user"`
		}
		if err := decodeData(op, env.Data, &nested); err != nil {
			return entity.Session{}, "", err
		}
		session.Token = nested.Token
		session.User = nested.User
	}

	return session, env.Message, nil
}

// Register cria uma conta nova.
func (a *AuthClient) Register(ctx context.Context, reg entity.Registration) (string, error) {
	status, env, err := a.client.do(ctx, http.MethodPost, "/auth/register", nil, reg)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", &types.ServerError{Status: status, Message: env.errorMessage(status)}
	}
	return env.Message, nil
}
