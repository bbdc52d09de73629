package api

import (
	"context"
	"net/http"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
)

// ProfileClient implementa o ProfileRepository.
type ProfileClient struct {
	client *Client
}

// NewProfileClient cria um novo ProfileClient.
func NewProfileClient(client *Client) repository.ProfileRepository {
	return &ProfileClient{client: client}
}

// GetProfile busca o perfil do usuário.
func (p *ProfileClient) GetProfile(ctx context.Context, userID int64) (entity.User, error) {
	var user entity.User
	_, env, err := p.client.do(ctx, http.MethodGet, "/profile", userQuery(userID), nil)
	if err != nil {
		return user, err
	}
	if err := decodeData("GET /profile", env.Data, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// UpdateProfile envia a atualização parcial e devolve quantos campos o servidor alterou.
func (p *ProfileClient) UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (int, error) {
	_, env, err := p.client.do(ctx, http.MethodPut, "/profile", userQuery(userID), update)
	if err != nil {
		return 0, err
	}
	if len(env.UpdatedFields) == 0 {
		return update.FieldCount(), nil
	}
	return len(env.UpdatedFields), nil
}

// DeleteProfile apaga a conta e todos os dados do usuário.
func (p *ProfileClient) DeleteProfile(ctx context.Context, userID int64) (string, error) {
	_, env, err := p.client.do(ctx, http.MethodDelete, "/profile", userQuery(userID), nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
