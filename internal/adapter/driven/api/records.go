package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
)

// RecordClient implementa o RecordRepository para um endpoint de coleção.
type RecordClient[T entity.Record] struct {
	client   *Client
	endpoint string
}

// NewRecordClient cria um repositório REST para o endpoint informado (ex.: "/expenses").
func NewRecordClient[T entity.Record](client *Client, endpoint string) repository.RecordRepository[T] {
	return &RecordClient[T]{client: client, endpoint: endpoint}
}

// List busca uma página da coleção.
func (r *RecordClient[T]) List(ctx context.Context, query url.Values) (entity.Page[T], error) {
	page := entity.Page[T]{Items: []T{}}

	_, env, err := r.client.do(ctx, http.MethodGet, r.endpoint, query, nil)
	if err != nil {
		return page, err
	}

	op := "GET " + r.endpoint
	if err := decodeData(op, env.Data, &page.Items); err != nil {
		return entity.Page[T]{Items: []T{}}, err
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	if err := decodeData(op, env.Pagination, &page.Pagination); err != nil {
		return entity.Page[T]{Items: []T{}}, err
	}

	return page, nil
}

// Create cria um registro e devolve a mensagem do servidor.
func (r *RecordClient[T]) Create(ctx context.Context, record T) (string, error) {
	_, env, err := r.client.do(ctx, http.MethodPost, r.endpoint, nil, record)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Update atualiza o registro id.
func (r *RecordClient[T]) Update(ctx context.Context, id int64, record T) (string, error) {
	path := fmt.Sprintf("%s/%d", r.endpoint, id)
	_, env, err := r.client.do(ctx, http.MethodPut, path, nil, record)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Delete remove o registro id do usuário.
func (r *RecordClient[T]) Delete(ctx context.Context, id int64, userID int64) (string, error) {
	path := fmt.Sprintf("%s/%d", r.endpoint, id)
	_, env, err := r.client.do(ctx, http.MethodDelete, path, userQuery(userID), nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
