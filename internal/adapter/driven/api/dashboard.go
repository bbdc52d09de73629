package api

import (
	"context"
	"net/http"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
)

// DashboardClient implementa o DashboardRepository.
type DashboardClient struct {
	client *Client
}

func NewDashboardClient(client *Client) repository.DashboardRepository {
	return &DashboardClient{client: client}
}

// GetDashboard busca o resumo agregado do usuário.
func (d *DashboardClient) GetDashboard(ctx context.Context, userID int64) (entity.DashboardData, error) {
	var data entity.DashboardData
	_, env, err := d.client.do(ctx, http.MethodGet, "/dashboard", userQuery(userID), nil)
	if err != nil {
		return data, err
	}
	if err := decodeData("GET /dashboard", env.Data, &data); err != nil {
		return entity.DashboardData{}, err
	}
	return data, nil
}
