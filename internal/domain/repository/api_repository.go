package repository

import (
	"context"
	"net/url"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
)

// RecordRepository define as operações REST de uma coleção de registros.
type RecordRepository[T entity.Record] interface {
	List(ctx context.Context, query url.Values) (entity.Page[T], error)
	Create(ctx context.Context, record T) (string, error)
	Update(ctx context.Context, id int64, record T) (string, error)
	Delete(ctx context.Context, id int64, userID int64) (string, error)
}

// AuthRepository define os endpoints de login e cadastro.
type AuthRepository interface {
	Login(ctx context.Context, creds entity.Credentials) (entity.Session, string, error)
	Register(ctx context.Context, reg entity.Registration) (string, error)
}

// ProfileRepository define os endpoints de perfil do usuário atual.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (int, error)
	DeleteProfile(ctx context.Context, userID int64) (string, error)
}

// DashboardRepository define o endpoint do resumo agregado.
type DashboardRepository interface {
	GetDashboard(ctx context.Context, userID int64) (entity.DashboardData, error)
}
