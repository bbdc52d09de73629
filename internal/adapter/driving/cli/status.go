package cli

import (
	"context"
	"net/url"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
)

// withStatus mostra um spinner enquanto fn roda. Prompts nunca ficam dentro de fn.
func withStatus[R any](ui types.ConsoleInterface, message string, fn func() (R, error)) (R, error) {
	status := ui.Status(message)
	defer status.Stop()
	return fn()
}

// statusRecordRepo envolve as chamadas de rede de uma tela de registros com spinner.
type statusRecordRepo[T entity.Record] struct {
	next   repository.RecordRepository[T]
	ui     types.ConsoleInterface
	plural string
}

func (r *statusRecordRepo[T]) List(ctx context.Context, query url.Values) (entity.Page[T], error) {
	return withStatus(r.ui, "Loading "+r.plural+"...", func() (entity.Page[T], error) {
		return r.next.List(ctx, query)
	})
}

func (r *statusRecordRepo[T]) Create(ctx context.Context, record T) (string, error) {
	return withStatus(r.ui, "Saving...", func() (string, error) {
		return r.next.Create(ctx, record)
	})
}

func (r *statusRecordRepo[T]) Update(ctx context.Context, id int64, record T) (string, error) {
	return withStatus(r.ui, "Updating...", func() (string, error) {
		return r.next.Update(ctx, id, record)
	})
}

func (r *statusRecordRepo[T]) Delete(ctx context.Context, id int64, userID int64) (string, error) {
	return withStatus(r.ui, "Deleting...", func() (string, error) {
		return r.next.Delete(ctx, id, userID)
	})
}

type statusAuthRepo struct {
	next repository.AuthRepository
	ui   types.ConsoleInterface
}

type loginResult struct {
	session entity.Session
	message string
}

func (r *statusAuthRepo) Login(ctx context.Context, creds entity.Credentials) (entity.Session, string, error) {
	res, err := withStatus(r.ui, "Logging in...", func() (loginResult, error) {
		session, msg, err := r.next.Login(ctx, creds)
		return loginResult{session: session, message: msg}, err
	})
	return res.session, res.message, err
}

func (r *statusAuthRepo) Register(ctx context.Context, reg entity.Registration) (string, error) {
	return withStatus(r.ui, "Creating account...", func() (string, error) {
		return r.next.Register(ctx, reg)
	})
}

type statusProfileRepo struct {
	next repository.ProfileRepository
	ui   types.ConsoleInterface
}

func (r *statusProfileRepo) GetProfile(ctx context.Context, userID int64) (entity.User, error) {
	return withStatus(r.ui, "Loading profile...", func() (entity.User, error) {
		return r.next.GetProfile(ctx, userID)
	})
}

func (r *statusProfileRepo) UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (int, error) {
	return withStatus(r.ui, "Updating profile...", func() (int, error) {
		return r.next.UpdateProfile(ctx, userID, update)
	})
}

func (r *statusProfileRepo) DeleteProfile(ctx context.Context, userID int64) (string, error) {
	return withStatus(r.ui, "Deleting account...", func() (string, error) {
		return r.next.DeleteProfile(ctx, userID)
	})
}
