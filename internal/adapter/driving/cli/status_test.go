package cli

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyExpenseRepo anota se havia um spinner ativo durante cada chamada.
type spyExpenseRepo struct {
	ui      *fakeUI
	running []bool
	err     error
}

func (r *spyExpenseRepo) spinning() {
	n := len(r.ui.statuses)
	r.running = append(r.running, n > 0 && !r.ui.statuses[n-1].stopped)
}

func (r *spyExpenseRepo) List(context.Context, url.Values) (entity.Page[entity.Expense], error) {
	r.spinning()
	return entity.Page[entity.Expense]{Items: []entity.Expense{{ID: 1}}}, r.err
}

func (r *spyExpenseRepo) Create(context.Context, entity.Expense) (string, error) {
	r.spinning()
	return "created", r.err
}

func (r *spyExpenseRepo) Update(context.Context, int64, entity.Expense) (string, error) {
	r.spinning()
	return "updated", r.err
}

func (r *spyExpenseRepo) Delete(context.Context, int64, int64) (string, error) {
	r.spinning()
	return "deleted", r.err
}

func TestStatusRecordRepo_SpinsAroundEveryCall(t *testing.T) {
	ui := &fakeUI{}
	next := &spyExpenseRepo{ui: ui}
	repo := &statusRecordRepo[entity.Expense]{next: next, ui: ui, plural: "expenses"}
	ctx := context.Background()

	page, err := repo.List(ctx, url.Values{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	msg, err := repo.Create(ctx, entity.Expense{})
	require.NoError(t, err)
	assert.Equal(t, "created", msg)

	_, err = repo.Update(ctx, 1, entity.Expense{})
	require.NoError(t, err)
	_, err = repo.Delete(ctx, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true, true}, next.running)
	require.Len(t, ui.statuses, 4)
	assert.Equal(t, "Loading expenses...", ui.statuses[0].message)
	assert.Equal(t, "Deleting...", ui.statuses[3].message)
	for _, s := range ui.statuses {
		assert.True(t, s.stopped, s.message)
	}
}

func TestStatusRecordRepo_StopsOnError(t *testing.T) {
	ui := &fakeUI{}
	boom := errors.New("connection refused")
	repo := &statusRecordRepo[entity.Expense]{next: &spyExpenseRepo{ui: ui, err: boom}, ui: ui, plural: "expenses"}

	_, err := repo.List(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
	require.Len(t, ui.statuses, 1)
	assert.True(t, ui.statuses[0].stopped)
}

type stubAuthRepo struct{}

func (stubAuthRepo) Login(context.Context, entity.Credentials) (entity.Session, string, error) {
	return entity.Session{Token: "tok", User: entity.User{ID: 3}}, "Login successful", nil
}

func (stubAuthRepo) Register(context.Context, entity.Registration) (string, error) {
	return "Registered", nil
}

func TestStatusAuthRepo_PassesResultsThrough(t *testing.T) {
	ui := &fakeUI{}
	repo := &statusAuthRepo{next: stubAuthRepo{}, ui: ui}

	session, msg, err := repo.Login(context.Background(), entity.Credentials{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, int64(3), session.User.ID)
	assert.Equal(t, "Login successful", msg)

	msg, err = repo.Register(context.Background(), entity.Registration{})
	require.NoError(t, err)
	assert.Equal(t, "Registered", msg)

	require.Len(t, ui.statuses, 2)
	assert.Equal(t, "Logging in...", ui.statuses[0].message)
	assert.True(t, ui.statuses[1].stopped)
}
