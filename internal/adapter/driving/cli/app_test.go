package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/storage"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/diillson/finance-tracker-cli/pkg/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp executa a CLI com args e devolve o store que ela abriu.
func runApp(t *testing.T, args ...string) (*storage.SQLiteStorage, error) {
	t.Helper()
	t.Setenv("FINANCE_SESSION_DB", "")
	dbPath := filepath.Join(t.TempDir(), "session.db")

	app := NewCLIApp("1.0.0", &fakeUI{}, nil, nil)
	var opened *storage.SQLiteStorage
	prepare := app.rootCmd.PersistentPreRunE
	app.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, a []string) error {
		err := prepare(cmd, a)
		opened = app.store
		return err
	}
	app.rootCmd.SetArgs(append(args, "--session-db", dbPath))

	err := app.Execute()
	assert.Nil(t, app.store)
	return opened, err
}

func TestExecute_ClosesStoreWhenCommandFails(t *testing.T) {
	store, err := runApp(t, "expenses", "list")
	require.ErrorIs(t, err, types.ErrNotAuthenticated)
	require.NotNil(t, store)

	_, _, err = store.GetItem("token")
	assert.Error(t, err, "store must be closed after a failed command")
}

func TestExecute_ClosesStoreOnSuccess(t *testing.T) {
	store, err := runApp(t, "logout")
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.Error(t, store.SetItem("token", "x"))
}

func TestDisplayWelcomeBanner_WritesVersion(t *testing.T) {
	var out bytes.Buffer
	displayWelcomeBanner(&out)

	assert.Contains(t, out.String(), "Finance Tracker CLI (v"+version.FormatVersion()+")")
}
