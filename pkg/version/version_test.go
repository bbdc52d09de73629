package version

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.10.0", "1.9.0", true},
		{"1.2.0", "1.2.0", false},
		{"1.2", "1.2.0", false},
		{"1.2.1", "1.2", true},
		{"1.0.0", "1.0.1", false},
		{"2.0.0-rc1", "1.9.9", true},
		{"", "1.0.0", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Newer(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}

func TestUserAgent(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "1.4.2"
	assert.Equal(t, "finance-tracker-cli/1.4.2", UserAgent())
}

func TestFormatVersion(t *testing.T) {
	oldV, oldC, oldB := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })

	Version, Commit, BuildTime = "1.0.0", "", ""
	assert.Equal(t, "1.0.0 (development)", FormatVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.0.0 (commit: abc1234)", FormatVersion())

	BuildTime = "2025-10-23T10:20:30Z"
	assert.Equal(t, "1.0.0 (commit: abc1234, built at: 2025-10-23T10:20:30Z)", FormatVersion())
}

func releaseServer(t *testing.T, tag string, agents *[]string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*agents = append(*agents, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `"}`))
	}))
	t.Cleanup(srv.Close)

	old := ReleaseURL
	ReleaseURL = srv.URL
	t.Cleanup(func() { ReleaseURL = old })
}

func TestCheckLatestVersion_WarnsWhenNewer(t *testing.T) {
	var agents []string
	releaseServer(t, "v1.3.0", &agents)

	var out bytes.Buffer
	logger := pterm.DefaultLogger.WithWriter(&out).WithLevel(pterm.LogLevelWarn)

	CheckLatestVersion(context.Background(), logger, "1.2.0")

	assert.Contains(t, out.String(), "a new version of Finance Tracker CLI is available")
	assert.Contains(t, out.String(), "1.3.0")
	assert.Len(t, agents, 1)
	assert.Contains(t, agents[0], "finance-tracker-cli/")
}

func TestCheckLatestVersion_QuietWhenCurrent(t *testing.T) {
	var agents []string
	releaseServer(t, "v1.2.0", &agents)

	var out bytes.Buffer
	logger := pterm.DefaultLogger.WithWriter(&out).WithLevel(pterm.LogLevelWarn)

	CheckLatestVersion(context.Background(), logger, "1.2.0")
	assert.Empty(t, out.String())

	CheckLatestVersion(context.Background(), logger, "0.0.0-dev")
	assert.Len(t, agents, 1, "dev builds skip the check")
}
