package usecase

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
)

// --- registros ---

type updateCall[T any] struct {
	id     int64
	record T
}

type fakeRecordRepo[T entity.Record] struct {
	page    entity.Page[T]
	listErr error

	createErr error
	updateErr error
	deleteErr error
	message   string

	queries []url.Values
	created []T
	updated []updateCall[T]
	deleted []int64
}

func (f *fakeRecordRepo[T]) List(_ context.Context, query url.Values) (entity.Page[T], error) {
	f.queries = append(f.queries, query)
	if f.listErr != nil {
		return entity.Page[T]{}, f.listErr
	}
	return f.page, nil
}

func (f *fakeRecordRepo[T]) Create(_ context.Context, record T) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, record)
	return f.message, nil
}

func (f *fakeRecordRepo[T]) Update(_ context.Context, id int64, record T) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	f.updated = append(f.updated, updateCall[T]{id: id, record: record})
	return f.message, nil
}

func (f *fakeRecordRepo[T]) Delete(_ context.Context, id int64, _ int64) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return f.message, nil
}

func (f *fakeRecordRepo[T]) requests() int {
	return len(f.created) + len(f.updated) + len(f.deleted)
}

type fakeRecordView struct {
	headers     []string
	rows        [][]string
	empty       string
	pagination  PaginationInfo
	messages    []string
	lastSuccess bool
	submitLabel string
}

func (v *fakeRecordView) RenderTable(headers []string, rows [][]string, emptyMessage string) {
	v.headers = headers
	v.rows = rows
	v.empty = emptyMessage
}

func (v *fakeRecordView) RenderPagination(info PaginationInfo) {
	v.pagination = info
}

func (v *fakeRecordView) ShowMessage(message string, success bool) {
	v.messages = append(v.messages, message)
	v.lastSuccess = success
}

func (v *fakeRecordView) SetSubmitLabel(label string) {
	v.submitLabel = label
}

func (v *fakeRecordView) lastMessage() string {
	if len(v.messages) == 0 {
		return ""
	}
	return v.messages[len(v.messages)-1]
}

// fakeConfirmer responde em ordem e registra as perguntas feitas.
type fakeConfirmer struct {
	answers   []bool
	questions []string
	texts     []string
}

func (c *fakeConfirmer) Confirm(question string) (bool, error) {
	c.questions = append(c.questions, question)
	if len(c.answers) == 0 {
		return false, fmt.Errorf("unexpected confirmation: %s", question)
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a, nil
}

func (c *fakeConfirmer) TextInput(label, _ string) (string, error) {
	if len(c.texts) == 0 {
		return "", fmt.Errorf("unexpected input: %s", label)
	}
	t := c.texts[0]
	c.texts = c.texts[1:]
	return t, nil
}

// --- sessão ---

type memStorage struct {
	items  map[string]string
	getErr error
}

func newMemStorage() *memStorage {
	return &memStorage{items: map[string]string{}}
}

func (m *memStorage) GetItem(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memStorage) SetItem(key, value string) error {
	m.items[key] = value
	return nil
}

func (m *memStorage) RemoveItem(key string) error {
	delete(m.items, key)
	return nil
}

var _ repository.LocalStorage = (*memStorage)(nil)

// --- autenticação e perfil ---

type fakeAuthRepo struct {
	session   entity.Session
	loginErr  error
	regErr    error
	logins    []entity.Credentials
	registers []entity.Registration
}

func (f *fakeAuthRepo) Login(_ context.Context, creds entity.Credentials) (entity.Session, string, error) {
	f.logins = append(f.logins, creds)
	if f.loginErr != nil {
		return entity.Session{}, "", f.loginErr
	}
	return f.session, "Login successful", nil
}

func (f *fakeAuthRepo) Register(_ context.Context, reg entity.Registration) (string, error) {
	f.registers = append(f.registers, reg)
	if f.regErr != nil {
		return "", f.regErr
	}
	return "User registered", nil
}

type fakeFormView struct {
	inline      []string
	lastSuccess bool
	fieldErrors map[string]string
	alerts      []string
	profiles    []entity.User
}

func newFakeFormView() *fakeFormView {
	return &fakeFormView{fieldErrors: map[string]string{}}
}

func (v *fakeFormView) Inline(message string, success bool) {
	v.inline = append(v.inline, message)
	v.lastSuccess = success
}

func (v *fakeFormView) FieldError(field, message string) {
	v.fieldErrors[field] = message
}

func (v *fakeFormView) Alert(message string) {
	v.alerts = append(v.alerts, message)
}

func (v *fakeFormView) ShowProfile(user entity.User) {
	v.profiles = append(v.profiles, user)
}

type fakeProfileRepo struct {
	user      entity.User
	getErr    error
	updateErr error
	deleteErr error
	gets      int
	updates   []entity.ProfileUpdate
	deletes   int
}

func (f *fakeProfileRepo) GetProfile(_ context.Context, _ int64) (entity.User, error) {
	f.gets++
	return f.user, f.getErr
}

func (f *fakeProfileRepo) UpdateProfile(_ context.Context, _ int64, update entity.ProfileUpdate) (int, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.updates = append(f.updates, update)
	return update.FieldCount(), nil
}

func (f *fakeProfileRepo) DeleteProfile(_ context.Context, _ int64) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deletes++
	return "Account deleted successfully", nil
}

// recordedDelay registra os atrasos pedidos sem esperar.
type recordedDelay struct {
	waits []time.Duration
}

func (d *recordedDelay) wait(_ context.Context, dur time.Duration) error {
	d.waits = append(d.waits, dur)
	return nil
}

// --- dashboard ---

// gatedDashboardRepo bloqueia cada chamada até o teste liberar a resposta.
type gatedDashboardRepo struct {
	calls chan chan dashboardReply
}

type dashboardReply struct {
	data entity.DashboardData
	err  error
}

func newGatedDashboardRepo() *gatedDashboardRepo {
	return &gatedDashboardRepo{calls: make(chan chan dashboardReply, 8)}
}

func (g *gatedDashboardRepo) GetDashboard(_ context.Context, _ int64) (entity.DashboardData, error) {
	reply := make(chan dashboardReply, 1)
	g.calls <- reply
	r := <-reply
	return r.data, r.err
}

type fakeDashboardView struct {
	mu        sync.Mutex
	summaries []entity.Summary
	alerts    [][]string
	allClear  []bool
	charts    []types.ChartData
	errors    []string
	chartPtrs []*Chart
}

func (v *fakeDashboardView) RenderSummary(summary entity.Summary) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.summaries = append(v.summaries, summary)
}

func (v *fakeDashboardView) RenderAlerts(alerts []string, allClear bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, alerts)
	v.allClear = append(v.allClear, allClear)
}

func (v *fakeDashboardView) RenderCharts(category, monthly *Chart) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.charts = append(v.charts, category.Data(), monthly.Data())
	v.chartPtrs = append(v.chartPtrs, category, monthly)
}

func (v *fakeDashboardView) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = append(v.errors, message)
}

func (v *fakeDashboardView) renders() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.summaries)
}

func (v *fakeDashboardView) lastSummary() entity.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.summaries) == 0 {
		return entity.Summary{}
	}
	return v.summaries[len(v.summaries)-1]
}

// --- relatórios ---

type fakeConsole struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (c *fakeConsole) Print(...interface{})              {}
func (c *fakeConsole) Printf(string, ...interface{})     {}
func (c *fakeConsole) Println(...interface{})            {}
func (c *fakeConsole) LogInfo(string, ...interface{})    {}
func (c *fakeConsole) LogWarning(string, ...interface{}) {}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle      { return nopHandle{} }
func (c *fakeConsole) Area() types.AreaHandle                { return nopHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface     { return nil }
func (c *fakeConsole) RenderBarChart(types.ChartData) string { return "" }
func (c *fakeConsole) Box(string, string) string             { return "" }

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Stop()         {}

type fakeExportRepo struct {
	mu      sync.Mutex
	calls   []string
	failFor string
}

func (f *fakeExportRepo) record(kind, format, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind+":"+format)
	if format == f.failFor {
		return "", fmt.Errorf("disk full")
	}
	return fmt.Sprintf("/reports/%s.%s", name, format), nil
}

func (f *fakeExportRepo) ExportTableToCSV(_ repository.ReportTable, name, _ string) (string, error) {
	return f.record("table", "csv", name)
}

func (f *fakeExportRepo) ExportTableToJSON(_ repository.ReportTable, name, _ string) (string, error) {
	return f.record("table", "json", name)
}

func (f *fakeExportRepo) ExportTableToPDF(_ repository.ReportTable, name, _ string) (string, error) {
	return f.record("table", "pdf", name)
}

func (f *fakeExportRepo) ExportDashboardToCSV(_ entity.DashboardData, name, _ string) (string, error) {
	return f.record("dashboard", "csv", name)
}

func (f *fakeExportRepo) ExportDashboardToJSON(_ entity.DashboardData, name, _ string) (string, error) {
	return f.record("dashboard", "json", name)
}

func (f *fakeExportRepo) ExportDashboardToPDF(_ entity.DashboardData, name, _ string) (string, error) {
	return f.record("dashboard", "pdf", name)
}

type fakeUploader struct {
	mu       sync.Mutex
	uploaded []string
}

func (f *fakeUploader) Upload(_ context.Context, localPath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, localPath)
	return "s3://bucket/" + localPath, nil
}
