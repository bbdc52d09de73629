package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/pterm/pterm"
)

// RecordFilter são os filtros ativos de uma listagem.
type RecordFilter struct {
	Search    string
	Category  string
	StartDate string
	EndDate   string
	Type      string
}

// PageCursor é a página exibida. Page nunca é menor que 1.
type PageCursor struct {
	Page  int
	Limit int
}

// EditSession existe enquanto o formulário edita um registro existente.
type EditSession struct {
	Active   bool
	TargetID int64
}

// PaginationInfo é o que a barra de paginação mostra.
type PaginationInfo struct {
	Page       int
	TotalPages int
	Shown      int
	Total      int
	HasPrev    bool
	HasNext    bool
}

// RecordView é onde uma tela de registros se desenha.
type RecordView interface {
	RenderTable(headers []string, rows [][]string, emptyMessage string)
	RenderPagination(info PaginationInfo)
	ShowMessage(message string, success bool)
	SetSubmitLabel(label string)
}

// RecordKind parametriza o controlador para um tipo de registro.
type RecordKind[T entity.Record] struct {
	Name          string
	Plural        string
	Endpoint      string
	Fields        []FieldSpec
	CategoryField string
	ReadOnly      bool
	PageSize      int
	// ServerMessages mostra a mensagem de sucesso do servidor no lugar da padrão.
	ServerMessages bool

	Validate    func(Form) error
	Build       func(form Form, userID int64) T
	Fill        func(T) Form
	DefaultForm func() Form
	Columns     []string
	Row         func(T) []string
	Match       func(T, RecordFilter) bool
}

// RecordState é o estado explícito de uma tela de registros.
type RecordState[T entity.Record] struct {
	Cursor     PageCursor
	Filter     RecordFilter
	Edit       EditSession
	Form       Form
	Records    []T
	Pagination entity.Pagination
}

// RecordController implementa o fluxo listar/criar/editar/excluir de uma tela.
type RecordController[T entity.Record] struct {
	kind    RecordKind[T]
	repo    repository.RecordRepository[T]
	view    RecordView
	confirm Confirmer
	userID  int64
	logger  *pterm.Logger
	state   RecordState[T]
}

// NewRecordController cria um controlador no estado Create, página 1.
func NewRecordController[T entity.Record](
	kind RecordKind[T],
	repo repository.RecordRepository[T],
	view RecordView,
	confirm Confirmer,
	userID int64,
	logger *pterm.Logger,
) *RecordController[T] {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	limit := kind.PageSize
	if limit <= 0 {
		limit = 10
	}

	c := &RecordController[T]{
		kind:    kind,
		repo:    repo,
		view:    view,
		confirm: confirm,
		userID:  userID,
		logger:  logger,
		state: RecordState[T]{
			Cursor: PageCursor{Page: 1, Limit: limit},
		},
	}
	c.resetForm()
	return c
}

// Kind devolve o tipo de registro do controlador.
func (c *RecordController[T]) Kind() RecordKind[T] {
	return c.kind
}

// State devolve uma cópia do estado atual.
func (c *RecordController[T]) State() RecordState[T] {
	s := c.state
	s.Form = c.state.Form.Clone()
	s.Records = append([]T(nil), c.state.Records...)
	return s
}

// SetField altera um campo do formulário sem mudar de estado.
func (c *RecordController[T]) SetField(name, value string) {
	c.state.Form[name] = value
}

// List busca a página atual e redesenha a tabela e a paginação.
func (c *RecordController[T]) List(ctx context.Context) error {
	page, err := c.repo.List(ctx, c.query())
	if err != nil {
		c.logger.Warn("list failed", c.logger.Args("kind", c.kind.Plural, "error", err))
		c.state.Records = nil
		c.state.Pagination = entity.Pagination{}
		c.render()
		c.view.ShowMessage(userMessage(err, fmt.Sprintf("Failed to load %s", c.kind.Plural)), false)
		return err
	}

	c.state.Records = page.Items
	c.state.Pagination = page.Pagination
	c.render()
	return nil
}

func (c *RecordController[T]) query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(c.state.Cursor.Page))
	q.Set("limit", strconv.Itoa(c.state.Cursor.Limit))
	q.Set("user_id", strconv.FormatInt(c.userID, 10))

	f := c.state.Filter
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		field := c.kind.CategoryField
		if field == "" {
			field = "category"
		}
		q.Set(field, f.Category)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	return q
}

func (c *RecordController[T]) render() {
	rows := [][]string{}
	for _, r := range c.state.Records {
		if c.kind.Match != nil && !c.kind.Match(r, c.state.Filter) {
			continue
		}
		rows = append(rows, c.kind.Row(r))
	}

	c.view.RenderTable(c.kind.Columns, rows, fmt.Sprintf("No %s", c.kind.Plural))
	c.view.RenderPagination(c.paginationInfo(len(rows)))
}

func (c *RecordController[T]) totalPages() int {
	if c.state.Pagination.TotalPages < 1 {
		return 1
	}
	return c.state.Pagination.TotalPages
}

func (c *RecordController[T]) paginationInfo(shown int) PaginationInfo {
	total := c.state.Pagination.Total
	if total < shown {
		total = shown
	}
	return PaginationInfo{
		Page:       c.state.Cursor.Page,
		TotalPages: c.totalPages(),
		Shown:      shown,
		Total:      total,
		HasPrev:    c.state.Cursor.Page > 1,
		HasNext:    c.state.Cursor.Page < c.totalPages(),
	}
}

// NextPage avança uma página, se houver.
func (c *RecordController[T]) NextPage(ctx context.Context) error {
	if c.state.Cursor.Page >= c.totalPages() {
		return nil
	}
	c.state.Cursor.Page++
	return c.List(ctx)
}

// PrevPage volta uma página, nunca abaixo de 1.
func (c *RecordController[T]) PrevPage(ctx context.Context) error {
	if c.state.Cursor.Page <= 1 {
		return nil
	}
	c.state.Cursor.Page--
	return c.List(ctx)
}

// GoToPage pula direto para uma página (usado pela flag --page).
func (c *RecordController[T]) GoToPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.state.Cursor.Page = page
	return c.List(ctx)
}

// Load abre a tela com filtros e página iniciais e faz a primeira listagem.
func (c *RecordController[T]) Load(ctx context.Context, filter RecordFilter, page int) error {
	if page < 1 {
		page = 1
	}
	c.state.Filter = filter
	c.state.Cursor.Page = page
	return c.List(ctx)
}

// ApplyFilter troca os filtros, volta para a página 1 e lista de novo.
// Trocar a categoria durante uma edição pede confirmação; recusar não muda nada.
func (c *RecordController[T]) ApplyFilter(ctx context.Context, filter RecordFilter) error {
	if filter.Category != c.state.Filter.Category && c.state.Edit.Active {
		if !confirmed(c.confirm, "Switching category will exit edit mode. Continue?") {
			return nil
		}
		c.exitEdit()
	}

	c.state.Filter = filter
	c.state.Cursor.Page = 1
	return c.List(ctx)
}

// ChangeCategoryFilter altera só o filtro de categoria/fonte.
func (c *RecordController[T]) ChangeCategoryFilter(ctx context.Context, category string) error {
	f := c.state.Filter
	f.Category = category
	return c.ApplyFilter(ctx, f)
}

// Select entra em modo de edição com um registro da última listagem.
func (c *RecordController[T]) Select(id int64) error {
	if c.kind.ReadOnly {
		return types.ErrReadOnly
	}

	record, ok := c.find(id)
	if !ok {
		c.view.ShowMessage(fmt.Sprintf("%s not found", c.kind.Name), false)
		return types.ErrNotFound
	}

	c.state.Form = c.kind.Fill(record)
	c.state.Edit = EditSession{Active: true, TargetID: id}
	c.view.SetSubmitLabel(fmt.Sprintf("Update %s", c.kind.Name))
	c.view.ShowMessage("Edit mode activated", true)
	return nil
}

func (c *RecordController[T]) find(id int64) (T, bool) {
	for _, r := range c.state.Records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Cancel sai do modo de edição após confirmação. Em Create apenas limpa o formulário.
func (c *RecordController[T]) Cancel() bool {
	if !c.state.Edit.Active {
		c.resetForm()
		return true
	}
	if !confirmed(c.confirm, "Exit edit mode?") {
		return false
	}
	c.exitEdit()
	return true
}

// ClickOutside protege a edição quando o foco sai do formulário.
func (c *RecordController[T]) ClickOutside() bool {
	if !c.state.Edit.Active {
		return false
	}
	if !confirmed(c.confirm, "Exit edit mode? Changes will be lost.") {
		return false
	}
	c.exitEdit()
	return true
}

// Submit valida e envia o formulário: criação em Create, atualização do
// registro selecionado em Editing.
func (c *RecordController[T]) Submit(ctx context.Context) error {
	if c.kind.ReadOnly {
		return types.ErrReadOnly
	}

	if err := c.kind.Validate(c.state.Form); err != nil {
		c.view.ShowMessage(err.Error(), false)
		return err
	}

	record := c.kind.Build(c.state.Form, c.userID)

	var err error
	var success, serverMsg string
	if c.state.Edit.Active {
		serverMsg, err = c.repo.Update(ctx, c.state.Edit.TargetID, record)
		success = fmt.Sprintf("%s updated!", c.kind.Name)
	} else {
		serverMsg, err = c.repo.Create(ctx, record)
		success = fmt.Sprintf("%s added!", c.kind.Name)
	}
	if err != nil {
		c.logger.Debug("submit failed", c.logger.Args("kind", c.kind.Name, "editing", c.state.Edit.Active, "error", err))
		c.view.ShowMessage(userMessage(err, "Network error"), false)
		return err
	}

	if c.kind.ServerMessages && serverMsg != "" {
		success = serverMsg
	}
	c.view.ShowMessage(success, true)
	c.exitEdit()
	return c.List(ctx)
}

// Delete exclui um registro após confirmação. Se outro registro estiver em
// edição, uma segunda confirmação é pedida antes.
func (c *RecordController[T]) Delete(ctx context.Context, id int64) error {
	if c.kind.ReadOnly {
		return types.ErrReadOnly
	}

	abandonEdit := c.state.Edit.Active && c.state.Edit.TargetID != id
	if abandonEdit && !confirmed(c.confirm, "Exit edit mode first?") {
		return types.ErrCancelled
	}
	if !confirmed(c.confirm, fmt.Sprintf("Delete this %s?", strings.ToLower(c.kind.Name))) {
		return types.ErrCancelled
	}
	if abandonEdit {
		c.exitEdit()
	}

	if _, err := c.repo.Delete(ctx, id, c.userID); err != nil {
		c.view.ShowMessage(userMessage(err, "Network error"), false)
		return err
	}

	if c.state.Edit.Active && c.state.Edit.TargetID == id {
		c.exitEdit()
	}

	c.view.ShowMessage(fmt.Sprintf("%s deleted!", c.kind.Name), true)
	return c.List(ctx)
}

// exitEdit volta para Create sem perguntar nada.
func (c *RecordController[T]) exitEdit() {
	c.state.Edit = EditSession{}
	c.resetForm()
	c.view.SetSubmitLabel(fmt.Sprintf("Add %s", c.kind.Name))
}

func (c *RecordController[T]) resetForm() {
	if c.kind.DefaultForm != nil {
		c.state.Form = c.kind.DefaultForm()
		return
	}
	c.state.Form = Form{}
}

// Visible devolve os registros da última listagem que passam pelo filtro local.
func (c *RecordController[T]) Visible() []T {
	out := []T{}
	for _, r := range c.state.Records {
		if c.kind.Match == nil || c.kind.Match(r, c.state.Filter) {
			out = append(out, r)
		}
	}
	return out
}

// Report monta a listagem visível no formato de exportação.
func (c *RecordController[T]) Report() repository.ReportTable {
	rows := [][]string{}
	for _, r := range c.Visible() {
		rows = append(rows, c.kind.Row(r))
	}
	info := c.paginationInfo(len(rows))
	return repository.ReportTable{
		Title:   capitalize(c.kind.Plural),
		Headers: c.kind.Columns,
		Rows:    rows,
		Footer:  fmt.Sprintf("Page %d of %d | Showing %d of %d", info.Page, info.TotalPages, info.Shown, info.Total),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
