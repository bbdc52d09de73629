package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/api"
	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/spf13/cobra"
)

// recordCommandDef liga um tipo de registro ao seu comando.
type recordCommandDef[T entity.Record] struct {
	use     string
	aliases []string
	short   string
	kind    func(pageSize int) usecase.RecordKind[T]
}

// recordScreen é um controlador pronto para uso dentro de um comando.
type recordScreen[T entity.Record] struct {
	app  *CLIApp
	ctl  *usecase.RecordController[T]
	view *recordView
}

func newRecordScreen[T entity.Record](app *CLIApp, def recordCommandDef[T]) *recordScreen[T] {
	kind := def.kind(app.cfg.PageSize)
	if kind.ReadOnly {
		kind = def.kind(0)
		if app.args.PageSize > 0 {
			kind.PageSize = app.args.PageSize
		}
	}
	view := newRecordView(app.ui, strings.ToUpper(kind.Plural[:1])+kind.Plural[1:], "Add "+kind.Name)
	repo := &statusRecordRepo[T]{next: api.NewRecordClient[T](app.client, kind.Endpoint), ui: app.ui, plural: kind.Plural}
	ctl := usecase.NewRecordController(kind, repo, view, app.ui, app.session.User.ID, app.logger)
	return &recordScreen[T]{app: app, ctl: ctl, view: view}
}

func newRecordCommand[T entity.Record](app *CLIApp, def recordCommandDef[T]) *cobra.Command {
	sample := def.kind(0)

	cmd := &cobra.Command{
		Use:     def.use,
		Aliases: def.aliases,
		Short:   def.short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newRecordScreen(app, def).interactive(cmd.Context())
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", sample.Plural),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := newRecordScreen(app, def)
			page, _ := cmd.Flags().GetInt("page")
			return silent(s.ctl.Load(cmd.Context(), filterFlags(cmd), page))
		},
	}
	addListFlags(list, sample)
	cmd.AddCommand(list)

	export := &cobra.Command{
		Use:   "export",
		Short: fmt.Sprintf("Export the listed %s to CSV, JSON or PDF", sample.Plural),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := newRecordScreen(app, def)
			page, _ := cmd.Flags().GetInt("page")
			if err := s.ctl.Load(cmd.Context(), filterFlags(cmd), page); err != nil {
				return silent(err)
			}
			_, err := app.exportTable(cmd.Context(), s.ctl.Report(), sample.Plural)
			return err
		},
	}
	addListFlags(export, sample)
	addReportFlags(export)
	cmd.AddCommand(export)

	if sample.ReadOnly {
		return cmd
	}

	add := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a new %s", strings.ToLower(sample.Name)),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := newRecordScreen(app, def)
			if err := s.fillForm(cmd, false); err != nil {
				return err
			}
			return silent(s.ctl.Submit(cmd.Context()))
		},
	}
	addFieldFlags(add, sample)
	cmd.AddCommand(add)

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: fmt.Sprintf("Edit an existing %s", strings.ToLower(sample.Name)),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := recordID(args[0])
			if err != nil {
				return err
			}
			s := newRecordScreen(app, def)
			page, _ := cmd.Flags().GetInt("page")
			if err := s.ctl.Load(cmd.Context(), usecase.RecordFilter{}, page); err != nil {
				return silent(err)
			}
			if err := s.ctl.Select(id); err != nil {
				return silent(err)
			}
			if err := s.fillForm(cmd, true); err != nil {
				return err
			}
			return silent(s.ctl.Submit(cmd.Context()))
		},
	}
	edit.Flags().Int("page", 1, "Page where the record is listed")
	addFieldFlags(edit, sample)
	cmd.AddCommand(edit)

	del := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Delete a %s", strings.ToLower(sample.Name)),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := recordID(args[0])
			if err != nil {
				return err
			}
			s := newRecordScreen(app, def)
			return silent(cancelled(s.ctl.Delete(cmd.Context(), id)))
		},
	}
	cmd.AddCommand(del)

	return cmd
}

func addListFlags[T entity.Record](cmd *cobra.Command, kind usecase.RecordKind[T]) {
	cmd.Flags().Int("page", 1, "Page to show")
	cmd.Flags().Int("limit", 0, "Records per page")
	cmd.Flags().String("search", "", "Filter the page by description")
	cmd.Flags().String(categoryFlag(kind), "", "Filter by "+categoryFlag(kind))
	cmd.Flags().String("start-date", "", "Only records on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "Only records on or before this date (YYYY-MM-DD)")
	if kind.ReadOnly {
		cmd.Flags().String("type", "", "Filter by type: income or expense")
	}
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("report-name", "n", "", "Base name for the exported report file")
	cmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files")
	cmd.Flags().String("s3-bucket", "", "Upload exported reports to this S3 bucket")
}

func addFieldFlags[T entity.Record](cmd *cobra.Command, kind usecase.RecordKind[T]) {
	for _, f := range kind.Fields {
		usage := f.Label
		if len(f.Options) > 0 {
			usage += " (" + strings.Join(f.Options, ", ") + ")"
		}
		cmd.Flags().String(f.Name, "", usage)
	}
}

func categoryFlag[T entity.Record](kind usecase.RecordKind[T]) string {
	if kind.CategoryField == "" {
		return "category"
	}
	return kind.CategoryField
}

func filterFlags(cmd *cobra.Command) usecase.RecordFilter {
	category := flagString(cmd, "category")
	if category == "" {
		category = flagString(cmd, "source")
	}
	return usecase.RecordFilter{
		Search:    flagString(cmd, "search"),
		Category:  category,
		StartDate: flagString(cmd, "start-date"),
		EndDate:   flagString(cmd, "end-date"),
		Type:      flagString(cmd, "type"),
	}
}

// fillForm usa as flags informadas e pergunta pelos campos restantes.
// Em edição, os campos sem flag mantêm o valor atual como padrão.
func (s *recordScreen[T]) fillForm(cmd *cobra.Command, editing bool) error {
	form := s.ctl.State().Form
	anyFlag := false
	for _, f := range s.ctl.Kind().Fields {
		if cmd.Flags().Changed(f.Name) {
			anyFlag = true
			s.ctl.SetField(f.Name, flagString(cmd, f.Name))
		}
	}
	if anyFlag && editing {
		return nil
	}

	for _, f := range s.ctl.Kind().Fields {
		if cmd.Flags().Changed(f.Name) {
			continue
		}
		value, err := s.prompt(f, form.Get(f.Name))
		if err != nil {
			return err
		}
		s.ctl.SetField(f.Name, value)
	}
	return nil
}

func (s *recordScreen[T]) prompt(f usecase.FieldSpec, current string) (string, error) {
	if len(f.Options) == 0 {
		return s.app.ui.TextInput(f.Label, current)
	}
	options := f.Options
	if current != "" {
		options = append([]string{current}, without(options, current)...)
	}
	return s.app.ui.Select(f.Label, options)
}

const (
	actionAdd      = "Add"
	actionEdit     = "Edit a record"
	actionDelete   = "Delete a record"
	actionNext     = "Next page"
	actionPrev     = "Previous page"
	actionGoto     = "Go to page"
	actionFilter   = "Filter"
	actionCategory = "Change category filter"
	actionClear    = "Clear filters"
	actionExport   = "Export"
	actionCancel   = "Cancel edit"
	actionQuit     = "Quit"
)

// interactive é a tela completa: lista e um menu de ações até o usuário sair.
func (s *recordScreen[T]) interactive(ctx context.Context) error {
	_ = s.ctl.List(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}
		action, err := s.app.ui.Select("Action", s.actions())
		if err != nil {
			return nil
		}

		switch action {
		case actionQuit:
			if s.ctl.State().Edit.Active && !s.ctl.ClickOutside() {
				continue
			}
			return nil
		case actionNext:
			_ = s.ctl.NextPage(ctx)
		case actionPrev:
			_ = s.ctl.PrevPage(ctx)
		case actionGoto:
			if page, ok := s.askInt("Page"); ok {
				_ = s.ctl.GoToPage(ctx, page)
			}
		case actionFilter:
			_ = s.ctl.ApplyFilter(ctx, s.askFilter())
		case actionCategory:
			s.changeCategory(ctx)
		case actionClear:
			_ = s.ctl.ApplyFilter(ctx, usecase.RecordFilter{})
		case actionExport:
			if _, err := s.app.exportTable(ctx, s.ctl.Report(), s.ctl.Kind().Plural); err != nil {
				s.app.logger.Debug("export failed", s.app.logger.Args("error", err))
			}
		case actionCancel:
			s.ctl.Cancel()
		case actionEdit:
			s.edit(ctx)
		case actionDelete:
			if id, ok := s.askID(); ok {
				_ = s.ctl.Delete(ctx, id)
			}
		default:
			s.submit(ctx, action)
		}
	}
}

func (s *recordScreen[T]) actions() []string {
	kind := s.ctl.Kind()
	state := s.ctl.State()
	out := []string{}
	if !kind.ReadOnly {
		if state.Edit.Active {
			out = append(out, fmt.Sprintf("Update %s #%d", kind.Name, state.Edit.TargetID), actionCancel)
		} else {
			out = append(out, fmt.Sprintf("%s %s", actionAdd, kind.Name))
		}
		out = append(out, actionEdit, actionDelete)
	}
	out = append(out, actionNext, actionPrev, actionGoto, actionFilter)
	if _, ok := s.categoryField(); ok {
		out = append(out, actionCategory)
	}
	return append(out, actionClear, actionExport, actionQuit)
}

// submit preenche o formulário atual e envia.
func (s *recordScreen[T]) submit(ctx context.Context, action string) {
	form := s.ctl.State().Form
	for _, f := range s.ctl.Kind().Fields {
		value, err := s.prompt(f, form.Get(f.Name))
		if err != nil {
			return
		}
		s.ctl.SetField(f.Name, value)
	}
	s.app.logger.Debug("submitting", s.app.logger.Args("action", action))
	_ = s.ctl.Submit(ctx)
}

func (s *recordScreen[T]) edit(ctx context.Context) {
	id, ok := s.askID()
	if !ok {
		return
	}
	state := s.ctl.State()
	if state.Edit.Active && state.Edit.TargetID != id && !s.ctl.ClickOutside() {
		return
	}
	if err := s.ctl.Select(id); err != nil {
		return
	}
	s.submit(ctx, "update")
}

func (s *recordScreen[T]) changeCategory(ctx context.Context) {
	field, _ := s.categoryField()
	options := append([]string{"All"}, field.Options...)
	choice, err := s.app.ui.Select(field.Label, options)
	if err != nil {
		return
	}
	if choice == "All" {
		choice = ""
	}
	_ = s.ctl.ChangeCategoryFilter(ctx, choice)
}

// categoryField é o campo com opções usado no filtro rápido.
func (s *recordScreen[T]) categoryField() (usecase.FieldSpec, bool) {
	kind := s.ctl.Kind()
	for _, f := range kind.Fields {
		if f.Name == kind.CategoryField && len(f.Options) > 0 {
			return f, true
		}
	}
	return usecase.FieldSpec{}, false
}

func (s *recordScreen[T]) askFilter() usecase.RecordFilter {
	f := s.ctl.State().Filter
	f.Search, _ = s.app.ui.TextInput("Search", f.Search)
	f.StartDate, _ = s.app.ui.TextInput("Start date (YYYY-MM-DD)", f.StartDate)
	f.EndDate, _ = s.app.ui.TextInput("End date (YYYY-MM-DD)", f.EndDate)
	if s.ctl.Kind().ReadOnly {
		choice, err := s.app.ui.Select("Type", append([]string{"All"}, usecase.TransactionTypes...))
		if err == nil {
			f.Type = choice
			if choice == "All" {
				f.Type = ""
			}
		}
	}
	return f
}

func (s *recordScreen[T]) askID() (int64, bool) {
	raw, err := s.app.ui.TextInput("ID", "")
	if err != nil {
		return 0, false
	}
	id, err := recordID(raw)
	if err != nil {
		s.app.ui.LogWarning("%s", err)
		return 0, false
	}
	return id, true
}

func (s *recordScreen[T]) askInt(label string) (int, bool) {
	raw, err := s.app.ui.TextInput(label, "")
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.app.ui.LogWarning("invalid number %q", raw)
		return 0, false
	}
	return n, true
}

func without(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
