package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/api"
	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/spf13/cobra"
)

func (app *CLIApp) authUseCase() *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(&statusAuthRepo{next: api.NewAuthClient(app.client), ui: app.ui}, app.guard, &formView{ui: app.ui}, nil, app.logger)
}

func (app *CLIApp) newLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and open the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			return app.login(cmd.Context(), email)
		},
	}
	cmd.Flags().StringP("email", "e", "", "Account email")
	return cmd
}

// login pergunta o que faltar e, com sucesso, mostra o dashboard uma vez.
func (app *CLIApp) login(ctx context.Context, email string) error {
	if nav, session, err := app.guard.Check(true); err == nil && nav == usecase.ToDashboard {
		app.session = session
		app.ui.LogInfo("Already logged in as %s", session.User.DisplayName())
		return app.runDashboard(ctx, true)
	}

	var err error
	if email == "" {
		if email, err = app.ui.TextInput("Email", ""); err != nil {
			return err
		}
	}
	password, err := app.ui.Password("Password")
	if err != nil {
		return err
	}

	session, err := app.authUseCase().Login(ctx, entity.Credentials{Email: email, Password: password})
	if err != nil {
		return silent(err)
	}
	app.session = session
	return app.runDashboard(ctx, true)
}

func (app *CLIApp) newRegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			return app.register(cmd.Context(), name, email)
		},
	}
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().StringP("email", "e", "", "Account email")
	return cmd
}

func (app *CLIApp) register(ctx context.Context, name, email string) error {
	var err error
	if name == "" {
		if name, err = app.ui.TextInput("Name", ""); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = app.ui.TextInput("Email", ""); err != nil {
			return err
		}
	}
	password, err := app.ui.Password("Password")
	if err != nil {
		return err
	}
	confirm, err := app.ui.Password("Confirm password")
	if err != nil {
		return err
	}

	form := usecase.RegistrationForm{Name: name, Email: email, Password: password, Confirm: confirm}
	if err := app.authUseCase().Register(ctx, form); err != nil {
		return silent(err)
	}
	return app.login(ctx, form.Email)
}

func (app *CLIApp) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the local session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := app.guard.Clear(); err != nil {
				return err
			}
			app.ui.LogSuccess("Logged out")
			return nil
		},
	}
}

func (app *CLIApp) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(_ *cobra.Command, _ []string) error {
			app.ui.LogInfo("%s", app.guard.Greeting())
			(&formView{ui: app.ui}).ShowProfile(app.session.User)
			return nil
		},
	}
}

// silentError já foi mostrado ao usuário pela visão; o cobra não deve repetir a mensagem.
type silentError struct {
	err error
}

func (e silentError) Error() string { return e.err.Error() }
func (e silentError) Unwrap() error { return e.err }

func silent(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	return silentError{err: err}
}

// IsSilent indica se err já foi mostrado ao usuário.
func IsSilent(err error) bool {
	var s silentError
	return errors.As(err, &s)
}

// cancelled trata a desistência do usuário como saída normal.
func cancelled(err error) error {
	if errors.Is(err, types.ErrCancelled) {
		return nil
	}
	return err
}

func recordID(arg string) (int64, error) {
	var id int64
	if _, err := fmt.Sscan(arg, &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
