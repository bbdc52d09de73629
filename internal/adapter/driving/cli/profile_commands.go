package cli

import (
	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/api"
	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/spf13/cobra"
)

func (app *CLIApp) profileUseCase() *usecase.ProfileUseCase {
	return usecase.NewProfileUseCase(
		&statusProfileRepo{next: api.NewProfileClient(app.client), ui: app.ui},
		app.guard,
		&formView{ui: app.ui},
		app.ui,
		nil,
		app.session.User.ID,
		app.logger,
	)
}

func (app *CLIApp) newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.profileUseCase().Load(cmd.Context())
			return silent(err)
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.profileUseCase().Load(cmd.Context())
			return silent(err)
		},
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Update name, email, phone or password",
		Long:  "Only the fields you pass are sent. Use --change-password to be asked for a new password.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := usecase.ProfileForm{
				Name:  flagString(cmd, "name"),
				Email: flagString(cmd, "email"),
				Phone: flagString(cmd, "phone"),
			}
			if flagBool(cmd, "change-password") {
				password, err := app.ui.Password("New password")
				if err != nil {
					return err
				}
				form.Password = password
			}
			_, err := app.profileUseCase().Update(cmd.Context(), form)
			return silent(err)
		},
	}
	update.Flags().String("name", "", "New name")
	update.Flags().StringP("email", "e", "", "New email")
	update.Flags().String("phone", "", "New phone number")
	update.Flags().Bool("change-password", false, "Prompt for a new password")

	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account permanently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return silent(cancelled(app.profileUseCase().Delete(cmd.Context())))
		},
	}

	cmd.AddCommand(show, update, del)
	return cmd
}
