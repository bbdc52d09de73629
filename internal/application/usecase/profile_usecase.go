package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/pterm/pterm"
)

// DeletePhrase é o texto que o usuário precisa digitar para apagar a conta.
const DeletePhrase = "DELETE"

// ProfilePrompter obtém as duas confirmações da exclusão da conta.
type ProfilePrompter interface {
	Confirmer
	TextInput(label, defaultValue string) (string, error)
}

// ProfileView mostra o perfil carregado.
type ProfileView interface {
	FormView
	ShowProfile(user entity.User)
}

// ProfileForm são os campos editáveis; vazios não são enviados.
type ProfileForm struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ProfileUseCase implementa o painel de perfil do usuário logado.
type ProfileUseCase struct {
	repo    repository.ProfileRepository
	guard   *SessionGuard
	view    ProfileView
	prompts ProfilePrompter
	delay   Delay
	userID  int64
	logger  *pterm.Logger

	form ProfileForm
}

// NewProfileUseCase cria o painel. delay nil usa SleepDelay.
func NewProfileUseCase(
	repo repository.ProfileRepository,
	guard *SessionGuard,
	view ProfileView,
	prompts ProfilePrompter,
	delay Delay,
	userID int64,
	logger *pterm.Logger,
) *ProfileUseCase {
	if delay == nil {
		delay = SleepDelay
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &ProfileUseCase{
		repo:    repo,
		guard:   guard,
		view:    view,
		prompts: prompts,
		delay:   delay,
		userID:  userID,
		logger:  logger,
	}
}

// Form devolve o formulário editável atual.
func (p *ProfileUseCase) Form() ProfileForm {
	return p.form
}

// Load busca o perfil e preenche a visão e o formulário.
func (p *ProfileUseCase) Load(ctx context.Context) (entity.User, error) {
	user, err := p.repo.GetProfile(ctx, p.userID)
	if err != nil {
		p.view.Alert(userMessage(err, "Network error. Please try again."))
		return entity.User{}, err
	}
	p.form = ProfileForm{Name: user.Name, Email: user.Email, Phone: user.Phone}
	p.view.ShowProfile(user)
	return user, nil
}

// BuildProfileUpdate monta o payload parcial com os campos não vazios.
func BuildProfileUpdate(form ProfileForm) (entity.ProfileUpdate, error) {
	update := entity.ProfileUpdate{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Phone:    strings.TrimSpace(form.Phone),
		Password: form.Password,
	}
	if update.IsEmpty() {
		return update, types.NewValidationError("Please fill at least one field")
	}
	if update.Email != "" {
		if err := checkmail.ValidateFormat(update.Email); err != nil {
			return update, types.NewValidationError("Please enter a valid email address")
		}
	}
	return update, nil
}

// Update envia a atualização parcial, recarrega o perfil e limpa a senha.
func (p *ProfileUseCase) Update(ctx context.Context, form ProfileForm) (int, error) {
	update, err := BuildProfileUpdate(form)
	if err != nil {
		p.view.Inline(err.Error(), false)
		return 0, err
	}

	n, err := p.repo.UpdateProfile(ctx, p.userID, update)
	if err != nil {
		p.logger.Debug("profile update failed", p.logger.Args("error", err))
		p.view.Inline(userMessage(err, "Network error. Please try again."), false)
		return 0, err
	}

	p.view.Inline(fmt.Sprintf("%d field(s) updated!", n), true)
	p.form.Password = ""
	if _, err := p.Load(ctx); err != nil {
		return n, err
	}
	return n, nil
}

// Delete apaga a conta após a confirmação sim/não e a frase digitada.
// Em caso de sucesso limpa a sessão local e espera o redirecionamento.
func (p *ProfileUseCase) Delete(ctx context.Context) error {
	if !confirmed(p.prompts, "Are you sure you want to delete your account? This cannot be undone.") {
		return types.ErrCancelled
	}
	typed, err := p.prompts.TextInput(fmt.Sprintf("Type %s to confirm", DeletePhrase), "")
	if err != nil || typed != DeletePhrase {
		p.view.Inline("Account deletion cancelled", false)
		return types.ErrCancelled
	}

	msg, err := p.repo.DeleteProfile(ctx, p.userID)
	if err != nil {
		p.view.Alert(userMessage(err, "Network error. Please try again."))
		return err
	}

	if err := p.guard.Clear(); err != nil {
		return err
	}
	p.view.Inline(orDefault(msg, "Account deleted"), true)
	return p.delay(ctx, profileRedirectDelay)
}
