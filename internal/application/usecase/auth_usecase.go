package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/pterm/pterm"
)

const (
	registerRedirectDelay = 1500 * time.Millisecond
	profileRedirectDelay  = 2 * time.Second
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormView é onde os formulários de autenticação e perfil mostram o resultado.
type FormView interface {
	// Inline mostra uma mensagem junto ao formulário.
	Inline(message string, success bool)
	// FieldError mostra a mensagem de um campo específico.
	FieldError(field, message string)
	// Alert mostra um erro bloqueante.
	Alert(message string)
}

// Delay espera d ou até o contexto ser cancelado.
type Delay func(ctx context.Context, d time.Duration) error

// SleepDelay é o Delay real.
func SleepDelay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// RegistrationForm são os campos do cadastro, incluindo a confirmação de senha.
type RegistrationForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// AuthUseCase implementa login e cadastro.
type AuthUseCase struct {
	repo   repository.AuthRepository
	guard  *SessionGuard
	view   FormView
	delay  Delay
	logger *pterm.Logger
}

// NewAuthUseCase cria o caso de uso. delay nil usa SleepDelay.
func NewAuthUseCase(repo repository.AuthRepository, guard *SessionGuard, view FormView, delay Delay, logger *pterm.Logger) *AuthUseCase {
	if delay == nil {
		delay = SleepDelay
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &AuthUseCase{repo: repo, guard: guard, view: view, delay: delay, logger: logger}
}

// Login envia as credenciais e persiste a sessão em caso de sucesso.
// Não há nova tentativa em caso de falha.
func (a *AuthUseCase) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		err := types.NewValidationError("Please fill in all fields")
		a.view.Inline(err.Error(), false)
		return entity.Session{}, err
	}

	session, _, err := a.repo.Login(ctx, creds)
	if err != nil {
		a.logger.Debug("login failed", a.logger.Args("status", types.StatusOf(err), "error", err))
		switch {
		case types.IsTransportError(err):
			a.view.Alert("Network error. Please try again.")
		case types.StatusOf(err) == http.StatusUnauthorized:
			a.view.Inline(userMessage(err, ""), false)
		case types.StatusOf(err) == http.StatusInternalServerError:
			a.view.Alert(orDefault(userMessage(err, ""), "Server error. Please try again later."))
		default:
			a.view.Alert("Unexpected error occurred")
		}
		return entity.Session{}, err
	}

	if err := a.guard.Save(session); err != nil {
		return entity.Session{}, err
	}
	a.view.Inline("Login successful! Redirecting...", true)
	return session, nil
}

// ValidateRegistration avalia todas as regras, sem parar na primeira falha.
func ValidateRegistration(form RegistrationForm) types.FieldErrors {
	fe := types.FieldErrors{}
	if len([]rune(strings.TrimSpace(form.Name))) < 2 {
		fe["name"] = "Name must be at least 2 characters"
	}
	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		fe["email"] = "Please enter a valid email address"
	}
	if len(form.Password) < 6 {
		fe["password"] = "Password must be at least 6 characters"
	}
	if form.Confirm != form.Password {
		fe["confirm"] = "Passwords do not match"
	}
	return fe
}

// Register valida localmente e, só então, cria a conta. Em caso de sucesso
// espera o atraso do redirecionamento para o login.
func (a *AuthUseCase) Register(ctx context.Context, form RegistrationForm) error {
	if fe := ValidateRegistration(form); len(fe) > 0 {
		for field, msg := range fe {
			a.view.FieldError(field, msg)
		}
		return fe
	}

	_, err := a.repo.Register(ctx, entity.Registration{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		a.logger.Debug("register failed", a.logger.Args("status", types.StatusOf(err), "error", err))
		switch status := types.StatusOf(err); {
		case types.IsTransportError(err):
			a.view.Alert("Network error. Please check your connection.")
		case status == http.StatusBadRequest:
			a.view.FieldError("email", orDefault(userMessage(err, ""), "Validation error"))
		case status == http.StatusConflict:
			a.view.FieldError("email", orDefault(userMessage(err, ""), "Email already exists"))
		case status == http.StatusInternalServerError:
			a.view.Alert("Server error. Please try again later.")
		default:
			a.view.Alert("Unexpected error occurred")
		}
		return err
	}

	a.view.Inline("Registration successful! Redirecting to login...", true)
	return a.delay(ctx, registerRedirectDelay)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
