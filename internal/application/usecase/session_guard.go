package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/golang-jwt/jwt"
	"github.com/pterm/pterm"
)

// Chaves fixas da sessão no armazenamento local.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Navigation é o destino decidido pelo guard.
type Navigation int

const (
	// Stay mantém o comando atual.
	Stay Navigation = iota
	// ToDashboard redireciona a tela inicial para o dashboard.
	ToDashboard
)

// SessionGuard verifica a sessão local antes de cada comando. Nunca acessa a rede.
type SessionGuard struct {
	storage repository.LocalStorage
	logger  *pterm.Logger
}

// NewSessionGuard cria um guard sobre o armazenamento local.
func NewSessionGuard(storage repository.LocalStorage, logger *pterm.Logger) *SessionGuard {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &SessionGuard{storage: storage, logger: logger}
}

// Check valida a sessão. landing indica a tela inicial (comando raiz sem
// subcomando), que é redirecionada ao dashboard quando há sessão válida.
func (g *SessionGuard) Check(landing bool) (Navigation, entity.Session, error) {
	session, err := g.Current()
	if err != nil {
		return Stay, entity.Session{}, err
	}
	if landing {
		return ToDashboard, session, nil
	}
	return Stay, session, nil
}

// Current lê a sessão armazenada. Dados corrompidos ou token expirado limpam
// a sessão.
func (g *SessionGuard) Current() (entity.Session, error) {
	token, hasToken, err := g.storage.GetItem(TokenKey)
	if err != nil {
		return entity.Session{}, fmt.Errorf("reading session: %w", err)
	}
	rawUser, hasUser, err := g.storage.GetItem(UserKey)
	if err != nil {
		return entity.Session{}, fmt.Errorf("reading session: %w", err)
	}
	if !hasToken || !hasUser || token == "" {
		return entity.Session{}, types.ErrNotAuthenticated
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		g.logger.Warn("corrupt session user, clearing", g.logger.Args("error", err))
		if clearErr := g.Clear(); clearErr != nil {
			return entity.Session{}, clearErr
		}
		return entity.Session{}, types.ErrNotAuthenticated
	}

	if tokenExpired(token) {
		g.logger.Debug("session token expired")
		if err := g.Clear(); err != nil {
			return entity.Session{}, err
		}
		return entity.Session{}, types.ErrSessionExpired
	}

	return entity.Session{Token: token, User: user}, nil
}

// tokenExpired lê o claim exp sem verificar a assinatura.
// Tokens que não são JWT, ou sem exp, nunca expiram aqui.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	if _, ok := claims["exp"]; !ok {
		return false
	}
	return !claims.VerifyExpiresAt(now().Unix(), true)
}

// Save persiste a sessão; chamado apenas pelo login.
func (g *SessionGuard) Save(session entity.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}
	if err := g.storage.SetItem(TokenKey, session.Token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if err := g.storage.SetItem(UserKey, string(user)); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Clear remove as duas chaves da sessão.
func (g *SessionGuard) Clear() error {
	for _, key := range []string{TokenKey, UserKey} {
		if err := g.storage.RemoveItem(key); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
	}
	return nil
}

// Token implementa api.TokenSource. Sem sessão, não há header Authorization.
func (g *SessionGuard) Token() string {
	token, ok, err := g.storage.GetItem(TokenKey)
	if err != nil || !ok {
		return ""
	}
	return token
}

// Greeting é a saudação da barra de navegação.
func (g *SessionGuard) Greeting() string {
	session, err := g.Current()
	if err != nil {
		return "Welcome"
	}
	return fmt.Sprintf("Welcome, %s", session.User.DisplayName())
}
