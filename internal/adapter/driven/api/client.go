package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/diillson/finance-tracker-cli/pkg/version"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// TokenSource devolve o token da sessão atual, ou "" quando não há sessão.
type TokenSource interface {
	Token() string
}

// envelope é o formato comum das respostas do backend.
type envelope struct {
	Success       *bool           `json:"success"`
	Data          json.RawMessage `json:"data"`
	Pagination    json.RawMessage `json:"pagination"`
	Message       string          `json:"message"`
	Error         string          `json:"error"`
	Token         string          `json:"token"`
	User          json.RawMessage `json:"user"`
	UpdatedFields []string        `json:"updated_fields"`
}

// failed indica se a resposta é um envelope de falha.
func (e envelope) failed(status int) bool {
	if e.Success != nil {
		return !*e.Success
	}
	return status >= http.StatusBadRequest
}

// errorMessage usa "error", depois "message", depois o texto do status HTTP.
func (e envelope) errorMessage(status int) string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(status)
}

// Client é o cliente HTTP da API REST do finance tracker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *pterm.Logger
}

// NewClient cria um novo cliente. timeout zero significa sem timeout.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *pterm.Logger) *Client {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// BaseURL devolve a raiz da API usada pelo cliente.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executa a requisição e decodifica o envelope. O status HTTP é devolvido
// mesmo quando err é um *types.ServerError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (int, envelope, error) {
	var env envelope
	op := fmt.Sprintf("%s %s", method, path)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, env, fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, env, fmt.Errorf("error building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", c.logger.Args("op", op, "request_id", requestID, "error", err))
		return 0, env, &types.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed", c.logger.Args(
		"op", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, env, &types.TransportError{Op: op, Err: err}
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return resp.StatusCode, env, &types.TransportError{Op: op, Err: fmt.Errorf("invalid JSON response: %w", err)}
		}
	}

	if env.failed(resp.StatusCode) {
		return resp.StatusCode, env, &types.ServerError{
			Status:  resp.StatusCode,
			Message: env.errorMessage(resp.StatusCode),
		}
	}

	return resp.StatusCode, env, nil
}

// decodeData decodifica o campo data; null ou ausente mantém o valor zero.
func decodeData(op string, raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return &types.TransportError{Op: op, Err: fmt.Errorf("invalid data payload: %w", err)}
	}
	return nil
}

func userQuery(userID int64) url.Values {
	q := url.Values{}
	q.Set("user_id", fmt.Sprint(userID))
	return q
}
