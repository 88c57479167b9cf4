package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sabor/config"
	"sabor/internal/domain/entity"
	"sabor/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// envelope is the response shape shared by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// Client is the HTTP wrapper shared by the REST repositories. It owns bearer
// attachment, per-endpoint timeouts, envelope decoding, error normalization
// and the single 401-triggered refresh-and-retry.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         *TokenSource
	logger         *slog.Logger
	defaultTimeout time.Duration
	authTimeout    time.Duration

	// refreshGroup coalesces concurrent refresh attempts: requests that hit
	// 401 while a refresh is in flight await the same call instead of
	// issuing duplicates.
	refreshGroup singleflight.Group
}

// NewClient creates the shared API client.
func NewClient(cfg *config.Config, tokens *TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient:     &http.Client{},
		tokens:         tokens,
		logger:         logger,
		defaultTimeout: cfg.API.Timeouts.Default,
		authTimeout:    cfg.API.Timeouts.Auth,
	}
}

// Tokens exposes the client's token source for session management.
func (c *Client) Tokens() *TokenSource {
	return c.tokens
}

// Get issues a GET request and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, true)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, true)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out, true)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out, true)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, true)
}

// authEndpoints never carry a bearer token: they either establish the session
// or run before one exists.
func isAuthEndpoint(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/auth/")
}

// login and register sit behind the gateway's slower fraud checks.
func (c *Client) timeoutFor(endpoint string) time.Duration {
	switch endpoint {
	case "/auth/login", "/auth/register":
		return c.authTimeout
	default:
		return c.defaultTimeout
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, canRetry bool) error {
	// Refresh proactively when the access token is about to expire, saving a
	// round trip that would end in 401. Failures fall through: the 401 path
	// below stays authoritative.
	if !isAuthEndpoint(endpoint) && c.tokens.ShouldRefresh(time.Now()) {
		if err := c.refreshTokens(ctx, c.tokens.AccessToken()); err != nil {
			c.logger.Debug("proactive token refresh failed", slog.Any("error", err))
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeoutFor(endpoint))
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if access := c.tokens.AccessToken(); access != "" && !isAuthEndpoint(endpoint) {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	usedAccess := c.tokens.AccessToken()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := normalizeTransportError(err)
		c.logger.Warn("request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("code", apiErr.Code),
		)

		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && canRetry && !isAuthEndpoint(endpoint) && c.tokens.RefreshToken() != "" {
		if err := c.refreshTokens(ctx, usedAccess); err != nil {
			return err
		}

		return c.do(ctx, method, endpoint, body, out, false)
	}

	return c.decodeResponse(resp, endpoint, out)
}

func (c *Client) decodeResponse(resp *http.Response, endpoint string, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return normalizeTransportError(err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return &APIError{
				Code:    CodeInvalidResponse,
				Message: "Resposta inesperada do servidor.",
				Details: err.Error(),
				Status:  resp.StatusCode,
			}
		}
	} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// 204-style success without a body.
		env.Success = true
	}

	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{
			Code:    CodeServerError,
			Message: http.StatusText(resp.StatusCode),
			Status:  resp.StatusCode,
		}
		if env.Error != nil {
			if env.Error.Code != "" {
				apiErr.Code = env.Error.Code
			}
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
			if env.Error.Details != nil {
				apiErr.Details = fmt.Sprint(env.Error.Details)
			}
		}
		c.logger.Warn("server reported error",
			slog.String("endpoint", endpoint),
			slog.String("code", apiErr.Code),
			slog.Int("status", apiErr.Status),
		)

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{
				Code:    CodeInvalidResponse,
				Message: "Resposta inesperada do servidor.",
				Details: err.Error(),
				Status:  resp.StatusCode,
			}
		}
	}

	return nil
}

type refreshData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refreshTokens exchanges the refresh token for a new pair. Concurrent calls
// share one network request; callers whose stale token was already replaced
// return immediately. A failed exchange clears the stored pair, so the next
// action surfaces as a session-expired login prompt instead of a retry loop.
func (c *Client) refreshTokens(ctx context.Context, staleAccess string) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		if c.tokens.Authenticated() && c.tokens.AccessToken() != staleAccess {
			// Another caller finished the exchange first.
			return nil, nil
		}

		refresh := c.tokens.RefreshToken()
		if refresh == "" {
			return nil, c.expireSession()
		}

		// The exchange must not die with whichever caller loses a race,
		// so it detaches from the caller's cancellation.
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.defaultTimeout)
		defer cancel()

		raw, err := json.Marshal(map[string]string{"refreshToken": refresh})
		if err != nil {
			return nil, errors.Wrap(err, "marshal refresh body")
		}

		req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrap(err, "build refresh request")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-Id", uuid.NewString())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, normalizeTransportError(err)
		}
		defer resp.Body.Close()

		var data refreshData
		if err := c.decodeResponse(resp, "/auth/refresh", &data); err != nil {
			return nil, c.expireSession()
		}

		if err := c.tokens.Set(entity.TokenPair{
			AccessToken:  data.AccessToken,
			RefreshToken: data.RefreshToken,
		}); err != nil {
			return nil, err
		}
		c.logger.Debug("token pair refreshed")

		return nil, nil
	})

	return err
}

func (c *Client) expireSession() error {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Error("failed to clear tokens", slog.Any("error", err))
	}

	return &APIError{
		Code:    CodeSessionExpired,
		Message: "Sua sessão expirou. Faça login novamente.",
		Status:  http.StatusUnauthorized,
	}
}
