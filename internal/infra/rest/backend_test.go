package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sabor/config"
	"sabor/internal/domain/entity"
	"sabor/internal/infra/api"

	"github.com/labstack/echo/v4"
)

// memoryTokenStore implements service.TokenStore without touching disk.
type memoryTokenStore struct {
	pair entity.TokenPair
}

func (m *memoryTokenStore) Save(pair entity.TokenPair) error {
	m.pair = pair

	return nil
}

func (m *memoryTokenStore) Load() (entity.TokenPair, error) {
	return m.pair, nil
}

func (m *memoryTokenStore) Clear() error {
	m.pair = entity.TokenPair{}

	return nil
}

// fakeBackend is an in-process echo server speaking the backend's envelope
// protocol, plus an API client pointed at it.
type fakeBackend struct {
	echo   *echo.Echo
	client *api.Client
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	e := echo.New()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeouts.Default = time.Second
	cfg.API.Timeouts.Auth = 2 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(cfg, api.NewTokenSource(&memoryTokenStore{}), logger)

	return &fakeBackend{echo: e, client: client}
}

func respondData(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

func respondError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}
