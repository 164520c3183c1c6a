package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/utils"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/go-resty/resty/v2"
)

const (
	userAgent = "edsc-portals-client"

	retryCount   = 2
	retryWait    = 100 * time.Millisecond
	retryMaxWait = time.Second
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP implementation of [PortalAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the request
// timeout. Connection failures and gateway errors are retried.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPPortalAdapter(cfg config.Adapter, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetError(&models.ErrorResponse{}).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(shouldRetry)

	logger.Debug().Str("base_url", baseURL).Msg("portal adapter created")

	return &httpPortalAdapter{client: client, logger: logger}, nil
}

func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListPortals implements [PortalAdapter] via GET /api/portals.
func (h *httpPortalAdapter) ListPortals(ctx context.Context) ([]models.PortalSummary, error) {
	var summaries []models.PortalSummary

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&summaries).
		Get("/api/portals")
	if err != nil {
		return nil, fmt.Errorf("list portals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetPortal implements [PortalAdapter] via GET /api/portals/{portalID}.
func (h *httpPortalAdapter) GetPortal(ctx context.Context, portalID string) (models.PortalConfig, error) {
	var portal models.PortalConfig

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("portalID", portalID).
		SetResult(&portal).
		Get("/api/portals/{portalID}")
	if err != nil {
		return models.PortalConfig{}, fmt.Errorf("get portal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PortalConfig{}, err
	}

	return portal, nil
}

// IsDefaultPortal implements [PortalAdapter] via
// GET /api/portals/{portalID}/default.
func (h *httpPortalAdapter) IsDefaultPortal(ctx context.Context, portalID string) (bool, error) {
	var result models.DefaultPortalResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("portalID", portalID).
		SetResult(&result).
		Get("/api/portals/{portalID}/default")
	if err != nil {
		return false, fmt.Errorf("default portal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.IsDefault, nil
}

// GetServerVersion implements [PortalAdapter] via GET /api/version.
func (h *httpPortalAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
