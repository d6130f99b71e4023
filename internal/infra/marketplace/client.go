// Package marketplace calls the marketplace REST API on behalf of the console.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/constants"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client is a thin JSON client for the marketplace API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client from the upstream configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Upstream == nil || cfg.Upstream.BaseURL == "" {
		return nil, errors.New("upstream base url is required")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Upstream.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}, nil
}

// decodeError marks a 2xx response whose body is not the expected JSON.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return e.err.Error() }

func (e *decodeError) Unwrap() error { return e.err }

// errorBody is the NestJS error envelope; message is a string or a list of strings.
type errorBody struct {
	StatusCode int             `json:"statusCode"`
	Message    json.RawMessage `json:"message"`
	Error      string          `json:"error"`
}

func (b errorBody) text() string {
	var single string
	if err := json.Unmarshal(b.Message, &single); err == nil && single != "" {
		return single
	}
	var list []string
	if err := json.Unmarshal(b.Message, &list); err == nil && len(list) > 0 {
		return strings.Join(list, "; ")
	}

	return b.Error
}

// do sends one request and decodes a 2xx JSON body into out. It never retries.
func (c *Client) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+accessToken)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(ctx, method, path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &decodeError{err: errors.Wrapf(err, "failed to decode %s %s response", method, path)}
	}

	return nil
}

func (c *Client) statusError(ctx context.Context, method, path string, resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&eb)
	message := eb.text()
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Marketplace request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("message", message),
	)

	switch {
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return domainerrors.ErrInvalidCredentials.WithDetails(message)
	default:
		return domainerrors.ErrUpstreamUnavailable.WithDetails(message)
	}
}

// Module provides the marketplace API clients
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewAuthClient,
		NewSubscriptionClient,
	),
)
