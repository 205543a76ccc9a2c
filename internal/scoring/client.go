// Package scoring submits laptop configurations to the remote price-scoring
// service and decodes its prediction.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"laptop-price/pkg/api"
	fiacerrors "laptop-price/pkg/errors"
	"laptop-price/pkg/platform"
)

// maxErrorBody bounds how much of a failed reply is echoed back to the user.
const maxErrorBody = 512

// Config holds everything needed to reach the scoring service.
type Config struct {
	URL   string
	Token string

	// Timeout of zero leaves the call unbounded.
	Timeout time.Duration

	HTTPClient *http.Client
	Logger     zerolog.Logger
	// Diagnostics receives the user-facing progress and failure lines.
	// Defaults to os.Stdout.
	Diagnostics io.Writer
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c == nil {
		return fiacerrors.NewConfigError("scoring config", "is nil")
	}
	if strings.TrimSpace(c.URL) == "" {
		return fiacerrors.NewConfigError("service URL", "is required")
	}
	if strings.TrimSpace(c.Token) == "" {
		return fiacerrors.NewConfigError("API token", "is required")
	}
	return nil
}

// Client performs one authenticated POST per prediction.
type Client struct {
	url    string
	http   *platform.HTTPClient
	logger zerolog.Logger
	diag   io.Writer
}

// NewClient validates cfg and builds a client.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc := platform.NewHTTPClient(cfg.Token, cfg.Timeout)
	if cfg.HTTPClient != nil {
		hc.Client = cfg.HTTPClient
	}
	hc.Logger = cfg.Logger

	diag := cfg.Diagnostics
	if diag == nil {
		diag = os.Stdout
	}

	return &Client{
		url:    cfg.URL,
		http:   hc,
		logger: cfg.Logger,
		diag:   diag,
	}, nil
}

// Predict sends req and returns the decoded prediction.
//
// Transport failures and non-2xx replies are reported to the diagnostics writer
// and yield (nil, nil): there is nothing to present, but the session goes on.
// A 2xx reply that does not decode is returned as a fatal error, and so is
// ctx.Err() when ctx ends before the reply arrives.
func (c *Client) Predict(ctx context.Context, req *api.ScoreRequest) (*api.ScoreResponse, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		if fiacerrors.IsRecoverable(err) {
			c.report(err)
			return nil, nil
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, req *api.ScoreRequest) (*api.ScoreResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	fmt.Fprintf(c.diag, "Sending request to %s...\n", c.url)

	httpResp, err := c.http.PostJSON(ctx, c.url, body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.logger.Debug().Err(err).Str("url", c.url).Msg("Scoring request abandoned")
			return nil, fmt.Errorf("request to %s abandoned: %w", c.url, ctxErr)
		}
		return nil, fiacerrors.NewTransportError(c.url, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBody))
		return nil, fiacerrors.NewHTTPStatusError(httpResp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out api.ScoreResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fiacerrors.NewDecodeError(err)
	}

	c.logger.Debug().
		Int("columns", len(out.Results.Output1.Value.ColumnNames)).
		Str("type", out.Results.Output1.Type).
		Msg("Prediction received")
	return &out, nil
}

func (c *Client) report(err error) {
	code := fiacerrors.CodeOf(err)
	msg := err.Error()
	var se *fiacerrors.ScoringError
	if errors.As(err, &se) {
		msg = se.Message
	}
	fmt.Fprintf(c.diag, "Error of type %s>> %s\n", code, msg)
	c.logger.Warn().Err(err).Str("url", c.url).Msg("Scoring request failed")
}
