package platform

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient posts JSON documents with a bearer credential. It makes exactly one
// attempt per call.
type HTTPClient struct {
	Client *http.Client
	Token  string
	Logger zerolog.Logger
}

// NewHTTPClient builds a client. A zero timeout means the call may block until
// the context is done.
func NewHTTPClient(token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Client: &http.Client{
			Timeout: timeout,
		},
		Token:  token,
		Logger: zerolog.Nop(),
	}
}

// PostJSON sends body to url. The caller owns the returned response body.
func (c *HTTPClient) PostJSON(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderClientRequestID, requestID)
	SetBearer(req, c.Token)

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		c.Logger.Debug().Err(err).Str("url", url).Str("request_id", requestID).Msg("POST failed")
		return nil, err
	}
	c.Logger.Debug().
		Str("url", url).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("POST completed")
	return resp, nil
}
