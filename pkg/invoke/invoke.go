// Package invoke calls downstream services addressed by logical app id.
// The transport mode is an injected strategy: mediated routing through a
// sidecar that performs discovery and retries, or a single direct HTTP
// attempt against a statically configured base URL. Callers depend on the
// Client contract, never on the concrete transport.
package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
)

// Response is the normalized downstream reply.
type Response struct {
	Status int
	Body   []byte
}

// Client invokes an HTTP-shaped endpoint on a downstream service.
type Client interface {
	Invoke(ctx context.Context, app, method, path string, body []byte) (*Response, error)
}

// Resolver turns a logical app id and relative path into a request URL.
type Resolver interface {
	URL(app, path string) (string, error)
}

// MediatedResolver routes every call through the sidecar's invocation
// endpoint; discovery, routing and retries are the sidecar's concern.
type MediatedResolver struct {
	SidecarBaseURL string
}

func (r MediatedResolver) URL(app, path string) (string, error) {
	base := strings.TrimSuffix(r.SidecarBaseURL, "/")
	return fmt.Sprintf("%s/v1.0/invoke/%s/method/%s", base, app, strings.TrimPrefix(path, "/")), nil
}

// DirectResolver maps app ids to base URLs and issues direct calls, one
// attempt, no retries.
type DirectResolver struct {
	Routes map[string]string
}

func (r DirectResolver) URL(app, path string) (string, error) {
	base, ok := r.Routes[app]
	if !ok {
		return "", &apperrors.DownstreamError{
			Target: app,
			Op:     "resolve",
			Err:    fmt.Errorf("no base URL configured for app %q", app),
		}
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/"), nil
}

// HTTPClient is the single Client implementation; the resolver decides the
// transport mode.
type HTTPClient struct {
	resolver Resolver
	client   *http.Client
}

func NewHTTPClient(resolver Resolver, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		resolver: resolver,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Invoke(ctx context.Context, app, method, path string, body []byte) (*Response, error) {
	u, err := c.resolver.URL(app, path)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &apperrors.DownstreamError{Target: app, Op: method + " " + path, Err: err}
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &apperrors.DownstreamError{Target: app, Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.DownstreamError{Target: app, Op: method + " " + path, Err: err}
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}

// DecodeJSON maps a downstream response onto the shared error taxonomy and
// decodes a 2xx body into out (out may be nil for empty replies). Both
// transport modes flow through here, so the taxonomy is transport-agnostic.
func DecodeJSON(resp *Response, target string, out any) error {
	switch {
	case resp.Status == http.StatusNotFound:
		return &apperrors.NotFoundError{Resource: target, ID: ""}
	case resp.Status >= 500:
		return &apperrors.DownstreamError{
			Target: target,
			Op:     "invoke",
			Err:    fmt.Errorf("status %d: %s", resp.Status, resp.Body),
		}
	case resp.Status >= 400:
		return fmt.Errorf("%s rejected request: status %d: %s", target, resp.Status, resp.Body)
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &apperrors.DownstreamError{Target: target, Op: "decode", Err: err}
	}
	return nil
}
