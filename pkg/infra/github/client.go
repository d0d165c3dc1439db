package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ankitskvmdam/download-priors/pkg/domain/interfaces"
	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for the raw-file client
type Option func(*client)

// WithBaseURL sets the remote directory the priors are fetched from
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client that reads raw prior files from a GitHub repository
func NewClient(opts ...Option) interfaces.PriorSource {
	c := &client{
		baseURL:    model.DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c
}

// Open issues a streamed GET for <baseURL>/<name>
func (c *client) Open(ctx context.Context, name string) (*model.RemoteFile, error) {
	url := c.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}

	// GitHub redirects raw URLs to its content host; http.Client follows them.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to request prior", goerr.V("url", url))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, goerr.Wrap(model.ErrUnexpectedStatus, "remote refused prior download",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
		)
	}

	size := resp.ContentLength
	if size < 0 {
		size = 0
	}

	return &model.RemoteFile{
		Name: name,
		Size: size,
		Body: resp.Body,
	}, nil
}
