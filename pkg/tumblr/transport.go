// Package tumblr is a client for the Tumblr v2 REST API. It signs requests
// with a pre-obtained OAuth2 bearer token, serializes compiled NPF content
// into the platform's multipart/JSON wire format, and exposes convenience
// methods for blog, user and post state.
package tumblr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/tinyland-inc/tumblweed/pkg/npf"
)

const defaultBaseURL = "https://api.tumblr.com/v2"

// Transport issues authenticated HTTP calls against the API. It owns verb
// dispatch and body assembly and nothing else: no retries, no rate
// limiting, no response caching.
type Transport struct {
	rest *resty.Client
	log  *slog.Logger
}

// NewTransport builds a transport rooted at baseURL (the production API
// when empty), authenticating every request with tokens from ts.
func NewTransport(baseURL string, ts oauth2.TokenSource, log *slog.Logger) *Transport {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = slog.Default()
	}

	hc := http.DefaultClient
	if ts != nil {
		hc = oauth2.NewClient(context.Background(), ts)
	}
	rest := resty.NewWithClient(hc).SetBaseURL(baseURL)

	return &Transport{rest: rest, log: log}
}

// Get performs a GET and returns the decoded JSON body.
func (t *Transport) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	t.log.Debug("api request", "method", "GET", "path", path)
	resp, err := t.rest.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(path)
	return decode(resp, err)
}

// GetBytes performs a GET and returns the raw body, for binary assets such
// as avatars.
func (t *Transport) GetBytes(ctx context.Context, path string, params url.Values) ([]byte, error) {
	t.log.Debug("api request", "method", "GET", "path", path, "raw", true)
	resp, err := t.rest.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, newAPIError(resp)
	}
	return resp.Body(), nil
}

// Post performs a POST with a JSON body. When files are present the body
// rides as a "json" multipart field alongside one field per file, each
// keyed and named by its identifier.
func (t *Transport) Post(ctx context.Context, path string, body any, files map[string]npf.File) (json.RawMessage, error) {
	t.log.Debug("api request", "method", "POST", "path", path, "files", len(files))
	req, err := t.send(t.rest.R().SetContext(ctx), body, files)
	if err != nil {
		return nil, err
	}
	resp, err := req.Post(path)
	return decode(resp, err)
}

// Put performs a PUT, with the same body assembly rules as Post.
func (t *Transport) Put(ctx context.Context, path string, body any, files map[string]npf.File) (json.RawMessage, error) {
	t.log.Debug("api request", "method", "PUT", "path", path, "files", len(files))
	req, err := t.send(t.rest.R().SetContext(ctx), body, files)
	if err != nil {
		return nil, err
	}
	resp, err := req.Put(path)
	return decode(resp, err)
}

// Delete performs a DELETE with query parameters.
func (t *Transport) Delete(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	t.log.Debug("api request", "method", "DELETE", "path", path)
	resp, err := t.rest.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Delete(path)
	return decode(resp, err)
}

func (t *Transport) send(req *resty.Request, body any, files map[string]npf.File) (*resty.Request, error) {
	if len(files) == 0 {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(body), nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	req.SetMultipartField("json", "", "application/json", bytes.NewReader(encoded))
	for _, f := range files {
		req.SetMultipartField(f.Identifier, f.Identifier, f.MimeType, bytes.NewReader(f.Data))
	}
	return req, nil
}

func decode(resp *resty.Response, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, newAPIError(resp)
	}
	return json.RawMessage(resp.Body()), nil
}
