package tumblr

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/tinyland-inc/tumblweed/pkg/npf"
)

func staticSource(tok string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok})
}

func TestTransport_GetSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"meta":{"status":200,"msg":"OK"}}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, staticSource("tok-123"), nil)
	if _, err := tr.Get(context.Background(), "/user/info", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization header: got %q", gotAuth)
	}
}

func TestTransport_GetQueryParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, nil, nil)
	params := url.Values{"notes_info": {"true"}}
	if _, err := tr.Get(context.Background(), "/blog/b/posts/1", params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("notes_info") != "true" {
		t.Errorf("query params not forwarded: %v", gotQuery)
	}
}

func TestTransport_PostJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, nil, nil)
	body := map[string]any{"tags": "a, b"}
	if _, err := tr.Post(context.Background(), "/blog/b/posts", body, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("content type: got %q", gotContentType)
	}
	if gotBody["tags"] != "a, b" {
		t.Errorf("body: got %v", gotBody)
	}
}

func TestTransport_PostMultipart(t *testing.T) {
	var gotJSON string
	var gotFile []byte
	var gotFileType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotJSON = r.FormValue("json")
		headers := r.MultipartForm.File["img-1"]
		if len(headers) == 1 {
			gotFileType = headers[0].Header.Get("Content-Type")
			f, _ := headers[0].Open()
			gotFile, _ = io.ReadAll(f)
			f.Close()
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, nil, nil)
	files := map[string]npf.File{
		"img-1": {Identifier: "img-1", Data: []byte("pixels"), MimeType: "image/png"},
	}
	body := map[string]any{"content": []string{}}
	if _, err := tr.Post(context.Background(), "/blog/b/posts", body, files); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotJSON, `"content"`) {
		t.Errorf("json part missing body: %q", gotJSON)
	}
	if string(gotFile) != "pixels" {
		t.Errorf("file part: got %q", gotFile)
	}
	if gotFileType != "image/png" {
		t.Errorf("file content type: got %q", gotFileType)
	}
}

func TestTransport_ErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"meta":{"status":404,"msg":"Not Found"}}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, nil, nil)
	_, err := tr.Get(context.Background(), "/blog/nope/posts/1", nil)
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Not Found" {
		t.Errorf("message: got %q", apiErr.Message)
	}
}

func TestTransport_GetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, nil, nil)
	data, err := tr.GetBytes(context.Background(), "/blog/b/avatar/64", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 4 || data[1] != 'P' {
		t.Errorf("avatar bytes: got %v", data)
	}
}

func TestTransport_Delete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, nil, nil)
	if _, err := tr.Delete(context.Background(), "/blog/b/posts/42", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method: got %q", gotMethod)
	}
	if gotPath != "/blog/b/posts/42" {
		t.Errorf("path: got %q", gotPath)
	}
}
