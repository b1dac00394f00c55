package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestGetHtmlBytes(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<a href="/about">About</a>`)
	}))
	defer srv.Close()

	f := NewFetcher(WithUserAgent("recon-test/1.0"))
	body, err := f.GetHtmlBytes(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetHtmlBytes() error = %v", err)
	}
	if string(body) != `<a href="/about">About</a>` {
		t.Errorf("GetHtmlBytes() body = %q", body)
	}
	if gotUA != "recon-test/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "recon-test/1.0")
	}
}

func TestGetHtmlBytesStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK, wantErr: false},
		{name: "no content is success", status: http.StatusNoContent, wantErr: false},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: tt.status,
					Status:     http.StatusText(tt.status),
					Body:       io.NopCloser(strings.NewReader("")),
					Header:     make(http.Header),
					Request:    req,
				}, nil
			})}

			f := NewFetcher(WithClient(client))
			_, err := f.GetHtmlBytes(context.Background(), "https://example.test/")
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetHtmlBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("error %T is not *FetchError", err)
			}
			if fe.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", fe.StatusCode, tt.status)
			}
		})
	}
}

func TestGetHtmlBytesConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	f := NewFetcher(WithTimeout(2 * time.Second))
	_, err := f.GetHtmlBytes(context.Background(), addr)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("GetHtmlBytes() error = %v, want *FetchError", err)
	}
	if fe.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for a network error", fe.StatusCode)
	}
}

func TestGetHtmlBytesInvalidURL(t *testing.T) {
	f := NewFetcher()
	_, err := f.GetHtmlBytes(context.Background(), "http://[::1")

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("GetHtmlBytes() error = %v, want *FetchError", err)
	}
}

func TestGetHtmlBytesUnusableTarget(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "ftp scheme", url: "ftp://example.test/x", want: "unsupported scheme"},
		{name: "file scheme", url: "file:///etc/hosts", want: "unsupported scheme"},
		{name: "no host", url: "https://", want: "missing host"},
		{name: "empty", url: "", want: "unsupported scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				called = true
				return nil, errors.New("unexpected request")
			})}

			f := NewFetcher(WithClient(client))
			_, err := f.GetHtmlBytes(context.Background(), tt.url)

			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("GetHtmlBytes() error = %v, want *FetchError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
			if called {
				t.Error("request sent for an unusable URL")
			}
		})
	}
}
