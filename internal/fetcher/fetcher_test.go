package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch_Success(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><title>Hi</title></html>"))
	}))
	defer srv.Close()

	f := New(Config{UserAgent: "test-agent/2"})
	page, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if page.StatusCode != 200 {
		t.Errorf("status: got %d", page.StatusCode)
	}
	if string(page.Body) != "<html><title>Hi</title></html>" {
		t.Errorf("body: got %q", page.Body)
	}
	if gotUA != "test-agent/2" {
		t.Errorf("user agent: got %q", gotUA)
	}
	if !strings.HasPrefix(page.ContentType, "text/html") {
		t.Errorf("content type: got %q", page.ContentType)
	}
}

func TestFetch_DefaultUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	if _, err := New(Config{}).Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotUA != "artmetrics/1.0" {
		t.Errorf("user agent: got %q", gotUA)
	}
}

func TestFetch_EmptyBody(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
		}))

		page, err := New(Config{}).Fetch(context.Background(), srv.URL)
		srv.Close()
		if err != nil {
			t.Fatalf("status %d: fetch: %v", status, err)
		}
		if page.StatusCode != status {
			t.Errorf("status %d: got %d", status, page.StatusCode)
		}
		if len(page.Body) != 0 {
			t.Errorf("status %d: body: got %q, want empty", status, page.Body)
		}
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	_, err := New(Config{}).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !errors.Is(err, ErrStatus) {
		t.Errorf("error %v does not wrap ErrStatus", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q does not mention the status", err)
	}
}

func TestFetch_MaxBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer srv.Close()

	page, err := New(Config{MaxBytes: 100}).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(page.Body) != 100 {
		t.Errorf("body length: got %d, want 100", len(page.Body))
	}
}

func TestFetch_DecodesCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.Write([]byte("caf\xe9"))
	}))
	defer srv.Close()

	page, err := New(Config{}).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(page.Body) != "café" {
		t.Errorf("body: got %q, want %q", page.Body, "café")
	}
}

func TestFetch_Redirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("moved"))
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(Config{MaxRedirects: 3})

	page, err := f.Fetch(context.Background(), srv.URL+"/old")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if page.URL != srv.URL+"/new" {
		t.Errorf("final url: got %q", page.URL)
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/loop"); err == nil {
		t.Error("expected error for redirect loop")
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	f := New(Config{})
	for _, u := range []string{"ftp://example.com/a", "not a url", "file:///etc/passwd"} {
		if _, err := f.Fetch(context.Background(), u); err == nil {
			t.Errorf("Fetch(%q) succeeded, want error", u)
		}
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := New(Config{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(Config{RequestsPerSecond: 1}).Fetch(ctx, srv.URL); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
