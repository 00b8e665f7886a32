package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte(loaderCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	body, err := FileSource{Path: path}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != loaderCSV {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestFileSource_Missing(t *testing.T) {
	if _, err := (FileSource{Path: "/does/not/exist.csv"}).Fetch(context.Background()); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, loaderCSV)
	}))
	defer srv.Close()

	body, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != loaderCSV {
		t.Errorf("unexpected download contents: %q", data)
	}
}

func TestHTTPSource_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background()); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}
