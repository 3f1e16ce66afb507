package fonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/winesheet/pkg/errors"
)

func TestDownload_Writes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ttf"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "fonts", "PatrickHand.ttf")
	downloaded, err := Download(context.Background(), srv.Client(), srv.URL, dest)
	if err != nil {
		t.Fatalf("Download error: %v", err)
	}
	if !downloaded {
		t.Error("Download() should report a fresh download")
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ttf" {
		t.Errorf("file content = %q, want ttf", data)
	}
}

func TestDownload_SkipsExisting(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("new"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "GreatVibes-Regular.ttf")
	if err := os.WriteFile(dest, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	downloaded, err := Download(context.Background(), srv.Client(), srv.URL, dest)
	if err != nil {
		t.Fatalf("Download error: %v", err)
	}
	if downloaded || calls.Load() != 0 {
		t.Errorf("existing file should be skipped (downloaded=%v, calls=%d)", downloaded, calls.Load())
	}
	if data, _ := os.ReadFile(dest); string(data) != "old" {
		t.Errorf("existing file overwritten with %q", data)
	}
}

func TestDownload_FailureLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "PatrickHand.ttf")
	_, err := Download(context.Background(), srv.Client(), srv.URL, dest)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("Download error = %v, want NOT_FOUND", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed download left %d files behind", len(entries))
	}
}

func TestDownloadEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ttf"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	e := Entry{Name: "Test", File: "Test.ttf", URL: srv.URL}
	if _, err := DownloadEntry(context.Background(), srv.Client(), e, dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Test.ttf")); err != nil {
		t.Errorf("expected %s in %s: %v", e.File, dir, err)
	}
}
