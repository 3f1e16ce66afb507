package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/pipeline"
	"github.com/matzehuels/winesheet/pkg/theme"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	s := New(Config{
		Runner:  pipeline.NewRunner(nil, nil, logger),
		Logger:  logger,
		FontDir: t.TempDir(),
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || string(body) != "ok\n" {
		t.Errorf("GET /healthz = %d %q", resp.StatusCode, body)
	}
}

func TestThemes(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/themes")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got []ThemeInfo
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, ti := range got {
		names = append(names, ti.Name)
	}
	if diff := cmp.Diff(theme.Names(), names); diff != "" {
		t.Errorf("theme names mismatch (-want +got):\n%s", diff)
	}
}

func TestSheet_PDF(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/sheets/vintage?seed=11")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp.Header.Get("X-Render-ID") == "" {
		t.Error("X-Render-ID missing")
	}
	if seed := resp.Header.Get("X-Render-Seed"); seed != "11" {
		t.Errorf("X-Render-Seed = %q, want 11", seed)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}
}

func TestSheet_SVGReportsSeed(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/sheets/handwritten?format=svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	seed := resp.Header.Get("X-Render-Seed")
	if seed == "" {
		t.Fatal("X-Render-Seed missing")
	}
	_, again := get(t, ts.URL+"/sheets/handwritten?format=svg&seed="+seed)
	if !bytes.Equal(body, again) {
		t.Error("re-requesting with the reported seed should reproduce the sheet")
	}
}

func TestSheet_Errors(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		path   string
		status int
		code   errors.Code
	}{
		{"/sheets/rose", http.StatusBadRequest, errors.ErrCodeInvalidTheme},
		{"/sheets/Vintage!", http.StatusBadRequest, errors.ErrCodeInvalidTheme},
		{"/sheets/vintage?format=docx", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/sheets/vintage?seed=-1", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"/sheets/vintage?scale=0", http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var e errorBody
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatal(err)
			}
			if e.Code != string(tt.code) {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeNotFound, "x"), http.StatusNotFound},
		{errors.New(errors.ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{errors.New(errors.ErrCodeTimeout, "x"), http.StatusGatewayTimeout},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
