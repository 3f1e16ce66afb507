package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
)

func TestSelectFonts(t *testing.T) {
	all, err := selectFonts(nil)
	if err != nil || len(all) != len(fonts.Catalog) {
		t.Errorf("selectFonts(nil) = %d entries, %v", len(all), err)
	}
	got, err := selectFonts([]string{"great vibes"})
	if err != nil || len(got) != 1 || got[0].File != fonts.GreatVibes.File {
		t.Errorf("selectFonts(great vibes) = %+v, %v", got, err)
	}
	if _, err := selectFonts([]string{"Comic.ttf"}); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown font error = %v", err)
	}
}

func TestRunFonts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.ttf" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("font-bytes"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	entries := []fonts.Entry{
		{Name: "Good", File: "good.ttf", URL: ts.URL + "/good.ttf"},
		{Name: "Missing", File: "missing.ttf", URL: ts.URL + "/missing.ttf"},
	}
	c := New(io.Discard, LogInfo)
	err := c.runFonts(context.Background(), ts.Client(), entries, dir)
	if err == nil {
		t.Fatal("expected an error for the missing font")
	}
	if _, err := os.Stat(filepath.Join(dir, "good.ttf")); err != nil {
		t.Errorf("good font should still be downloaded: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.ttf")); !os.IsNotExist(err) {
		t.Error("failed download left a file behind")
	}
}
