package fonts

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/httputil"
)

// Download fetches url into dest unless dest already exists. It reports
// whether a download happened. The file is written to a temporary name in
// the same directory and renamed into place, so a failed download never
// leaves a truncated font behind.
func Download(ctx context.Context, client *http.Client, url, dest string) (bool, error) {
	if _, err := os.Stat(dest); err == nil {
		return false, nil
	}

	data, err := httputil.Fetch(ctx, client, url)
	if err != nil {
		return false, err
	}
	if err := writeAtomic(dest, data); err != nil {
		return false, errors.Wrap(errors.ErrCodeOutput, err, "save %s", dest)
	}
	return true, nil
}

// DownloadEntry downloads e into dir.
func DownloadEntry(ctx context.Context, client *http.Client, e Entry, dir string) (bool, error) {
	return Download(ctx, client, e.URL, filepath.Join(dir, e.File))
}

func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
