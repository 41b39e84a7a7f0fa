package discover

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// Download retrieves a document into cacheDir and returns the local path.
// The cache key is the basename of the URL path; an existing file is
// returned immediately with no network call. A non-success status yields an
// empty path and no partial file. The body is written to a temp file and
// renamed into place so concurrent downloaders of the same key cannot
// observe a half-written file.
func (f *Fetcher) Download(ctx context.Context, rawURL, cacheDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid document URL %s: %w", rawURL, err)
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("no usable filename in URL %s", rawURL)
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	dest := filepath.Join(cacheDir, name)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil // cache hit, skip download
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "fraudscan/1.0 (fraud bulletin scanner)")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("Failed to download %s: %v", name, err)
		return "", nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Failed to download %s: status %d", name, resp.StatusCode)
		return "", nil
	}

	tmp, err := os.CreateTemp(cacheDir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("finalizing %s: %w", name, err)
	}

	log.Printf("Downloaded: %s", name)
	return dest, nil
}
