package mnist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultMirror hosts the four gzip-compressed IDX files.
const DefaultMirror = "https://ossci-datasets.s3.amazonaws.com/mnist/"

var downloadFiles = []string{
	TrainImagesFile + ".gz",
	TrainLabelsFile + ".gz",
	TestImagesFile + ".gz",
	TestLabelsFile + ".gz",
}

// Download fetches the four dataset files into dir, skipping files
// that already exist. The four downloads run concurrently.
func Download(ctx context.Context, dir, mirror string) error {
	if mirror == "" {
		mirror = DefaultMirror
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range downloadFiles {
		name := name
		g.Go(func() error {
			return downloadFile(ctx, mirror+name, filepath.Join(dir, name))
		})
	}
	return g.Wait()
}

func downloadFile(ctx context.Context, url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil // already downloaded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	tmp := dest + ".partial"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}
