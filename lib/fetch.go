package lib

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultSheetURL  = "https://jlcpcb.com/componentSearch/uploadComponentInfo"
	DefaultSheetFile = "jlcpcb.xlsx"
)

/*
	Fetcher keeps a local copy of the catalog spreadsheet
*/
type Fetcher struct {
	URL    string
	Path   string
	MaxAge time.Duration
	Client *http.Client

	now func() time.Time
}

func NewFetcher(url, path string, maxAge time.Duration) *Fetcher {
	return &Fetcher{
		URL:    url,
		Path:   path,
		MaxAge: maxAge,
		Client: http.DefaultClient,
		now:    time.Now,
	}
}

/*
	Stale reports whether the local copy is missing or older than MaxAge. With
	no MaxAge an existing copy is never stale.
*/
func (f *Fetcher) Stale() bool {
	info, err := os.Stat(f.Path)
	if err != nil {
		return true
	}
	if f.MaxAge <= 0 {
		return false
	}

	now := time.Now
	if f.now != nil {
		now = f.now
	}

	return info.ModTime().Before(now().Add(-f.MaxAge))
}

/*
	FetchIfStale downloads the spreadsheet unless the local copy is fresh.
	It reports whether a download happened.
*/
func (f *Fetcher) FetchIfStale(ctx context.Context) (bool, error) {
	if !f.Stale() {
		return false, nil
	}

	return true, f.Fetch(ctx)
}

/*
	Fetch downloads the spreadsheet. The previous copy is only replaced once
	the download completes.
*/
func (f *Fetcher) Fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return err
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch sheet: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to fetch sheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), f.Path)
}
