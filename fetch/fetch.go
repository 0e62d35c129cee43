package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/midbel/heatmap"
)

const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

// Error is returned for every failure occurring while getting a dataset:
// network failures, unexpected status and malformed documents are not
// distinguished.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client gets a dataset with a single GET request. There is no retry.
type Client struct {
	URL    string
	HTTP   *http.Client
	Logger *slog.Logger
}

func NewClient(url string, timeout time.Duration, logger *slog.Logger) Client {
	if url == "" {
		url = DefaultURL
	}
	return Client{
		URL:    url,
		HTTP:   &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

func (c Client) Fetch(ctx context.Context) (heatmap.Dataset, error) {
	var ds heatmap.Dataset

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return ds, c.fail(err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	c.logger().Debug("fetching dataset", "url", c.URL)
	res, err := client.Do(req)
	if err != nil {
		return ds, c.fail(err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return ds, c.fail(fmt.Errorf("unexpected status %s", res.Status))
	}
	if ds, err = Decode(res.Body); err != nil {
		return ds, c.fail(err)
	}
	c.logger().Info("dataset fetched", "url", c.URL, "base", ds.BaseTemperature, "readings", len(ds.Readings))
	return ds, nil
}

func (c Client) fail(err error) error {
	return &Error{
		Source: c.URL,
		Err:    err,
	}
}

func (c Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// File reads a dataset from a local JSON document having the same shape as
// the remote one.
type File struct {
	Path string
}

func (f File) Fetch(ctx context.Context) (heatmap.Dataset, error) {
	var ds heatmap.Dataset
	if err := ctx.Err(); err != nil {
		return ds, &Error{Source: f.Path, Err: err}
	}
	r, err := os.Open(f.Path)
	if err != nil {
		return ds, &Error{Source: f.Path, Err: err}
	}
	defer r.Close()

	if ds, err = Decode(r); err != nil {
		return ds, &Error{Source: f.Path, Err: err}
	}
	return ds, nil
}

// Decode parses a dataset document.
func Decode(r io.Reader) (heatmap.Dataset, error) {
	var ds heatmap.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return ds, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}
