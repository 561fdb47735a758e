package feed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client fetches the published data sheet and plan document over HTTP.
type Client struct {
	httpClient *http.Client
	dataURL    string
	planURL    string
}

// NewClient creates a feed client for the configured URLs.
func NewClient(dataURL, planURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		dataURL:    dataURL,
		planURL:    planURL,
	}
}

// FetchRows downloads the CSV data sheet and returns one string-keyed record
// per data row, keyed by the header row's column names. Rows shorter than
// the header are padded with empty fields rather than rejected; the sheet
// routinely has trailing blanks.
func (c *Client) FetchRows(ctx context.Context) ([]map[string]string, error) {
	body, err := c.get(ctx, c.dataURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ParseCSV(body)
}

// FetchPlan downloads the plan markdown document.
func (c *Client) FetchPlan(ctx context.Context) (string, error) {
	if c.planURL == "" {
		return "", nil
	}

	body, err := c.get(ctx, c.planURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading plan body: %w", err)
	}
	return string(data), nil
}

// ParseCSV reads header-keyed records from CSV content.
func ParseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	var rows []map[string]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
