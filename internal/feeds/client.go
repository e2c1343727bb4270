package feeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"home_security/internal/config"
	"home_security/internal/models"
)

// Per-call timeouts and the upstream page cap.
const (
	pointTimeout = 5 * time.Second  // single-value reads and writes
	rangeTimeout = 10 * time.Second // ranged reads
	rangeLimit   = 1000             // maximum page size the feed service allows

	aioKeyHeader = "X-AIO-Key"
)

// Gateway errors. Callers collapse these to null/empty results in one place;
// the client itself never swallows a failure.
var (
	ErrUnknownSensor = errors.New("unknown sensor")
	ErrUpstream      = errors.New("feed service request failed")
)

// Client talks to the external feed service. It issues at most one attempt
// per call: no retries, no backoff.
type Client struct {
	baseURL  string
	apiKey   string
	registry *Registry
	http     *http.Client
}

// NewClient builds a gateway client over the given registry. The http.Client
// carries no global timeout; each call bounds itself via context.
func NewClient(cfg *config.Config, registry *Registry) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		registry: registry,
		http:     &http.Client{},
	}
}

// Latest fetches the most recent sample for a logical sensor.
// GET {base}/{feed}/data/last
func (c *Client) Latest(ctx context.Context, sensor string) (models.Sample, error) {
	path, err := c.registry.Path(sensor)
	if err != nil {
		return models.Sample{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, pointTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path+"/data/last", nil)
	if err != nil {
		return models.Sample{}, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Sample{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return models.Sample{}, fmt.Errorf("%w: status %d from %s", ErrUpstream, resp.StatusCode, path)
	}

	var sample models.Sample
	if err := json.NewDecoder(resp.Body).Decode(&sample); err != nil {
		return models.Sample{}, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return sample, nil
}

// Append writes one data point to a feed, value already serialized to text.
// POST {base}/{feed}/data — success is a 200 within the point timeout.
func (c *Client) Append(ctx context.Context, sensor, value string) error {
	path, err := c.registry.Path(sensor)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{"value": value})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pointTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+path+"/data", bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", ErrUpstream, resp.StatusCode, path)
	}
	return nil
}

// Range fetches up to rangeLimit samples between start and end (RFC3339
// markers), in the service's default reverse-chronological order. Ordering is
// the caller's concern.
// GET {base}/{feed}/data?start_time&end_time&limit
func (c *Client) Range(ctx context.Context, sensor, start, end string) ([]models.Sample, error) {
	path, err := c.registry.Path(sensor)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(c.baseURL + "/" + path + "/data")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("start_time", start)
	q.Set("end_time", end)
	q.Set("limit", strconv.Itoa(rangeLimit))
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, rangeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrUpstream, resp.StatusCode, path)
	}

	var samples []models.Sample
	if err := json.NewDecoder(resp.Body).Decode(&samples); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return samples, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set(aioKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
