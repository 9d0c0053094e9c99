package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"adsdash/internal/domain"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"

	"golang.org/x/time/rate"
)

// implements domain.FeedClient
type FeedClient struct {
	client      *http.Client
	feedURL     string
	logger      *logger.Logger
	metrics     *metrics.Metrics
	rateLimiter *rate.Limiter
}

// creates a new analytics feed client
func NewFeedClient(feedURL string, timeout time.Duration, ratePerSecond int, logger *logger.Logger, metrics *metrics.Metrics) *FeedClient {
	if ratePerSecond <= 0 {
		ratePerSecond = 100
	}
	return &FeedClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		feedURL:     feedURL,
		logger:      logger,
		metrics:     metrics,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), 10),
	}
}

// FetchFeed retrieves the raw ads feed. There is no retry: a failed fetch
// is reported to the caller and the prior working set is discarded.
func (c *FeedClient) FetchFeed(ctx context.Context) ([]domain.RawAdRecord, error) {
	start := time.Now()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.metrics.RecordFeedFailure("rate_limit")
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		c.metrics.RecordFeedFailure("request_creation")
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.RecordFeedFailure("network_error")
		return nil, fmt.Errorf("failed to fetch ads feed: %w", err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordFeedFetch(fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordFeedFailure("read_body")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var records []domain.RawAdRecord
	if err := json.Unmarshal(body, &records); err != nil {
		c.metrics.RecordFeedFailure("json_parse")
		return nil, fmt.Errorf("failed to parse ads feed: %w", err)
	}

	c.metrics.RecordFeedFetch("success", duration)

	c.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"duration": duration,
		"records":  len(records),
	}).Info("Successfully fetched ads feed")

	return records, nil
}
