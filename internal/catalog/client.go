package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Client is the HTTP implementation of Source, talking to a pricing-data
// provider. Requests retry with exponential backoff; 4xx responses are not
// retried. A 404 is a normal not-found, never an error.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) LookupInvoice(ctx context.Context, make, model string, year int) (*InvoiceRecord, error) {
	query := url.Values{}
	query.Set("make", make)
	query.Set("model", model)
	query.Set("year", strconv.Itoa(year))

	var rec InvoiceRecord
	found, err := c.getJSON(ctx, "/api/invoices?"+query.Encode(), &rec)
	if err != nil {
		return nil, fmt.Errorf("lookup invoice: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (c *Client) LookupDealerCash(ctx context.Context, make, model string) (float64, error) {
	query := url.Values{}
	query.Set("make", make)
	query.Set("model", model)

	var result struct {
		Amount float64 `json:"amount"`
	}
	found, err := c.getJSON(ctx, "/api/incentives/dealer-cash?"+query.Encode(), &result)
	if err != nil {
		return 0, fmt.Errorf("lookup dealer cash: %w", err)
	}
	if !found {
		return 0, nil
	}
	return result.Amount, nil
}

func (c *Client) LookupGVWR(ctx context.Context, make, model string, year int) (int, bool, error) {
	query := url.Values{}
	query.Set("make", make)
	query.Set("model", model)
	query.Set("year", strconv.Itoa(year))

	var result struct {
		GVWR int `json:"gvwr"`
	}
	found, err := c.getJSON(ctx, "/api/vehicles/gvwr?"+query.Encode(), &result)
	if err != nil {
		return 0, false, fmt.Errorf("lookup gvwr: %w", err)
	}
	if !found || result.GVWR <= 0 {
		return 0, false, nil
	}
	return result.GVWR, true, nil
}

// getJSON performs a GET with retries and decodes the body into out.
// Returns found=false on 404.
func (c *Client) getJSON(ctx context.Context, path string, out any) (found bool, err error) {
	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)

	err = backoff.RetryNotify(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
			if reqErr != nil {
				return backoff.Permanent(fmt.Errorf("create request: %w", reqErr))
			}
			req.Header.Set("Authorization", "Bearer "+c.token)
			req.Header.Set("Accept", "application/json")

			resp, doErr := c.httpClient.Do(req)
			if doErr != nil {
				return fmt.Errorf("do request: %w", doErr)
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusOK:
				if decErr := json.NewDecoder(resp.Body).Decode(out); decErr != nil {
					return backoff.Permanent(fmt.Errorf("decode response: %w", decErr))
				}
				found = true
				return nil
			case resp.StatusCode == http.StatusNotFound:
				found = false
				return nil
			case resp.StatusCode >= 400 && resp.StatusCode < 500:
				return backoff.Permanent(fmt.Errorf("unexpected status: %d", resp.StatusCode))
			default:
				return fmt.Errorf("unexpected status: %d", resp.StatusCode)
			}
		},
		retryPolicy,
		func(err error, next time.Duration) {
			c.logger.Warn("catalog request failed, retrying",
				zap.String("path", path),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return false, err
	}
	return found, nil
}
