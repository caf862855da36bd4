// Package explorer is the HTTP transport shared by the explorer balance clients:
// rate limiting, retries, timeouts and mapping of failures to client errors.
package explorer

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/client/errors"
	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	Url        string
	Chain      ac.ChainType
	httpClient *retryablehttp.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *ac.ChainClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("url required for %s explorer client (set .url)", cfg.Chain)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = cfg.NewClientLimiter()
	}

	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil
	httpClient.RetryMax = cfg.MaxRetries
	httpClient.RetryWaitMin = 200 * time.Millisecond
	httpClient.RetryWaitMax = 5 * time.Second
	httpClient.HTTPClient.Timeout = timeout
	// hand back the last response instead of a generic "giving up" error
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		Url:        strings.TrimSuffix(cfg.URL, "/"),
		Chain:      cfg.Chain,
		httpClient: httpClient,
		limiter:    limiter,
	}, nil
}

// Get requests Url+path with the query and decodes the JSON body into resp.
func (client *Client) Get(ctx context.Context, path string, query url.Values, resp interface{}) error {
	if err := client.limiter.Wait(ctx); err != nil {
		return errors.Timeoutf("rate limit wait: %v", err)
	}

	endpoint := client.Url + path
	requestUrl := endpoint
	if len(query) > 0 {
		requestUrl = endpoint + "?" + query.Encode()
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return fmt.Errorf("could not build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	// query parameters may carry api keys
	logger := log.WithFields(log.Fields{
		"chain": client.Chain,
		"url":   endpoint,
	})
	logger.Debug("get")

	res, err := client.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return errors.Timeoutf("%s: %v", endpoint, err)
		}
		return errors.NetworkErrorf("%s: %v", endpoint, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		if isTimeout(err) {
			return errors.Timeoutf("%s: %v", endpoint, err)
		}
		return errors.NetworkErrorf("%s: could not read body: %v", endpoint, err)
	}
	logger.WithField("status", res.StatusCode).Debug("response")

	switch {
	case res.StatusCode == http.StatusNotFound:
		return errors.HttpErrorf(res.StatusCode, errors.AddressNotFound, "%s", truncate(body))
	case res.StatusCode == http.StatusTooManyRequests:
		return errors.HttpErrorf(res.StatusCode, errors.RateLimited, "%s", truncate(body))
	case res.StatusCode < 200 || res.StatusCode > 299:
		return errors.HttpErrorf(res.StatusCode, errors.BadResponse, "%s", truncate(body))
	}

	if err := json.Unmarshal(body, resp); err != nil {
		logger.WithField("body", truncate(body)).Debug("could not decode")
		return errors.BadResponsef("could not decode response from %s: %v", endpoint, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func truncate(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
