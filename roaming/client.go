package roaming

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"evroam/internal"
)

const (
	requestTimeout = 10 * time.Second
	maxAttempts    = 3
)

// Client posts SOAP documents to a roaming endpoint. Failed requests are
// retried with a growing pause before the error is given up to the caller.
type Client struct {
	client *http.Client
	log    internal.LogHandler
}

func NewClient(log internal.LogHandler) *Client {
	return &Client{
		client: &http.Client{},
		log:    log,
	}
}

func (c *Client) Post(url string, body []byte, trackingID string) ([]byte, error) {
	var resp []byte
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err = c.doRequest(url, body, trackingID)
		if err == nil {
			return resp, nil
		}
		if c.log != nil {
			c.log.Warn(fmt.Sprintf("roaming client: %s: %v (attempt %d)", url, err, attempt+1))
		}
		time.Sleep(time.Duration(attempt+1) * time.Second)
	}
	return nil, err
}

func (c *Client) doRequest(url string, body []byte, trackingID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("X-Event-Tracking-Id", trackingID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}
