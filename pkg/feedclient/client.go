// Package feedclient is a typed HTTP client for the feedgraph v1 API.
package feedclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"
)

const apiPrefix = "/v1"

type ClientConfig struct {
	BaseURL string
	// UserID is sent as the acting user. Zero sends anonymous requests.
	UserID int64

	TransportSettings *resty.TransportSettings

	ResponseMiddlewares []resty.ResponseMiddleware
	RequestMiddlewares  []resty.RequestMiddleware
}

var DefaultTransportSettings = &resty.TransportSettings{
	DialerTimeout:         time.Second,
	DialerKeepAlive:       30 * time.Second,
	IdleConnTimeout:       30 * time.Second,
	TLSHandshakeTimeout:   time.Second,
	ExpectContinueTimeout: time.Second,
	ResponseHeaderTimeout: 5 * time.Second,
}

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feedgraph api: %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

type Client struct {
	client *resty.Client
}

func NewClient(config *ClientConfig) *Client {
	settings := config.TransportSettings
	if settings == nil {
		settings = DefaultTransportSettings
	}

	baseURL := config.BaseURL + apiPrefix
	client := resty.NewWithTransportSettings(settings).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if config.UserID != 0 {
		client.SetHeader("X-User-ID", strconv.FormatInt(config.UserID, 10))
	}

	for _, m := range config.RequestMiddlewares {
		client.AddRequestMiddleware(m)
	}
	for _, m := range config.ResponseMiddlewares {
		client.AddResponseMiddleware(m)
	}

	return &Client{
		client: client,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx).SetError(&APIError{})
}

// check turns transport failures and error answers into errors.
func check(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !res.IsError() {
		return nil
	}

	apiErr, ok := res.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{Message: res.Status()}
	}
	apiErr.StatusCode = res.StatusCode()
	return apiErr
}
