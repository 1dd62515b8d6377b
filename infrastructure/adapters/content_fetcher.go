package adapters

import (
	"errors"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/samber/mo"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	redactedValue = "REDACTED"
	maxErrorBody  = 4 << 10
)

// ContentFetcher sends a request and yields the body of a 2xx response. Failures are
// *domain.TransportFailureError or *domain.UpstreamRejectedError.
type ContentFetcher interface {
	FetchContent(req *http.Request) mo.Result[[]byte]
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort, timeout time.Duration) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) mo.Result[[]byte] {
	fields := map[string]any{
		"method": req.Method,
		"URL":    redactURL(req.URL),
	}

	res, err := c.client.Do(req)
	if err != nil {
		err = redactURLError(err, req.URL)
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", fields)
		return mo.Err[[]byte](&domain.TransportFailureError{Cause: err})
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", fields)
		}
	}(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyPayload, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		fields["status"] = res.StatusCode
		fields["message"] = string(bodyPayload)
		rejected := &domain.UpstreamRejectedError{Status: res.StatusCode, Body: string(bodyPayload)}
		c.logger.ErrorWithFields(rejected, "HTTP request returned non-OK status code", fields)
		return mo.Err[[]byte](rejected)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		err = redactURLError(err, req.URL)
		c.logger.ErrorWithFields(err, "Failed to read the response body", fields)
		return mo.Err[[]byte](&domain.TransportFailureError{Cause: err})
	}

	return mo.Ok(payload)
}

// redactURL hides the values of credential query parameters.
func redactURL(u *url.URL) string {
	redacted := *u
	query := redacted.Query()
	for _, name := range []string{"key", "api_key"} {
		if query.Has(name) {
			query.Set(name, redactedValue)
		}
	}
	redacted.RawQuery = query.Encode()
	return redacted.String()
}

func redactURLError(err error, u *url.URL) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactURL(u)
	}
	return err
}
