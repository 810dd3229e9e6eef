package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// maxErrorBodySize bounds how much of an error response body is retained.
const maxErrorBodySize = 64 << 10

// StatusError reports a response whose status code is outside the 2xx range.
type StatusError struct {
	Method     string // HTTP method of the failed request
	URL        string // request URL
	StatusCode int    // response status code
	Body       []byte // response body, truncated to 64 KiB
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s: %s",
		e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// checkStatus converts a non-2xx response into a *StatusError. The body is
// consumed in that case.
func checkStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	return &StatusError{
		Method:     res.Request.Method,
		URL:        res.Request.URL.String(),
		StatusCode: res.StatusCode,
		Body:       body,
	}
}

// Do sends req and returns the response when its status is 2xx. Any other
// status is reported as a *StatusError and the body is closed.
func Do(client *retryablehttp.Client, req *retryablehttp.Request) (*http.Response, error) {
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(res); err != nil {
		res.Body.Close()
		return nil, err
	}

	return res, nil
}

// GetJSON performs a GET request against url and decodes the JSON body into out.
func GetJSON(ctx context.Context, client *retryablehttp.Client, url string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	res, err := Do(client, req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return json.NewDecoder(res.Body).Decode(out)
}
