package tumblr

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// APIError is a non-2xx response from the API. Message carries the
// platform's meta.msg when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tumblr api: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("tumblr api: HTTP %d: %s", e.StatusCode, e.Message)
}

func newAPIError(resp *resty.Response) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    gjson.GetBytes(resp.Body(), "meta.msg").String(),
	}
}
