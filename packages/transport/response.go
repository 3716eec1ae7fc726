package transport

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Response is the outcome of a single fetch.
type Response struct {
	URL        string
	StatusCode int
	Status     string // status text without the code, e.g. "Not Found"
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
}

// NewResponse builds a response whose status text is derived from code.
func NewResponse(url string, code int, body []byte) *Response {
	return &Response{
		URL:        url,
		StatusCode: code,
		Status:     http.StatusText(code),
		Headers:    make(map[string]string),
		Body:       body,
	}
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// statusText strips the numeric prefix net/http puts in Response.Status.
func statusText(code int, status string) string {
	if _, text, ok := strings.Cut(status, " "); ok && strings.HasPrefix(status, strconv.Itoa(code)) {
		return text
	}
	if status != "" {
		return status
	}
	return http.StatusText(code)
}
