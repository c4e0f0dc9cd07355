package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = time.Second * 15

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error)
	Post(ctx context.Context, url string, headers http.Header, body string) (statusCode int, respBody []byte, err error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClientAdapter) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error) {
	return h.do(ctx, http.MethodGet, url, headers, "")
}

func (h *HTTPClientAdapter) Post(ctx context.Context, url string, headers http.Header, body string) (statusCode int, respBody []byte, err error) {
	return h.do(ctx, http.MethodPost, url, headers, body)
}

func (h *HTTPClientAdapter) do(ctx context.Context, method, url string, headers http.Header, body string) (statusCode int, respBody []byte, err error) {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return
	}
	if headers != nil {
		req.Header = headers
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode

	return
}

type HTTPClient struct {
	client HTTPClientI
}

// NewHTTPClient builds a client with the given per-request timeout; zero
// means the default.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error) {
	return h.client.Get(ctx, url, headers)
}

func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body string) (statusCode int, respBody []byte, err error) {
	return h.client.Post(ctx, url, headers, body)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
