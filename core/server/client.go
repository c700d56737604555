package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a client interface that enables to write custom behaviours to servers
type Client interface {
	Get(url string) (*http.Response, error)
	Do(*http.Request) (*http.Response, error)
	SetRequest(method, url string, body io.Reader) (*http.Request, error)
}

type flag struct {
	requestError bool
}

type client struct {
	client *http.Client
	*flag
}

// New Creates a new Client
func New(config ...func(*client)) Client {
	c := &client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		flag: &flag{},
	}

	for _, fn := range config {
		fn(c)
	}

	return c
}

// WithHTTPClient replaces the underlying http client
func WithHTTPClient(h *http.Client) func(*client) {
	return func(c *client) {
		c.client = h
	}
}

var (
	// ErrorNilURL the url is missing
	ErrorNilURL = errors.New("The provided URL can't be empty")
	// ErrorUnexpectedStatus the server answered with a non 2xx status
	ErrorUnexpectedStatus = errors.New("unexpected response status")
	// errorRequest is used to test code behaviour in case setting the requests fails
	errorRequest = errors.New("forced error setting request")
)

func (c *client) Get(url string) (*http.Response, error) {
	if url == "" {
		return nil, ErrorNilURL
	}

	req, err := c.SetRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	return c.Do(req)
}

// Do sends the request, defaulting to https when the url has no scheme.
// Responses outside of the 2xx range are closed and returned as errors.
func (c *client) Do(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme == "" {
		req.URL.Scheme = "https"
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrorUnexpectedStatus, resp.Status)
	}

	return resp, nil
}

func (c *client) SetRequest(method, url string, body io.Reader) (*http.Request, error) {
	if c.flag.requestError {
		return nil, errorRequest
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	return req, nil
}
