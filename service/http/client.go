package http

import (
	"bufio"
	"cardprobe/service"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxLineSize = 1 << 20

type Client struct {
	base       string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient returns a client for the reader server at base. A zero timeout
// means requests never time out.
func NewClient(base string, timeout time.Duration) (*Client, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", base)
	}

	c := &Client{
		base:    base,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{DisableKeepAlives: true},
		},
	}
	return c, nil
}

func (c *Client) Base() string {
	return c.base
}

func (c *Client) Send(cmd service.CmdType, params url.Values) (string, error) {
	path := cmd.Path()
	if path == "" {
		return "", fmt.Errorf("unknown command %d", cmd)
	}

	return c.do(&doRequest{
		method: http.MethodGet,
		path:   path,
		query:  params,
	})
}

func (c *Client) IsReaderServer() bool {
	_, err := c.do(&doRequest{
		method: http.MethodGet,
		path:   "/",
	})
	return err == nil
}

type doRequest struct {
	method string
	path   string
	query  url.Values
}

func (r *doRequest) url(base string) string {
	u := base + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}

// do issues the request on a fresh connection and returns the body with
// line breaks removed.
func (c *Client) do(req *doRequest) (string, error) {
	u := req.url(c.base)
	r, err := http.NewRequest(req.method, u, nil)
	if err != nil {
		return "", err
	}

	res, err := c.httpClient.Do(r)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%s %s: server returned %s", req.method, u, res.Status)
	}

	var body strings.Builder
	scanner := bufio.NewScanner(res.Body)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		body.Write(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%s %s: reading response: %w", req.method, u, err)
	}

	return body.String(), nil
}
