package http

import "net/url"

type request struct {
	requestID string
	method    string
	url       string
	query     url.Values
	clientIP  string
	path      string
}
