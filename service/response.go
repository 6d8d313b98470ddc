package service

import (
	"encoding/json"
	"fmt"
)

// Response is the envelope every reader endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ParseResponse(body string) (*Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("malformed reader response: %w", err)
	}
	return &resp, nil
}
