package api

import "fmt"

// Error is the normalized failure shape produced by the client for every
// failed call: transport failures carry no status, HTTP failures carry the
// response status plus the code and reason from the structured error body
// when the server returned one.
type Error struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}

	return "api: " + e.Message
}

// errorBody is the structured error payload the storefront API returns
// alongside a non-2xx status.
type errorBody struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}
