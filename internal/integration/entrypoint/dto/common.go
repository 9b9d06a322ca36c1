// Package dto defines request and response bodies for the API endpoints.
package dto

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse is the body for operations with no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
