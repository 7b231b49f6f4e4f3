package models

// MessageResponse is the JSON body of domain-level outcomes: validation
// failures, not-found responses, delete confirmations, and auth rejections.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of unexpected failures. The field name
// differs from MessageResponse on purpose: the two shapes are part of the
// public contract and must not be unified.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a freshly issued bearer token back to the client
// after registration or login.
type TokenResponse struct {
	Token string `json:"token"`
}
