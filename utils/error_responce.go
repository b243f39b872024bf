package utils

// ErrorResponse is the shape of error payloads returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
