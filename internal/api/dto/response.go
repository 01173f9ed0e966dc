package dto

import "net/http"

// APIResponse is the uniform envelope every endpoint returns. Data is null on
// failure and Error is null on success. The wire name "Sucess" is kept exactly
// as existing clients expect it.
type APIResponse struct {
	Sucess     bool   `json:"Sucess"`
	StatusCode int    `json:"StatusCode"`
	Message    string `json:"Message"`
	Data       any    `json:"Data"`
	Error      any    `json:"Error"`
}

// Success wraps a payload in a 200 envelope.
func Success(data any, message string) APIResponse {
	return APIResponse{
		Sucess:     true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	}
}

// Failure builds a failure envelope. detail carries diagnostics such as the
// underlying error text; it is not meant for end users.
func Failure(message string, statusCode int, detail any) APIResponse {
	return APIResponse{
		Sucess:     false,
		StatusCode: statusCode,
		Message:    message,
		Error:      detail,
	}
}
