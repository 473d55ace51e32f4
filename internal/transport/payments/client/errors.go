package client

import "fmt"

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// APIError ответ платежной системы с кодом результата, отличным от успешного.
type APIError struct {
	Result  int
	Message string
}

func NewAPIError(result int, message string) *APIError {
	return &APIError{Result: result, Message: message}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment api error %d: %s", e.Result, e.Message)
}
