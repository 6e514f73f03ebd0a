package logging

import "fmt"

// OperationError — ошибка с указанием операции и запроса, в котором она случилась.
type OperationError struct {
	Operation string
	RequestID string
	Err       error
}

func (e *OperationError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	where := e.Operation
	if e.RequestID != "" {
		where = fmt.Sprintf("%s (request_id=%s)", e.Operation, e.RequestID)
	}
	return where + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewOperationError оборачивает err; для nil возвращает nil, чтобы вызов можно было ставить без проверки.
func NewOperationError(operation, requestID string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, RequestID: requestID, Err: err}
}
