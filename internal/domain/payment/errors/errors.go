package errors

import "errors"

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)
