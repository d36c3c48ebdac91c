package errors

import (
	"coffissimo/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CART_EMPTY"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// ToErrorInfo converts any error into the structure printed by the CLI, together with the
// exit code the process should terminate with.
func ToErrorInfo(err error) (*ErrorInfo, int) {
	var appErr AppError
	if errors.As(err, &appErr) {
		info := &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
		}
		if details := appErr.Details(); details != "" {
			info.Details = details
		}

		return info, appErr.ExitCode()
	}

	return &ErrorInfo{
		Code:    ErrInternalError.ErrorCode(),
		Message: ErrInternalError.Message(),
		Details: err.Error(),
	}, ErrInternalError.ExitCode()
}
