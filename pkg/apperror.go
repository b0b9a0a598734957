package pkg

import "fmt"

// Error codes returned in the HTTP error envelope.
//
// The set is closed: every handler maps domain failures onto exactly one of
// these codes before serializing the response.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidPaymentData = "INVALID_PAYMENT_DATA"
	CodeAmountTooHigh      = "AMOUNT_TOO_HIGH"
	CodeInsufficientAmount = "INSUFFICIENT_AMOUNT"
	CodeMercadoPagoAPI     = "MERCADOPAGO_API_ERROR"
	CodePaymentNotFound    = "PAYMENT_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError is a domain failure with an HTTP-facing status and code.
//
// Handlers serialize it through ToHTTPError; the wrapped cause (if any) is for
// logs only and never reaches the response body.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error

	// FieldErrors carries per-field validation messages. Only set for
	// VALIDATION_ERROR responses.
	FieldErrors map[string][]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewValidationError(message string, fieldErrors map[string][]string) *AppError {
	return &AppError{
		Code:        CodeValidationError,
		Message:     message,
		HTTPStatus:  400,
		FieldErrors: fieldErrors,
	}
}

// HTTPError is the uniform error envelope used by every route.
type HTTPError struct {
	StatusCode int                 `json:"statusCode"`
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		StatusCode: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Errors:     e.FieldErrors,
	}
}
