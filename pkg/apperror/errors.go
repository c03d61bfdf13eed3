package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Registry & Voting (REG) ----

// ErrUnauthorized signals a non-emitter caller invoking an emitter-only action.
func ErrUnauthorized(address string) *AppError {
	return New("REG_001", fmt.Sprintf("%s is not the emitter", address), http.StatusForbidden)
}

func ErrNotAShareholder(address string) *AppError {
	return New("REG_002", fmt.Sprintf("address %s does not stand for a shareholder", address), http.StatusNotFound)
}

// ErrEmptyRegistry signals a weight query against a registry with zero total
// votes: the weight fraction is undefined.
func ErrEmptyRegistry() *AppError {
	return New("REG_003", "registry has no votes to weigh against", http.StatusConflict)
}

func ErrInvalidSplitFactor(factor float64) *AppError {
	return New("REG_004", fmt.Sprintf("a split factor of %g is invalid", factor), http.StatusBadRequest)
}

func ErrEmptyDelegate() *AppError {
	return New("REG_005", "delegate address cannot be empty while granting delegation", http.StatusBadRequest)
}

func ErrSelfDelegation() *AppError {
	return New("REG_006", "cannot delegate voting power to oneself", http.StatusBadRequest)
}

func ErrAlreadyInitialized() *AppError {
	return New("REG_007", "registry has already been initialized", http.StatusConflict)
}

func ErrNotInitialized() *AppError {
	return New("REG_008", "registry has not been initialized", http.StatusConflict)
}

func ErrInvalidVoteMode(mode string) *AppError {
	return New("REG_009", fmt.Sprintf("unknown vote mode %q", mode), http.StatusBadRequest)
}

// ---- Ledger (LED) ----

func ErrInsufficientShares() *AppError {
	return New("LED_001", "insufficient share balance", http.StatusUnprocessableEntity)
}

func ErrInsufficientAllowance() *AppError {
	return New("LED_002", "insufficient allowance on source account", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("LED_003", "invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "invalid credentials", http.StatusUnauthorized)
}

func ErrAddressTaken() *AppError {
	return New("AUTH_002", "address is already registered", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LED_003-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("LED_003", message, http.StatusBadRequest)
}
