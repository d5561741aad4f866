package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - tipo para códigos de error
type ErrorCode string

// AppError - estructura principal de error de la aplicación
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// MarshalJSON omite Err y HTTPCode en las respuestas
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - wrapper sobre errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - wrapper sobre errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Errores predefinidos
var (
	// Autenticación
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidSession     = New(CodeUnauthorized, "Invalid session", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrAccountInactive    = New(CodeAccountInactive, "Account is inactive", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrOAuthOnlyAccount   = New(CodeOAuthOnlyAccount, "This account uses OAuth authentication. Please use the OAuth login.", http.StatusBadRequest)
	ErrPasswordNotSet     = New(CodePasswordNotSet, "Password not set for this account", http.StatusBadRequest)
	ErrMissingSessionID   = New(CodeMissingSessionID, "Session ID required", http.StatusBadRequest)

	// Usuarios
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Jobs / guardados / postulaciones
	ErrJobNotFound              = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrSavedItemNotFound        = New(CodeSavedItemNotFound, "Saved item not found", http.StatusNotFound)
	ErrItemAlreadySaved         = New(CodeItemAlreadySaved, "Item already saved", http.StatusConflict)
	ErrApplicationNotFound      = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrAlreadyApplied           = New(CodeAlreadyApplied, "You have already applied to this job", http.StatusConflict)
	ErrInvalidApplicationStatus = New(CodeInvalidApplicationStatus, "Invalid application status", http.StatusBadRequest)

	// Validación
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// ValidationError crea un error de validación con detalles por campo
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// ExternalServiceError envuelve fallas del proveedor de identidad externo
func ExternalServiceError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "External auth service error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
