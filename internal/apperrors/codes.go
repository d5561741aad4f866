package apperrors

// Códigos de error agrupados por dominio
const (
	// Autenticación y autorización
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountInactive    ErrorCode = "ACCOUNT_INACTIVE"
	CodeOAuthOnlyAccount   ErrorCode = "OAUTH_ONLY_ACCOUNT"
	CodePasswordNotSet     ErrorCode = "PASSWORD_NOT_SET"

	// Validación
	CodeValidationFailed         ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole          ErrorCode = "INVALID_USER_ROLE"
	CodeInvalidApplicationStatus ErrorCode = "INVALID_APPLICATION_STATUS"
	CodeMissingSessionID         ErrorCode = "MISSING_SESSION_ID"

	// Recursos
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeSavedItemNotFound   ErrorCode = "SAVED_ITEM_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Lógica de negocio
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeItemAlreadySaved   ErrorCode = "ITEM_ALREADY_SAVED"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"

	// Errores de sistema
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
