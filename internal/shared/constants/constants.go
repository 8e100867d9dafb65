package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyUser     = "current_user"

	// Upload limits
	DefaultMaxFileSize  = 10 << 20
	DefaultMaxFiles     = 10
	UploadFieldSingle   = "file"
	UploadFieldMultiple = "files"

	// Database table names
	TableUsers       = "users"
	TableTickets     = "tickets"
	TableComments    = "comments"
	TableAttachments = "attachments"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgInvalidCredentials  = "Invalid credentials"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
