package utils

// Application constants
const (
	// Application name
	AppName = "Loans"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Password reset token expiration (1 hour)
	PasswordResetExpiration = "1h"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Attempts at a unique ledger reference before giving up
	MaxReferenceRetries = 5
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrForbidden          = "Access forbidden"

	ErrInvalidAmount   = "Investment amount must be between $100 and $1,000,000"
	ErrInvalidDuration = "Duration must be either 4, 8, 16, or 30 days"
	ErrInvalidRate     = "Interest rate must be between 5% and 20%"

	ErrRecordNotFound = "Record not found"
	ErrDuplicateEntry = "Duplicate entry"
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgLoginSuccess    = "Login successful"
	MsgRegisterSuccess = "Registration successful"
	MsgPasswordReset   = "Password reset successful"

	MsgCreateSuccess = "Created successfully"
	MsgUpdateSuccess = "Updated successfully"
	MsgDeleteSuccess = "Deleted successfully"
)
