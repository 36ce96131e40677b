package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Parameter errors (100-149)
	ErrCodeInvalidParameter          ErrorCode = 100
	ErrCodeInvalidPeriod             ErrorCode = 101
	ErrCodeInvalidWindow             ErrorCode = 102
	ErrCodeInvalidMultiplier         ErrorCode = 103
	ErrCodeInvalidThreshold          ErrorCode = 104
	ErrCodeInvalidBrickSize          ErrorCode = 105
	ErrCodeInvalidReversalAmount     ErrorCode = 106
	ErrCodeInvalidAccelerationFactor ErrorCode = 107
	ErrCodeInvalidType               ErrorCode = 108
	ErrCodeMissingParameter          ErrorCode = 109
	ErrCodeInvalidPriceField         ErrorCode = 110

	// Input errors (150-199)
	ErrCodeInvalidInput     ErrorCode = 150
	ErrCodeEmptyInput       ErrorCode = 151
	ErrCodeMismatchedLength ErrorCode = 152

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeNoDataFound           ErrorCode = 203
	ErrCodeUnsupportedFormat     ErrorCode = 204

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Configuration errors (400-499)
	ErrCodeInvalidConfiguration ErrorCode = 400
	ErrCodeConfigNotFound       ErrorCode = 401
	ErrCodeInvalidVersion       ErrorCode = 402
	ErrCodeVersionMismatch      ErrorCode = 403

	// Output errors (500-599)
	ErrCodeWriteFailed ErrorCode = 500
)
