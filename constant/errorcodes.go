package constant

// Generator service error codes
const (
	// Validation errors (0xx)
	ErrCodeEmptyInput = "GEN001"

	// Encoding errors (1xx)
	ErrCodeInputTooLarge = "GEN101"
	ErrCodeRasterEncode  = "GEN102"
	ErrCodeVectorEncode  = "GEN103"
)

// QR backend error codes
const (
	ErrCodeQRVectorBackend = "QR001"
	ErrCodeQRPNGEncode     = "QR002"
)

// API error codes
const (
	ErrCodeAPIDecodeRequest = "API001"
	ErrCodeAPIServiceError  = "API002"
	ErrCodeAPIRender        = "API003"
	ErrCodeAPIUnknownFormat = "API004"
	ErrCodeAPIWriteResponse = "API005"
)

// Application error codes
const (
	ErrCodeAppConfig         = "APP001"
	ErrCodeAppServerStart    = "APP002"
	ErrCodeAppServerShutdown = "APP003"
	ErrCodeAppPresenter      = "APP004"
)

// Error types for categorization
const (
	ErrTypeValidation = "validation"
	ErrTypeEncoding   = "encoding"
	ErrTypeQR         = "qr"
	ErrTypeAPI        = "api"
	ErrTypeApp        = "application"
)
