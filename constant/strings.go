package constant

// HTTP header names
const (
	HeaderRequestID          = "X-Request-ID"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderCacheControl       = "Cache-Control"
)

// Content types
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	MIMETypePNG     = "image/png"
	MIMETypeSVG     = "image/svg+xml"
)

// Download artifacts
const (
	FilenamePNG = "qr_code.png"
	FilenameSVG = "qr_code.svg"
	FormatPNG   = "PNG"
	FormatSVG   = "SVG"
)

// Form and query fields
const (
	FieldText   = "text"
	ParamFormat = "format"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain       = "domain"
	CtxGenerate     = "Generate"
	CtxEncodeRaster = "EncodeRaster"
	CtxEncodeVector = "EncodeVector"

	// Infrastructure context names
	CtxQR = "qr"

	// API context names
	CtxAPI            = "api"
	CtxRouter         = "Router"
	CtxIndex          = "Index"
	CtxCreateQRCode   = "CreateQRCode"
	CtxDownloadQRCode = "DownloadQRCode"
	CtxPresenter      = "Presenter"

	// General context names
	CtxMain = "Main"
)

// Data field keys
const (
	// Service data fields
	DataService    = "service"
	DataTextLength = "text_length"
	DataFormat     = "format"
	DataBytes      = "bytes"
	DataModuleSize = "module_size"
	DataVersion    = "version"
	DataModules    = "modules"

	// API data fields
	DataMethod      = "method"
	DataPath        = "path"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataPort        = "port"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrEmptyInput      = "input text cannot be empty"
	ErrInputTooLarge   = "input too large to encode as a QR code"
	ErrUnknownLevel    = "unknown error correction level"
	ErrInvalidRequest  = "Invalid request format"
	ErrUnknownFormat   = "Unknown QR code format"
	ErrGenerateFailure = "Failed to generate QR code"
	ErrTooLargeDisplay = "The text is too long to fit in a QR code. Please shorten it and try again."
)

// API routes
const (
	RouteIndex          = "/"
	RouteCreateQRCode   = "/api/qrcodes"
	RouteDownloadQRCode = "/api/qrcodes/{format}"
	RouteHealthcheck    = "/health"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Page text
const (
	PageTitle  = "QR Code Generator"
	PagePrompt = "Enter the link you want to generate a QR code for:"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgInvalidConfig       = "Invalid configuration"
	MsgServerStarting      = "Server starting"
	MsgServerFailedToStart = "Server failed to start"
	MsgServerShuttingDown  = "Server shutting down"
	MsgServerShutdownError = "Error during server shutdown"
	MsgServerStopped       = "Server stopped"
	MsgRequestReceived     = "Request received"
	MsgRequestCompleted    = "Request completed"
	MsgSettingUpRoutes     = "Setting up API routes"
	MsgHealthcheckRequest  = "Handling healthcheck request"
	MsgHealthy             = "Healthy"
	MsgHandlingIndex       = "Handling QR code page request"
	MsgHandlingCreate      = "Handling QR code create request"
	MsgHandlingDownload    = "Handling QR code download request"
	MsgQRCodeGenerated     = "QR code generated"
)
