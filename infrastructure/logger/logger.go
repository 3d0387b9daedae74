package logger

import (
	"context"
	"fmt"
	"os"

	"github.com/prasetyowira/qrgen/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

type requestIDKey struct{}

// LoggerInfo contains structured logging information
type LoggerInfo struct {
	ContextFunction string
	Error           *CustomError
	Data            map[string]interface{}
}

// CustomError represents a structured error for logging
type CustomError struct {
	Code    string
	Message string
	Type    string
}

// Initialize sets up the process-wide logger.
// level accepts zap level names (debug, info, warn, error) in any case.
func Initialize(isProduction bool, level string) error {
	lvl := zapcore.InfoLevel
	if !isProduction {
		lvl = zapcore.DebugLevel
	}
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("parse log level %q: %w", level, err)
		}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        constant.LogTimeKey,
		LevelKey:       constant.LogLevelKey,
		NameKey:        constant.LogNameKey,
		CallerKey:      constant.LogCallerKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     constant.LogMessageKey,
		StacktraceKey:  constant.LogStacktraceKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      !isProduction,
		Encoding:         constant.LogEncodingConsole,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{constant.LogOutputStdout},
		ErrorOutputPaths: []string{constant.LogOutputStderr},
	}
	if isProduction {
		config.Encoding = constant.LogEncodingJSON
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	}

	built, err := config.Build(zap.AddCallerSkip(2))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = built
	return nil
}

// Close flushes buffered entries; call it once on shutdown
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "" if there is none
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

func createFields(ctx context.Context, info LoggerInfo) []zap.Field {
	fields := make([]zap.Field, 0, 5+len(info.Data))

	if requestID := RequestID(ctx); requestID != "" {
		fields = append(fields, zap.String(constant.LogRequestIDKey, requestID))
	}
	if info.ContextFunction != "" {
		fields = append(fields, zap.String(constant.LogFunctionKey, info.ContextFunction))
	}
	if info.Error != nil {
		fields = append(fields,
			zap.String(constant.LogErrorCodeKey, info.Error.Code),
			zap.String(constant.LogErrorTypeKey, info.Error.Type),
			zap.String(constant.LogErrorMessageKey, info.Error.Message),
		)
	}
	for k, v := range info.Data {
		fields = append(fields, zap.Any(k, v))
	}

	return fields
}

func write(ctx context.Context, lvl zapcore.Level, msg string, info LoggerInfo) {
	if logger == nil {
		if lvl == zapcore.FatalLevel {
			os.Exit(1)
		}
		return
	}
	if ce := logger.Check(lvl, msg); ce != nil {
		ce.Write(createFields(ctx, info)...)
	}
}

// Debug logs a debug message
func Debug(msg string, info LoggerInfo) { write(nil, zapcore.DebugLevel, msg, info) }

// Info logs an info message
func Info(msg string, info LoggerInfo) { write(nil, zapcore.InfoLevel, msg, info) }

// Warn logs a warning message
func Warn(msg string, info LoggerInfo) { write(nil, zapcore.WarnLevel, msg, info) }

// Error logs an error message
func Error(msg string, info LoggerInfo) { write(nil, zapcore.ErrorLevel, msg, info) }

// Fatal logs a fatal message and exits
func Fatal(msg string, info LoggerInfo) { write(nil, zapcore.FatalLevel, msg, info) }

// CtxDebug logs a debug message with context
func CtxDebug(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.DebugLevel, msg, info)
}

// CtxInfo logs an info message with context
func CtxInfo(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.InfoLevel, msg, info)
}

// CtxWarn logs a warning message with context
func CtxWarn(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.WarnLevel, msg, info)
}

// CtxError logs an error message with context
func CtxError(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.ErrorLevel, msg, info)
}
