// Package generator turns a piece of text into downloadable QR code artifacts.
//
// Two encoders take part in every generation: a raster encoder producing PNG
// bytes and a vector encoder producing an SVG document. They are independent;
// the vector image is never traced from the raster one.
package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/infrastructure/logger"
)

var (
	// ErrEmptyInput is returned when there is no text to encode
	ErrEmptyInput = errors.New(constant.ErrEmptyInput)
	// ErrInputTooLarge is returned when the text does not fit the largest QR symbol
	ErrInputTooLarge = errors.New(constant.ErrInputTooLarge)
)

// Level is the QR error-correction level
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelQuartile
	LevelHigh
)

var levelNames = map[Level]string{
	LevelLow:      "low",
	LevelMedium:   "medium",
	LevelQuartile: "quartile",
	LevelHigh:     "high",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts a level name or its single-letter form (L, M, Q, H)
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return LevelLow, nil
	case "medium", "m":
		return LevelMedium, nil
	case "quartile", "q":
		return LevelQuartile, nil
	case "high", "h":
		return LevelHigh, nil
	}
	return LevelLow, fmt.Errorf("%s: %q", constant.ErrUnknownLevel, s)
}

// Artifact is an encoded image ready to be offered as a file
type Artifact struct {
	Format   string
	Data     []byte
	MIMEType string
	Filename string
}

// DataURI embeds the artifact bytes in a data: URI
func (a Artifact) DataURI() string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(a.MIMEType) + base64.StdEncoding.EncodedLen(len(a.Data)))
	b.WriteString("data:")
	b.WriteString(a.MIMEType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(a.Data))
	return b.String()
}

// Result is the output of one generation
type Result struct {
	Text   string
	Raster Artifact
	Vector Artifact
}

// RasterEncoder renders text as PNG bytes
type RasterEncoder interface {
	EncodePNG(text string) ([]byte, error)
}

// VectorEncoder renders text as an SVG document
type VectorEncoder interface {
	EncodeSVG(text string) ([]byte, error)
}

// Service generates QR code artifacts
type Service struct {
	raster RasterEncoder
	vector VectorEncoder
}

// NewService creates a new generator service
func NewService(raster RasterEncoder, vector VectorEncoder) *Service {
	logger.Debug("Creating generator service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "generator",
		},
	})

	return &Service{
		raster: raster,
		vector: vector,
	}
}

// Generate encodes text in both formats. Either both artifacts are returned or none.
func (s *Service) Generate(ctx context.Context, text string) (*Result, error) {
	logger.CtxDebug(ctx, "Generating QR code", logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataTextLength: len(text),
		},
	})

	raster, err := s.EncodeRaster(ctx, text)
	if err != nil {
		return nil, err
	}
	vector, err := s.EncodeVector(ctx, text)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, constant.MsgQRCodeGenerated, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataTextLength: len(text),
			"png_bytes":             len(raster.Data),
			"svg_bytes":             len(vector.Data),
		},
	})

	return &Result{
		Text:   text,
		Raster: raster,
		Vector: vector,
	}, nil
}

// EncodeRaster encodes text as a PNG artifact
func (s *Service) EncodeRaster(ctx context.Context, text string) (Artifact, error) {
	data, err := s.encode(ctx, constant.CtxEncodeRaster, constant.ErrCodeRasterEncode, text, s.raster.EncodePNG)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Format:   constant.FormatPNG,
		Data:     data,
		MIMEType: constant.MIMETypePNG,
		Filename: constant.FilenamePNG,
	}, nil
}

// EncodeVector encodes text as an SVG artifact
func (s *Service) EncodeVector(ctx context.Context, text string) (Artifact, error) {
	data, err := s.encode(ctx, constant.CtxEncodeVector, constant.ErrCodeVectorEncode, text, s.vector.EncodeSVG)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Format:   constant.FormatSVG,
		Data:     data,
		MIMEType: constant.MIMETypeSVG,
		Filename: constant.FilenameSVG,
	}, nil
}

func (s *Service) encode(ctx context.Context, fn, failCode, text string, enc func(string) ([]byte, error)) ([]byte, error) {
	if text == "" {
		logger.CtxWarn(ctx, "Input text cannot be empty", logger.LoggerInfo{
			ContextFunction: fn,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEmptyInput,
				Message: constant.ErrEmptyInput,
				Type:    constant.ErrTypeValidation,
			},
		})
		return nil, ErrEmptyInput
	}

	data, err := enc(text)
	if err != nil {
		code := failCode
		if errors.Is(err, ErrInputTooLarge) {
			code = constant.ErrCodeInputTooLarge
		}
		logger.CtxWarn(ctx, "Failed to encode QR code", logger.LoggerInfo{
			ContextFunction: fn,
			Error: &logger.CustomError{
				Code:    code,
				Message: err.Error(),
				Type:    constant.ErrTypeEncoding,
			},
			Data: map[string]interface{}{
				constant.DataTextLength: len(text),
			},
		})
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: encoder returned no data", fn)
	}

	return data, nil
}
