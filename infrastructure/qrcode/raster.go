// Package qrcode adapts third-party QR libraries to the generator encoders.
package qrcode

import (
	"fmt"
	"image/color"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	"github.com/prasetyowira/qrgen/infrastructure/logger"
	goqrcode "github.com/skip2/go-qrcode"
)

// RasterEncoder renders PNG QR codes with skip2/go-qrcode
type RasterEncoder struct {
	level      goqrcode.RecoveryLevel
	moduleSize int

	Foreground color.Color
	Background color.Color
}

// NewRasterEncoder creates a PNG encoder. moduleSize is the edge of one module in pixels.
func NewRasterEncoder(level generator.Level, moduleSize int) *RasterEncoder {
	if moduleSize < 1 {
		moduleSize = 1
	}
	return &RasterEncoder{
		level:      rasterLevel(level),
		moduleSize: moduleSize,
		Foreground: color.Black,
		Background: color.White,
	}
}

// EncodePNG encodes text into the smallest symbol that fits at the configured level.
// The image carries a 4-module quiet zone.
func (e *RasterEncoder) EncodePNG(text string) ([]byte, error) {
	if text == "" {
		return nil, generator.ErrEmptyInput
	}

	q, err := goqrcode.New(text, e.level)
	if err != nil {
		// With a valid level the library only fails when no version can hold the content
		return nil, fmt.Errorf("%w: %v", generator.ErrInputTooLarge, err)
	}
	q.ForegroundColor = e.Foreground
	q.BackgroundColor = e.Background

	// A negative size asks for a fixed number of pixels per module
	png, err := q.PNG(-e.moduleSize)
	if err != nil {
		logger.Error("Failed to write PNG", logger.LoggerInfo{
			ContextFunction: constant.CtxQR,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeQRPNGEncode,
				Message: err.Error(),
				Type:    constant.ErrTypeQR,
			},
		})
		return nil, fmt.Errorf("write png: %w", err)
	}

	logger.Debug("Raster QR code encoded", logger.LoggerInfo{
		ContextFunction: constant.CtxQR,
		Data: map[string]interface{}{
			constant.DataVersion:    q.VersionNumber,
			constant.DataModuleSize: e.moduleSize,
			constant.DataBytes:      len(png),
		},
	})

	return png, nil
}

func rasterLevel(level generator.Level) goqrcode.RecoveryLevel {
	switch level {
	case generator.LevelMedium:
		return goqrcode.Medium
	case generator.LevelQuartile:
		return goqrcode.High
	case generator.LevelHigh:
		return goqrcode.Highest
	default:
		return goqrcode.Low
	}
}
