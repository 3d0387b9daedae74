package qrcode

import (
	"fmt"
	"strings"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	"github.com/prasetyowira/qrgen/infrastructure/logger"
	"rsc.io/qr"
)

// quietZone is the border width in modules
const quietZone = 4

// VectorEncoder renders SVG QR codes with rsc.io/qr
type VectorEncoder struct {
	level qr.Level
	scale int

	Dark  string
	Light string
}

// NewVectorEncoder creates an SVG encoder. scale is the rendered size of one module
// in user units; the viewBox is always measured in modules.
func NewVectorEncoder(level generator.Level, scale int) *VectorEncoder {
	if scale < 1 {
		scale = 1
	}
	return &VectorEncoder{
		level: vectorLevel(level),
		scale: scale,
		Dark:  "#000000",
		Light: "#ffffff",
	}
}

// EncodeSVG encodes text as a standalone SVG document. Dark modules are drawn as
// one path made of horizontal runs.
func (e *VectorEncoder) EncodeSVG(text string) ([]byte, error) {
	if text == "" {
		return nil, generator.ErrEmptyInput
	}

	code, err := qr.Encode(text, e.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generator.ErrInputTooLarge, err)
	}
	if code.Size == 0 {
		logger.Error("Vector backend returned an empty symbol", logger.LoggerInfo{
			ContextFunction: constant.CtxQR,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeQRVectorBackend,
				Message: "empty QR symbol",
				Type:    constant.ErrTypeQR,
			},
		})
		return nil, fmt.Errorf("empty QR symbol")
	}

	n := code.Size + 2*quietZone
	px := n * e.scale

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		px, px, n, n,
	)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, n, n, e.Light)
	fmt.Fprintf(&sb, `<path fill="%s" d="`, e.Dark)
	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; {
			if !code.Black(x, y) {
				x++
				continue
			}
			start := x
			for x < code.Size && code.Black(x, y) {
				x++
			}
			run := x - start
			fmt.Fprintf(&sb, "M%d,%dh%dv1h-%dz", start+quietZone, y+quietZone, run, run)
		}
	}
	sb.WriteString(`"/></svg>` + "\n")

	logger.Debug("Vector QR code encoded", logger.LoggerInfo{
		ContextFunction: constant.CtxQR,
		Data: map[string]interface{}{
			constant.DataModules:    code.Size,
			constant.DataModuleSize: e.scale,
			constant.DataBytes:      sb.Len(),
		},
	})

	return []byte(sb.String()), nil
}

func vectorLevel(level generator.Level) qr.Level {
	switch level {
	case generator.LevelMedium:
		return qr.M
	case generator.LevelQuartile:
		return qr.Q
	case generator.LevelHigh:
		return qr.H
	default:
		return qr.L
	}
}
