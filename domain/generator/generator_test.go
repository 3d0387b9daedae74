package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRasterEncoder struct {
	mock.Mock
}

func (m *MockRasterEncoder) EncodePNG(text string) ([]byte, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockVectorEncoder struct {
	mock.Mock
}

func (m *MockVectorEncoder) EncodeSVG(text string) ([]byte, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestService() (*Service, *MockRasterEncoder, *MockVectorEncoder) {
	raster := new(MockRasterEncoder)
	vector := new(MockVectorEncoder)
	return NewService(raster, vector), raster, vector
}

func TestGenerate_Success(t *testing.T) {
	service, raster, vector := newTestService()
	text := "https://example.com"

	raster.On("EncodePNG", text).Return([]byte("png-bytes"), nil).Once()
	vector.On("EncodeSVG", text).Return([]byte("<svg/>"), nil).Once()

	result, err := service.Generate(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, text, result.Text)

	assert.Equal(t, "PNG", result.Raster.Format)
	assert.Equal(t, "image/png", result.Raster.MIMEType)
	assert.Equal(t, "qr_code.png", result.Raster.Filename)
	assert.Equal(t, []byte("png-bytes"), result.Raster.Data)

	assert.Equal(t, "SVG", result.Vector.Format)
	assert.Equal(t, "image/svg+xml", result.Vector.MIMEType)
	assert.Equal(t, "qr_code.svg", result.Vector.Filename)
	assert.Equal(t, []byte("<svg/>"), result.Vector.Data)

	raster.AssertExpectations(t)
	vector.AssertExpectations(t)
}

func TestGenerate_EmptyInput(t *testing.T) {
	service, raster, vector := newTestService()

	result, err := service.Generate(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, result)
	raster.AssertNotCalled(t, "EncodePNG", mock.Anything)
	vector.AssertNotCalled(t, "EncodeSVG", mock.Anything)
}

func TestGenerate_RasterTooLarge(t *testing.T) {
	service, raster, vector := newTestService()
	text := strings.Repeat("a", 5000)

	raster.On("EncodePNG", text).Return(nil, fmt.Errorf("%w: content too long", ErrInputTooLarge)).Once()

	result, err := service.Generate(context.Background(), text)

	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.Nil(t, result)
	vector.AssertNotCalled(t, "EncodeSVG", mock.Anything)
}

func TestGenerate_VectorFailureFailsWhole(t *testing.T) {
	service, raster, vector := newTestService()
	text := "hello"

	raster.On("EncodePNG", text).Return([]byte("png"), nil).Once()
	vector.On("EncodeSVG", text).Return(nil, fmt.Errorf("%w: too long", ErrInputTooLarge)).Once()

	result, err := service.Generate(context.Background(), text)

	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.Nil(t, result)
}

func TestEncodeRaster_EmptyData(t *testing.T) {
	service, raster, _ := newTestService()
	raster.On("EncodePNG", "x").Return([]byte{}, nil).Once()

	_, err := service.EncodeRaster(context.Background(), "x")

	assert.Error(t, err)
}

func TestEncodeVector_BackendError(t *testing.T) {
	service, _, vector := newTestService()
	backendErr := errors.New("boom")
	vector.On("EncodeSVG", "x").Return(nil, backendErr).Once()

	artifact, err := service.EncodeVector(context.Background(), "x")

	assert.ErrorIs(t, err, backendErr)
	assert.Empty(t, artifact.Data)
}

func TestArtifact_DataURI(t *testing.T) {
	artifact := Artifact{
		Data:     []byte{0x89, 'P', 'N', 'G'},
		MIMEType: "image/png",
	}

	uri := artifact.DataURI()

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, artifact.Data, decoded)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"low", LevelLow, false},
		{"L", LevelLow, false},
		{"Medium", LevelMedium, false},
		{"q", LevelQuartile, false},
		{" high ", LevelHigh, false},
		{"highest", LevelLow, true},
		{"", LevelLow, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "quartile", LevelQuartile.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}
