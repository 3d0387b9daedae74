package presenter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prasetyowira/qrgen/domain/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *generator.Result {
	return &generator.Result{
		Text: "https://example.com",
		Raster: generator.Artifact{
			Format:   "PNG",
			Data:     []byte("png-data"),
			MIMEType: "image/png",
			Filename: "qr_code.png",
		},
		Vector: generator.Artifact{
			Format:   "SVG",
			Data:     []byte("<svg></svg>"),
			MIMEType: "image/svg+xml",
			Filename: "qr_code.svg",
		},
	}
}

func render(t *testing.T, p *Presenter, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, page))
	return buf.String()
}

func TestNewPresenter(t *testing.T) {
	p, err := NewPresenter(400)

	require.NoError(t, err)
	assert.NotNil(t, p.tmpl)
	assert.Equal(t, 400, p.previewWidth)
}

func TestRender_EmptyInputShowsFormOnly(t *testing.T) {
	p, err := NewPresenter(400)
	require.NoError(t, err)

	html := render(t, p, p.Page("", nil))

	assert.Contains(t, html, "QR Code Generator")
	assert.Contains(t, html, `name="text"`)
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "download=")
	assert.NotContains(t, html, `role="alert"`)
}

func TestRender_ResultShowsPreviewAndDownloads(t *testing.T) {
	p, err := NewPresenter(400)
	require.NoError(t, err)
	result := testResult()

	html := render(t, p, p.Page(result.Text, result))

	assert.Contains(t, html, `<img src="`+result.Raster.DataURI()+`" width="400"`)
	assert.Contains(t, html, `href="`+result.Raster.DataURI()+`" download="qr_code.png"`)
	assert.Contains(t, html, `href="`+result.Vector.DataURI()+`" download="qr_code.svg"`)
	assert.Contains(t, html, "Download as PNG")
	assert.Contains(t, html, "Download as SVG")
	assert.Contains(t, html, `value="https://example.com"`)
	assert.NotContains(t, html, "ZgotmplZ")
	assert.Less(t, strings.Index(html, "qr_code.png"), strings.Index(html, "qr_code.svg"))
}

func TestRender_ErrorPage(t *testing.T) {
	p, err := NewPresenter(400)
	require.NoError(t, err)

	html := render(t, p, p.ErrorPage("aaaa", "The text is too long"))

	assert.Contains(t, html, `role="alert">The text is too long</p>`)
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "download=")
}

func TestRender_EscapesInput(t *testing.T) {
	p, err := NewPresenter(400)
	require.NoError(t, err)

	html := render(t, p, p.Page(`"><script>alert(1)</script>`, nil))

	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestOfferDownload(t *testing.T) {
	p, err := NewPresenter(320)
	require.NoError(t, err)
	artifact := testResult().Vector

	d := p.OfferDownload(artifact)

	assert.Equal(t, "qr_code.svg", d.Filename)
	assert.Equal(t, "image/svg+xml", d.MIMEType)
	assert.Equal(t, "Download as SVG", d.Label)
	assert.Equal(t, artifact.DataURI(), string(d.Href))
}

func TestPreview(t *testing.T) {
	p, err := NewPresenter(320)
	require.NoError(t, err)

	preview := p.Preview(testResult().Raster)

	assert.Equal(t, 320, preview.Width)
	assert.True(t, strings.HasPrefix(string(preview.Src), "data:image/png;base64,"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	p, err := NewPresenter(400)
	require.NoError(t, err)

	assert.Error(t, p.Render(failingWriter{}, p.Page("", nil)))
}
