// Package presenter renders the QR code page.
package presenter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
)

//go:embed templates/index.html
var templateFS embed.FS

// Preview is an inline image of the raster artifact
type Preview struct {
	Src   template.URL
	Width int
}

// Download is a link that saves an artifact without another request
type Download struct {
	Href     template.URL
	Filename string
	MIMEType string
	Label    string
}

// Page is the view model of the single page
type Page struct {
	Title     string
	Prompt    string
	Text      string
	Error     string
	Preview   *Preview
	Downloads []Download
}

// Presenter builds and renders pages. It holds no per-request state.
type Presenter struct {
	tmpl         *template.Template
	previewWidth int
}

// NewPresenter parses the embedded page template
func NewPresenter(previewWidth int) (*Presenter, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Presenter{
		tmpl:         tmpl,
		previewWidth: previewWidth,
	}, nil
}

// Preview shows the raster artifact at the configured width
func (p *Presenter) Preview(raster generator.Artifact) *Preview {
	// data: URIs are trusted here since the bytes come from our own encoder
	return &Preview{
		Src:   template.URL(raster.DataURI()),
		Width: p.previewWidth,
	}
}

// OfferDownload turns an artifact into a download link
func (p *Presenter) OfferDownload(artifact generator.Artifact) Download {
	return Download{
		Href:     template.URL(artifact.DataURI()),
		Filename: artifact.Filename,
		MIMEType: artifact.MIMEType,
		Label:    "Download as " + artifact.Format,
	}
}

// Page builds the view for text. A nil result renders the bare form.
func (p *Presenter) Page(text string, result *generator.Result) Page {
	page := Page{
		Title:  constant.PageTitle,
		Prompt: constant.PagePrompt,
		Text:   text,
	}
	if result == nil {
		return page
	}

	page.Preview = p.Preview(result.Raster)
	page.Downloads = []Download{
		p.OfferDownload(result.Raster),
		p.OfferDownload(result.Vector),
	}
	return page
}

// ErrorPage builds the form with an error message and nothing to download
func (p *Presenter) ErrorPage(text, message string) Page {
	page := p.Page(text, nil)
	page.Error = message
	return page
}

// Render executes the template into a buffer first so a failure writes nothing to w
func (p *Presenter) Render(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
