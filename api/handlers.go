package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prasetyowira/qrgen/api/presenter"
	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

// Service is the part of the generator the handlers depend on
type Service interface {
	Generate(ctx context.Context, text string) (*generator.Result, error)
	EncodeRaster(ctx context.Context, text string) (generator.Artifact, error)
	EncodeVector(ctx context.Context, text string) (generator.Artifact, error)
}

// Handler contains service dependencies for HTTP handlers
type Handler struct {
	service         Service
	presenter       *presenter.Presenter
	maxRequestBytes int64
}

// CreateQRCodeRequest is the request object for CreateQRCode endpoint
type CreateQRCodeRequest struct {
	Text string `json:"text"`
}

// ArtifactResponse describes one downloadable artifact
type ArtifactResponse struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int    `json:"size"`
	DataURI  string `json:"data_uri"`
}

// QRCodeResponse is the response for CreateQRCode endpoint
type QRCodeResponse struct {
	Text      string             `json:"text"`
	Artifacts []ArtifactResponse `json:"artifacts"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// NewHandler creates a new API handler
func NewHandler(service Service, p *presenter.Presenter, maxRequestBytes int64) *Handler {
	return &Handler{
		service:         service,
		presenter:       p,
		maxRequestBytes: maxRequestBytes,
	}
}

// Index captures the text field, runs the pipeline and renders the page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)

	if err := r.ParseForm(); err != nil {
		appLogger.CtxWarn(ctx, "Error parsing form", appLogger.LoggerInfo{
			ContextFunction: constant.CtxIndex,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIDecodeRequest,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
		h.renderPage(w, r, http.StatusBadRequest, h.presenter.ErrorPage("", constant.ErrInvalidRequest))
		return
	}
	text := r.Form.Get(constant.FieldText)

	appLogger.CtxDebug(ctx, constant.MsgHandlingIndex, appLogger.LoggerInfo{
		ContextFunction: constant.CtxIndex,
		Data: map[string]interface{}{
			constant.DataMethod:     r.Method,
			constant.DataTextLength: len(text),
		},
	})

	if text == "" {
		h.renderPage(w, r, http.StatusOK, h.presenter.Page("", nil))
		return
	}

	result, err := h.service.Generate(ctx, text)
	if err != nil {
		status, message := h.classify(ctx, constant.CtxIndex, err)
		if status == http.StatusUnprocessableEntity {
			message = constant.ErrTooLargeDisplay
		}
		h.renderPage(w, r, status, h.presenter.ErrorPage(text, message))
		return
	}

	h.renderPage(w, r, http.StatusOK, h.presenter.Page(text, result))
}

// CreateQRCode returns both artifacts of one generation as JSON
func (h *Handler) CreateQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appLogger.CtxDebug(ctx, constant.MsgHandlingCreate, appLogger.LoggerInfo{
		ContextFunction: constant.CtxCreateQRCode,
	})

	var req CreateQRCodeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxRequestBytes)).Decode(&req); err != nil {
		appLogger.CtxWarn(ctx, "Error decoding request body", appLogger.LoggerInfo{
			ContextFunction: constant.CtxCreateQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIDecodeRequest,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
		WriteJSONError(w, constant.ErrInvalidRequest, http.StatusBadRequest)
		return
	}

	result, err := h.service.Generate(ctx, req.Text)
	if err != nil {
		status, message := h.classify(ctx, constant.CtxCreateQRCode, err)
		WriteJSONError(w, message, status)
		return
	}

	WriteJSON(w, QRCodeResponse{
		Text: result.Text,
		Artifacts: []ArtifactResponse{
			newArtifactResponse(result.Raster),
			newArtifactResponse(result.Vector),
		},
	}, http.StatusOK)
}

// DownloadQRCode streams a single artifact as an attachment
func (h *Handler) DownloadQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := strings.ToLower(chi.URLParam(r, constant.ParamFormat))
	text := r.URL.Query().Get(constant.FieldText)

	appLogger.CtxDebug(ctx, constant.MsgHandlingDownload, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDownloadQRCode,
		Data: map[string]interface{}{
			constant.DataFormat:     format,
			constant.DataTextLength: len(text),
		},
	})

	var encode func(context.Context, string) (generator.Artifact, error)
	switch format {
	case "png":
		encode = h.service.EncodeRaster
	case "svg":
		encode = h.service.EncodeVector
	default:
		appLogger.CtxInfo(ctx, "Unknown QR code format", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDownloadQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIUnknownFormat,
				Message: constant.ErrUnknownFormat,
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataFormat: format,
			},
		})
		WriteJSONError(w, constant.ErrUnknownFormat, http.StatusNotFound)
		return
	}

	artifact, err := encode(ctx, text)
	if err != nil {
		status, message := h.classify(ctx, constant.CtxDownloadQRCode, err)
		WriteJSONError(w, message, status)
		return
	}

	w.Header().Set(constant.HeaderContentType, artifact.MIMEType)
	w.Header().Set(constant.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		appLogger.CtxWarn(ctx, "Error writing artifact", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDownloadQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIWriteResponse,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
	}
}

// classify maps a generator error to a status code and a client-facing message
func (h *Handler) classify(ctx context.Context, fn string, err error) (int, string) {
	switch {
	case errors.Is(err, generator.ErrEmptyInput):
		return http.StatusBadRequest, constant.ErrEmptyInput
	case errors.Is(err, generator.ErrInputTooLarge):
		return http.StatusUnprocessableEntity, constant.ErrInputTooLarge
	}

	appLogger.CtxError(ctx, "Error generating QR code", appLogger.LoggerInfo{
		ContextFunction: fn,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeAPIServiceError,
			Message: err.Error(),
			Type:    constant.ErrTypeAPI,
		},
	})
	return http.StatusInternalServerError, constant.ErrGenerateFailure
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page presenter.Page) {
	var buf bytes.Buffer
	if err := h.presenter.Render(&buf, page); err != nil {
		appLogger.CtxError(r.Context(), "Error rendering page", appLogger.LoggerInfo{
			ContextFunction: constant.CtxPresenter,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIRender,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(constant.HeaderContentType, constant.ContentTypeHTML)
	w.Header().Set(constant.HeaderCacheControl, "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func newArtifactResponse(a generator.Artifact) ArtifactResponse {
	return ArtifactResponse{
		Format:   a.Format,
		Filename: a.Filename,
		MIMEType: a.MIMEType,
		Size:     len(a.Data),
		DataURI:  a.DataURI(),
	}
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set(constant.HeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes a JSON error response
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{
		Error: message,
		Code:  statusCode,
	}, statusCode)
}
