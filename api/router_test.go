package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHandler implements QRHandler for testing
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Index(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
	w.WriteHeader(http.StatusOK)
}

func (m *MockHandler) CreateQRCode(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
	w.WriteHeader(http.StatusCreated)
}

func (m *MockHandler) DownloadQRCode(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
	w.WriteHeader(http.StatusAccepted)
}

func TestNewRouter(t *testing.T) {
	mockHandler := new(MockHandler)

	router := NewRouter(mockHandler)

	assert.NotNil(t, router)
	assert.Equal(t, mockHandler, router.handler)
	assert.IsType(t, &chi.Mux{}, router.router)
}

func TestRouter_SetupRoutes(t *testing.T) {
	mockHandler := new(MockHandler)
	router := NewRouter(mockHandler)
	router.SetupRoutes()

	// GET and POST /
	mockHandler.On("Index", mock.Anything, mock.Anything).Twice()
	req := httptest.NewRequest(http.MethodGet, "/?text=hi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// POST /api/qrcodes
	mockHandler.On("CreateQRCode", mock.Anything, mock.Anything).Once()
	req = httptest.NewRequest(http.MethodPost, "/api/qrcodes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// GET /api/qrcodes/{format}
	mockHandler.On("DownloadQRCode", mock.Anything, mock.MatchedBy(func(r *http.Request) bool {
		return chi.URLParam(r, "format") == "svg"
	})).Once()
	req = httptest.NewRequest(http.MethodGet, "/api/qrcodes/svg?text=hi", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	// Healthcheck
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Healthy", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Wrong method
	req = httptest.NewRequest(http.MethodDelete, "/api/qrcodes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	mockHandler.AssertExpectations(t)
}
