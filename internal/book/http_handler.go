package book

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshelf/internal/httpx"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Routes mounts the book endpoints on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{bookId}", h.Get)
	r.Put("/{bookId}", h.Update)
	r.Delete("/{bookId}", h.Delete)
}

func decodeInput(r *http.Request) (Input, error) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return Input{}, err
	}
	return in, nil
}

// isBodyTooLarge reports a body cut off by http.MaxBytesReader, which is how
// bodies without a declared length hit the size limit.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// Create handles POST /books
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body Input true "Book fields"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 413 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		if isBodyTooLarge(err) {
			httpx.JSONFail(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		httpx.JSONFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.JSONFail(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.log.Error("create book", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "book could not be added")
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, "book added", map[string]any{
		"bookId": b.ID,
	})
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Param name query string false "Case-insensitive substring of the name"
// @Param reading query string false "1 for reading, 0 for not reading"
// @Param finished query string false "1 for finished, 0 for unfinished"
// @Success 200 {object} httpx.Envelope
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context(), ParseFilter(r.URL.Query()))
	if err != nil {
		h.log.Error("list books", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "books could not be listed")
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{
		"books": books,
	})
}

// Get handles GET /books/{bookId}
// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /books/{bookId} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "book not found")
			return
		}
		h.log.Error("get book", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "book could not be read")
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{
		"book": b,
	})
}

// Update handles PUT /books/{bookId}
// @Summary Replace a book's fields
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "Book ID"
// @Param book body Input true "Book fields"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 413 {object} httpx.Envelope
// @Router /books/{bookId} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		if isBodyTooLarge(err) {
			httpx.JSONFail(w, http.StatusRequestEntityTooLarge, "update failed, request body too large")
			return
		}
		httpx.JSONFail(w, http.StatusBadRequest, "update failed, invalid request body")
		return
	}

	_, err = h.service.Update(r.Context(), chi.URLParam(r, "bookId"), in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.JSONFail(w, http.StatusBadRequest, "update failed, "+verr.Message)
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, "update failed, id not found")
		default:
			h.log.Error("update book", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
			httpx.JSONError(w, http.StatusInternalServerError, "book could not be updated")
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "book updated", nil)
}

// Delete handles DELETE /books/{bookId}
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /books/{bookId} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "bookId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "delete failed, id not found")
			return
		}
		h.log.Error("delete book", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "book could not be deleted")
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "book deleted", nil)
}
