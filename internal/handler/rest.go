package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/featured-content/internal/apperr"
	"github.com/vyrodovalexey/featured-content/internal/middleware"
	"github.com/vyrodovalexey/featured-content/internal/model"
	"github.com/vyrodovalexey/featured-content/internal/store"
)

// Version is the application version.
const Version = "1.0.0"

// ContentPath is the collection path of the featured-content API.
const ContentPath = "/api/featured-content"

// maxBodyBytes caps create request bodies.
const maxBodyBytes = 1 << 20

// Response messages.
const (
	MsgCreated        = "content created successfully"
	MsgFieldsRequired = "all fields are required: title, description, imageUrl, linkUrl"
	MsgInvalidBody    = "invalid request body"
	MsgListFailed     = "an error occurred while retrieving the content list"
	MsgGetFailed      = "an error occurred while retrieving the content"
	MsgCreateFailed   = "an error occurred while creating the content"
	MsgDeleteFailed   = "an error occurred while deleting the content"
)

// internalErrorText is the only error detail exposed for 500 responses.
const internalErrorText = "internal server error"

// ContentHandler handles REST API requests for featured content.
type ContentHandler struct {
	store        store.Store
	logger       *zap.Logger
	broadcaster  Broadcaster
	listDelayMin time.Duration
	listDelayMax time.Duration
}

// Option configures a ContentHandler.
type Option func(*ContentHandler)

// WithBroadcaster publishes successful mutations to b.
func WithBroadcaster(b Broadcaster) Option {
	return func(h *ContentHandler) {
		if b != nil {
			h.broadcaster = b
		}
	}
}

// WithListLatency delays list responses by a random duration in [minDelay, maxDelay].
func WithListLatency(minDelay, maxDelay time.Duration) Option {
	return func(h *ContentHandler) {
		h.listDelayMin = minDelay
		h.listDelayMax = maxDelay
	}
}

// NewContentHandler creates a new ContentHandler instance.
func NewContentHandler(s store.Store, logger *zap.Logger, opts ...Option) *ContentHandler {
	h := &ContentHandler{
		store:       s,
		logger:      logger,
		broadcaster: noopBroadcaster{},
	}

	for _, opt := range opts {
		opt(h)
	}

	contentItems.Set(float64(s.Len()))

	return h
}

// RegisterRoutes registers the REST API routes with the router.
func (h *ContentHandler) RegisterRoutes(router *mux.Router) {
	list := middleware.SimulatedLatency(h.listDelayMin, h.listDelayMax)(http.HandlerFunc(h.ListContent))

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.ReadyCheck).Methods(http.MethodGet)
	router.Handle(ContentPath, list).Methods(http.MethodGet)
	router.HandleFunc(ContentPath, h.CreateContent).Methods(http.MethodPost)
	router.HandleFunc(ContentPath+"/{id}", h.GetContent).Methods(http.MethodGet)
	router.HandleFunc(ContentPath+"/{id}", h.DeleteContent).Methods(http.MethodDelete)
}

// HealthCheck handles GET /health requests.
func (h *ContentHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Version: Version,
	}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(response))
}

// ReadyCheck handles GET /ready requests.
func (h *ContentHandler) ReadyCheck(w http.ResponseWriter, _ *http.Request) {
	response := ReadyResponse{
		Status: "ready",
		Items:  h.store.Len(),
	}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(response))
}

// ListContent handles GET /api/featured-content requests.
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"))

	items, err := h.store.List(r.Context(), limit)
	if err != nil {
		h.writeAppError(w, opList, apperr.Internal(MsgListFailed, err))
		return
	}

	contentOperationsTotal.WithLabelValues(opList, resultSuccess).Inc()
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(items))
}

// GetContent handles GET /api/featured-content/{id} requests.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]

	id, ok := parseID(rawID)
	if !ok {
		h.writeAppError(w, opGet, notFound(rawID, nil))
		return
	}

	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeAppError(w, opGet, classify(err, strconv.Itoa(id), MsgGetFailed))
		return
	}

	contentOperationsTotal.WithLabelValues(opGet, resultSuccess).Inc()
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(item))
}

// CreateContent handles POST /api/featured-content requests.
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var input model.NewContentItem
	if err := decodeBody(w, r, &input); err != nil {
		h.writeAppError(w, opCreate, apperr.Validation(MsgInvalidBody, err))
		return
	}

	if err := input.Validate(); err != nil {
		h.writeAppError(w, opCreate, apperr.Validation(MsgFieldsRequired, err))
		return
	}

	item, err := h.store.Create(r.Context(), &input)
	if err != nil {
		h.writeAppError(w, opCreate, classify(err, "", MsgCreateFailed))
		return
	}

	contentOperationsTotal.WithLabelValues(opCreate, resultSuccess).Inc()
	contentItems.Set(float64(h.store.Len()))
	h.broadcaster.Broadcast(model.NewCreatedEvent(*item))

	h.logger.Info("content created", zap.Int("id", item.ID), zap.String("title", item.Title))
	h.writeJSON(w, http.StatusCreated, model.NewMessageResponse(MsgCreated, item))
}

// DeleteContent handles DELETE /api/featured-content/{id} requests.
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]

	id, ok := parseID(rawID)
	if !ok {
		h.writeAppError(w, opDelete, notFound(rawID, nil))
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeAppError(w, opDelete, classify(err, strconv.Itoa(id), MsgDeleteFailed))
		return
	}

	contentOperationsTotal.WithLabelValues(opDelete, resultSuccess).Inc()
	contentItems.Set(float64(h.store.Len()))
	h.broadcaster.Broadcast(model.NewDeletedEvent(id))

	h.logger.Info("content deleted", zap.Int("id", id))
	h.writeJSON(w, http.StatusOK, model.NewMessageResponse[any](deletedMessage(id), nil))
}

// errTrailingData is returned when a request body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON body")

// decodeBody decodes exactly one JSON value from the request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}

// parseLimit returns the requested limit, or 0 (no limit) when the value
// is absent or not a positive integer.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}

// parseID parses a path id. Unparseable ids can never match an item.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// notFound builds the 404 error. idLabel is the parsed id when the path
// holds an integer, the raw path segment otherwise.
func notFound(idLabel string, err error) *apperr.Error {
	return apperr.NotFound(fmt.Sprintf("content with ID %s not found", idLabel), err)
}

func deletedMessage(id int) string {
	return fmt.Sprintf("content with ID %d deleted successfully", id)
}

// classify converts a store error into an application error.
func classify(err error, idLabel, internalMsg string) *apperr.Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFound(idLabel, err)
	case isValidationError(err):
		return apperr.Validation(MsgFieldsRequired, err)
	default:
		return apperr.Internal(internalMsg, err)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, model.ErrMissingTitle) ||
		errors.Is(err, model.ErrMissingDescription) ||
		errors.Is(err, model.ErrMissingImageURL) ||
		errors.Is(err, model.ErrMissingLinkURL) ||
		errors.Is(err, store.ErrNilItem)
}

// writeAppError records the failure and writes the envelope for its kind.
// Causes of internal errors are logged and never sent to the client.
func (h *ContentHandler) writeAppError(w http.ResponseWriter, operation string, appErr *apperr.Error) {
	contentOperationsTotal.WithLabelValues(operation, appErr.Kind.String()).Inc()

	response := model.NewErrorResponse(appErr.Message, "")

	if appErr.Kind == apperr.KindInternal {
		h.logger.Error("content operation failed",
			zap.String("operation", operation),
			zap.Error(appErr.Err),
		)
		response.Error = internalErrorText
	} else {
		h.logger.Debug("content request rejected",
			zap.String("operation", operation),
			zap.String("kind", appErr.Kind.String()),
			zap.Error(appErr),
		)
	}

	h.writeJSON(w, appErr.Kind.Status(), response)
}

// writeJSON writes a JSON response with the given status code.
func (h *ContentHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
