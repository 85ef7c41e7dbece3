package handlers

import (
	"context"
	"errors"
	"net/http"

	"market-signals/logger"
	"market-signals/models"
	"market-signals/services"

	"github.com/gin-gonic/gin"
)

// ReferenceStore exposes the lookup tables and store health.
type ReferenceStore interface {
	Platforms(ctx context.Context) ([]models.Platform, error)
	Sectors(ctx context.Context) ([]models.Sector, error)
	Metadata(ctx context.Context, key string) (string, error)
	Ping(ctx context.Context) error
}

// RequestError reports a request that could not be decoded.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return "invalid request: " + e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }
func (e *RequestError) Kind() string  { return "RequestError" }

type SignalsHandler struct {
	svc *services.QueryService
	ref ReferenceStore
	log *logger.Logger
}

func NewSignalsHandler(svc *services.QueryService, ref ReferenceStore, log *logger.Logger) *SignalsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SignalsHandler{svc: svc, ref: ref, log: log}
}

// Query serves every action of the signals API from one endpoint.
func (h *SignalsHandler) Query(c *gin.Context) {
	var req services.Request
	if err := c.ShouldBind(&req); err != nil {
		h.respondError(c, &RequestError{Err: err})
		return
	}

	out, err := h.svc.Execute(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.PureJSON(http.StatusOK, out)
}

type referenceResponse struct {
	Platforms  []models.Platform `json:"platforms"`
	Sectors    []models.Sector   `json:"sectors"`
	LastSeeded string            `json:"last_seeded"`
}

// Reference lists the platform and sector lookup tables.
func (h *SignalsHandler) Reference(c *gin.Context) {
	ctx := c.Request.Context()

	platforms, err := h.ref.Platforms(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	sectors, err := h.ref.Sectors(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	lastSeeded, err := h.ref.Metadata(ctx, models.MetadataLastSeeded)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.PureJSON(http.StatusOK, referenceResponse{Platforms: platforms, Sectors: sectors, LastSeeded: lastSeeded})
}

func (h *SignalsHandler) Health(c *gin.Context) {
	if err := h.ref.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", "error", err)
		c.PureJSON(http.StatusServiceUnavailable, errorBody(err))
		return
	}
	c.PureJSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SignalsHandler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		status = http.StatusBadRequest
	}

	h.log.Error("Request failed",
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDKey),
		"kind", errorKind(err),
		"error", err,
	)
	c.PureJSON(status, errorBody(err))
}

type errorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

func errorBody(err error) errorResponse {
	return errorResponse{Error: err.Error(), Type: errorKind(err)}
}

// errorKind names the class of err for API callers.
func errorKind(err error) string {
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return "InternalError"
}
