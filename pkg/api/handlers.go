// Package api serves the items HTTP/JSON API.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"itemsvc/pkg/item"
	"itemsvc/pkg/logger"
	"itemsvc/pkg/otel"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// HealthResponse is the fixed health check payload.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"backend"`
}

// ListResponse wraps the stored items.
type ListResponse struct {
	Items []item.Item `json:"items"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"Item deleted"`
}

// ErrorResponse carries an error detail.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Item not found"`
}

// Handler serves the item endpoints over a Repository.
type Handler struct {
	repo    item.Repository
	log     *logger.Logger
	service string
}

// NewHandler creates a Handler. service is reported by the health check.
func NewHandler(repo item.Repository, log *logger.Logger, service string) *Handler {
	return &Handler{repo: repo, log: log, service: service}
}

// Health reports that the service is up.
// @Summary Health check
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Service: h.service})
}

// ListItems lists items in insertion order.
// @Summary List items
// @Produce json
// @Success 200 {object} api.ListResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /api/items [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listItemsHandler")
	defer span.End()

	items, err := h.repo.List(ctx)
	if err != nil {
		h.log.Error(ctx, "list items", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	span.SetAttributes(attribute.Int("items.count", len(items)))
	writeJSON(w, http.StatusOK, ListResponse{Items: items})
}

// CreateItem adds an item.
// @Summary Add item
// @Accept json
// @Produce json
// @Param item body item.CreateRequest true "Item"
// @Success 201 {object} item.Item
// @Failure 422 {object} api.ErrorResponse
// @Router /api/items [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createItemHandler")
	defer span.End()

	var req item.CreateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body: unexpected data after JSON object")
		return
	}
	n, err := req.Validate()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	it, err := h.repo.Create(ctx, n)
	if err != nil {
		h.log.Error(ctx, "create item", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	span.SetAttributes(attribute.Int64("item.id", it.ID))
	h.log.Debug(ctx, "item created", "id", it.ID)
	writeJSON(w, http.StatusCreated, it)
}

// DeleteItem removes an item.
// @Summary Delete item
// @Produce json
// @Param item_id path int true "Item ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 422 {object} api.ErrorResponse
// @Router /api/items/{item_id} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteItemHandler")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["item_id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "item_id must be an integer")
		return
	}
	span.SetAttributes(attribute.Int64("item.id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, item.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.log.Error(ctx, "delete item", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, ErrorResponse{Detail: detail})
}
