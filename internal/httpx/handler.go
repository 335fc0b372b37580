package httpx

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkgan/ccassign2api/internal/store"
)

// Connector is the per-request connection source. The handler owns the
// scoped close: every exit path releases the connection.
type Connector interface {
	Connect(ctx context.Context) (*sql.DB, error)
}

type Handler struct {
	connector Connector
}

func NewHandler(c Connector) *Handler {
	return &Handler{connector: c}
}

// Hello serves the greeting route. It touches no database, so it stays up
// even when the store is unreachable.
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Hello, World!"))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	db, err := h.connector.Connect(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "database connection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to connect to database")
		return
	}
	defer db.Close()

	products, err := store.New(db).ListProducts(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "listing products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	db, err := h.connector.Connect(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "database connection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to connect to database")
		return
	}
	defer db.Close()

	product, err := store.New(db).GetProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "fetching product failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	db, err := h.connector.Connect(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "database connection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to connect to database")
		return
	}
	defer db.Close()

	orders, err := store.New(db).ListOrders(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "listing orders failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := strconv.Atoi(chi.URLParam(r, "order_number"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	db, err := h.connector.Connect(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "database connection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to connect to database")
		return
	}
	defer db.Close()

	order, err := store.New(db).GetOrderWithItems(r.Context(), orderNumber)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "fetching order failed", "order_number", orderNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
