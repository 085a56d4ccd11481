// Package web provides the HTML and JSON HTTP handlers for order operations.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	ordererrors "github.com/omnomnom-foods/orderdesk/internal/errors"
	"github.com/omnomnom-foods/orderdesk/internal/notify"
	"github.com/omnomnom-foods/orderdesk/internal/service"
	"github.com/omnomnom-foods/orderdesk/internal/store"
	pkgweb "github.com/omnomnom-foods/orderdesk/pkg/web"
)

const indexTemplate = "index.html"

// Flash is a transient, request-scoped user-facing notice.
type Flash struct {
	Level string // "warning" or "success"
	Text  string
}

// orderTableView is the template context for the order overview page.
type orderTableView struct {
	Orders   []store.Order
	Flashes  []Flash
	Statuses []string
}

// updateForm carries the /orderUpdate form fields.
type updateForm struct {
	ID     string `validate:"required"`
	Status string `validate:"required"`
}

// notifyForm carries the /notify form fields.
type notifyForm struct {
	ID string `validate:"required"`
}

type Handler struct {
	service  service.OrderService
	renderer Renderer
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service and renderer.
func NewHandler(service service.OrderService, renderer Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		validate: validator.New(),
		logger:   logger.With("component", "web"),
	}
}

// RegisterRoutes registers the HTTP routes for the order overview application.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.Index)
	r.Post("/orderUpdate", h.UpdateStatus)
	r.Post("/notify", h.Notify)
	r.Post("/api/orders", h.Create)
	r.Get("/healthz", h.HealthCheck)
}

// Index renders the current order table.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderTable(w, r, nil)
}

// UpdateStatus changes an order's status. Every failure becomes a flash
// warning; the order table is always re-rendered.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	form := updateForm{
		ID:     r.PostFormValue("id"),
		Status: r.PostFormValue("orderStatus"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid order update form", "error", err)
		h.renderTable(w, r, []Flash{{Level: "warning", Text: "Could not update order status: missing order id or status"}})
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), form.ID, form.Status)
	if err != nil {
		h.renderTable(w, r, []Flash{h.updateWarning(r, form, err)})
		return
	}

	h.logger.InfoContext(r.Context(), "Order status updated",
		slog.String("order_id", updated.ID), slog.String("status", updated.Status))
	h.renderTable(w, r, []Flash{{Level: "success", Text: "Order for " + updated.Name + " is now " + updated.Status}})
}

func (h *Handler) updateWarning(r *http.Request, form updateForm, err error) Flash {
	switch {
	case errors.Is(err, ordererrors.ErrOrderNotFound):
		h.logger.WarnContext(r.Context(), "Order not found for update", "order_id", form.ID)
		return Flash{Level: "warning", Text: "Could not update order status: order " + form.ID + " not found"}
	case errors.Is(err, ordererrors.ErrUnknownStatus):
		h.logger.WarnContext(r.Context(), "Unknown status submitted", "order_id", form.ID, "status", form.Status)
		return Flash{Level: "warning", Text: "Could not update order status: " + form.Status + " is not a known status"}
	default:
		h.logger.ErrorContext(r.Context(), "Error updating order status", "order_id", form.ID, "error", err)
		return Flash{Level: "warning", Text: "Could not update order status"}
	}
}

// Notify sends the status SMS for an order. A missing order or a provider
// rejection becomes flash warnings, one per provider error description.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	form := notifyForm{ID: r.PostFormValue("notify_id")}
	if err := h.validate.Struct(form); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid notify form", "error", err)
		h.renderTable(w, r, []Flash{{Level: "warning", Text: "Could not send notification: missing order id"}})
		return
	}

	notification, err := h.service.Notify(r.Context(), form.ID)
	if err != nil {
		h.renderTable(w, r, h.notifyWarnings(r, form.ID, err))
		return
	}

	h.renderTable(w, r, []Flash{{
		Level: "success",
		Text:  notification.Name + " was notified that their order is " + notification.Status,
	}})
}

func (h *Handler) notifyWarnings(r *http.Request, id string, err error) []Flash {
	var providerErr *notify.ProviderError
	switch {
	case errors.Is(err, ordererrors.ErrOrderNotFound):
		h.logger.WarnContext(r.Context(), "Order not found for notification", "order_id", id)
		return []Flash{{Level: "warning", Text: "Could not send notification: order " + id + " not found"}}
	case errors.As(err, &providerErr):
		flashes := make([]Flash, 0, len(providerErr.Descriptions)+1)
		flashes = append(flashes, Flash{Level: "warning", Text: "Could not send notification"})
		for _, description := range providerErr.Descriptions {
			flashes = append(flashes, Flash{Level: "warning", Text: description})
		}
		return flashes
	default:
		h.logger.ErrorContext(r.Context(), "Error sending notification", "order_id", id, "error", err)
		return []Flash{{Level: "warning", Text: "Could not send notification"}}
	}
}

// Create handles the creation of a new order via the JSON API.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto service.OrderCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		pkgweb.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			pkgweb.RespondJSON(w, h.logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		pkgweb.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ordererrors.ErrUnknownStatus) {
			pkgweb.RespondError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Error creating order", "error", err)
		pkgweb.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to create order")
		return
	}

	h.logger.InfoContext(r.Context(), "Order created", slog.String("order_id", created.ID))
	pkgweb.RespondJSON(w, h.logger, http.StatusCreated, map[string]string{
		"id":     created.ID,
		"name":   created.Name,
		"phone":  created.Phone,
		"items":  created.Items,
		"status": created.Status,
	})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// renderTable re-reads the order table and renders it together with the
// collected flash messages. A failed list still renders, with a warning.
func (h *Handler) renderTable(w http.ResponseWriter, r *http.Request, flashes []Flash) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error listing orders", "error", err)
		flashes = append(flashes, Flash{Level: "warning", Text: "Could not load orders"})
	}

	view := orderTableView{
		Orders:   orders,
		Flashes:  flashes,
		Statuses: service.KnownStatuses,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, indexTemplate, view); err != nil {
		h.logger.ErrorContext(r.Context(), "Error rendering order table", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
