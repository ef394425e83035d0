package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "customerID")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerID format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// CreateCustomer handles POST /api/customers
// @Summary Register a new customer
// @Description Registers a customer. CPF and email must be unique; the shape of every field is validated here.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer registration request"
// @Success 201 {object} dto.CustomerView "Customer successfully registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 409 {object} dto.ErrorResponse "CPF or email already registered"
// @Router /api/customers [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		h.logger.WarnContext(r.Context(), "Customer request validation failed", slog.Int("fields", len(fieldErrs)))
		respondValidationError(w, fieldErrs)
		return
	}

	registered, err := h.service.Register(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to register customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerView(registered)
	h.logger.InfoContext(r.Context(), "Customer registered successfully", slog.Int64("customerID", resp.ID))
	respondJSON(w, http.StatusCreated, resp)
}

// GetCustomer handles GET /api/customers/{customerID}
// @Summary Retrieve customer details
// @Description Retrieves a customer by its ID.
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CustomerView "Customer details"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or customer not found"
// @Router /api/customers/{customerID} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	found, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerView(found)
	h.logger.InfoContext(r.Context(), "Customer retrieved successfully")
	respondJSON(w, http.StatusOK, resp)
}

// UpdateCustomer handles PATCH /api/customers?customerId={id}
// @Summary Update a customer
// @Description Updates name, income and address. CPF, email and password cannot change through this path.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Param request body dto.UpdateCustomerRequest true "Customer update request"
// @Success 200 {object} dto.CustomerView "Updated customer"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or customer not found"
// @Router /api/customers [patch]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		h.logger.WarnContext(r.Context(), "Customer update validation failed", slog.Int("fields", len(fieldErrs)))
		respondValidationError(w, fieldErrs)
		return
	}

	updated, err := h.service.Update(r.Context(), customerID, req.ToPatch())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to update customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerView(updated)
	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", resp.ID))
	respondJSON(w, http.StatusOK, resp)
}

// DeleteCustomer handles DELETE /api/customers/{customerID}
// @Summary Delete a customer
// @Description Deletes a customer by ID. Fails with a conflict while the customer still owns credits.
// @Tags Customers
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or customer not found"
// @Failure 409 {object} dto.ErrorResponse "Customer still owns credits"
// @Router /api/customers/{customerID} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}
