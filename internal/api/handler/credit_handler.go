package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"
)

type CreditHandler struct {
	service credit.CreditService
	logger  *slog.Logger
}

func NewCreditHandler(s credit.CreditService, l *slog.Logger) *CreditHandler {
	return &CreditHandler{
		service: s,
		logger:  l.With("component", "CreditHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"title":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

const (
	titleBadRequest = "Bad Request! Consult Documentation"
	titleConflict   = "Conflict! Consult Documentation"
	titleInternal   = "Internal Server Error"
)

func respondValidationError(w http.ResponseWriter, fieldErrs dto.FieldErrors) {
	respondJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Title:     titleBadRequest,
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Exception: "ValidationError",
		Details:   fieldErrs,
	})
}

func respondError(w http.ResponseWriter, err error) {
	status, title, exception := http.StatusInternalServerError, titleInternal, "InternalError"
	var validationError *apperrors.ValidationError

	switch {
	case errors.As(err, &validationError):
		respondValidationError(w, dto.FieldErrors{validationError.Field: validationError.Message})
		return
	case errors.Is(err, apperrors.ErrAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		status, title, exception = http.StatusConflict, titleConflict, "DataAccessError"
	case errors.Is(err, apperrors.ErrBusinessRule):
		status, title, exception = http.StatusBadRequest, titleBadRequest, "BusinessRuleError"
	case errors.Is(err, apperrors.ErrForbidden):
		status, title, exception = http.StatusBadRequest, titleBadRequest, "AccessDeniedError"
	// Missing resources surface as a plain bad request, not a 404. The
	// public API contract has always behaved this way.
	case errors.Is(err, apperrors.ErrNotFound):
		status, title, exception = http.StatusBadRequest, titleBadRequest, "NotFoundError"
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, title, exception = http.StatusBadRequest, titleBadRequest, "ValidationError"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, title, exception = http.StatusUnauthorized, "Unauthorized", "UnauthorizedError"
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	details := map[string]string{"cause": err.Error()}
	if status == http.StatusInternalServerError {
		details = map[string]string{"cause": "An unexpected error occurred."}
	}

	respondJSON(w, status, dto.ErrorResponse{
		Title:     title,
		Timestamp: time.Now(),
		Status:    status,
		Exception: exception,
		Details:   details,
	})
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	idStr := r.URL.Query().Get("customerId")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerId query parameter is required", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerId format: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

func getCreditCodeFromURL(r *http.Request) (uuid.UUID, error) {
	codeStr := chi.URLParam(r, "creditCode")
	code, err := uuid.Parse(codeStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid creditCode format: %s", apperrors.ErrInvalidArgument, codeStr)
	}
	return code, nil
}

// CreateCredit handles POST /api/credits
// @Summary Issue a new credit
// @Description Issues a credit against an existing customer. The first installment must start within three months.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditRequest true "Credit issuance request"
// @Success 201 {object} dto.CreditView "Credit successfully issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload, unknown customer or business rule violation"
// @Router /api/credits [post]
// @Security BearerAuth
func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create credit request")

	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		h.logger.WarnContext(r.Context(), "Credit request validation failed", slog.Int("fields", len(fieldErrs)))
		respondValidationError(w, fieldErrs)
		return
	}

	issued, err := h.service.Issue(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to issue credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCreditView(issued)
	h.logger.InfoContext(r.Context(), "Credit issued successfully", slog.String("creditCode", resp.CreditCode.String()))
	respondJSON(w, http.StatusCreated, resp)
}

// ListByCustomer handles GET /api/credits?customerId={id}
// @Summary List credits of a customer
// @Description Lists every credit owned by the given customer, in storage order.
// @Tags Credits
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.CreditViewList "Credits of the customer"
// @Failure 400 {object} dto.ErrorResponse "Invalid customerId"
// @Router /api/credits [get]
// @Security BearerAuth
func (h *CreditHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	credits, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CreditViewList, len(credits))
	for i, cred := range credits {
		resp[i] = dto.NewCreditViewList(cred)
	}

	h.logger.InfoContext(r.Context(), "Credits listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetByCreditCode handles GET /api/credits/{creditCode}?customerId={id}
// @Summary Retrieve a credit by its code
// @Description Retrieves a single credit by its public code, scoped to the owning customer.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code (UUID)"
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CreditView "Credit details"
// @Failure 400 {object} dto.ErrorResponse "Unknown code or ownership mismatch"
// @Router /api/credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) GetByCreditCode(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	creditCode, err := getCreditCodeFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to parse credit code from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	found, err := h.service.FindByCodeForCustomer(r.Context(), customerID, creditCode)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrForbidden) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to find credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCreditView(found)
	h.logger.InfoContext(r.Context(), "Credit retrieved successfully")
	respondJSON(w, http.StatusOK, resp)
}
