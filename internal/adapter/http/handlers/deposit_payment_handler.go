package handlers

import (
	"encoding/json"
	"errors"
	"granite_estimator/internal/adapter/http/dto/request"
	"granite_estimator/internal/adapter/http/dto/response"
	"granite_estimator/internal/usecase"
	"granite_estimator/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for estimate deposits.

type DepositPaymentHandler struct {
	usecase  usecase.IDepositPaymentUseCase
	mockMode bool
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, mockMode bool) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreateDepositByEstimateID godoc
// @Summary      Charge the deposit of an approved estimate
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                               true   "Estimate ID"
// @Param        body         body      request.DepositPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200          {object}  response.DepositPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [post]
func (h *DepositPaymentHandler) CreateDepositByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[payment][handler] create start estimate_id=%s", estimateID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			writeAppError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), estimateID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed estimate_id=%s err=%v", estimateID, err)
		writeAppError(c, mapDepositPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDepositByEstimateID returns the latest deposit for an estimate.
func (h *DepositPaymentHandler) GetDepositByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[payment][handler] get-by-estimate start estimate_id=%s", estimateID)

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[payment][handler] get-by-estimate failed estimate_id=%s err=%v", estimateID, err)
		writeAppError(c, mapDepositPaymentError(err))
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-estimate not-found estimate_id=%s", estimateID)
		writeAppError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-estimate success estimate_id=%s payment_id=%s status=%s", estimateID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

// ListDepositsByEstimateID returns every deposit attempt for an estimate, oldest first.
func (h *DepositPaymentHandler) ListDepositsByEstimateID(c *gin.Context) {
	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeAppError(c, mapDepositPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayments(payments))
}

func (h *DepositPaymentHandler) GetDepositByID(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapDepositPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(payment))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.DepositPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		if wrapped := strings.TrimSpace(string(envelope.MPPayload)); wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
