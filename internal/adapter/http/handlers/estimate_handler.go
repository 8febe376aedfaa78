package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"granite_estimator/internal/adapter/http/dto/request"
	"granite_estimator/internal/adapter/http/dto/response"
	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
	"granite_estimator/internal/infrastructure/export"
	"granite_estimator/internal/usecase"
	"granite_estimator/pkg"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for countertop estimates.
type EstimateHandler struct {
	usecase  usecase.IEstimateUseCase
	business config.BusinessInfo
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, business config.BusinessInfo) *EstimateHandler {
	return &EstimateHandler{usecase: uc, business: business}
}

// PreviewEstimate godoc
// @Summary      Price a project without saving it
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "Project"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /estimates/preview [post]
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	req, ok := bindEstimateRequest(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.PreviewEstimate(c.Request.Context(), req)
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// CreateEstimate godoc
// @Summary      Price, narrate and save a project
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "Project"
// @Success      201   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	req, ok := bindEstimateRequest(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.CalculateEstimate(c.Request.Context(), req)
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// LegacyEstimate serves the original widget contract: {preliminary, estimate}.
// Errors use the widget's {"error": "..."} body.
func (h *EstimateHandler) LegacyEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing project data"})
		return
	}

	estimate, err := h.usecase.CalculateEstimate(c.Request.Context(), payload.ToProjectRequest())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateLegacy(estimate))
}

// GetEstimate godoc
// @Summary      Get a saved estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Approve)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Reject)
}

func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Cancel)
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// RegenerateNarrative godoc
// @Summary      Retry the narrative of a saved estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /estimates/{id}/narrative [post]
func (h *EstimateHandler) RegenerateNarrative(c *gin.Context) {
	estimate, err := h.usecase.RegenerateNarrative(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ExportPDF(c *gin.Context) {
	h.export(c, "application/pdf", "pdf", export.WritePDF)
}

func (h *EstimateHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", export.WriteXLSX)
}

// export renders into memory first so a failed render still gets a JSON error.
func (h *EstimateHandler) export(
	c *gin.Context,
	contentType, ext string,
	render func(w io.Writer, e entities.Estimate, biz config.BusinessInfo) error,
) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, estimate, h.business); err != nil {
		log.Printf("[estimate][handler] export failed estimate_id=%s format=%s err=%v", estimate.ID, ext, err)
		writeAppError(c, pkg.NewDomainError("EXPORT_FAILED", "Could not render the estimate", err, http.StatusInternalServerError))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="estimate-%s.%s"`, estimate.ID, ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// GetPriceTable godoc
// @Summary      Show the current price list
// @Tags         prices
// @Produce      json
// @Success      200  {object}  response.PriceTableResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /price-table [get]
func (h *EstimateHandler) GetPriceTable(c *gin.Context) {
	list, err := h.usecase.PriceList(c.Request.Context())
	if err != nil {
		writeAppError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceList(list))
}

func bindEstimateRequest(c *gin.Context) (estimator.ProjectRequest, bool) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidEstimatePayload)
		return estimator.ProjectRequest{}, false
	}
	return payload.ToProjectRequest(), true
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, estimator.ErrInvalidRequest):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPriceTableUnavailable):
		return pkg.NewDomainError("PRICE_TABLE_UNAVAILABLE", "Pricing is temporarily unavailable, please try again later", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNarrativeUnavailable):
		return pkg.NewDomainError("NARRATIVE_UNAVAILABLE", "Estimate narrative is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
