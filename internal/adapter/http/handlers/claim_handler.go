package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	response "warranty_hub/internal/adapter/http/dto/response"
	"warranty_hub/internal/adapter/http/middleware"
	"warranty_hub/internal/infrastructure/backend"
	"warranty_hub/internal/session"
	"warranty_hub/internal/usecase"
	"warranty_hub/internal/usecase/interfaces"
	"warranty_hub/pkg"
)

// BackendFactory binds the warranty backend client to one caller session so
// every upstream call carries that caller's bearer token.
type BackendFactory func(sess *session.Session) interfaces.IWarrantyBackend

// ClaimHandler serves the claim detail screen and its repair-parts view.

type ClaimHandler struct {
	newBackend        BackendFactory
	repairWarehouseID string
}

func NewClaimHandler(newBackend BackendFactory, repairWarehouseID string) *ClaimHandler {
	return &ClaimHandler{newBackend: newBackend, repairWarehouseID: repairWarehouseID}
}

// GetClaimDetail returns the aggregated claim view: claim, vehicle and
// resolved actor names.
func (h *ClaimHandler) GetClaimDetail(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	claimID := c.Param("claim_id")

	uc := usecase.NewClaimDetailUseCase(h.newBackend(sess))
	detail, err := uc.GetClaimDetail(c.Request.Context(), claimID)
	if err != nil {
		log.Printf("[claim][handler] detail failed claim_id=%s err=%v", claimID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaimDetail(detail))
}

// GetRepairParts returns the claim's repair-flagged parts joined against the
// repair-warehouse catalog.
func (h *ClaimHandler) GetRepairParts(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	claimID := c.Param("claim_id")

	uc := usecase.NewRepairPartsUseCase(h.newBackend(sess), h.repairWarehouseID)
	view, err := uc.GetRepairParts(c.Request.Context(), claimID)
	if err != nil {
		log.Printf("[claim][handler] repair-parts failed claim_id=%s err=%v", claimID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairParts(view))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Warranty claim not found", http.StatusNotFound)
	case errors.Is(err, backend.ErrSessionExpired):
		return pkg.NewSessionExpiredError()
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
