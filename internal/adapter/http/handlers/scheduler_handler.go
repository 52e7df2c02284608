package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	request "warranty_hub/internal/adapter/http/dto/request"
	response "warranty_hub/internal/adapter/http/dto/response"
	"warranty_hub/internal/adapter/http/middleware"
	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/infrastructure/backend"
	"warranty_hub/internal/usecase"
	"warranty_hub/internal/usecase/interfaces"
	"warranty_hub/pkg"
)

var errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)

// SchedulerHandler serves campaign listing and appointment booking.

type SchedulerHandler struct {
	newBackend BackendFactory
	notifier   interfaces.IEventNotifier
}

func NewSchedulerHandler(newBackend BackendFactory, notifier interfaces.IEventNotifier) *SchedulerHandler {
	return &SchedulerHandler{newBackend: newBackend, notifier: notifier}
}

func (h *SchedulerHandler) forSession(c *gin.Context) usecase.ISchedulerUseCase {
	sess := middleware.SessionFrom(c)
	return usecase.NewSchedulerUseCase(h.newBackend(sess), h.notifier)
}

func (h *SchedulerHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.forSession(c).ListCampaigns(c.Request.Context())
	if err != nil {
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCampaigns(campaigns))
}

// GetScheduleBoard returns the campaign's booking window and per-vehicle
// eligibility.
func (h *SchedulerHandler) GetScheduleBoard(c *gin.Context) {
	campaignID := c.Param("campaign_id")

	board, err := h.forSession(c).GetScheduleBoard(c.Request.Context(), campaignID)
	if err != nil {
		log.Printf("[scheduler][handler] board failed campaign_id=%s err=%v", campaignID, err)
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScheduleBoard(board))
}

// ScheduleAppointment books a vehicle into the campaign.
func (h *SchedulerHandler) ScheduleAppointment(c *gin.Context) {
	campaignID := c.Param("campaign_id")

	var payload request.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	at, err := payload.ResolveDateTime()
	if err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.forSession(c).ScheduleAppointment(c.Request.Context(), campaignID, usecase.ScheduleInput{
		VIN:         payload.ResolveVIN(),
		DateTime:    at,
		Description: payload.Description,
	})
	if err != nil {
		log.Printf("[scheduler][handler] schedule failed campaign_id=%s vin=%s err=%v", campaignID, payload.ResolveVIN(), err)
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func mapSchedulerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCampaignID), errors.Is(err, usecase.ErrInvalidAppointmentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutsideWindow):
		return pkg.NewDomainErrorSimple("OUTSIDE_WINDOW", "Appointment date-time outside the campaign booking window", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCampaignEnded):
		return pkg.NewDomainErrorSimple("CAMPAIGN_ENDED", "Campaign booking window has closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleAlreadyScheduled):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_SCHEDULED", "Vehicle already has a scheduled appointment for this campaign", http.StatusConflict)
	case errors.Is(err, backend.ErrConflict):
		return pkg.NewDomainErrorSimple("APPOINTMENT_CONFLICT", "Appointment was booked concurrently, reload the board", http.StatusConflict)
	case errors.Is(err, backend.ErrSessionExpired):
		return pkg.NewSessionExpiredError()
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
