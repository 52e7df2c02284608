package handlers

import (
	"errors"
	"io"
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

const evidenceFormField = "evidence"

var errInvalidWorkflowPayload = pkg.NewDomainErrorSimple("INVALID_WORKFLOW_INPUT", "Invalid workflow payload", http.StatusBadRequest)

// validationErrorResponse extends the standard error body with field-level
// messages keyed by part number.
type validationErrorResponse struct {
	pkg.HTTPError
	Fields map[string]string `json:"fields"`
}

// WorkflowHandler drives claim status transitions.

type WorkflowHandler struct {
	newBackend BackendFactory
	audit      interfaces.IWorkflowAuditRepository
	notifier   interfaces.IEventNotifier
}

func NewWorkflowHandler(newBackend BackendFactory, audit interfaces.IWorkflowAuditRepository, notifier interfaces.IEventNotifier) *WorkflowHandler {
	return &WorkflowHandler{newBackend: newBackend, audit: audit, notifier: notifier}
}

func (h *WorkflowHandler) forSession(c *gin.Context) usecase.IWorkflowUseCase {
	sess := middleware.SessionFrom(c)
	return usecase.NewWorkflowUseCase(sess, h.newBackend(sess), h.audit, h.notifier)
}

// GetAllowedAction returns the single action the caller may trigger on the
// claim in its current status, or an empty action.
func (h *WorkflowHandler) GetAllowedAction(c *gin.Context) {
	claimID := c.Param("claim_id")

	view, err := h.forSession(c).AllowedAction(c.Request.Context(), claimID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAllowedAction(view))
}

// GetAuditTrail lists the recorded workflow transitions for one claim.
func (h *WorkflowHandler) GetAuditTrail(c *gin.Context) {
	claimID := c.Param("claim_id")
	if h.audit == nil {
		c.JSON(http.StatusOK, []response.WorkflowAuditRecordResponse{})
		return
	}

	records, err := h.audit.ListByClaimID(c.Request.Context(), claimID)
	if err != nil {
		log.Printf("[workflow][handler] audit list failed claim_id=%s err=%v", claimID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditRecords(records))
}

// TechnicianDone accepts the technician's multipart completion form: serial
// numbers per repair part, an optional description and an optional evidence
// file.
func (h *WorkflowHandler) TechnicianDone(c *gin.Context) {
	claimID := c.Param("claim_id")

	var payload request.TechnicianDoneRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	serials, err := payload.ResolveSerials()
	if err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	evidence, err := readEvidenceFile(c)
	if err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	result, err := h.forSession(c).TechnicianDone(c.Request.Context(), claimID, usecase.TechnicianDoneInput{
		Serials:     serials,
		Description: payload.ResolveDescription(),
		Evidence:    evidence,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, validationErrorResponse{
				HTTPError: pkg.HTTPError{Code: "SERIALS_INCOMPLETE", Message: "Serial numbers missing for repair parts"},
				Fields:    vErr.Fields,
			})
			return
		}
		log.Printf("[workflow][handler] technician-done failed claim_id=%s err=%v", claimID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowResult(result))
}

// StaffDone closes the claim and syncs the matching campaign appointment.
func (h *WorkflowHandler) StaffDone(c *gin.Context) {
	claimID := c.Param("claim_id")

	result, err := h.forSession(c).StaffDone(c.Request.Context(), claimID)
	if err != nil {
		log.Printf("[workflow][handler] staff-done failed claim_id=%s err=%v", claimID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowResult(result))
}

// readEvidenceFile pulls the optional evidence upload out of the multipart
// form. A missing file is not an error.
func readEvidenceFile(c *gin.Context) (*entities.EvidenceFile, error) {
	header, err := c.FormFile(evidenceFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &entities.EvidenceFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Warranty claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", "Workflow action not allowed for this status and role", http.StatusConflict)
	case errors.Is(err, backend.ErrConflict):
		return pkg.NewDomainErrorSimple("WORKFLOW_CONFLICT", "Claim changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, backend.ErrSessionExpired):
		return pkg.NewSessionExpiredError()
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
