package routes

import (
	"warranty_hub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims    = "/claims"
	PathCampaigns = "/campaigns"
)

func addWarrantyRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler, workflowHandler *handlers.WorkflowHandler, schedulerHandler *handlers.SchedulerHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.GET("/:claim_id", claimHandler.GetClaimDetail)
		claims.GET("/:claim_id/repair-parts", claimHandler.GetRepairParts)
		claims.GET("/:claim_id/actions", workflowHandler.GetAllowedAction)
		claims.GET("/:claim_id/audit", workflowHandler.GetAuditTrail)
		claims.POST("/:claim_id/technician-done", workflowHandler.TechnicianDone)
		claims.POST("/:claim_id/staff-done", workflowHandler.StaffDone)
	}

	campaigns := rg.Group(PathCampaigns)
	{
		campaigns.GET("", schedulerHandler.ListCampaigns)
		campaigns.GET("/:campaign_id/schedule-board", schedulerHandler.GetScheduleBoard)
		campaigns.POST("/:campaign_id/appointments", schedulerHandler.ScheduleAppointment)
	}
}
