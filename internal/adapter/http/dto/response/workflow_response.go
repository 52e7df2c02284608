package response

import (
	"time"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase"
)

type AllowedActionResponse struct {
	ClaimID string `json:"claim_id"`
	Status  string `json:"status"`
	Action  string `json:"action"`
}

func FromAllowedAction(v usecase.AllowedActionView) AllowedActionResponse {
	return AllowedActionResponse{
		ClaimID: v.ClaimID,
		Status:  string(v.Status),
		Action:  string(v.Action),
	}
}

// WorkflowResultResponse reports a successful transition. Warnings list the
// best-effort follow-ups that failed; their presence never means the claim
// did not advance.
type WorkflowResultResponse struct {
	ClaimID    string    `json:"claim_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Warnings   []string  `json:"warnings,omitempty"`
	Date       time.Time `json:"date"`
}

type WorkflowAuditRecordResponse struct {
	ID         string    `json:"id"`
	ClaimID    string    `json:"claim_id"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Warnings   []string  `json:"warnings,omitempty"`
	Date       time.Time `json:"date"`
}

func FromAuditRecords(records []entities.WorkflowAuditRecord) []WorkflowAuditRecordResponse {
	out := make([]WorkflowAuditRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, WorkflowAuditRecordResponse{
			ID:         rec.ID,
			ClaimID:    rec.ClaimID,
			Action:     string(rec.Action),
			ActorID:    rec.ActorID,
			ActorRole:  string(rec.ActorRole),
			FromStatus: string(rec.FromStatus),
			ToStatus:   string(rec.ToStatus),
			Warnings:   rec.Warnings,
			Date:       rec.Date,
		})
	}
	return out
}

func FromWorkflowResult(r usecase.WorkflowResult) WorkflowResultResponse {
	return WorkflowResultResponse{
		ClaimID:    r.Record.ClaimID,
		Action:     string(r.Record.Action),
		FromStatus: string(r.Record.FromStatus),
		ToStatus:   string(r.Record.ToStatus),
		Warnings:   r.Warnings,
		Date:       r.Record.Date,
	}
}
