package interfaces

import (
	"context"

	"warranty_hub/internal/domain/entities"
)

// IWorkflowAuditRepository abstracts DynamoDB persistence for the workflow
// audit trail. Append-only: records are never updated or deleted.

type IWorkflowAuditRepository interface {
	Append(ctx context.Context, rec entities.WorkflowAuditRecord) (entities.WorkflowAuditRecord, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.WorkflowAuditRecord, error)
}
