package entities

import "time"

// WorkflowAuditRecord is one appended entry of the workflow audit trail:
// who advanced which claim, from and to which stage, and which best-effort
// side calls failed along the way.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (claim_id-index): claim_id
type WorkflowAuditRecord struct {
	ID         string      `json:"id"`
	ClaimID    string      `json:"claim_id"`
	Action     ActionKind  `json:"action"`
	ActorID    string      `json:"actor_id"`
	ActorRole  Role        `json:"actor_role"`
	FromStatus ClaimStatus `json:"from_status"`
	ToStatus   ClaimStatus `json:"to_status"`
	Warnings   []string    `json:"warnings,omitempty"`
	Date       time.Time   `json:"date"`
}

// EvidenceFile is the technician's repair evidence (image/video) forwarded
// to the warranty backend's combined upload endpoint.
type EvidenceFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
