package entities

import "time"

// ClaimStatus is the warranty claim lifecycle stage.
//
// The lifecycle is strictly linear: CHECK -> REPAIR -> HANDOVER -> DONE.
// The dashboard never offers a transition that skips or reverses a stage;
// DONE is terminal.

type ClaimStatus string

const (
	ClaimStatusCheck    ClaimStatus = "CHECK"
	ClaimStatusRepair   ClaimStatus = "REPAIR"
	ClaimStatusHandover ClaimStatus = "HANDOVER"
	ClaimStatusDone     ClaimStatus = "DONE"
)

// Role identifies the dashboard caller deciding which workflow action applies.

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleEVMStaff   Role = "EVM_STAFF"
	RoleStaff      Role = "SC_STAFF"
	RoleTechnician Role = "SC_TECHNICIAN"
)

// ActionKind is the workflow action a caller may trigger on a claim.

type ActionKind string

const (
	ActionNone           ActionKind = ""
	ActionTechnicianDone ActionKind = "TECHNICIAN_DONE"
	ActionStaffDone      ActionKind = "STAFF_DONE"
)

// NextStatus maps each non-terminal stage to its single successor.
var NextStatus = map[ClaimStatus]ClaimStatus{
	ClaimStatusCheck:    ClaimStatusRepair,
	ClaimStatusRepair:   ClaimStatusHandover,
	ClaimStatusHandover: ClaimStatusDone,
}

// AllowedAction is the workflow transition table. It returns the single
// action a caller with the given role may trigger while the claim sits in
// the given status, or ActionNone. Only two pairs ever yield an action:
// a technician while the claim is in REPAIR, and service-center staff while
// the claim is in HANDOVER. DONE yields no action for any role.
func AllowedAction(status ClaimStatus, role Role) ActionKind {
	switch {
	case status == ClaimStatusRepair && role == RoleTechnician:
		return ActionTechnicianDone
	case status == ClaimStatusHandover && role == RoleStaff:
		return ActionStaffDone
	default:
		return ActionNone
	}
}

// WarrantyClaim mirrors the warranty backend's claim resource. The backend
// owns the record; this service only reads it and drives status transitions
// through the workflow endpoints.
type WarrantyClaim struct {
	ClaimID        string      `json:"claimId"`
	VIN            string      `json:"vin"`
	TechnicianID   string      `json:"technicianId"`
	StaffID        string      `json:"staffId"`
	EVMStaffID     string      `json:"evmStaffId"`
	CampaignIDs    []string    `json:"campaignIds,omitempty"`
	Description    string      `json:"description"`
	DiagnosisNotes string      `json:"diagnosisNotes,omitempty"`
	Status         ClaimStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// ClaimDetail is the aggregated read model shown on the claim screen:
// the claim, its vehicle, and display names resolved from the accounts list.
type ClaimDetail struct {
	Claim          WarrantyClaim
	Vehicle        Vehicle
	TechnicianName string
	StaffName      string
	EVMStaffName   string
}
