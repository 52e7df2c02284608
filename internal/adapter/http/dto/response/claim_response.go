package response

import (
	"time"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase"
)

type VehicleResponse struct {
	VIN       string `json:"vin"`
	Model     string `json:"model"`
	Plate     string `json:"plate"`
	OwnerName string `json:"owner_name,omitempty"`
}

// ClaimDetailResponse is the aggregated claim screen payload: the claim, its
// vehicle and the actor ids resolved to display names.
type ClaimDetailResponse struct {
	ClaimID        string          `json:"claim_id"`
	VIN            string          `json:"vin"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
	DiagnosisNotes string          `json:"diagnosis_notes,omitempty"`
	CampaignIDs    []string        `json:"campaign_ids,omitempty"`
	Vehicle        VehicleResponse `json:"vehicle"`
	TechnicianName string          `json:"technician_name,omitempty"`
	StaffName      string          `json:"staff_name,omitempty"`
	EVMStaffName   string          `json:"evm_staff_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromClaimDetail(d entities.ClaimDetail) ClaimDetailResponse {
	return ClaimDetailResponse{
		ClaimID:        d.Claim.ClaimID,
		VIN:            d.Claim.VIN,
		Status:         string(d.Claim.Status),
		Description:    d.Claim.Description,
		DiagnosisNotes: d.Claim.DiagnosisNotes,
		CampaignIDs:    d.Claim.CampaignIDs,
		Vehicle: VehicleResponse{
			VIN:       d.Vehicle.VIN,
			Model:     d.Vehicle.Model,
			Plate:     d.Vehicle.Plate,
			OwnerName: d.Vehicle.OwnerName,
		},
		TechnicianName: d.TechnicianName,
		StaffName:      d.StaffName,
		EVMStaffName:   d.EVMStaffName,
		CreatedAt:      d.Claim.CreatedAt,
		UpdatedAt:      d.Claim.UpdatedAt,
	}
}

type RepairPartLineResponse struct {
	PartNumber string `json:"part_number"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type RepairPartsResponse struct {
	ClaimID       string                   `json:"claim_id"`
	Lines         []RepairPartLineResponse `json:"lines"`
	TotalQuantity int                      `json:"total_quantity"`
}

func FromRepairParts(v usecase.RepairPartsView) RepairPartsResponse {
	lines := make([]RepairPartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, RepairPartLineResponse{
			PartNumber: l.PartNumber,
			Name:       l.Name,
			Quantity:   l.Quantity,
		})
	}
	return RepairPartsResponse{
		ClaimID:       v.ClaimID,
		Lines:         lines,
		TotalQuantity: v.TotalQuantity,
	}
}
