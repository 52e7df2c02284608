package interfaces

import (
	"context"

	"warranty_hub/internal/domain/entities"
)

// IWarrantyBackend abstracts the upstream warranty REST API for one caller
// session. Implementations attach the session's bearer token to every call
// and translate HTTP 401 into the adapter's session-expired sentinel.
//
// The backend owns all entities; list reads return full snapshots that the
// use cases filter and join locally, matching the dashboard's access
// pattern against the bulk endpoints.

type IWarrantyBackend interface {
	ListClaims(ctx context.Context) ([]entities.WarrantyClaim, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	ListAccounts(ctx context.Context) ([]entities.Account, error)

	ListParts(ctx context.Context) ([]entities.Part, error)
	ListClaimPartChecks(ctx context.Context, claimID string) ([]entities.ClaimPartCheck, error)

	TechnicianDone(ctx context.Context, claimID string) error
	StaffDone(ctx context.Context, claimID string) error
	UploadEvidence(ctx context.Context, claimID string, file entities.EvidenceFile) error

	ListCampaigns(ctx context.Context) ([]entities.Campaign, error)
	ListAppointments(ctx context.Context) ([]entities.Appointment, error)
	CreateAppointment(ctx context.Context, appt entities.Appointment) (entities.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status entities.AppointmentStatus) error
}
