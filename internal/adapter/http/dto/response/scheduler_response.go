package response

import (
	"time"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase"
)

type CampaignResponse struct {
	CampaignID        string    `json:"campaign_id"`
	Name              string    `json:"name"`
	ModelScope        string    `json:"model_scope"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	AffectedVehicles  int       `json:"affected_vehicles"`
	CompletedVehicles int       `json:"completed_vehicles"`
}

func FromCampaign(c entities.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:        c.CampaignID,
		Name:              c.Name,
		ModelScope:        c.ModelScope,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		AffectedVehicles:  c.AffectedVehicles,
		CompletedVehicles: c.CompletedVehicles,
	}
}

func FromCampaigns(campaigns []entities.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, FromCampaign(c))
	}
	return out
}

type ScheduleWindowResponse struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

type ScheduleBoardVehicleResponse struct {
	Vehicle     VehicleResponse `json:"vehicle"`
	Scheduled   bool            `json:"scheduled"`
	Schedulable bool            `json:"schedulable"`
}

type ScheduleBoardResponse struct {
	Campaign CampaignResponse               `json:"campaign"`
	Window   ScheduleWindowResponse         `json:"window"`
	Vehicles []ScheduleBoardVehicleResponse `json:"vehicles"`
}

func FromScheduleBoard(b usecase.ScheduleBoard) ScheduleBoardResponse {
	vehicles := make([]ScheduleBoardVehicleResponse, 0, len(b.Vehicles))
	for _, v := range b.Vehicles {
		vehicles = append(vehicles, ScheduleBoardVehicleResponse{
			Vehicle: VehicleResponse{
				VIN:       v.Vehicle.VIN,
				Model:     v.Vehicle.Model,
				Plate:     v.Vehicle.Plate,
				OwnerName: v.Vehicle.OwnerName,
			},
			Scheduled:   v.Scheduled,
			Schedulable: v.Schedulable,
		})
	}
	return ScheduleBoardResponse{
		Campaign: FromCampaign(b.Campaign),
		Window:   ScheduleWindowResponse{Min: b.Window.Min, Max: b.Window.Max},
		Vehicles: vehicles,
	}
}

type AppointmentResponse struct {
	AppointmentID string    `json:"appointment_id"`
	VIN           string    `json:"vin"`
	CampaignID    string    `json:"campaign_id"`
	DateTime      time.Time `json:"date_time"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.AppointmentID,
		VIN:           a.VIN,
		CampaignID:    a.CampaignID,
		DateTime:      a.DateTime,
		Description:   a.Description,
		Status:        string(a.Status),
	}
}
