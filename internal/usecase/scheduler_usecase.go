package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase/interfaces"
)

var (
	ErrCampaignNotFound        = errors.New("campaign not found")
	ErrInvalidCampaignID       = errors.New("invalid campaign id")
	ErrInvalidAppointmentInput = errors.New("invalid appointment input")
	ErrOutsideWindow           = errors.New("appointment date-time outside campaign window")
	ErrVehicleAlreadyScheduled = errors.New("vehicle already has a scheduled appointment for this campaign")
)

// ScheduleBoardVehicle marks one vehicle's eligibility on the board.
// Scheduled reflects the appointments snapshot taken when the board was
// built; it is advisory, the backend still enforces uniqueness at submit.
type ScheduleBoardVehicle struct {
	Vehicle     entities.Vehicle `json:"vehicle"`
	Scheduled   bool             `json:"scheduled"`
	Schedulable bool             `json:"schedulable"`
}

type ScheduleBoard struct {
	Campaign entities.Campaign       `json:"campaign"`
	Window   entities.ScheduleWindow `json:"window"`
	Vehicles []ScheduleBoardVehicle  `json:"vehicles"`
}

type ScheduleInput struct {
	VIN         string
	DateTime    time.Time
	Description string
}

type ISchedulerUseCase interface {
	ListCampaigns(ctx context.Context) ([]entities.Campaign, error)
	GetScheduleBoard(ctx context.Context, campaignID string) (ScheduleBoard, error)
	ScheduleAppointment(ctx context.Context, campaignID string, in ScheduleInput) (entities.Appointment, error)
}

// SchedulerUseCase lets staff book campaign appointments. The booking
// window is [max(now, campaign start), end of campaign end date] and is
// re-validated here before submission even though the dashboard constrains
// its date input, guarding against bypassed form controls.
type SchedulerUseCase struct {
	backend  interfaces.IWarrantyBackend
	notifier interfaces.IEventNotifier
	now      func() time.Time
}

var _ ISchedulerUseCase = (*SchedulerUseCase)(nil)

func NewSchedulerUseCase(backend interfaces.IWarrantyBackend, notifier interfaces.IEventNotifier) *SchedulerUseCase {
	return &SchedulerUseCase{backend: backend, notifier: notifier, now: time.Now}
}

func (u *SchedulerUseCase) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	campaigns, err := u.backend.ListCampaigns(ctx)
	if err != nil {
		log.Printf("[scheduler][usecase] campaign list failed err=%v", err)
		return nil, err
	}
	return campaigns, nil
}

// GetScheduleBoard returns the campaign's booking window and, for every
// vehicle in the campaign's model scope, whether it can still be scheduled.
func (u *SchedulerUseCase) GetScheduleBoard(ctx context.Context, campaignID string) (ScheduleBoard, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return ScheduleBoard{}, ErrInvalidCampaignID
	}

	var (
		campaigns []entities.Campaign
		vehicles  []entities.Vehicle
		appts     []entities.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = u.backend.ListCampaigns(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		vehicles, err = u.backend.ListVehicles(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		appts, err = u.backend.ListAppointments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[scheduler][usecase] board fetch failed campaign_id=%s err=%v", campaignID, err)
		return ScheduleBoard{}, err
	}

	campaign, err := findCampaign(campaigns, campaignID)
	if err != nil {
		return ScheduleBoard{}, err
	}
	window, err := campaign.WindowFor(u.now())
	if err != nil {
		return ScheduleBoard{}, err
	}

	scheduled := scheduledVINs(appts, campaign.CampaignID)
	board := ScheduleBoard{Campaign: campaign, Window: window, Vehicles: []ScheduleBoardVehicle{}}
	for _, v := range vehicles {
		if campaign.ModelScope != "" && v.Model != campaign.ModelScope {
			continue
		}
		_, has := scheduled[v.VIN]
		board.Vehicles = append(board.Vehicles, ScheduleBoardVehicle{
			Vehicle:     v,
			Scheduled:   has,
			Schedulable: !has,
		})
	}
	log.Printf("[scheduler][usecase] board loaded campaign_id=%s vehicles=%d", campaign.CampaignID, len(board.Vehicles))
	return board, nil
}

// ScheduleAppointment books a vehicle into the campaign. The scheduled-set
// check works off the snapshot fetched here; the backend's 409 on a lost
// race still surfaces to the caller as a first-class conflict.
func (u *SchedulerUseCase) ScheduleAppointment(ctx context.Context, campaignID string, in ScheduleInput) (entities.Appointment, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return entities.Appointment{}, ErrInvalidCampaignID
	}
	in.VIN = strings.TrimSpace(in.VIN)
	if in.VIN == "" || in.DateTime.IsZero() {
		return entities.Appointment{}, ErrInvalidAppointmentInput
	}

	campaigns, err := u.backend.ListCampaigns(ctx)
	if err != nil {
		return entities.Appointment{}, err
	}
	campaign, err := findCampaign(campaigns, campaignID)
	if err != nil {
		return entities.Appointment{}, err
	}

	window, err := campaign.WindowFor(u.now())
	if err != nil {
		return entities.Appointment{}, err
	}
	if !window.Contains(in.DateTime) {
		log.Printf("[scheduler][usecase] date outside window campaign_id=%s vin=%s at=%s", campaign.CampaignID, in.VIN, in.DateTime)
		return entities.Appointment{}, ErrOutsideWindow
	}

	appts, err := u.backend.ListAppointments(ctx)
	if err != nil {
		return entities.Appointment{}, err
	}
	if _, has := scheduledVINs(appts, campaign.CampaignID)[in.VIN]; has {
		return entities.Appointment{}, ErrVehicleAlreadyScheduled
	}

	created, err := u.backend.CreateAppointment(ctx, entities.Appointment{
		VIN:         in.VIN,
		CampaignID:  campaign.CampaignID,
		DateTime:    in.DateTime,
		Description: in.Description,
		Status:      entities.AppointmentScheduled,
	})
	if err != nil {
		log.Printf("[scheduler][usecase] appointment create failed campaign_id=%s vin=%s err=%v", campaign.CampaignID, in.VIN, err)
		return entities.Appointment{}, err
	}
	log.Printf("[scheduler][usecase] appointment created campaign_id=%s vin=%s appointment_id=%s", campaign.CampaignID, in.VIN, created.AppointmentID)

	if u.notifier != nil {
		if err := u.notifier.AppointmentScheduled(created); err != nil {
			log.Printf("[scheduler][usecase] appointment notify failed appointment_id=%s err=%v", created.AppointmentID, err)
		}
	}
	return created, nil
}

func findCampaign(campaigns []entities.Campaign, campaignID string) (entities.Campaign, error) {
	for _, c := range campaigns {
		if c.CampaignID == campaignID {
			return c, nil
		}
	}
	return entities.Campaign{}, ErrCampaignNotFound
}

// scheduledVINs collects the VINs holding a Scheduled appointment for the
// campaign.
func scheduledVINs(appts []entities.Appointment, campaignID string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, a := range appts {
		if a.CampaignID == campaignID && a.Status == entities.AppointmentScheduled {
			set[a.VIN] = struct{}{}
		}
	}
	return set
}
