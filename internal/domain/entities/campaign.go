package entities

import (
	"errors"
	"time"
)

var ErrCampaignEnded = errors.New("campaign has ended")

// Campaign is a time-bounded recall/service initiative. Read-only here; the
// warranty backend maintains the aggregate counters.
type Campaign struct {
	CampaignID        string    `json:"campaignId"`
	Name              string    `json:"name"`
	ModelScope        string    `json:"modelScope"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	AffectedVehicles  int       `json:"affectedVehicles"`
	CompletedVehicles int       `json:"completedVehicles"`
}

// AppointmentStatus values used by the scheduler and the staff-done sync.

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a campaign service booking for one vehicle.
type Appointment struct {
	AppointmentID string            `json:"appointmentId"`
	VIN           string            `json:"vin"`
	CampaignID    string            `json:"campaignId"`
	DateTime      time.Time         `json:"dateTime"`
	Description   string            `json:"description"`
	Status        AppointmentStatus `json:"status"`
}

// ScheduleWindow is the date-time range an appointment may be booked in.
type ScheduleWindow struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

// Contains reports whether t falls inside the window (bounds inclusive).
func (w ScheduleWindow) Contains(t time.Time) bool {
	return !t.Before(w.Min) && !t.After(w.Max)
}

// WindowFor computes the allowed booking window for a campaign at the given
// instant: [max(now, startDate), end of endDate's day]. The maximum never
// crosses into the day after EndDate. ErrCampaignEnded when now is already
// past the window.
func (c Campaign) WindowFor(now time.Time) (ScheduleWindow, error) {
	min := c.StartDate
	if now.After(min) {
		min = now
	}
	end := c.EndDate
	max := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	if min.After(max) {
		return ScheduleWindow{}, ErrCampaignEnded
	}
	return ScheduleWindow{Min: min, Max: max}, nil
}
