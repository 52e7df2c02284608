package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidAppointmentTime = errors.New("invalid appointment time")
)

// ScheduleAppointmentRequest books a campaign visit for one vehicle.
type ScheduleAppointmentRequest struct {
	VIN         string `json:"vin" binding:"required"`
	DateTime    string `json:"date_time" binding:"required"`
	Description string `json:"description"`
}

func (r ScheduleAppointmentRequest) ResolveVIN() string {
	return strings.TrimSpace(r.VIN)
}

func (r ScheduleAppointmentRequest) ResolveDateTime() (time.Time, error) {
	at, err := time.Parse(time.RFC3339, strings.TrimSpace(r.DateTime))
	if err != nil {
		return time.Time{}, ErrInvalidAppointmentTime
	}
	return at, nil
}
