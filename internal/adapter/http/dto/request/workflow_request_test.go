package request

import (
	"errors"
	"testing"
)

func TestTechnicianDoneRequest_ResolveSerials(t *testing.T) {
	r := TechnicianDoneRequest{Serials: `{"PN-A":"SN1;SN2","PN-B":"SN3"}`}
	serials, err := r.ResolveSerials()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if serials["PN-A"] != "SN1;SN2" || serials["PN-B"] != "SN3" {
		t.Fatalf("unexpected serials: %v", serials)
	}

	r2 := TechnicianDoneRequest{Serials: "   "}
	serials, err = r2.ResolveSerials()
	if err != nil || len(serials) != 0 {
		t.Fatalf("expected empty map for blank payload, got %v / %v", serials, err)
	}

	r3 := TechnicianDoneRequest{Serials: "not-json"}
	if _, err := r3.ResolveSerials(); !errors.Is(err, ErrInvalidSerialsPayload) {
		t.Fatalf("expected ErrInvalidSerialsPayload, got %v", err)
	}
}

func TestScheduleAppointmentRequest_ResolveDateTime(t *testing.T) {
	r := ScheduleAppointmentRequest{VIN: " VIN1 ", DateTime: "2024-01-20T09:00:00Z"}
	if got := r.ResolveVIN(); got != "VIN1" {
		t.Fatalf("expected VIN1, got %q", got)
	}
	at, err := r.ResolveDateTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if at.Hour() != 9 || at.Day() != 20 {
		t.Fatalf("unexpected time: %v", at)
	}

	r2 := ScheduleAppointmentRequest{DateTime: "20/01/2024 09:00"}
	if _, err := r2.ResolveDateTime(); !errors.Is(err, ErrInvalidAppointmentTime) {
		t.Fatalf("expected ErrInvalidAppointmentTime, got %v", err)
	}
}
