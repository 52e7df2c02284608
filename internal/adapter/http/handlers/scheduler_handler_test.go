package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/infrastructure/backend"
	"warranty_hub/internal/usecase"
	mock_interfaces "warranty_hub/internal/usecase/interfaces/mocks"
)

func openCampaign() entities.Campaign {
	now := time.Now().UTC()
	return entities.Campaign{
		CampaignID: "camp-1",
		Name:       "Battery recall",
		ModelScope: "EV-X",
		StartDate:  now.AddDate(0, 0, -7),
		EndDate:    now.AddDate(0, 0, 7),
	}
}

func TestSchedulerHandler_ListCampaigns(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
	h := NewSchedulerHandler(staticBackend(be), nil)

	be.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.Campaign{openCampaign()}, nil)

	r := gin.New()
	r.Use(sessionInjector(staffSession()))
	r.GET("/v1/campaigns", h.ListCampaigns)

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["campaign_id"] != "camp-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSchedulerHandler_GetScheduleBoard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
	h := NewSchedulerHandler(staticBackend(be), nil)

	be.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.Campaign{openCampaign()}, nil)
	be.EXPECT().ListVehicles(gomock.Any()).Return([]entities.Vehicle{
		{VIN: "VIN1", Model: "EV-X"},
		{VIN: "VIN2", Model: "EV-Y"},
	}, nil)
	be.EXPECT().ListAppointments(gomock.Any()).Return([]entities.Appointment{}, nil)

	r := gin.New()
	r.Use(sessionInjector(staffSession()))
	r.GET("/v1/campaigns/:campaign_id/schedule-board", h.GetScheduleBoard)

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/camp-1/schedule-board", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	vehicles, _ := body["vehicles"].([]any)
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 in-scope vehicle, got %s", w.Body.String())
	}
}

func TestSchedulerHandler_ScheduleAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *SchedulerHandler, payload string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(sessionInjector(staffSession()))
		r.POST("/v1/campaigns/:campaign_id/appointments", h.ScheduleAppointment)

		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/camp-1/appointments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
		h := NewSchedulerHandler(staticBackend(be), nil)

		at := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		be.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.Campaign{openCampaign()}, nil)
		be.EXPECT().ListAppointments(gomock.Any()).Return([]entities.Appointment{}, nil)
		be.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, appt entities.Appointment) (entities.Appointment, error) {
				appt.AppointmentID = "ap-new"
				return appt, nil
			})

		payload, _ := json.Marshal(map[string]string{
			"vin":       "VIN1",
			"date_time": at.Format(time.RFC3339),
		})
		w := post(h, string(payload))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["appointment_id"] != "ap-new" || body["status"] != string(entities.AppointmentScheduled) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
		h := NewSchedulerHandler(staticBackend(be), nil)

		w := post(h, `{"vin":"VIN1","date_time":"tomorrow"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("outside window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
		h := NewSchedulerHandler(staticBackend(be), nil)

		be.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.Campaign{openCampaign()}, nil)

		at := time.Now().UTC().AddDate(0, 0, 30)
		payload, _ := json.Marshal(map[string]string{"vin": "VIN1", "date_time": at.Format(time.RFC3339)})
		w := post(h, string(payload))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("already scheduled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
		h := NewSchedulerHandler(staticBackend(be), nil)

		at := time.Now().UTC().Add(24 * time.Hour)
		be.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.Campaign{openCampaign()}, nil)
		be.EXPECT().ListAppointments(gomock.Any()).Return([]entities.Appointment{
			{AppointmentID: "ap-1", VIN: "VIN1", CampaignID: "camp-1", Status: entities.AppointmentScheduled},
		}, nil)

		payload, _ := json.Marshal(map[string]string{"vin": "VIN1", "date_time": at.Format(time.RFC3339)})
		w := post(h, string(payload))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("upstream conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		be := mock_interfaces.NewMockIWarrantyBackend(ctrl)
		h := NewSchedulerHandler(staticBackend(be), nil)

		at := time.Now().UTC().Add(24 * time.Hour)
		be.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.Campaign{openCampaign()}, nil)
		be.EXPECT().ListAppointments(gomock.Any()).Return([]entities.Appointment{}, nil)
		be.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, backend.ErrConflict)

		payload, _ := json.Marshal(map[string]string{"vin": "VIN1", "date_time": at.Format(time.RFC3339)})
		w := post(h, string(payload))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestMapSchedulerError(t *testing.T) {
	if got := mapSchedulerError(usecase.ErrInvalidCampaignID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSchedulerError(usecase.ErrCampaignNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSchedulerError(usecase.ErrOutsideWindow); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSchedulerError(entities.ErrCampaignEnded); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSchedulerError(usecase.ErrVehicleAlreadyScheduled); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSchedulerError(backend.ErrSessionExpired); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapSchedulerError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
