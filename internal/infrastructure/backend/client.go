package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/session"
	"warranty_hub/internal/usecase/interfaces"
)

var (
	// ErrSessionExpired signals an upstream 401. The HTTP layer maps it to a
	// 401 response with a /login redirect hint.
	ErrSessionExpired = errors.New("warranty backend session expired")

	// ErrConflict signals an upstream 409, e.g. the backend rejecting a
	// duplicate appointment for the same vehicle and campaign.
	ErrConflict = errors.New("warranty backend conflict")

	ErrMissingBaseURL = errors.New("missing WARRANTY_API_BASE_URL")
)

// Warranty backend endpoints consumed by the dashboard.
const (
	pathClaims            = "/api/warranty-claims"
	pathVehicles          = "/api/vehicles"
	pathAccounts          = "/api/accounts/"
	pathParts             = "/api/parts"
	pathClaimPartChecks   = "/api/claim-part-check/search/warranty/%s"
	pathTechnicianDone    = "/api/warranty-claims/workflow/%s/technician/done"
	pathStaffDone         = "/api/warranty-claims/workflow/%s/staff/done"
	pathEvidenceUpload    = "/api/warranty-files/combined/upload-create"
	pathCampaigns         = "/api/campaigns/all"
	pathAppointments      = "/api/service-appointments"
	pathAppointmentStatus = "/api/service-appointments/%s/status"
)

const (
	maxErrorBodyBytes     = 512
	defaultRequestTimeout = 15 * time.Second
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client is the shared warranty-backend adapter core: base URL, transport,
// session store and notifier. It carries no per-caller state; ForSession
// binds it to one dashboard session.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
	notifier interfaces.IEventNotifier
}

func NewClient(cfg Config, sessions *session.Store, notifier interfaces.IEventNotifier) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrMissingBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{baseURL: base, http: hc, sessions: sessions, notifier: notifier}, nil
}

// NewClientFromEnv builds the adapter from WARRANTY_API_BASE_URL.
func NewClientFromEnv(sessions *session.Store, notifier interfaces.IEventNotifier) (*Client, error) {
	return NewClient(Config{BaseURL: os.Getenv("WARRANTY_API_BASE_URL")}, sessions, notifier)
}

// ForSession returns an adapter bound to one dashboard session. The session
// is injected here, at construction, rather than read from shared state.
func (c *Client) ForSession(sess *session.Session) *SessionClient {
	return &SessionClient{c: c, sess: sess}
}

// SessionClient is the per-session warranty backend adapter.
type SessionClient struct {
	c    *Client
	sess *session.Session
}

var _ interfaces.IWarrantyBackend = (*SessionClient)(nil)

func (s *SessionClient) ListClaims(ctx context.Context) ([]entities.WarrantyClaim, error) {
	var out []entities.WarrantyClaim
	if err := s.getJSON(ctx, pathClaims, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var out []entities.Vehicle
	if err := s.getJSON(ctx, pathVehicles, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) ListAccounts(ctx context.Context) ([]entities.Account, error) {
	var out []entities.Account
	if err := s.getJSON(ctx, pathAccounts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) ListParts(ctx context.Context) ([]entities.Part, error) {
	var out []entities.Part
	if err := s.getJSON(ctx, pathParts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) ListClaimPartChecks(ctx context.Context, claimID string) ([]entities.ClaimPartCheck, error) {
	var out []entities.ClaimPartCheck
	if err := s.getJSON(ctx, fmt.Sprintf(pathClaimPartChecks, claimID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) TechnicianDone(ctx context.Context, claimID string) error {
	return s.sendJSON(ctx, http.MethodPost, fmt.Sprintf(pathTechnicianDone, claimID), nil, nil)
}

func (s *SessionClient) StaffDone(ctx context.Context, claimID string) error {
	return s.sendJSON(ctx, http.MethodPost, fmt.Sprintf(pathStaffDone, claimID), nil, nil)
}

// UploadEvidence posts the evidence file as multipart form data. The JSON
// content type is deliberately omitted so the multipart writer's own
// boundary header survives.
func (s *SessionClient) UploadEvidence(ctx context.Context, claimID string, file entities.EvidenceFile) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("claimId", claimID); err != nil {
		return err
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, file.FileName))
	if file.ContentType != "" {
		hdr.Set("Content-Type", file.ContentType)
	}
	part, err := w.CreatePart(hdr)
	if err != nil {
		return err
	}
	if _, err := part.Write(file.Data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+pathEvidenceUpload, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.do(req, nil)
}

func (s *SessionClient) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	var out []entities.Campaign
	if err := s.getJSON(ctx, pathCampaigns, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	var out []entities.Appointment
	if err := s.getJSON(ctx, pathAppointments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionClient) CreateAppointment(ctx context.Context, appt entities.Appointment) (entities.Appointment, error) {
	var out entities.Appointment
	if err := s.sendJSON(ctx, http.MethodPost, pathAppointments, appt, &out); err != nil {
		return entities.Appointment{}, err
	}
	return out, nil
}

func (s *SessionClient) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status entities.AppointmentStatus) error {
	body := map[string]string{"status": string(status)}
	return s.sendJSON(ctx, http.MethodPut, fmt.Sprintf(pathAppointmentStatus, appointmentID), body, nil)
}

func (s *SessionClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

func (s *SessionClient) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(req, out)
}

func (s *SessionClient) do(req *http.Request, out any) error {
	if s.sess != nil && s.sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.sess.Token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.c.http.Do(req)
	if err != nil {
		return fmt.Errorf("warranty backend %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		s.expireSession()
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrSessionExpired)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrConflict)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("warranty backend %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("warranty backend %s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// expireSession invalidates the bound session and notifies the dashboard.
// The store guarantees the notification fires once per session even when
// several in-flight requests hit 401 together, so the dashboard redirects
// to /login exactly once instead of looping.
func (s *SessionClient) expireSession() {
	if s.sess == nil || s.c.sessions == nil {
		return
	}
	if !s.c.sessions.Invalidate(s.sess.Token) {
		return
	}
	log.Printf("[backend][client] session expired account_id=%s", s.sess.AccountID)
	if s.c.notifier == nil {
		return
	}
	if err := s.c.notifier.SessionExpired(s.sess.AccountID); err != nil {
		log.Printf("[backend][client] session-expired notify failed account_id=%s err=%v", s.sess.AccountID, err)
	}
}
