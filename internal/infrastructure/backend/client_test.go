package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/session"
)

type recordingNotifier struct {
	sessionExpired []string
}

func (n *recordingNotifier) SessionExpired(accountID string) error {
	n.sessionExpired = append(n.sessionExpired, accountID)
	return nil
}

func (n *recordingNotifier) ClaimTransitioned(entities.WorkflowAuditRecord) error { return nil }

func (n *recordingNotifier) AppointmentScheduled(entities.Appointment) error { return nil }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store, *recordingNotifier) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore()
	notifier := &recordingNotifier{}
	c, err := NewClient(Config{BaseURL: srv.URL}, store, notifier)
	require.NoError(t, err)
	return c, store, notifier
}

func testSession() *session.Session {
	return &session.Session{Token: "tok-1", AccountID: "acc-1", Role: entities.RoleTechnician}
}

func TestListClaimsAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"claimId":"cl-1","vin":"VIN1","status":"REPAIR"}]`))
	}))

	claims, err := c.ForSession(testSession()).ListClaims(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	require.Len(t, claims, 1)
	assert.Equal(t, entities.ClaimStatusRepair, claims[0].Status)
}

func TestTechnicianDonePostsJSON(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))

	err := c.ForSession(testSession()).TechnicianDone(context.Background(), "cl-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/warranty-claims/workflow/cl-1/technician/done", gotPath)
	assert.Empty(t, gotContentType, "no body means no json content type")
}

func TestUploadEvidenceUsesMultipartBoundary(t *testing.T) {
	var gotContentType, gotClaimID, gotFileName string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotClaimID = r.FormValue("claimId")
		if _, hdr, err := r.FormFile("file"); err == nil {
			gotFileName = hdr.Filename
		}
		w.WriteHeader(http.StatusCreated)
	}))

	file := entities.EvidenceFile{FileName: "repair.jpg", ContentType: "image/jpeg", Data: []byte("fake-bytes")}
	err := c.ForSession(testSession()).UploadEvidence(context.Background(), "cl-1", file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="), "got content type %q", gotContentType)
	assert.Equal(t, "cl-1", gotClaimID)
	assert.Equal(t, "repair.jpg", gotFileName)
}

func TestUnauthorizedExpiresSessionOnce(t *testing.T) {
	c, store, notifier := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	sc := c.ForSession(testSession())

	_, err := sc.ListClaims(context.Background())
	require.True(t, errors.Is(err, ErrSessionExpired))
	assert.True(t, store.IsInvalidated("tok-1"))

	// A second 401 for the same session must not notify again.
	_, err = sc.ListVehicles(context.Background())
	require.True(t, errors.Is(err, ErrSessionExpired))
	assert.Equal(t, []string{"acc-1"}, notifier.sessionExpired)
}

func TestCreateAppointmentConflict(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, err := c.ForSession(testSession()).CreateAppointment(context.Background(), entities.Appointment{VIN: "VIN1", CampaignID: "camp-1"})
	require.True(t, errors.Is(err, ErrConflict))
}

func TestServerErrorIncludesStatusAndBody(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))

	_, err := c.ForSession(testSession()).ListParts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{}, session.NewStore(), nil)
	require.True(t, errors.Is(err, ErrMissingBaseURL))
}
