package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/session"
	"warranty_hub/internal/usecase/interfaces"
)

var ErrActionNotAllowed = errors.New("workflow action not allowed for this status and role")

// ValidationError carries field-level messages for input rejected before
// any workflow call leaves the process.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// WorkflowResult separates the primary transition outcome from secondary
// best-effort failures. A non-empty Warnings list still means the claim
// advanced; only a non-nil error means it did not.
type WorkflowResult struct {
	Record   entities.WorkflowAuditRecord
	Warnings []string
}

// TechnicianDoneInput is the technician's repair completion submission.
// Serials maps part number to the semicolon-delimited serial list as
// entered on the form.
type TechnicianDoneInput struct {
	Serials     map[string]string
	Description string
	Evidence    *entities.EvidenceFile
}

type AllowedActionView struct {
	ClaimID string               `json:"claim_id"`
	Status  entities.ClaimStatus `json:"status"`
	Action  entities.ActionKind  `json:"action"`
}

type IWorkflowUseCase interface {
	AllowedAction(ctx context.Context, claimID string) (AllowedActionView, error)
	TechnicianDone(ctx context.Context, claimID string, in TechnicianDoneInput) (WorkflowResult, error)
	StaffDone(ctx context.Context, claimID string) (WorkflowResult, error)
}

// WorkflowUseCase drives claim status transitions for one caller session.
// The warranty backend owns the state; this use case enforces the
// client-side gate (transition table + serial validation) and the
// primary/secondary failure asymmetry: the transition call must succeed,
// everything after it (evidence upload, appointment sync, audit append)
// only ever produces warnings.
type WorkflowUseCase struct {
	sess     *session.Session
	backend  interfaces.IWarrantyBackend
	audit    interfaces.IWorkflowAuditRepository
	notifier interfaces.IEventNotifier
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(sess *session.Session, backend interfaces.IWarrantyBackend, audit interfaces.IWorkflowAuditRepository, notifier interfaces.IEventNotifier) *WorkflowUseCase {
	return &WorkflowUseCase{sess: sess, backend: backend, audit: audit, notifier: notifier}
}

func (u *WorkflowUseCase) AllowedAction(ctx context.Context, claimID string) (AllowedActionView, error) {
	claim, err := u.findClaim(ctx, claimID)
	if err != nil {
		return AllowedActionView{}, err
	}
	return AllowedActionView{
		ClaimID: claim.ClaimID,
		Status:  claim.Status,
		Action:  entities.AllowedAction(claim.Status, u.sess.Role),
	}, nil
}

// TechnicianDone advances a claim from REPAIR to HANDOVER.
//
// Serial validation happens first: every part flagged for repair needs at
// least as many serial numbers as its required quantity, otherwise the
// submission is rejected with field-level messages and no workflow request
// is sent at all. The evidence upload after a successful transition is
// best-effort: its failure is logged and recorded as a warning, never
// rolling back the transition.
func (u *WorkflowUseCase) TechnicianDone(ctx context.Context, claimID string, in TechnicianDoneInput) (WorkflowResult, error) {
	claim, err := u.findClaim(ctx, claimID)
	if err != nil {
		return WorkflowResult{}, err
	}
	if entities.AllowedAction(claim.Status, u.sess.Role) != entities.ActionTechnicianDone {
		log.Printf("[workflow][usecase] technician-done rejected claim_id=%s status=%s role=%s", claim.ClaimID, claim.Status, u.sess.Role)
		return WorkflowResult{}, ErrActionNotAllowed
	}

	checks, err := u.backend.ListClaimPartChecks(ctx, claim.ClaimID)
	if err != nil {
		return WorkflowResult{}, err
	}
	fields := map[string]string{}
	for _, check := range checks {
		if !check.IsRepair {
			continue
		}
		got := countSerials(in.Serials[check.PartNumber])
		if got < check.Quantity {
			fields[check.PartNumber] = fmt.Sprintf("requires %d serial numbers, got %d", check.Quantity, got)
		}
	}
	if len(fields) > 0 {
		log.Printf("[workflow][usecase] technician-done serials incomplete claim_id=%s parts=%d", claim.ClaimID, len(fields))
		return WorkflowResult{}, &ValidationError{Fields: fields}
	}

	if err := u.backend.TechnicianDone(ctx, claim.ClaimID); err != nil {
		log.Printf("[workflow][usecase] technician-done transition failed claim_id=%s err=%v", claim.ClaimID, err)
		return WorkflowResult{}, err
	}
	log.Printf("[workflow][usecase] technician-done success claim_id=%s", claim.ClaimID)

	var warnings []string
	if in.Evidence != nil {
		if err := u.backend.UploadEvidence(ctx, claim.ClaimID, *in.Evidence); err != nil {
			log.Printf("[workflow][usecase] evidence upload failed claim_id=%s file=%s err=%v", claim.ClaimID, in.Evidence.FileName, err)
			warnings = append(warnings, fmt.Sprintf("evidence upload failed: %v", err))
		}
	}

	rec := u.appendAudit(ctx, claim, entities.ActionTechnicianDone, entities.ClaimStatusHandover, &warnings)
	return WorkflowResult{Record: rec, Warnings: warnings}, nil
}

// StaffDone advances a claim from HANDOVER to DONE, then tries to mark the
// matching Scheduled campaign appointment as Completed. The appointment
// sync is best-effort and never blocks the transition.
func (u *WorkflowUseCase) StaffDone(ctx context.Context, claimID string) (WorkflowResult, error) {
	claim, err := u.findClaim(ctx, claimID)
	if err != nil {
		return WorkflowResult{}, err
	}
	if entities.AllowedAction(claim.Status, u.sess.Role) != entities.ActionStaffDone {
		log.Printf("[workflow][usecase] staff-done rejected claim_id=%s status=%s role=%s", claim.ClaimID, claim.Status, u.sess.Role)
		return WorkflowResult{}, ErrActionNotAllowed
	}

	if err := u.backend.StaffDone(ctx, claim.ClaimID); err != nil {
		log.Printf("[workflow][usecase] staff-done transition failed claim_id=%s err=%v", claim.ClaimID, err)
		return WorkflowResult{}, err
	}
	log.Printf("[workflow][usecase] staff-done success claim_id=%s", claim.ClaimID)

	var warnings []string
	if err := u.completeMatchingAppointment(ctx, claim); err != nil {
		log.Printf("[workflow][usecase] appointment sync failed claim_id=%s err=%v", claim.ClaimID, err)
		warnings = append(warnings, fmt.Sprintf("appointment sync failed: %v", err))
	}

	rec := u.appendAudit(ctx, claim, entities.ActionStaffDone, entities.ClaimStatusDone, &warnings)
	return WorkflowResult{Record: rec, Warnings: warnings}, nil
}

func (u *WorkflowUseCase) findClaim(ctx context.Context, claimID string) (entities.WarrantyClaim, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.WarrantyClaim{}, ErrInvalidClaimID
	}
	claims, err := u.backend.ListClaims(ctx)
	if err != nil {
		return entities.WarrantyClaim{}, err
	}
	for _, c := range claims {
		if c.ClaimID == claimID {
			return c, nil
		}
	}
	return entities.WarrantyClaim{}, ErrClaimNotFound
}

// completeMatchingAppointment flips the claim's Scheduled campaign
// appointment (same VIN, one of the claim's campaigns) to Completed.
// No match is not an error.
func (u *WorkflowUseCase) completeMatchingAppointment(ctx context.Context, claim entities.WarrantyClaim) error {
	if len(claim.CampaignIDs) == 0 {
		return nil
	}
	appts, err := u.backend.ListAppointments(ctx)
	if err != nil {
		return err
	}
	campaigns := make(map[string]struct{}, len(claim.CampaignIDs))
	for _, id := range claim.CampaignIDs {
		campaigns[id] = struct{}{}
	}
	for _, a := range appts {
		if a.Status != entities.AppointmentScheduled || a.VIN != claim.VIN {
			continue
		}
		if _, ok := campaigns[a.CampaignID]; !ok {
			continue
		}
		return u.backend.UpdateAppointmentStatus(ctx, a.AppointmentID, entities.AppointmentCompleted)
	}
	return nil
}

// appendAudit records the transition and publishes the event. Both are
// secondary: a failed audit write becomes a warning, a failed publish is
// only logged.
func (u *WorkflowUseCase) appendAudit(ctx context.Context, claim entities.WarrantyClaim, action entities.ActionKind, to entities.ClaimStatus, warnings *[]string) entities.WorkflowAuditRecord {
	rec := entities.WorkflowAuditRecord{
		ID:         uuid.NewString(),
		ClaimID:    claim.ClaimID,
		Action:     action,
		ActorID:    u.sess.AccountID,
		ActorRole:  u.sess.Role,
		FromStatus: claim.Status,
		ToStatus:   to,
		Warnings:   *warnings,
		Date:       time.Now().UTC(),
	}
	if u.audit != nil {
		if _, err := u.audit.Append(ctx, rec); err != nil {
			log.Printf("[workflow][usecase] audit append failed claim_id=%s err=%v", claim.ClaimID, err)
			*warnings = append(*warnings, fmt.Sprintf("audit append failed: %v", err))
		}
	}
	if u.notifier != nil {
		if err := u.notifier.ClaimTransitioned(rec); err != nil {
			log.Printf("[workflow][usecase] transition notify failed claim_id=%s err=%v", claim.ClaimID, err)
		}
	}
	return rec
}

// countSerials counts non-empty entries in a semicolon-delimited list.
func countSerials(raw string) int {
	n := 0
	for _, s := range strings.Split(raw, ";") {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
