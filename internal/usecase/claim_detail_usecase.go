package usecase

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase/interfaces"
)

var (
	ErrClaimNotFound  = errors.New("warranty claim not found")
	ErrInvalidClaimID = errors.New("invalid claim id")
)

// IClaimDetailUseCase aggregates everything the claim screen shows: the
// claim, its vehicle and resolved account names.

type IClaimDetailUseCase interface {
	GetClaimDetail(ctx context.Context, claimID string) (entities.ClaimDetail, error)
}

type ClaimDetailUseCase struct {
	backend interfaces.IWarrantyBackend
}

var _ IClaimDetailUseCase = (*ClaimDetailUseCase)(nil)

func NewClaimDetailUseCase(backend interfaces.IWarrantyBackend) *ClaimDetailUseCase {
	return &ClaimDetailUseCase{backend: backend}
}

// GetClaimDetail fetches the claims, vehicles and accounts snapshots
// concurrently, then joins them locally. The three fetches are
// all-or-nothing: a failure in any of them fails the whole read, so the
// screen never renders from partial data.
func (u *ClaimDetailUseCase) GetClaimDetail(ctx context.Context, claimID string) (entities.ClaimDetail, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.ClaimDetail{}, ErrInvalidClaimID
	}

	var (
		claims   []entities.WarrantyClaim
		vehicles []entities.Vehicle
		accounts []entities.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		claims, err = u.backend.ListClaims(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		vehicles, err = u.backend.ListVehicles(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = u.backend.ListAccounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[claim][usecase] detail fetch failed claim_id=%s err=%v", claimID, err)
		return entities.ClaimDetail{}, err
	}

	var claim *entities.WarrantyClaim
	for i := range claims {
		if claims[i].ClaimID == claimID {
			claim = &claims[i]
			break
		}
	}
	if claim == nil {
		log.Printf("[claim][usecase] claim not found claim_id=%s", claimID)
		return entities.ClaimDetail{}, ErrClaimNotFound
	}

	detail := entities.ClaimDetail{Claim: *claim}
	for _, v := range vehicles {
		if v.VIN == claim.VIN {
			detail.Vehicle = v
			break
		}
	}

	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.AccountID] = a.FullName
	}
	detail.TechnicianName = names[claim.TechnicianID]
	detail.StaffName = names[claim.StaffID]
	detail.EVMStaffName = names[claim.EVMStaffID]

	log.Printf("[claim][usecase] detail loaded claim_id=%s vin=%s status=%s", claim.ClaimID, claim.VIN, claim.Status)
	return detail, nil
}
