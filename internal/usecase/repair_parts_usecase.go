package usecase

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase/interfaces"
)

// RepairPartsView lists the parts flagged for repair under one claim.
// TotalQuantity counts every flagged unit, catalog match or not, so the
// number stays usable for audit.
type RepairPartsView struct {
	ClaimID       string                    `json:"claim_id"`
	Lines         []entities.RepairPartLine `json:"lines"`
	TotalQuantity int                       `json:"total_quantity"`
}

type IRepairPartsUseCase interface {
	GetRepairParts(ctx context.Context, claimID string) (RepairPartsView, error)
}

// RepairPartsUseCase joins the claim's part checks against the catalog of
// the single warehouse designated for repair issues. Both sources are
// fetched on every call; there is no caching between opens of the view.
type RepairPartsUseCase struct {
	backend     interfaces.IWarrantyBackend
	warehouseID string
}

var _ IRepairPartsUseCase = (*RepairPartsUseCase)(nil)

func NewRepairPartsUseCase(backend interfaces.IWarrantyBackend, repairWarehouseID string) *RepairPartsUseCase {
	return &RepairPartsUseCase{backend: backend, warehouseID: repairWarehouseID}
}

func (u *RepairPartsUseCase) GetRepairParts(ctx context.Context, claimID string) (RepairPartsView, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return RepairPartsView{}, ErrInvalidClaimID
	}

	var (
		checks []entities.ClaimPartCheck
		parts  []entities.Part
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checks, err = u.backend.ListClaimPartChecks(gctx, claimID)
		return err
	})
	g.Go(func() error {
		var err error
		parts, err = u.backend.ListParts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[parts][usecase] repair-parts fetch failed claim_id=%s err=%v", claimID, err)
		return RepairPartsView{}, err
	}

	names := make(map[string]string)
	for _, p := range parts {
		if p.WarehouseID == u.warehouseID {
			names[p.PartNumber] = p.Name
		}
	}

	view := RepairPartsView{ClaimID: claimID, Lines: []entities.RepairPartLine{}}
	for _, check := range checks {
		if !check.IsRepair {
			continue
		}
		name, ok := names[check.PartNumber]
		if !ok {
			// Keep the line: dropping it would understate the audit total.
			name = entities.UnknownPartName
		}
		view.Lines = append(view.Lines, entities.RepairPartLine{
			PartNumber: check.PartNumber,
			Name:       name,
			Quantity:   check.Quantity,
		})
		view.TotalQuantity += check.Quantity
	}

	log.Printf("[parts][usecase] repair-parts loaded claim_id=%s lines=%d total_quantity=%d", claimID, len(view.Lines), view.TotalQuantity)
	return view, nil
}
