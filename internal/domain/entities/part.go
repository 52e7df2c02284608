package entities

// Part is a catalog entry. The catalog spans every warehouse; repair-parts
// views restrict it to the single warehouse designated for repair issues.
type Part struct {
	PartNumber  string `json:"partNumber"`
	Name        string `json:"name"`
	WarehouseID string `json:"warehouseId"`
	Stock       int    `json:"stock,omitempty"`
}

// ClaimPartCheck marks a catalog part as checked for one claim. Only checks
// with IsRepair set participate in the repair step.
type ClaimPartCheck struct {
	CheckID    string `json:"checkId"`
	ClaimID    string `json:"claimId"`
	PartNumber string `json:"partNumber"`
	Quantity   int    `json:"quantity"`
	IsRepair   bool   `json:"isRepair"`
}

// UnknownPartName is rendered for repair checks whose part number has no
// catalog match in the repair warehouse. The line is kept so quantity totals
// stay accurate for audit.
const UnknownPartName = "Unknown part"

// RepairPartLine is one row of the repair-parts view: a repair-flagged check
// joined against the repair-warehouse catalog.
type RepairPartLine struct {
	PartNumber string `json:"partNumber"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}
