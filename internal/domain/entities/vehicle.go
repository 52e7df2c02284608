package entities

// Vehicle is read-only join data from the claim workflow's perspective.
type Vehicle struct {
	VIN        string `json:"vin"`
	Model      string `json:"model"`
	Plate      string `json:"plate"`
	CustomerID string `json:"customerId"`
	OwnerName  string `json:"ownerName,omitempty"`
}

// Account is a dashboard user record as returned by the warranty backend.
// Used only to resolve technician/staff/EVM ids to display names.
type Account struct {
	AccountID string `json:"accountId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role"`
}
