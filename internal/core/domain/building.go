package domain

import "github.com/shopspring/decimal"

// Building is a managed real-estate property containing units.
type Building struct {
	BuildingID        string          `json:"buildingID"`
	CompanyID         string          `json:"companyID"`
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	UnitCount         int             `json:"unitCount"`
	YearBuilt         *int            `json:"yearBuilt,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	CurrentValue      decimal.Decimal `json:"currentValue"`
	RemainingDebt     decimal.Decimal `json:"remainingDebt"`
	OwnerContact      string          `json:"ownerContact"`
	BankContact       string          `json:"bankContact"`
	ContractorContact string          `json:"contractorContact"`
	Notes             string          `json:"notes"`
	AuditFields
}

// Equity is the current value net of remaining debt.
func (b Building) Equity() decimal.Decimal {
	return b.CurrentValue.Sub(b.RemainingDebt)
}

// BuildingOverview summarizes occupancy and rent roll for one building.
type BuildingOverview struct {
	Building      Building        `json:"building"`
	Units         int             `json:"units"`
	OccupiedUnits int             `json:"occupiedUnits"`
	ActiveLeases  int             `json:"activeLeases"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	Equity        decimal.Decimal `json:"equity"`
}

// Unit is a rentable sub-division of a building.
type Unit struct {
	UnitID     string          `json:"unitID"`
	BuildingID string          `json:"buildingID"`
	UnitNumber string          `json:"unitNumber"`
	Address    string          `json:"address"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  decimal.Decimal `json:"bathrooms"`
	UnitType   string          `json:"unitType"`
	Notes      string          `json:"notes"`
	AuditFields
}
