package dto

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Building DTOs ---

// CreateBuildingRequest defines the data needed to create a building.
type CreateBuildingRequest struct {
	Name              string          `json:"name" binding:"required,max=200"`
	Address           string          `json:"address" binding:"max=500"`
	UnitCount         int             `json:"unitCount" binding:"min=0"`
	YearBuilt         *int            `json:"yearBuilt" binding:"omitempty,min=1600,max=2200"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	CurrentValue      decimal.Decimal `json:"currentValue"`
	RemainingDebt     decimal.Decimal `json:"remainingDebt"`
	OwnerContact      string          `json:"ownerContact"`
	BankContact       string          `json:"bankContact"`
	ContractorContact string          `json:"contractorContact"`
	Notes             string          `json:"notes"`
}

// UpdateBuildingRequest defines the fields that may change on a building.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBuildingRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Address           *string          `json:"address" binding:"omitempty,max=500"`
	UnitCount         *int             `json:"unitCount" binding:"omitempty,min=0"`
	YearBuilt         *int             `json:"yearBuilt" binding:"omitempty,min=1600,max=2200"`
	PurchasePrice     *decimal.Decimal `json:"purchasePrice"`
	CurrentValue      *decimal.Decimal `json:"currentValue"`
	RemainingDebt     *decimal.Decimal `json:"remainingDebt"`
	OwnerContact      *string          `json:"ownerContact"`
	BankContact       *string          `json:"bankContact"`
	ContractorContact *string          `json:"contractorContact"`
	Notes             *string          `json:"notes"`
}

// BuildingResponse defines the data returned for a building.
type BuildingResponse struct {
	BuildingID        string          `json:"buildingID"`
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	UnitCount         int             `json:"unitCount"`
	YearBuilt         *int            `json:"yearBuilt,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	CurrentValue      decimal.Decimal `json:"currentValue"`
	RemainingDebt     decimal.Decimal `json:"remainingDebt"`
	Equity            decimal.Decimal `json:"equity"`
	OwnerContact      string          `json:"ownerContact"`
	BankContact       string          `json:"bankContact"`
	ContractorContact string          `json:"contractorContact"`
	Notes             string          `json:"notes"`
	AuditResponse
}

// ToBuildingResponse converts a domain.Building to BuildingResponse DTO
func ToBuildingResponse(b *domain.Building) BuildingResponse {
	return BuildingResponse{
		BuildingID:        b.BuildingID,
		Name:              b.Name,
		Address:           b.Address,
		UnitCount:         b.UnitCount,
		YearBuilt:         b.YearBuilt,
		PurchasePrice:     b.PurchasePrice,
		CurrentValue:      b.CurrentValue,
		RemainingDebt:     b.RemainingDebt,
		Equity:            b.Equity(),
		OwnerContact:      b.OwnerContact,
		BankContact:       b.BankContact,
		ContractorContact: b.ContractorContact,
		Notes:             b.Notes,
		AuditResponse:     toAuditResponse(b.AuditFields),
	}
}

// ToListBuildingResponse converts buildings to DTOs.
func ToListBuildingResponse(bs []domain.Building) []BuildingResponse {
	return mapList(bs, ToBuildingResponse)
}

// BuildingOverviewResponse summarizes a building's occupancy and rent roll.
type BuildingOverviewResponse struct {
	Building      BuildingResponse `json:"building"`
	Units         int              `json:"units"`
	OccupiedUnits int              `json:"occupiedUnits"`
	ActiveLeases  int              `json:"activeLeases"`
	MonthlyRent   decimal.Decimal  `json:"monthlyRent"`
	Equity        decimal.Decimal  `json:"equity"`
}

// ToBuildingOverviewResponse converts an overview to its DTO.
func ToBuildingOverviewResponse(o *domain.BuildingOverview) BuildingOverviewResponse {
	return BuildingOverviewResponse{
		Building:      ToBuildingResponse(&o.Building),
		Units:         o.Units,
		OccupiedUnits: o.OccupiedUnits,
		ActiveLeases:  o.ActiveLeases,
		MonthlyRent:   o.MonthlyRent,
		Equity:        o.Equity,
	}
}

// --- Unit DTOs ---

// CreateUnitRequest defines the data needed to create a unit.
type CreateUnitRequest struct {
	BuildingID string          `json:"buildingID" binding:"required"`
	UnitNumber string          `json:"unitNumber" binding:"required,max=50"`
	Address    string          `json:"address" binding:"max=500"`
	Bedrooms   int             `json:"bedrooms" binding:"min=0,max=50"`
	Bathrooms  decimal.Decimal `json:"bathrooms"`
	UnitType   string          `json:"unitType" binding:"max=50"`
	Notes      string          `json:"notes"`
}

// UpdateUnitRequest defines the fields that may change on a unit.
type UpdateUnitRequest struct {
	UnitNumber *string          `json:"unitNumber" binding:"omitempty,min=1,max=50"`
	Address    *string          `json:"address" binding:"omitempty,max=500"`
	Bedrooms   *int             `json:"bedrooms" binding:"omitempty,min=0,max=50"`
	Bathrooms  *decimal.Decimal `json:"bathrooms"`
	UnitType   *string          `json:"unitType" binding:"omitempty,max=50"`
	Notes      *string          `json:"notes"`
}

// ListUnitsParams optionally restricts units to one building.
type ListUnitsParams struct {
	BuildingID string `form:"buildingId"`
}

// UnitResponse defines the data returned for a unit.
type UnitResponse struct {
	UnitID     string          `json:"unitID"`
	BuildingID string          `json:"buildingID"`
	UnitNumber string          `json:"unitNumber"`
	Address    string          `json:"address"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  decimal.Decimal `json:"bathrooms"`
	UnitType   string          `json:"unitType"`
	Notes      string          `json:"notes"`
	AuditResponse
}

// ToUnitResponse converts a domain.Unit to UnitResponse DTO
func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{
		UnitID:        u.UnitID,
		BuildingID:    u.BuildingID,
		UnitNumber:    u.UnitNumber,
		Address:       u.Address,
		Bedrooms:      u.Bedrooms,
		Bathrooms:     u.Bathrooms,
		UnitType:      u.UnitType,
		Notes:         u.Notes,
		AuditResponse: toAuditResponse(u.AuditFields),
	}
}

// ToListUnitResponse converts units to DTOs.
func ToListUnitResponse(us []domain.Unit) []UnitResponse {
	return mapList(us, ToUnitResponse)
}

// --- Tenant DTOs ---

// CreateTenantRequest defines the data needed to create a tenant.
type CreateTenantRequest struct {
	UnitID *string `json:"unitID"`
	Name   string  `json:"name" binding:"required,max=200"`
	Email  string  `json:"email" binding:"omitempty,email"`
	Phone  string  `json:"phone" binding:"max=50"`
	Status string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE FORMER"`
	Notes  string  `json:"notes"`
}

// UpdateTenantRequest defines the fields that may change on a tenant.
// The unit assignment changes through AssignUnitRequest.
type UpdateTenantRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone" binding:"omitempty,max=50"`
	Status *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE FORMER"`
	Notes  *string `json:"notes"`
}

// AssignUnitRequest moves a tenant to a unit, or unassigns them when UnitID is null.
type AssignUnitRequest struct {
	UnitID *string `json:"unitID"`
}

// ListTenantsParams optionally restricts tenants to one unit.
type ListTenantsParams struct {
	UnitID string `form:"unitId"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID string              `json:"tenantID"`
	UnitID   *string             `json:"unitID"`
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Phone    string              `json:"phone"`
	Status   domain.TenantStatus `json:"status"`
	Notes    string              `json:"notes"`
	AuditResponse
}

// ToTenantResponse converts a domain.Tenant to TenantResponse DTO
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		UnitID:        t.UnitID,
		Name:          t.Name,
		Email:         t.Email,
		Phone:         t.Phone,
		Status:        t.Status,
		Notes:         t.Notes,
		AuditResponse: toAuditResponse(t.AuditFields),
	}
}

// ToListTenantResponse converts tenants to DTOs.
func ToListTenantResponse(ts []domain.Tenant) []TenantResponse {
	return mapList(ts, ToTenantResponse)
}

// --- Lease DTOs ---

// CreateLeaseRequest defines the data needed to create a lease.
// EndDate may be omitted for an open-ended lease.
type CreateLeaseRequest struct {
	TenantID      string          `json:"tenantID" binding:"required"`
	StartDate     string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       *string         `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	RentAmount    decimal.Decimal `json:"rentAmount"`
	PaymentMethod string          `json:"paymentMethod" binding:"max=50"`
	PDFRef        *string         `json:"pdfRef" binding:"omitempty,max=500"`
}

// UpdateLeaseRequest defines the fields that may change on a lease.
// ClearEndDate makes the lease open-ended.
type UpdateLeaseRequest struct {
	StartDate     *string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	ClearEndDate  bool             `json:"clearEndDate"`
	RentAmount    *decimal.Decimal `json:"rentAmount"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,max=50"`
	PDFRef        *string          `json:"pdfRef" binding:"omitempty,max=500"`
}

// ListLeasesParams selects leases by tenant or by building.
type ListLeasesParams struct {
	TenantID   string `form:"tenantId"`
	BuildingID string `form:"buildingId"`
}

// LeaseResponse defines the data returned for a lease.
type LeaseResponse struct {
	LeaseID       string          `json:"leaseID"`
	TenantID      string          `json:"tenantID"`
	StartDate     string          `json:"startDate"`
	EndDate       *string         `json:"endDate"`
	RentAmount    decimal.Decimal `json:"rentAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PDFRef        *string         `json:"pdfRef,omitempty"`
	AuditResponse
}

// ToLeaseResponse converts a domain.Lease to LeaseResponse DTO
func ToLeaseResponse(l *domain.Lease) LeaseResponse {
	return LeaseResponse{
		LeaseID:       l.LeaseID,
		TenantID:      l.TenantID,
		StartDate:     FormatDate(l.StartDate),
		EndDate:       FormatOptionalDate(l.EndDate),
		RentAmount:    l.RentAmount,
		PaymentMethod: l.PaymentMethod,
		PDFRef:        l.PDFRef,
		AuditResponse: toAuditResponse(l.AuditFields),
	}
}

// ToListLeaseResponse converts leases to DTOs.
func ToListLeaseResponse(ls []domain.Lease) []LeaseResponse {
	return mapList(ls, ToLeaseResponse)
}

// --- Rent payment DTOs ---

// GenerateRentScheduleRequest sets the last month to generate.
// It is required for open-ended leases.
type GenerateRentScheduleRequest struct {
	Through string `json:"through" binding:"omitempty,yearmonth"`
}

// CreateRentPaymentRequest records a single month by hand.
// Amount defaults to the lease rent.
type CreateRentPaymentRequest struct {
	Period    string           `json:"period" binding:"required,yearmonth"`
	Amount    *decimal.Decimal `json:"amount"`
	Confirmed bool             `json:"confirmed"`
}

// RentPaymentResponse defines the data returned for a rent payment.
type RentPaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	LeaseID     string          `json:"leaseID"`
	Period      string          `json:"period"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	IsConfirmed bool            `json:"isConfirmed"`
	ConfirmedAt *string         `json:"confirmedAt,omitempty"`
	ConfirmedBy *string         `json:"confirmedBy,omitempty"`
}

// ToRentPaymentResponse converts a domain.RentPayment to its DTO.
func ToRentPaymentResponse(p *domain.RentPayment) RentPaymentResponse {
	resp := RentPaymentResponse{
		PaymentID:   p.PaymentID,
		LeaseID:     p.LeaseID,
		Period:      p.Period().String(),
		Year:        p.Year,
		Month:       p.Month,
		Amount:      p.Amount,
		IsConfirmed: p.IsConfirmed,
		ConfirmedBy: p.ConfirmedBy,
	}
	if p.ConfirmedAt != nil {
		s := p.ConfirmedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.ConfirmedAt = &s
	}
	return resp
}

// ToListRentPaymentResponse converts payments to DTOs.
func ToListRentPaymentResponse(ps []domain.RentPayment) []RentPaymentResponse {
	return mapList(ps, ToRentPaymentResponse)
}

// --- Transaction DTOs ---

// CreateTransactionRequest defines the data needed to record a ledger transaction.
type CreateTransactionRequest struct {
	BuildingID      string          `json:"buildingID" binding:"required"`
	Category        string          `json:"category" binding:"required,txncategory"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	PaymentMethod   string          `json:"paymentMethod" binding:"max=50"`
	Reference       string          `json:"reference" binding:"max=200"`
	Source          string          `json:"source" binding:"max=200"`
	PDFRef          *string         `json:"pdfRef" binding:"omitempty,max=500"`
	Notes           string          `json:"notes"`
}

// UpdateTransactionRequest defines the fields that may change on a transaction.
type UpdateTransactionRequest struct {
	Category        *string          `json:"category" binding:"omitempty,txncategory"`
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *string          `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	PaymentMethod   *string          `json:"paymentMethod" binding:"omitempty,max=50"`
	Reference       *string          `json:"reference" binding:"omitempty,max=200"`
	Source          *string          `json:"source" binding:"omitempty,max=200"`
	PDFRef          *string          `json:"pdfRef" binding:"omitempty,max=500"`
	Notes           *string          `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	BuildingID string `form:"buildingId"`
	Category   string `form:"category" binding:"omitempty,txncategory"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken  string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                     `json:"transactionID"`
	BuildingID      string                     `json:"buildingID"`
	Category        domain.TransactionCategory `json:"category"`
	Amount          decimal.Decimal            `json:"amount"`
	TransactionDate string                     `json:"transactionDate"`
	PaymentMethod   string                     `json:"paymentMethod"`
	Reference       string                     `json:"reference"`
	Source          string                     `json:"source"`
	PDFRef          *string                    `json:"pdfRef,omitempty"`
	Notes           string                     `json:"notes"`
	AuditResponse
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		BuildingID:      t.BuildingID,
		Category:        t.Category,
		Amount:          t.Amount,
		TransactionDate: FormatDate(t.TransactionDate),
		PaymentMethod:   t.PaymentMethod,
		Reference:       t.Reference,
		Source:          t.Source,
		PDFRef:          t.PDFRef,
		Notes:           t.Notes,
		AuditResponse:   toAuditResponse(t.AuditFields),
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of transactions.
func ToListTransactionsResponse(ts []domain.Transaction, nextToken string) ListTransactionsResponse {
	return ListTransactionsResponse{
		Transactions: mapList(ts, ToTransactionResponse),
		NextToken:    nextToken,
	}
}
