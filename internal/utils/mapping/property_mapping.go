package mapping

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/models"
)

// ToModelBuilding converts a domain Building to a model Building
func ToModelBuilding(d domain.Building) models.Building {
	return models.Building{
		BuildingID:        d.BuildingID,
		CompanyID:         d.CompanyID,
		Name:              d.Name,
		Address:           d.Address,
		UnitCount:         d.UnitCount,
		YearBuilt:         d.YearBuilt,
		PurchasePrice:     d.PurchasePrice,
		CurrentValue:      d.CurrentValue,
		RemainingDebt:     d.RemainingDebt,
		OwnerContact:      d.OwnerContact,
		BankContact:       d.BankContact,
		ContractorContact: d.ContractorContact,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBuilding converts a model Building to a domain Building
func ToDomainBuilding(m models.Building) domain.Building {
	return domain.Building{
		BuildingID:        m.BuildingID,
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		Address:           m.Address,
		UnitCount:         m.UnitCount,
		YearBuilt:         m.YearBuilt,
		PurchasePrice:     m.PurchasePrice,
		CurrentValue:      m.CurrentValue,
		RemainingDebt:     m.RemainingDebt,
		OwnerContact:      m.OwnerContact,
		BankContact:       m.BankContact,
		ContractorContact: m.ContractorContact,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBuildingSlice converts model Buildings to domain Buildings
func ToDomainBuildingSlice(ms []models.Building) []domain.Building {
	return mapSlice(ms, ToDomainBuilding)
}

// ToModelUnit converts a domain Unit to a model Unit
func ToModelUnit(d domain.Unit) models.Unit {
	return models.Unit{
		UnitID:      d.UnitID,
		BuildingID:  d.BuildingID,
		UnitNumber:  d.UnitNumber,
		Address:     d.Address,
		Bedrooms:    d.Bedrooms,
		Bathrooms:   d.Bathrooms,
		UnitType:    d.UnitType,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUnit converts a model Unit to a domain Unit
func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		UnitID:      m.UnitID,
		BuildingID:  m.BuildingID,
		UnitNumber:  m.UnitNumber,
		Address:     m.Address,
		Bedrooms:    m.Bedrooms,
		Bathrooms:   m.Bathrooms,
		UnitType:    m.UnitType,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUnitSlice converts model Units to domain Units
func ToDomainUnitSlice(ms []models.Unit) []domain.Unit {
	return mapSlice(ms, ToDomainUnit)
}

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		CompanyID:   d.CompanyID,
		UnitID:      d.UnitID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		CompanyID:   m.CompanyID,
		UnitID:      m.UnitID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Status:      domain.TenantStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantSlice converts model Tenants to domain Tenants
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	return mapSlice(ms, ToDomainTenant)
}

// ToModelLease converts a domain Lease to a model Lease
func ToModelLease(d domain.Lease) models.Lease {
	return models.Lease{
		LeaseID:       d.LeaseID,
		TenantID:      d.TenantID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		RentAmount:    d.RentAmount,
		PaymentMethod: d.PaymentMethod,
		PDFRef:        d.PDFRef,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLease converts a model Lease to a domain Lease
func ToDomainLease(m models.Lease) domain.Lease {
	return domain.Lease{
		LeaseID:       m.LeaseID,
		TenantID:      m.TenantID,
		StartDate:     domain.DateOnly(m.StartDate),
		EndDate:       datePtr(m.EndDate),
		RentAmount:    m.RentAmount,
		PaymentMethod: m.PaymentMethod,
		PDFRef:        m.PDFRef,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaseSlice converts model Leases to domain Leases
func ToDomainLeaseSlice(ms []models.Lease) []domain.Lease {
	return mapSlice(ms, ToDomainLease)
}

// ToModelRentPayment converts a domain RentPayment to a model RentPayment
func ToModelRentPayment(d domain.RentPayment) models.RentPayment {
	return models.RentPayment{
		PaymentID:   d.PaymentID,
		LeaseID:     d.LeaseID,
		Year:        d.Year,
		Month:       d.Month,
		Amount:      d.Amount,
		IsConfirmed: d.IsConfirmed,
		ConfirmedAt: d.ConfirmedAt,
		ConfirmedBy: d.ConfirmedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRentPayment converts a model RentPayment to a domain RentPayment
func ToDomainRentPayment(m models.RentPayment) domain.RentPayment {
	return domain.RentPayment{
		PaymentID:   m.PaymentID,
		LeaseID:     m.LeaseID,
		Year:        m.Year,
		Month:       m.Month,
		Amount:      m.Amount,
		IsConfirmed: m.IsConfirmed,
		ConfirmedAt: utcPtr(m.ConfirmedAt),
		ConfirmedBy: m.ConfirmedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRentPaymentSlice converts model RentPayments to domain RentPayments
func ToDomainRentPaymentSlice(ms []models.RentPayment) []domain.RentPayment {
	return mapSlice(ms, ToDomainRentPayment)
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		BuildingID:      d.BuildingID,
		Category:        string(d.Category),
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		PaymentMethod:   d.PaymentMethod,
		Reference:       d.Reference,
		Source:          d.Source,
		PDFRef:          d.PDFRef,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		BuildingID:      m.BuildingID,
		Category:        domain.TransactionCategory(m.Category),
		Amount:          m.Amount,
		TransactionDate: domain.DateOnly(m.TransactionDate),
		PaymentMethod:   m.PaymentMethod,
		Reference:       m.Reference,
		Source:          m.Source,
		PDFRef:          m.PDFRef,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return mapSlice(ms, ToDomainTransaction)
}
