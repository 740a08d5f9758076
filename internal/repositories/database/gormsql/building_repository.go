package gormsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormBuildingRepository struct {
	BaseRepository
}

func newGormBuildingRepository(db *gorm.DB) *GormBuildingRepository {
	return &GormBuildingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BuildingRepositoryFacade = (*GormBuildingRepository)(nil)

func (r *GormBuildingRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	m, err := findOne[models.Building](ctx, r.DB, "building", "building_id = ?", buildingID)
	if err != nil {
		return nil, err
	}
	b := mapping.ToDomainBuilding(m)
	return &b, nil
}

func (r *GormBuildingRepository) ListBuildings(ctx context.Context, companyID string) ([]domain.Building, error) {
	var ms []models.Building
	if err := r.db(ctx).Where("company_id = ?", companyID).Order("name").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list buildings", "building")
	}
	return mapping.ToDomainBuildingSlice(ms), nil
}

func (r *GormBuildingRepository) CountUnits(ctx context.Context, buildingID string) (int, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Unit{}).Where("building_id = ?", buildingID).Count(&n).Error; err != nil {
		return 0, translateError(err, "count units", "unit")
	}
	return int(n), nil
}

func (r *GormBuildingRepository) SaveBuilding(ctx context.Context, building domain.Building) error {
	m := mapping.ToModelBuilding(building)
	return translateError(r.db(ctx).Create(&m).Error, "save building", "building")
}

func (r *GormBuildingRepository) UpdateBuilding(ctx context.Context, building domain.Building) error {
	m := mapping.ToModelBuilding(building)
	res := r.db(ctx).Model(&models.Building{}).Where("building_id = ?", m.BuildingID).Updates(map[string]any{
		"name":               m.Name,
		"address":            m.Address,
		"unit_count":         m.UnitCount,
		"year_built":         m.YearBuilt,
		"purchase_price":     m.PurchasePrice,
		"current_value":      m.CurrentValue,
		"remaining_debt":     m.RemainingDebt,
		"owner_contact":      m.OwnerContact,
		"bank_contact":       m.BankContact,
		"contractor_contact": m.ContractorContact,
		"notes":              m.Notes,
		"last_updated_at":    m.LastUpdatedAt,
		"last_updated_by":    m.LastUpdatedBy,
	})
	return requireAffected(res, "update building", "building")
}

func (r *GormBuildingRepository) DeleteBuilding(ctx context.Context, buildingID string) error {
	res := r.db(ctx).Where("building_id = ?", buildingID).Delete(&models.Building{})
	return requireAffected(res, "delete building", "building")
}

type GormUnitRepository struct {
	BaseRepository
}

func newGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UnitRepositoryFacade = (*GormUnitRepository)(nil)

func (r *GormUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	m, err := findOne[models.Unit](ctx, r.DB, "unit", "unit_id = ?", unitID)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUnit(m)
	return &u, nil
}

func (r *GormUnitRepository) ListUnitsByBuilding(ctx context.Context, buildingID string) ([]domain.Unit, error) {
	var ms []models.Unit
	if err := r.db(ctx).Where("building_id = ?", buildingID).Order("unit_number").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list units", "unit")
	}
	return mapping.ToDomainUnitSlice(ms), nil
}

func (r *GormUnitRepository) ListUnitsByCompany(ctx context.Context, companyID string) ([]domain.Unit, error) {
	var ms []models.Unit
	err := r.db(ctx).Table("units u").Select("u.*").
		Joins("JOIN buildings b ON b.building_id = u.building_id").
		Where("b.company_id = ?", companyID).
		Order("b.name, u.unit_number").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "list units", "unit")
	}
	return mapping.ToDomainUnitSlice(ms), nil
}

func (r *GormUnitRepository) CountTenants(ctx context.Context, unitID string) (int, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Tenant{}).Where("unit_id = ?", unitID).Count(&n).Error; err != nil {
		return 0, translateError(err, "count tenants", "tenant")
	}
	return int(n), nil
}

func (r *GormUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	return translateError(r.db(ctx).Create(&m).Error, "save unit", "unit")
}

func (r *GormUnitRepository) UpdateUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	res := r.db(ctx).Model(&models.Unit{}).Where("unit_id = ?", m.UnitID).Updates(map[string]any{
		"unit_number":     m.UnitNumber,
		"address":         m.Address,
		"bedrooms":        m.Bedrooms,
		"bathrooms":       m.Bathrooms,
		"unit_type":       m.UnitType,
		"notes":           m.Notes,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update unit", "unit")
}

func (r *GormUnitRepository) DeleteUnit(ctx context.Context, unitID string) error {
	res := r.db(ctx).Where("unit_id = ?", unitID).Delete(&models.Unit{})
	return requireAffected(res, "delete unit", "unit")
}
