package pgsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBuildingRepository struct {
	BaseRepository
}

func newPgxBuildingRepository(pool *pgxpool.Pool) *PgxBuildingRepository {
	return &PgxBuildingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BuildingRepositoryFacade = (*PgxBuildingRepository)(nil)

const buildingColumns = `
	building_id, company_id, name, address, unit_count, year_built,
	purchase_price, current_value, remaining_debt,
	owner_contact, bank_contact, contractor_contact, notes,
	created_at, created_by, last_updated_at, last_updated_by`

const buildingSelect = "SELECT " + buildingColumns + " FROM buildings"

func (r *PgxBuildingRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	m, err := collectOne[models.Building](ctx, r.Pool, "building", buildingSelect+" WHERE building_id = $1", buildingID)
	if err != nil {
		return nil, err
	}
	b := mapping.ToDomainBuilding(m)
	return &b, nil
}

func (r *PgxBuildingRepository) ListBuildings(ctx context.Context, companyID string) ([]domain.Building, error) {
	ms, err := collect[models.Building](ctx, r.Pool, "list buildings", buildingSelect+" WHERE company_id = $1 ORDER BY name, building_id", companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBuildingSlice(ms), nil
}

func (r *PgxBuildingRepository) CountUnits(ctx context.Context, buildingID string) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM units WHERE building_id = $1`, buildingID).Scan(&n)
	if err != nil {
		return 0, translateError(err, "count units", "building")
	}
	return n, nil
}

func (r *PgxBuildingRepository) SaveBuilding(ctx context.Context, building domain.Building) error {
	m := mapping.ToModelBuilding(building)
	_, err := r.Pool.Exec(ctx, `INSERT INTO buildings (`+buildingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		m.BuildingID, m.CompanyID, m.Name, m.Address, m.UnitCount, m.YearBuilt,
		m.PurchasePrice, m.CurrentValue, m.RemainingDebt,
		m.OwnerContact, m.BankContact, m.ContractorContact, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save building", "building")
}

func (r *PgxBuildingRepository) UpdateBuilding(ctx context.Context, building domain.Building) error {
	m := mapping.ToModelBuilding(building)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE buildings
		SET name = $1, address = $2, unit_count = $3, year_built = $4,
			purchase_price = $5, current_value = $6, remaining_debt = $7,
			owner_contact = $8, bank_contact = $9, contractor_contact = $10, notes = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE building_id = $14`,
		m.Name, m.Address, m.UnitCount, m.YearBuilt,
		m.PurchasePrice, m.CurrentValue, m.RemainingDebt,
		m.OwnerContact, m.BankContact, m.ContractorContact, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.BuildingID,
	)
	if err != nil {
		return translateError(err, "update building", "building")
	}
	return requireAffected(tag, "building")
}

func (r *PgxBuildingRepository) DeleteBuilding(ctx context.Context, buildingID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM buildings WHERE building_id = $1`, buildingID)
	if err != nil {
		return translateError(err, "delete building", "building")
	}
	return requireAffected(tag, "building")
}

type PgxUnitRepository struct {
	BaseRepository
}

func newPgxUnitRepository(pool *pgxpool.Pool) *PgxUnitRepository {
	return &PgxUnitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

const unitColumns = `
	u.unit_id, u.building_id, u.unit_number, u.address, u.bedrooms, u.bathrooms, u.unit_type, u.notes,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by`

const unitSelect = "SELECT " + unitColumns + " FROM units u"

func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	m, err := collectOne[models.Unit](ctx, r.Pool, "unit", unitSelect+" WHERE u.unit_id = $1", unitID)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUnit(m)
	return &u, nil
}

func (r *PgxUnitRepository) ListUnitsByBuilding(ctx context.Context, buildingID string) ([]domain.Unit, error) {
	ms, err := collect[models.Unit](ctx, r.Pool, "list units", unitSelect+" WHERE u.building_id = $1 ORDER BY u.unit_number", buildingID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainUnitSlice(ms), nil
}

func (r *PgxUnitRepository) ListUnitsByCompany(ctx context.Context, companyID string) ([]domain.Unit, error) {
	ms, err := collect[models.Unit](ctx, r.Pool, "list units", unitSelect+`
		JOIN buildings b ON b.building_id = u.building_id
		WHERE b.company_id = $1
		ORDER BY b.name, u.unit_number`, companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainUnitSlice(ms), nil
}

func (r *PgxUnitRepository) CountTenants(ctx context.Context, unitID string) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM tenants WHERE unit_id = $1`, unitID).Scan(&n)
	if err != nil {
		return 0, translateError(err, "count tenants", "unit")
	}
	return n, nil
}

func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO units (unit_id, building_id, unit_number, address, bedrooms, bathrooms, unit_type, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.UnitID, m.BuildingID, m.UnitNumber, m.Address, m.Bedrooms, m.Bathrooms, m.UnitType, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save unit", "unit")
}

func (r *PgxUnitRepository) UpdateUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE units
		SET unit_number = $1, address = $2, bedrooms = $3, bathrooms = $4, unit_type = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE unit_id = $9`,
		m.UnitNumber, m.Address, m.Bedrooms, m.Bathrooms, m.UnitType, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.UnitID,
	)
	if err != nil {
		return translateError(err, "update unit", "unit")
	}
	return requireAffected(tag, "unit")
}

func (r *PgxUnitRepository) DeleteUnit(ctx context.Context, unitID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM units WHERE unit_id = $1`, unitID)
	if err != nil {
		return translateError(err, "delete unit", "unit")
	}
	return requireAffected(tag, "unit")
}
