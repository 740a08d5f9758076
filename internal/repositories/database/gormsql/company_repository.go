package gormsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormCompanyRepository struct {
	BaseRepository
}

func newGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CompanyRepositoryFacade = (*GormCompanyRepository)(nil)

func (r *GormCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	m, err := findOne[models.Company](ctx, r.DB, "company", "company_id = ?", companyID)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCompany(m)
	return &c, nil
}

func (r *GormCompanyRepository) FindCompanyByAccessCode(ctx context.Context, accessCode string) (*domain.Company, error) {
	m, err := findOne[models.Company](ctx, r.DB, "company", "access_code = ?", accessCode)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCompany(m)
	return &c, nil
}

func (r *GormCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	return translateError(r.db(ctx).Create(&m).Error, "save company", "company")
}

func (r *GormCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	res := r.db(ctx).Model(&models.Company{}).Where("company_id = ?", m.CompanyID).Updates(map[string]any{
		"name":            m.Name,
		"access_code":     m.AccessCode,
		"is_active":       m.IsActive,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update company", "company")
}

type GormUserRepository struct {
	BaseRepository
}

func newGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*GormUserRepository)(nil)

func (r *GormUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	m, err := findOne[models.User](ctx, r.DB, "user", "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *GormUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m, err := findOne[models.User](ctx, r.DB, "user", "email = ?", email)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *GormUserRepository) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	var ms []models.User
	if err := r.db(ctx).Where("company_id = ?", companyID).Order("name").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list users", "user")
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *GormUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	return translateError(r.db(ctx).Create(&m).Error, "save user", "user")
}

func (r *GormUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	res := r.db(ctx).Model(&models.User{}).Where("user_id = ?", m.UserID).Updates(map[string]any{
		"company_id":      m.CompanyID,
		"email":           m.Email,
		"name":            m.Name,
		"password_hash":   m.PasswordHash,
		"role":            m.Role,
		"is_verified":     m.IsVerified,
		"is_approved":     m.IsApproved,
		"last_login_at":   m.LastLoginAt,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update user", "user")
}

type GormAccessRequestRepository struct {
	BaseRepository
}

func newGormAccessRequestRepository(db *gorm.DB) *GormAccessRequestRepository {
	return &GormAccessRequestRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AccessRequestRepositoryFacade = (*GormAccessRequestRepository)(nil)

func (r *GormAccessRequestRepository) withUser(ctx context.Context) *gorm.DB {
	return r.db(ctx).Table("access_requests ar").
		Select("ar.*, u.email AS user_email, u.name AS user_name").
		Joins("JOIN users u ON u.user_id = ar.user_id")
}

func (r *GormAccessRequestRepository) FindAccessRequestByID(ctx context.Context, requestID string) (*domain.AccessRequest, error) {
	var m models.AccessRequestWithUser
	if err := r.withUser(ctx).Where("ar.request_id = ?", requestID).Take(&m).Error; err != nil {
		return nil, translateError(err, "find access request", "access request")
	}
	ar := mapping.ToDomainAccessRequest(m)
	return &ar, nil
}

func (r *GormAccessRequestRepository) ListAccessRequests(ctx context.Context, companyID string, status *domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	q := r.withUser(ctx).Where("ar.company_id = ?", companyID)
	if status != nil {
		q = q.Where("ar.status = ?", string(*status))
	}
	var ms []models.AccessRequestWithUser
	if err := q.Order("ar.created_at DESC").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list access requests", "access request")
	}
	return mapping.ToDomainAccessRequestSlice(ms), nil
}

func (r *GormAccessRequestRepository) SaveAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	m := mapping.ToModelAccessRequest(req)
	return translateError(r.db(ctx).Create(&m).Error, "save access request", "access request")
}

func (r *GormAccessRequestRepository) UpdateAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	m := mapping.ToModelAccessRequest(req)
	res := r.db(ctx).Model(&models.AccessRequest{}).Where("request_id = ?", m.RequestID).Updates(map[string]any{
		"status":          m.Status,
		"message":         m.Message,
		"decided_by":      m.DecidedBy,
		"decided_at":      m.DecidedAt,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update access request", "access request")
}
