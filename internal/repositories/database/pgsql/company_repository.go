package pgsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelect = `
SELECT company_id, name, access_code, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM companies
`

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	m, err := collectOne[models.Company](ctx, r.Pool, "company", companySelect+" WHERE company_id = $1", companyID)
	if err != nil {
		return nil, err
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) FindCompanyByAccessCode(ctx context.Context, accessCode string) (*domain.Company, error) {
	m, err := collectOne[models.Company](ctx, r.Pool, "company", companySelect+" WHERE access_code = $1", accessCode)
	if err != nil {
		return nil, err
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO companies (company_id, name, access_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.CompanyID, m.Name, m.AccessCode, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save company", "company")
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE companies
		SET name = $1, access_code = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $6`,
		m.Name, m.AccessCode, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.CompanyID,
	)
	if err != nil {
		return translateError(err, "update company", "company")
	}
	return requireAffected(tag, "company")
}

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
SELECT user_id, company_id, email, name, password_hash, role, is_verified, is_approved, last_login_at,
	created_at, created_by, last_updated_at, last_updated_by
FROM users
`

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	m, err := collectOne[models.User](ctx, r.Pool, "user", userSelect+" WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m, err := collectOne[models.User](ctx, r.Pool, "user", userSelect+" WHERE email = $1", email)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	ms, err := collect[models.User](ctx, r.Pool, "list users", userSelect+" WHERE company_id = $1 ORDER BY name", companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (user_id, company_id, email, name, password_hash, role, is_verified, is_approved, last_login_at,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.UserID, m.CompanyID, m.Email, m.Name, m.PasswordHash, m.Role, m.IsVerified, m.IsApproved, m.LastLoginAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save user", "user")
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET name = $1, password_hash = $2, role = $3, is_verified = $4, is_approved = $5, last_login_at = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $9`,
		m.Name, m.PasswordHash, m.Role, m.IsVerified, m.IsApproved, m.LastLoginAt,
		m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return translateError(err, "update user", "user")
	}
	return requireAffected(tag, "user")
}

type PgxAccessRequestRepository struct {
	BaseRepository
}

func newPgxAccessRequestRepository(pool *pgxpool.Pool) *PgxAccessRequestRepository {
	return &PgxAccessRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccessRequestRepositoryFacade = (*PgxAccessRequestRepository)(nil)

const accessRequestSelect = `
SELECT ar.request_id, ar.company_id, ar.user_id, ar.status, ar.message, ar.decided_by, ar.decided_at,
	ar.created_at, ar.created_by, ar.last_updated_at, ar.last_updated_by,
	u.email AS user_email, u.name AS user_name
FROM access_requests ar
JOIN users u ON u.user_id = ar.user_id
`

func (r *PgxAccessRequestRepository) FindAccessRequestByID(ctx context.Context, requestID string) (*domain.AccessRequest, error) {
	m, err := collectOne[models.AccessRequestWithUser](ctx, r.Pool, "access request", accessRequestSelect+" WHERE ar.request_id = $1", requestID)
	if err != nil {
		return nil, err
	}
	req := mapping.ToDomainAccessRequest(m)
	return &req, nil
}

func (r *PgxAccessRequestRepository) ListAccessRequests(ctx context.Context, companyID string, status *domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	f := &filterBuilder{}
	f.add("ar.company_id = ?", companyID)
	if status != nil {
		f.add("ar.status = ?", string(*status))
	}
	ms, err := collect[models.AccessRequestWithUser](ctx, r.Pool, "list access requests",
		accessRequestSelect+f.where()+" ORDER BY ar.created_at DESC", f.args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccessRequestSlice(ms), nil
}

func (r *PgxAccessRequestRepository) SaveAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	m := mapping.ToModelAccessRequest(req)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO access_requests (request_id, company_id, user_id, status, message, decided_by, decided_at,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.RequestID, m.CompanyID, m.UserID, m.Status, m.Message, m.DecidedBy, m.DecidedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save access request", "access request")
}

func (r *PgxAccessRequestRepository) UpdateAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	m := mapping.ToModelAccessRequest(req)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE access_requests
		SET status = $1, decided_by = $2, decided_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE request_id = $6`,
		m.Status, m.DecidedBy, m.DecidedAt, m.LastUpdatedAt, m.LastUpdatedBy, m.RequestID,
	)
	if err != nil {
		return translateError(err, "update access request", "access request")
	}
	return requireAffected(tag, "access request")
}
