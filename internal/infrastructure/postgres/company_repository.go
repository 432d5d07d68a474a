package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, user_id, name, gstin, pan, address, state_code, email, phone, logo_url, gst_type, created_at, updated_at`

// Create persiste una nueva empresa. Devuelve domain.ErrGSTINAlreadyExists
// si el GSTIN ya está registrado (constraint único parcial).
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, user_id, name, gstin, pan, address, state_code, email, phone, logo_url, gst_type, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.UserID, company.Name, company.GSTIN, company.PAN,
		company.Address, company.StateCode, company.Email, company.Phone,
		company.LogoURL, company.GSTType, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGSTINAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene la empresa solo si pertenece al usuario.
// nil, nil cubre tanto "no existe" como "no es suya": el llamador no debe poder distinguirlos.
func (r *CompanyRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND user_id = $2`
	return r.scanOne(ctx, query, id, userID)
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	var gstin, pan, address, stateCode, email, phone, logoURL *string
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.UserID, &c.Name, &gstin, &pan, &address, &stateCode,
		&email, &phone, &logoURL, &c.GSTType, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	c.GSTIN = deref(gstin)
	c.PAN = deref(pan)
	c.Address = deref(address)
	c.StateCode = deref(stateCode)
	c.Email = deref(email)
	c.Phone = deref(phone)
	c.LogoURL = deref(logoURL)
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, gstin = NULLIF($3, ''), pan = $4, address = $5, state_code = $6,
			email = $7, phone = $8, logo_url = $9, gst_type = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.GSTIN, company.PAN, company.Address,
		company.StateCode, company.Email, company.Phone, company.LogoURL,
		company.GSTType, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGSTINAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListByUser devuelve las empresas del usuario, más recientes primero.
func (r *CompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		var gstin, pan, address, stateCode, email, phone, logoURL *string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &gstin, &pan, &address, &stateCode,
			&email, &phone, &logoURL, &c.GSTType, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		c.GSTIN = deref(gstin)
		c.PAN = deref(pan)
		c.Address = deref(address)
		c.StateCode = deref(stateCode)
		c.Email = deref(email)
		c.Phone = deref(phone)
		c.LogoURL = deref(logoURL)
		list = append(list, &c)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
