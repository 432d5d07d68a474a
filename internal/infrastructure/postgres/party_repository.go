package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL.
type PartyRepo struct {
	pool *pgxpool.Pool
}

// NewPartyRepository construye el adaptador de persistencia para suppliers.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepo {
	return &PartyRepo{pool: pool}
}

const partyColumns = `id, company_id, name, gstin, phone, email, address, state_code, is_registered_gst, created_at, updated_at`

// Create persiste un nuevo supplier.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO parties (id, company_id, name, gstin, phone, email, address, state_code, is_registered_gst, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		party.ID, party.CompanyID, party.Name, party.GSTIN, party.Phone, party.Email,
		party.Address, party.StateCode, party.IsRegisteredGST, party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene el supplier solo si pertenece a la empresa; nil, nil si no.
func (r *PartyRepo) GetByIDAndCompany(id, companyID string) (*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE id = $1 AND company_id = $2`
	var p entity.Party
	var gstin, phone, email, address, stateCode *string
	err := r.pool.QueryRow(context.Background(), query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &gstin, &phone, &email, &address, &stateCode,
		&p.IsRegisteredGST, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	p.GSTIN = deref(gstin)
	p.Phone = deref(phone)
	p.Email = deref(email)
	p.Address = deref(address)
	p.StateCode = deref(stateCode)
	return &p, nil
}

// Update actualiza un supplier existente.
func (r *PartyRepo) Update(party *entity.Party) error {
	query := `
		UPDATE parties SET name = $2, gstin = NULLIF($3, ''), phone = $4, email = $5,
			address = $6, state_code = $7, is_registered_gst = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		party.ID, party.Name, party.GSTIN, party.Phone, party.Email,
		party.Address, party.StateCode, party.IsRegisteredGST, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// ListByCompany suppliers de una empresa, más recientes primero.
func (r *PartyRepo) ListByCompany(companyID string) ([]*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		var gstin, phone, email, address, stateCode *string
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &gstin, &phone, &email, &address,
			&stateCode, &p.IsRegisteredGST, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		p.GSTIN = deref(gstin)
		p.Phone = deref(phone)
		p.Email = deref(email)
		p.Address = deref(address)
		p.StateCode = deref(stateCode)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un supplier por ID.
func (r *PartyRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	return nil
}
