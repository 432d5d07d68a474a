package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
// base_price y gst_rate son NUMERIC; el codec de shopspring/decimal se
// registra en NewPool, así que el Scan entrega decimal.Decimal directo.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `id, company_id, party_id, name, description, sku, unit, hsn_code, base_price, gst_rate, created_at, updated_at`

// Create persiste un nuevo item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, company_id, party_id, name, description, sku, unit, hsn_code, base_price, gst_rate, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.PartyID, item.Name, item.Description,
		item.SKU, item.Unit, item.HSNCode, item.BasePrice, item.GSTRate,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene el item solo si pertenece a la empresa; nil, nil si no.
func (r *ItemRepo) GetByIDAndCompany(id, companyID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND company_id = $2`
	var it entity.Item
	var partyID, description, sku, unit, hsnCode *string
	err := r.pool.QueryRow(context.Background(), query, id, companyID).Scan(
		&it.ID, &it.CompanyID, &partyID, &it.Name, &description, &sku, &unit, &hsnCode,
		&it.BasePrice, &it.GSTRate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	it.PartyID = deref(partyID)
	it.Description = deref(description)
	it.SKU = deref(sku)
	it.Unit = deref(unit)
	it.HSNCode = deref(hsnCode)
	return &it, nil
}

// Update actualiza un item existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET party_id = NULLIF($2, ''), name = $3, description = $4, sku = $5,
			unit = $6, hsn_code = $7, base_price = $8, gst_rate = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.PartyID, item.Name, item.Description, item.SKU,
		item.Unit, item.HSNCode, item.BasePrice, item.GSTRate, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// ListByCompany items de una empresa, más recientes primero.
func (r *ItemRepo) ListByCompany(companyID string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		var partyID, description, sku, unit, hsnCode *string
		if err := rows.Scan(&it.ID, &it.CompanyID, &partyID, &it.Name, &description, &sku,
			&unit, &hsnCode, &it.BasePrice, &it.GSTRate, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.PartyID = deref(partyID)
		it.Description = deref(description)
		it.SKU = deref(sku)
		it.Unit = deref(unit)
		it.HSNCode = deref(hsnCode)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
