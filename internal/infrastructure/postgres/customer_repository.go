package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/brdocs-api/internal/domain"
	"github.com/jhoicas/brdocs-api/internal/domain/entity"
	"github.com/jhoicas/brdocs-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `cpf, nome, rg, cep, rua, bairro, cidade, estado, email`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.TaxID, &c.Name, &c.NationalRegistryNumber, &c.PostalCode,
		&c.Street, &c.District, &c.City, &c.State, &c.Email)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByTaxID obtiene un cliente por CPF.
func (r *CustomerRepo) FindByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE cpf = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// Insert persiste un nuevo cliente. ON CONFLICT evita abortar la transacción en curso
// cuando el CPF ya existe.
func (r *CustomerRepo) Insert(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO clientes (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (cpf) DO NOTHING`
	tag, err := r.q.Exec(ctx, query,
		c.TaxID, c.Name, c.NationalRegistryNumber, c.PostalCode,
		c.Street, c.District, c.City, c.State, c.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Update reemplaza todos los campos del cliente; seq no cambia, así que conserva su posición.
func (r *CustomerRepo) Update(ctx context.Context, taxID string, c *entity.Customer) error {
	if c.TaxID != taxID {
		if _, err := r.FindByTaxID(ctx, taxID); err != nil {
			return err
		}
		return domain.ErrKeyMismatch
	}
	query := `
		UPDATE clientes SET nome = $2, rg = $3, cep = $4, rua = $5, bairro = $6,
			cidade = $7, estado = $8, email = $9, updated_at = now()
		WHERE cpf = $1`
	tag, err := r.q.Exec(ctx, query,
		taxID, c.Name, c.NationalRegistryNumber, c.PostalCode,
		c.Street, c.District, c.City, c.State, c.Email,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por CPF.
func (r *CustomerRepo) Delete(ctx context.Context, taxID string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE cpf = $1`, taxID)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los clientes en orden de inserción.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Seed inserta los registros indicados si aún no existen.
func (r *CustomerRepo) Seed(ctx context.Context, customers ...entity.Customer) error {
	query := `
		INSERT INTO clientes (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (cpf) DO NOTHING`
	for _, c := range customers {
		_, err := r.q.Exec(ctx, query,
			c.TaxID, c.Name, c.NationalRegistryNumber, c.PostalCode,
			c.Street, c.District, c.City, c.State, c.Email,
		)
		if err != nil {
			return fmt.Errorf("seed cliente %s: %w", c.TaxID, err)
		}
	}
	return nil
}
