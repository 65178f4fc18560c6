package repository

import (
	"context"

	"github.com/jhoicas/brdocs-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer, indexado por CPF.
// Las implementaciones devuelven los errores de dominio (domain.ErrNotFound,
// domain.ErrConflict, domain.ErrKeyMismatch) para que el dispatcher los traduzca.
type CustomerRepository interface {
	// FindByTaxID devuelve domain.ErrNotFound si no existe.
	FindByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)
	// Insert devuelve domain.ErrConflict si el CPF ya está registrado.
	Insert(ctx context.Context, customer *entity.Customer) error
	// Update reemplaza el registro completo conservando su posición.
	// domain.ErrNotFound si taxID no existe; domain.ErrKeyMismatch si customer.TaxID != taxID.
	Update(ctx context.Context, taxID string, customer *entity.Customer) error
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, taxID string) error
	// List devuelve una copia de todos los registros en orden de inserción.
	List(ctx context.Context) ([]*entity.Customer, error)
}
