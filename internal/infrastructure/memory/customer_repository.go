package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/brdocs-api/internal/domain"
	"github.com/jhoicas/brdocs-api/internal/domain/entity"
	"github.com/jhoicas/brdocs-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo almacén en memoria de clientes, en orden de inserción.
// Vive lo que dura el proceso; no hay persistencia.
type CustomerRepo struct {
	mu        sync.RWMutex
	customers []entity.Customer
}

// NewCustomerRepository construye el almacén con los registros iniciales indicados.
func NewCustomerRepository(seed ...entity.Customer) *CustomerRepo {
	r := &CustomerRepo{customers: make([]entity.Customer, 0, len(seed))}
	r.customers = append(r.customers, seed...)
	return r
}

// indexOf devuelve -1 si no existe. Requiere el lock tomado.
func (r *CustomerRepo) indexOf(taxID string) int {
	for i := range r.customers {
		if r.customers[i].TaxID == taxID {
			return i
		}
	}
	return -1
}

// FindByTaxID busca un cliente por CPF.
func (r *CustomerRepo) FindByTaxID(_ context.Context, taxID string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(taxID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	c := r.customers[i]
	return &c, nil
}

// Insert agrega el cliente al final si el CPF no está registrado.
func (r *CustomerRepo) Insert(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(customer.TaxID) >= 0 {
		return domain.ErrConflict
	}
	r.customers = append(r.customers, *customer)
	return nil
}

// Update reemplaza el registro en su misma posición.
func (r *CustomerRepo) Update(_ context.Context, taxID string, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(taxID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if customer.TaxID != taxID {
		return domain.ErrKeyMismatch
	}
	r.customers[i] = *customer
	return nil
}

// Delete elimina el cliente por CPF.
func (r *CustomerRepo) Delete(_ context.Context, taxID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(taxID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.customers = append(r.customers[:i], r.customers[i+1:]...)
	return nil
}

// List devuelve una foto de los registros al momento de la llamada.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Customer, 0, len(r.customers))
	for i := range r.customers {
		c := r.customers[i]
		out = append(out, &c)
	}
	return out, nil
}
