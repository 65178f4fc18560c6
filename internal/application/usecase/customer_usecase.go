package usecase

import (
	"context"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/domain/repository"
)

// CustomerUseCase casos de uso del cadastro de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve todos los clientes en orden de inserción.
func (uc *CustomerUseCase) List(ctx context.Context) (*dto.CustomerList, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerList{Clientes: make([]dto.Customer, 0, len(list))}
	for _, c := range list {
		out.Clientes = append(out.Clientes, dto.CustomerFromEntity(c))
	}
	return out, nil
}

// Get obtiene un cliente por CPF (domain.ErrNotFound si no existe).
func (uc *CustomerUseCase) Get(ctx context.Context, cpf string) (*dto.Customer, error) {
	c, err := uc.repo.FindByTaxID(ctx, cpf)
	if err != nil {
		return nil, err
	}
	out := dto.CustomerFromEntity(c)
	return &out, nil
}

// Create registra un cliente nuevo (domain.ErrConflict si el CPF ya existe).
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.Customer) (*dto.Customer, error) {
	if err := uc.repo.Insert(ctx, in.ToEntity()); err != nil {
		return nil, err
	}
	return &in, nil
}

// Update reemplaza el cliente identificado por cpf con in.
// domain.ErrNotFound si no existe; domain.ErrKeyMismatch si in.CPF != cpf.
func (uc *CustomerUseCase) Update(ctx context.Context, cpf string, in dto.Customer) (*dto.Customer, error) {
	if err := uc.repo.Update(ctx, cpf, in.ToEntity()); err != nil {
		return nil, err
	}
	return &in, nil
}

// Delete elimina el cliente (domain.ErrNotFound si no existe).
func (uc *CustomerUseCase) Delete(ctx context.Context, cpf string) error {
	return uc.repo.Delete(ctx, cpf)
}
