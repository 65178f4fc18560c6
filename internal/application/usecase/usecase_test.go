package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/domain"
	"github.com/jhoicas/brdocs-api/internal/domain/entity"
	"github.com/jhoicas/brdocs-api/internal/infrastructure/memory"
)

type stubLookup struct {
	addr *dto.CEPAddress
	err  error
}

func (s stubLookup) Lookup(context.Context, string) (*dto.CEPAddress, error) {
	return s.addr, s.err
}

func TestDocumentUseCase_Validaciones(t *testing.T) {
	uc := usecase.NewDocumentUseCase(stubLookup{})

	assert.Equal(t, usecase.MsgCPFValid, uc.ValidateCPF("111.444.777-35").Mensagem)
	assert.Equal(t, usecase.MsgCPFInvalid, uc.ValidateCPF("111.111.111-11").Mensagem)
	assert.Equal(t, usecase.MsgCNPJValid, uc.ValidateCNPJ("11.222.333/0001-81").Mensagem)
	assert.Equal(t, usecase.MsgCNPJInvalid, uc.ValidateCNPJ("11.222.333/0001-82").Mensagem)
	assert.Equal(t, usecase.MsgCNHValid, uc.ValidateCNH("12345678900").Mensagem)
	assert.Equal(t, usecase.MsgCNHInvalid, uc.ValidateCNH("12345678901").Mensagem)
}

func TestDocumentUseCase_LookupCEP(t *testing.T) {
	ctx := context.Background()
	addr := &dto.CEPAddress{CEP: "01001000", City: "São Paulo"}

	out, err := usecase.NewDocumentUseCase(stubLookup{addr: addr}).LookupCEP(ctx, "01001000")
	require.NoError(t, err)
	assert.Same(t, addr, out.Dados)

	cepErr := &dto.CEPError{Name: "CepPromiseError", Type: dto.CEPErrorService}
	out, err = usecase.NewDocumentUseCase(stubLookup{err: cepErr}).LookupCEP(ctx, "99999999")
	require.NoError(t, err, "el error del proveedor se reenvía como datos")
	assert.Same(t, cepErr, out.Dados)

	boom := errors.New("boom")
	_, err = usecase.NewDocumentUseCase(stubLookup{err: boom}).LookupCEP(ctx, "01001000")
	assert.ErrorIs(t, err, boom)
}

func sampleCustomer(cpf string) dto.Customer {
	return dto.Customer{
		CPF: cpf, Nome: "João da Silva", RG: "11.222.333-4", CEP: "01001000", Rua: "Praça da Sé",
		Bairro: "Sé", Cidade: "São Paulo", Estado: "SP", Email: "joao@exemplo.com",
	}
}

func TestCustomerUseCase_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository(entity.SeedCustomer()))

	in := sampleCustomer("111.444.777-35")
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, *created)

	got, err := uc.Get(ctx, in.CPF)
	require.NoError(t, err)
	assert.Equal(t, in, *got)

	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	upd := in
	upd.Cidade = "Santos"
	_, err = uc.Update(ctx, in.CPF, upd)
	require.NoError(t, err)

	_, err = uc.Update(ctx, in.CPF, sampleCustomer("999.999.999-99"))
	assert.ErrorIs(t, err, domain.ErrKeyMismatch)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Clientes, 2)
	assert.Equal(t, "123.456.789-00", list.Clientes[0].CPF)
	assert.Equal(t, "Santos", list.Clientes[1].Cidade)

	require.NoError(t, uc.Delete(ctx, in.CPF))
	assert.ErrorIs(t, uc.Delete(ctx, in.CPF), domain.ErrNotFound)
	_, err = uc.Get(ctx, in.CPF)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
