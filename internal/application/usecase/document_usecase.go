package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/ports"
	"github.com/jhoicas/brdocs-api/pkg/brdoc"
)

// Mensajes de resultado de las validaciones de documentos.
const (
	MsgCPFValid    = "CPF Válido"
	MsgCPFInvalid  = "CPF Inválido"
	MsgCNPJValid   = "CNPJ Válido"
	MsgCNPJInvalid = "CNPJ Inválido"
	MsgCNHValid    = "CNH Válido"
	MsgCNHInvalid  = "CNH Inválido"
)

// DocumentUseCase valida documentos y consulta CEP.
type DocumentUseCase struct {
	postal ports.PostalLookup
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(postal ports.PostalLookup) *DocumentUseCase {
	return &DocumentUseCase{postal: postal}
}

// ValidateCPF comprueba los dígitos verificadores de un CPF con forma ya validada.
func (uc *DocumentUseCase) ValidateCPF(cpf string) dto.MessageResponse {
	return verdict(brdoc.IsCPF(cpf), MsgCPFValid, MsgCPFInvalid)
}

// ValidateCNPJ comprueba los dígitos verificadores de un CNPJ.
func (uc *DocumentUseCase) ValidateCNPJ(cnpj string) dto.MessageResponse {
	return verdict(brdoc.IsCNPJ(cnpj), MsgCNPJValid, MsgCNPJInvalid)
}

// ValidateCNH comprueba los dígitos verificadores de una CNH.
func (uc *DocumentUseCase) ValidateCNH(cnh string) dto.MessageResponse {
	return verdict(brdoc.IsCNH(cnh), MsgCNHValid, MsgCNHInvalid)
}

func verdict(ok bool, valid, invalid string) dto.MessageResponse {
	if ok {
		return dto.MessageResponse{Mensagem: valid}
	}
	return dto.MessageResponse{Mensagem: invalid}
}

// LookupCEP consulta la dirección. Si los proveedores no la resuelven, su error viaja
// dentro de Dados y no como error: el contrato del endpoint responde 200 en ambos casos.
func (uc *DocumentUseCase) LookupCEP(ctx context.Context, cep string) (*dto.CEPResponse, error) {
	addr, err := uc.postal.Lookup(ctx, cep)
	if err != nil {
		var cepErr *dto.CEPError
		if errors.As(err, &cepErr) {
			return &dto.CEPResponse{Dados: cepErr}, nil
		}
		return nil, fmt.Errorf("consultar CEP %s: %w", cep, err)
	}
	return &dto.CEPResponse{Dados: addr}, nil
}
