package dto

import "github.com/jhoicas/brdocs-api/internal/domain/entity"

// Customer cuerpo de POST/PUT /clientes y representación en respuestas.
// Los nombres JSON son los del contrato público del API.
type Customer struct {
	CPF    string `json:"CPF" validate:"required,cpf_format"`
	Nome   string `json:"Nome" validate:"required"`
	RG     string `json:"RG" validate:"required"`
	CEP    string `json:"CEP" validate:"required"`
	Rua    string `json:"Rua" validate:"required"`
	Bairro string `json:"Bairro" validate:"required"`
	Cidade string `json:"Cidade" validate:"required"`
	Estado string `json:"Estado" validate:"required"`
	Email  string `json:"Email" validate:"required,email"`
}

// CustomerList respuesta de GET /clientes.
type CustomerList struct {
	Clientes []Customer `json:"clientes"`
}

// ToEntity convierte el DTO a entidad de dominio.
func (c Customer) ToEntity() *entity.Customer {
	return &entity.Customer{
		TaxID:                  c.CPF,
		Name:                   c.Nome,
		NationalRegistryNumber: c.RG,
		PostalCode:             c.CEP,
		Street:                 c.Rua,
		District:               c.Bairro,
		City:                   c.Cidade,
		State:                  c.Estado,
		Email:                  c.Email,
	}
}

// CustomerFromEntity construye el DTO de respuesta.
func CustomerFromEntity(e *entity.Customer) Customer {
	return Customer{
		CPF:    e.TaxID,
		Nome:   e.Name,
		RG:     e.NationalRegistryNumber,
		CEP:    e.PostalCode,
		Rua:    e.Street,
		Bairro: e.District,
		Cidade: e.City,
		Estado: e.State,
		Email:  e.Email,
	}
}
