package dto

import (
	"fmt"
	"strings"
)

// CPFRequest body de POST /valida-cpf.
type CPFRequest struct {
	CPF string `json:"cpf" validate:"required,cpf_format"`
}

// CEPResponse respuesta de GET /valida-cep/:cep. Dados es *CEPAddress o *CEPError:
// el resultado del proveedor se reenvía tal cual, éxito o fallo.
type CEPResponse struct {
	Dados any `json:"dados"`
}

// CEPAddress dirección resuelta por un proveedor de CEP.
type CEPAddress struct {
	CEP          string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Service      string `json:"service"`
}

// Tipos de CEPError.
const (
	CEPErrorService    = "service_error"
	CEPErrorValidation = "validation_error"
)

// CEPError error devuelto por la consulta de CEP; se serializa en la respuesta.
type CEPError struct {
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Errors  []ServiceError `json:"errors"`
}

// ServiceError fallo de un proveedor concreto.
type ServiceError struct {
	Message string `json:"message"`
	Service string `json:"service"`
}

// Error implementa error.
func (e *CEPError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", se.Service, se.Message))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}
