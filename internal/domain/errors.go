package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrConflict     = errors.New("recurso já cadastrado")
	ErrKeyMismatch  = errors.New("o CPF no corpo da requisição deve ser o mesmo que o da URL")
	ErrInvalidInput = errors.New("entrada inválida")
)
