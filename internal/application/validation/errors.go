package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
)

// Error representa uno o varios fallos de forma en la entrada (HTTP 400).
type Error struct {
	// Op operación donde falló la validación (ej. "clientes.create").
	Op     string
	Fields []dto.FieldError
}

// Error implementa la interfaz error.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Campo, f.Mensagem))
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: validação falhou: %s", e.Op, strings.Join(parts, "; "))
	}
	return "validação falhou: " + strings.Join(parts, "; ")
}

// IsValidationError indica si err (o alguno que envuelva) es un *Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

func newError(op, field, message string) *Error {
	return &Error{Op: op, Fields: []dto.FieldError{{Campo: field, Mensagem: message}}}
}
