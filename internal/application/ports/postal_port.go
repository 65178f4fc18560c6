package ports

import (
	"context"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
)

// PostalLookup puerto de salida para la consulta de direcciones por CEP.
type PostalLookup interface {
	// Lookup resuelve un CEP de 8 dígitos. Cuando los proveedores responden pero no
	// resuelven la dirección, el error es *dto.CEPError y debe reenviarse al cliente tal cual;
	// cualquier otro error es una falla interna.
	Lookup(ctx context.Context, cep string) (*dto.CEPAddress, error)
}
