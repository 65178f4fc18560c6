package postgres

import (
	"context"
	"fmt"
)

// seq conserva el orden de inserción; un UPDATE no lo modifica.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS clientes (
	seq        BIGSERIAL   NOT NULL,
	cpf        TEXT        PRIMARY KEY,
	nome       TEXT        NOT NULL,
	rg         TEXT        NOT NULL,
	cep        TEXT        NOT NULL,
	rua        TEXT        NOT NULL,
	bairro     TEXT        NOT NULL,
	cidade     TEXT        NOT NULL,
	estado     TEXT        NOT NULL,
	email      TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS clientes_seq_idx ON clientes (seq);`

// EnsureSchema crea la tabla clientes si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema clientes: %w", err)
	}
	return nil
}
