// seed_clientes importa clientes desde un CSV separado por ";" al almacén configurado.
//
// Uso: go run ./cmd/seed_clientes [-encoding latin1|utf8] [-dry-run] clientes.csv
//
// La primera fila es la cabecera con los nombres del API (CPF;Nome;RG;CEP;Rua;Bairro;Cidade;Estado;Email),
// en cualquier orden. Cada fila pasa por las mismas validaciones que POST /clientes; los CPF ya
// cadastrados se omiten. La importación corre en una sola transacción. Con STORE_DRIVER=memory
// solo se valida (no hay dónde persistir).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
	"github.com/jhoicas/brdocs-api/internal/domain"
	"github.com/jhoicas/brdocs-api/internal/domain/repository"
	"github.com/jhoicas/brdocs-api/internal/infrastructure/postgres"
	"github.com/jhoicas/brdocs-api/pkg/config"
	"github.com/jhoicas/brdocs-api/pkg/logger"
)

var columns = []string{"CPF", "Nome", "RG", "CEP", "Rua", "Bairro", "Cidade", "Estado", "Email"}

// row fila leída del CSV con su número de línea (para los mensajes).
type row struct {
	line     int
	customer dto.Customer
}

type report struct {
	imported int
	skipped  int
	invalid  int
}

func main() {
	encoding := flag.String("encoding", "latin1", "codificación del CSV: latin1 | utf8")
	dryRun := flag.Bool("dry-run", false, "solo validar, sin escribir")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_clientes [-encoding latin1|utf8] [-dry-run] clientes.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := readCustomers(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	checker := validation.New()
	if *dryRun || cfg.Store.Driver != config.StorePostgres {
		rep := validateOnly(checker, rows)
		log.Info().Int("validos", rep.imported).Int("invalidos", rep.invalid).Msg("validación terminada (sin escritura)")
		return
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema")
	}

	// Todo o nada: un error inesperado revierte las filas ya insertadas.
	var rep report
	err = postgres.NewTxRunner(pool).Run(ctx, func(customers repository.CustomerRepository) error {
		var err error
		rep, err = importCustomers(ctx, usecase.NewCustomerUseCase(customers), checker, rows)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("importar clientes")
	}
	log.Info().
		Int("importados", rep.imported).
		Int("omitidos", rep.skipped).
		Int("invalidos", rep.invalid).
		Msg("importación terminada")
}

// readCustomers decodifica el CSV (Latin-1 por defecto, como lo exportan las planillas legadas).
func readCustomers(r io.Reader, encoding string) ([]row, error) {
	switch strings.ToLower(encoding) {
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "utf8", "utf-8":
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		line, _ := cr.FieldPos(0)
		get := func(col string) string { return strings.TrimSpace(rec[index[col]]) }
		rows = append(rows, row{
			line: line,
			customer: dto.Customer{
				CPF:    get("CPF"),
				Nome:   get("Nome"),
				RG:     get("RG"),
				CEP:    get("CEP"),
				Rua:    get("Rua"),
				Bairro: get("Bairro"),
				Cidade: get("Cidade"),
				Estado: get("Estado"),
				Email:  get("Email"),
			},
		})
	}
	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		for _, col := range columns {
			if strings.EqualFold(h, col) {
				index[col] = i
			}
		}
	}
	var missing []string
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("cabecera sin columnas: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func validateOnly(checker *validation.Checker, rows []row) report {
	var rep report
	for _, r := range rows {
		if err := checker.Customer(r.customer); err != nil {
			rep.invalid++
			logInvalid(r, err)
			continue
		}
		rep.imported++
	}
	return rep
}

// importCustomers inserta las filas válidas. Duplicados e inválidos se cuentan y se siguen;
// cualquier otro error corta la importación.
func importCustomers(ctx context.Context, uc *usecase.CustomerUseCase, checker *validation.Checker, rows []row) (report, error) {
	var rep report
	for _, r := range rows {
		if err := checker.Customer(r.customer); err != nil {
			rep.invalid++
			logInvalid(r, err)
			continue
		}
		if _, err := uc.Create(ctx, r.customer); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				rep.skipped++
				continue
			}
			return rep, fmt.Errorf("línea %d: %w", r.line, err)
		}
		rep.imported++
	}
	return rep, nil
}

func logInvalid(r row, err error) {
	fmt.Fprintf(os.Stderr, "línea %d (%s): %v\n", r.line, r.customer.CPF, err)
}
