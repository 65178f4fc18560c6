// Package postal resuelve direcciones por CEP consultando proveedores públicos en paralelo.
package postal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/ports"
	"github.com/jhoicas/brdocs-api/pkg/brdoc"
	"github.com/jhoicas/brdocs-api/pkg/config"
)

var _ ports.PostalLookup = (*MultiProvider)(nil)

// ErrMalformedResponse el proveedor respondió con un cuerpo que no se puede interpretar.
var ErrMalformedResponse = errors.New("postal: resposta malformada do provedor")

const (
	errorName         = "CepPromiseError"
	allFailedMessage  = "Todos os serviços de CEP retornaram erro."
	invalidCEPMessage = "CEP deve conter exatamente 8 caracteres."
	validationService = "cep_validation"
)

// Provider un servicio de consulta de CEP.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, cep string) (*dto.CEPAddress, error)
}

// Observer recibe el resultado de cada consulta por proveedor (ok, service_error, malformed).
type Observer interface {
	ObservePostalLookup(service, outcome string)
}

// serviceError fallo atribuible al proveedor: CEP inexistente, HTTP no exitoso o error de red.
// Se reenvía al cliente como parte de dto.CEPError.
type serviceError struct {
	service string
	message string
}

func (e *serviceError) Error() string {
	return fmt.Sprintf("%s: %s", e.service, e.message)
}

// MultiProvider consulta todos los proveedores a la vez; gana la primera respuesta exitosa
// y se cancelan las demás.
type MultiProvider struct {
	providers []Provider
	observer  Observer
}

// Option configura un MultiProvider.
type Option func(*MultiProvider)

// WithObserver registra un observador de resultados (métricas).
func WithObserver(o Observer) Option {
	return func(m *MultiProvider) { m.observer = o }
}

// NewMultiProvider construye el agregador. Requiere al menos un proveedor.
func NewMultiProvider(providers []Provider, opts ...Option) (*MultiProvider, error) {
	if len(providers) == 0 {
		return nil, errors.New("postal: nenhum provedor configurado")
	}
	m := &MultiProvider{providers: providers}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// NewFromConfig construye los proveedores nombrados en cfg.Providers con un cliente HTTP
// que aplica cfg.Timeout.
func NewFromConfig(cfg config.PostalConfig, opts ...Option) (*MultiProvider, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	providers := make([]Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		switch strings.ToLower(name) {
		case viaCEPService:
			providers = append(providers, NewViaCEP(client, ""))
		case brasilAPIService:
			providers = append(providers, NewBrasilAPI(client, ""))
		default:
			return nil, fmt.Errorf("postal: provedor desconhecido %q", name)
		}
	}
	return NewMultiProvider(providers, opts...)
}

type result struct {
	idx  int
	addr *dto.CEPAddress
	err  error
}

// Lookup implementa ports.PostalLookup.
func (m *MultiProvider) Lookup(ctx context.Context, cep string) (*dto.CEPAddress, error) {
	if !brdoc.IsCEP(cep) {
		return nil, &dto.CEPError{
			Name:    errorName,
			Message: invalidCEPMessage,
			Type:    dto.CEPErrorValidation,
			Errors:  []dto.ServiceError{{Message: invalidCEPMessage, Service: validationService}},
		}
	}

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan result, len(m.providers))
	for i, p := range m.providers {
		go func(i int, p Provider) {
			addr, err := p.Lookup(raceCtx, cep)
			results <- result{idx: i, addr: addr, err: err}
		}(i, p)
	}

	failures := make([]*serviceError, len(m.providers))
	var internal error
	for range m.providers {
		r := <-results
		name := m.providers[r.idx].Name()
		if r.err == nil {
			m.observe(name, "ok")
			return r.addr, nil
		}
		var se *serviceError
		if errors.As(r.err, &se) {
			m.observe(name, "service_error")
			failures[r.idx] = se
			continue
		}
		m.observe(name, "malformed")
		if internal == nil {
			internal = fmt.Errorf("%s: %w", name, r.err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if internal != nil {
		return nil, internal
	}

	out := &dto.CEPError{Name: errorName, Message: allFailedMessage, Type: dto.CEPErrorService}
	for _, f := range failures {
		if f != nil {
			out.Errors = append(out.Errors, dto.ServiceError{Message: f.message, Service: f.service})
		}
	}
	return nil, out
}

func (m *MultiProvider) observe(service, outcome string) {
	if m.observer != nil {
		m.observer.ObservePostalLookup(service, outcome)
	}
}
