package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
	"github.com/jhoicas/brdocs-api/internal/domain/entity"
	"github.com/jhoicas/brdocs-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/brdocs-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const seedCPF = "123.456.789-00"

type stubLookup struct {
	addr *dto.CEPAddress
	err  error
}

func (s stubLookup) Lookup(context.Context, string) (*dto.CEPAddress, error) {
	return s.addr, s.err
}

// buildTestApp construye la app completa sobre el store en memoria con el cliente semilla.
func buildTestApp(t *testing.T, lookup stubLookup) *fiber.App {
	t.Helper()
	return apphttp.NewApp(apphttp.RouterDeps{
		AppName:    "brdocs-test",
		DocumentUC: usecase.NewDocumentUseCase(lookup),
		CustomerUC: usecase.NewCustomerUseCase(memory.NewCustomerRepository(entity.SeedCustomer())),
		Checker:    validation.New(),
		Metrics:    apphttp.NewMetrics("brdocs"),
	})
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

func decodeJSON(t *testing.T, raw []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out), "cuerpo: %s", raw)
}

func mensagem(t *testing.T, raw []byte) string {
	t.Helper()
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	return out.Mensagem
}

func customerJSON(cpf, nome string) string {
	b, _ := json.Marshal(dto.Customer{
		CPF:    cpf,
		Nome:   nome,
		RG:     "11.222.333-4",
		CEP:    "01001-000",
		Rua:    "Praça da Sé",
		Bairro: "Sé",
		Cidade: "São Paulo",
		Estado: "SP",
		Email:  "joao@exemplo.com",
	})
	return string(b)
}

func listSize(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, raw := do(t, app, http.MethodGet, "/clientes", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.CustomerList
	decodeJSON(t, raw, &out)
	return len(out.Clientes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"brdocs-test"}`, string(raw))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "debe asignarse un request id")
}

func TestRutaInexistente_EnvelopeJSON(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodGet, "/nao-existe", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, mensagem(t, raw))
}

func TestMetrics_ExponeContadores(t *testing.T) {
	app := buildTestApp(t, stubLookup{})
	do(t, app, http.MethodGet, "/valida-cpf/111.444.777-35", "")

	resp, raw := do(t, app, http.MethodGet, "/metrics", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "brdocs_http_requests_total")
	assert.Contains(t, string(raw), `path="/valida-cpf/:cpf"`, "la etiqueta path es el patrón de la ruta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidaCPF_Ruta(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	tests := []struct {
		name   string
		cpf    string
		status int
		msg    string
	}{
		{"válido", "111.444.777-35", fiber.StatusOK, usecase.MsgCPFValid},
		{"dígito verificador incorrecto", "123.456.789-00", fiber.StatusOK, usecase.MsgCPFInvalid},
		{"todos iguales", "111.111.111-11", fiber.StatusOK, usecase.MsgCPFInvalid},
		{"sin máscara", "11144477735", fiber.StatusBadRequest, "Erro de validação"},
		{"formato roto", "111.444.77735", fiber.StatusBadRequest, "Erro de validação"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := do(t, app, http.MethodGet, "/valida-cpf/"+tt.cpf, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.msg, mensagem(t, raw))
		})
	}
}

func TestValidaCPF_Ruta_ErroresPorCampo(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	_, raw := do(t, app, http.MethodGet, "/valida-cpf/abc", "")

	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	require.Len(t, out.Erros, 1)
	assert.Equal(t, "cpf", out.Erros[0].Campo)
}

func TestValidaCPF_Cuerpo(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"válido", `{"cpf":"111.444.777-35"}`, fiber.StatusOK, usecase.MsgCPFValid},
		{"inválido", `{"cpf":"111.444.777-36"}`, fiber.StatusOK, usecase.MsgCPFInvalid},
		{"sin campo", `{}`, fiber.StatusBadRequest, "Erro de validação"},
		{"tipo incorrecto", `{"cpf":11144477735}`, fiber.StatusBadRequest, "Erro de validação"},
		{"json roto", `{"cpf":`, fiber.StatusBadRequest, "Erro de validação"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := do(t, app, http.MethodPost, "/valida-cpf", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.msg, mensagem(t, raw))
		})
	}

	t.Run("cuerpo vacío", func(t *testing.T) {
		resp, raw := do(t, app, http.MethodPost, "/valida-cpf", "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Erro de validação", mensagem(t, raw))
	})
}

func TestValidaCNPJ(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	tests := []struct {
		name   string
		path   string
		status int
		msg    string
	}{
		{"barra literal", "/valida-cnpj/11.222.333/0001-81", fiber.StatusOK, usecase.MsgCNPJValid},
		{"barra codificada", "/valida-cnpj/11.222.333%2F0001-81", fiber.StatusOK, usecase.MsgCNPJValid},
		{"dígito incorrecto", "/valida-cnpj/11.222.333/0001-82", fiber.StatusOK, usecase.MsgCNPJInvalid},
		{"formato roto", "/valida-cnpj/11222333000181", fiber.StatusBadRequest, "Erro de validação"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := do(t, app, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.msg, mensagem(t, raw))
		})
	}
}

func TestValidaCNH(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	tests := []struct {
		name   string
		cnh    string
		status int
		msg    string
	}{
		{"válida", "12345678900", fiber.StatusOK, usecase.MsgCNHValid},
		{"dígito incorrecto", "98765432100", fiber.StatusOK, usecase.MsgCNHInvalid},
		{"corta", "123", fiber.StatusBadRequest, "Erro de validação"},
		{"con letras", "1234567890a", fiber.StatusBadRequest, "Erro de validação"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := do(t, app, http.MethodGet, "/valida-cnh/"+tt.cnh, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.msg, mensagem(t, raw))
		})
	}
}

func TestValidaCEP(t *testing.T) {
	t.Run("dirección encontrada", func(t *testing.T) {
		app := buildTestApp(t, stubLookup{addr: &dto.CEPAddress{
			CEP: "01001000", State: "SP", City: "São Paulo", Neighborhood: "Sé",
			Street: "Praça da Sé", Service: "viacep",
		}})

		resp, raw := do(t, app, http.MethodGet, "/valida-cep/01001000", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out struct {
			Dados dto.CEPAddress `json:"dados"`
		}
		decodeJSON(t, raw, &out)
		assert.Equal(t, "São Paulo", out.Dados.City)
		assert.Equal(t, "viacep", out.Dados.Service)
	})

	t.Run("error de proveedores viaja en dados", func(t *testing.T) {
		app := buildTestApp(t, stubLookup{err: &dto.CEPError{
			Name:    "CepPromiseError",
			Message: "Todos os serviços de CEP retornaram erro.",
			Type:    dto.CEPErrorService,
			Errors:  []dto.ServiceError{{Message: "CEP não encontrado na base do ViaCEP.", Service: "viacep"}},
		}})

		resp, raw := do(t, app, http.MethodGet, "/valida-cep/99999999", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out struct {
			Dados dto.CEPError `json:"dados"`
		}
		decodeJSON(t, raw, &out)
		assert.Equal(t, "CepPromiseError", out.Dados.Name)
		assert.Equal(t, dto.CEPErrorService, out.Dados.Type)
		require.Len(t, out.Dados.Errors, 1)
		assert.Equal(t, "viacep", out.Dados.Errors[0].Service)
	})

	t.Run("fallo interno es 500", func(t *testing.T) {
		app := buildTestApp(t, stubLookup{err: errors.New("resposta malformada")})

		resp, raw := do(t, app, http.MethodGet, "/valida-cep/01001000", "")

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Erro interno do servidor.", mensagem(t, raw))
		assert.NotContains(t, string(raw), "malformada", "no se filtran detalles internos")
	})

	t.Run("formato inválido", func(t *testing.T) {
		app := buildTestApp(t, stubLookup{})

		resp, raw := do(t, app, http.MethodGet, "/valida-cep/01001-000", "")

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Erro de validação", mensagem(t, raw))
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_SemillaDisponible(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodGet, "/clientes/"+seedCPF, "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.Customer
	decodeJSON(t, raw, &out)
	seed := entity.SeedCustomer()
	assert.Equal(t, dto.CustomerFromEntity(&seed), out)
	assert.Equal(t, 1, listSize(t, app))
}

func TestClientes_Get_Errores(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodGet, "/clientes/111.444.777-35", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cliente não encontrado", mensagem(t, raw))

	resp, raw = do(t, app, http.MethodGet, "/clientes/123", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Erro de validação", mensagem(t, raw))
}

func TestClientes_Create(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodPost, "/clientes", customerJSON("111.444.777-35", "João"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.Customer
	decodeJSON(t, raw, &created)
	assert.Equal(t, "João", created.Nome)

	resp, raw = do(t, app, http.MethodGet, "/clientes/111.444.777-35", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var fetched dto.Customer
	decodeJSON(t, raw, &fetched)
	assert.Equal(t, created, fetched)
	assert.Equal(t, 2, listSize(t, app))
}

func TestClientes_Create_Duplicado(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodPost, "/clientes", customerJSON(seedCPF, "Outra"))

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Cliente com este CPF já cadastrado.", mensagem(t, raw))
	assert.Equal(t, 1, listSize(t, app), "el store no cambia")
}

func TestClientes_Create_Invalido(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodPost, "/clientes", `{"CPF":"111.444.777-35","Nome":"","Email":"x"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "Erro de validação nos dados do cliente.", out.Mensagem)
	campos := make([]string, 0, len(out.Erros))
	for _, e := range out.Erros {
		campos = append(campos, e.Campo)
	}
	assert.Contains(t, campos, "Nome")
	assert.Contains(t, campos, "Email")
	assert.Equal(t, 1, listSize(t, app))
}

func TestClientes_Update(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodPut, "/clientes/"+seedCPF, customerJSON(seedCPF, "Maria Atualizada"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.Customer
	decodeJSON(t, raw, &out)
	assert.Equal(t, "Maria Atualizada", out.Nome)

	_, raw = do(t, app, http.MethodGet, "/clientes/"+seedCPF, "")
	var fetched dto.Customer
	decodeJSON(t, raw, &fetched)
	assert.Equal(t, "Maria Atualizada", fetched.Nome)
}

func TestClientes_Update_CPFDistinto(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodPut, "/clientes/"+seedCPF, customerJSON("111.444.777-35", "Outra"))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "O CPF no corpo da requisição deve ser o mesmo que o da URL.", mensagem(t, raw))

	_, raw = do(t, app, http.MethodGet, "/clientes/"+seedCPF, "")
	var fetched dto.Customer
	decodeJSON(t, raw, &fetched)
	assert.Equal(t, "Maria Joana", fetched.Nome, "el store no cambia")
}

func TestClientes_Update_Inexistente(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodPut, "/clientes/111.444.777-35", customerJSON("111.444.777-35", "João"))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cliente não encontrado", mensagem(t, raw))
}

func TestClientes_Delete(t *testing.T) {
	app := buildTestApp(t, stubLookup{})

	resp, raw := do(t, app, http.MethodDelete, "/clientes/"+seedCPF, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, raw)

	resp, _ = do(t, app, http.MethodDelete, "/clientes/"+seedCPF, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, listSize(t, app))
}
