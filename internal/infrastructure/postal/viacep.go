package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
)

const (
	viaCEPService = "viacep"
	viaCEPBaseURL = "https://viacep.com.br"
)

var _ Provider = (*ViaCEP)(nil)

// ViaCEP adaptador para https://viacep.com.br.
type ViaCEP struct {
	baseURL    string
	httpClient *http.Client
}

// NewViaCEP construye el adaptador. baseURL vacío = servicio público.
func NewViaCEP(client *http.Client, baseURL string) *ViaCEP {
	if baseURL == "" {
		baseURL = viaCEPBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ViaCEP{baseURL: strings.TrimRight(baseURL, "/"), httpClient: client}
}

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	// ViaCEP devolvió históricamente true y ahora "true"; se aceptan ambos.
	Erro any `json:"erro"`
}

// Name implementa Provider.
func (v *ViaCEP) Name() string { return viaCEPService }

// Lookup implementa Provider.
func (v *ViaCEP) Lookup(ctx context.Context, cep string) (*dto.CEPAddress, error) {
	status, body, err := fetch(ctx, v.httpClient, viaCEPService, fmt.Sprintf("%s/ws/%s/json/", v.baseURL, cep))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &serviceError{service: viaCEPService, message: "Erro ao se conectar com o serviço ViaCEP."}
	}

	var r viaCEPResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("viacep: %w: %v", ErrMalformedResponse, err)
	}
	if r.Erro == true || r.Erro == "true" {
		return nil, &serviceError{service: viaCEPService, message: "CEP não encontrado na base do ViaCEP."}
	}
	if r.CEP == "" {
		return nil, fmt.Errorf("viacep: %w: campo cep ausente", ErrMalformedResponse)
	}

	return &dto.CEPAddress{
		CEP:          strings.ReplaceAll(r.CEP, "-", ""),
		State:        r.UF,
		City:         r.Localidade,
		Neighborhood: r.Bairro,
		Street:       r.Logradouro,
		Service:      viaCEPService,
	}, nil
}
