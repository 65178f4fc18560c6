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
	brasilAPIService = "brasilapi"
	brasilAPIBaseURL = "https://brasilapi.com.br"
)

var _ Provider = (*BrasilAPI)(nil)

// BrasilAPI adaptador para https://brasilapi.com.br/api/cep/v1.
type BrasilAPI struct {
	baseURL    string
	httpClient *http.Client
}

// NewBrasilAPI construye el adaptador. baseURL vacío = servicio público.
func NewBrasilAPI(client *http.Client, baseURL string) *BrasilAPI {
	if baseURL == "" {
		baseURL = brasilAPIBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &BrasilAPI{baseURL: strings.TrimRight(baseURL, "/"), httpClient: client}
}

type brasilAPIResponse struct {
	CEP          string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
}

// Name implementa Provider.
func (b *BrasilAPI) Name() string { return brasilAPIService }

// Lookup implementa Provider.
func (b *BrasilAPI) Lookup(ctx context.Context, cep string) (*dto.CEPAddress, error) {
	status, body, err := fetch(ctx, b.httpClient, brasilAPIService, fmt.Sprintf("%s/api/cep/v1/%s", b.baseURL, cep))
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, &serviceError{service: brasilAPIService, message: "CEP não encontrado na base do BrasilAPI."}
	case status != http.StatusOK:
		return nil, &serviceError{service: brasilAPIService, message: "Erro ao se conectar com o serviço BrasilAPI."}
	}

	var r brasilAPIResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("brasilapi: %w: %v", ErrMalformedResponse, err)
	}
	if r.CEP == "" {
		return nil, fmt.Errorf("brasilapi: %w: campo cep ausente", ErrMalformedResponse)
	}

	return &dto.CEPAddress{
		CEP:          r.CEP,
		State:        r.State,
		City:         r.City,
		Neighborhood: r.Neighborhood,
		Street:       r.Street,
		Service:      brasilAPIService,
	}, nil
}
