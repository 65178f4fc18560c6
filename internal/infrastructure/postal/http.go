package postal

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxBodySize límite de lectura de la respuesta de un proveedor.
const maxBodySize = 64 * 1024

// fetch hace GET y devuelve status y cuerpo. Los errores de red se reportan como
// serviceError del proveedor.
func fetch(ctx context.Context, client *http.Client, service, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: crear HTTP request: %w", service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, &serviceError{service: service, message: fmt.Sprintf("Erro ao se conectar com o serviço %s.", service)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, &serviceError{service: service, message: fmt.Sprintf("Erro ao ler a resposta do serviço %s.", service)}
	}
	return resp.StatusCode, body, nil
}
