package postal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/ports"
)

var _ ports.PostalLookup = (*CachedLookup)(nil)

const cacheKeyPrefix = "cep:"

// CachedLookup guarda en Redis las direcciones resueltas. Los errores de los proveedores
// no se cachean, y si Redis falla se consulta directamente al siguiente PostalLookup.
type CachedLookup struct {
	client redis.Cmdable
	next   ports.PostalLookup
	ttl    time.Duration
}

// NewCachedLookup envuelve next con la caché.
func NewCachedLookup(client redis.Cmdable, next ports.PostalLookup, ttl time.Duration) *CachedLookup {
	return &CachedLookup{client: client, next: next, ttl: ttl}
}

// Lookup implementa ports.PostalLookup.
func (c *CachedLookup) Lookup(ctx context.Context, cep string) (*dto.CEPAddress, error) {
	key := cacheKeyPrefix + cep

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var addr dto.CEPAddress
		if jsonErr := json.Unmarshal(raw, &addr); jsonErr == nil {
			return &addr, nil
		}
		log.Warn().Str("cep", cep).Msg("entrada de cache de CEP inválida, ignorando")
	case errors.Is(err, redis.Nil):
	default:
		log.Warn().Err(err).Str("cep", cep).Msg("cache de CEP indisponível")
	}

	addr, err := c.next.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(addr); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Warn().Err(err).Str("cep", cep).Msg("não foi possível gravar CEP no cache")
		}
	}
	return addr, nil
}
