package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"resabot/internal/domain"
)

// PropertyClient implements domain.PropertyGateway against the property
// service. Every transport or status failure is normalized to the
// documented sentinel; no method returns an error.
type PropertyClient struct{ c *client }

func NewPropertyClient(base string, rps int) *PropertyClient {
	return &PropertyClient{c: newClient("property", base, rps)}
}

func (p *PropertyClient) FetchAll(ctx context.Context) []domain.Property {
	b, err := p.c.get(ctx, "/api/properties", "")
	if err != nil {
		log.Warn().Err(err).Msg("property service: list failed")
		return nil
	}
	return unwrapList[domain.Property](b)
}

func (p *PropertyClient) Fetch(ctx context.Context, id string) (domain.Property, bool) {
	b, err := p.c.get(ctx, "/api/properties/"+id, "")
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("property service: fetch failed")
		return domain.Property{}, false
	}
	// Single items come back either enveloped or bare.
	var env struct {
		Data *domain.Property `json:"data"`
	}
	if json.Unmarshal(b, &env) == nil && env.Data != nil {
		return *env.Data, true
	}
	var prop domain.Property
	if err := json.Unmarshal(b, &prop); err != nil || prop.ID == "" {
		return domain.Property{}, false
	}
	return prop, true
}

func (p *PropertyClient) Delete(ctx context.Context, id, token string) domain.MutationResult {
	status, _, err := p.c.do(ctx, http.MethodDelete, "/api/properties/"+id, token, nil)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("property service: delete failed")
		return domain.MutationResult{Success: false, Message: err.Error()}
	}
	if status == http.StatusOK || status == http.StatusNoContent {
		return domain.MutationResult{Success: true, Message: "Propriété supprimée avec succès!"}
	}
	return domain.MutationResult{Success: false, Message: "Erreur lors de la suppression"}
}
