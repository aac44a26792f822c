package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"resabot/internal/adapters/observability"
	"resabot/internal/domain"
)

const propertiesCacheKey = "properties:all"

// Engine turns a classified message into a reply, owning authorization
// gating and backend call sequencing. It holds no per-request state; a
// single Engine serves concurrent requests.
type Engine struct {
	props domain.PropertyGateway
	resv  domain.ReservationGateway
	cache domain.Cache
	ttl   time.Duration
}

func NewEngine(p domain.PropertyGateway, r domain.ReservationGateway, cache domain.Cache, ttl time.Duration) *Engine {
	return &Engine{props: p, resv: r, cache: cache, ttl: ttl}
}

// Process handles one chat message. It never returns an error: every
// foreseeable failure becomes reply content, and gateway failures arrive
// already normalized.
func (e *Engine) Process(ctx context.Context, message string, caller domain.CallerContext) domain.Reply {
	intent := Classify(message, caller.Role)
	observability.ObserveIntent(string(intent))
	log.Debug().Str("intent", string(intent)).Str("role", caller.Role).Msg("message classified")

	reply := domain.Reply{Intent: intent, Actions: []string{}}

	switch intent {
	case domain.IntentGreeting:
		if caller.Role == domain.RoleAdmin {
			reply.Message = msgGreetingAdmin
		} else {
			reply.Message = msgGreeting
		}

	case domain.IntentHelp:
		if caller.Role == domain.RoleAdmin {
			reply.Message = msgHelpAdmin
		} else {
			reply.Message = msgHelp
		}

	case domain.IntentSiteInfo:
		reply.Message = msgSiteInfo

	case domain.IntentListProperties:
		e.listProperties(ctx, &reply)

	case domain.IntentMyReservations:
		e.myReservations(ctx, caller, &reply)

	case domain.IntentMakeReservation:
		reply.Message = msgMakeReservation

	case domain.IntentCreateReservation:
		e.createReservation(ctx, message, caller, &reply)

	case domain.IntentAdminAllRes:
		if refusal, ok := adminGate(caller); !ok {
			reply.Message = refusal
			break
		}
		e.allReservations(ctx, caller, &reply)

	case domain.IntentAdminDeleteProperty:
		if refusal, ok := adminGate(caller); !ok {
			reply.Message = refusal
			break
		}
		e.deleteProperty(ctx, message, caller, &reply)

	case domain.IntentAdminDeleteRes:
		if refusal, ok := adminGate(caller); !ok {
			reply.Message = refusal
			break
		}
		e.deleteReservation(ctx, message, caller, &reply)

	case domain.IntentPriceInfo:
		reply.Message = msgPriceInfo
	case domain.IntentCancelInfo:
		reply.Message = msgCancelInfo
	case domain.IntentReviewsInfo:
		reply.Message = msgReviewsInfo
	case domain.IntentAccountInfo:
		reply.Message = msgAccountInfo
	case domain.IntentContact:
		reply.Message = msgContact
	case domain.IntentThanks:
		reply.Message = msgThanks
	case domain.IntentGoodbye:
		reply.Message = msgGoodbye

	default:
		reply.Message = msgOutOfScope
	}

	return reply
}

// adminGate enforces the admin precondition: role must be admin and a token
// must be present. On refusal, no gateway call is made.
func adminGate(caller domain.CallerContext) (string, bool) {
	if caller.Role != domain.RoleAdmin {
		return msgAdminOnly, false
	}
	if caller.Token == "" {
		return msgTokenRequired, false
	}
	return "", true
}

// listProperties reads through the short-TTL cache; the gateway already
// normalizes failures to an empty list.
func (e *Engine) listProperties(ctx context.Context, reply *domain.Reply) {
	var ps []domain.Property
	hit := false
	if e.cache != nil {
		hit, _ = e.cache.Get(ctx, propertiesCacheKey, &ps)
	}
	if !hit {
		ps = e.props.FetchAll(ctx)
		if e.cache != nil && len(ps) > 0 {
			_ = e.cache.Set(ctx, propertiesCacheKey, ps, e.ttl)
		}
	}
	if len(ps) == 0 {
		reply.Message = msgNoProperties
		return
	}
	if len(ps) > 10 {
		ps = ps[:10]
	}
	reply.Message = formatPropertyList(ps)
	reply.Data = ps
}

func (e *Engine) myReservations(ctx context.Context, caller domain.CallerContext, reply *domain.Reply) {
	if !caller.Authenticated() {
		reply.Message = msgLoginToView
		reply.Actions = append(reply.Actions, domain.ActionLoginRequired)
		return
	}
	rs := e.resv.FetchForUser(ctx, caller.UserID, caller.Token)
	if len(rs) == 0 {
		reply.Message = msgNoUserRes
		return
	}
	shown := rs
	if len(shown) > 10 {
		shown = shown[:10]
	}
	reply.Message = formatUserReservations(shown)
	reply.Data = rs
}

func (e *Engine) createReservation(ctx context.Context, message string, caller domain.CallerContext, reply *domain.Reply) {
	ents := Extract(message)
	if !caller.Authenticated() {
		reply.Message = msgLoginToBook
		reply.Actions = append(reply.Actions, domain.ActionLoginRequired)
		return
	}

	// Availability first; an indeterminate answer comes back Available=true
	// from the gateway (fail-open), so only a definite conflict blocks.
	av := e.resv.CheckAvailability(ctx, ents.PropertyID, ents.CheckIn, ents.CheckOut)
	if !av.Available {
		reply.Message = "❌ " + orDefault(av.Message, "Propriété non disponible pour ces dates.")
		return
	}

	res := e.resv.Create(ctx, domain.NewReservation{
		PropertyID: ents.PropertyID,
		StartDate:  ents.CheckIn,
		EndDate:    ents.CheckOut,
	}, caller.Token)
	if !res.Success {
		reply.Message = formatError(res.Message, "Erreur inconnue")
		return
	}
	reply.Message = formatReservationCreated(ents)
	reply.Data = res.Data
}

func (e *Engine) allReservations(ctx context.Context, caller domain.CallerContext, reply *domain.Reply) {
	rs := e.resv.FetchAll(ctx, caller.Token)
	if len(rs) == 0 {
		reply.Message = msgNoRes
		return
	}
	shown := rs
	if len(shown) > 15 {
		shown = shown[:15]
	}
	reply.Message = formatAllReservations(shown)
	reply.Data = rs
}

func (e *Engine) deleteProperty(ctx context.Context, message string, caller domain.CallerContext, reply *domain.Reply) {
	id := Extract(message).PropertyID
	if id == "" {
		reply.Message = msgNeedPropID
		return
	}
	res := e.props.Delete(ctx, id, caller.Token)
	if !res.Success {
		reply.Message = formatError(res.Message, "Impossible de supprimer")
		return
	}
	reply.Message = "✅ Propriété `" + shortID(id) + "` supprimée avec succès!"
	// Listing cache is stale after a delete.
	if e.cache != nil {
		_ = e.cache.Del(ctx, propertiesCacheKey)
	}
}

func (e *Engine) deleteReservation(ctx context.Context, message string, caller domain.CallerContext, reply *domain.Reply) {
	id := Extract(message).PropertyID
	if id == "" {
		reply.Message = msgNeedResID
		return
	}
	res := e.resv.Delete(ctx, id, caller.Token)
	if !res.Success {
		reply.Message = formatError(res.Message, "Impossible de supprimer")
		return
	}
	reply.Message = "✅ Réservation `" + shortID(id) + "` supprimée avec succès!"
}
