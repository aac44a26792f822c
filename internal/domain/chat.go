package domain

// Intent is the single classified purpose of an incoming message.
type Intent string

const (
	IntentGreeting            Intent = "greeting"
	IntentHelp                Intent = "help"
	IntentSiteInfo            Intent = "site_info"
	IntentThanks              Intent = "thanks"
	IntentGoodbye             Intent = "goodbye"
	IntentListProperties      Intent = "list_properties"
	IntentMyReservations      Intent = "my_reservations"
	IntentMakeReservation     Intent = "make_reservation"
	IntentCreateReservation   Intent = "create_reservation"
	IntentAdminAllRes         Intent = "admin_all_reservations"
	IntentAdminDeleteProperty Intent = "admin_delete_property"
	IntentAdminDeleteRes      Intent = "admin_delete_reservation"
	IntentPriceInfo           Intent = "price_info"
	IntentCancelInfo          Intent = "cancel_info"
	IntentReviewsInfo         Intent = "reviews_info"
	IntentAccountInfo         Intent = "account_info"
	IntentContact             Intent = "contact"
	IntentOutOfScope          Intent = "out_of_scope"
)

// Caller roles, as forwarded by the outer transport.
const (
	RoleTenant = "tenant"
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
)

// ActionLoginRequired tells the frontend to open the login flow.
const ActionLoginRequired = "login_required"

// CallerContext carries per-request identity. Supplied by the transport
// layer, never mutated by the engine.
type CallerContext struct {
	UserID string
	Token  string
	Role   string
}

// Authenticated reports whether both user id and bearer token are present.
func (c CallerContext) Authenticated() bool { return c.UserID != "" && c.Token != "" }

// Entities are the identifiers pulled out of a raw message. Absent values
// are empty strings; extraction has no failure mode.
type Entities struct {
	PropertyID string
	CheckIn    string
	CheckOut   string
}

// Complete reports whether the message carried everything a direct booking
// needs: a property id plus both dates.
func (e Entities) Complete() bool {
	return e.PropertyID != "" && e.CheckIn != "" && e.CheckOut != ""
}

// Reply is the structured chat response. Data is populated only when the
// corresponding backend call executed and succeeded.
type Reply struct {
	Intent  Intent   `json:"intent"`
	Message string   `json:"message"`
	Data    any      `json:"data"`
	Actions []string `json:"actions"`
}
