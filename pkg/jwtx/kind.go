package jwtx

// Kind tags the token class a verified claim set belongs to. The tag is
// derived once, at the decode boundary, so downstream guards dispatch on it
// rather than re-inspecting which claims happen to be present.
type Kind int

const (
	// KindUnknown is a claim set that matches no known token class.
	KindUnknown Kind = iota

	// KindClient is a client-credential token identifying an application.
	KindClient

	// KindUser is a session token identifying a resource owner.
	KindUser

	// KindConsent is a delegated token carrying a bounded scope grant.
	KindConsent
)

// Kind classifies the claim set. A populated client_id marks a client token;
// a scope grant marks a consent token; a bare subject marks a user token.
func (c Claims) Kind() Kind {
	switch {
	case c.ClientID != "":
		return KindClient
	case len(c.Scopes) > 0:
		return KindConsent
	case c.Subject != "":
		return KindUser
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindClient:
		return "client"
	case KindUser:
		return "user"
	case KindConsent:
		return "consent"
	default:
		return "unknown"
	}
}
