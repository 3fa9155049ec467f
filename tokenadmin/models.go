package tokenadmin

import (
	"time"

	"github.com/google/uuid"
)

// ---- Graph Models ----

// GraphUser is a user subject as returned by the Graph listing endpoint.
type GraphUser struct {
	SubjectKind   string `json:"subjectKind,omitempty"`
	Domain        string `json:"domain,omitempty"`
	PrincipalName string `json:"principalName,omitempty"`
	MailAddress   string `json:"mailAddress,omitempty"`
	Origin        string `json:"origin,omitempty"`
	OriginID      string `json:"originId,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Descriptor    string `json:"descriptor"`
	URL           string `json:"url,omitempty"`
}

// graphUsersResponse is the body shape of the user listing endpoint. The
// continuation token for the next page travels in a response header, not here.
type graphUsersResponse struct {
	Count int         `json:"count"`
	Value []GraphUser `json:"value"`
}

// graphDescriptorResponse wraps a resolved subject descriptor.
type graphDescriptorResponse struct {
	Value string `json:"value"`
}

// ---- Token Admin Models ----

// SessionToken describes one personal access token (or other session token)
// held by a user. The Token field is empty on listing calls.
type SessionToken struct {
	ClientID        uuid.UUID  `json:"clientId"`
	AccessID        uuid.UUID  `json:"accessId"`
	AuthorizationID uuid.UUID  `json:"authorizationId"`
	UserID          uuid.UUID  `json:"userId,omitempty"`
	DisplayName     string     `json:"displayName,omitempty"`
	Scope           string     `json:"scope,omitempty"`
	TargetAccounts  []string   `json:"targetAccounts,omitempty"`
	ValidFrom       *time.Time `json:"validFrom,omitempty"`
	ValidTo         *time.Time `json:"validTo,omitempty"`
	Token           string     `json:"token,omitempty"`
	IsValid         bool       `json:"isValid,omitempty"`
	IsPublic        bool       `json:"isPublic,omitempty"`
	Source          string     `json:"source,omitempty"`
}

// PagedSessionTokens is one page of a user's session tokens. The service
// signals the last page by returning the zero GUID as ContinuationToken.
type PagedSessionTokens struct {
	Count             int            `json:"count"`
	Value             []SessionToken `json:"value"`
	ContinuationToken string         `json:"continuationToken"`
}

// TokenRevocation names one authorization to revoke. The revocation endpoint
// accepts a JSON array of these.
type TokenRevocation struct {
	AuthorizationID uuid.UUID `json:"authorizationId"`
}

// NewRevocations builds a revocation batch from authorization IDs,
// preserving input order.
func NewRevocations(ids ...uuid.UUID) []TokenRevocation {
	out := make([]TokenRevocation, 0, len(ids))
	for _, id := range ids {
		out = append(out, TokenRevocation{AuthorizationID: id})
	}
	return out
}

// RevocationRule is a standing policy rejecting future authentication
// attempts that use credentials matching Scopes and created before
// CreatedBefore. It covers credential kinds that cannot be revoked
// individually.
type RevocationRule struct {
	// Scopes is a space-separated scope list, for example
	// "vso.packaging vso.code_write".
	Scopes string `json:"scopes"`

	// CreatedBefore bounds the rule; credentials minted before this instant
	// are rejected. Serialized as an ISO 8601 timestamp.
	CreatedBefore time.Time `json:"createdBefore"`
}
