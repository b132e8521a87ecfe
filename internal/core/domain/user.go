package domain

import "context"

// Credential is a USUARIO row joined with the owning PERSONA.
type Credential struct {
	UserID       int64
	Username     string
	PasswordHash string
	Role         Role
	PersonaID    int64
	Nombre       string
}

// Registration is the self-service sign-up payload: a persona, its cliente
// record and the login that belongs to it.
type Registration struct {
	Nombre    string
	Cedula    string
	Telefono  string
	Edad      int
	Sexo      string
	Direccion string
	Username  string
	Password  string
}

// RegistrationResult carries the identifiers created by a registration.
type RegistrationResult struct {
	PersonaID int64 `json:"id_persona"`
	ClienteID int64 `json:"id_cliente"`
}

// Claims is the identity asserted by a verified token.
type Claims struct {
	UserID    int64  `json:"id_usuario"`
	PersonaID int64  `json:"id_persona"`
	Nombre    string `json:"nombre"`
	Role      Role   `json:"rol"`
}

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}
