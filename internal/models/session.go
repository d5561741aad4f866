package models

import "time"

// Session - sesión del lado servidor. El token es opaco y se busca en el
// store en cada request; la sesión es válida solo antes de ExpiresAt.
// ProviderToken guarda el token del proveedor externo como atributo:
// el token local siempre se genera acá.
type Session struct {
	ID            string    `bson:"_id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	SessionToken  string    `bson:"session_token" json:"session_token"`
	ProviderToken string    `bson:"provider_token,omitempty" json:"-"`
	ExpiresAt     time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Valid reporta si la sesión sigue viva en el instante dado.
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
