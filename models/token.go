package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every session token.
//
// It extends the RFC 7519 registered claims with the user's email. The user
// identifier travels in the standard "sub" claim.
type Claims struct {
	// Email is the address of the authenticated user.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a JWT session token with convenience accessors used by the
// authentication flow.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted as a bearer credential. UserID and Email are
// cached copies of the "sub" and "email" claims, populated during token
// generation and parsing so handlers never touch raw claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact string form is meaningful
	// outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Email is the address extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
