// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued token.
// Besides the standard expiry and issued-at claims it carries exactly the
// public identity of the user.
type TokenClaims struct {
	// ID is the user identifier.
	ID int64 `json:"id"`

	// Email is the user's email at the time the token was issued.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claims of a parsed token or the claims of a
	// freshly issued one.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity returns the {id, email} pair carried by the token.
func (t *Token) Identity() Identity {
	return Identity{ID: t.Claims.ID, Email: t.Claims.Email}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
