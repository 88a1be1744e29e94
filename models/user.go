// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier. It is compared case-sensitively,
	// exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized into a token or a response.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the public part of the user that is embedded into tokens
// and attached to authenticated requests.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email}
}

// Identity is the authenticated caller: the decoded {id, email} pair carried
// by a token. Downstream handlers treat ID as the owner of every record they
// touch.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	// Token is the compact signed token the client must present on every
	// protected request.
	Token string

	// User holds the public user fields.
	User Identity
}
