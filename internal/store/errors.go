// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("no user was found")

	// ErrProductNotFound is returned when no product matches both the id and
	// the owner. A product owned by someone else is indistinguishable from a
	// missing one.
	ErrProductNotFound = errors.New("product was not found")

	// ErrFileNotFound is returned when no file record matches the id and the
	// owner.
	ErrFileNotFound = errors.New("file was not found")

	// ErrNoteNotFound is returned when no note matches the id and the owner.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrBlobNotFound is returned by a [FileStorage] when the payload at the
	// given path does not exist.
	ErrBlobNotFound = errors.New("stored file payload was not found")

	// ErrNothingToUpdate is returned when an update carries no field to set.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrConstraintViolation is returned when a row is rejected by a CHECK or
	// NOT NULL constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
