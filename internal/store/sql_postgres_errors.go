// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
)

// classifyProductRefError maps a failed INSERT into a table that references
// products(id, user_id) to a domain error. A foreign key violation means the
// referenced product does not exist or belongs to someone else.
func classifyProductRefError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrProductNotFound
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// noRows reports whether err signals an empty result of QueryRow.
func noRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
