// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows(productColumns)
}

func fileRows() *sqlmock.Rows {
	return sqlmock.NewRows(fileColumns)
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows(noteColumns)
}
