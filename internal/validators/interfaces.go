// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads (credentials, product
// details and patches, uploads, notes) before they reach storage. Each
// failure is reported as one of the sentinel errors in errors.go so the HTTP
// layer can turn it into the matching client message.
package validators

import "context"

// Validator checks obj, which must be one of the payload types the
// implementation knows about; anything else is rejected. When fields are
// given only those named checks run, e.g. FieldNoteID and FieldContent for a note
// update.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
