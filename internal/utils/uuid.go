// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator issues identifiers for files and notes and unique names for
// stored payloads.
type UUIDGenerator struct {
	now func() time.Time
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{now: time.Now}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Filename returns a unique stored name for an upload of the form
// "<prefix>-<unix millis>-<uuid><ext>", keeping the lowercased extension of
// originalName. Directory components of originalName are ignored.
func (g *UUIDGenerator) Filename(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	b.WriteByte('-')
	b.WriteString(uuid.NewString())
	b.WriteString(ext)

	return b.String()
}
