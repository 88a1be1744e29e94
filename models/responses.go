// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Every response body carries a human-readable Message next to its payload.
// Error responses carry the Message only.

// MessageResponse is the body of error responses and plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    Identity `json:"user"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// ProductsResponse wraps the list of the caller's products.
type ProductsResponse struct {
	Message  string    `json:"message"`
	Products []Product `json:"products"`
}

// ProductDeletedResponse acknowledges a product deletion.
type ProductDeletedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// FileResponse wraps a single file record.
type FileResponse struct {
	Message string     `json:"message"`
	File    FileRecord `json:"file"`
}

// FilesResponse wraps the file records of a product.
type FilesResponse struct {
	Message string       `json:"message"`
	Files   []FileRecord `json:"files"`
}

// NoteResponse wraps a single note.
type NoteResponse struct {
	Message string `json:"message"`
	Note    Note   `json:"note"`
}

// NotesResponse wraps the notes of a product.
type NotesResponse struct {
	Message string `json:"message"`
	Notes   []Note `json:"notes"`
}

// DocumentDeletedResponse acknowledges a file or note deletion.
type DocumentDeletedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// NoteRequest is the body of note create and update requests.
type NoteRequest struct {
	Content string `json:"content"`
}
