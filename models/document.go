// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// FileType classifies an uploaded file.
type FileType string

const (
	FileTypeReceipt FileType = "receipt"
	FileTypeManual  FileType = "manual"
	FileTypeOther   FileType = "other"
)

// FileTypes lists every accepted file type.
var FileTypes = []FileType{FileTypeReceipt, FileTypeManual, FileTypeOther}

// IsValid reports whether t is one of [FileTypes].
func (t FileType) IsValid() bool {
	for _, ft := range FileTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// FileStatus tracks the two-phase upload of a file.
type FileStatus string

const (
	// FileStatusPending marks metadata written before its payload was
	// confirmed in storage.
	FileStatusPending FileStatus = "pending"

	// FileStatusReady marks a record whose payload is stored.
	FileStatusReady FileStatus = "ready"
)

// FileRecord is the metadata of an uploaded file attached to a product.
type FileRecord struct {
	ID           string    `json:"id"`
	ProductID    int64     `json:"productId"`
	UserID       int64     `json:"userId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalname"`
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	FilePath     string    `json:"filePath"`
	Description  *string   `json:"description"`
	FileType     FileType  `json:"fileType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Status is internal to the upload pipeline.
	Status FileStatus `json:"-"`
}

// TableName returns the name of the database table
// associated with the FileRecord model.
func (f FileRecord) TableName() string {
	return "files"
}

// Note is a freeform text attached to a product.
type Note struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// FileUpload is a file received from a client, before it is persisted.
type FileUpload struct {
	ProductID    int64
	UserID       int64
	FileType     FileType
	Description  *string
	OriginalName string
	MimeType     string
	Size         int64

	// Content streams the payload. It is nil when no file was sent.
	Content io.Reader
}

// FileDownload is an opened payload together with its metadata.
// The caller must close Content.
type FileDownload struct {
	File    FileRecord
	Content io.ReadCloser
}
