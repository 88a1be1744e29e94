// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/service"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/go-chi/chi/v5"
)

const (
	// multipartMemory is the part of a multipart form kept in memory; the
	// rest is spooled to temporary files.
	multipartMemory = 1 << 20

	// multipartOverhead is allowed on top of the upload cap for boundaries,
	// part headers and the description field.
	multipartOverhead = 64 << 10

	descriptionField = "description"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload := models.FileUpload{
		ProductID: productID,
		UserID:    ownerID,
		FileType:  models.FileType(chi.URLParam(r, "fileType")),
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	err = r.ParseMultipartForm(multipartMemory)
	if r.MultipartForm != nil {
		defer func() {
			_ = r.MultipartForm.RemoveAll()
		}()
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		writeError(w, r, service.ErrFileTooLarge)
		return
	case errors.Is(err, http.ErrNotMultipart):
		// no payload at all; reported by validation
	case err != nil:
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return
	}

	if err == nil {
		if description := r.FormValue(descriptionField); description != "" {
			upload.Description = &description
		}

		file, header, formErr := r.FormFile(service.UploadFieldName)
		switch {
		case errors.Is(formErr, http.ErrMissingFile):
		case formErr != nil:
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, formErr))
			return
		default:
			defer file.Close()

			upload.Content = file
			upload.OriginalName = filepath.Base(header.Filename)
			upload.MimeType = header.Header.Get("Content-Type")
			upload.Size = header.Size
		}
	}

	record, err := h.services.DocumentService.UploadFile(r.Context(), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.FileResponse{
		Message: "File uploaded and saved successfully",
		File:    record,
	}, http.StatusCreated)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	files, err := h.services.DocumentService.ListFiles(r.Context(), ownerID, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if files == nil {
		files = []models.FileRecord{}
	}

	_, _ = utils.WriteJSON(w, models.FilesResponse{
		Message: "Files fetched successfully",
		Files:   files,
	}, http.StatusOK)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	download, err := h.services.DocumentService.DownloadFile(r.Context(), ownerID, chi.URLParam(r, "fileId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer download.Content.Close()

	mimeType := download.File.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", contentDisposition(download.File.OriginalName))
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, download.Content); err != nil {
		logger.FromRequest(r).Err(err).Str("file_id", download.File.ID).Msg("file download interrupted")
	}
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deletedID, err := h.services.DocumentService.DeleteFile(r.Context(), ownerID, chi.URLParam(r, "fileId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DocumentDeletedResponse{
		Message: "File deleted successfully",
		ID:      deletedID,
	}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.NoteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.DocumentService.CreateNote(r.Context(), models.Note{
		ProductID: productID,
		UserID:    ownerID,
		Content:   req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NoteResponse{
		Message: "Note added successfully",
		Note:    note,
	}, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	notes, err := h.services.DocumentService.ListNotes(r.Context(), ownerID, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	_, _ = utils.WriteJSON(w, models.NotesResponse{
		Message: "Notes fetched successfully",
		Notes:   notes,
	}, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.NoteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.DocumentService.UpdateNote(r.Context(), models.Note{
		ID:      chi.URLParam(r, "noteId"),
		UserID:  ownerID,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NoteResponse{
		Message: "Note updated successfully",
		Note:    note,
	}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deletedID, err := h.services.DocumentService.DeleteNote(r.Context(), ownerID, chi.URLParam(r, "noteId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DocumentDeletedResponse{
		Message: "Note deleted successfully",
		ID:      deletedID,
	}, http.StatusOK)
}

// contentDisposition builds an attachment header that makes clients save the
// payload under its original name. Names outside printable ASCII are encoded
// per RFC 2231.
func contentDisposition(filename string) string {
	filename = filepath.Base(filename)

	for i := 0; i < len(filename); i++ {
		if filename[i] < 0x20 || filename[i] > 0x7e {
			return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
		}
	}

	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(filename)
	return `attachment; filename="` + escaped + `"`
}
