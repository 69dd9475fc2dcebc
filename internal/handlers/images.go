package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/picshelf/picshelf/internal/gallery"
)

// maxUploadBytes caps each uploaded file at 10MB.
const maxUploadBytes = 10 * 1024 * 1024

func (h *Handler) HandleImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	page := intQuery(r, "page", 1)
	perPage := intQuery(r, "per_page", 10)

	h.writeJSON(w, h.gallery.ListImages(page, perPage))
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.writeMessage(w, "No files part", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["file"]
	}
	if len(headers) == 0 {
		h.writeMessage(w, "No files part", http.StatusBadRequest)
		return
	}

	uploads := make([]gallery.Upload, 0, len(headers))
	for _, header := range headers {
		data, err := readUpload(header)
		if err != nil {
			h.writeMessage(w, err.Error(), http.StatusBadRequest)
			return
		}
		uploads = append(uploads, gallery.Upload{
			Filename: header.Filename,
			Data:     data,
		})
	}

	if err := h.gallery.SaveUploads(user, uploads); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeMessage(w, "Files uploaded successfully", http.StatusOK)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Limit file size to 10MB
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, err
	}
	if len(data) >= maxUploadBytes {
		return nil, errors.New("File too large (max 10MB)")
	}
	return data, nil
}

// intQuery parses a positive integer query parameter, falling back to def
// when the parameter is absent or malformed.
func intQuery(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
