package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.writeMessage(w, "Not found", http.StatusNotFound)
		return
	}
	if _, err := w.Write([]byte("I am the backend!")); err != nil {
		slog.Error("Unable to write root response", "err", err)
	}
}

// HandleUploads serves raw image bytes. No authentication: uploaded files
// are public once stored, matching the listing paths handed to clients.
func (h *Handler) HandleUploads(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/uploads/")

	// Prevent directory traversal attacks
	if strings.Contains(filename, "..") {
		h.writeMessage(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := h.files.Read(filename)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// ServeContent infers the content type from the file extension.
	http.ServeContent(w, r, filename, time.Time{}, bytes.NewReader(data))
}
