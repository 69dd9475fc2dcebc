package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) HandleLabel(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case "POST":
		var request struct {
			Label string `json:"label"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.writeMessage(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.gallery.CreateLabel(user, request.Label); err != nil {
			h.writeError(w, err)
			return
		}
		h.writeMessage(w, "Label created successfully", http.StatusOK)
	case "DELETE":
		var request struct {
			Labels []string `json:"labels"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.writeMessage(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.gallery.DeleteLabels(user, request.Labels); err != nil {
			h.writeError(w, err)
			return
		}
		h.writeMessage(w, "Labels deleted successfully", http.StatusOK)
	default:
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
