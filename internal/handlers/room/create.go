package room

import (
	"encoding/json"
	"net/http"
	"strings"

	"askroom/internal/store"
	"askroom/internal/utils"
)

type CreateHandler struct {
	Store store.Store
}

type CreateRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ServeHTTP handles POST /rooms
func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "name is required"})
		return
	}

	created, err := h.Store.CreateRoom(r.Context(), req.Name, req.Description)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to create room"})
		return
	}
	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "room created", Data: created})
}
