package room

import (
	"net/http"

	"askroom/internal/store"
	"askroom/internal/utils"
)

type ListHandler struct {
	Store store.Store
}

// ServeHTTP handles GET /rooms
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Store.ListRooms(r.Context())
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to list rooms"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "rooms fetched", Data: rooms})
}
