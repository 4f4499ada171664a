package room

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"askroom/internal/store"
	"askroom/internal/utils"
)

type CreateQuestionHandler struct {
	Store store.Store
}

type CreateQuestionRequest struct {
	Question string `json:"question"`
}

// ServeHTTP handles POST /rooms/{roomID}/questions
func (h *CreateQuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	if roomID == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "room id required in path"})
		return
	}

	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "question is required"})
		return
	}

	created, err := h.Store.CreateQuestion(r.Context(), roomID, req.Question)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to create question"})
		return
	}
	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "question created", Data: created})
}
