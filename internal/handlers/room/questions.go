package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"askroom/internal/store"
	"askroom/internal/utils"
)

type QuestionListHandler struct {
	Store store.Store
}

// ServeHTTP handles GET /rooms/{roomID}/questions
//
// An unknown room yields an empty list rather than 404: the select is
// unconditional and a room with no questions looks the same.
func (h *QuestionListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	if roomID == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "room id required in path"})
		return
	}

	questions, err := h.Store.ListQuestions(r.Context(), roomID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to list questions"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "questions fetched", Data: questions})
}
