package room

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"askroom/internal/store"
	"askroom/internal/transcribe"
	"askroom/internal/utils"
)

// maxAudioBytes caps an uploaded clip at 25 MiB.
const maxAudioBytes = 25 << 20

type UploadAudioHandler struct {
	Store       store.Store
	Transcriber transcribe.Transcriber
	Log         *logrus.Logger
}

// ServeHTTP handles POST /rooms/{roomID}/audio
//
// The clip is transcribed before the insert when a transcriber is
// configured. Transcription is best effort: on failure the chunk is
// stored with a NULL transcript and the upload still succeeds.
func (h *UploadAudioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	if roomID == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "room id required in path"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "audio file is required"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "failed to read audio file"})
		return
	}
	if len(audio) == 0 {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "audio file is empty"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	var transcript *string
	if h.Transcriber != nil {
		text, err := h.Transcriber.Transcribe(r.Context(), audio, mimeType)
		if err != nil {
			h.Log.WithError(err).WithField("room_id", roomID).Warn("transcription failed, storing chunk without transcript")
		} else {
			transcript = &text
		}
	}

	chunk, err := h.Store.CreateAudioChunk(r.Context(), roomID, audio, transcript)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to store audio chunk"})
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "audio uploaded",
		Data:    map[string]interface{}{"id": chunk.ID},
	})
}
