package room

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"askroom/internal/store"
)

// apiResponse mirrors utils.APIResponse with a raw Data payload so each
// test can decode into its own type.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testRouter mounts the room handlers the same way the server does, over
// the given store, so path parameters resolve through chi.
func testRouter(st store.Store, h *UploadAudioHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/rooms", (&ListHandler{Store: st}).ServeHTTP)
	r.Post("/rooms", (&CreateHandler{Store: st}).ServeHTTP)
	r.Get("/rooms/{roomID}/questions", (&QuestionListHandler{Store: st}).ServeHTTP)
	r.Post("/rooms/{roomID}/questions", (&CreateQuestionHandler{Store: st}).ServeHTTP)
	if h == nil {
		h = &UploadAudioHandler{Store: st, Log: testLogger()}
	}
	r.Post("/rooms/{roomID}/audio", h.ServeHTTP)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}
