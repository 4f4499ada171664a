package server

import (
	"fmt"
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"askroom/internal/handlers"
	"askroom/internal/handlers/room"
	"askroom/internal/store"
	"askroom/internal/transcribe"
)

type Server struct {
	Addr        string
	Store       store.Store
	Transcriber transcribe.Transcriber
	FrontendURL string
	Log         *logrus.Logger
}

func NewServer(addr string, st store.Store, tr transcribe.Transcriber, frontendURL string, log *logrus.Logger) *Server {
	return &Server{
		Addr:        addr,
		Store:       st,
		Transcriber: tr,
		FrontendURL: frontendURL,
		Log:         log,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the chi router with CORS and request logging applied.
// Separate from Run so tests can drive it with httptest.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", s.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Mount routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "Welcome to askroom API! Server is running....")
	})
	r.Get("/health", handlers.HealthCheck)

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", HandlerFunc(&room.ListHandler{Store: s.Store}))
		r.Post("/", HandlerFunc(&room.CreateHandler{Store: s.Store}))
		r.Get("/{roomID}/questions", HandlerFunc(&room.QuestionListHandler{Store: s.Store}))
		r.Post("/{roomID}/questions", HandlerFunc(&room.CreateQuestionHandler{Store: s.Store}))
		r.Post("/{roomID}/audio", HandlerFunc(&room.UploadAudioHandler{
			Store:       s.Store,
			Transcriber: s.Transcriber,
			Log:         s.Log,
		}))
	})

	return r
}

func (s *Server) Run() error {
	s.Log.WithField("addr", s.Addr).Info("server listening")
	return http.ListenAndServe(s.Addr, s.Router())
}
