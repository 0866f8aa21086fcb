package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"showsync/pkg/manager"
	"showsync/pkg/provider"
	"showsync/pkg/storage"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server houses the dependencies for the http api: logger and manager.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.ShowManager
}

// New creates a new api server
func New(logger *zap.SugaredLogger, manager manager.ShowManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// statusFromError maps the domain error taxonomy onto http status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, manager.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, manager.ErrAlreadyTracked):
		return http.StatusConflict
	case errors.Is(err, manager.ErrNotTracked),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, provider.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, provider.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, provider.ErrAuthFailed),
		errors.Is(err, provider.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s Server) routes() *mux.Router {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/search", s.SearchShows()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{upstreamID}", s.GetShow()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{upstreamID}/seasons", s.GetSeasons()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{upstreamID}/episodes", s.GetEpisodes()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{upstreamID}/cast", s.GetCast()).Methods(http.MethodGet)

	v1.HandleFunc("/discover/popular", s.DiscoverPopular()).Methods(http.MethodGet)
	v1.HandleFunc("/discover/recent", s.DiscoverRecent()).Methods(http.MethodGet)
	v1.HandleFunc("/discover/top-rated", s.DiscoverTopRated()).Methods(http.MethodGet)
	v1.HandleFunc("/genres", s.ListGenres()).Methods(http.MethodGet)

	v1.HandleFunc("/users/{userID}/shows", s.ListSubscriptions()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{userID}/favorites", s.ListFavorites()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{userID}/shows/{showID}", s.TrackShow()).Methods(http.MethodPost)
	v1.HandleFunc("/users/{userID}/shows/{showID}", s.UntrackShow()).Methods(http.MethodDelete)
	v1.HandleFunc("/users/{userID}/shows/{showID}", s.UpdateSubscription()).Methods(http.MethodPatch)
	v1.HandleFunc("/users/{userID}/shows/{showID}/progress", s.GetShowProgress()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{userID}/episodes/{episodeID}", s.SetEpisodeWatchStatus()).Methods(http.MethodPut)

	return rtr
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}),
	)(s.routes())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
