package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"showsync/pkg/logger"
	"showsync/pkg/manager"
)

func upstreamIDVar(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["upstreamID"], 10, 64)
	return id, err == nil
}

// SearchShows searches the upstream provider for shows
func (s Server) SearchShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		query := r.URL.Query().Get("query")

		results, err := s.manager.SearchShows(r.Context(), query)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: results})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetShow serves a show by its upstream id, fetching it on a local miss
func (s Server) GetShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, ok := upstreamIDVar(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		show, err := s.manager.GetShow(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: show})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetSeasons serves a show's seasons
func (s Server) GetSeasons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, ok := upstreamIDVar(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		seasons, err := s.manager.GetSeasons(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: seasons})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetEpisodes serves a show's episodes in airing order
func (s Server) GetEpisodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, ok := upstreamIDVar(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		episodes, err := s.manager.GetEpisodes(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: episodes})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetCast serves a show's cast straight from the provider
func (s Server) GetCast() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, ok := upstreamIDVar(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		cast, err := s.manager.GetCast(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: cast})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func discoverFilter(r *http.Request) manager.DiscoverFilter {
	filter := manager.DiscoverFilter{
		Genre: r.URL.Query().Get("genre"),
	}
	if limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}

func (s Server) discover(list func(*http.Request) ([]manager.Show, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		shows, err := list(r)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: shows})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// DiscoverPopular serves the popular listing
func (s Server) DiscoverPopular() http.HandlerFunc {
	return s.discover(func(r *http.Request) ([]manager.Show, error) {
		return s.manager.GetPopularShows(r.Context(), discoverFilter(r))
	})
}

// DiscoverRecent serves the recently premiered listing
func (s Server) DiscoverRecent() http.HandlerFunc {
	return s.discover(func(r *http.Request) ([]manager.Show, error) {
		return s.manager.GetRecentShows(r.Context(), discoverFilter(r))
	})
}

// DiscoverTopRated serves the top rated listing
func (s Server) DiscoverTopRated() http.HandlerFunc {
	return s.discover(func(r *http.Request) ([]manager.Show, error) {
		return s.manager.GetTopRatedShows(r.Context(), discoverFilter(r))
	})
}

// ListGenres serves the distinct genres across stored shows
func (s Server) ListGenres() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		genres, err := s.manager.GetAllGenres(r.Context())
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: genres})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
