package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"showsync/pkg/logger"
	"showsync/pkg/manager"
	"showsync/pkg/storage"
)

func userShowVars(r *http.Request) (string, int64, bool) {
	vars := mux.Vars(r)
	showID, err := strconv.ParseInt(vars["showID"], 10, 64)
	return vars["userID"], showID, err == nil
}

// TrackShow subscribes a user to a stored show
func (s Server) TrackShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		userID, showID, ok := userShowVars(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		sub, err := s.manager.Track(r.Context(), userID, showID)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusCreated, GenericResponse{Response: sub})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// UntrackShow removes a subscription and the user's watch history for it
func (s Server) UntrackShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, showID, ok := userShowVars(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		if err := s.manager.Untrack(r.Context(), userID, showID); err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

// UpdateSubscription patches a tracked show's status and favorite flag
func (s Server) UpdateSubscription() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		userID, showID, ok := userShowVars(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		defer r.Body.Close()

		var patch manager.SubscriptionPatch
		if err := json.Unmarshal(b, &patch); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		sub, err := s.manager.UpdateSubscription(r.Context(), userID, showID, patch)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: sub})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ListSubscriptions lists a user's tracked shows, optionally by status
func (s Server) ListSubscriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		userID := mux.Vars(r)["userID"]
		status := r.URL.Query().Get("status")

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		subs, err := s.manager.ListSubscriptions(r.Context(), userID, status)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, PaginatedResponse{
			Response: pageOf(subs, params),
			Meta:     params.BuildMeta(len(subs)),
		})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ListFavorites lists a user's favorite tracked shows
func (s Server) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		userID := mux.Vars(r)["userID"]

		subs, err := s.manager.ListFavorites(r.Context(), userID)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: subs})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetShowProgress serves a user's per-season progress for one show
func (s Server) GetShowProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		userID, showID, ok := userShowVars(r)
		if !ok {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		progress, err := s.manager.GetShowProgress(r.Context(), userID, showID)
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: progress})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

type watchStatusRequest struct {
	Status string `json:"status"`
}

// SetEpisodeWatchStatus records a watch state for one episode
func (s Server) SetEpisodeWatchStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := vars["userID"]
		episodeID, err := strconv.ParseInt(vars["episodeID"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, manager.ErrInvalidInput)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		defer r.Body.Close()

		var req watchStatusRequest
		if err := json.Unmarshal(b, &req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = s.manager.SetEpisodeWatchStatus(r.Context(), userID, episodeID, storage.EpisodeWatchStatus(req.Status))
		if err != nil {
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}
