package playlist

import (
	"net/http"

	"github.com/gorilla/mux"

	"gotube/internal/common"
)

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type Handler struct {
	playlistService PlaylistService
}

func NewHandler(playlistService PlaylistService) *Handler {
	return &Handler{playlistService: playlistService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	playlists := r.PathPrefix("/playlists").Subrouter()
	playlists.HandleFunc("", h.CreatePlaylist).Methods(http.MethodPost)
	playlists.HandleFunc("/user/{userId}", h.UserPlaylists).Methods(http.MethodGet)
	playlists.HandleFunc("/add/{videoId}/{playlistId}", h.AddVideo).Methods(http.MethodPatch)
	playlists.HandleFunc("/remove/{videoId}/{playlistId}", h.RemoveVideo).Methods(http.MethodPatch)
	playlists.HandleFunc("/{playlistId}", h.PlaylistByID).Methods(http.MethodGet)
	playlists.HandleFunc("/{playlistId}", h.UpdatePlaylist).Methods(http.MethodPatch)
	playlists.HandleFunc("/{playlistId}", h.DeletePlaylist).Methods(http.MethodDelete)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	p, err := h.playlistService.CreatePlaylist(r.Context(), common.ActorID(r), req.Name, req.Description)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, p, "playlist created successfully")
}

func (h *Handler) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistService.UserPlaylists(r.Context(), common.ActorID(r), mux.Vars(r)["userId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, playlists, "playlists fetched successfully")
}

func (h *Handler) PlaylistByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.playlistService.PlaylistByID(r.Context(), common.ActorID(r), mux.Vars(r)["playlistId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, p, "playlist fetched successfully")
}

func (h *Handler) AddVideo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	p, err := h.playlistService.AddVideo(r.Context(), common.ActorID(r), vars["playlistId"], vars["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, p, "video added to playlist")
}

func (h *Handler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	p, err := h.playlistService.RemoveVideo(r.Context(), common.ActorID(r), vars["playlistId"], vars["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, p, "video removed from playlist")
}

func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	p, err := h.playlistService.UpdatePlaylist(r.Context(), common.ActorID(r), mux.Vars(r)["playlistId"], UpdateFields{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, p, "playlist updated successfully")
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := h.playlistService.DeletePlaylist(r.Context(), common.ActorID(r), mux.Vars(r)["playlistId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, struct{}{}, "playlist deleted successfully")
}
