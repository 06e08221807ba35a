package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/config"
)

type contentRequest struct {
	Content string `json:"content" validate:"required"`
}

type Handler struct {
	commentService CommentService
	feed           config.FeedConfig
}

func NewHandler(commentService CommentService, cfg *config.Config) *Handler {
	return &Handler{commentService: commentService, feed: cfg.Feed}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	comments := r.PathPrefix("/comments").Subrouter()
	comments.HandleFunc("/v/{videoId}", h.VideoComments).Methods(http.MethodGet)
	comments.HandleFunc("/v/{videoId}", h.AddComment).Methods(http.MethodPost)
	comments.HandleFunc("/c/{commentId}", h.UpdateComment).Methods(http.MethodPatch)
	comments.HandleFunc("/c/{commentId}", h.DeleteComment).Methods(http.MethodDelete)
}

func (h *Handler) VideoComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := common.ParsePage(q.Get("page"), q.Get("limit"), h.feed.DefaultPageSize, h.feed.MaxPageSize)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	comments, err := h.commentService.VideoComments(r.Context(), common.ActorID(r), mux.Vars(r)["videoId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, comments, "comments fetched successfully")
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	c, err := h.commentService.AddComment(r.Context(), common.ActorID(r), mux.Vars(r)["videoId"], req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, c, "comment added successfully")
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	c, err := h.commentService.UpdateComment(r.Context(), common.ActorID(r), mux.Vars(r)["commentId"], req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, c, "comment updated successfully")
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.commentService.DeleteComment(r.Context(), common.ActorID(r), mux.Vars(r)["commentId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, struct{}{}, "comment deleted successfully")
}
