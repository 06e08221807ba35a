package like

import (
	"net/http"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/toggle"
)

type Handler struct {
	likeService LikeService
}

func NewHandler(likeService LikeService) *Handler {
	return &Handler{likeService: likeService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	likes := r.PathPrefix("/likes").Subrouter()
	likes.HandleFunc("/toggle/v/{videoId}", h.toggle(common.TargetVideo, "videoId")).Methods(http.MethodPost)
	likes.HandleFunc("/toggle/c/{commentId}", h.toggle(common.TargetComment, "commentId")).Methods(http.MethodPost)
	likes.HandleFunc("/toggle/t/{tweetId}", h.toggle(common.TargetTweet, "tweetId")).Methods(http.MethodPost)
	likes.HandleFunc("/videos", h.LikedVideos).Methods(http.MethodGet)
}

func (h *Handler) toggle(kind common.TargetKind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.likeService.ToggleLike(r.Context(), common.ActorID(r), kind, mux.Vars(r)[param])
		if err != nil {
			common.WriteError(w, err)
			return
		}

		msg := kind.String() + " liked"
		if res.State == toggle.Removed {
			msg = kind.String() + " unliked"
		}
		common.WriteSuccess(w, http.StatusOK, res, msg)
	}
}

func (h *Handler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.likeService.LikedVideos(r.Context(), common.ActorID(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "liked videos fetched successfully")
}
