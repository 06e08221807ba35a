package tweet

import (
	"net/http"

	"github.com/gorilla/mux"

	"gotube/internal/common"
)

type contentRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

type Handler struct {
	tweetService TweetService
}

func NewHandler(tweetService TweetService) *Handler {
	return &Handler{tweetService: tweetService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	tweets := r.PathPrefix("/tweets").Subrouter()
	tweets.HandleFunc("", h.CreateTweet).Methods(http.MethodPost)
	tweets.HandleFunc("/user/{userId}", h.UserTweets).Methods(http.MethodGet)
	tweets.HandleFunc("/{tweetId}", h.UpdateTweet).Methods(http.MethodPatch)
	tweets.HandleFunc("/{tweetId}", h.DeleteTweet).Methods(http.MethodDelete)
}

func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	t, err := h.tweetService.CreateTweet(r.Context(), common.ActorID(r), req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, t, "tweet created successfully")
}

func (h *Handler) UserTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweetService.UserTweets(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, tweets, "tweets fetched successfully")
}

func (h *Handler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	t, err := h.tweetService.UpdateTweet(r.Context(), common.ActorID(r), mux.Vars(r)["tweetId"], req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, t, "tweet updated successfully")
}

func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	if err := h.tweetService.DeleteTweet(r.Context(), common.ActorID(r), mux.Vars(r)["tweetId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, struct{}{}, "tweet deleted successfully")
}
