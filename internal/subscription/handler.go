package subscription

import (
	"net/http"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/toggle"
)

type Handler struct {
	subscriptionService SubscriptionService
}

func NewHandler(subscriptionService SubscriptionService) *Handler {
	return &Handler{subscriptionService: subscriptionService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	subs := r.PathPrefix("/subscriptions").Subrouter()
	subs.HandleFunc("/c/{channelId}", h.ToggleSubscription).Methods(http.MethodPost)
	subs.HandleFunc("/c/{channelId}", h.ChannelSubscribers).Methods(http.MethodGet)
	subs.HandleFunc("/subscribed", h.SubscribedChannels).Methods(http.MethodGet)
}

func (h *Handler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	res, err := h.subscriptionService.ToggleSubscription(r.Context(), common.ActorID(r), mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	msg := "subscribed successfully"
	if res.State == toggle.Removed {
		msg = "unsubscribed successfully"
	}
	common.WriteSuccess(w, http.StatusOK, res, msg)
}

func (h *Handler) ChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	list, err := h.subscriptionService.ChannelSubscribers(r.Context(), mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, list, "subscribers fetched successfully")
}

func (h *Handler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.subscriptionService.SubscribedChannels(r.Context(), common.ActorID(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, channels, "subscribed channels fetched successfully")
}
