package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/config"
)

type Handler struct {
	dashboardService DashboardService
	feed             config.FeedConfig
}

func NewHandler(dashboardService DashboardService, cfg *config.Config) *Handler {
	return &Handler{dashboardService: dashboardService, feed: cfg.Feed}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	dashboard := r.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/stats/{channelId}", h.ChannelStats).Methods(http.MethodGet)
	dashboard.HandleFunc("/videos/{channelId}", h.ChannelVideos).Methods(http.MethodGet)
}

func (h *Handler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.ChannelStats(r.Context(), mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, stats, "channel stats fetched successfully")
}

func (h *Handler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := common.ParsePage(q.Get("page"), q.Get("limit"), h.feed.DefaultPageSize, h.feed.MaxPageSize)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	videos, err := h.dashboardService.ChannelVideos(r.Context(), common.ActorID(r), mux.Vars(r)["channelId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "channel videos fetched successfully")
}
