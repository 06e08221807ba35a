package video

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/config"
	"gotube/internal/logging"
)

// multipart parts above this size spill to disk
const formMemory = 32 << 20

type Handler struct {
	videoService VideoService
	feed         config.FeedConfig
	media        config.MediaConfig
}

func NewHandler(videoService VideoService, cfg *config.Config) *Handler {
	return &Handler{videoService: videoService, feed: cfg.Feed, media: cfg.Media}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	videos := r.PathPrefix("/videos").Subrouter()
	videos.HandleFunc("", h.Discover).Methods(http.MethodGet)
	videos.HandleFunc("", h.PublishVideo).Methods(http.MethodPost)
	videos.HandleFunc("/toggle/publish/{videoId}", h.TogglePublishStatus).Methods(http.MethodPatch)
	videos.HandleFunc("/{videoId}", h.GetVideoByID).Methods(http.MethodGet)
	videos.HandleFunc("/{videoId}", h.UpdateVideo).Methods(http.MethodPatch)
	videos.HandleFunc("/{videoId}", h.DeleteVideo).Methods(http.MethodDelete)
}

func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := common.ParsePage(q.Get("page"), q.Get("limit"), h.feed.DefaultPageSize, h.feed.MaxPageSize)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	videos, err := h.videoService.Discover(r.Context(), common.ActorID(r), DiscoverQuery{
		Query:    q.Get("query"),
		UserID:   q.Get("userId"),
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		Page:     page,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "videos fetched successfully")
}

func (h *Handler) GetVideoByID(w http.ResponseWriter, r *http.Request) {
	v, err := h.videoService.GetVideoByID(r.Context(), common.ActorID(r), mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, v, "video fetched successfully")
}

func (h *Handler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.parseUpload(w, r)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer uploads.cleanup()

	in := PublishInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if raw := r.FormValue("duration"); raw != "" {
		in.Duration, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			common.WriteError(w, common.InvalidArgument("duration must be a number"))
			return
		}
	}
	if in.VideoFilePath, err = uploads.save(r, "videoFile"); err != nil {
		common.WriteError(w, err)
		return
	}
	if in.ThumbnailPath, err = uploads.save(r, "thumbnail"); err != nil {
		common.WriteError(w, err)
		return
	}

	v, err := h.videoService.PublishVideo(r.Context(), common.ActorID(r), in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, v, "video published successfully")
}

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.parseUpload(w, r)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer uploads.cleanup()

	var in UpdateInput
	if vals, ok := r.MultipartForm.Value["title"]; ok && len(vals) > 0 {
		in.Title = &vals[0]
	}
	if vals, ok := r.MultipartForm.Value["description"]; ok && len(vals) > 0 {
		in.Description = &vals[0]
	}
	if in.ThumbnailPath, err = uploads.save(r, "thumbnail"); err != nil {
		common.WriteError(w, err)
		return
	}

	v, err := h.videoService.UpdateVideo(r.Context(), common.ActorID(r), mux.Vars(r)["videoId"], in)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, v, "video updated successfully")
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.videoService.DeleteVideo(r.Context(), common.ActorID(r), mux.Vars(r)["videoId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, struct{}{}, "video deleted successfully")
}

func (h *Handler) TogglePublishStatus(w http.ResponseWriter, r *http.Request) {
	v, err := h.videoService.TogglePublishStatus(r.Context(), common.ActorID(r), mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, v, "publish status toggled successfully")
}

// tempUploads tracks the local copies of uploaded parts for one request.
type tempUploads struct {
	dir   string
	form  *multipart.Form
	paths []string
}

func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) (*tempUploads, error) {
	if h.media.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.media.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(formMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, common.InvalidArgument("upload is too large")
		}
		return nil, common.InvalidArgument("expected a multipart form")
	}
	return &tempUploads{dir: h.media.TempDir, form: r.MultipartForm}, nil
}

// save copies the named part to a temp file. A missing part yields "".
func (u *tempUploads) save(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", common.InvalidArgument("unreadable " + field)
	}
	defer file.Close()
	return u.write(file, header)
}

func (u *tempUploads) write(src multipart.File, header *multipart.FileHeader) (string, error) {
	dst, err := os.CreateTemp(u.dir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", common.Internal("failed to stage upload", err)
	}
	u.paths = append(u.paths, dst.Name())

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", common.Internal("failed to stage upload", err)
	}
	if err := dst.Close(); err != nil {
		return "", common.Internal("failed to stage upload", err)
	}
	return dst.Name(), nil
}

func (u *tempUploads) cleanup() {
	if u.form != nil {
		_ = u.form.RemoveAll()
	}
	for _, p := range u.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logging.Warn().Err(err).Str("path", p).Msg("failed to remove staged upload")
		}
	}
}
