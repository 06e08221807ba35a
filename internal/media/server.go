package media

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/dbmongo"
	"gotube/internal/logging"
)

// FileSource opens stored media by id.
type FileSource interface {
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

// HTTPServer streams stored media. It sits outside the authenticated API
// so media locators can be used directly by players.
type HTTPServer struct {
	storage FileSource
}

func NewHTTPServer(storage FileSource) *HTTPServer {
	return &HTTPServer{storage: storage}
}

func (s *HTTPServer) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media/{fileID}", s.serveFile).Methods(http.MethodGet)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileID"]

	fileReader, mediaFile, err := s.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer fileReader.Close()

	contentType := mediaFile.MimeType
	if contentType == "" {
		contentType = getContentType(mediaFile.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(mediaFile.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, fileReader); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("file_id", fileID).Msg("error streaming file")
	}
}

// getContentType covers files stored without a recorded mime type.
func getContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	default:
		return "application/octet-stream"
	}
}
