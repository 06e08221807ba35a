package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotube/internal/common"
)

type MediaStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewMediaStorage(mongoClient *MongoClient, baseURL string) *MediaStorage {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &MediaStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: baseURL,
	}
}

// MediaFile is the stored-media descriptor handed back to publishers.
type MediaFile struct {
	ID         string               `json:"id"`
	URL        string               `json:"url"`
	Filename   string               `json:"filename"`
	Size       int64                `json:"size"`
	MimeType   string               `json:"mimeType"`
	FileType   common.MediaFileType `json:"fileType"`
	Duration   float64              `json:"duration"`
	UploadedBy string               `json:"uploadedBy"`
	UploadedAt time.Time            `json:"uploadedAt"`
}

// StoreFile uploads a local file into the media bucket. Duration is taken
// from the caller; nothing here decodes media.
func (ms *MediaStorage) StoreFile(ctx context.Context, localPath, uploaderID string, duration float64) (*MediaFile, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, common.InvalidArgument("media file is not readable")
	}
	defer f.Close()

	mimeType, err := sniffMimeType(f, localPath)
	if err != nil {
		return nil, common.Internal("failed to read media file", err)
	}
	return ms.UploadFile(ctx, filepath.Base(localPath), mimeType, uploaderID, duration, f)
}

func (ms *MediaStorage) UploadFile(ctx context.Context, filename, mimeType, uploaderID string, duration float64, content io.Reader) (*MediaFile, error) {
	fileType, ok := common.DetectFileType(mimeType)
	if !ok {
		return nil, common.InvalidArgument("unsupported media type " + mimeType)
	}

	now := time.Now().UTC()
	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   mimeType,
		"duration":    duration,
		"uploaded_by": uploaderID,
		"uploaded_at": now,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, common.Internal("upload failed", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, common.Internal("file copy failed", err)
	}
	if err := stream.Close(); err != nil {
		return nil, common.Internal("upload failed", err)
	}

	id := stream.FileID.(primitive.ObjectID).Hex()
	return &MediaFile{
		ID:         id,
		URL:        ms.baseURL + id,
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		FileType:   fileType,
		Duration:   duration,
		UploadedBy: uploaderID,
		UploadedAt: now,
	}, nil
}

// DownloadFile opens a stored file. The caller closes the returned stream.
func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, common.InvalidArgument("invalid file id")
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, common.NotFound("media file not found")
		}
		return nil, nil, common.Internal("download failed", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	mediaFile := &MediaFile{
		ID:         fileID,
		URL:        ms.baseURL + fileID,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		FileType:   common.MediaFileType(getStringFromMap(metadata, "file_type")),
		Duration:   getFloatFromMap(metadata, "duration"),
		UploadedBy: getStringFromMap(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}
	return stream, mediaFile, nil
}

func (ms *MediaStorage) DeleteFile(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return common.InvalidArgument("invalid file id")
	}
	if err := ms.gridFS.DeleteContext(ctx, objectID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return common.NotFound("media file not found")
		}
		return common.Internal("delete failed", err)
	}
	return nil
}

// FileIDFromURL recovers the file id from a locator this storage produced.
func (ms *MediaStorage) FileIDFromURL(url string) (string, bool) {
	if ms.baseURL == "" || !strings.HasPrefix(url, ms.baseURL) {
		return "", false
	}
	id := strings.TrimPrefix(url, ms.baseURL)
	if !primitive.IsValidObjectID(id) {
		return "", false
	}
	return id, true
}

// sniffMimeType prefers the extension and falls back to content sniffing.
// The reader is rewound afterwards.
func sniffMimeType(f *os.File, path string) (string, error) {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		mediaType, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediaType, nil
		}
	}

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind %s: %w", path, err)
	}
	return http.DetectContentType(head[:n]), nil
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getFloatFromMap(m bson.M, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
