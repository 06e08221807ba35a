package common

import "strings"

// TargetKind tags what a Like points at. Exactly one kind per row.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

func (tk TargetKind) String() string {
	return string(tk)
}

func (tk TargetKind) IsValid() bool {
	switch tk {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

func ParseTargetKind(raw string) (TargetKind, error) {
	tk := TargetKind(strings.ToLower(strings.TrimSpace(raw)))
	if !tk.IsValid() {
		return "", InvalidArgument("unknown like target " + raw)
	}
	return tk, nil
}

// MediaFileType classifies uploads kept in the media store
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType maps a MIME type to a media type. Anything that is neither
// image/* nor video/* is rejected.
func DetectFileType(mimeType string) (MediaFileType, bool) {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaFileTypeImage, true
	}
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaFileTypeVideo, true
	}
	return "", false
}
