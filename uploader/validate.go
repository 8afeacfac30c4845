package uploader

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Per-type size caps, inclusive.
const (
	MaxImageSize = 10 << 20  // 10 MiB
	MaxVideoSize = 100 << 20 // 100 MiB
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
)

type FileKind string

const (
	KindImage FileKind = "image"
	KindVideo FileKind = "video"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".wmv": true, ".flv": true, ".webm": true,
}

// Classify maps a filename's extension to a supported file kind.
func Classify(filename string) (FileKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return KindImage, nil
	case videoExtensions[ext]:
		return KindVideo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}

// SizeLimit returns the inclusive byte cap for a file kind.
func SizeLimit(kind FileKind) int64 {
	if kind == KindVideo {
		return MaxVideoSize
	}
	return MaxImageSize
}

// ValidateFile rejects files with unrecognized extensions or sizes over the
// per-type cap. Extension checks run first: an unknown type is rejected
// regardless of size.
func ValidateFile(filename string, size int64) error {
	kind, err := Classify(filename)
	if err != nil {
		return err
	}
	if limit := SizeLimit(kind); size > limit {
		return fmt.Errorf("%w: %s %q is %d bytes, limit is %d", ErrFileTooLarge, kind, filename, size, limit)
	}
	return nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// StorageKey derives a collision-resistant object key from the upload time
// and a sanitized original name.
func StorageKey(now time.Time, filename string) string {
	return fmt.Sprintf("%d_%s", now.UnixMilli(), unsafeKeyChars.ReplaceAllString(filename, "_"))
}

// ContentType resolves the MIME type for a file, preferring the submitted
// value over the extension mapping.
func ContentType(filename, submitted string) string {
	if submitted != "" {
		return submitted
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
