package imageload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

var (
	// ErrRemoteImage is returned for http(s) sources; assets are local only.
	ErrRemoteImage = errors.New("remote images are not loaded")
	// ErrNotImage is returned when an asset is empty or not a known image type.
	ErrNotImage = errors.New("not an image")
)

// Loader loads an image source.
type Loader interface {
	Load(ctx context.Context, src string) error
}

// FSLoader resolves image sources inside an asset filesystem. A source such
// as "/observation-images/observation-001.svg?cb=1" maps to
// "observation-images/observation-001.svg" in FS.
type FSLoader struct {
	FS fs.FS
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{FS: fsys}
}

func (l *FSLoader) Load(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := AssetPath(src)
	if err != nil {
		return err
	}
	if l.FS == nil {
		return fmt.Errorf("load %s: %w", name, fs.ErrNotExist)
	}

	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if !isImage(data) {
		return fmt.Errorf("load %s: %w", name, ErrNotImage)
	}
	return nil
}

// AssetPath converts an image source into a slash-separated fs path.
func AssetPath(src string) (string, error) {
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return "", fmt.Errorf("%s: %w", src, ErrRemoteImage)
	}

	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	name := strings.TrimPrefix(path.Clean("/"+src), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid image path %q: %w", src, fs.ErrInvalid)
	}
	return name, nil
}

func isImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if strings.HasPrefix(http.DetectContentType(data), "image/") {
		return true
	}
	// DetectContentType reports SVG as text/xml or text/plain.
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}
