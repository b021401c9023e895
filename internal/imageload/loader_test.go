package imageload

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"observation-images/observation-001.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)},
		"cover.png": {Data: pngHeader},
		"empty.png": {Data: nil},
		"notes.txt": {Data: []byte("hello")},
	}
}

func TestAssetPath(t *testing.T) {
	tests := []struct {
		src     string
		want    string
		wantErr error
	}{
		{src: "/observation-images/observation-001.svg", want: "observation-images/observation-001.svg"},
		{src: "/observation-images/observation-001.svg?cb=1", want: "observation-images/observation-001.svg"},
		{src: "cover.png#frag", want: "cover.png"},
		{src: "/a/../b.png", want: "b.png"},
		{src: "https://example.com/a.png", wantErr: ErrRemoteImage},
		{src: "HTTP://example.com/a.png", wantErr: ErrRemoteImage},
		{src: "/", wantErr: fs.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := AssetPath(tt.src)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFSLoader(t *testing.T) {
	l := NewFSLoader(testFS())
	ctx := context.Background()

	assert.NoError(t, l.Load(ctx, "/observation-images/observation-001.svg"))
	assert.NoError(t, l.Load(ctx, "/observation-images/observation-001.svg?cb=1"))
	assert.NoError(t, l.Load(ctx, "cover.png"))

	assert.ErrorIs(t, l.Load(ctx, "missing.png"), fs.ErrNotExist)
	assert.ErrorIs(t, l.Load(ctx, "empty.png"), ErrNotImage)
	assert.ErrorIs(t, l.Load(ctx, "notes.txt"), ErrNotImage)
	assert.ErrorIs(t, l.Load(ctx, "https://cdn/x.png"), ErrRemoteImage)
}

func TestFSLoaderNilFS(t *testing.T) {
	l := NewFSLoader(nil)
	assert.ErrorIs(t, l.Load(context.Background(), "cover.png"), fs.ErrNotExist)
}

func TestFSLoaderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewFSLoader(testFS()).Load(ctx, "cover.png"), context.Canceled)
}

func TestLoadCmd(t *testing.T) {
	l := NewFSLoader(testFS())

	msg := LoadCmd(l, "k", "cover.png")()
	assert.Equal(t, LoadedMsg{Key: "k", Src: "cover.png"}, msg)

	msg = LoadCmd(l, "k", "missing.png")()
	failed, ok := msg.(FailedMsg)
	require.True(t, ok)
	assert.Equal(t, "missing.png", failed.Src)
	assert.Error(t, failed.Err)

	msg = LoadCmd(nil, "k", "cover.png")()
	_, ok = msg.(FailedMsg)
	assert.True(t, ok)
}
