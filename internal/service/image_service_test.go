package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"gamevault/backend/internal/repository"
	"gamevault/backend/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image-payload")

func newImageService(t *testing.T, cfg ImageConfig) (*ImageService, *blob.Bucket) {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	return NewImageService(repository.NewImageRepository(testdb.New(t)), bucket, cfg), bucket
}

func imageServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		switch r.URL.Path {
		case "/cover.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngBytes)
		case "/page.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownloadStoresImage(t *testing.T) {
	svc, bucket := newImageService(t, ImageConfig{})
	var hits atomic.Int32
	srv := imageServer(t, &hits)
	ctx := context.Background()

	img, err := svc.Download(ctx, srv.URL+"/cover.png")
	require.NoError(t, err)
	assert.NotZero(t, img.ID)
	assert.Equal(t, "image/png", img.MediaType)
	assert.EqualValues(t, len(pngBytes), img.Size)
	assert.True(t, strings.HasSuffix(img.Path, ".png"))

	stored, err := bucket.ReadAll(ctx, img.Path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)

	again, err := svc.Download(ctx, srv.URL+"/cover.png")
	require.NoError(t, err)
	assert.Equal(t, img.ID, again.ID)
	assert.EqualValues(t, 1, hits.Load())
}

func TestDownloadRejectsBadResponses(t *testing.T) {
	svc, _ := newImageService(t, ImageConfig{MaxBytes: 4})
	srv := imageServer(t, nil)
	ctx := context.Background()

	_, err := svc.Download(ctx, srv.URL+"/page.html")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	_, err = svc.Download(ctx, srv.URL+"/cover.png")
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = svc.Download(ctx, srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestOpenAndFindByIDOrFail(t *testing.T) {
	svc, _ := newImageService(t, ImageConfig{})
	srv := imageServer(t, nil)
	ctx := context.Background()

	_, err := svc.FindByIDOrFail(ctx, 1)
	assert.ErrorIs(t, err, ErrImageNotFound)

	img, err := svc.Download(ctx, srv.URL+"/cover.png")
	require.NoError(t, err)

	found, r, err := svc.Open(ctx, img.ID)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, img.Path, found.Path)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}
