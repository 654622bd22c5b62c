package imagesvc_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/imagesvc"
	"github.com/pkordes/trip-planner/backend/testutil"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func unsplash(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID key", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "/placeholder.svg?height=400&width=600&text=New%20York", imagesvc.Placeholder("New York"))
	assert.Equal(t, "/placeholder.svg?height=400&width=600&text=S%C3%A3o%20Paulo", imagesvc.Placeholder("São Paulo"))
}

func TestDestinationImage_NoKeyUsesPlaceholder(t *testing.T) {
	s := imagesvc.New("")

	assert.Equal(t, imagesvc.Placeholder("Goa"), s.DestinationImage(context.Background(), "Goa"))
}

func TestDestinationImage_CachesHits(t *testing.T) {
	srv, calls := unsplash(t, http.StatusOK, `{"results":[{"urls":{"regular":"https://images.unsplash.com/goa"}}]}`)
	s := imagesvc.New("key",
		imagesvc.WithBaseURL(srv.URL),
		imagesvc.WithCache(imagesvc.NewMemoryCache(time.Minute)),
		imagesvc.WithLogger(discard))

	first := s.DestinationImage(context.Background(), "Goa")
	second := s.DestinationImage(context.Background(), " goa ")

	assert.Equal(t, "https://images.unsplash.com/goa", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, *calls)
}

func TestDestinationImage_NoResults(t *testing.T) {
	srv, calls := unsplash(t, http.StatusOK, `{"results":[]}`)
	s := imagesvc.New("key",
		imagesvc.WithBaseURL(srv.URL),
		imagesvc.WithCache(imagesvc.NewMemoryCache(time.Minute)),
		imagesvc.WithLogger(discard))

	assert.Equal(t, imagesvc.Placeholder("Atlantis"), s.DestinationImage(context.Background(), "Atlantis"))
	s.DestinationImage(context.Background(), "Atlantis")
	assert.Equal(t, 2, *calls, "placeholders are not cached")
}

func TestDestinationImage_UpstreamErrorUsesPlaceholder(t *testing.T) {
	srv, _ := unsplash(t, http.StatusForbidden, `{"errors":["OAuth error"]}`)
	s := imagesvc.New("key", imagesvc.WithBaseURL(srv.URL), imagesvc.WithLogger(discard))

	assert.Equal(t, imagesvc.Placeholder("Goa"), s.DestinationImage(context.Background(), "Goa"))
}

func TestMemoryCache_Expires(t *testing.T) {
	c := imagesvc.NewMemoryCache(time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))

	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(20 * time.Millisecond)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	url := testutil.RedisURL(t)
	ctx := context.Background()
	client, err := imagesvc.DialRedis(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	c := imagesvc.NewRedisCache(client, "test:images:")

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "goa", "https://images.unsplash.com/goa", time.Minute))
	v, ok, err := c.Get(ctx, "goa")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://images.unsplash.com/goa", v)
}
