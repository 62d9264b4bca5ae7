package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(rssPayload))
	}))
	defer srv.Close()

	items, err := NewClient().Fetch(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
}

func TestClientFetchFollowsRedirect(t *testing.T) {
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, srvURL+"/feed", http.StatusMovedPermanently)
			return
		}
		w.Write([]byte(rssPayload))
	}))
	defer srv.Close()
	srvURL = srv.URL

	items, err := NewClient().Fetch(context.Background(), srv.URL+"/old")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
}

func TestClientFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient().Fetch(context.Background(), srv.URL)

	assert.NotEqual(t, nil, err)
}

func TestClientFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient().Fetch(context.Background(), srv.URL)

	assert.NotEqual(t, nil, err)
}
