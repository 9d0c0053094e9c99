package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"
)

func newTestFeedClient(url string) *FeedClient {
	return NewFeedClient(url, 5*time.Second, 100, logger.New("error"), metrics.New(prometheus.NewRegistry()))
}

func TestFetchFeedDecodesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"Date":"6/1/2024","Core Campaign Name":"Summer Launch","Ads Campaign Name":"Video A",
			 "Platform":"Facebook","Objective":"Click","Impression":"1,000","Click":"50",
			 "Spent":"500","Budget":"1,000"}
		]`))
	}))
	defer srv.Close()

	records, err := newTestFeedClient(srv.URL).FetchFeed(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Summer Launch", records[0].Campaign)
	assert.Equal(t, "Video A", records[0].AdsName)
	assert.Equal(t, "1,000", records[0].Impression)
}

func TestFetchFeedNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	records, err := newTestFeedClient(srv.URL).FetchFeed(context.Background())

	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchFeedMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	records, err := newTestFeedClient(srv.URL).FetchFeed(context.Background())

	assert.Nil(t, records)
	assert.Error(t, err)
}

func TestFetchFeedNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	records, err := newTestFeedClient(srv.URL).FetchFeed(context.Background())

	assert.Nil(t, records)
	assert.Error(t, err)
}

func TestFetchFeedHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	records, err := newTestFeedClient(srv.URL).FetchFeed(ctx)

	assert.Nil(t, records)
	assert.Error(t, err)
}
