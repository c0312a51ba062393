package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpclient "github.com/piresc/routefinder/internal/pkg/http"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
)

var curitiba = models.Coordinate{Latitude: -25.4300, Longitude: -49.2800}

type scriptedSearcher struct {
	calls   int
	results []error
	coord   models.Coordinate
	found   bool
}

func (s *scriptedSearcher) Search(ctx context.Context, query string) (models.Coordinate, bool, error) {
	i := s.calls
	s.calls++
	if i < len(s.results) && s.results[i] != nil {
		return models.Coordinate{}, false, s.results[i]
	}
	return s.coord, s.found, nil
}

type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func testPolicy(attempts int, sleeper *sleepRecorder) retry.Policy {
	policy := DefaultGeocodePolicy(attempts, DefaultGeocodeBackoff)
	policy.Sleep = sleeper.Sleep
	return policy
}

func transient() error {
	return &httpclient.HTTPError{StatusCode: http.StatusServiceUnavailable}
}

func TestGeocoderGW_Geocode_SucceedsOnLastAttempt(t *testing.T) {
	for _, attempts := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("%d attempts", attempts), func(t *testing.T) {
			failures := make([]error, attempts-1)
			for i := range failures {
				failures[i] = transient()
			}
			searcher := &scriptedSearcher{results: failures, coord: curitiba, found: true}
			sleeper := &sleepRecorder{}

			g := NewGeocoderGW(searcher, testPolicy(attempts, sleeper), logger.NewNopLogger())

			coord, found := g.Geocode(context.Background(), "Praça Tiradentes")

			assert.True(t, found)
			assert.Equal(t, curitiba, coord)
			assert.Equal(t, attempts, searcher.calls)
			assert.Len(t, sleeper.delays, attempts-1)
			for _, d := range sleeper.delays {
				assert.Equal(t, DefaultGeocodeBackoff, d)
			}
		})
	}
}

func TestGeocoderGW_Geocode_Exhausted(t *testing.T) {
	searcher := &scriptedSearcher{results: []error{transient(), transient(), transient(), transient()}}
	sleeper := &sleepRecorder{}

	g := NewGeocoderGW(searcher, testPolicy(3, sleeper), logger.NewNopLogger())

	_, found := g.Geocode(context.Background(), "Praça Tiradentes")

	assert.False(t, found)
	assert.Equal(t, 3, searcher.calls)
	assert.Len(t, sleeper.delays, 2)
}

func TestGeocoderGW_Geocode_NonTransientFailsFast(t *testing.T) {
	searcher := &scriptedSearcher{results: []error{errors.New("tls handshake failure")}, coord: curitiba, found: true}
	sleeper := &sleepRecorder{}

	g := NewGeocoderGW(searcher, testPolicy(3, sleeper), logger.NewNopLogger())

	_, found := g.Geocode(context.Background(), "Praça Tiradentes")

	assert.False(t, found)
	assert.Equal(t, 1, searcher.calls)
	assert.Empty(t, sleeper.delays)
}

func TestGeocoderGW_Geocode_NotFoundIsNotRetried(t *testing.T) {
	searcher := &scriptedSearcher{found: false}
	sleeper := &sleepRecorder{}

	g := NewGeocoderGW(searcher, testPolicy(3, sleeper), logger.NewNopLogger())

	_, found := g.Geocode(context.Background(), "Nowhere")

	assert.False(t, found)
	assert.Equal(t, 1, searcher.calls)
	assert.Empty(t, sleeper.delays)
}

func TestGeocoderGW_Geocode_EmptyAddress(t *testing.T) {
	searcher := &scriptedSearcher{coord: curitiba, found: true}

	g := NewGeocoderGW(searcher, testPolicy(3, &sleepRecorder{}), logger.NewNopLogger())

	_, found := g.Geocode(context.Background(), "   ")

	assert.False(t, found)
	assert.Equal(t, 0, searcher.calls)
}

func TestGeocoderGW_Geocode_EveryCallSearches(t *testing.T) {
	searcher := &scriptedSearcher{coord: curitiba, found: true}
	g := NewGeocoderGW(searcher, testPolicy(3, &sleepRecorder{}), logger.NewNopLogger())

	for i := 0; i < 2; i++ {
		coord, found := g.Geocode(context.Background(), "Praça Tiradentes")
		assert.True(t, found)
		assert.Equal(t, curitiba, coord)
	}

	assert.Equal(t, 2, searcher.calls)
}

func TestGeocoderGW_WithNominatim_RetriesUnavailable(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `[{"lat":"-25.43","lon":"-49.28"}]`)
	}))
	defer server.Close()

	sleeper := &sleepRecorder{}
	g := NewGeocoderGW(NewNominatimGW(newTestClient(t, server.URL, time.Second), logger.NewNopLogger()),
		testPolicy(3, sleeper), logger.NewNopLogger())

	coord, found := g.Geocode(context.Background(), "Praça Tiradentes")

	assert.True(t, found)
	assert.Equal(t, curitiba, coord)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Len(t, sleeper.delays, 2)
}
