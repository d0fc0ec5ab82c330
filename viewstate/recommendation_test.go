package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func newRecommendationHolder(api *fakeRecommendationAPI, loc fakeLocator) *RecommendationHolder {
	return NewRecommendationHolder(repository.NewHospitalRepository(api), loc)
}

func TestInitialStateIsIdle(t *testing.T) {
	h := newRecommendationHolder(&fakeRecommendationAPI{}, fakeLocator{})
	assert.Equal(t, result.StateIdle, h.Results().Get().State())
	_, ok := h.Location()
	assert.False(t, ok)
}

func TestInvalidCoordinatesNeverReachBackend(t *testing.T) {
	cases := []struct{ lat, lng float64 }{
		{200, 0}, {-90.5, 0}, {0, 180.01}, {0, -200}, {91, 181},
	}
	for _, c := range cases {
		api := &fakeRecommendationAPI{}
		h := newRecommendationHolder(api, fakeLocator{})

		var r result.Result[hospitals.SearchResult]
		states := record(t, h.Results(), func() {
			r = h.GetRecommendations(context.Background(), c.lat, c.lng, "Fever", 5)
		})

		assert.Equal(t, []result.State{result.StateError}, states)
		assert.Equal(t, "Invalid coordinates: latitude must be -90 to 90, longitude -180 to 180", r.Message())
		assert.Zero(t, api.calls)
	}
}

func TestBlankConditionNeverReachesBackend(t *testing.T) {
	for _, condition := range []string{"", " ", "\t\n"} {
		api := &fakeRecommendationAPI{}
		h := newRecommendationHolder(api, fakeLocator{})

		r := h.GetRecommendations(context.Background(), 12.9716, 77.5946, condition, 5)

		assert.True(t, r.IsError())
		assert.Equal(t, "Disease cannot be empty", r.Message())
		assert.Zero(t, api.calls)
	}
}

func TestSuccessKeepsBackendOrder(t *testing.T) {
	api := &fakeRecommendationAPI{response: &hospitals.SearchResult{
		Success: true,
		Count:   2,
		Hospitals: []hospitals.Hospital{
			{Name: "A", DistanceKm: 1.2},
			{Name: "B", DistanceKm: 3.4},
		},
		SearchParams: hospitals.SearchRequest{Latitude: 12.9716, Longitude: 77.5946, Disease: "Cardiology", TopN: 5},
	}}
	h := newRecommendationHolder(api, fakeLocator{})

	states := record(t, h.Results(), func() {
		h.GetRecommendations(context.Background(), 12.9716, 77.5946, "Cardiology", 5)
	})

	assert.Equal(t, []result.State{result.StateLoading, result.StateSuccess}, states)
	data, ok := h.Results().Get().Data()
	require.True(t, ok)
	assert.Equal(t, 2, data.Count)
	require.Len(t, data.Hospitals, 2)
	assert.Equal(t, "A", data.Hospitals[0].Name)
	assert.Equal(t, "B", data.Hospitals[1].Name)
	assert.Equal(t, 1, api.calls)
}

func TestTerminalErrors(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeRecommendationAPI
		message string
	}{
		{"success flag false", &fakeRecommendationAPI{response: &hospitals.SearchResult{Success: false}}, "Failed to fetch recommendations"},
		{"timeout", &fakeRecommendationAPI{err: errors.New("timeout")}, "timeout"},
		{"no message", &fakeRecommendationAPI{err: emptyError{}}, "An error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newRecommendationHolder(tt.api, fakeLocator{})
			states := record(t, h.Results(), func() {
				h.GetRecommendations(context.Background(), 10, 10, "Fever", 5)
			})

			assert.Equal(t, []result.State{result.StateLoading, result.StateError}, states)
			assert.Equal(t, tt.message, h.Results().Get().Message())
		})
	}
}

func TestNewCallStartsFreshLoading(t *testing.T) {
	api := &fakeRecommendationAPI{err: errors.New("timeout")}
	h := newRecommendationHolder(api, fakeLocator{})
	h.GetRecommendations(context.Background(), 10, 10, "Fever", 5)
	require.True(t, h.Results().Get().IsError())

	api.err = nil
	api.response = &hospitals.SearchResult{Success: true}
	states := record(t, h.Results(), func() {
		h.GetRecommendations(context.Background(), 10, 10, "Fever", 0)
	})
	assert.Equal(t, []result.State{result.StateLoading, result.StateSuccess}, states)
}

func TestRequestLocation(t *testing.T) {
	fix := hospitals.Coordinates{Lat: 12.9716, Lng: 77.5946}
	h := newRecommendationHolder(&fakeRecommendationAPI{}, fakeLocator{coords: fix, ok: true})

	coords, ok := h.RequestLocation(context.Background())
	assert.True(t, ok)
	assert.Equal(t, fix, coords)

	stored, ok := h.Location()
	assert.True(t, ok)
	assert.Equal(t, fix, stored)

	h.locator = fakeLocator{}
	_, ok = h.RequestLocation(context.Background())
	assert.False(t, ok)
	_, ok = h.Location()
	assert.False(t, ok)
}

func TestSearchNearby(t *testing.T) {
	api := &fakeRecommendationAPI{response: &hospitals.SearchResult{Success: true}}
	h := newRecommendationHolder(api, fakeLocator{coords: hospitals.Coordinates{Lat: 1, Lng: 2}, ok: true})

	r := h.SearchNearby(context.Background(), "Fever", 5)
	assert.Equal(t, MessageLocationUnavailable, r.Message())
	assert.Zero(t, api.calls)

	h.RequestLocation(context.Background())
	r = h.SearchNearby(context.Background(), "Fever", 5)
	assert.True(t, r.IsSuccess())
	assert.Equal(t, 1, api.calls)
}

// gatedRecommender holds every call until the test releases it by condition.
type gatedRecommender struct {
	mu      sync.Mutex
	calls   []string
	started chan string
	release map[string]chan result.Result[hospitals.SearchResult]
}

func newGatedRecommender(conditions ...string) *gatedRecommender {
	g := &gatedRecommender{
		started: make(chan string, len(conditions)),
		release: make(map[string]chan result.Result[hospitals.SearchResult]),
	}
	for _, c := range conditions {
		g.release[c] = make(chan result.Result[hospitals.SearchResult], 1)
	}
	return g
}

func (g *gatedRecommender) GetRecommendations(_ context.Context, _, _ float64, condition string, _ int) result.Result[hospitals.SearchResult] {
	g.mu.Lock()
	g.calls = append(g.calls, condition)
	g.mu.Unlock()

	g.started <- condition
	return <-g.release[condition]
}

func TestOverlappingCallsLastCompletionWins(t *testing.T) {
	repo := newGatedRecommender("first", "second")
	h := NewRecommendationHolder(repo, fakeLocator{})

	outcome := func(name string) result.Result[hospitals.SearchResult] {
		return result.Success(hospitals.SearchResult{Success: true, Hospitals: []hospitals.Hospital{{Name: name}}})
	}

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		h.GetRecommendations(context.Background(), 12.9716, 77.5946, "first", 5)
	}()
	require.Equal(t, "first", <-repo.started)

	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		h.GetRecommendations(context.Background(), 12.9716, 77.5946, "second", 5)
	}()
	require.Equal(t, "second", <-repo.started)

	repo.release["second"] <- outcome("from second")
	<-secondDone
	data, ok := h.Results().Get().Data()
	require.True(t, ok)
	assert.Equal(t, "from second", data.Hospitals[0].Name)

	repo.release["first"] <- outcome("from first")
	<-firstDone
	data, ok = h.Results().Get().Data()
	require.True(t, ok)
	assert.Equal(t, "from first", data.Hospitals[0].Name)

	assert.Equal(t, []string{"first", "second"}, repo.calls)
}
