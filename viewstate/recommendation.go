package viewstate

import (
	"context"
	"sync"

	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/result"
)

const MessageLocationUnavailable = "Location unavailable: enable location access and try again"

type Recommender interface {
	GetRecommendations(ctx context.Context, latitude, longitude float64, condition string, topN int) result.Result[hospitals.SearchResult]
}

type LocationProvider interface {
	CurrentLocation(ctx context.Context) (hospitals.Coordinates, bool)
}

// RecommendationHolder owns the search coordinates and the state of the
// latest recommendation search.
type RecommendationHolder struct {
	repo    Recommender
	locator LocationProvider
	results *result.Holder[hospitals.SearchResult]

	mu     sync.Mutex
	coords *hospitals.Coordinates
}

func NewRecommendationHolder(repo Recommender, locator LocationProvider) *RecommendationHolder {
	return &RecommendationHolder{
		repo:    repo,
		locator: locator,
		results: result.NewHolder[hospitals.SearchResult](),
	}
}

func (h *RecommendationHolder) Results() *result.Holder[hospitals.SearchResult] {
	return h.results
}

// Location returns the coordinates stored by the last RequestLocation.
func (h *RecommendationHolder) Location() (hospitals.Coordinates, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.coords == nil {
		return hospitals.Coordinates{}, false
	}
	return *h.coords, true
}

// RequestLocation asks the location provider for a fix and stores the
// answer, clearing any previous fix when the answer is unknown.
func (h *RecommendationHolder) RequestLocation(ctx context.Context) (hospitals.Coordinates, bool) {
	coords, ok := h.locator.CurrentLocation(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	if !ok {
		h.coords = nil
		return hospitals.Coordinates{}, false
	}
	h.coords = &coords
	return coords, true
}

// GetRecommendations validates the input, then publishes Loading followed
// by the repository outcome. Invalid input publishes a single Error and
// never reaches the repository. topN <= 0 selects the default.
// Overlapping calls are not coordinated: the last one to finish wins.
func (h *RecommendationHolder) GetRecommendations(ctx context.Context, latitude, longitude float64, condition string, topN int) result.Result[hospitals.SearchResult] {
	request := hospitals.NewSearchRequest(hospitals.Coordinates{Lat: latitude, Lng: longitude}, condition, topN)
	if err := request.Validate(); err != nil {
		r := result.Error[hospitals.SearchResult](err.Error())
		h.results.Set(r)
		return r
	}

	h.results.Set(result.Loading[hospitals.SearchResult]())
	r := h.repo.GetRecommendations(ctx, request.Latitude, request.Longitude, request.Disease, request.TopN)
	h.results.Set(r)
	return r
}

// SearchNearby runs GetRecommendations at the stored location.
func (h *RecommendationHolder) SearchNearby(ctx context.Context, condition string, topN int) result.Result[hospitals.SearchResult] {
	coords, ok := h.Location()
	if !ok {
		r := result.Error[hospitals.SearchResult](MessageLocationUnavailable)
		h.results.Set(r)
		return r
	}
	return h.GetRecommendations(ctx, coords.Lat, coords.Lng, condition, topN)
}
