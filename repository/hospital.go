package repository

import (
	"context"

	"github.com/quickcare/backend-api-go/hospitals"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/result"
	"go.uber.org/zap"
)

const (
	MessageFetchFailed = "Failed to fetch recommendations"
	MessageGeneric     = "An error occurred"
)

// RecommendationAPI is the transport the hospital repository sends through.
type RecommendationAPI interface {
	Recommend(ctx context.Context, request hospitals.SearchRequest) (*hospitals.SearchResult, error)
	Health(ctx context.Context) (map[string]interface{}, error)
}

// HospitalRepository turns backend responses and transport errors into
// result values. Every call sends at most one request.
type HospitalRepository struct {
	api RecommendationAPI
}

func NewHospitalRepository(api RecommendationAPI) *HospitalRepository {
	return &HospitalRepository{api: api}
}

func (r *HospitalRepository) GetRecommendations(ctx context.Context, latitude, longitude float64, condition string, topN int) result.Result[hospitals.SearchResult] {
	request := hospitals.SearchRequest{
		Latitude:  latitude,
		Longitude: longitude,
		Disease:   condition,
		TopN:      topN,
	}

	response, err := r.api.Recommend(ctx, request)
	if err != nil {
		log.Logger().Warn("recommendation request failed", zap.String("condition", condition), zap.Error(err))
		return result.Error[hospitals.SearchResult](errorMessage(err))
	}
	if response == nil || !response.Success {
		return result.Error[hospitals.SearchResult](MessageFetchFailed)
	}

	return result.Success(*response)
}

func (r *HospitalRepository) CheckHealth(ctx context.Context) result.Result[map[string]interface{}] {
	response, err := r.api.Health(ctx)
	if err != nil {
		log.Logger().Warn("recommendation backend health check failed", zap.Error(err))
		return result.Error[map[string]interface{}](errorMessage(err))
	}

	return result.Success(response)
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageGeneric
}
