package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quickcare/backend-api-go/events"
	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/location"
	authmw "github.com/quickcare/backend-api-go/middleware/auth"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/viewstate"
)

const messageMissingCoordinates = "latitude and longitude are required"

type SearchPublisher interface {
	SearchPerformed(e events.SearchPerformed)
}

type DeviceLocations interface {
	location.DeviceStore
	SetLocation(ctx context.Context, deviceID string, coords hospitals.Coordinates) error
}

type RecommendationsHandler struct {
	repo      viewstate.Recommender
	devices   DeviceLocations
	publisher SearchPublisher
}

func NewRecommendationsHandler(repo viewstate.Recommender, devices DeviceLocations, publisher SearchPublisher) *RecommendationsHandler {
	return &RecommendationsHandler{repo: repo, devices: devices, publisher: publisher}
}

// getRecommendations godoc
// @Summary            Get hospital recommendations near a point
// @Tags               Recommendation
// @Produce            json
// @Success            200 {object} hospitals.SearchResult
// @Failure            400 {object} hospitals.ErrorResponse
// @Failure            502 {object} hospitals.ErrorResponse
// @Param              latitude query number true "Latitude"
// @Param              longitude query number true "Longitude"
// @Param              condition query string true "Symptom or specialty"
// @Param              top_n query integer false "Result limit"
// @Router             /recommendations [GET]
func (h *RecommendationsHandler) HandleSearch(ctx *fiber.Ctx) error {
	latitude, latErr := strconv.ParseFloat(ctx.Query("latitude"), 64)
	longitude, lngErr := strconv.ParseFloat(ctx.Query("longitude"), 64)
	if latErr != nil || lngErr != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: messageMissingCoordinates})
	}
	condition := ctx.Query("condition")
	topN := queryInt(ctx, "top_n", hospitals.DefaultTopN)

	holder := viewstate.NewRecommendationHolder(h.repo, nil)
	r := holder.GetRecommendations(ctx.UserContext(), latitude, longitude, condition, topN)

	return h.respond(ctx, hospitals.NewSearchRequest(hospitals.Coordinates{Lat: latitude, Lng: longitude}, condition, topN), r)
}

// getDeviceRecommendations godoc
// @Summary            Get hospital recommendations near a device's last known location
// @Tags               Recommendation
// @Produce            json
// @Success            200 {object} hospitals.SearchResult
// @Failure            412 {object} hospitals.ErrorResponse
// @Param              id path string true "Device Id"
// @Param              condition query string true "Symptom or specialty"
// @Param              top_n query integer false "Result limit"
// @Router             /devices/{id}/recommendations [GET]
func (h *RecommendationsHandler) HandleDeviceSearch(ctx *fiber.Ctx) error {
	locator := location.NewLocator(location.NewCacheSource(h.devices, ctx.Params("id")))
	holder := viewstate.NewRecommendationHolder(h.repo, locator)

	coords, ok := holder.RequestLocation(ctx.UserContext())
	if !ok {
		return ctx.Status(fiber.StatusPreconditionFailed).JSON(hospitals.ErrorResponse{Message: viewstate.MessageLocationUnavailable})
	}

	condition := ctx.Query("condition")
	topN := queryInt(ctx, "top_n", hospitals.DefaultTopN)
	r := holder.SearchNearby(ctx.UserContext(), condition, topN)

	return h.respond(ctx, hospitals.NewSearchRequest(coords, condition, topN), r)
}

// updateDeviceLocation godoc
// @Summary            Report a device's current location
// @Tags               Recommendation
// @Accept             json
// @Success            204
// @Failure            400 {object} hospitals.ErrorResponse
// @Param              id path string true "Device Id"
// @Param              body body hospitals.Coordinates true "RequestBody"
// @Router             /devices/{id}/location [PUT]
func (h *RecommendationsHandler) HandleUpdateLocation(ctx *fiber.Ctx) error {
	var coords hospitals.Coordinates
	if err := ctx.BodyParser(&coords); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: err.Error()})
	}
	if !coords.Valid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: hospitals.ErrInvalidCoordinates.Error()})
	}

	if err := h.devices.SetLocation(ctx.UserContext(), ctx.Params("id"), coords); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(hospitals.ErrorResponse{Message: err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *RecommendationsHandler) respond(ctx *fiber.Ctx, request hospitals.SearchRequest, r result.Result[hospitals.SearchResult]) error {
	data, ok := r.Data()
	if !ok {
		status := fiber.StatusBadGateway
		outcome := "backend_error"
		if isValidationMessage(r.Message()) {
			status = fiber.StatusBadRequest
			outcome = "invalid"
		}
		recommendationRequests.WithLabelValues(outcome).Inc()
		if status == fiber.StatusBadGateway {
			h.publish(ctx, request, nil)
		}
		return ctx.Status(status).JSON(hospitals.ErrorResponse{Message: r.Message()})
	}

	recommendationRequests.WithLabelValues("success").Inc()
	h.publish(ctx, request, &data)
	return ctx.JSON(data)
}

func (h *RecommendationsHandler) publish(ctx *fiber.Ctx, request hospitals.SearchRequest, data *hospitals.SearchResult) {
	if h.publisher == nil {
		return
	}
	userID, _ := ctx.Locals(authmw.LocalUserID).(string)
	h.publisher.SearchPerformed(events.NewSearchPerformed(uuid.New().String(), userID, request, data, time.Now()))
}

func isValidationMessage(message string) bool {
	return message == hospitals.ErrInvalidCoordinates.Error() || message == hospitals.ErrEmptyCondition.Error()
}

func queryInt(ctx *fiber.Ctx, key string, defaultValue int) int {
	value, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return defaultValue
	}
	return value
}
