package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/result"
)

// HealthCheck godoc
// @Summary            Show the status of server.
// @Description        get the status of server.
// @Tags               Healthcheck
// @Accept             */*
// @Produce            json
// @Success            200 {string} map[string]interface{}
// @Router             /healthcheck [GET]
func HealthCheck(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusOK)
}

type HealthChecker interface {
	CheckHealth(ctx context.Context) result.Result[map[string]interface{}]
}

// BackendHealth godoc
// @Summary            Show the status of the recommendation backend.
// @Tags               Healthcheck
// @Produce            json
// @Success            200 {object} map[string]interface{}
// @Failure            502 {object} hospitals.ErrorResponse
// @Router             /health/backend [GET]
func BackendHealth(checker HealthChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		r := checker.CheckHealth(ctx.UserContext())
		data, ok := r.Data()
		if !ok {
			return ctx.Status(fiber.StatusBadGateway).JSON(hospitals.ErrorResponse{Message: r.Message()})
		}
		return ctx.JSON(data)
	}
}
