package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quickcare/backend-api-go/hospitals"
)

type GetConditionsResponse struct {
	Conditions []hospitals.Condition `json:"conditions"`
}

// GetConditionsHandler godoc
// @Summary            List the quick care conditions
// @Tags               Recommendation
// @Produce            json
// @Success            200 {object} GetConditionsResponse
// @Router             /conditions [GET]
func GetConditionsHandler(ctx *fiber.Ctx) error {
	return ctx.JSON(GetConditionsResponse{Conditions: hospitals.QuickCareConditions})
}
