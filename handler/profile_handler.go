package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quickcare/backend-api-go/hospitals"
	authmw "github.com/quickcare/backend-api-go/middleware/auth"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/users"
	"github.com/quickcare/backend-api-go/viewstate"
	"go.uber.org/zap"
)

const messageForbidden = "You can only access your own profile"

type ProfileHandler struct {
	store viewstate.ProfileStore
}

func NewProfileHandler(store viewstate.ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// getProfile godoc
// @Summary            Get a user's profile
// @Tags               Profile
// @Produce            json
// @Success            200 {object} users.User
// @Failure            403 {object} hospitals.ErrorResponse
// @Failure            404 {object} hospitals.ErrorResponse
// @Param              id path string true "User Id"
// @Router             /users/{id} [GET]
// @Security           BearerAuth
func (h *ProfileHandler) HandleGet(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if !ownProfile(ctx, id) {
		return ctx.Status(fiber.StatusForbidden).JSON(hospitals.ErrorResponse{Message: messageForbidden})
	}

	holder := viewstate.NewProfileHolder(h.store)
	return respondProfile(ctx, holder.Load(ctx.UserContext(), id))
}

// updateProfile godoc
// @Summary            Update one profile field
// @Tags               Profile
// @Accept             json
// @Produce            json
// @Success            200 {object} users.User
// @Failure            400 {object} hospitals.ErrorResponse
// @Failure            403 {object} hospitals.ErrorResponse
// @Param              id path string true "User Id"
// @Param              body body users.UpdateFieldRequest true "RequestBody"
// @Router             /users/{id} [PATCH]
// @Security           BearerAuth
func (h *ProfileHandler) HandleUpdate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if !ownProfile(ctx, id) {
		return ctx.Status(fiber.StatusForbidden).JSON(hospitals.ErrorResponse{Message: messageForbidden})
	}

	var req users.UpdateFieldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: err.Error()})
	}

	if _, err := users.Field(req.Field).Parse(req.Value); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: err.Error()})
	}

	holder := viewstate.NewProfileHolder(h.store)
	if r := holder.Load(ctx.UserContext(), id); r.IsError() {
		return respondProfile(ctx, r)
	}

	return respondProfile(ctx, holder.UpdateField(ctx.UserContext(), req.Field, req.Value))
}

func ownProfile(ctx *fiber.Ctx, id string) bool {
	userID, _ := ctx.Locals(authmw.LocalUserID).(string)
	return userID != "" && userID == id
}

func respondProfile(ctx *fiber.Ctx, r result.Result[users.User]) error {
	user, ok := r.Data()
	if ok {
		return ctx.JSON(user)
	}
	if r.Message() == viewstate.MessageProfileNotFound {
		return ctx.Status(fiber.StatusNotFound).JSON(hospitals.ErrorResponse{Message: r.Message()})
	}

	log.Logger().Error("profile store failure", zap.String("path", ctx.Path()), zap.String("error", r.Message()))
	return ctx.Status(fiber.StatusInternalServerError).JSON(hospitals.ErrorResponse{Message: repository.MessageGeneric})
}
