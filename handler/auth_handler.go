package handler

import (
	"image"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quickcare/backend-api-go/auth"
	"github.com/quickcare/backend-api-go/events"
	"github.com/quickcare/backend-api-go/hospitals"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/users"
	"github.com/quickcare/backend-api-go/viewstate"
	"go.uber.org/zap"
)

type UserPublisher interface {
	UserCreated(e events.UserCreated)
}

type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

type SignupResponse struct {
	ID      string   `json:"id"`
	Notices []string `json:"notices,omitempty"`
}

type AuthHandler struct {
	provider  auth.Provider
	profiles  viewstate.ProfileWriter
	tokens    TokenIssuer
	publisher UserPublisher
}

func NewAuthHandler(provider auth.Provider, profiles viewstate.ProfileWriter, tokens TokenIssuer, publisher UserPublisher) *AuthHandler {
	return &AuthHandler{provider: provider, profiles: profiles, tokens: tokens, publisher: publisher}
}

// signUp godoc
// @Summary            Create an account and its profile
// @Tags               Auth
// @Accept             json
// @Produce            json
// @Success            201 {object} SignupResponse
// @Failure            400 {object} hospitals.ErrorResponse
// @Param              body body users.SignupRequest true "RequestBody"
// @Router             /auth/signup [POST]
func (h *AuthHandler) HandleSignup(ctx *fiber.Ctx) error {
	var req users.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: err.Error()})
	}

	var img image.Image
	if req.Image != "" {
		decoded, err := viewstate.DecodeImage(req.Image)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: err.Error()})
		}
		img = decoded
	}

	var notices []string
	var navigated string
	holder := viewstate.NewSignupHolder(h.provider, h.profiles,
		func(message string) { notices = append(notices, message) },
		func(userID string) { navigated = userID })

	r := holder.SignUp(ctx.UserContext(), viewstate.SignupForm{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Phone:    req.PhoneNumber,
		Image:    img,
	})
	userID, ok := r.Data()
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: r.Message()})
	}

	log.Logger().Info("user signed up", zap.String("userID", navigated), log.Email(req.Email))
	if h.publisher != nil {
		h.publisher.UserCreated(events.UserCreated{ID: userID, Username: req.Username, Epoch: time.Now().Unix()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(SignupResponse{ID: userID, Notices: notices})
}

// logIn godoc
// @Summary            Check credentials and issue a session token
// @Tags               Auth
// @Accept             json
// @Produce            json
// @Success            200 {object} users.LoginResponse
// @Failure            401 {object} hospitals.ErrorResponse
// @Param              body body users.LoginRequest true "RequestBody"
// @Router             /auth/login [POST]
func (h *AuthHandler) HandleLogin(ctx *fiber.Ctx) error {
	var req users.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(hospitals.ErrorResponse{Message: err.Error()})
	}

	holder := viewstate.NewLoginHolder(h.provider, nil)
	r := holder.LogIn(ctx.UserContext(), req.Email, req.Password)
	userID, ok := r.Data()
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(hospitals.ErrorResponse{Message: r.Message()})
	}

	token, err := h.tokens.Issue(userID, req.Email)
	if err != nil {
		log.Logger().Error("could not issue token", zap.String("userID", userID), zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(hospitals.ErrorResponse{Message: viewstate.MessageLoginFailed})
	}

	return ctx.JSON(users.LoginResponse{ID: userID, Token: token})
}
