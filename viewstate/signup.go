package viewstate

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/quickcare/backend-api-go/auth"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/users"
	"go.uber.org/zap"
)

const (
	MessageSignupFailed = "Sign up failed"

	NoticeProfileSaved      = "User sign up successful"
	NoticeProfileSaveFailed = "Could not save your profile"
)

type ProfileWriter interface {
	SaveUser(ctx context.Context, user users.User) error
}

// Notify shows a transient message to the user.
type Notify func(message string)

type SignupForm struct {
	Email    string
	Password string
	Username string
	Phone    string
	Image    image.Image
}

// SignupHolder creates the account and then writes the profile document.
// The profile write does not affect the flow state: a failed write only
// produces a notice.
type SignupHolder struct {
	provider auth.Provider
	profiles ProfileWriter
	state    *result.Holder[string]
	notify   Notify
	navigate Navigate
}

func NewSignupHolder(provider auth.Provider, profiles ProfileWriter, notify Notify, navigate Navigate) *SignupHolder {
	return &SignupHolder{
		provider: provider,
		profiles: profiles,
		state:    result.NewHolder[string](),
		notify:   notify,
		navigate: navigate,
	}
}

func (h *SignupHolder) State() *result.Holder[string] {
	return h.state
}

func (h *SignupHolder) SignUp(ctx context.Context, form SignupForm) result.Result[string] {
	h.state.Set(result.Loading[string]())

	var imageURL *string
	if form.Image != nil {
		encoded, err := EncodeImage(form.Image)
		if err != nil {
			log.Logger().Warn("could not encode profile image", zap.Error(err))
		} else {
			imageURL = &encoded
		}
	}

	userID, err := h.provider.CreateUser(ctx, form.Email, form.Password)
	if err != nil {
		log.Logger().Info("account creation failed", log.Email(form.Email), zap.Error(err))
		r := result.Error[string](MessageSignupFailed)
		h.state.Set(r)
		return r
	}

	r := result.Success(userID)
	h.state.Set(r)

	user := users.User{
		ID:          userID,
		Username:    form.Username,
		ImageURL:    imageURL,
		Email:       form.Email,
		PhoneNumber: form.Phone,
	}
	if err := h.profiles.SaveUser(ctx, user); err != nil {
		log.Logger().Error("could not save profile", zap.String("userID", userID), log.Phone(form.Phone), zap.Error(err))
		h.show(NoticeProfileSaveFailed)
	} else {
		h.show(NoticeProfileSaved)
	}

	if h.navigate != nil {
		h.navigate(userID)
	}
	return r
}

func (h *SignupHolder) show(message string) {
	if h.notify != nil {
		h.notify(message)
	}
}

// EncodeImage renders img as a base64 encoded JPEG.
func EncodeImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		return "", fmt.Errorf("could not encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeImage parses a base64 encoded JPEG or PNG.
func DecodeImage(encoded string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return img, nil
}
