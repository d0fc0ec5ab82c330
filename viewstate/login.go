package viewstate

import (
	"context"

	"github.com/quickcare/backend-api-go/auth"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/result"
	"go.uber.org/zap"
)

const MessageLoginFailed = "Login failed"

// Navigate is called with the signed-in user's id once a flow succeeds.
type Navigate func(userID string)

// LoginHolder drives the credential check. The state goes from Idle
// straight to Success or Error; there is no Loading step.
type LoginHolder struct {
	provider auth.Provider
	state    *result.Holder[string]
	navigate Navigate
}

func NewLoginHolder(provider auth.Provider, navigate Navigate) *LoginHolder {
	return &LoginHolder{
		provider: provider,
		state:    result.NewHolder[string](),
		navigate: navigate,
	}
}

func (h *LoginHolder) State() *result.Holder[string] {
	return h.state
}

// LogIn returns the terminal state, whose payload is the user id.
func (h *LoginHolder) LogIn(ctx context.Context, email, password string) result.Result[string] {
	h.state.Set(result.Idle[string]())

	userID, err := h.provider.SignIn(ctx, email, password)
	if err != nil {
		log.Logger().Info("login failed", log.Email(email), zap.Error(err))
		r := result.Error[string](MessageLoginFailed)
		h.state.Set(r)
		return r
	}

	r := result.Success(userID)
	h.state.Set(r)
	if h.navigate != nil {
		h.navigate(userID)
	}
	return r
}
