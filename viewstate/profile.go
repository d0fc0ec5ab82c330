package viewstate

import (
	"context"
	"errors"
	"sync"

	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/users"
)

const (
	MessageProfileNotFound  = "Profile not found"
	MessageProfileNotLoaded = "Profile not loaded"
)

type ProfileStore interface {
	GetUser(ctx context.Context, id string) (*users.User, error)
	UpdateUserField(ctx context.Context, id string, field users.Field, value interface{}) error
}

// ProfileHolder backs the profile editor: load once, then edit one field
// at a time.
type ProfileHolder struct {
	store   ProfileStore
	profile *result.Holder[users.User]

	mu     sync.Mutex
	loaded *users.User
}

func NewProfileHolder(store ProfileStore) *ProfileHolder {
	return &ProfileHolder{
		store:   store,
		profile: result.NewHolder[users.User](),
	}
}

func (h *ProfileHolder) Profile() *result.Holder[users.User] {
	return h.profile
}

func (h *ProfileHolder) Load(ctx context.Context, id string) result.Result[users.User] {
	h.profile.Set(result.Loading[users.User]())

	user, err := h.store.GetUser(ctx, id)
	if err != nil {
		return h.fail(err)
	}

	h.mu.Lock()
	h.loaded = user
	h.mu.Unlock()

	r := result.Success(*user)
	h.profile.Set(r)
	return r
}

// UpdateField writes one editable field of the loaded profile.
func (h *ProfileHolder) UpdateField(ctx context.Context, field, raw string) result.Result[users.User] {
	h.mu.Lock()
	var current users.User
	loaded := h.loaded != nil
	if loaded {
		current = *h.loaded
	}
	h.mu.Unlock()

	if !loaded {
		r := result.Error[users.User](MessageProfileNotLoaded)
		h.profile.Set(r)
		return r
	}

	f := users.Field(field)
	value, err := f.Parse(raw)
	if err != nil {
		r := result.Error[users.User](err.Error())
		h.profile.Set(r)
		return r
	}

	h.profile.Set(result.Loading[users.User]())
	if err := h.store.UpdateUserField(ctx, current.ID, f, value); err != nil {
		return h.fail(err)
	}

	f.Apply(&current, value)
	h.mu.Lock()
	h.loaded = &current
	h.mu.Unlock()

	r := result.Success(current)
	h.profile.Set(r)
	return r
}

// SignOut forgets the loaded profile.
func (h *ProfileHolder) SignOut() {
	h.mu.Lock()
	h.loaded = nil
	h.mu.Unlock()
	h.profile.Set(result.Idle[users.User]())
}

func (h *ProfileHolder) fail(err error) result.Result[users.User] {
	message := err.Error()
	if errors.Is(err, repository.ErrNotFound) {
		message = MessageProfileNotFound
	}
	r := result.Error[users.User](message)
	h.profile.Set(r)
	return r
}
