package viewstate

import (
	"context"
	"testing"

	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileLoadAndUpdate(t *testing.T) {
	store := newFakeProfiles()
	store.users["user-1"] = users.User{ID: "user-1", Username: "ayse", Email: "a@b.c"}
	h := NewProfileHolder(store)

	states := record(t, h.Profile(), func() {
		h.Load(context.Background(), "user-1")
	})
	assert.Equal(t, []result.State{result.StateLoading, result.StateSuccess}, states)

	r := h.UpdateField(context.Background(), "bio", "Night shift nurse")
	require.True(t, r.IsSuccess())
	u, _ := r.Data()
	assert.Equal(t, "Night shift nurse", u.Bio)
	assert.Equal(t, "Night shift nurse", store.users["user-1"].Bio)

	r = h.UpdateField(context.Background(), "therapist", "true")
	require.True(t, r.IsSuccess())
	u, _ = r.Data()
	assert.True(t, u.Therapist)
	assert.Equal(t, "Night shift nurse", u.Bio)
}

func TestProfileUpdateRejectsUnknownField(t *testing.T) {
	store := newFakeProfiles()
	store.users["user-1"] = users.User{ID: "user-1"}
	h := NewProfileHolder(store)
	h.Load(context.Background(), "user-1")

	r := h.UpdateField(context.Background(), "password", "hunter2")
	assert.True(t, r.IsError())
	assert.Equal(t, users.ErrUnknownField.Error(), r.Message())
	assert.Zero(t, store.updates)
}

func TestProfileUpdateBeforeLoad(t *testing.T) {
	store := newFakeProfiles()
	h := NewProfileHolder(store)

	r := h.UpdateField(context.Background(), "bio", "x")
	assert.Equal(t, MessageProfileNotLoaded, r.Message())
	assert.Zero(t, store.updates)
}

func TestProfileNotFound(t *testing.T) {
	h := NewProfileHolder(newFakeProfiles())
	r := h.Load(context.Background(), "missing")
	assert.Equal(t, MessageProfileNotFound, r.Message())
}

func TestProfileStoreFailure(t *testing.T) {
	store := newFakeProfiles()
	store.users["user-1"] = users.User{ID: "user-1"}
	h := NewProfileHolder(store)
	h.Load(context.Background(), "user-1")

	store.err = errBoom
	r := h.UpdateField(context.Background(), "username", "new")
	assert.Equal(t, "boom", r.Message())

	// the editor keeps working from the last loaded copy
	store.err = nil
	r = h.UpdateField(context.Background(), "username", "new")
	assert.True(t, r.IsSuccess())
}

func TestProfileSignOut(t *testing.T) {
	store := newFakeProfiles()
	store.users["user-1"] = users.User{ID: "user-1"}
	h := NewProfileHolder(store)
	h.Load(context.Background(), "user-1")

	h.SignOut()
	assert.Equal(t, result.StateIdle, h.Profile().Get().State())
	assert.Equal(t, MessageProfileNotLoaded, h.UpdateField(context.Background(), "bio", "x").Message())
}
