package viewstate

import (
	"context"
	"testing"

	"github.com/quickcare/backend-api-go/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogInSuccess(t *testing.T) {
	var navigated string
	provider := &fakeProvider{id: "user-1"}
	h := NewLoginHolder(provider, func(id string) { navigated = id })

	states := record(t, h.State(), func() {
		h.LogIn(context.Background(), "a@b.c", "secret1")
	})

	assert.Equal(t, []result.State{result.StateIdle, result.StateSuccess}, states)
	id, _ := h.State().Get().Data()
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "user-1", navigated)
}

func TestLogInFailure(t *testing.T) {
	navigated := false
	h := NewLoginHolder(&fakeProvider{err: errBoom}, func(string) { navigated = true })

	r := h.LogIn(context.Background(), "a@b.c", "bad")

	assert.True(t, r.IsError())
	assert.Equal(t, MessageLoginFailed, r.Message())
	assert.False(t, navigated)

	// sticky until the next attempt
	assert.True(t, h.State().Get().IsError())
}

func TestSignUpWritesProfileOnce(t *testing.T) {
	provider := &fakeProvider{id: "user-1"}
	profiles := newFakeProfiles()
	var notices []string
	var navigated string
	h := NewSignupHolder(provider, profiles, func(m string) { notices = append(notices, m) }, func(id string) { navigated = id })

	form := SignupForm{Email: "a@b.c", Password: "secret1", Username: "ayse", Phone: "05355555555", Image: testImage()}
	states := record(t, h.State(), func() {
		h.SignUp(context.Background(), form)
	})

	assert.Equal(t, []result.State{result.StateLoading, result.StateSuccess}, states)
	require.Len(t, profiles.saved, 1)
	saved := profiles.saved[0]
	assert.Equal(t, "user-1", saved.ID)
	assert.Equal(t, "ayse", saved.Username)
	assert.Equal(t, "a@b.c", saved.Email)
	assert.Equal(t, "05355555555", saved.PhoneNumber)
	require.NotNil(t, saved.ImageURL)

	img, err := DecodeImage(*saved.ImageURL)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	assert.Equal(t, []string{NoticeProfileSaved}, notices)
	assert.Equal(t, "user-1", navigated)
}

func TestSignUpWithoutImage(t *testing.T) {
	profiles := newFakeProfiles()
	h := NewSignupHolder(&fakeProvider{id: "user-2"}, profiles, nil, nil)

	r := h.SignUp(context.Background(), SignupForm{Email: "a@b.c", Password: "secret1", Username: "ali"})

	assert.True(t, r.IsSuccess())
	require.Len(t, profiles.saved, 1)
	assert.Nil(t, profiles.saved[0].ImageURL)
}

func TestSignUpProviderFailureWritesNothing(t *testing.T) {
	profiles := newFakeProfiles()
	navigated := false
	h := NewSignupHolder(&fakeProvider{err: errBoom}, profiles, nil, func(string) { navigated = true })

	states := record(t, h.State(), func() {
		h.SignUp(context.Background(), SignupForm{Email: "a@b.c", Password: "secret1"})
	})

	assert.Equal(t, []result.State{result.StateLoading, result.StateError}, states)
	assert.Equal(t, MessageSignupFailed, h.State().Get().Message())
	assert.Empty(t, profiles.saved)
	assert.False(t, navigated)
}

func TestSignUpProfileWriteFailureKeepsSuccess(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.err = errBoom
	var notices []string
	navigated := false
	h := NewSignupHolder(&fakeProvider{id: "user-3"}, profiles, func(m string) { notices = append(notices, m) }, func(string) { navigated = true })

	r := h.SignUp(context.Background(), SignupForm{Email: "a@b.c", Password: "secret1"})

	assert.True(t, r.IsSuccess())
	assert.Len(t, profiles.saved, 1)
	assert.Equal(t, []string{NoticeProfileSaveFailed}, notices)
	assert.True(t, navigated)
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage("%%%")
	assert.Error(t, err)

	_, err = DecodeImage("aGVsbG8=")
	assert.Error(t, err)
}
