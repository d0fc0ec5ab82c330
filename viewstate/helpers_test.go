package viewstate

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/users"
)

// record subscribes to h, runs fn, and returns every state published
// during fn.
func record[T any](t *testing.T, h *result.Holder[T], fn func()) []result.State {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	ch := h.Subscribe(ctx)
	fn()

	var states []result.State
	for {
		select {
		case r := <-ch:
			states = append(states, r.State())
			continue
		default:
		}
		break
	}
	cancel()
	return states
}

type fakeRecommendationAPI struct {
	response *hospitals.SearchResult
	err      error
	calls    int
}

func (f *fakeRecommendationAPI) Recommend(context.Context, hospitals.SearchRequest) (*hospitals.SearchResult, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeRecommendationAPI) Health(context.Context) (map[string]interface{}, error) {
	return nil, f.err
}

type fakeLocator struct {
	coords hospitals.Coordinates
	ok     bool
}

func (f fakeLocator) CurrentLocation(context.Context) (hospitals.Coordinates, bool) {
	return f.coords, f.ok
}

type fakeProvider struct {
	id      string
	err     error
	created []string
	signIns int
}

func (f *fakeProvider) CreateUser(_ context.Context, email, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, email)
	return f.id, nil
}

func (f *fakeProvider) SignIn(context.Context, string, string) (string, error) {
	f.signIns++
	return f.id, f.err
}

type fakeProfiles struct {
	users   map[string]users.User
	saved   []users.User
	updates int
	err     error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{users: map[string]users.User{}}
}

func (f *fakeProfiles) SaveUser(_ context.Context, user users.User) error {
	f.saved = append(f.saved, user)
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeProfiles) GetUser(_ context.Context, id string) (*users.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeProfiles) UpdateUserField(_ context.Context, id string, field users.Field, value interface{}) error {
	f.updates++
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	field.Apply(&u, value)
	f.users[id] = u
	return nil
}

var errBoom = errors.New("boom")

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}
