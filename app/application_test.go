package app

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickcare/backend-api-go/auth"
	"github.com/quickcare/backend-api-go/events"
	"github.com/quickcare/backend-api-go/hospitals"
	authmw "github.com/quickcare/backend-api-go/middleware/auth"
	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	users map[string]users.User
}

func (m *memoryUsers) SaveUser(_ context.Context, u users.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memoryUsers) GetUser(_ context.Context, id string) (*users.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memoryUsers) UpdateUserField(_ context.Context, id string, field users.Field, value interface{}) error {
	u := m.users[id]
	field.Apply(&u, value)
	m.users[id] = u
	return nil
}

type memoryCache struct {
	entries map[string][]byte
	fixes   map[string]hospitals.Coordinates
	pruned  int
}

func (m *memoryCache) Get(key string) []byte { return m.entries[key] }

func (m *memoryCache) SetKey(key string, value interface{}, _ time.Duration) {
	m.entries[key] = value.([]byte)
}

func (m *memoryCache) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) Prune() error {
	m.pruned++
	m.entries = map[string][]byte{}
	return nil
}

func (m *memoryCache) GetLocation(_ context.Context, id string) (hospitals.Coordinates, bool, error) {
	c, ok := m.fixes[id]
	return c, ok, nil
}

func (m *memoryCache) SetLocation(_ context.Context, id string, c hospitals.Coordinates) error {
	m.fixes[id] = c
	return nil
}

type staticRecommendations struct{}

func (staticRecommendations) GetRecommendations(context.Context, float64, float64, string, int) result.Result[hospitals.SearchResult] {
	return result.Success(hospitals.SearchResult{Success: true})
}

func (staticRecommendations) CheckHealth(context.Context) result.Result[map[string]interface{}] {
	return result.Success(map[string]interface{}{"status": "healthy"})
}

type staticIdentity struct{}

func (staticIdentity) CreateUser(context.Context, string, string) (string, error) {
	return "uid-1", nil
}

func (staticIdentity) SignIn(context.Context, string, string) (string, error) { return "uid-1", nil }

type droppedEvents struct{}

func (droppedEvents) SearchPerformed(events.SearchPerformed) {}

func (droppedEvents) UserCreated(events.UserCreated) {}

func newTestApplication() (*Application, *memoryCache, *auth.TokenIssuer) {
	c := &memoryCache{entries: map[string][]byte{}, fixes: map[string]hospitals.Coordinates{}}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	a := New(Dependencies{
		APIKey:          "key",
		Users:           &memoryUsers{users: map[string]users.User{"uid-1": {ID: "uid-1", Username: "ann"}}},
		Cache:           c,
		Recommendations: staticRecommendations{},
		Identity:        staticIdentity{},
		Tokens:          tokens,
		Publisher:       droppedEvents{},
	})
	return a, c, tokens
}

func TestRoutes(t *testing.T) {
	a, c, tokens := newTestApplication()
	token, err := tokens.Issue("uid-1", "a@b.co")
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		target string
		header map[string]string
		status int
	}{
		{"healthcheck", "GET", "/healthcheck", nil, 200},
		{"backend health", "GET", "/health/backend", nil, 200},
		{"conditions", "GET", "/conditions", nil, 200},
		{"swagger redirect", "GET", "/", nil, 308},
		{"metrics", "GET", "/metrics", nil, 200},
		{"recommendations", "GET", "/recommendations?latitude=1&longitude=1&condition=Fever", nil, 200},
		{"device without fix", "GET", "/devices/d1/recommendations?condition=Fever", nil, 412},
		{"profile without token", "GET", "/users/uid-1", nil, 401},
		{"profile with token", "GET", "/users/uid-1", map[string]string{"Authorization": "Bearer " + token}, 200},
		{"someone else's profile", "GET", "/users/uid-2", map[string]string{"Authorization": "Bearer " + token}, 403},
		{"prune without key", "GET", "/caches/prune", nil, 401},
		{"prune with key", "GET", "/caches/prune", map[string]string{authmw.ApiKeyHeaderName: "key"}, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			resp, err := a.App().Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
	assert.Equal(t, 1, c.pruned)
}
