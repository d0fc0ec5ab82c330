package location

import (
	"context"
	"errors"

	"github.com/quickcare/backend-api-go/hospitals"
)

var ErrNoFix = errors.New("no cached location fix")

// StaticSource serves a fix fixed at construction time.
type StaticSource struct {
	coords *hospitals.Coordinates
}

func NewStaticSource(coords *hospitals.Coordinates) *StaticSource {
	return &StaticSource{coords: coords}
}

func (s *StaticSource) Permission(context.Context) bool {
	return s.coords != nil
}

func (s *StaticSource) LastKnown(context.Context) (hospitals.Coordinates, error) {
	if s.coords == nil {
		return hospitals.Coordinates{}, ErrNoFix
	}
	return *s.coords, nil
}

// DeviceStore keeps the last fix reported by each device.
type DeviceStore interface {
	GetLocation(ctx context.Context, deviceID string) (hospitals.Coordinates, bool, error)
}

// CacheSource reads the last fix a device reported. Permission is granted
// once the device has reported (opted in) at least once.
type CacheSource struct {
	store    DeviceStore
	deviceID string
}

func NewCacheSource(store DeviceStore, deviceID string) *CacheSource {
	return &CacheSource{store: store, deviceID: deviceID}
}

func (s *CacheSource) Permission(ctx context.Context) bool {
	if s.deviceID == "" {
		return false
	}
	_, found, err := s.store.GetLocation(ctx, s.deviceID)
	return err == nil && found
}

func (s *CacheSource) LastKnown(ctx context.Context) (hospitals.Coordinates, error) {
	coords, found, err := s.store.GetLocation(ctx, s.deviceID)
	if err != nil {
		return hospitals.Coordinates{}, err
	}
	if !found {
		return hospitals.Coordinates{}, ErrNoFix
	}
	return coords, nil
}
