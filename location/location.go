package location

import (
	"context"

	"github.com/quickcare/backend-api-go/hospitals"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"go.uber.org/zap"
)

// Source is where a last known fix comes from.
type Source interface {
	Permission(ctx context.Context) bool
	LastKnown(ctx context.Context) (hospitals.Coordinates, error)
}

type Fix struct {
	Coordinates hospitals.Coordinates
	OK          bool
}

// Locator answers single-shot "where am I" queries. It never returns an
// error: an unknown position is the only failure signal.
type Locator struct {
	source Source
}

func NewLocator(source Source) *Locator {
	return &Locator{source: source}
}

func (l *Locator) CurrentLocation(ctx context.Context) (coords hospitals.Coordinates, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Logger().Warn("location source panicked", zap.Any("panic", r))
			coords, ok = hospitals.Coordinates{}, false
		}
	}()

	if l.source == nil || !l.source.Permission(ctx) {
		return hospitals.Coordinates{}, false
	}

	coords, err := l.source.LastKnown(ctx)
	if err != nil {
		log.Logger().Debug("no last known location", zap.Error(err))
		return hospitals.Coordinates{}, false
	}
	if !coords.Valid() {
		return hospitals.Coordinates{}, false
	}

	return coords, true
}

// CurrentLocationAsync runs CurrentLocation in the background and delivers
// exactly one Fix.
func (l *Locator) CurrentLocationAsync(ctx context.Context) <-chan Fix {
	out := make(chan Fix, 1)
	go func() {
		coords, ok := l.CurrentLocation(ctx)
		out <- Fix{Coordinates: coords, OK: ok}
	}()
	return out
}
