package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iurnickita/binday/internal/address"
	"github.com/iurnickita/binday/internal/catalog"
	"github.com/iurnickita/binday/internal/collection"
	"github.com/iurnickita/binday/internal/council"
	"github.com/iurnickita/binday/internal/service/config"
	"github.com/iurnickita/binday/internal/skill"
	"github.com/iurnickita/binday/internal/speech"
)

type Service interface {
	Fulfill(ctx context.Context, intent *skill.Intent, addr *skill.AlexaAddress) string
	NextCollections(ctx context.Context, addr skill.HouseAddress, tokens []string) (collection.Result, error)
	Today() time.Time
}

var (
	ErrAddressUnparseable  = errors.New("address unparseable")
	ErrAddressLookupFailed = errors.New("address lookup failed")
	ErrAddressNotFound     = errors.New("address not found")
	ErrScheduleFetchFailed = errors.New("schedule fetch failed")
	ErrMissingScheduleData = errors.New("missing schedule data")
)

// Ответы при ошибках
const (
	SayAddressUnparseable = "Sorry, I was unable to determine your address. Please check the council website for collection date."
	SayAddressNotFound    = "Sorry, I was unable to find your address in the collection calendar. Please check the council website for collection date."
	SayScheduleFailed     = "Sorry, I was unable to retrieve the collection calendar for your address. Please check the council website for collection date."
	SayNextDateFailed     = "Sorry, I was unable to find the next date for the requested collection type. Please check the council website for collection date."
)

const DefaultNumberOfCollections = 10

type service struct {
	cfg      config.Config
	council  council.Client
	resolver address.Resolver
	location *time.Location
	now      func() time.Time
	zaplog   *zap.Logger
}

func NewService(cfg config.Config, council council.Client, zaplog *zap.Logger) (Service, error) {
	location := time.Local
	if cfg.Timezone != "" {
		var err error
		location, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
		}
	}
	if cfg.NumberOfCollections <= 0 {
		cfg.NumberOfCollections = DefaultNumberOfCollections
	}

	service := service{
		cfg:      cfg,
		council:  council,
		resolver: address.NewResolver(council),
		location: location,
		now:      time.Now,
		zaplog:   zaplog,
	}
	return &service, nil
}

func (service *service) Today() time.Time {
	return collection.Midnight(service.now().In(service.location))
}

// Fulfill answers a bin-day intent with one spoken sentence. Every failure is
// reported with a fixed apology.
func (service *service) Fulfill(ctx context.Context, intent *skill.Intent, addr *skill.AlexaAddress) string {
	if addr == nil {
		service.zaplog.Info("fulfillment failed", zap.Error(ErrAddressUnparseable))
		return SayAddressUnparseable
	}

	parsed, ok := skill.ParseAddress(*addr)
	if !ok {
		// продолжаем: адрес просто не найдётся
		service.zaplog.Info("address line not recognised", zap.String("addressLine1", addr.AddressLine1))
	}

	var tokens []string
	if token := skill.CategoryToken(intent); token != "" {
		tokens = append(tokens, token)
	}

	result, err := service.NextCollections(ctx, parsed, tokens)
	if err != nil {
		service.zaplog.Info("fulfillment failed",
			zap.String("postcode", parsed.Postcode),
			zap.Error(err),
		)
		return Apology(err)
	}
	return speech.Compose(result, service.Today())
}

// NextCollections resolves the address, fetches its schedule and computes the
// next date for each token. No tokens means every catalog category.
func (service *service) NextCollections(ctx context.Context, addr skill.HouseAddress, tokens []string) (collection.Result, error) {
	id, err := service.resolver.Resolve(ctx, addr.HouseNumber, addr.Street, addr.Postcode)
	if err != nil {
		if errors.Is(err, address.ErrNotFound) {
			return collection.Result{}, ErrAddressNotFound
		}
		return collection.Result{}, fmt.Errorf("%w: %w", ErrAddressLookupFailed, err)
	}

	schedule, err := service.council.CollectionSearch(ctx, id, service.cfg.NumberOfCollections)
	if err != nil {
		service.zaplog.Warn("collection search failed", zap.String("id", string(id)), zap.Error(err))
		return collection.Result{}, fmt.Errorf("%w: %w", ErrScheduleFetchFailed, err)
	}

	var categories []catalog.Category
	if len(tokens) == 0 {
		categories = catalog.All()
	} else {
		for _, token := range tokens {
			categories = append(categories, catalog.Resolve(token))
		}
	}

	result, err := collection.Next(schedule, categories, service.Today())
	if err != nil {
		return collection.Result{}, fmt.Errorf("%w: %w", ErrMissingScheduleData, err)
	}
	return result, nil
}

// Apology maps a fulfillment error to the sentence read back to the user.
func Apology(err error) string {
	switch {
	case errors.Is(err, ErrAddressUnparseable):
		return SayAddressUnparseable
	case errors.Is(err, ErrAddressNotFound), errors.Is(err, ErrAddressLookupFailed):
		return SayAddressNotFound
	case errors.Is(err, ErrScheduleFetchFailed):
		return SayScheduleFailed
	default:
		return SayNextDateFailed
	}
}
