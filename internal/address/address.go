package address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iurnickita/binday/internal/model"
	"github.com/iurnickita/binday/internal/street"
)

// CandidateFetcher возвращает все адреса, зарегистрированные на индекс.
type CandidateFetcher interface {
	AddressSearch(ctx context.Context, postcode string) ([]model.Address, error)
}

type Resolver interface {
	Resolve(ctx context.Context, houseNumber, streetName, postcode string) (model.AddressID, error)
}

var ErrNotFound = errors.New("address not found")

type resolver struct {
	fetcher CandidateFetcher
}

func NewResolver(fetcher CandidateFetcher) Resolver {
	return &resolver{fetcher: fetcher}
}

// Resolve returns the id of the first candidate whose house number and
// normalized street equal the input. ErrNotFound is returned only when the
// lookup succeeded and nothing matched.
func (r *resolver) Resolve(ctx context.Context, houseNumber, streetName, postcode string) (model.AddressID, error) {
	houseNumber = strings.ToUpper(houseNumber)
	streetName = street.Normalize(streetName)
	postcode = strings.ToUpper(postcode)

	candidates, err := r.fetcher.AddressSearch(ctx, postcode)
	if err != nil {
		return "", fmt.Errorf("address search %q: %w", postcode, err)
	}

	for _, candidate := range candidates {
		if strings.ToUpper(candidate.HouseNumber) != houseNumber {
			continue
		}
		if street.Normalize(candidate.Street) != streetName {
			continue
		}
		return candidate.ID, nil
	}
	return "", ErrNotFound
}
