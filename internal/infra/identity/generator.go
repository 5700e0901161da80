// Package identity decides how new drinks, reviews and wishes get their ids.
package identity

import (
	"strconv"
	"time"

	"sommelier/config"
	"sommelier/internal/domain/constants"
	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// generator implements service.IDGenerator. In derived mode ids are uuid v5 (SHA-1, DNS namespace) of the
// natural key, so the same user reviewing the same drink twice collides on the primary key.
type generator struct {
	drinkMode  string
	reviewMode string
	wishMode   string
}

// NewGenerator builds an IDGenerator from the identity section of the config.
// Missing modes default to random drink ids and derived review and wish ids.
func NewGenerator(cfg *config.Config) (service.IDGenerator, error) {
	g := &generator{
		drinkMode:  constants.IDModeRandom,
		reviewMode: constants.IDModeDerived,
		wishMode:   constants.IDModeDerived,
	}
	if cfg == nil || cfg.Identity == nil {
		return g, nil
	}

	for _, m := range []struct {
		name  string
		value string
		dst   *string
	}{
		{"drink", cfg.Identity.Drink, &g.drinkMode},
		{"review", cfg.Identity.Review, &g.reviewMode},
		{"wish", cfg.Identity.Wish, &g.wishMode},
	} {
		switch m.value {
		case "":
		case constants.IDModeDerived, constants.IDModeRandom:
			*m.dst = m.value
		default:
			return nil, errors.Errorf("unknown identity mode %q for %s", m.value, m.name)
		}
	}

	return g, nil
}

// DrinkID derives from the drink name and its creation time in nanoseconds.
func (g *generator) DrinkID(name string, createdAt time.Time) uuid.UUID {
	if g.drinkMode == constants.IDModeRandom {
		return uuid.New()
	}

	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name+strconv.FormatInt(createdAt.UnixNano(), 10)))
}

// ReviewID derives from the author and the drink.
func (g *generator) ReviewID(userID entity.UserID, drinkID uuid.UUID) uuid.UUID {
	return g.pairID(g.reviewMode, userID, drinkID)
}

// WishID derives from the user and the drink.
func (g *generator) WishID(userID entity.UserID, drinkID uuid.UUID) uuid.UUID {
	return g.pairID(g.wishMode, userID, drinkID)
}

func (g *generator) pairID(mode string, userID entity.UserID, drinkID uuid.UUID) uuid.UUID {
	if mode == constants.IDModeRandom {
		return uuid.New()
	}

	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(userID.String()+drinkID.String()))
}
