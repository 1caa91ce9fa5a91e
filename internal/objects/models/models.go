package models

import (
	"fmt"
	"time"

	"astro-atlas/pkg/category"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectsCollection is the MongoDB collection name
const ObjectsCollection = "celestialobjects"

// CelestialObject is a catalog entry. Category is drawn from the closed set,
// and category-specific attributes live in a tagged variant: at most the
// case matching the category may be populated.
type CelestialObject struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Category      category.Category  `bson:"type" json:"type"`
	Distance      float64            `bson:"distance" json:"distance"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Mass          string             `bson:"mass,omitempty" json:"mass,omitempty"`
	DiscoveryDate *time.Time         `bson:"discoveryDate,omitempty" json:"discoveryDate,omitempty"`
	Attributes    *Attributes        `bson:"attributes,omitempty" json:"attributes,omitempty"`
}

// Attributes is the per-category variant. Exactly one case may be set, and
// it must match the object's category.
type Attributes struct {
	Planet *PlanetAttributes `bson:"planet,omitempty" json:"planet,omitempty"`
	Star   *StarAttributes   `bson:"star,omitempty" json:"star,omitempty"`
	Galaxy *GalaxyAttributes `bson:"galaxy,omitempty" json:"galaxy,omitempty"`
	Nebula *NebulaAttributes `bson:"nebula,omitempty" json:"nebula,omitempty"`
}

type PlanetAttributes struct {
	Rings      bool   `bson:"rings" json:"rings"`
	Atmosphere string `bson:"atmosphere,omitempty" json:"atmosphere,omitempty"`
	Moons      int    `bson:"moons,omitempty" json:"moons,omitempty"`
}

type StarAttributes struct {
	SpectralClass string  `bson:"spectralClass,omitempty" json:"spectralClass,omitempty"`
	Luminosity    float64 `bson:"luminosity,omitempty" json:"luminosity,omitempty"`
}

type GalaxyAttributes struct {
	Morphology string `bson:"morphology,omitempty" json:"morphology,omitempty"`
}

type NebulaAttributes struct {
	NebulaType string `bson:"nebulaType,omitempty" json:"nebulaType,omitempty"`
}

// Validate checks that the populated attribute case matches the category and
// that no second case is set.
func (a *Attributes) Validate(c category.Category) error {
	if a == nil {
		return nil
	}

	set := map[category.Category]bool{
		category.Planet: a.Planet != nil,
		category.Star:   a.Star != nil,
		category.Galaxy: a.Galaxy != nil,
		category.Nebula: a.Nebula != nil,
	}

	count := 0
	for cat, present := range set {
		if !present {
			continue
		}
		count++
		if cat != c {
			return fmt.Errorf("%s attributes are not valid for a %s", cat, c)
		}
	}
	if count > 1 {
		return fmt.Errorf("only one attribute set may be provided")
	}
	return nil
}
