package models

import (
	"testing"

	"astro-atlas/pkg/category"
)

func TestAttributesValidate(t *testing.T) {
	tests := []struct {
		name    string
		attrs   *Attributes
		cat     category.Category
		wantErr bool
	}{
		{name: "nil attributes are always valid", attrs: nil, cat: category.Planet},
		{name: "empty attributes are valid", attrs: &Attributes{}, cat: category.Star},
		{
			name:  "planet attributes on a planet",
			attrs: &Attributes{Planet: &PlanetAttributes{Rings: true, Moons: 146}},
			cat:   category.Planet,
		},
		{
			name:  "star attributes on a star",
			attrs: &Attributes{Star: &StarAttributes{SpectralClass: "M5.5Ve"}},
			cat:   category.Star,
		},
		{
			name:  "galaxy attributes on a galaxy",
			attrs: &Attributes{Galaxy: &GalaxyAttributes{Morphology: "SA(s)b"}},
			cat:   category.Galaxy,
		},
		{
			name:  "nebula attributes on a nebula",
			attrs: &Attributes{Nebula: &NebulaAttributes{NebulaType: "emission"}},
			cat:   category.Nebula,
		},
		{
			name:    "planet attributes on a star",
			attrs:   &Attributes{Planet: &PlanetAttributes{Rings: true}},
			cat:     category.Star,
			wantErr: true,
		},
		{
			name:    "star attributes on a galaxy",
			attrs:   &Attributes{Star: &StarAttributes{Luminosity: 1.0}},
			cat:     category.Galaxy,
			wantErr: true,
		},
		{
			name: "two attribute sets at once",
			attrs: &Attributes{
				Planet: &PlanetAttributes{Rings: true},
				Star:   &StarAttributes{SpectralClass: "G2V"},
			},
			cat:     category.Planet,
			wantErr: true,
		},
		{
			name:    "categories without attribute cases accept none",
			attrs:   &Attributes{Planet: &PlanetAttributes{}},
			cat:     category.Comet,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attrs.Validate(tt.cat)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.cat, err, tt.wantErr)
			}
		})
	}
}
