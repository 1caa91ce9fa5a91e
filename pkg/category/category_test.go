package category

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Category
		wantErr bool
	}{
		{name: "lowercase", raw: "planet", want: Planet},
		{name: "mixed case", raw: "Planet", want: Planet},
		{name: "uppercase", raw: "GALAXY", want: Galaxy},
		{name: "surrounding whitespace", raw: "  star  ", want: Star},
		{name: "comet", raw: "comet", want: Comet},
		{name: "moon", raw: "moon", want: Moon},
		{name: "asteroid", raw: "asteroid", want: Asteroid},
		{name: "outside the set", raw: "blackhole", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "unknown is not assignable", raw: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Nebula"); got != Nebula {
		t.Errorf("Normalize(Nebula) = %q, want %q", got, Nebula)
	}
	if got := Normalize("quasar"); got != Unknown {
		t.Errorf("Normalize(quasar) = %q, want %q", got, Unknown)
	}
	if got := Normalize(""); got != Unknown {
		t.Errorf("Normalize(empty) = %q, want %q", got, Unknown)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Planet, "Planets"},
		{Star, "Stars"},
		{Unknown, "Unknowns"},
		{Category(""), "Unknowns"},
	}

	for _, tt := range tests {
		if got := tt.c.Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestAllExcludesUnknown(t *testing.T) {
	for _, c := range All() {
		if c == Unknown {
			t.Fatal("All() must not include the unknown bucket")
		}
	}
	if len(All()) != 7 {
		t.Errorf("All() length = %d, want 7", len(All()))
	}
}
