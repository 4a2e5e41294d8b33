package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `
[[star]]
id = 0
name = "Sol"
x = 0.0
y = 0.0
z = 0.0
mag = -26.74

[[star]]
id = 32349
name = "Sirius"
ra = 101.287
dec = -16.716
dist = 2.637
mag = -1.46

[[star]]
id = 439
ra = 1.383
dec = -37.351
dist = 4.35
mag = 8.56
`

func TestParse(t *testing.T) {
	stars, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(stars) != 3 {
		t.Fatalf("got %d stars, want 3", len(stars))
	}

	if stars[0].Name != "Sol" || stars[0].Distance() != 0 {
		t.Errorf("stars[0] = %+v, want Sol at origin", stars[0])
	}

	sirius := stars[1]
	if sirius.ID != 32349 || sirius.Mag != -1.46 {
		t.Errorf("stars[1] = %+v, want Sirius", sirius)
	}
	if math.Abs(sirius.Distance()-2.637) > 1e-9 {
		t.Errorf("Sirius distance = %v, want 2.637", sirius.Distance())
	}

	if stars[2].HasName() {
		t.Errorf("stars[2] name = %q, want unnamed", stars[2].Name)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "missing id",
			input:   "[[star]]\nname = \"x\"\nx = 1.0\ny = 0.0\nz = 0.0\n",
			wantErr: ErrMissingID,
		},
		{
			name:    "duplicate id",
			input:   "[[star]]\nid = 1\nx = 1.0\ny = 0.0\nz = 0.0\n[[star]]\nid = 1\nx = 2.0\ny = 0.0\nz = 0.0\n",
			wantErr: ErrDuplicateID,
		},
		{
			name:    "no position",
			input:   "[[star]]\nid = 1\nra = 10.0\ndec = 5.0\n",
			wantErr: ErrNoPosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	if _, err := Parse([]byte("[[star]\nid = ")); err == nil {
		t.Error("Parse() accepted malformed toml")
	}
}

func TestParse_Empty(t *testing.T) {
	stars, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if len(stars) != 0 {
		t.Errorf("Parse(nil) = %d stars, want 0", len(stars))
	}
}

func TestMarshal_LoadFile(t *testing.T) {
	want := DefaultStars()

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "stars.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d stars, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name {
			t.Errorf("star %d = %d/%q, want %d/%q", i, got[i].ID, got[i].Name, want[i].ID, want[i].Name)
		}
		if got[i].Position.Dist(want[i].Position) > 1e-9 {
			t.Errorf("star %d position = %v, want %v", i, got[i].Position, want[i].Position)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want ErrNotExist", err)
	}
}
