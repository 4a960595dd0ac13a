package registry

import (
	"errors"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T) *Registry {
	t.Helper()
	r, err := Load(filepath.Join("testdata", "fdom.json"))
	if err != nil {
		t.Fatalf("loading fixture registry: %v", err)
	}
	return r
}

func TestLoadIndexesAllElements(t *testing.T) {
	r := loadFixture(t)
	if got := r.Len(); got != 20 {
		t.Fatalf("expected 20 elements, got %d", got)
	}
}

func TestResolveEveryCompilerSymbol(t *testing.T) {
	r := loadFixture(t)

	// Every press the compiler can emit must resolve against a complete
	// registry: all ten digits, the four operator glyphs, evaluate, and
	// both function keys.
	symbols := []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"+", "-", "×", "÷", "=", "square", "√",
	}

	for _, sym := range symbols {
		t.Run(sym, func(t *testing.T) {
			if _, err := r.Resolve(sym); err != nil {
				t.Fatalf("Resolve(%q): %v", sym, err)
			}
		})
	}
}

func TestResolvePlusDoesNotMatchSignToggle(t *testing.T) {
	r := loadFixture(t)

	d, err := r.Resolve("+")
	if err != nil {
		t.Fatalf("Resolve(+): %v", err)
	}
	if d.IconName != "+ Button" {
		t.Fatalf("expected the addition button, got %q", d.IconName)
	}
}

func TestResolveSquareDoesNotMatchSquareRoot(t *testing.T) {
	r := loadFixture(t)

	d, err := r.Resolve("square")
	if err != nil {
		t.Fatalf("Resolve(square): %v", err)
	}
	if d.IconName != "x² Button" {
		t.Fatalf("expected the square button, got %q", d.IconName)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	r := loadFixture(t)

	d, err := r.Resolve("SQRT")
	if err != nil {
		t.Fatalf("Resolve(SQRT): %v", err)
	}
	if d.IconName != "√x Button" {
		t.Fatalf("expected the square root button, got %q", d.IconName)
	}
}

func TestResolveFallsBackToLabelText(t *testing.T) {
	r := loadFixture(t)

	d, err := r.Resolve("clear")
	if err != nil {
		t.Fatalf("Resolve(clear): %v", err)
	}
	if d.IconName != "C Button" {
		t.Fatalf("expected the clear button, got %q", d.IconName)
	}
}

func TestResolveUnknownButtonFails(t *testing.T) {
	r := loadFixture(t)

	_, err := r.Resolve("percent")
	if !errors.Is(err, ErrButtonNotFound) {
		t.Fatalf("expected ErrButtonNotFound, got %v", err)
	}
}

func TestResolveAmbiguousMatchFails(t *testing.T) {
	r := loadFixture(t)

	// "button" is contained in every element label; the registry must
	// refuse to guess rather than pick a near match.
	_, err := r.Resolve("button")
	if !errors.Is(err, ErrButtonNotFound) {
		t.Fatalf("expected ErrButtonNotFound for ambiguous name, got %v", err)
	}
}

func TestResolveBoundingBox(t *testing.T) {
	r := loadFixture(t)

	d, err := r.Resolve("2")
	if err != nil {
		t.Fatalf("Resolve(2): %v", err)
	}

	want := BoundingBox{Left: 80, Top: 460, Width: 60, Height: 40}
	if d.Box != want {
		t.Fatalf("expected box %+v, got %+v", want, d.Box)
	}
}

func TestParseRejectsMalformedBoundingBox(t *testing.T) {
	_, err := Parse([]byte(`{"states":{"root":{"nodes":{"H1_1":{"g_icon_name":"0 Button","g_brief":"zero","bbox":[1,2,3]}}}}}`))
	if err == nil {
		t.Fatal("expected error for 3-value bounding box")
	}
}

func TestParseRequiresRootState(t *testing.T) {
	_, err := Parse([]byte(`{"states":{}}`))
	if err == nil {
		t.Fatal("expected error for missing root state")
	}
}
