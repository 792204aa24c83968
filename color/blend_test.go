package color

import (
	"reflect"
	"testing"
)

func TestBlend1DBlackToWhite(t *testing.T) {
	got := Blend1D(5, []string{"#000000", "#ffffff"})
	want := []string{"#000000", "#3b3b3b", "#777777", "#b9b9b9", "#ffffff"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBlend1DEndpointsExact(t *testing.T) {
	got := Blend1D(4, []string{"#ff0000", "#00ff00"})
	if got[0] != "#ff0000" {
		t.Errorf("first stop not preserved: %q", got[0])
	}
	if got[len(got)-1] != "#00ff00" {
		t.Errorf("last stop not preserved: %q", got[len(got)-1])
	}
}

func TestBlend1DSingleStop(t *testing.T) {
	got := Blend1D(3, []string{"#abcdef"})
	for _, c := range got {
		if c != "#abcdef" {
			t.Fatalf("expected repeated stop, got %v", got)
		}
	}
}

func TestBlend2DDimensions(t *testing.T) {
	got := Blend2D(3, 2, 45, []string{"#000000", "#ffffff"})
	if len(got) != 6 {
		t.Fatalf("got %d colors, want 6", len(got))
	}
}
