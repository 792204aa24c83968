package renderer

import (
	"os"
	"testing"
)

func TestDetectColorProfilePrecedence(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("COLORTERM", "truecolor")
	if got := detectColorProfile(Output{SupportsANSI: true}); got != NoColor {
		t.Fatalf("NO_COLOR should win, got %v", got)
	}
}

func TestDetectColorProfileTrueColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os_unsetNoColor(t)
	t.Setenv("COLORTERM", "TrueColor")
	if got := detectColorProfile(Output{SupportsANSI: true}); got != TrueColor {
		t.Fatalf("got %v, want TrueColor", got)
	}
}

func TestDetectColorProfile256(t *testing.T) {
	os_unsetNoColor(t)
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if got := detectColorProfile(Output{SupportsANSI: true}); got != ANSI256 {
		t.Fatalf("got %v, want ANSI256", got)
	}
}

func TestDetectColorProfileANSI(t *testing.T) {
	os_unsetNoColor(t)
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-color")
	if got := detectColorProfile(Output{SupportsANSI: true}); got != ANSI {
		t.Fatalf("got %v, want ANSI", got)
	}
}

func TestDetectColorProfileEnvWinsOverNonTTYOutput(t *testing.T) {
	// A piped/captured stdout (SupportsANSI: false, the common case in CI
	// and any os.Pipe-based caller) must not downgrade a profile the
	// environment already asserted.
	os_unsetNoColor(t)
	t.Setenv("COLORTERM", "truecolor")
	if got := detectColorProfile(Output{SupportsANSI: false}); got != TrueColor {
		t.Fatalf("got %v, want TrueColor even though SupportsANSI is false", got)
	}
}

func TestDetectColorProfileNoEnvAndNoANSIFallsBackToNoColor(t *testing.T) {
	os_unsetNoColor(t)
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "")
	if got := detectColorProfile(Output{SupportsANSI: false}); got != NoColor {
		t.Fatalf("got %v, want NoColor", got)
	}
}

func TestDetectDarkBackground(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if !detectDarkBackground() {
		t.Fatal("bg 0 should be dark")
	}
	t.Setenv("COLORFGBG", "0;15")
	if detectDarkBackground() {
		t.Fatal("bg 15 should be light")
	}
}

func TestRendererExplicitOverride(t *testing.T) {
	r := New()
	r.SetColorProfile(ANSI256)
	if r.ColorProfile() != ANSI256 {
		t.Fatal("explicit profile override not honored")
	}
	r.SetHasDarkBackground(false)
	if r.HasDarkBackground() {
		t.Fatal("explicit background override not honored")
	}
}

func os_unsetNoColor(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "x")
	if err := os.Unsetenv("NO_COLOR"); err != nil {
		t.Fatal(err)
	}
}
