// Package renderer holds the process-wide rendering context: which color
// profile a terminal supports and whether its background is dark or light.
// Both are detected lazily from environment variables (NO_COLOR, COLORTERM,
// TERM for the profile; COLORFGBG for the background) and can be overridden
// explicitly, scoped to a single, lock-guarded Renderer value per spec §4.6.
package renderer

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Profile is the color capability assumed of a terminal. It mirrors
// termenv's Profile enum.
type Profile int

const (
	// NoColor means no color output should be produced.
	NoColor Profile = iota
	// ANSI means the basic 16-color palette is supported.
	ANSI
	// ANSI256 means the xterm 256-color palette is supported.
	ANSI256
	// TrueColor means 24-bit RGB color is supported.
	TrueColor
)

func (p Profile) String() string {
	switch p {
	case NoColor:
		return "NoColor"
	case ANSI:
		return "ANSI"
	case ANSI256:
		return "ANSI256"
	case TrueColor:
		return "TrueColor"
	default:
		return "NoColor"
	}
}

// Output describes the capabilities of an output stream.
type Output struct {
	SupportsANSI bool
	IsTTYLike    bool
}

// Renderer stores environment-specific rendering options: the detected
// color profile and whether the terminal background is dark. Settings are
// lazily detected on first read behind a one-shot latch, and can be
// explicitly overridden at any time. A Renderer is safe for concurrent use.
type Renderer struct {
	mu sync.RWMutex

	output Output

	profile         Profile
	explicitProfile bool
	profileDetected bool

	darkBackground bool
	explicitDark   bool
	darkDetected   bool
}

// New creates a Renderer with automatic terminal detection performed lazily
// on first access.
func New() *Renderer {
	return &Renderer{
		output:         detectOutput(),
		darkBackground: true,
	}
}

// NewWithOutput creates a Renderer using the supplied Output instead of
// probing the environment for TTY/ANSI support.
func NewWithOutput(o Output) *Renderer {
	r := New()
	r.output = o
	return r
}

// ColorProfile returns the renderer's color profile, detecting it lazily
// from the environment on first call unless it was explicitly set.
func (r *Renderer) ColorProfile() Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.explicitProfile && !r.profileDetected {
		r.profile = detectColorProfile(r.output)
		r.profileDetected = true
	}
	return r.profile
}

// SetColorProfile explicitly sets the color profile, overriding detection.
func (r *Renderer) SetColorProfile(p Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
	r.explicitProfile = true
	r.profileDetected = true
}

// HasDarkBackground reports whether the terminal background is considered
// dark, detecting it lazily from COLORFGBG on first call unless explicitly
// set. Defaults to true (dark) when detection finds nothing.
func (r *Renderer) HasDarkBackground() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.explicitDark && !r.darkDetected {
		r.darkBackground = detectDarkBackground()
		r.darkDetected = true
	}
	return r.darkBackground
}

// SetHasDarkBackground explicitly sets the background polarity, overriding
// detection.
func (r *Renderer) SetHasDarkBackground(dark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.darkBackground = dark
	r.explicitDark = true
	r.darkDetected = true
}

// Output returns a copy of the renderer's output capability descriptor.
func (r *Renderer) Output() Output {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.output
}

// SetOutput replaces the renderer's output capability descriptor.
func (r *Renderer) SetOutput(o Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = o
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns the process-wide default Renderer, creating it with lazy
// detection on first call. This is the library's one piece of global
// mutable state (spec §5, §9).
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = New()
	})
	return defaultRenderer
}

// SetDefault replaces the state of the process-wide default renderer with
// that of r. Unlike a bare assignment, this mutates the existing singleton
// in place so references obtained via Default() earlier keep observing the
// update.
func SetDefault(r *Renderer) {
	d := Default()
	r.mu.RLock()
	output, profile, explicitProfile, profileDetected := r.output, r.profile, r.explicitProfile, r.profileDetected
	darkBackground, explicitDark, darkDetected := r.darkBackground, r.explicitDark, r.darkDetected
	r.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.output = output
	d.profile = profile
	d.explicitProfile = explicitProfile
	d.profileDetected = profileDetected
	d.darkBackground = darkBackground
	d.explicitDark = explicitDark
	d.darkDetected = darkDetected
}

// ColorProfile returns the color profile of the default renderer.
func ColorProfile() Profile { return Default().ColorProfile() }

// SetColorProfile sets the color profile on the default renderer.
func SetColorProfile(p Profile) { Default().SetColorProfile(p) }

// HasDarkBackground reports the background polarity of the default
// renderer.
func HasDarkBackground() bool { return Default().HasDarkBackground() }

// SetHasDarkBackground sets the background polarity on the default
// renderer.
func SetHasDarkBackground(dark bool) { Default().SetHasDarkBackground(dark) }

// detectColorProfile reads the environment variables in order: NO_COLOR
// (any value) forces NoColor; COLORTERM containing "truecolor" or "24bit"
// gives TrueColor; TERM containing "256color" gives ANSI256, and TERM
// containing "color" gives ANSI (both matches case-insensitive). TTY state
// is not consulted before the env vars. o.SupportsANSI is only consulted
// once the env vars settle on nothing, and even then it can only confirm
// NoColor — it never overrides a profile the environment already asserted.
func detectColorProfile(o Output) Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColor
	}
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	if strings.Contains(colorTerm, "truecolor") || strings.Contains(colorTerm, "24bit") {
		return TrueColor
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "256color") {
		return ANSI256
	}
	if strings.Contains(term, "color") {
		return ANSI
	}
	if !o.SupportsANSI {
		return NoColor
	}
	return NoColor
}

// detectDarkBackground parses the last semicolon-separated field of
// COLORFGBG as the background color index: 0-6 is dark, 7 and above is
// light. An absent or unparsable value counts as dark.
func detectDarkBackground() bool {
	fields := strings.Split(os.Getenv("COLORFGBG"), ";")
	bg, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil {
		return true
	}
	return bg <= 6
}

func detectOutput() Output {
	isTTY := isatty.IsTerminal(os.Stdout.Fd())
	_, noColor := os.LookupEnv("NO_COLOR")
	return Output{
		SupportsANSI: isTTY && !noColor,
		IsTTYLike:    isTTY,
	}
}
