package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// Sweep timing. One highlight pass crosses the text per cycle, then the
// shimmer rests before the next pass.
const (
	shimmerFrame = 100 * time.Millisecond
	shimmerCycle = 1800 * time.Millisecond
	shimmerRest  = 500 * time.Millisecond
	shimmerWidth = 0.25 // highlight width as a fraction of the text
)

// Sweep palette: the muted secondary tone blending up to the bright accent.
const (
	shimmerBaseR, shimmerBaseG, shimmerBaseB = 167, 189, 178 // ColorSecondaryText
	shimmerHighR, shimmerHighG, shimmerHighB = 94, 234, 212  // ColorAccentBright
)

// Shimmer animates a soft highlight sweeping across a short run of text,
// used on the status line while the session is waiting for input. Each
// rune is blended between the base tone and the accent by a Gaussian
// window centered on the sweep position.
type Shimmer struct {
	center    float64
	resting   bool
	restSince time.Time
	lastFrame time.Time

	active    bool
	truecolor bool
}

// NewShimmer returns a shimmer at its starting position. Terminals that do
// not advertise truecolor get a 256-color sweep instead of the blend.
func NewShimmer() *Shimmer {
	return &Shimmer{
		active:    true,
		truecolor: os.Getenv("COLORTERM") == "truecolor",
		lastFrame: time.Now(),
	}
}

// Active reports whether the sweep should keep ticking.
func (s *Shimmer) Active() bool {
	return s.active
}

// SetActive pauses or resumes the sweep. Inactive shimmers render their
// text statically in the accent color.
func (s *Shimmer) SetActive(on bool) {
	s.active = on
}

// TickInterval is the frame interval for tea.Tick scheduling.
func (s *Shimmer) TickInterval() time.Duration {
	return shimmerFrame
}

// Reset restarts the sweep from the left edge.
func (s *Shimmer) Reset() {
	s.center = 0
	s.resting = false
	s.lastFrame = time.Now()
}

// advance moves the sweep one frame at most, honoring the rest period
// between cycles. The sweep starts left of the first rune and runs past
// the last one so the highlight fades in and out at the edges. Extra
// renders between frames leave the position unchanged.
func (s *Shimmer) advance(length int) {
	if !s.active || length <= 0 {
		return
	}
	now := time.Now()
	if now.Sub(s.lastFrame) < shimmerFrame {
		return
	}
	s.lastFrame = now

	margin := float64(length) * shimmerWidth
	if s.resting {
		if now.Sub(s.restSince) >= shimmerRest {
			s.resting = false
			s.center = -margin
		}
		return
	}

	frames := float64(shimmerCycle) / float64(shimmerFrame)
	s.center += (float64(length) + 2*margin) / frames
	if s.center >= float64(length)+margin {
		s.resting = true
		s.restSince = now
	}
}

// Render paints text at the current sweep position and advances the
// animation. Inactive shimmers return the text in the plain accent color.
func (s *Shimmer) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	s.advance(len(runes))

	if !s.active {
		return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", shimmerHighR, shimmerHighG, shimmerHighB, text)
	}
	if !s.truecolor {
		return s.renderIndexed(runes)
	}
	return s.renderBlend(runes)
}

// renderBlend writes each rune in a truecolor blend weighted by its
// distance to the sweep center.
func (s *Shimmer) renderBlend(runes []rune) string {
	var b strings.Builder

	sigma := shimmerWidth * float64(len(runes)) / 2
	if sigma < 1 {
		sigma = 1
	}

	for i, r := range runes {
		dx := float64(i) - s.center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		cr := int(float64(shimmerBaseR)*(1-w) + float64(shimmerHighR)*w)
		cg := int(float64(shimmerBaseG)*(1-w) + float64(shimmerHighG)*w)
		cb := int(float64(shimmerBaseB)*(1-w) + float64(shimmerHighB)*w)
		fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", cr, cg, cb, r)
	}
	b.WriteString("\033[0m")

	return b.String()
}

// renderIndexed is the 256-color fallback: a hard-edged window around the
// sweep center instead of the Gaussian blend.
func (s *Shimmer) renderIndexed(runes []rune) string {
	width := int(shimmerWidth * float64(len(runes)))
	if width < 1 {
		width = 1
	}
	lo := int(s.center) - width/2
	hi := lo + width

	var b strings.Builder
	for i, r := range runes {
		if i >= lo && i < hi {
			fmt.Fprintf(&b, "\033[38;5;86m%c", r) // aqua highlight
		} else {
			fmt.Fprintf(&b, "\033[38;5;108m%c", r) // muted base
		}
	}
	b.WriteString("\033[0m")

	return b.String()
}
