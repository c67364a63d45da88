package session

// AccessKey names one accessibility toggle.
type AccessKey string

const (
	AccessLargeText    AccessKey = "largeText"
	AccessHighContrast AccessKey = "highContrast"
	AccessSimpleMode   AccessKey = "simpleMode"
	AccessAudioEnabled AccessKey = "audioEnabled"
)

// Accessibility holds the learner's accessibility preferences.
// Independent booleans with no invariants between them; consulted by
// presentation and by the speech side effect.
type Accessibility struct {
	// LargeText renders question and UI text at a larger size.
	LargeText bool

	// HighContrast switches to a high-contrast palette.
	HighContrast bool

	// SimpleMode reduces animations and visual clutter.
	SimpleMode bool

	// AudioEnabled gates all speech output.
	AudioEnabled bool
}

// DefaultAccessibility matches a fresh session: audio on, visual
// adjustments off.
func DefaultAccessibility() Accessibility {
	return Accessibility{AudioEnabled: true}
}

// toggle flips the named preference. Unknown keys are ignored.
func (a *Accessibility) toggle(key AccessKey) {
	switch key {
	case AccessLargeText:
		a.LargeText = !a.LargeText
	case AccessHighContrast:
		a.HighContrast = !a.HighContrast
	case AccessSimpleMode:
		a.SimpleMode = !a.SimpleMode
	case AccessAudioEnabled:
		a.AudioEnabled = !a.AudioEnabled
	}
}
