// Package speech is the text-to-speech side channel. Utterances are
// fire-and-forget: Speak never blocks and never reports errors, and a
// newer utterance cancels whatever is still playing.
package speech

import (
	"context"
	"os/exec"
	"sync"
)

// Speaker reads text aloud.
type Speaker interface {
	// Speak queues text for speech, cancelling any in-flight utterance.
	Speak(text string)
}

// Null is a Speaker that does nothing. Used when no speech engine is
// available or audio is disabled.
type Null struct{}

func (Null) Speak(string) {}

// engines lists known command-line speech engines in probe order.
// Each entry yields the argv for speaking one utterance.
var engines = []struct {
	name string
	argv func(text string) []string
}{
	{"say", func(text string) []string { return []string{"say", text} }},
	{"espeak-ng", func(text string) []string { return []string{"espeak-ng", text} }},
	{"espeak", func(text string) []string { return []string{"espeak", text} }},
}

// CommandSpeaker shells out to a local speech engine.
type CommandSpeaker struct {
	argv func(text string) []string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSpeaker probes for a local speech engine and returns a
// CommandSpeaker for the first one found, or Null when none exists.
func NewSpeaker() Speaker {
	for _, e := range engines {
		if _, err := exec.LookPath(e.name); err == nil {
			return &CommandSpeaker{argv: e.argv}
		}
	}
	return Null{}
}

// Speak cancels the previous utterance and starts the new one in the
// background. Failures are swallowed; speech is best-effort.
func (s *CommandSpeaker) Speak(text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	argv := s.argv(text)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	go func() {
		defer cancel()
		_ = cmd.Run()
	}()
}
