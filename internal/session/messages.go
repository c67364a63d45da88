package session

import "math/rand/v2"

// Mood is the mascot's emotional state, used by presentation.
type Mood int

const (
	MoodHappy Mood = iota
	MoodNeutral
	MoodThinking
	MoodCelebrating
)

// Mascot message sets. La-Mila speaks one of these depending on what
// just happened.
var (
	welcomeMessages = []string{
		"Sawubona, I'm La-Mila your friend. Ready to learn?",
	}
	correctMessages = []string{
		"Yebo! You got it!",
		"High five! That was awesome.",
		"You're shining like a star!",
		"Spot on!",
	}
	incorrectMessages = []string{
		"Good effort! Try again — you're getting closer.",
		"Almost! Let's think about it together.",
		"No worries, mistakes help us learn!",
		"Try one more time, friend.",
	}
	loadingMessages = []string{
		"Fetching some brain food...",
		"Thinking up a challenge...",
		"Just a sec...",
	}
)

// WelcomeMessage is the mascot's greeting on a fresh session.
func WelcomeMessage() string {
	return welcomeMessages[0]
}

// picker selects uniformly from a finite message set. The source is
// injectable so tests get deterministic picks.
type picker struct {
	rng *rand.Rand
}

func newPicker(src rand.Source) *picker {
	return &picker{rng: rand.New(src)}
}

func (p *picker) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[p.rng.IntN(len(list))]
}
