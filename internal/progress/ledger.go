package progress

// PointsPerCorrect is the fixed score increment for a correct answer.
// Not difficulty-scaled.
const PointsPerCorrect = 10

// Sample is one point in the score history series.
type Sample struct {
	Label string
	Score int
}

// Delta reports what a single ApplyResult call changed.
type Delta struct {
	// Correct echoes the evaluated result.
	Correct bool

	// ScoreDelta is the points awarded (0 for incorrect answers).
	ScoreDelta int

	// AnsweredBefore is the questionsAnswered count before this answer
	// was recorded. Badge rules key off the pre-increment count.
	AnsweredBefore int

	// StreakAfter is the streak value after this answer.
	StreakAfter int
}

// Ledger owns the cumulative session statistics. It is mutated only by
// the session controller; everything else sees read-only snapshots.
// Score and questionsAnswered are monotonically non-decreasing within a
// session; streak resets to 0 on any incorrect answer.
type Ledger struct {
	score             int
	questionsAnswered int
	streak            int
	badges            []string // unlock order preserved for display
	badgeSet          map[string]bool
	history           []Sample
}

// NewLedger creates a ledger with zeroed counters and the seeded demo
// history series used by the rewards chart.
func NewLedger() *Ledger {
	return &Ledger{
		badgeSet: make(map[string]bool),
		history: []Sample{
			{Label: "Mon", Score: 20},
			{Label: "Tue", Score: 45},
			{Label: "Wed", Score: 30},
			{Label: "Thu", Score: 60},
			{Label: "Fri", Score: 10},
		},
	}
}

// ApplyResult records one evaluated answer.
// Correct: score += PointsPerCorrect, streak += 1. Incorrect: streak = 0,
// score unchanged. questionsAnswered always increments by exactly 1.
// History is never touched here; AppendHistory is a separate operation.
func (l *Ledger) ApplyResult(correct bool) Delta {
	d := Delta{
		Correct:        correct,
		AnsweredBefore: l.questionsAnswered,
	}

	l.questionsAnswered++
	if correct {
		l.score += PointsPerCorrect
		l.streak++
		d.ScoreDelta = PointsPerCorrect
	} else {
		l.streak = 0
	}
	d.StreakAfter = l.streak

	return d
}

// UnlockBadge adds a badge to the set. Returns true if it was newly
// unlocked. Badges are additive only; re-unlocking is a no-op.
func (l *Ledger) UnlockBadge(id string) bool {
	if l.badgeSet[id] {
		return false
	}
	l.badgeSet[id] = true
	l.badges = append(l.badges, id)
	return true
}

// HasBadge reports whether a badge has been unlocked.
func (l *Ledger) HasBadge(id string) bool {
	return l.badgeSet[id]
}

// AppendHistory appends the current score to the history series under
// the given label. Kept separate from ApplyResult on purpose: the chart
// samples are recorded explicitly, not per answer.
func (l *Ledger) AppendHistory(label string) {
	l.history = append(l.history, Sample{Label: label, Score: l.score})
}

// Snapshot is a read-only view of the ledger for presentation and
// badge-rule evaluation.
type Snapshot struct {
	Score             int
	QuestionsAnswered int
	Streak            int
	Badges            []string
	History           []Sample
}

// Snapshot returns a copy of the current ledger state.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Score:             l.score,
		QuestionsAnswered: l.questionsAnswered,
		Streak:            l.streak,
		Badges:            append([]string(nil), l.badges...),
		History:           append([]Sample(nil), l.history...),
	}
}
