package badges

import (
	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/progress"
)

// Context is the state a rule is evaluated against: the post-update
// ledger snapshot plus the facts about the answer that produced it.
type Context struct {
	// Subject of the question that was just answered.
	Subject contentgen.Subject

	// Correct is whether the answer was evaluated as correct.
	Correct bool

	// AnsweredBefore is the questionsAnswered count before this answer.
	AnsweredBefore int

	// Stats is the ledger snapshot after the answer was applied.
	Stats progress.Snapshot
}

// Rule pairs a badge ID with its unlock predicate. Rules are independent
// and evaluated uniformly after every ledger update.
type Rule struct {
	ID     string
	Unlock func(Context) bool
}

// DefaultRules returns the implemented unlock predicates.
//
// reading_hero and life_legend have declared metadata but no unlock rule;
// they stay locked until a rule is defined for them.
func DefaultRules() []Rule {
	return []Rule{
		{
			// Fires on the 5th, 10th, 15th... answered question when the
			// current subject is Mathematics and the answer is correct.
			// Counts total questions answered regardless of subject mix,
			// so mixed-subject sessions can mis-time the trigger relative
			// to the "5 Math questions" criteria text.
			ID: MathStar,
			Unlock: func(c Context) bool {
				return c.Correct &&
					c.Subject == contentgen.SubjectMathematics &&
					c.AnsweredBefore%5 == 4
			},
		},
		{
			ID: StreakMaster,
			Unlock: func(c Context) bool {
				return c.Stats.Streak >= 3
			},
		},
	}
}

// Engine evaluates the rule registry against a context.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine. With no arguments it uses DefaultRules.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Evaluate runs every rule and calls unlock for each satisfied one.
// unlock reports whether the badge was newly added (the ledger treats
// re-unlocks as no-ops). Returns the IDs of newly unlocked badges in
// registry order.
func (e *Engine) Evaluate(c Context, unlock func(id string) bool) []string {
	var unlocked []string
	for _, r := range e.rules {
		if r.Unlock(c) && unlock(r.ID) {
			unlocked = append(unlocked, r.ID)
		}
	}
	return unlocked
}
