package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/progress"
)

// evaluateAgainst runs the default rules with a real ledger as the
// unlock sink, the same wiring the session controller uses.
func evaluateAgainst(l *progress.Ledger, c Context) []string {
	return NewEngine().Evaluate(c, l.UnlockBadge)
}

func TestStreakMaster_UnlocksAtThree(t *testing.T) {
	l := progress.NewLedger()

	var unlocked []string
	for i := 0; i < 3; i++ {
		d := l.ApplyResult(true)
		unlocked = evaluateAgainst(l, Context{
			Subject:        contentgen.SubjectEnglishFAL,
			Correct:        true,
			AnsweredBefore: d.AnsweredBefore,
			Stats:          l.Snapshot(),
		})
	}

	require.Equal(t, []string{StreakMaster}, unlocked)
	assert.True(t, l.HasBadge(StreakMaster))
}

func TestStreakMaster_IdempotentAtFour(t *testing.T) {
	l := progress.NewLedger()

	for i := 0; i < 4; i++ {
		d := l.ApplyResult(true)
		evaluateAgainst(l, Context{
			Subject:        contentgen.SubjectEnglishFAL,
			Correct:        true,
			AnsweredBefore: d.AnsweredBefore,
			Stats:          l.Snapshot(),
		})
	}

	count := 0
	for _, b := range l.Snapshot().Badges {
		if b == StreakMaster {
			count++
		}
	}
	assert.Equal(t, 1, count, "streak_master must appear exactly once")
}

func TestMathStar_FiresOnFifthAnsweredQuestion(t *testing.T) {
	// questionsAnswered was 4 before this answer (mixed correct and
	// incorrect answers beforehand), subject is Mathematics, answer
	// correct: math_star unlocks.
	l := progress.NewLedger()
	l.ApplyResult(true)
	l.ApplyResult(false)
	l.ApplyResult(true)
	l.ApplyResult(false)

	d := l.ApplyResult(true)
	require.Equal(t, 4, d.AnsweredBefore)

	unlocked := evaluateAgainst(l, Context{
		Subject:        contentgen.SubjectMathematics,
		Correct:        true,
		AnsweredBefore: d.AnsweredBefore,
		Stats:          l.Snapshot(),
	})

	assert.Contains(t, unlocked, MathStar)
}

func TestMathStar_RequiresMathematicsSubject(t *testing.T) {
	l := progress.NewLedger()
	for i := 0; i < 4; i++ {
		l.ApplyResult(true)
	}
	d := l.ApplyResult(true)
	require.Equal(t, 4, d.AnsweredBefore)

	unlocked := evaluateAgainst(l, Context{
		Subject:        contentgen.SubjectLifeSkills,
		Correct:        true,
		AnsweredBefore: d.AnsweredBefore,
		Stats:          l.Snapshot(),
	})

	assert.NotContains(t, unlocked, MathStar)
}

func TestMathStar_NotOnOtherCounts(t *testing.T) {
	for _, before := range []int{0, 1, 2, 3, 5, 8} {
		unlocked := NewEngine().Evaluate(Context{
			Subject:        contentgen.SubjectMathematics,
			Correct:        true,
			AnsweredBefore: before,
		}, func(string) bool { return true })
		assert.NotContains(t, unlocked, MathStar, "AnsweredBefore=%d", before)
	}
}

func TestReservedBadges_HaveNoRules(t *testing.T) {
	for _, r := range DefaultRules() {
		assert.NotEqual(t, ReadingHero, r.ID)
		assert.NotEqual(t, LifeLegend, r.ID)
	}
	// Metadata still exists for display.
	_, ok := Lookup(ReadingHero)
	assert.True(t, ok)
	_, ok = Lookup(LifeLegend)
	assert.True(t, ok)
}
