package badges

// Badge IDs. Stable identifiers stored in the ledger.
const (
	MathStar     = "math_star"
	ReadingHero  = "reading_hero"
	LifeLegend   = "life_legend"
	StreakMaster = "streak_master"
)

// Badge is the display metadata for an achievement.
type Badge struct {
	ID       string
	Name     string
	Icon     string
	Criteria string
	Color    string
}

// All returns every defined badge in display order. Some badges carry
// metadata only and have no unlock rule yet (see DefaultRules).
func All() []Badge {
	return []Badge{
		{ID: MathStar, Name: "Math Star", Icon: "⭐", Criteria: "Answer 5 Math questions correctly", Color: "#FFD84D"},
		{ID: ReadingHero, Name: "Reading Hero", Icon: "📚", Criteria: "Complete 5 English exercises", Color: "#6ECFF6"},
		{ID: LifeLegend, Name: "Life Skills Legend", Icon: "🦁", Criteria: "Master a Life Skills session", Color: "#76C66E"},
		{ID: StreakMaster, Name: "On Fire!", Icon: "🔥", Criteria: "Get a streak of 3", Color: "#FFA552"},
	}
}

// Lookup returns the badge metadata for an ID, or false if unknown.
func Lookup(id string) (Badge, bool) {
	for _, b := range All() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
