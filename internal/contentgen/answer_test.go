package contentgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCaseAndWhitespace(t *testing.T) {
	q := &Question{
		Text:          "Which city is the legislative capital of South Africa?",
		Kind:          KindShortAnswer,
		CorrectAnswer: "cape town",
		Hint:          "It sits below Table Mountain.",
	}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact", "cape town", true},
		{"upper case", "CAPE TOWN", true},
		{"mixed case", "Cape Town", true},
		{"surrounding whitespace", "  Cape Town  ", true},
		{"wrong answer", "Durban", false},
		{"empty", "", false},
		{"internal whitespace differs", "capetown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.answer, q), "Evaluate(%q)", tt.answer)
		})
	}
}

func TestEvaluateNoNumericNormalization(t *testing.T) {
	q := &Question{
		Text:          "How many Rands is 1000 cents?",
		Kind:          KindShortAnswer,
		CorrectAnswer: "10",
		Hint:          "Remember that 100 cents make 1 Rand.",
	}

	assert.True(t, Evaluate("10", q))
	// Comparison is textual on purpose; "10.0" and "010" do not match.
	assert.False(t, Evaluate("10.0", q))
	assert.False(t, Evaluate("010", q))
}

func TestEvaluateTrimsCanonicalAnswerToo(t *testing.T) {
	q := &Question{CorrectAnswer: " Yebo "}
	assert.True(t, Evaluate("yebo", q))
}

func TestEvaluateNilQuestion(t *testing.T) {
	assert.False(t, Evaluate("anything", nil))
}
