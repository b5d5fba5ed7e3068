package scoring

import (
	"testing"

	"github.com/sulnaq/snti/backend/internal/question"
)

func repeat(answer string, n int) []string {
	answers := make([]string, n)
	for i := range answers {
		answers[i] = answer
	}
	return answers
}

func TestClassicAllA(t *testing.T) {
	got := Classic(repeat(AnswerA, 20))
	if got != "ESTJ" {
		t.Fatalf("expected ESTJ, got %s", got)
	}
}

func TestClassicAllB(t *testing.T) {
	got := Classic(repeat(AnswerB, 20))
	if got != "INFP" {
		t.Fatalf("expected INFP, got %s", got)
	}
}

func TestClassicDeterministic(t *testing.T) {
	answers := []string{"A", "B", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B"}
	first := Classic(answers)
	for i := 0; i < 10; i++ {
		if got := Classic(answers); got != first {
			t.Fatalf("run %d diverged: %s vs %s", i, got, first)
		}
	}
}

func TestClassicTieFavorsFirstLetter(t *testing.T) {
	// No answers at all leaves every axis tied, so every axis resolves to
	// its first letter.
	if got := Classic(nil); got != "ESTJ" {
		t.Fatalf("expected ESTJ on empty input, got %s", got)
	}
}

func TestBalancedFollowsYesLetter(t *testing.T) {
	bank := []question.Item{
		{ID: 1, Axis: question.AxisEI, YesLetter: "I"},
		{ID: 2, Axis: question.AxisSN, YesLetter: "N"},
		{ID: 3, Axis: question.AxisTF, YesLetter: "F"},
		{ID: 4, Axis: question.AxisJP, YesLetter: "P"},
	}

	if got := Balanced(repeat(AnswerYes, 4), bank); got != "INFP" {
		t.Fatalf("expected INFP, got %s", got)
	}
	if got := Balanced(repeat(AnswerNo, 4), bank); got != "ESTJ" {
		t.Fatalf("expected ESTJ, got %s", got)
	}
}

func TestBalancedScoresAgainstGivenOrder(t *testing.T) {
	// The same answer sequence must land on different letters when the bank
	// order differs: scoring walks the provided bank, not the canonical one.
	original := []question.Item{
		{ID: 1, Axis: question.AxisEI, YesLetter: "E"},
		{ID: 2, Axis: question.AxisEI, YesLetter: "I"},
	}
	swapped := []question.Item{original[1], original[0]}

	answers := []string{AnswerYes, AnswerNo}

	if got := Balanced(answers, original); got != "ESTJ" {
		t.Fatalf("original order: expected ESTJ, got %s", got)
	}
	if got := Balanced(answers, swapped); got != "ISTJ" {
		t.Fatalf("swapped order: expected ISTJ, got %s", got)
	}
}

func TestBalancedIgnoresExtraAnswers(t *testing.T) {
	bank := []question.Item{{ID: 1, Axis: question.AxisEI, YesLetter: "I"}}
	got := Balanced([]string{AnswerYes, AnswerYes, AnswerYes}, bank)
	if got != "ISTJ" {
		t.Fatalf("expected ISTJ, got %s", got)
	}
}

func TestFullClassicBankAxisLayout(t *testing.T) {
	bank := question.NewStaticProvider().Classic()
	if len(bank) != 20 {
		t.Fatalf("expected 20 classic items, got %d", len(bank))
	}

	// Five questions per axis, grouped in canonical order.
	axes := []question.Axis{question.AxisEI, question.AxisSN, question.AxisTF, question.AxisJP}
	for i, item := range bank {
		want := axes[i/5]
		if item.Axis != want {
			t.Fatalf("item %d: expected axis %s, got %s", i, want, item.Axis)
		}
	}
}
