// Package scoring folds answer sequences into a 4-letter personality code.
// Both functions are pure: identical inputs always yield identical output.
package scoring

import "github.com/sulnaq/snti/backend/internal/question"

// Answer tokens stored on a session. Classic answers are "A"/"B"; balanced
// answers are canonicalized to "YES"/"NO" before they reach this package.
const (
	AnswerA   = "A"
	AnswerB   = "B"
	AnswerYes = "YES"
	AnswerNo  = "NO"
)

type tally map[string]int

// resolve concatenates the winning letter of each axis in fixed order.
// Equal counts resolve to the first letter of the pair.
func (t tally) resolve() string {
	code := ""
	for _, axis := range []question.Axis{question.AxisEI, question.AxisSN, question.AxisTF, question.AxisJP} {
		if t[axis.First()] >= t[axis.Second()] {
			code += axis.First()
		} else {
			code += axis.Second()
		}
	}
	return code
}

// Classic scores two-choice answers positionally against the canonical
// classic bank: answer i is tallied under the axis of the i-th item of the
// static bank, "A" toward the first letter, "B" toward the second.
//
// The positional mapping deliberately ignores any per-session shuffle; see
// DESIGN.md for why this asymmetry with Balanced is preserved.
func Classic(answers []string) string {
	bank := question.NewStaticProvider().Classic()
	t := tally{}
	for i, answer := range answers {
		if i >= len(bank) {
			break
		}
		axis := bank[i].Axis
		if answer == AnswerA {
			t[axis.First()]++
		} else {
			t[axis.Second()]++
		}
	}
	return t.resolve()
}

// Balanced scores yes/no answers in lockstep with the session's own shuffled
// bank: YES tallies the item's yes-letter, NO the complementary letter of
// the item's axis.
func Balanced(answers []string, bank []question.Item) string {
	t := tally{}
	for i, answer := range answers {
		if i >= len(bank) {
			break
		}
		item := bank[i]
		if answer == AnswerYes {
			t[item.YesLetter]++
		} else {
			t[complement(item)]++
		}
	}
	return t.resolve()
}

// complement returns the axis letter not named by the item's yes-letter.
func complement(item question.Item) string {
	if item.Axis.First() == item.YesLetter {
		return item.Axis.Second()
	}
	return item.Axis.First()
}
