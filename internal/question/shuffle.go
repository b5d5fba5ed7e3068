package question

import "math/rand"

// Select draws a session's question order: a uniform Fisher-Yates permutation
// of the bank, truncated to count items (the whole bank when count is zero,
// negative, or exceeds the bank size). The rand source is injected so tests
// can pin the permutation; call it only once per session, since the
// result is stored on the session and indexed by the answer cursor.
func Select(bank []Item, count int, rng *rand.Rand) []Item {
	shuffled := append([]Item(nil), bank...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count <= 0 || count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}
