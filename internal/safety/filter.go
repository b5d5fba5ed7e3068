// Package safety holds the crisis-language override. It is a literal
// substring denylist, not a classifier: precision and recall are both
// limited, and the filter fails open toward showing the safety message.
package safety

import "strings"

// Sentinel is appended to a session's conversation history whenever the
// filter fires, so interventions stay visible in the transcript.
const Sentinel = "[crisis-intervention]"

// denylist covers explicit self-harm phrasing in English and romanized
// Urdu. Each message is checked in isolation; history is not consulted.
var denylist = []string{
	"kill myself",
	"end my life",
	"suicide",
	"suicidal",
	"self harm",
	"self-harm",
	"hurt myself",
	"want to die",
	"no reason to live",
	"better off dead",
	"khudkushi",
	"marna chahta",
	"marna chahti",
}

// IsCrisis reports whether the raw inbound text contains any denylisted
// phrase, case-insensitively. It pre-empts all state-machine logic.
func IsCrisis(text string) bool {
	normalized := strings.ToLower(text)
	for _, phrase := range denylist {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
