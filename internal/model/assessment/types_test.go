package assessment

import "testing"

func TestProfileForCoversAllSixteenTypes(t *testing.T) {
	for _, ei := range []string{"E", "I"} {
		for _, sn := range []string{"S", "N"} {
			for _, tf := range []string{"T", "F"} {
				for _, jp := range []string{"J", "P"} {
					code := ei + sn + tf + jp
					profile, ok := ProfileFor(code)
					if !ok {
						t.Fatalf("missing profile for %s", code)
					}
					if profile.Code != code {
						t.Fatalf("profile %s reports code %s", code, profile.Code)
					}
					if profile.Name == "" || profile.Summary == "" {
						t.Fatalf("profile %s is incomplete", code)
					}
					if len(profile.Strengths) == 0 || len(profile.GrowthAreas) == 0 {
						t.Fatalf("profile %s missing strengths or growth areas", code)
					}
				}
			}
		}
	}
}

func TestProfileForUnknownCode(t *testing.T) {
	if _, ok := ProfileFor("XXXX"); ok {
		t.Fatal("expected lookup failure for unknown code")
	}
}

func TestSummarize(t *testing.T) {
	session := Session{
		ID:         "SNTI-123456-7890",
		Identifier: "client-1",
		State:      StateTestComplete,
		UserInfo:   &Registration{Name: "Sana"},
		MBTIType:   "ENFJ",
	}
	session.AppendHistory("user", "hi", session.CreatedAt)
	session.AppendHistory("assistant", "hello", session.CreatedAt)

	summary := session.Summarize()
	if summary.ID != session.ID || summary.Name != "Sana" || summary.MBTIType != "ENFJ" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.MessageCount != 2 {
		t.Fatalf("expected 2 messages, got %d", summary.MessageCount)
	}
}
