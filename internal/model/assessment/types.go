package assessment

// TypeProfile describes one of the sixteen personality types. Used for the
// result payload and to ground the AI follow-up prompt.
type TypeProfile struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growthAreas"`
}

var profiles = map[string]TypeProfile{
	"ISTJ": {
		Code:        "ISTJ",
		Name:        "The Inspector",
		Summary:     "Practical, responsible, and detail-oriented. You have a strong sense of duty and take a methodical approach to life, valuing tradition, order, and competence.",
		Strengths:   []string{"Organized", "Reliable", "Detail-oriented", "Practical"},
		GrowthAreas: []string{"Being more open to change", "Expressing emotions", "Considering long-term possibilities"},
	},
	"ISFJ": {
		Code:        "ISFJ",
		Name:        "The Protector",
		Summary:     "Caring, loyal, and traditional. You have a deep sense of responsibility to others and work diligently to fulfill your duties while maintaining harmony.",
		Strengths:   []string{"Supportive", "Reliable", "Patient", "Detail-oriented"},
		GrowthAreas: []string{"Setting boundaries", "Handling criticism", "Expressing needs"},
	},
	"INFJ": {
		Code:        "INFJ",
		Name:        "The Counselor",
		Summary:     "Insightful, creative, and principled. You have a deep understanding of human nature and work towards making positive changes in the world.",
		Strengths:   []string{"Insightful", "Creative", "Dedicated", "Compassionate"},
		GrowthAreas: []string{"Being more assertive", "Sharing feelings", "Accepting imperfection"},
	},
	"INTJ": {
		Code:        "INTJ",
		Name:        "The Architect",
		Summary:     "Strategic, innovative, and logical. You excel at developing systems and strategies, with a focus on continuous improvement and efficiency.",
		Strengths:   []string{"Strategic", "Independent", "Analytical", "Determined"},
		GrowthAreas: []string{"Emotional expression", "Social interaction", "Patience with others"},
	},
	"ISTP": {
		Code:        "ISTP",
		Name:        "The Craftsperson",
		Summary:     "Practical, adaptable, and action-oriented. You excel at understanding how things work and finding practical solutions to problems.",
		Strengths:   []string{"Adaptable", "Practical", "Logical", "Action-oriented"},
		GrowthAreas: []string{"Long-term planning", "Emotional expression", "Following routines"},
	},
	"ISFP": {
		Code:        "ISFP",
		Name:        "The Composer",
		Summary:     "Artistic, sensitive, and caring. You have a strong aesthetic sense and value authenticity in relationships and personal expression.",
		Strengths:   []string{"Creative", "Sensitive", "Caring", "Adaptable"},
		GrowthAreas: []string{"Assertiveness", "Long-term planning", "Handling criticism"},
	},
	"INFP": {
		Code:        "INFP",
		Name:        "The Healer",
		Summary:     "Idealistic, creative, and empathetic. You seek to understand yourself and others deeply, working towards personal growth and meaningful connections.",
		Strengths:   []string{"Empathetic", "Creative", "Idealistic", "Loyal"},
		GrowthAreas: []string{"Practical matters", "Taking criticism", "Following through"},
	},
	"INTP": {
		Code:        "INTP",
		Name:        "The Thinker",
		Summary:     "Analytical, innovative, and objective. You excel at understanding complex systems and developing creative solutions to problems.",
		Strengths:   []string{"Analytical", "Objective", "Creative", "Independent"},
		GrowthAreas: []string{"Emotional awareness", "Following through", "Social interaction"},
	},
	"ESTP": {
		Code:        "ESTP",
		Name:        "The Dynamo",
		Summary:     "Energetic, practical, and spontaneous. You excel at problem-solving in the moment and enjoy taking action to get things done.",
		Strengths:   []string{"Energetic", "Practical", "Adaptable", "Persuasive"},
		GrowthAreas: []string{"Long-term planning", "Following through", "Emotional sensitivity"},
	},
	"ESFP": {
		Code:        "ESFP",
		Name:        "The Performer",
		Summary:     "Enthusiastic, friendly, and spontaneous. You bring joy to others and excel at making the most of every moment.",
		Strengths:   []string{"Enthusiastic", "Friendly", "Adaptable", "Practical"},
		GrowthAreas: []string{"Long-term planning", "Focus", "Dealing with criticism"},
	},
	"ENFP": {
		Code:        "ENFP",
		Name:        "The Champion",
		Summary:     "Enthusiastic, creative, and people-oriented. You see possibilities everywhere and inspire others with your warmth and imagination.",
		Strengths:   []string{"Creative", "Enthusiastic", "Empathetic", "Adaptable"},
		GrowthAreas: []string{"Following through", "Focus", "Practical details"},
	},
	"ENTP": {
		Code:        "ENTP",
		Name:        "The Visionary",
		Summary:     "Innovative, strategic, and adaptable. You excel at seeing possibilities and developing new ideas, enjoying intellectual challenges.",
		Strengths:   []string{"Innovative", "Strategic", "Adaptable", "Analytical"},
		GrowthAreas: []string{"Following through", "Attention to detail", "Emotional sensitivity"},
	},
	"ESTJ": {
		Code:        "ESTJ",
		Name:        "The Supervisor",
		Summary:     "Practical, organized, and decisive. You excel at creating and maintaining order, with a focus on efficiency and results.",
		Strengths:   []string{"Organized", "Practical", "Decisive", "Direct"},
		GrowthAreas: []string{"Flexibility", "Emotional sensitivity", "Considering alternatives"},
	},
	"ESFJ": {
		Code:        "ESFJ",
		Name:        "The Provider",
		Summary:     "Caring, social, and organized. You excel at creating harmony and meeting others' needs, with a strong sense of duty.",
		Strengths:   []string{"Caring", "Organized", "Reliable", "Cooperative"},
		GrowthAreas: []string{"Adapting to change", "Setting boundaries", "Independent decision-making"},
	},
	"ENFJ": {
		Code:        "ENFJ",
		Name:        "The Teacher",
		Summary:     "Charismatic, empathetic, and organized. You excel at inspiring and developing others, with a focus on personal growth.",
		Strengths:   []string{"Empathetic", "Organized", "Inspiring", "Supportive"},
		GrowthAreas: []string{"Setting boundaries", "Self-care", "Handling criticism"},
	},
	"ENTJ": {
		Code:        "ENTJ",
		Name:        "The Commander",
		Summary:     "Strategic, decisive, and confident. You excel at organizing people and resources to achieve long-term goals.",
		Strengths:   []string{"Strategic", "Decisive", "Confident", "Efficient"},
		GrowthAreas: []string{"Emotional sensitivity", "Patience", "Personal relationships"},
	},
}

// ProfileFor looks up the profile for a 4-letter type code.
func ProfileFor(code string) (TypeProfile, bool) {
	p, ok := profiles[code]
	return p, ok
}
