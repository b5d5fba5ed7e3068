package question

// Axis is one of the four personality dimensions. The first letter of the
// pair is the one that wins ties during scoring.
type Axis string

const (
	AxisEI Axis = "E/I"
	AxisSN Axis = "S/N"
	AxisTF Axis = "T/F"
	AxisJP Axis = "J/P"
)

// First returns the tie-winning letter of the axis pair.
func (a Axis) First() string { return string(a[0]) }

// Second returns the other letter of the axis pair.
func (a Axis) Second() string { return string(a[2]) }

// Item is a single question. Classic items offer two options; balanced items
// are yes/no statements where YesLetter names the axis letter scored on YES
// (the complementary letter is scored on NO).
type Item struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	UrduText    string `json:"altLanguageText"`
	OptionA     string `json:"optionA,omitempty"`
	OptionB     string `json:"optionB,omitempty"`
	UrduOptionA string `json:"altOptionA,omitempty"`
	UrduOptionB string `json:"altOptionB,omitempty"`
	Axis        Axis   `json:"axis"`
	YesLetter   string `json:"yesLetter,omitempty"`
}

// Provider exposes the static banks so the conversation service can be
// tested against synthetic ones.
type Provider interface {
	Classic() []Item
	Balanced() []Item
}

// StaticProvider serves the built-in banks.
type StaticProvider struct{}

// NewStaticProvider returns the default bank provider.
func NewStaticProvider() StaticProvider { return StaticProvider{} }

// Classic returns the two-choice bank in canonical order. Classic scoring is
// positional against this exact order; do not reorder entries.
func (StaticProvider) Classic() []Item { return append([]Item(nil), classicBank...) }

// Balanced returns the yes/no bank used for younger participants.
func (StaticProvider) Balanced() []Item { return append([]Item(nil), balancedBank...) }

var classicBank = []Item{
	{
		ID:          1,
		Text:        "When you're at a social gathering, do you:",
		UrduText:    "Jab aap kisi mehfil mein hote hain, to kya aap:",
		OptionA:     "Feel energized by meeting lots of new people",
		OptionB:     "Prefer deep conversations with a few close friends",
		UrduOptionA: "Bohat se naye logon se mil kar taza dam mehsoos karte hain",
		UrduOptionB: "Chand qareebi doston ke saath gehri guftagu pasand karte hain",
		Axis:        AxisEI,
	},
	{
		ID:          2,
		Text:        "After a long, tiring day, you prefer to:",
		UrduText:    "Ek lambe thaka dene wale din ke baad aap kya pasand karte hain:",
		OptionA:     "Go out with friends to recharge your energy",
		OptionB:     "Spend quiet time alone to restore yourself",
		UrduOptionA: "Doston ke saath bahar ja kar taazgi hasil karna",
		UrduOptionB: "Akele pursukoon waqt guzar kar khud ko bahal karna",
		Axis:        AxisEI,
	},
	{
		ID:          3,
		Text:        "In a team project, you typically:",
		UrduText:    "Team project mein aap aam tor par:",
		OptionA:     "Take the lead and engage with everyone actively",
		OptionB:     "Work independently on your assigned tasks",
		UrduOptionA: "Qiyadat karte hain aur sab ke saath sargarm rehte hain",
		UrduOptionB: "Apne hisse ke kaam par alag se tawajjuh dete hain",
		Axis:        AxisEI,
	},
	{
		ID:          4,
		Text:        "Your ideal weekend includes:",
		UrduText:    "Aap ki pasandeeda chhutti mein shamil hai:",
		OptionA:     "Multiple social events and activities with others",
		OptionB:     "Personal hobbies and peaceful, quiet moments",
		UrduOptionA: "Doosron ke saath mehfilein aur sargarmiyan",
		UrduOptionB: "Apne mashaghil aur pursukoon lamhaat",
		Axis:        AxisEI,
	},
	{
		ID:          5,
		Text:        "When sharing ideas, you prefer to:",
		UrduText:    "Khayalaat bayan karte waqt aap pasand karte hain:",
		OptionA:     "Think out loud and discuss with others",
		OptionB:     "Reflect internally before speaking",
		UrduOptionA: "Bol kar sochna aur doosron se tabadla-e-khayal karna",
		UrduOptionB: "Bolne se pehle dil mein ghor karna",
		Axis:        AxisEI,
	},
	{
		ID:          6,
		Text:        "When solving problems, you trust more in:",
		UrduText:    "Masail hal karte waqt aap ko zyada bharosa hai:",
		OptionA:     "Past experience and proven methods",
		OptionB:     "Gut feelings and innovative approaches",
		UrduOptionA: "Pichhle tajurbe aur azmoodah tareeqon par",
		UrduOptionB: "Andaruni ehsaas aur naye tareeqon par",
		Axis:        AxisSN,
	},
	{
		ID:          7,
		Text:        "You are more interested in:",
		UrduText:    "Aap ko zyada dilchaspi hai:",
		OptionA:     "What is real, practical, and present",
		OptionB:     "What could be possible and future potential",
		UrduOptionA: "Jo haqeeqi, amali aur maujood hai",
		UrduOptionB: "Jo mumkin ho sakta hai aur mustaqbil ke imkanat",
		Axis:        AxisSN,
	},
	{
		ID:          8,
		Text:        "When learning something new, you prefer:",
		UrduText:    "Kuch naya seekhte waqt aap pasand karte hain:",
		OptionA:     "Step-by-step practical instructions",
		OptionB:     "Understanding underlying concepts and theories first",
		UrduOptionA: "Qadam ba qadam amali hidayaat",
		UrduOptionB: "Pehle bunyadi tasawurat aur nazariyat samajhna",
		Axis:        AxisSN,
	},
	{
		ID:          9,
		Text:        "You tend to:",
		UrduText:    "Aap ka rujhan hai:",
		OptionA:     "Focus on details, facts, and specifics",
		OptionB:     "See patterns, connections, and the big picture",
		UrduOptionA: "Tafseelat aur haqaiq par tawajjuh dena",
		UrduOptionB: "Rishte, rujhanat aur mukammal tasweer dekhna",
		Axis:        AxisSN,
	},
	{
		ID:          10,
		Text:        "When reading or watching stories, you enjoy:",
		UrduText:    "Kahaniyan parhte ya dekhte waqt aap lutf lete hain:",
		OptionA:     "Realistic, practical narratives",
		OptionB:     "Imaginative, abstract, and symbolic themes",
		UrduOptionA: "Haqeeqat pasand aur amali kahaniyon ka",
		UrduOptionB: "Takhayyulati aur alamati mauzuaat ka",
		Axis:        AxisSN,
	},
	{
		ID:          11,
		Text:        "When making important decisions, you primarily consider:",
		UrduText:    "Ahem faisle karte waqt aap sab se pehle dekhte hain:",
		OptionA:     "Logic, facts, and objective analysis",
		OptionB:     "Impact on people and emotional harmony",
		UrduOptionA: "Mantiq, haqaiq aur ghair janibdar tajziya",
		UrduOptionB: "Logon par asar aur jazbati hum ahangi",
		Axis:        AxisTF,
	},
	{
		ID:          12,
		Text:        "In conflicts or disagreements, you tend to:",
		UrduText:    "Ikhtilaf ya jhagre mein aap ka rujhan hai:",
		OptionA:     "Focus on finding the correct, logical solution",
		OptionB:     "Focus on maintaining relationships and feelings",
		UrduOptionA: "Durust aur mantiqi hal dhoondhne par tawajjuh",
		UrduOptionB: "Rishton aur jazbaat ko qaim rakhne par tawajjuh",
		Axis:        AxisTF,
	},
	{
		ID:          13,
		Text:        "You value more:",
		UrduText:    "Aap ke nazdeek zyada ahem hai:",
		OptionA:     "Truth and accuracy, even if it might hurt",
		OptionB:     "Tact, kindness, and maintaining harmony",
		UrduOptionA: "Sachai aur durustagi, chahe takleef ho",
		UrduOptionB: "Narmi, meharbani aur hum ahangi",
		Axis:        AxisTF,
	},
	{
		ID:          14,
		Text:        "When giving feedback to others, you are:",
		UrduText:    "Doosron ko raae dete waqt aap hote hain:",
		OptionA:     "Direct, honest, and objective",
		OptionB:     "Gentle, encouraging, and supportive",
		UrduOptionA: "Seedhay, sachay aur ghair janibdar",
		UrduOptionB: "Naram, hosla afza aur madadgar",
		Axis:        AxisTF,
	},
	{
		ID:          15,
		Text:        "You are more proud when people say you are:",
		UrduText:    "Aap ko zyada fakhr hota hai jab log kahein ke aap:",
		OptionA:     "Competent, logical, and fair",
		OptionB:     "Caring, empathetic, and understanding",
		UrduOptionA: "Qabil, mantiqi aur insaf pasand hain",
		UrduOptionB: "Khayal rakhne wale aur hamdard hain",
		Axis:        AxisTF,
	},
	{
		ID:          16,
		Text:        "You prefer to:",
		UrduText:    "Aap pasand karte hain:",
		OptionA:     "Have a clear plan and schedule in advance",
		OptionB:     "Keep options open and decide as you go",
		UrduOptionA: "Pehle se wazeh mansooba aur nazam-ul-auqat banana",
		UrduOptionB: "Raaste khule rakhna aur waqt par faisla karna",
		Axis:        AxisJP,
	},
	{
		ID:          17,
		Text:        "Your work style is more:",
		UrduText:    "Aap ka andaz-e-kaam zyada hai:",
		OptionA:     "Structured, organized, and methodical",
		OptionB:     "Flexible, spontaneous, and adaptable",
		UrduOptionA: "Munazzam aur tarteeb war",
		UrduOptionB: "Lachakdaar aur halaat ke mutabiq",
		Axis:        AxisJP,
	},
	{
		ID:          18,
		Text:        "You feel better when things are:",
		UrduText:    "Aap behtar mehsoos karte hain jab cheezein hon:",
		OptionA:     "Planned, decided, and settled",
		OptionB:     "Open-ended and spontaneous",
		UrduOptionA: "Tay shuda aur mansooba band",
		UrduOptionB: "Khuli aur ghair rasmi",
		Axis:        AxisJP,
	},
	{
		ID:          19,
		Text:        "In your daily life, you prefer to:",
		UrduText:    "Rozmarra zindagi mein aap pasand karte hain:",
		OptionA:     "Follow a routine and stick to deadlines",
		OptionB:     "Go with the flow and adapt as needed",
		UrduOptionA: "Mamool par chalna aur waqt ki pabandi karna",
		UrduOptionB: "Halaat ke saath chalna aur zaroorat par badalna",
		Axis:        AxisJP,
	},
	{
		ID:          20,
		Text:        "When starting a project, you typically:",
		UrduText:    "Koi kaam shuru karte waqt aap aam tor par:",
		OptionA:     "Make a detailed plan before beginning",
		OptionB:     "Jump in and figure it out as you go",
		UrduOptionA: "Shuru karne se pehle tafseeli mansooba banate hain",
		UrduOptionB: "Foran shuru kar ke raste mein seekhte hain",
		Axis:        AxisJP,
	},
}

// balancedBank is the yes/no variant for participants aged 10-17. YesLetter
// alternates sides within each axis so agreement bias does not skew results.
var balancedBank = []Item{
	{ID: 101, Text: "Do you enjoy meeting lots of new people at school events?", UrduText: "Kya aap ko school ki taqreebat mein naye logon se milna acha lagta hai?", Axis: AxisEI, YesLetter: "E"},
	{ID: 102, Text: "Do you feel more relaxed spending time alone than in a crowd?", UrduText: "Kya aap hujoom ke bajaye akele waqt guzar kar zyada sukoon mehsoos karte hain?", Axis: AxisEI, YesLetter: "I"},
	{ID: 103, Text: "Do you usually speak up first in group discussions?", UrduText: "Kya aap group ki guftagu mein aksar sab se pehle bolte hain?", Axis: AxisEI, YesLetter: "E"},
	{ID: 104, Text: "Do you prefer one or two close friends over a big friend circle?", UrduText: "Kya aap baray halqe ke bajaye aik do gehre dost pasand karte hain?", Axis: AxisEI, YesLetter: "I"},
	{ID: 105, Text: "Does talking with others give you new energy?", UrduText: "Kya doosron se baat kar ke aap mein nayi taaqat aati hai?", Axis: AxisEI, YesLetter: "E"},
	{ID: 106, Text: "Do you trust facts you can check more than hunches?", UrduText: "Kya aap andazon se zyada un baton par bharosa karte hain jo parkhi ja sakein?", Axis: AxisSN, YesLetter: "S"},
	{ID: 107, Text: "Do you often daydream about things that could happen one day?", UrduText: "Kya aap aksar un cheezon ke khwab dekhte hain jo kisi din ho sakti hain?", Axis: AxisSN, YesLetter: "N"},
	{ID: 108, Text: "Do you prefer clear step-by-step instructions for homework?", UrduText: "Kya aap homework ke liye wazeh qadam ba qadam hidayaat pasand karte hain?", Axis: AxisSN, YesLetter: "S"},
	{ID: 109, Text: "Do you enjoy imagining new ideas more than practicing known ones?", UrduText: "Kya aap ko jani pehchani mashq se zyada naye khayal sochna pasand hai?", Axis: AxisSN, YesLetter: "N"},
	{ID: 110, Text: "Do you notice small details that others miss?", UrduText: "Kya aap woh choti tafseelat dekh lete hain jo doosron se reh jati hain?", Axis: AxisSN, YesLetter: "S"},
	{ID: 111, Text: "When a friend is wrong, do you tell them directly?", UrduText: "Agar dost ghalat ho to kya aap usay seedha bata dete hain?", Axis: AxisTF, YesLetter: "T"},
	{ID: 112, Text: "Do you often decide based on how others will feel?", UrduText: "Kya aap aksar yeh soch kar faisla karte hain ke doosron ko kaisa lagega?", Axis: AxisTF, YesLetter: "F"},
	{ID: 113, Text: "Is being fair more important to you than being liked?", UrduText: "Kya aap ke liye pasand kiye jane se zyada insaf ahem hai?", Axis: AxisTF, YesLetter: "T"},
	{ID: 114, Text: "Do arguments upset you even when you are not part of them?", UrduText: "Kya jhagre aap ko pareshan karte hain chahe aap un mein shamil na hon?", Axis: AxisTF, YesLetter: "F"},
	{ID: 115, Text: "Do you like solving puzzles more than comforting a sad friend?", UrduText: "Kya aap ko udaas dost ko tasalli dene se zyada puzzle hal karna pasand hai?", Axis: AxisTF, YesLetter: "T"},
	{ID: 116, Text: "Do you finish your homework before playing?", UrduText: "Kya aap khelne se pehle apna homework mukammal karte hain?", Axis: AxisJP, YesLetter: "J"},
	{ID: 117, Text: "Do you enjoy surprises more than plans?", UrduText: "Kya aap ko mansoobon se zyada hairat angez cheezein pasand hain?", Axis: AxisJP, YesLetter: "P"},
	{ID: 118, Text: "Do you keep your room and school bag tidy?", UrduText: "Kya aap apna kamra aur basta saaf suthra rakhte hain?", Axis: AxisJP, YesLetter: "J"},
	{ID: 119, Text: "Do you often leave tasks for the last minute?", UrduText: "Kya aap aksar kaam aakhri waqt ke liye chhor dete hain?", Axis: AxisJP, YesLetter: "P"},
	{ID: 120, Text: "Do you like to know the full schedule before a trip?", UrduText: "Kya aap safar se pehle poora nazam-ul-auqat janna chahte hain?", Axis: AxisJP, YesLetter: "J"},
}
