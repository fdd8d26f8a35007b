// Package pinyin models Mandarin syllables and renders them in tone-mark
// (mǎ) or tone-number (ma3) form.
package pinyin

// Initial is the consonant onset of a syllable.
type Initial int

const (
	Empty Initial = iota // vowel-led syllables: a, er, and the y/w spellings
	B
	P
	M
	F
	D
	T
	N
	L
	G
	K
	H
	J
	Q
	X
	Zh
	Ch
	Sh
	R
	Z
	C
	S
	numInitials
)

var initialNames = [numInitials]string{
	"", "b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "zh", "ch", "sh", "r", "z", "c", "s",
}

// String returns the written form of the initial, "" for Empty.
func (i Initial) String() string {
	if i < 0 || i >= numInitials {
		return "?"
	}
	return initialNames[i]
}

// Initials returns every initial, Empty first.
func Initials() []Initial {
	out := make([]Initial, numInitials)
	for i := range out {
		out[i] = Initial(i)
	}
	return out
}

// Group classifies finals by their leading vowel. It drives ValidCombination.
type Group int

const (
	GroupA Group = iota
	GroupI
	GroupU
	GroupV
)

// Final is the rhyme of a syllable.
type Final int

const (
	A Final = iota
	O
	E
	Ai
	Ei
	Ao
	Ou
	An
	En
	Ang
	Eng
	Ong
	Er
	I
	Ia
	Ie
	Iao
	Iu
	Ian
	In
	Iang
	Ing
	Iong
	U
	Ua
	Uo
	Uai
	Ui
	Uan
	Un
	Uang
	Ueng
	V
	Ve
	Van
	Vn
	numFinals
)

type finalInfo struct {
	name     string
	override string
	group    Group
}

var finalInfos = [numFinals]finalInfo{
	A:    {"a", "", GroupA},
	O:    {"o", "", GroupA},
	E:    {"e", "", GroupA},
	Ai:   {"ai", "", GroupA},
	Ei:   {"ei", "", GroupA},
	Ao:   {"ao", "", GroupA},
	Ou:   {"ou", "", GroupA},
	An:   {"an", "", GroupA},
	En:   {"en", "", GroupA},
	Ang:  {"ang", "", GroupA},
	Eng:  {"eng", "", GroupA},
	Ong:  {"ong", "", GroupA},
	Er:   {"er", "", GroupA},
	I:    {"i", "", GroupI},
	Ia:   {"ia", "", GroupI},
	Ie:   {"ie", "", GroupI},
	Iao:  {"iao", "", GroupI},
	Iu:   {"iu", "", GroupI},
	Ian:  {"ian", "", GroupI},
	In:   {"in", "", GroupI},
	Iang: {"iang", "", GroupI},
	Ing:  {"ing", "", GroupI},
	Iong: {"iong", "", GroupI},
	U:    {"u", "", GroupU},
	Ua:   {"ua", "", GroupU},
	Uo:   {"uo", "", GroupU},
	Uai:  {"uai", "", GroupU},
	Ui:   {"ui", "", GroupU},
	Uan:  {"uan", "", GroupU},
	Un:   {"un", "", GroupU},
	Uang: {"uang", "", GroupU},
	Ueng: {"ueng", "", GroupU},
	V:    {"v", "ü", GroupV},
	Ve:   {"ve", "üe", GroupV},
	Van:  {"van", "üan", GroupV},
	Vn:   {"vn", "ün", GroupV},
}

// Name is the ASCII name of the final, with v standing for ü.
func (f Final) Name() string {
	if f < 0 || f >= numFinals {
		return "?"
	}
	return finalInfos[f].name
}

// String implements fmt.Stringer.
func (f Final) String() string { return f.Name() }

// Text is the canonical spelling of the final before orthography rules.
func (f Final) Text() string {
	info := finalInfos[f]
	if info.override != "" {
		return info.override
	}
	return info.name
}

// Override returns the spelling that replaces Name in written text, if any.
func (f Final) Override() (string, bool) {
	o := finalInfos[f].override
	return o, o != ""
}

// Group returns the leading-vowel class of the final.
func (f Final) Group() Group { return finalInfos[f].group }

// VowelCount is the number of vowels in the canonical spelling.
func (f Final) VowelCount() int { return finalVowels[f].count }

// VowelLocation is the rune index of the first vowel in the canonical spelling.
func (f Final) VowelLocation() int { return finalVowels[f].first }

// Finals returns every final in declaration order.
func Finals() []Final {
	out := make([]Final, numFinals)
	for i := range out {
		out[i] = Final(i)
	}
	return out
}

// Tone is the pitch contour of a syllable.
type Tone int

const (
	Tone1 Tone = iota + 1
	Tone2
	Tone3
	Tone4
	ToneNeutral
)

// Number is the digit used in tone-number rendering, 5 for neutral.
func (t Tone) Number() int { return int(t) }

// Valid reports whether t is one of the five tones.
func (t Tone) Valid() bool { return t >= Tone1 && t <= ToneNeutral }

// Tones returns the five tones, neutral last.
func Tones() []Tone {
	return []Tone{Tone1, Tone2, Tone3, Tone4, ToneNeutral}
}

var toneMarks = map[rune][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

func isVowel(r rune) bool {
	_, ok := toneMarks[r]
	return ok
}
