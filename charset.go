package vteparser

// CharsetIndex identifies one of the four designatable character-set
// slots G0-G3.
type CharsetIndex uint8

const (
	G0 CharsetIndex = iota
	G1
	G2
	G3
)

func (c CharsetIndex) String() string {
	switch c {
	case G0:
		return "G0"
	case G1:
		return "G1"
	case G2:
		return "G2"
	case G3:
		return "G3"
	default:
		return "Unknown"
	}
}

// StandardCharset is one of the two charsets this parser understands.
type StandardCharset uint8

const (
	CharsetAscii StandardCharset = iota
	CharsetLineDrawing
)

func (s StandardCharset) String() string {
	switch s {
	case CharsetAscii:
		return "Ascii"
	case CharsetLineDrawing:
		return "LineDrawing"
	default:
		return "Unknown"
	}
}

// lineDrawingTable maps the DEC special graphics range 0x60..0x7E to
// Unicode box-drawing glyphs, indexed by low byte. Built as a const
// array rather than a switch for branch-free translation, per the
// range the DEC special character set substitutes.
var lineDrawingTable = buildLineDrawingTable()

func buildLineDrawingTable() [128]rune {
	var t [128]rune
	for i := range t {
		t[i] = rune(i)
	}

	subs := map[byte]rune{
		'`': '◆',
		'a': '▒',
		'b': '␉',
		'c': '␌',
		'd': '␍',
		'e': '␊',
		'f': '°',
		'g': '±',
		'h': '␤',
		'i': '␋',
		'j': '┘',
		'k': '┐',
		'l': '┌',
		'm': '└',
		'n': '┼',
		'o': '⎺',
		'p': '⎻',
		'q': '─',
		'r': '⎼',
		's': '⎽',
		't': '├',
		'u': '┤',
		'v': '┴',
		'w': '┬',
		'x': '│',
		'y': '≤',
		'z': '≥',
		'{': 'π',
		'|': '≠',
		'}': '£',
		'~': '·',
	}
	for b, r := range subs {
		t[b] = r
	}
	return t
}

// translate applies the charset's substitution to a single input byte
// for use at Print time, returning the rune to emit. Only the
// line-drawing charset substitutes, and only within 0x00..0x7F;
// everything else passes through as its own byte value.
func (s StandardCharset) translate(b byte) rune {
	if s != CharsetLineDrawing || b >= 0x80 {
		return rune(b)
	}
	return lineDrawingTable[b]
}
