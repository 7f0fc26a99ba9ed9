package vteparser

// byteClass is one of the ten structural roles a byte can play.
type byteClass uint8

const (
	classExe   byteClass = iota // C0 executable (not ESC), plus 0x7F
	classPrint                  // 0x80..0xFF only; ASCII printables classify by role below
	classParam                  // 0x30..0x3F: digits, ':', ';', '<', '=', '>', '?'
	classInter                  // 0x20..0x2F: intermediate bytes
	classCsi                     // '[' 0x5B
	classEsc                    // ESC 0x1B
	classDisp                   // dispatch-final range, the rest of 0x40..0x7E
	classOsc                    // ']' 0x5D
	classSos                    // 'X' '^' '_' : SOS/PM/APC starters
	classDcs                     // 'P' 0x50
)

const numClasses = 10

// classTable maps every byte value to its structural class. Grounded
// on the classic byte-range partition used by terminal-protocol state
// machines: C0 controls execute, 0x20-0x2F are intermediates, 0x30-0x3F
// are parameter bytes, 0x40-0x7E are dispatch finals with four special
// cases carved out ('[', ']', 'P', and the SOS/PM/APC starters), and
// 0x80-0xFF print like any other byte.
var classTable = buildClassTable()

func buildClassTable() [256]byteClass {
	var t [256]byteClass

	for i := 0x00; i <= 0x1F; i++ {
		t[i] = classExe
	}
	t[0x1B] = classEsc
	// 0x18 (CAN) and 0x1A (SUB) are left classified as Exe rather than
	// split out as sequence-aborting bytes: they execute-and-stay
	// instead of cancelling back to Ground mid-sequence. Simplification,
	// not an oversight — nothing in the recognized wire set relies on
	// CAN/SUB abort semantics.

	for i := 0x20; i <= 0x2F; i++ {
		t[i] = classInter
	}
	for i := 0x30; i <= 0x3F; i++ {
		t[i] = classParam
	}
	for i := 0x40; i <= 0x7E; i++ {
		t[i] = classDisp
	}
	t[0x50] = classDcs // 'P'
	t[0x5B] = classCsi // '['
	t[0x5D] = classOsc // ']'
	t[0x58] = classSos // 'X'
	t[0x5E] = classSos // '^'
	t[0x5F] = classSos // '_'

	t[0x7F] = classExe // DEL: Exe, handled as Backspace at Execute.

	for i := 0x80; i <= 0xFF; i++ {
		t[i] = classPrint
	}

	return t
}

func classify(b byte) byteClass {
	return classTable[b]
}
