package vteparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func push(t *testing.T, seq string) []Event {
	t.Helper()
	p := NewParser(WithLogger(noopLogger{}))
	return p.Push([]byte(seq))
}

func TestPushPrintableCoalesces(t *testing.T) {
	events := push(t, "Hello")
	assert.Equal(t, []Event{dataEvent([]byte("Hello"))}, events)
}

func TestPushGroundQuiescenceAfterSequence(t *testing.T) {
	p := NewParser(WithLogger(noopLogger{}))
	p.Push([]byte("\x1b[31m"))

	assert.Equal(t, StateGround, p.State())
	assert.Empty(t, p.params.params)
	assert.False(t, p.params.hasCur)
	assert.Empty(t, p.intermediates)
	assert.Empty(t, p.dataBuffer)
}

func TestPushExecuteControlCodes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Event
	}{
		{"backspace", "\x08", Event{Kind: EventBackspace}},
		{"delete as backspace-like execute", "\x7f", Event{Kind: EventBackspace}},
		{"line feed is newline", "\n", Event{Kind: EventNewline}},
		{"vertical tab is newline", "\x0b", Event{Kind: EventNewline}},
		{"form feed is newline", "\x0c", Event{Kind: EventNewline}},
		{"carriage return", "\r", Event{Kind: EventCarriageReturn}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []Event{tc.want}, push(t, tc.input))
		})
	}
}

func TestPushEscNewlineAndCursorUp(t *testing.T) {
	assert.Equal(t, []Event{{Kind: EventNewline}}, push(t, "\x1bD"))
	assert.Equal(t, []Event{{Kind: EventNewline}}, push(t, "\x1bE"))
	assert.Equal(t, []Event{cursorEvent(EventCursorUp, 1)}, push(t, "\x1bM"))
}

func TestPushStraySTIsNoop(t *testing.T) {
	// Regression: a stand-alone ESC \ on a fresh parser emits nothing.
	assert.Empty(t, push(t, "\x1b\\"))
}

func TestPushStraySTAfterDcsLeavesNoIntermediateLeak(t *testing.T) {
	// The trailing "ESC \" in a DCS sequence must not spuriously
	// re-dispatch using intermediates left over from the just-closed
	// DCS string.
	events := push(t, "\x1bP1;2$qData\x1b\\")
	assert.Len(t, events, 1)
	assert.Equal(t, EventDeviceControlString, events[0].Kind)
}

func TestPushCharsetDesignationAndShift(t *testing.T) {
	p := NewParser(WithLogger(noopLogger{}))
	events := p.Push([]byte("\x1b(0\x0eq\x0fq"))

	// ESC ( 0 designates G0 as LineDrawing (no shift yet, so 'q' under
	// SO/G1 still uses G1's default Ascii until shifted); then SO
	// activates G1 (still Ascii, 'q' prints literally); then SI
	// reactivates G0 (now LineDrawing, 'q' substitutes to a box glyph).
	assert.Equal(t, EventConfigureCharset, events[0].Kind)
	assert.Equal(t, G0, events[0].CharsetIndexValue)
	assert.Equal(t, CharsetLineDrawing, events[0].StandardCharsetValue)

	assert.Equal(t, EventSetActiveCharset, events[1].Kind)
	assert.Equal(t, G1, events[1].CharsetIndexValue)

	assert.Equal(t, dataEvent([]byte("q")), events[2])

	assert.Equal(t, EventSetActiveCharset, events[3].Kind)
	assert.Equal(t, G0, events[3].CharsetIndexValue)

	assert.Equal(t, dataEvent([]byte("─")), events[4])
}

func TestPushCursorMovement(t *testing.T) {
	assert.Equal(t, []Event{cursorEvent(EventCursorUp, 3)}, push(t, "\x1b[3A"))
	assert.Equal(t, []Event{cursorEvent(EventCursorDown, 1)}, push(t, "\x1b[B"))
	assert.Equal(t, []Event{cursorEvent(EventCursorForward, 5)}, push(t, "\x1b[5C"))
	assert.Equal(t, []Event{cursorEvent(EventCursorBackward, 1)}, push(t, "\x1b[D"))
}

func TestPushSetCursorPos(t *testing.T) {
	x, y := 20, 10
	assert.Equal(t, []Event{setCursorPos(&x, &y)}, push(t, "\x1b[10;20H"))

	x2 := 7
	assert.Equal(t, []Event{setCursorPos(&x2, nil)}, push(t, "\x1b[7G"))
}

func TestPushEraseCommands(t *testing.T) {
	assert.Equal(t, []Event{{Kind: EventClearForwards}}, push(t, "\x1b[0J"))
	assert.Equal(t, []Event{{Kind: EventClearForwards}}, push(t, "\x1b[J"))
	assert.Equal(t, []Event{{Kind: EventClearAll}}, push(t, "\x1b[2J"))
	assert.Equal(t, []Event{{Kind: EventClearLineForwards}}, push(t, "\x1b[K"))
	assert.Equal(t, []Event{{Kind: EventClearLineForwards}}, push(t, "\x1b[2K"))
}

func TestPushEraseLineBackwardsQuirk(t *testing.T) {
	// Documented quirk (spec §9): "K 1" maps to Backspace, preserved
	// verbatim rather than invented into a dedicated event.
	assert.Equal(t, []Event{{Kind: EventBackspace}}, push(t, "\x1b[1K"))
}

func TestPushDeleteAndInsertSpaces(t *testing.T) {
	assert.Equal(t, []Event{cursorEvent(EventDelete, 3)}, push(t, "\x1b[3P"))
	assert.Equal(t, []Event{cursorEvent(EventInsertSpaces, 1)}, push(t, "\x1b[@"))
}

func TestPushRepeatLastChar(t *testing.T) {
	events := push(t, "x\x1b[3b")
	assert.Equal(t, []Event{
		dataEvent([]byte("x")),
		dataEvent([]byte("xxx")),
	}, events)
}

func TestPushRepeatWithNoPrecedingCharIsSuppressed(t *testing.T) {
	assert.Empty(t, push(t, "\x1b[3b"))
}

func TestPushScrollingRegion(t *testing.T) {
	events := push(t, "\x1b[5;20r")
	assert.Len(t, events, 1)
	assert.Equal(t, EventSetScrollingRegion, events[0].Kind)
	assert.Equal(t, 5, events[0].Top)
	assert.Equal(t, 20, *events[0].Bottom)

	events = push(t, "\x1b[5r")
	assert.Equal(t, 5, events[0].Top)
	assert.Nil(t, events[0].Bottom)
}

func TestPushPrivateModes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Event
	}{
		{"show cursor", "\x1b[?25h", Event{Kind: EventSetCursorVisibility, Visible: true}},
		{"hide cursor", "\x1b[?25l", Event{Kind: EventSetCursorVisibility, Visible: false}},
		{"enter alt screen", "\x1b[?1049h", Event{Kind: EventEnterAltScreen}},
		{"exit alt screen", "\x1b[?1049l", Event{Kind: EventExitAltScreen}},
		{"set decckm", "\x1b[?1h", Event{Kind: EventSetMode, ModeValue: ModeDecckm}},
		{"reset decckm", "\x1b[?1l", Event{Kind: EventResetMode, ModeValue: ModeDecckm}},
		{"set bracketed paste", "\x1b[?2004h", Event{Kind: EventSetMode, ModeValue: ModeBracketedPaste}},
		{"set modify other keys", "\x1b[?1037h", Event{Kind: EventSetMode, ModeValue: ModeModifyOtherKeys}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []Event{tc.want}, push(t, tc.input))
		})
	}
}

func TestPushCursorStyle(t *testing.T) {
	cases := []struct {
		input string
		shape CursorShape
		blink bool
	}{
		{"\x1b[0 q", CursorShapeBlock, true},
		{"\x1b[1 q", CursorShapeBlock, true},
		{"\x1b[2 q", CursorShapeBlock, false},
		{"\x1b[3 q", CursorShapeUnderline, true},
		{"\x1b[4 q", CursorShapeUnderline, false},
		{"\x1b[5 q", CursorShapeBeam, true},
		{"\x1b[6 q", CursorShapeBeam, false},
	}

	for _, tc := range cases {
		events := push(t, tc.input)
		assert.Equal(t, []Event{{Kind: EventSetCursorStyle, CursorShapeValue: tc.shape, Blinking: tc.blink}}, events)
	}
}

func TestPushOscSetTitle(t *testing.T) {
	events := push(t, "\x1b]0;Title\x07")
	assert.Equal(t, []Event{oscEvent(0, []byte("Title"))}, events)
}

func TestPushOscWithoutSeparatorFallsBackToCommandZero(t *testing.T) {
	events := push(t, "\x1b]justtext\x07")
	assert.Equal(t, []Event{oscEvent(0, []byte("justtext"))}, events)
}

func TestPushOscHyperlink(t *testing.T) {
	events := push(t, "\x1b]8;id=abc;http://example.com\x07")
	assert.Equal(t, []Event{{Kind: EventSetHyperlink, HyperlinkID: "abc", HyperlinkURI: "http://example.com"}}, events)
}

func TestPushOscHyperlinkClear(t *testing.T) {
	events := push(t, "\x1b]8;;\x07")
	assert.Equal(t, []Event{{Kind: EventClearHyperlink}}, events)
}

func TestPushOscHyperlinkInvalidUTF8URIDropped(t *testing.T) {
	events := push(t, "\x1b]8;id=abc;\x80\x81\x07")
	assert.Empty(t, events)
}

func TestPushDcsHookPutUnhook(t *testing.T) {
	events := push(t, "\x1bP1;2$qData\x1b\\")
	assert.Equal(t, []Event{dcsEvent([]uint64{1, 2}, []byte{'$'}, []byte("qData"))}, events)
}

func TestPushDcsTerminatedByBareEscDoesNotSwallowNextEscDispatch(t *testing.T) {
	// DCS terminated by a bare "ESC M" instead of "ESC \": the DCS's own
	// collected intermediate ('$') must not leak into the following ESC
	// dispatch and suppress it.
	events := push(t, "\x1bP1;2$qData\x1bM")
	assert.Equal(t, []Event{
		dcsEvent([]uint64{1, 2}, []byte{'$'}, []byte("qData")),
		cursorEvent(EventCursorUp, 1),
	}, events)
}

func TestPushOscOverflowDropsSilently(t *testing.T) {
	p := NewParser(WithLogger(noopLogger{}), WithMaxStringLen(4))
	events := p.Push([]byte("\x1b]0;toolong\x07"))
	assert.Empty(t, events)
}

func TestPushSynchronizedUpdateBuffersInteriorEvents(t *testing.T) {
	events := push(t, "\x1b[?2026h\x1b[31mX\x1b[?2026l")
	assert.Equal(t, []Event{
		{Kind: EventBeginSynchronizedUpdate},
		sgrEvent(sgrNamed(SGRForeground, ColorRed)),
		dataEvent([]byte("X")),
		{Kind: EventEndSynchronizedUpdate},
	}, events)
}

func TestPushSynchronizedUpdateUnbalancedCloseStillEmitsEnd(t *testing.T) {
	events := push(t, "\x1b[?2026l")
	assert.Equal(t, []Event{{Kind: EventEndSynchronizedUpdate}}, events)
}

func TestPushChunkInvarianceByteAtATime(t *testing.T) {
	input := []byte("Hello\x1b[1;31;42mWorld\x1b]0;Title\x07\x1bP1;2$qData\x1b\\\x1b[?2026h\x1b[31mX\x1b[?2026l")

	whole := NewParser(WithLogger(noopLogger{})).Push(input)

	chunked := NewParser(WithLogger(noopLogger{}))
	var got []Event
	for _, b := range input {
		got = append(got, chunked.Push([]byte{b})...)
	}

	assert.Equal(t, whole, got)
}

func TestPushChunkInvarianceAtEverySplitPoint(t *testing.T) {
	input := []byte("Hello\x1b[1;31;42mWorld\x1b]0;Title\x07")
	whole := NewParser(WithLogger(noopLogger{})).Push(input)

	for split := 0; split <= len(input); split++ {
		p := NewParser(WithLogger(noopLogger{}))
		var got []Event
		got = append(got, p.Push(input[:split])...)
		got = append(got, p.Push(input[split:])...)
		assert.Equal(t, whole, got, "split at %d", split)
	}
}
