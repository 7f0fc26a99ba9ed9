package vteparser

import "unicode/utf8"

// MaxStringLen bounds OSC and DCS string accumulation. The spec does
// not require a limit; this implementation enforces one and documents
// the choice (SPEC_FULL.md §5): on overflow the oversized string is
// dropped silently rather than emitted.
const MaxStringLen = 65536

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger overrides the default slog-backed Logger.
func WithLogger(l Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithMaxStringLen overrides MaxStringLen for OSC/DCS accumulation.
func WithMaxStringLen(n int) Option {
	return func(p *Parser) { p.maxStringLen = n }
}

// Parser is the incremental control-sequence parser. It owns all of
// its buffers and is not safe for concurrent use by multiple
// goroutines; independent Parser values may run on independent
// goroutines freely.
type Parser struct {
	state State

	params        paramAccumulator
	intermediates []byte

	dataBuffer []byte
	oscBuffer  []byte
	dcsBuffer  []byte

	oscOverflowed bool
	dcsOverflowed bool

	dcsParamsCache        []uint64
	dcsIntermediatesCache []byte

	activeCharset CharsetIndex
	charsets      [4]StandardCharset

	precedingChar    rune
	hasPrecedingChar bool

	sync syncState

	logger       Logger
	maxStringLen int
}

// NewParser returns a Parser in its initial Ground state.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		state:         StateGround,
		params:        newParamAccumulator(),
		intermediates: make([]byte, 0, 4),
		dataBuffer:    make([]byte, 0, 256),
		oscBuffer:     make([]byte, 0, 256),
		dcsBuffer:     make([]byte, 0, 256),
		logger:        defaultLogger(),
		maxStringLen:  MaxStringLen,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the parser's current state, primarily for tests.
func (p *Parser) State() State { return p.state }

// Push feeds bytes to the parser and returns the events they produce,
// in emission order. Chunks may split any sequence at any byte
// boundary: state is fully preserved across calls.
func (p *Parser) Push(input []byte) []Event {
	var out []Event

	for _, b := range input {
		cls := classify(b)
		entry := lookup(p.state, cls)
		p.perform(entry.action(), b, &out)
		p.state = entry.next()
	}

	p.flushData(&out)
	return out
}

func (p *Parser) perform(act action, b byte, out *[]Event) {
	switch act {
	case actionNone, actionIgnore:
	case actionPrint:
		p.printByte(b)
	case actionExecute:
		p.execute(b, out)
	case actionClear:
		p.flushData(out)
		p.params.clear()
		p.intermediates = p.intermediates[:0]
	case actionCollect:
		p.intermediates = append(p.intermediates, b)
	case actionParam:
		switch {
		case b == ';':
			p.params.separator()
		case b >= '0' && b <= '9':
			p.params.digit(b)
		default:
			// ':', '<', '=', '>', '?' share the Param byte class but
			// carry no digit value; collect them as intermediates so
			// the private-mode marker ('?') reaches CSI dispatch (§4.5
			// requires intermediates.first() == '?' to be observable).
			p.intermediates = append(p.intermediates, b)
		}
	case actionEscDispatch:
		p.flushData(out)
		p.dispatchEsc(b, out)
	case actionCsiDispatch:
		p.flushData(out)
		p.params.finalize()
		p.dispatchCsi(b, out)
	case actionOscStart:
		p.flushData(out)
		p.oscBuffer = p.oscBuffer[:0]
		p.oscOverflowed = false
	case actionOscPut:
		p.oscPut(b)
	case actionOscEnd:
		p.dispatchOsc(out)
	case actionHook:
		p.hook(b, out)
	case actionPut:
		p.dcsPut(b)
	case actionUnhook:
		p.unhook(out)
	}
}

// printByte translates b through the active charset and appends the
// resulting rune's encoding to dataBuffer; it also records the
// preceding scalar for the CSI `b` repeat command.
func (p *Parser) printByte(b byte) {
	cs := p.charsets[p.activeCharset]
	r := cs.translate(b)
	if r == rune(b) {
		p.dataBuffer = append(p.dataBuffer, b)
	} else {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		p.dataBuffer = append(p.dataBuffer, buf[:n]...)
	}
	p.precedingChar = r
	p.hasPrecedingChar = true
}

func (p *Parser) execute(b byte, out *[]Event) {
	p.flushData(out)
	switch b {
	case 0x08, 0x7F:
		p.emit(Event{Kind: EventBackspace}, out)
	case 0x0A, 0x0B, 0x0C:
		p.emit(Event{Kind: EventNewline}, out)
	case 0x0D:
		p.emit(Event{Kind: EventCarriageReturn}, out)
	case 0x0E: // Shift-Out: activate G1
		p.activeCharset = G1
		p.emit(Event{Kind: EventSetActiveCharset, CharsetIndexValue: G1}, out)
	case 0x0F: // Shift-In: activate G0
		p.activeCharset = G0
		p.emit(Event{Kind: EventSetActiveCharset, CharsetIndexValue: G0}, out)
	case 0x11, 0x12, 0x13, 0x14:
		p.emit(Event{Kind: EventDeviceControl, DeviceControlCode: b}, out)
	default:
		p.logger.Debugf("unhandled C0 execute: %#02x", b)
	}
}

func (p *Parser) flushData(out *[]Event) {
	if len(p.dataBuffer) == 0 {
		return
	}
	data := make([]byte, len(p.dataBuffer))
	copy(data, p.dataBuffer)
	p.dataBuffer = p.dataBuffer[:0]
	p.emit(dataEvent(data), out)
}

func (p *Parser) oscPut(b byte) {
	if p.oscOverflowed {
		return
	}
	if len(p.oscBuffer) >= p.maxStringLen {
		p.oscOverflowed = true
		return
	}
	p.oscBuffer = append(p.oscBuffer, b)
}

