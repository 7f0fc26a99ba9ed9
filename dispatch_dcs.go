package vteparser

// dcsPut appends a byte to the in-progress DCS data string, honoring
// the overflow guard (§5).
func (p *Parser) dcsPut(b byte) {
	if p.dcsOverflowed {
		return
	}
	if len(p.dcsBuffer) >= p.maxStringLen {
		p.dcsOverflowed = true
		return
	}
	p.dcsBuffer = append(p.dcsBuffer, b)
}

// hook finalises the pending CSI-style parameters into the DCS
// snapshot caches and begins collecting the DCS data string. The
// triggering final byte, per §4.3, is the first byte of the payload.
func (p *Parser) hook(final byte, out *[]Event) {
	p.flushData(out)
	p.params.finalize()

	p.dcsParamsCache = append(p.dcsParamsCache[:0], p.params.params...)
	p.dcsIntermediatesCache = append(p.dcsIntermediatesCache[:0], p.intermediates...)

	p.dcsBuffer = append(p.dcsBuffer[:0], final)
	p.dcsOverflowed = false
}

// unhook emits the accumulated DeviceControlString, moving all three
// caches/buffers out. An overflowed string is dropped silently (§7).
//
// The triggering byte always lands the parser in Escape (DcsPassthrough
// has no direct ST transition, only a bare ESC one), so the live
// params/intermediates must be cleared here too: otherwise they still
// hold the DCS's own collected bytes (e.g. Hook's leftover '$') and
// corrupt the very next ESC dispatch's hasFirst check, which would
// silently swallow a `ESC <x>`-terminated DCS's following command.
func (p *Parser) unhook(out *[]Event) {
	p.intermediates = p.intermediates[:0]
	p.params.clear()

	if p.dcsOverflowed {
		p.dcsBuffer = p.dcsBuffer[:0]
		p.dcsOverflowed = false
		return
	}
	params := make([]uint64, len(p.dcsParamsCache))
	copy(params, p.dcsParamsCache)
	intermediates := make([]byte, len(p.dcsIntermediatesCache))
	copy(intermediates, p.dcsIntermediatesCache)
	data := make([]byte, len(p.dcsBuffer))
	copy(data, p.dcsBuffer)

	p.dcsBuffer = p.dcsBuffer[:0]
	p.emit(dcsEvent(params, intermediates, data), out)
}
