package vteparser

// dispatchEsc runs the ESC dispatch keyed on (intermediates.first(),
// final). Grounded on original_source/src/parser.rs's
// perform_esc_dispatch, with charset designation (`ESC ( c` etc.)
// added per spec §4.4, which original_source never implemented.
func (p *Parser) dispatchEsc(final byte, out *[]Event) {
	var first byte
	hasFirst := len(p.intermediates) > 0
	if hasFirst {
		first = p.intermediates[0]
	}

	switch {
	case !hasFirst && final == '\\':
		// Stray string terminator with no leftover intermediates: a
		// genuine no-op (§4.4's (None, '\\') rule). A non-empty
		// intermediates set here (e.g. ESC ( \) falls through to a warn
		// below instead — still zero events either way, since warnings
		// never emit one, but it surfaces as a log line rather than
		// being silently swallowed.
	case !hasFirst && final == 'D':
		p.emit(Event{Kind: EventNewline}, out)
	case !hasFirst && final == 'E':
		p.emit(Event{Kind: EventNewline}, out)
	case !hasFirst && final == 'M':
		p.emit(cursorEvent(EventCursorUp, 1), out)
	case hasFirst && (first == '(' || first == ')' || first == '*' || first == '+'):
		idx := escCharsetIndex(first)
		cs, ok := parseCharset(final)
		if !ok {
			p.logger.Warnf("unknown charset designation: %c %c", first, final)
			break
		}
		p.charsets[idx] = cs
		p.emit(Event{Kind: EventConfigureCharset, CharsetIndexValue: idx, StandardCharsetValue: cs}, out)
	default:
		p.logger.Warnf("unknown ESC sequence: %v %c", p.intermediates, final)
	}

	p.intermediates = p.intermediates[:0]
	p.params.clear()
}

func escCharsetIndex(intermediate byte) CharsetIndex {
	switch intermediate {
	case '(':
		return G0
	case ')':
		return G1
	case '*':
		return G2
	case '+':
		return G3
	default:
		return G0
	}
}

// parseCharset maps an ESC charset-designation final byte to a
// StandardCharset. Only 'B' (Ascii) and '0' (LineDrawing) are
// recognised; anything else is not designated.
func parseCharset(c byte) (StandardCharset, bool) {
	switch c {
	case 'B':
		return CharsetAscii, true
	case '0':
		return CharsetLineDrawing, true
	default:
		return 0, false
	}
}
