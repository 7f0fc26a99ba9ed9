package vteparser

// SGRKind discriminates the Select Graphic Rendition variants this
// parser recognises. Numeric mapping grounded on the classic SGR code
// table: 0 resets, 1-8 set text attributes, 22, 23, 24 and 28 clear
// them (25, 26 and 27 have no variant and map to SGRUnknown), 30-39
// and 40-49 are standard foreground/background, 90-97/100-107 the
// bright variants, and 38/48 open the extended-colour sub-sequence.
type SGRKind uint8

const (
	SGRReset SGRKind = iota
	SGRBold
	SGRFaint
	SGRItalic
	SGRUnderline
	SGRBlinkSlow
	SGRBlinkRapid
	SGRReverse
	SGRConceal
	SGRReveal
	SGRNotItalic
	SGRNotUnderline
	SGRNormalIntensity
	SGRForegroundDefault
	SGRBackgroundDefault
	SGRForeground   // NamedColor holds which of the 16 standard/bright colors
	SGRBackground   // NamedColor holds which of the 16 standard/bright colors
	SGRForeground8Bit
	SGRForegroundTrueColor
	SGRBackground8Bit
	SGRBackgroundTrueColor
	SGRUnknown
)

// NamedColor is one of the 16 standard ANSI colors.
type NamedColor uint8

const (
	ColorBlack NamedColor = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// SGRAttr is the payload of an EventSgr; only the fields its Kind
// documents are meaningful.
type SGRAttr struct {
	Kind       SGRKind
	Named      NamedColor
	Indexed    uint8
	R, G, B    uint8
	UnknownVal int
}

func sgrSimple(k SGRKind) SGRAttr { return SGRAttr{Kind: k} }

func sgrNamed(k SGRKind, c NamedColor) SGRAttr { return SGRAttr{Kind: k, Named: c} }

func sgrIndexed(k SGRKind, idx uint8) SGRAttr { return SGRAttr{Kind: k, Indexed: idx} }

func sgrTrueColor(k SGRKind, r, g, b uint8) SGRAttr { return SGRAttr{Kind: k, R: r, G: g, B: b} }

func sgrUnknown(code int) SGRAttr { return SGRAttr{Kind: SGRUnknown, UnknownVal: code} }

// sgrFromCode maps a single non-extended SGR numeric code to its
// attribute. 38 and 48 are never passed here; the walker below
// (dispatchSgr) special-cases them before reaching this table.
func sgrFromCode(code uint64) SGRAttr {
	switch code {
	case 0:
		return sgrSimple(SGRReset)
	case 1:
		return sgrSimple(SGRBold)
	case 2:
		return sgrSimple(SGRFaint)
	case 3:
		return sgrSimple(SGRItalic)
	case 4:
		return sgrSimple(SGRUnderline)
	case 5:
		return sgrSimple(SGRBlinkSlow)
	case 6:
		return sgrSimple(SGRBlinkRapid)
	case 7:
		return sgrSimple(SGRReverse)
	case 8:
		return sgrSimple(SGRConceal)
	case 22:
		return sgrSimple(SGRNormalIntensity)
	case 23:
		return sgrSimple(SGRNotItalic)
	case 24:
		return sgrSimple(SGRNotUnderline)
	case 28:
		return sgrSimple(SGRReveal)
	case 30, 31, 32, 33, 34, 35, 36, 37:
		return sgrNamed(SGRForeground, NamedColor(code-30))
	case 39:
		return sgrSimple(SGRForegroundDefault)
	case 40, 41, 42, 43, 44, 45, 46, 47:
		return sgrNamed(SGRBackground, NamedColor(code-40))
	case 49:
		return sgrSimple(SGRBackgroundDefault)
	case 90, 91, 92, 93, 94, 95, 96, 97:
		return sgrNamed(SGRForeground, NamedColor(code-90+8))
	case 100, 101, 102, 103, 104, 105, 106, 107:
		return sgrNamed(SGRBackground, NamedColor(code-100+8))
	default:
		return sgrUnknown(int(code))
	}
}

// dispatchSgr walks the finalised CSI parameters for an `m` final,
// emitting one EventSgr per recognised (or unknown) code, in
// parameter order. Grounded on original_source/src/parser.rs's
// parse_sgr for the extended 38/48 colour handling.
func (p *Parser) dispatchSgr(out *[]Event) {
	params := p.params.params
	if len(params) == 0 {
		p.emit(sgrEvent(sgrSimple(SGRReset)), out)
		return
	}

	for i := 0; i < len(params); {
		code := params[i]
		if code != 38 && code != 48 {
			p.emit(sgrEvent(sgrFromCode(code)), out)
			i++
			continue
		}

		kind8, kindTC, unknownCode := SGRForeground8Bit, SGRForegroundTrueColor, 38
		if code == 48 {
			kind8, kindTC, unknownCode = SGRBackground8Bit, SGRBackgroundTrueColor, 48
		}

		switch {
		case i+2 < len(params) && params[i+1] == 5:
			p.emit(sgrEvent(sgrIndexed(kind8, uint8(params[i+2]))), out)
			i += 3
		case i+4 < len(params) && params[i+1] == 2:
			p.emit(sgrEvent(sgrTrueColor(kindTC, uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))), out)
			i += 5
		case i+1 < len(params) && params[i+1] == 5:
			p.emit(sgrEvent(sgrUnknown(unknownCode)), out)
			i = minInt(i+3, len(params))
		case i+1 < len(params) && params[i+1] == 2:
			p.emit(sgrEvent(sgrUnknown(unknownCode)), out)
			i = minInt(i+5, len(params))
		default:
			p.emit(sgrEvent(sgrUnknown(unknownCode)), out)
			i++
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
