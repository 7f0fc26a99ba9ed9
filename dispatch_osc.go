package vteparser

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

// dispatchOsc finalises the OSC string buffer into an event. Grounded
// on original_source/src/parser.rs's OscEnd arm, including its
// command=0-on-no-separator fallback, which spec §9 asks to be
// preserved as command=0 with the full buffer as payload (the
// original's extra step of also trying to parse the whole buffer as a
// number is dropped — that is the "almost certainly a bug" half spec
// calls out).
func (p *Parser) dispatchOsc(out *[]Event) {
	defer func() {
		p.oscBuffer = p.oscBuffer[:0]
		p.oscOverflowed = false
	}()

	if p.oscOverflowed || len(p.oscBuffer) == 0 {
		return
	}

	idx := bytes.IndexByte(p.oscBuffer, ';')

	var command int
	var payload []byte
	if idx < 0 {
		command = 0
		payload = p.oscBuffer
	} else {
		n, err := strconv.Atoi(string(p.oscBuffer[:idx]))
		if err != nil {
			n = 0
		}
		command = n
		payload = p.oscBuffer[idx+1:]
	}

	if command == 8 {
		if ev, ok := parseHyperlink(payload); ok {
			p.emit(ev, out)
			return
		}
		return
	}

	payloadCopy := make([]byte, len(payload))
	copy(payloadCopy, payload)
	p.emit(oscEvent(command, payloadCopy), out)
}

// parseHyperlink implements the OSC-8 sub-protocol: `params ; uri`.
// params is a colon-separated list of `key=value` pairs; only `id` is
// extracted. An empty uri clears the active hyperlink. Malformed
// payloads (missing separator) and a uri that fails UTF-8 decoding are
// dropped silently per spec §4.6/§7.3.
func parseHyperlink(payload []byte) (Event, bool) {
	idx := bytes.IndexByte(payload, ';')
	if idx < 0 {
		return Event{}, false
	}
	params := string(payload[:idx])
	uriBytes := payload[idx+1:]

	if len(uriBytes) == 0 {
		return Event{Kind: EventClearHyperlink}, true
	}
	if !utf8.Valid(uriBytes) {
		return Event{}, false
	}
	uri := string(uriBytes)

	var id string
	if params != "" {
		for _, kv := range strings.Split(params, ":") {
			k, v, ok := strings.Cut(kv, "=")
			if ok && k == "id" {
				id = v
			}
		}
	}

	return Event{Kind: EventSetHyperlink, HyperlinkID: id, HyperlinkURI: uri}, true
}
