package vteparser

import "math"

// paramAccumulator is the parser's ordered parameter list plus the
// in-progress digit accumulator for the slot currently being read.
// Grounded on the original source's `params: Vec<usize>` +
// `current_param: Option<usize>`; unlike the teacher's govte.Params
// this carries no colon-subparameter grouping, since the Param action
// only feeds it ';' and ASCII digits (':' and the other marker bytes
// are collected as intermediates instead).
type paramAccumulator struct {
	params  []uint64
	current uint64
	hasCur  bool
}

func newParamAccumulator() paramAccumulator {
	return paramAccumulator{params: make([]uint64, 0, 8)}
}

func (p *paramAccumulator) clear() {
	p.params = p.params[:0]
	p.current = 0
	p.hasCur = false
}

// digit saturates at the native uint64 maximum rather than panicking
// or wrapping on overflow.
func (p *paramAccumulator) digit(b byte) {
	d := uint64(b - '0')
	if !p.hasCur {
		p.current = d
		p.hasCur = true
		return
	}
	if p.current > (math.MaxUint64-d)/10 {
		p.current = math.MaxUint64
		return
	}
	p.current = p.current*10 + d
}

// separator pushes the slot being accumulated (0 if none yet read)
// and resets for the next slot.
func (p *paramAccumulator) separator() {
	if p.hasCur {
		p.params = append(p.params, p.current)
	} else {
		p.params = append(p.params, 0)
	}
	p.current = 0
	p.hasCur = false
}

// finalize pushes any in-progress slot at dispatch time, matching
// CsiDispatch/Hook's "finalise the last parameter" step: push
// current if one was being read, else push a trailing 0 slot if any
// separator has already been seen (so "31;m" dispatches [31, 0] and
// ";;m" dispatches [0, 0, 0], not a slot short).
func (p *paramAccumulator) finalize() {
	if p.hasCur {
		p.params = append(p.params, p.current)
		p.current = 0
		p.hasCur = false
	} else if len(p.params) > 0 {
		p.params = append(p.params, 0)
	}
}

// get returns params[i] if present, else def.
func (p *paramAccumulator) get(i int, def uint64) uint64 {
	if i < 0 || i >= len(p.params) {
		return def
	}
	return p.params[i]
}

// getOpt returns params[i] and whether it was present.
func (p *paramAccumulator) getOpt(i int) (uint64, bool) {
	if i < 0 || i >= len(p.params) {
		return 0, false
	}
	return p.params[i], true
}
