package vteparser

// tableEntry packs (next state, action) into one byte: the high
// nibble is the state, the low nibble the action. This is an
// optimisation over a struct-valued table, not a requirement; unlike
// the Rust source this is unpacked via masking, never reinterpreted.
type tableEntry byte

func pack(s State, a action) tableEntry {
	return tableEntry(uint8(s)<<4 | uint8(a))
}

func (e tableEntry) next() State {
	return State(e >> 4)
}

func (e tableEntry) action() action {
	return action(e & 0x0F)
}

// transitionTable is indexed [state][class]. Grounded on the dense
// (state, class) -> (next, action) table terminal parsers conventionally
// build; edges follow the key transitions each state documents below.
var transitionTable = buildTransitionTable()

func buildTransitionTable() [numStates][numClasses]tableEntry {
	var t [numStates][numClasses]tableEntry

	row := func(s State, exe, print, param, inter, csi, esc, disp, osc, sos, dcs tableEntry) {
		t[s] = [numClasses]tableEntry{exe, print, param, inter, csi, esc, disp, osc, sos, dcs}
	}

	row(StateGround,
		pack(StateGround, actionExecute),
		pack(StateGround, actionPrint),
		pack(StateGround, actionPrint),
		pack(StateGround, actionPrint),
		pack(StateGround, actionPrint),
		pack(StateEscape, actionClear),
		pack(StateGround, actionPrint),
		pack(StateGround, actionPrint),
		pack(StateGround, actionPrint),
		pack(StateGround, actionPrint),
	)

	row(StateEscape,
		pack(StateEscape, actionExecute),
		pack(StateGround, actionEscDispatch),
		pack(StateGround, actionEscDispatch),
		pack(StateEscapeIntermediate, actionCollect),
		pack(StateCsiEntry, actionClear),
		pack(StateEscape, actionClear),
		pack(StateGround, actionEscDispatch),
		pack(StateOscString, actionOscStart),
		pack(StateSosPmApcString, actionNone),
		pack(StateDcsEntry, actionClear),
	)

	row(StateEscapeIntermediate,
		pack(StateEscapeIntermediate, actionExecute),
		pack(StateGround, actionEscDispatch),
		pack(StateGround, actionEscDispatch),
		pack(StateEscapeIntermediate, actionCollect),
		pack(StateGround, actionEscDispatch),
		pack(StateEscape, actionClear),
		pack(StateGround, actionEscDispatch),
		pack(StateGround, actionIgnore),
		pack(StateGround, actionIgnore),
		pack(StateGround, actionEscDispatch),
	)

	row(StateCsiEntry,
		pack(StateCsiEntry, actionExecute),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiParam, actionParam),
		pack(StateCsiIntermediate, actionCollect),
		pack(StateCsiIgnore, actionNone),
		pack(StateEscape, actionClear),
		pack(StateGround, actionCsiDispatch),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiIgnore, actionNone),
		pack(StateGround, actionCsiDispatch),
	)

	row(StateCsiParam,
		pack(StateCsiParam, actionExecute),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiParam, actionParam),
		pack(StateCsiIntermediate, actionCollect),
		pack(StateCsiIgnore, actionNone),
		pack(StateEscape, actionClear),
		pack(StateGround, actionCsiDispatch),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiIgnore, actionNone),
		pack(StateGround, actionCsiDispatch),
	)

	// CsiIntermediate + Param class: invalid re-ordering, falls to
	// CsiIgnore; the action is irrelevant once there, so None.
	row(StateCsiIntermediate,
		pack(StateCsiIntermediate, actionExecute),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiIntermediate, actionCollect),
		pack(StateCsiIgnore, actionNone),
		pack(StateEscape, actionClear),
		pack(StateGround, actionCsiDispatch),
		pack(StateCsiIgnore, actionNone),
		pack(StateCsiIgnore, actionNone),
		pack(StateGround, actionCsiDispatch),
	)

	// CsiIgnore discards a malformed CSI sequence; its Ground exit uses
	// Clear rather than Ignore so params/intermediates accumulated
	// before the malformed byte don't leak into Ground (Ground's
	// invariant requires both empty).
	row(StateCsiIgnore,
		pack(StateCsiIgnore, actionExecute),
		pack(StateCsiIgnore, actionIgnore),
		pack(StateCsiIgnore, actionIgnore),
		pack(StateCsiIgnore, actionIgnore),
		pack(StateCsiIgnore, actionIgnore),
		pack(StateEscape, actionClear),
		pack(StateGround, actionClear),
		pack(StateCsiIgnore, actionIgnore),
		pack(StateCsiIgnore, actionIgnore),
		pack(StateGround, actionClear),
	)

	row(StateDcsEntry,
		pack(StateDcsEntry, actionExecute),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsParam, actionParam),
		pack(StateDcsIntermediate, actionCollect),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateEscape, actionClear),
		pack(StateDcsPassthrough, actionHook),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsPassthrough, actionHook),
	)

	row(StateDcsParam,
		pack(StateDcsParam, actionExecute),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsParam, actionParam),
		pack(StateDcsIntermediate, actionCollect),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateEscape, actionClear),
		pack(StateDcsPassthrough, actionHook),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsPassthrough, actionHook),
	)

	row(StateDcsIntermediate,
		pack(StateDcsIntermediate, actionExecute),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionNone),
		pack(StateDcsIntermediate, actionCollect),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateEscape, actionClear),
		pack(StateDcsPassthrough, actionHook),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsPassthrough, actionHook),
	)

	// DcsPassthrough: every byte is Put. ESC triggers Unhook (emit)
	// and transitions to Escape, rather than Clear.
	row(StateDcsPassthrough,
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
		pack(StateEscape, actionUnhook),
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
		pack(StateDcsPassthrough, actionPut),
	)

	// DcsIgnore discards a malformed or overflowed DCS sequence. Its
	// Ground exit uses Clear rather than Unhook: a sequence that
	// detoured into DcsIgnore never reached Hook, so the dcs caches
	// hold stale data from a prior, unrelated DCS and must not be
	// emitted.
	row(StateDcsIgnore,
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateEscape, actionClear),
		pack(StateGround, actionClear),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateDcsIgnore, actionIgnore),
		pack(StateGround, actionClear),
	)

	// OscString: BEL ends the string in place; ESC ends it and lets
	// the following byte be reprocessed as the start of a new escape
	// (so "ESC \" works as a string terminator).
	row(StateOscString,
		pack(StateGround, actionOscEnd),
		pack(StateOscString, actionOscPut),
		pack(StateOscString, actionOscPut),
		pack(StateOscString, actionOscPut),
		pack(StateOscString, actionOscPut),
		pack(StateEscape, actionOscEnd),
		pack(StateOscString, actionOscPut),
		pack(StateOscString, actionOscPut),
		pack(StateOscString, actionOscPut),
		pack(StateOscString, actionOscPut),
	)

	row(StateSosPmApcString,
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateEscape, actionClear),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
		pack(StateSosPmApcString, actionIgnore),
	)

	return t
}

func lookup(s State, c byteClass) tableEntry {
	return transitionTable[s][c]
}
