package vteparser

// action is the side effect the driver performs for a (state, class) edge.
type action uint8

const (
	actionNone action = iota
	actionIgnore
	actionPrint
	actionExecute
	actionClear
	actionCollect
	actionParam
	actionEscDispatch
	actionCsiDispatch
	actionHook
	actionPut
	actionUnhook
	actionOscStart
	actionOscPut
	actionOscEnd
)
