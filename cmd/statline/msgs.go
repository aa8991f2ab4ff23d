package main

// Short messages (one-liners)
const (
	MsgRootShort    = "Stacked status lines for the bottom of your terminal"
	MsgDemoShort    = "Run fake workers that draw status lines while logs scroll above"
	MsgVersionShort = "Print version information"

	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagWorkers    = "Number of concurrent fake workers"
	MsgFlagDuration   = "How long each worker runs"
	MsgFlagHideDuring = "Hide the status region for this long mid-run (0 disables)"
)

// Long messages
const (
	MsgRootLong = `statline renders short-lived status lines (progress indicators,
spinners) into a fixed region at the bottom of stderr while ordinary log
output keeps scrolling above it. The demo command shows the drawer in
action; the real surface is the pkg/statline library.`

	MsgDemoLong = `Run a handful of fake workers. Each worker registers a status line
with the drawer, ticks its progress to completion, and releases it. Log
lines are emitted throughout so you can watch them scroll above the
pinned region. When stderr is not a terminal the workers still run but
nothing is drawn.`
)
