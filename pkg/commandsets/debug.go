package commandsets

// DebugCmdID covers the debugger commands. Values are allocated from a
// shared base, mirroring the host's published header.
//
// cmdgen:set 03d5f2aa-7c48-4bd9-9052-d36e0ec18a77
type DebugCmdID int

const debugBase = 0x100

const (
	DebugStart            DebugCmdID = debugBase + 1
	DebugStop             DebugCmdID = debugBase + 2
	DebugRestart          DebugCmdID = debugBase + 3
	DebugStepInto         DebugCmdID = debugBase + 5
	DebugStepOver         DebugCmdID = debugBase + 6
	DebugStepOut          DebugCmdID = debugBase + 7
	DebugToggleBreakpoint DebugCmdID = debugBase + 16
	DebugClearBreakpoints DebugCmdID = debugBase + 17
)
