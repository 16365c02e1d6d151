package commandsets

// EditorCmdID covers text editor commands. Only a subset of these is live in
// any given host build; unresolved values never reach the generated output.
//
// cmdgen:set f6f5e2c8-1b3d-4a7e-8f09-2c64d1b0e5aa
type EditorCmdID int

const (
	EditorGoToLine        EditorCmdID = 12
	EditorFormatDocument  EditorCmdID = 30
	EditorFormatSelection EditorCmdID = 31
	EditorCommentBlock    EditorCmdID = 42
	EditorUncommentBlock  EditorCmdID = 43
)
