package commandsets

// StandardCmdID covers the host's core shell commands.
//
// cmdgen:set 8a5c2e41-06c7-4f0e-9d3b-5b1f6de2a914
type StandardCmdID int

const (
	StandardFileNew     StandardCmdID = 221
	StandardFileOpen    StandardCmdID = 222
	StandardFileClose   StandardCmdID = 223
	StandardFileSave    StandardCmdID = 224
	StandardFileSaveAll StandardCmdID = 226
	StandardEditUndo    StandardCmdID = 304
	StandardEditRedo    StandardCmdID = 305
	StandardEditCut     StandardCmdID = 320
	StandardEditCopy    StandardCmdID = 321
	StandardEditPaste   StandardCmdID = 322
	StandardViewOutput  StandardCmdID = 401
)
