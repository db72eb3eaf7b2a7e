package command

// Built-in command ids. Grouped roughly by the handler file that
// implements them.
const (
	IDNone ID = iota

	// Movement
	IDMoveLeft
	IDMoveRight
	IDMoveUp
	IDMoveDown
	IDMoveLineStart
	IDMoveLineEnd
	IDMoveDocStart
	IDMoveDocEnd
	IDMoveWordForward
	IDMoveWordBackward
	IDPageUp
	IDPageDown

	// Editing
	IDInsert
	IDNewline
	IDBackspace
	IDDeleteChar
	IDIndentRegion
	IDUnindentRegion
	IDReflowParagraph
	IDUndo
	IDRedo
	IDSetMark
	IDToggleMark
	IDJumpToMark
	IDToggleReadOnly

	// Kill ring
	IDKillToEOL
	IDKillLine
	IDKillRegion
	IDCopyRegion
	IDDeleteWordPrev
	IDDeleteWordNext
	IDYank
	IDFlushKillRing

	// Search / replace
	IDSearchBegin
	IDRegexSearchBegin
	IDSearchNext
	IDSearchPrev
	IDSearchAccept
	IDSearchCancel
	IDReplaceBegin
	IDRegexReplaceBegin

	// Prompt-generic
	IDPromptChar
	IDPromptBackspace
	IDPromptAccept
	IDPromptCancel

	// Buffers
	IDOpenFileBegin
	IDSaveAsBegin
	IDSave
	IDReloadBuffer
	IDBufferSwitchBegin
	IDBufferNext
	IDBufferPrev
	IDCloseBuffer

	// Editor lifecycle
	IDQuit
	IDQuitNow
	IDSaveQuit
	IDRefresh
	IDKPrefix
	IDCommandPromptBegin
	IDGotoLineBegin
	IDChdirBegin
	IDShowCwd
	IDShowHelp
	IDSyntax
	IDSet
	IDMoveCursorTo
	IDUArgBegin
	IDUArgDigit
	IDUArgNegate

	// Language server
	IDGotoDefinition
	IDHover
	IDFindReferences
	IDRenameSymbolBegin
	IDCompleteAtPoint
	IDFormatBuffer
)
