package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/logger"
)

// Actions a key can be bound to in [keymap.edit].
const (
	actionQuit           = "quit"
	actionSave           = "save"
	actionMoveUp         = "move_up"
	actionMoveDown       = "move_down"
	actionMoveLeft       = "move_left"
	actionMoveRight      = "move_right"
	actionRowStart       = "row_start"
	actionRowEnd         = "row_end"
	actionFileStart      = "file_start"
	actionFileEnd        = "file_end"
	actionCancel         = "cancel"
	actionDeleteForward  = "delete_forward"
	actionDeleteBackward = "delete_backward"
	actionKillToRowEnd   = "kill_to_row_end"
	actionInsertTab      = "insert_tab"
	actionConfirm        = "confirm"
	actionEnterCommand   = "enter_command"
	actionEnterJump      = "enter_jump"
	actionNextBuffer     = "next_buffer"
)

// HandleKey applies one key to the active document. It returns true only
// for the quit action.
func (s *Session) HandleKey(ev *tcell.EventKey) bool {
	doc := s.Active()
	if isPrintable(ev) {
		s.insertRune(doc, ev.Rune())
		return false
	}
	key := keyString(ev)
	action, ok := s.cfg.Keymap.Edit[key]
	if !ok {
		logger.Debug("unbound key", "key", key, "mode", doc.Mode().String())
		return false
	}
	if s.actionHook != nil {
		s.actionHook(action)
	}
	return s.runAction(doc, action)
}

func (s *Session) runAction(doc *document.Document, action string) bool {
	switch action {
	case actionQuit:
		return true
	case actionSave:
		s.save(doc)
	case actionMoveUp:
		doc.MoveRow(-1)
	case actionMoveDown:
		doc.MoveRow(1)
	case actionMoveLeft:
		doc.MoveColumn(-1)
	case actionMoveRight:
		doc.MoveColumn(1)
	case actionRowStart:
		doc.StartOfRow()
	case actionRowEnd:
		doc.EndOfRow()
	case actionFileStart:
		doc.StartOfColumn()
	case actionFileEnd:
		doc.EndOfColumn()
	case actionCancel:
		doc.Cancel()
	case actionDeleteForward:
		doc.DeleteForward()
	case actionDeleteBackward:
		if doc.Mode() == document.ModeCommand {
			doc.DeleteCommandChar()
		} else {
			doc.DeleteBackward()
		}
	case actionKillToRowEnd:
		doc.KillToRowEnd()
	case actionInsertTab:
		if w := s.cfg.Editor.TabWidth; w > 0 {
			doc.InsertSpaces(w)
		} else {
			doc.InsertTab()
		}
	case actionConfirm:
		if doc.Mode() == document.ModeCommand {
			s.RunCommand(doc.CommandText())
			doc.Cancel()
		} else {
			doc.InsertNewline()
		}
	case actionEnterCommand:
		doc.EnterCommand()
	case actionEnterJump:
		doc.EnterJump()
	case actionNextBuffer:
		s.NextBuffer()
	default:
		logger.Warn("unknown action", "action", action)
	}
	return false
}

// insertRune routes printable input by mode. Runes up to 0xff are single
// bytes from the terminal; anything wider is inserted as UTF-8.
func (s *Session) insertRune(doc *document.Document, r rune) {
	var buf []byte
	if r <= 0xff {
		buf = []byte{byte(r)}
	} else {
		buf = utf8.AppendRune(nil, r)
	}
	for _, c := range buf {
		switch doc.Mode() {
		case document.ModeCommand:
			doc.InsertCommandChar(c)
		case document.ModeEdit:
			doc.InsertChar(c)
		}
	}
}

func isPrintable(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0
}

// keyString names a key the way [keymap.edit] spells it.
func keyString(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		var prefix string
		switch {
		case ev.Modifiers()&tcell.ModCtrl != 0:
			prefix = "ctrl+"
		case ev.Modifiers()&tcell.ModAlt != 0:
			prefix = "alt+"
		}
		if r == ' ' {
			return prefix + "space"
		}
		return prefix + strings.ToLower(string(r))
	}
	// Tab, backspace and enter share codes with ctrl+i, ctrl+h and ctrl+m.
	switch ev.Key() {
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyDelete:
		return "del"
	}
	return ""
}

// ctrlKeyName also accepts raw ASCII control codes, which some event
// sources report instead of the KeyCtrl constants.
func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyNUL && key < tcell.KeyESC {
		key = tcell.KeyCtrlSpace + key
	}
	switch {
	case key == tcell.KeyCtrlSpace:
		return "ctrl+space"
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+key-tcell.KeyCtrlA))
	}
	return ""
}
