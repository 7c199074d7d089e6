package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kobzarvs/led/internal/logger"
)

// Interpreter runs command lines the built-in verbs do not recognise. It
// reports whether it handled the tokens; effects go through the session.
type Interpreter interface {
	Interpret(tokens []string, s *Session) bool
}

type InterpreterFunc func(tokens []string, s *Session) bool

func (f InterpreterFunc) Interpret(tokens []string, s *Session) bool { return f(tokens, s) }

// RunCommand splits text on whitespace and executes it. Failures become
// diagnostic rows in the active document.
func (s *Session) RunCommand(text string) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return
	}
	logger.Debug("command", "tokens", tokens)
	if s.runBuiltin(tokens) {
		return
	}
	if s.interp != nil && s.interp.Interpret(tokens, s) {
		return
	}
	s.Message("unknown command: " + tokens[0])
}

func (s *Session) runBuiltin(tokens []string) bool {
	verb, args := tokens[0], tokens[1:]
	switch verb {
	case "b", "buffer":
		if len(args) != 1 {
			s.Message("usage: " + verb + " <id>")
			return true
		}
		s.switchBuffer(args[0])
	case "nb":
		s.NextBuffer()
	case "e", "edit":
		if len(args) != 1 {
			s.Message("usage: " + verb + " <path>")
			return true
		}
		if _, err := s.Open(args[0]); err != nil {
			s.Message(err.Error())
		}
	case "w", "write":
		s.save(s.Active())
	default:
		if _, err := strconv.Atoi(verb); err != nil || len(args) > 0 {
			return false
		}
		s.switchBuffer(verb)
	}
	return true
}

func (s *Session) switchBuffer(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		s.Message(fmt.Sprintf("invalid buffer id: %q", arg))
		return
	}
	if !s.SwitchTo(id) {
		s.Message(fmt.Sprintf("no buffer %d", id))
	}
}
