package console

import (
	"fmt"
	"strings"
)

const helpHeader = "---- Available Commands ----"

func (s *Session) registerBuiltins() error {
	builtins := []struct {
		name        string
		handler     HandlerFunc
		hotkey      Key
		description string
	}{
		{"help", s.help, KeyNone, "prints this help menu listing the available commands"},
		{"clear", s.clear, s.clearHotkey, "clears the debug console text"},
		{"history", s.listHistory, KeyNone, "lists the lines entered in this session"},
		{"echo", s.echo, KeyNone, "prints its arguments"},
	}

	for _, b := range builtins {
		if _, err := s.registry.Register(b.name, b.handler, WithHotkey(b.hotkey), WithDescription(b.description)); err != nil {
			return fmt.Errorf("register built-in %s: %w", b.name, err)
		}
	}
	return nil
}

func (s *Session) help(args []string) error {
	s.Print(helpHeader)
	for _, entry := range s.registry.List() {
		s.Print(entry.HelpLine())
	}
	return nil
}

func (s *Session) clear(args []string) error {
	s.ClearOutput()
	return nil
}

func (s *Session) listHistory(args []string) error {
	for i, line := range s.history.GetHistory() {
		s.Print(fmt.Sprintf("%4d  %s", i+1, line))
	}
	return nil
}

func (s *Session) echo(args []string) error {
	s.Print(strings.Join(args, " "))
	return nil
}
