package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleEvent_Topics(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		topic string
	}{
		{"opened", ConsoleToggledEvent{Open: true}, "console.opened"},
		{"closed", ConsoleToggledEvent{Open: false}, "console.closed"},
		{"cleared", ConsoleClearedEvent{}, "console.cleared"},
		{"executed", CommandExecutedEvent{Command: "clear"}, "command.clear.executed"},
		{"failed", CommandFailedEvent{Command: "clear"}, "command.failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.topic, tt.event.Topic())
		})
	}
}
