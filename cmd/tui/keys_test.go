package tui

import (
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/devconsole/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		key  console.Key
		want KeySpec
	}{
		{name: "backquote rune", key: "`", want: KeySpec{Ch: '`'}},
		{name: "backquote alias", key: "BackQuote", want: KeySpec{Ch: '`'}},
		{name: "letter is lower-cased", key: "Q", want: KeySpec{Ch: 'q'}},
		{name: "function key", key: "F1", want: KeySpec{Key: gocui.KeyF1}},
		{name: "function key any case", key: " f12 ", want: KeySpec{Key: gocui.KeyF12}},
		{name: "enter", key: "Enter", want: KeySpec{Key: gocui.KeyEnter}},
		{name: "ctrl combination", key: "Ctrl-Q", want: KeySpec{Key: gocui.KeyCtrlQ}},
		{name: "space alias", key: "space", want: KeySpec{Ch: ' '}},
		{name: "alt rune", key: "Alt-x", want: KeySpec{Ch: 'x', Mod: gocui.ModAlt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	for _, key := range []console.Key{"", "   ", "F99", "Hyper-K"} {
		t.Run(string(key), func(t *testing.T) {
			_, err := ParseKey(key)
			assert.Error(t, err)
		})
	}
}

func TestSpecFromEventMatchesParseKey(t *testing.T) {
	tests := []struct {
		name string
		key  gocui.Key
		ch   rune
		mod  gocui.Modifier
		spec console.Key
	}{
		{name: "rune", ch: '`', spec: "`"},
		{name: "function key", key: gocui.KeyF1, spec: "F1"},
		{name: "ctrl key", key: gocui.KeyCtrlQ, spec: "Ctrl-Q"},
		{name: "alt rune", ch: 'x', mod: gocui.ModAlt, spec: "Alt-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := ParseKey(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, want, specFromEvent(tt.key, tt.ch, tt.mod))
		})
	}
}

func TestKeySpecBinding(t *testing.T) {
	assert.Equal(t, '`', KeySpec{Ch: '`'}.Binding())
	assert.Equal(t, gocui.KeyF1, KeySpec{Key: gocui.KeyF1}.Binding())
}

func TestKeySpecString(t *testing.T) {
	assert.Equal(t, "`", KeySpec{Ch: '`'}.String())
	assert.Equal(t, "F1", KeySpec{Key: gocui.KeyF1}.String())
	assert.Equal(t, "Alt-x", KeySpec{Ch: 'x', Mod: gocui.ModAlt}.String())
}
