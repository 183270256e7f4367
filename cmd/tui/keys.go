package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/kcaldas/devconsole/pkg/console"
)

// KeySpec is a key press as gocui reports it. Exactly one of Key and Ch is
// set.
type KeySpec struct {
	Key gocui.Key
	Ch  rune
	Mod gocui.Modifier
}

// Binding returns the value gocui.SetKeybinding expects for this key.
func (k KeySpec) Binding() interface{} {
	if k.Ch != 0 {
		return k.Ch
	}
	return k.Key
}

func (k KeySpec) String() string {
	var name string
	if k.Ch != 0 {
		name = string(k.Ch)
	} else if n, ok := tcell.KeyNames[tcell.Key(k.Key)]; ok {
		name = n
	} else {
		name = fmt.Sprintf("Key[%d]", k.Key)
	}
	if k.Mod&gocui.ModAlt != 0 {
		return "Alt-" + name
	}
	return name
}

// keysByName maps lower-cased tcell key names ("f1", "enter", "ctrl-q") to
// gocui keys.
var keysByName = func() map[string]gocui.Key {
	m := make(map[string]gocui.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = gocui.Key(k)
	}
	return m
}()

// runeAliases names printable keys that are awkward to write in config files.
var runeAliases = map[string]rune{
	"backquote": '`',
	"tilde":     '~',
	"space":     ' ',
	"slash":     '/',
	"backslash": '\\',
}

// ParseKey turns a console key name into the key press gocui reports.
// Single characters map to runes; other names follow tcell's key names and
// an optional "Alt-" prefix.
func ParseKey(name console.Key) (KeySpec, error) {
	s := string(name.Normalize())
	if s == "" {
		return KeySpec{}, fmt.Errorf("empty key name")
	}

	var mod gocui.Modifier
	if len(s) > len("alt-") && strings.HasPrefix(s, "alt-") {
		mod = gocui.ModAlt
		s = s[len("alt-"):]
	}

	if r, ok := runeAliases[s]; ok {
		return KeySpec{Ch: r, Mod: mod}, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return KeySpec{Ch: r, Mod: mod}, nil
	}
	if k, ok := keysByName[s]; ok {
		return KeySpec{Key: k, Mod: mod}, nil
	}
	return KeySpec{}, fmt.Errorf("unknown key %q", string(name))
}

// specFromEvent normalises what gocui hands to an editor or keybinding so it
// compares equal to the result of ParseKey.
func specFromEvent(key gocui.Key, ch rune, mod gocui.Modifier) KeySpec {
	mod &= gocui.ModAlt
	if ch != 0 {
		return KeySpec{Ch: ch, Mod: mod}
	}
	if key == gocui.KeySpace {
		return KeySpec{Ch: ' ', Mod: mod}
	}
	return KeySpec{Key: key, Mod: mod}
}
