package render

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kickoff/behavior"
	"github.com/lixenwraith/kickoff/match"
	"github.com/lixenwraith/kickoff/parameter"
)

// Action is a discrete control request decoded from a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
	ActionPersonality
	ActionToggleAdaptive
	ActionToggleMute
	ActionVolumeUp
	ActionVolumeDown
)

var actionNames = [...]string{
	ActionNone:           "none",
	ActionQuit:           "quit",
	ActionRestart:        "restart",
	ActionPersonality:    "personality",
	ActionToggleAdaptive: "toggle_adaptive",
	ActionToggleMute:     "toggle_mute",
	ActionVolumeUp:       "volume_up",
	ActionVolumeDown:     "volume_down",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Command is the result of one key press
type Command struct {
	Action      Action
	Personality behavior.PersonalityName // Set for ActionPersonality
}

// personalityKeys orders presets by difficulty on the number row
var personalityKeys = map[rune]behavior.PersonalityName{
	'1': behavior.PersonalityFriendly,
	'2': behavior.PersonalityEasy,
	'3': behavior.PersonalityMedium,
	'4': behavior.PersonalityHard,
}

type direction uint8

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

var opposite = [dirCount]direction{
	dirLeft:  dirRight,
	dirRight: dirLeft,
	dirUp:    dirDown,
	dirDown:  dirUp,
}

// Keyboard turns key presses into held movement intents and actions
// Terminals report repeats but no releases, so a press holds for a fixed number of samples
type Keyboard struct {
	hold [dirCount]int
}

// NewKeyboard creates a keyboard with nothing held
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// HandleEvent decodes a tcell key event
func (k *Keyboard) HandleEvent(ev *tcell.EventKey) Command {
	return k.HandleKey(ev.Key(), ev.Rune(), ev.Modifiers())
}

// HandleKey decodes a key, rune and modifier triple
func (k *Keyboard) HandleKey(key tcell.Key, ch rune, mod tcell.ModMask) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyLeft:
		k.press(dirLeft)
	case tcell.KeyRight:
		k.press(dirRight)
	case tcell.KeyUp:
		k.press(dirUp)
	case tcell.KeyDown:
		k.press(dirDown)
	case tcell.KeyRune:
		if mod&tcell.ModCtrl != 0 && unicode.ToLower(ch) == 'c' {
			return Command{Action: ActionQuit}
		}
		return k.handleRune(unicode.ToLower(ch))
	}
	return Command{}
}

func (k *Keyboard) handleRune(ch rune) Command {
	switch ch {
	case 'a':
		k.press(dirLeft)
	case 'd':
		k.press(dirRight)
	case 'w':
		k.press(dirUp)
	case 's':
		k.press(dirDown)
	case 'q':
		return Command{Action: ActionQuit}
	case 'r':
		return Command{Action: ActionRestart}
	case 't':
		return Command{Action: ActionToggleAdaptive}
	case 'm':
		return Command{Action: ActionToggleMute}
	case '+', '=':
		return Command{Action: ActionVolumeUp}
	case '-', '_':
		return Command{Action: ActionVolumeDown}
	default:
		if p, ok := personalityKeys[ch]; ok {
			return Command{Action: ActionPersonality, Personality: p}
		}
	}
	return Command{}
}

// press holds a direction and cancels its opposite
func (k *Keyboard) press(d direction) {
	k.hold[d] = parameter.KeyHoldTicks
	k.hold[opposite[d]] = 0
}

// Sample returns the held intents for one tick and ages the holds
func (k *Keyboard) Sample() match.Input {
	in := match.Input{
		Left:  k.hold[dirLeft] > 0,
		Right: k.hold[dirRight] > 0,
		Up:    k.hold[dirUp] > 0,
		Down:  k.hold[dirDown] > 0,
	}
	for d := range k.hold {
		if k.hold[d] > 0 {
			k.hold[d]--
		}
	}
	return in
}

// Release drops every held direction
func (k *Keyboard) Release() {
	k.hold = [dirCount]int{}
}
