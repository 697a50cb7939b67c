package parameter

// Layout & Margins
const (
	// TopMargin holds the score line
	TopMargin = 1

	// BottomMargin holds the status line
	BottomMargin = 1

	// MinScreenWidth and MinScreenHeight below which only a resize hint is drawn
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// Input
const (
	// KeyHoldTicks keeps a movement key pressed after its last repeat, terminals report no key-up
	KeyHoldTicks = 8
)

// Glyphs
const (
	BallChar     = '●'
	PlayerChar   = '█'
	OpponentChar = '█'
	GoalChar     = '▐'
	CenterChar   = '┊'
	MagnetChar   = '·'

	// AudioStr prefixes the volume readout
	AudioStr = "♫ "
	MutedStr = "♫ muted"
)

// Banners
const (
	GoText       = "GO!"
	GoalText     = "GOAL!"
	ConcedeText  = "THEY SCORE"
	ResizeText   = "enlarge terminal"
	ControlsText = "arrows/wasd move  r restart  1-4 opponent  t adaptive  m mute  +/- volume  q quit"

	// GoBannerTicks shows GoText at the start of play
	GoBannerTicks = 45
)
