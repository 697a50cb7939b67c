package render

// Pitch
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbPitch      = RGB{22, 74, 38}    // Dark grass
	RgbPitchLine  = RGB{200, 220, 200} // Chalk
	RgbWall       = RGB{90, 90, 110}   // Slate
	RgbGoalLeft   = RGB{255, 120, 120} // Player defends, light red
	RgbGoalRight  = RGB{140, 190, 255} // Opponent defends, light blue
)

// Bodies
var (
	RgbBall          = RGB{255, 255, 255}
	RgbPlayer        = RGB{100, 150, 255} // Normal blue
	RgbPlayerBoost   = RGB{140, 190, 255} // Bright blue while speed boosted
	RgbOpponent      = RGB{255, 80, 80}   // Normal red
	RgbOpponentBoost = RGB{255, 160, 120} // Orange-red while speed boosted
	RgbMagnet        = RGB{255, 215, 0}   // Gold aura
	RgbCelebrate     = RGB{255, 255, 0}   // Bright yellow
)

// Status lines
var (
	RgbStatusText     = RGB{0, 0, 0}
	RgbScoreBg        = RGB{135, 206, 250} // Light sky blue
	RgbStatusBar      = RGB{255, 255, 255}
	RgbStatusDim      = RGB{150, 150, 150}
	RgbAdaptiveBg     = RGB{144, 238, 144} // Light grass green
	RgbFixedBg        = RGB{255, 165, 0}   // Orange
	RgbBannerText     = RGB{255, 255, 255}
	RgbCountdownBg    = RGB{128, 0, 128} // Dark purple
	RgbGoalBannerBg   = RGB{0, 130, 0}
	RgbConcedeBg      = RGB{180, 50, 50}
	RgbDifficultyLow  = RGB{0, 200, 0}
	RgbDifficultyHigh = RGB{255, 0, 0}
)

// DifficultyColor returns the gauge color for a level in [0, 1]
func DifficultyColor(level float64) RGB {
	return RgbDifficultyLow.Blend(RgbDifficultyHigh, level)
}
