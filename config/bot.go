package config

// BotStyle selects a scripted grapple routine for the headless client.
type BotStyle int

const (
	BotStyleSwing BotStyle = iota // fire, reel in, swing, release
	BotStyleClimb                 // fire upward and reel in fully
)

// BotStyleConfig holds tuning values for one scripted routine. Durations
// are in client ticks.
type BotStyleConfig struct {
	AimX, AimY   float64
	ReelInTicks  int
	ReelOutTicks int
	HoldTicks    int
	CooldownTick int
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	TickRate int
	Styles   map[BotStyle]BotStyleConfig
}

// Bot holds bot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		TickRate: 60,
		Styles: map[BotStyle]BotStyleConfig{
			BotStyleSwing: {
				AimX:         0.7,
				AimY:         -0.7, // up and to the right
				ReelInTicks:  45,
				ReelOutTicks: 15,
				HoldTicks:    90,
				CooldownTick: 30,
			},
			BotStyleClimb: {
				AimX:         0,
				AimY:         -1,
				ReelInTicks:  120,
				HoldTicks:    60,
				CooldownTick: 60,
			},
		},
	}
}
