package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Wave    WaveConfig    `yaml:"wave"`
	Rules   RulesConfig   `yaml:"rules"`
	Sprites SpritesConfig `yaml:"sprites"`
}

type DisplayConfig struct {
	Title        string  `yaml:"title"`
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	Scale        float64 `yaml:"scale"`     // Window scale factor
	Framerate    int     `yaml:"framerate"` // Fixed ticks per second
}

// RulesConfig holds the win/lose bookkeeping
type RulesConfig struct {
	Lives            int `yaml:"lives"`
	CollisionDamage  int `yaml:"collisionDamage"`  // Player health lost when an enemy rams it
	LostDelaySeconds int `yaml:"lostDelaySeconds"` // Banner time before the game exits
}

// LostDelayTicks returns the lost banner duration in ticks
func (c *GameConfig) LostDelayTicks() int {
	return c.Rules.LostDelaySeconds * c.Display.Framerate
}

// EnemyFireOdds returns n for the 1-in-n per-tick enemy fire roll
func (c *GameConfig) EnemyFireOdds() int {
	return c.Enemy.FireEverySeconds * c.Display.Framerate
}
