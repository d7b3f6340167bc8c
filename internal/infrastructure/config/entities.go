package config

type PlayerConfig struct {
	StartX        int `yaml:"startX"`
	StartY        int `yaml:"startY"`
	Health        int `yaml:"health"`    // Starting health
	MaxHealth     int `yaml:"maxHealth"` // Full health bar
	Velocity      int `yaml:"velocity"`  // Pixels per tick
	LaserVelocity int `yaml:"laserVelocity"`

	// BottomMargin keeps room for the health bar under the ship
	BottomMargin int `yaml:"bottomMargin"`
}

type EnemyConfig struct {
	Velocity         int      `yaml:"velocity"`
	LaserVelocity    int      `yaml:"laserVelocity"`
	FireEverySeconds int      `yaml:"fireEverySeconds"` // Mean seconds between shots
	Colors           []string `yaml:"colors"`
}

// SpritesConfig sizes the generated sprites
type SpritesConfig struct {
	Player SpriteConfig `yaml:"player"`
	Enemy  SpriteConfig `yaml:"enemy"`
	Laser  SpriteConfig `yaml:"laser"`
}

type SpriteConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
