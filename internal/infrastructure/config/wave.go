package config

// WaveConfig controls wave growth and where enemies appear
type WaveConfig struct {
	StartLevel    int `yaml:"startLevel"`
	InitialLength int `yaml:"initialLength"` // Grows by Increment before the first spawn
	Increment     int `yaml:"increment"`

	Spawn SpawnConfig `yaml:"spawn"`
}

// SpawnConfig is the half-open range enemies spawn in:
// x in [MarginLeft, ScreenWidth-MarginRight), y in [MinY, MaxY)
type SpawnConfig struct {
	MarginLeft  int `yaml:"marginLeft"`
	MarginRight int `yaml:"marginRight"`
	MinY        int `yaml:"minY"`
	MaxY        int `yaml:"maxY"`
}
