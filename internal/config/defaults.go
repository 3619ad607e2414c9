package config

const (
	defaultCurriculumPath = "curriculum.json"
	defaultOutputDir      = "output"
	defaultAudioDir       = "assets/audio"
	defaultImageDir       = "assets/images"
	defaultCacheDir       = "~/.cache/phonodeck"
	defaultLogDir         = "~/.local/share/phonodeck/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultWindowSize     = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Curriculum: defaultCurriculumPath,
			OutputDir:  defaultOutputDir,
			AudioDir:   defaultAudioDir,
			ImageDir:   defaultImageDir,
			CacheDir:   defaultCacheDir,
			LogDir:     defaultLogDir,
		},
		Deck: Deck{
			WindowSize:   defaultWindowSize,
			IncludeMedia: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
