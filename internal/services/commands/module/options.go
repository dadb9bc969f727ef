package module

import "domovoy/internal/platform/config"

// Options holds configuration settings for the commands module
type Options struct {
	HardLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_COMMANDS_")
	return Options{
		HardLimit: cf.MayInt("HARD_LIMIT", 100),
	}
}
