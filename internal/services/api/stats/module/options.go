package module

import "domovoy/internal/platform/config"

// Options holds configuration settings for the stats module
type Options struct {
	MaxDays int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_STATS_")
	return Options{
		MaxDays: sf.MayInt("MAX_DAYS", 90),
	}
}
