package module

import "domovoy/internal/platform/config"

// Options holds configuration settings for the reparse module
type Options struct {
	AnnotateURL string
	Workers     int
	PageSize    int
	DryRun      bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_REPARSE_")
	return Options{
		AnnotateURL: rf.MayString("ANNOTATE_URL", ""),
		Workers:     rf.MayInt("WORKERS", 2),
		PageSize:    rf.MayInt("PAGE_SIZE", 500),
		DryRun:      rf.MayBool("DRY_RUN", false),
	}
}
