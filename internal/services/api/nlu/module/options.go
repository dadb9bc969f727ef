package module

import (
	"time"

	"domovoy/internal/platform/config"
)

// Options holds configuration settings for the nlu module
type Options struct {
	AnnotateURL    string
	IntentURL      string
	SidecarTimeout time.Duration
	Threshold      float64
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	nf := cfg.Prefix("CORE_NLU_")
	return Options{
		AnnotateURL:    nf.MustString("ANNOTATE_URL"),
		IntentURL:      nf.MustString("INTENT_URL"),
		SidecarTimeout: nf.MayDuration("SIDECAR_TIMEOUT", 5*time.Second),
		Threshold:      nf.MayFloat64("THRESHOLD", 0.6),
	}
}
