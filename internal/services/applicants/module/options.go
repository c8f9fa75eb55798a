package module

import (
	"time"

	"kycbridge/internal/platform/config"
	"kycbridge/internal/provider/sumsub"
)

// Options controls the sumsub client settings
type Options struct {
	BaseURL string
	Token   string
	Secret  string
	Level   string
	Timeout time.Duration
}

// FromConfig reads SUMSUB_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SUMSUB_")
	return Options{
		BaseURL: sc.MustString("BASE_URL"),
		Token:   sc.MustString("TOKEN"),
		Secret:  sc.MustString("SECRET"),
		Level:   sc.MayString("LEVEL", ""),
		Timeout: sc.MayDuration("TIMEOUT", sumsub.DefaultTimeout),
	}
}
