package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything the UI
// should surface before the config is saved.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Browse.DefaultSort = strings.ToLower(strings.TrimSpace(out.Browse.DefaultSort))

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	switch out.Browse.DefaultSort {
	case "", "date", "compatibility":
	default:
		res.addErr("browse.default_sort must be \"date\" or \"compatibility\"")
	}
	if out.Browse.PageLimit <= 0 {
		res.addErr("browse.page_limit must be > 0")
	} else if out.Browse.PageLimit > 5000 {
		res.addWarn("browse.page_limit is very high (%d); listing responses may get large.", out.Browse.PageLimit)
	}

	if out.Cleanup.RetentionMonths < 0 {
		res.addErr("cleanup.retention_months must be >= 0")
	}
	if out.Cleanup.IntervalMinutes <= 0 {
		res.addErr("cleanup.interval_minutes must be > 0")
	} else if out.Cleanup.IntervalMinutes < 5 {
		res.addWarn("cleanup.interval_minutes is very low (%d); the cleanup scan will run constantly.", out.Cleanup.IntervalMinutes)
	}

	if out.Limits.ReqPerSec <= 0 {
		res.addErr("limits.req_per_sec must be > 0")
	}
	if out.Limits.Burst <= 0 {
		res.addErr("limits.burst must be > 0")
	}

	return out, res
}
