package httpapi

import (
	"database/sql"
	"sync/atomic"

	"go.uber.org/zap"

	"scholarhunt-engine/internal/config"
	"scholarhunt-engine/internal/events"
	"scholarhunt-engine/internal/rank"
)

// Deps carries everything the handlers need; main() wires it once.
type Deps struct {
	DB  *sql.DB
	Hub *events.Hub
	Log *zap.Logger

	// Scores is the per-session score cache shared between scoring and
	// sorting. Reset whenever the profile or the opportunity set changes.
	Scores *rank.Cache

	// CfgVal stores config.Config; handlers load a snapshot per request.
	CfgVal *atomic.Value

	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (d Deps) cfg() config.Config {
	if v := d.CfgVal.Load(); v != nil {
		return v.(config.Config)
	}
	return config.Default()
}
