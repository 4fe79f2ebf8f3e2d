package configs

import (
	"fmt"
	"time"
)

// Ledger configures budget consumption. Impressions always cost one unit;
// ClickCost is the per-click charge. ConsumeTimeout bounds each
// consumption transaction and Workers bounds how many of them a single
// ranking call runs in parallel.
type Ledger struct {
	ClickCost      int64         `env:"CLICK_COST" envDefault:"10"`
	ConsumeTimeout time.Duration `env:"CONSUME_TIMEOUT" envDefault:"500ms"`
	Workers        int           `env:"WORKERS" envDefault:"8"`
}

func (l Ledger) Validate() error {
	if l.ClickCost <= 0 {
		return fmt.Errorf("ledger click cost must be positive")
	}
	if l.Workers <= 0 {
		return fmt.Errorf("ledger workers must be positive")
	}
	return nil
}
