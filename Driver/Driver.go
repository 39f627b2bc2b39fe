// Package Driver exercises an ordered set with a bounded stream of random inserts and deletes
// and dumps a snapshot of the set every few operations.
package Driver

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/anacrolix/log"
)

// Target is everything the driver is allowed to call on a set.
type Target interface {
	Insert(int32) bool
	Delete(int32) bool
	Print(io.Writer) error
}

type Config struct {
	Ops        uint  // number of operations
	ValueRange int32 // values are sampled from [1, ValueRange]
	PrintFreq  uint  // print after every PrintFreq operations
}

func DefaultConfig() Config {
	return Config{Ops: 1000, ValueRange: 10, PrintFreq: 100}
}

var (
	ErrNoOps      = errors.New("operation count must be positive")
	ErrValueRange = errors.New("value range must be positive")
	ErrPrintFreq  = errors.New("print frequency must be positive")
)

// ArenaCapacity is the most elements a run can hold at once: every insert adds at most one
// element and there are only ValueRange distinct values.
func (c Config) ArenaCapacity() uint {
	if c.ValueRange <= 0 {
		return 0
	}
	return min(uint(c.ValueRange), c.Ops)
}

func (c Config) Validate() error {
	switch {
	case c.Ops == 0:
		return ErrNoOps
	case c.ValueRange <= 0:
		return fmt.Errorf("%w, got %d", ErrValueRange, c.ValueRange)
	case c.PrintFreq == 0:
		return ErrPrintFreq
	}
	return nil
}

// Stats of a run. Inserts and Deletes count attempts, Hits counts the ones that changed the set.
type Stats struct {
	Inserts, Deletes, Hits, Prints uint
}

// Run cfg.Ops random operations against t. Insert and delete are equally likely. The results
// of the mutators are only counted, they never affect what the driver does next.
func Run(cfg Config, t Target, rng *rand.Rand, w io.Writer, logger log.Logger) (st Stats, err error) {
	if err = cfg.Validate(); err != nil {
		return st, fmt.Errorf("invalid driver config: %w", err)
	}
	// op counts completed operations, so it never passes cfg.Ops and can't wrap.
	for op := uint(0); op < cfg.Ops; {
		kind, v := rng.Intn(2), rng.Int31n(cfg.ValueRange)+1
		var hit bool
		if kind == 0 {
			st.Inserts++
			hit = t.Insert(v)
		} else {
			st.Deletes++
			hit = t.Delete(v)
		}
		if hit {
			st.Hits++
		}
		if op++; op%cfg.PrintFreq == 0 {
			logger.Levelf(log.Debug, "snapshot after %d ops", op)
			if err = t.Print(w); err == nil {
				_, err = fmt.Fprintln(w)
			}
			if err != nil {
				return st, fmt.Errorf("printing snapshot after %d ops: %w", op, err)
			}
			st.Prints++
		}
	}
	return st, nil
}
