// Runs random inserts and deletes against a sorted linked set and prints the set every few operations.
//
// Example run:
// $ go run ./cmd/listdriver -n 300 -v 5 -p 100
// length: 3
// 1 -> 2 -> 5 -> end
//
// ...
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"

	"github.com/g-m-twostay/go-lists/Driver"
	"github.com/g-m-twostay/go-lists/Sets/ListSet"
)

var flags struct {
	NumOps     uint  `arg:"-n,--num-ops" default:"1000" help:"number of random operations to perform"`
	ValueRange int32 `arg:"-v,--value-range" default:"10" help:"values are drawn from [1, value-range]"`
	PrintFreq  uint  `arg:"-p,--print-freq" default:"100" help:"print the set every print-freq operations"`
	Seed       int64 `help:"random seed, 0 seeds from the clock"`
	Arena      bool  `help:"use the index arena set instead of the pointer chain"`
	Debug      bool
}

var logger = log.Default.WithNames("main")

func main() {
	p := arg.MustParse(&flags)
	cfg := Driver.Config{Ops: flags.NumOps, ValueRange: flags.ValueRange, PrintFreq: flags.PrintFreq}
	if err := cfg.Validate(); err != nil {
		p.Fail(err.Error())
	}
	if flags.Debug {
		logger = logger.FilterLevel(log.Debug)
	} else {
		logger = logger.FilterLevel(log.Info)
	}
	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var target interface {
		Driver.Target
		Size() uint64
	}
	if flags.Arena {
		target = ListSet.NewArr[uint32](cfg.ArenaCapacity())
	} else {
		target = ListSet.New()
	}
	logger.Levelf(log.Info, "running %d ops over [1, %d] with seed %d", cfg.Ops, cfg.ValueRange, seed)
	st, err := Driver.Run(cfg, target, rand.New(rand.NewSource(seed)), os.Stdout, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Levelf(log.Info, "%d inserts, %d deletes, %d changed the set, %d snapshots, final size %d",
		st.Inserts, st.Deletes, st.Hits, st.Prints, target.Size())
}
