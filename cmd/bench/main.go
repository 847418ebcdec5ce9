package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"mnkgame/internal/engine"
)

type benchConfig struct {
	width     int
	height    int
	winLength int
}

func parseConfigs(raw string) ([]benchConfig, error) {
	var configs []benchConfig
	for _, spec := range strings.Split(raw, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.Split(spec, "x")
		if len(parts) != 3 {
			return nil, fmt.Errorf("config %q must look like 3x3x3", spec)
		}
		dims := make([]int, 3)
		for i, part := range parts {
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("config %q has an invalid dimension %q", spec, part)
			}
			dims[i] = n
		}
		configs = append(configs, benchConfig{width: dims[0], height: dims[1], winLength: dims[2]})
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs given")
	}
	return configs, nil
}

func main() {
	configsFlag := flag.String("configs", "3x3x3,4x3x3,4x4x3", "comma-separated widthxheightxwin configs")
	runs := flag.Int("runs", 3, "solves per config, best time is reported")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	log := logger.Sugar()
	defer log.Sync()

	configs, err := parseConfigs(*configsFlag)
	if err != nil {
		log.Errorw("bad -configs flag", "error", err)
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "board\twin\tvalue\toptimal\tstates\tnodes\tbest time")
	for _, cfg := range configs {
		rules := engine.NewRules(cfg.width, cfg.height, cfg.winLength)
		solver := engine.NewSolver(rules)
		state := rules.NewState()

		var best engine.Decision
		bestElapsed := time.Duration(0)
		for run := 0; run < *runs; run++ {
			decision := solver.Solve(state, engine.PlayerCross)
			if run == 0 || decision.Elapsed < bestElapsed {
				best = decision
				bestElapsed = decision.Elapsed
			}
		}
		log.Infow("solved opening position",
			"rules", rules.String(),
			"value", best.Value,
			"states_explored", best.StatesExplored,
			"elapsed", bestElapsed,
		)
		fmt.Fprintf(w, "%dx%d\t%d\t%+d\t%s\t%d\t%d\t%s\n",
			cfg.width, cfg.height, cfg.winLength,
			best.Value,
			engine.FormatMoveList(best.Optimal),
			best.StatesExplored,
			best.Nodes,
			bestElapsed.Round(time.Microsecond),
		)
	}
	if err := w.Flush(); err != nil {
		log.Errorw("flush table", "error", err)
	}
}
