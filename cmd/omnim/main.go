// Command omnim prints values drawn from the omnim generators. It is
// configured through OMNIM_* environment variables.
//
//	omnim raw                 raw generator output
//	omnim floats              floats in [0, 1]
//	omnim ints                ints in [OMNIM_MIN, OMNIM_MAX]
//	omnim randfloats          floats in [OMNIM_FMIN, OMNIM_FMAX]
//	omnim search w1 w2 ...    weighted indexes
//	omnim hist w1 w2 ...      counts of weighted indexes
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"

	"github.com/zeebo/omnim"
	"github.com/zeebo/omnim/internal/mon"
	"github.com/zeebo/omnim/weighted"
)

// Error is the class that contains all the errors from this command.
var Error = errs.Class("omnim")

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	lvl, err := cfg.level()
	if err != nil {
		log.Fatal().Err(err).Msg("parsing log level")
	}
	log = log.Level(lvl)

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: omnim raw|floats|ints|randfloats|search|hist [weights...]")
	}

	if cfg.Seed == 0 {
		cfg.Seed, err = omnim.RandomSeed()
		if err != nil {
			log.Fatal().Err(err).Msg("reading random seed")
		}
		log.Debug().Msg("seeded from the operating system")
	}
	log.Info().
		Str("mode", cfg.Mode.String()).
		Uint64("seed", cfg.Seed).
		Int("count", cfg.Count).
		Msg("starting")

	out := bufio.NewWriter(os.Stdout)
	if err := run(out, cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("failed")
	}
	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Msg("writing output")
	}
}

// run executes the command, writing one value per line to w.
func run(w io.Writer, cfg config, cmd string, args []string) error {
	var values []string

	switch cmd {
	case "search", "hist":
		weights, err := parseWeights(args)
		if err != nil {
			return err
		}
		values = searches(cfg, cmd == "hist", weights)

	case "raw", "floats", "ints", "randfloats":
		src, err := omnim.NewSource(cfg.Mode, cfg.Seed)
		if err != nil {
			return Error.Wrap(err)
		}
		values = draws(omnim.NewSampler(src), cfg, cmd)

	default:
		return Error.New("unknown command: %q", cmd)
	}

	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}

func draws(s *omnim.Sampler, cfg config, cmd string) (values []string) {
	switch cmd {
	case "raw":
		for _, v := range s.Nexts(cfg.Count) {
			values = append(values, strconv.FormatUint(v, 10))
		}
	case "floats":
		for _, v := range s.Float64s(cfg.Count) {
			values = append(values, strconv.FormatFloat(v, 'g', -1, 64))
		}
	case "ints":
		for _, v := range s.Ints(cfg.Count, cfg.Min, cfg.Max) {
			values = append(values, strconv.FormatInt(v, 10))
		}
	case "randfloats":
		for _, v := range s.Floats(cfg.Count, cfg.FMin, cfg.FMax) {
			values = append(values, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return values
}

func searches(cfg config, hist bool, weights []float64) (values []string) {
	ws := weighted.New(cfg.Seed)

	if !hist {
		for i := 0; i < cfg.Count; i++ {
			values = append(values, strconv.Itoa(ws.Search(weights...)))
		}
		return values
	}

	his := mon.NewHistogram(len(weights))
	for i := 0; i < cfg.Count; i++ {
		his.Observe(ws.Search(weights...))
	}
	freqs := his.Frequencies()
	for i, c := range his.Counts() {
		values = append(values, fmt.Sprintf("%d\t%d\t%.4f", i, c, freqs[i]))
	}
	return values
}

func parseWeights(args []string) ([]float64, error) {
	weights := make([]float64, 0, len(args))
	for _, arg := range args {
		w, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, Error.Wrap(err)
		}
		if w < 0 {
			return nil, Error.New("negative weight: %v", w)
		}
		weights = append(weights, w)
	}
	return weights, nil
}
