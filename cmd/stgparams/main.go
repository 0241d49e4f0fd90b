// Command stgparams prints the pattern strategy's parameter set for a
// timeframe as JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/evdnx/stgpattern/config"
	"github.com/evdnx/stgpattern/logger"
	"github.com/evdnx/stgpattern/params"
	"github.com/evdnx/stgpattern/timeframe"
	flag "github.com/spf13/pflag"
)

type output struct {
	Timeframe string           `json:"timeframe"`
	Params    config.StgParams `json:"params"`
}

func main() {
	tfFlag := flag.StringP("timeframe", "t", "M5", "timeframe label (M5) or interval (5m)")
	cfgPath := flag.StringP("config", "c", "", "optional .env file with PATTERN_* overrides")
	all := flag.BoolP("all", "a", false, "print every bound timeframe")
	flag.Parse()

	log, err := logger.NewZapLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, log, *tfFlag, *cfgPath, *all); err != nil {
		log.Error("stgparams_failed", logger.Err(err))
		os.Exit(1)
	}
}

func run(w io.Writer, log logger.Logger, tfLabel, cfgPath string, all bool) error {
	var tfs []timeframe.Timeframe
	if all {
		tfs = params.Timeframes()
	} else {
		tf, err := timeframe.Parse(tfLabel)
		if err != nil {
			return err
		}
		tfs = []timeframe.Timeframe{tf}
	}

	out := make([]output, 0, len(tfs))
	for _, tf := range tfs {
		p, err := params.Lookup(tf)
		if err != nil {
			return err
		}
		if cfgPath != "" || hasOverrides() {
			if p, err = config.Load(cfgPath, p, log); err != nil {
				return err
			}
		}
		out = append(out, output{Timeframe: tf.String(), Params: p})
	}

	var payload any = out
	if !all {
		payload = out[0]
	}
	b, err := sonic.ConfigStd.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// hasOverrides reports whether any PATTERN_* input is set in the environment.
func hasOverrides() bool {
	for _, k := range config.Keys() {
		if _, ok := os.LookupEnv(k); ok {
			return true
		}
	}
	return false
}
