package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssv/config"
	"cssv/css"
	"cssv/state"
)

// resolveFormat picks output format from the command line falling back to
// configuration.
func resolveFormat(cmd *cli.Command, cfg *config.Config) (config.OutputFmt, error) {
	if s := cmd.String("format"); len(s) > 0 {
		return config.ParseOutputFmt(s)
	}
	return cfg.Output.Format, nil
}

type evalResult struct {
	Expression string `yaml:"expression"`
	Value      string `yaml:"value"`
}

func runEval(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("nothing to evaluate")
	}

	format, err := resolveFormat(cmd, env.Cfg)
	if err != nil {
		return err
	}
	prec := env.Cfg.Output.Precision

	var (
		errs    error
		results []evalResult
	)
	for _, arg := range cmd.Args().Slice() {
		var (
			text string
			err  error
		)
		if cmd.Bool("strict-units") {
			var v css.Value
			if v, err = css.Evaluate(arg); err == nil {
				text = v.Format(prec)
			}
		} else {
			var (
				num    float64
				suffix string
			)
			if num, suffix, err = css.EvaluateAny(arg); err == nil {
				text = css.Value{Value: num}.Format(prec) + suffix
			}
		}
		if err != nil {
			env.Log.Debug("Evaluation failed", zap.String("expression", arg), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		env.Log.Debug("Evaluated", zap.String("expression", arg), zap.String("result", text))
		results = append(results, evalResult{Expression: arg, Value: text})
	}

	switch format {
	case config.OutputFmtYaml:
		data, err := yaml.Marshal(results)
		if err != nil {
			return multierr.Append(errs, err)
		}
		fmt.Print(string(data))
	default:
		// plain and css render the same for bare values
		for _, r := range results {
			fmt.Println(r.Value)
		}
	}
	return errs
}

// cssProperty maps a field name to its CSS property spelling.
func cssProperty(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
