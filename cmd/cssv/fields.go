package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssv/config"
	"cssv/css"
	"cssv/field"
	"cssv/state"
)

// buildFields constructs live fields from configuration in presentation
// order. Field defaults are expressions themselves and go through the
// evaluator.
func buildFields(cfg *config.FieldsConfig) (map[string]*field.Field, []string, error) {
	fields := make(map[string]*field.Field)
	names := cfg.FieldNames()

	for _, name := range names {
		fc, ok := cfg.Get(name)
		if !ok {
			// this should never happen
			panic(fmt.Sprintf("field %s has no configuration", name))
		}

		def, err := css.Evaluate(fc.Default)
		if err != nil {
			return nil, nil, fmt.Errorf("field %s: bad default %q: %w", name, fc.Default, err)
		}
		units := make([]css.Unit, 0, len(fc.Units))
		for _, u := range fc.Units {
			unit, ok := css.ParseUnit(u)
			if !ok {
				return nil, nil, fmt.Errorf("field %s: unsupported unit %q in configuration", name, u)
			}
			units = append(units, unit)
		}

		f, err := field.New(field.Settings{
			Name:         name,
			Min:          fc.Min,
			Max:          fc.Max,
			Default:      def,
			AllowedUnits: units,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("unable to build field: %w", err)
		}
		fields[name] = f
	}
	return fields, names, nil
}

// fieldName maps a CSS property spelling back to a field name.
func fieldName(property string) string {
	return strings.ReplaceAll(property, "-", "_")
}

// cssInput resolves the --css flag value. A value naming an existing regular
// file is read from disk, anything else is taken as inline declarations.
func cssInput(value string) ([]byte, error) {
	if info, err := os.Stat(value); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(value)
		if err != nil {
			return nil, fmt.Errorf("unable to read CSS from %s: %w", value, err)
		}
		return data, nil
	}
	return []byte(value), nil
}

func runFields(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	fields, names, err := buildFields(&env.Cfg.Fields)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd, env.Cfg)
	if err != nil {
		return err
	}
	prec := env.Cfg.Output.Precision

	var errs error

	// declarations first, explicit assignments override them
	if list := cmd.String("css"); len(list) > 0 {
		data, err := cssInput(list)
		if err != nil {
			return multierr.Append(errs, err)
		}
		decls, warnings := css.NewDeclParser(env.Log).ParseDeclarations(data)
		for _, w := range warnings {
			env.Log.Warn("CSS input", zap.String("warning", w))
		}
		for _, d := range decls {
			name := fieldName(d.Property)
			f, ok := fields[name]
			if !ok {
				env.Log.Debug("No field for declaration", zap.String("property", d.Property))
				continue
			}
			if _, err := f.Commit(d.Raw); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	for _, arg := range cmd.Args().Slice() {
		name, expr, found := strings.Cut(arg, "=")
		if !found {
			errs = multierr.Append(errs, fmt.Errorf("malformed assignment %q, want NAME=EXPRESSION", arg))
			continue
		}
		f, ok := fields[name]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unknown field %q (have: %s)", name, strings.Join(names, ", ")))
			continue
		}
		v, err := f.Commit(expr)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		env.Log.Debug("Committed", zap.String("field", name), zap.String("value", v.String()))
	}

	switch format {
	case config.OutputFmtYaml:
		out := make([]map[string]string, 0, len(names))
		for _, name := range names {
			out = append(out, map[string]string{name: fields[name].Value().Format(prec)})
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return multierr.Append(errs, err)
		}
		fmt.Print(string(data))
	case config.OutputFmtCss:
		for _, name := range names {
			fmt.Printf("%s: %s;\n", cssProperty(name), fields[name].Value().Format(prec))
		}
	default:
		for _, name := range names {
			fmt.Printf("%s = %s\n", name, fields[name].Value().Format(prec))
		}
	}
	return errs
}
