package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Decl is a single parsed property declaration from an inline style
// fragment ("font-size: 2em").
type Decl struct {
	Property string // lower-cased property name
	Raw      string // original value text with collapsed whitespace
	Value    Value  // numeric value when Numeric is true
	Numeric  bool
}

// DeclParser parses CSS declaration lists (inline style syntax).
type DeclParser struct {
	log *zap.Logger
}

// NewDeclParser creates a new declaration list parser.
func NewDeclParser(log *zap.Logger) *DeclParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeclParser{log: log.Named("css-decl")}
}

// ParseDeclarations parses a declaration list into per-property entries in
// source order plus warnings for constructs it skips. Numeric single-token
// values (dimension, percentage, plain number) go through the expression
// evaluator so their units are validated against the supported set.
func (p *DeclParser) ParseDeclarations(data []byte) ([]Decl, []string) {
	var (
		decls    []Decl
		warnings []string
	)

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, true)

	for {
		gt, _, name := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
				warnings = append(warnings, "parse error: "+err.Error())
			}
			return decls, warnings

		case css.DeclarationGrammar:
			d := p.parseDeclaration(strings.ToLower(string(name)), parser.Values(), &warnings)
			if d.Raw == "" {
				continue
			}
			p.log.Debug("Parsed declaration",
				zap.String("property", d.Property), zap.String("value", d.Raw), zap.Bool("numeric", d.Numeric))
			decls = append(decls, d)

		case css.CustomPropertyGrammar:
			// custom properties (--var) carry no numeric semantics here
			warnings = append(warnings, "skipping custom property: "+string(name))

		case css.CommentGrammar, css.TokenGrammar:
			// stray tokens between declarations are ignored

		default:
			// declaration lists have no rulesets or @-rules
			warnings = append(warnings, "unexpected construct: "+string(name))
		}
	}
}

func (p *DeclParser) parseDeclaration(name string, values []css.Token, warnings *[]string) Decl {
	d := Decl{Property: name, Raw: rawValue(values)}

	var payload []css.Token
	for _, t := range values {
		if t.TokenType != css.WhitespaceToken {
			payload = append(payload, t)
		}
	}
	if len(payload) != 1 {
		return d
	}

	switch payload[0].TokenType {
	case css.DimensionToken, css.PercentageToken, css.NumberToken:
		v, err := Evaluate(string(payload[0].Data))
		if err != nil {
			*warnings = append(*warnings, "unsupported value for "+name+": "+d.Raw)
			return d
		}
		d.Value = v
		d.Numeric = true
	}
	return d
}

// rawValue joins value tokens back to text, collapsing whitespace runs.
func rawValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
