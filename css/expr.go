package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidExpression is returned for any input the evaluator cannot turn
// into a finite numeric value: unparseable tokens, unbalanced parentheses,
// division by zero, operand underflow or a non-finite result.
var ErrInvalidExpression = errors.New("invalid expression")

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOp
	tokenLParen
	tokenRParen
)

// token is a single lexical unit of the math portion of an expression.
// Numbers carry their parsed value, operators one of '+', '-', '*', '/'.
type token struct {
	kind tokenKind
	num  float64
	op   byte
}

// Evaluate parses an arithmetic expression with an optional trailing unit
// suffix, e.g. "-1.5 * (2 + 3)px". The unit must come from the closed Unit
// set; use EvaluateAny to keep an arbitrary suffix.
func Evaluate(expression string) (Value, error) {
	num, suffix, err := EvaluateAny(expression)
	if err != nil {
		return Value{}, err
	}
	unit, ok := ParseUnit(suffix)
	if !ok {
		return Value{}, fmt.Errorf("%w: unsupported unit %q", ErrInvalidExpression, suffix)
	}
	return Value{Value: num, Unit: unit}, nil
}

// EvaluateAny evaluates the math portion of the expression and returns the
// raw trailing unit suffix without validating it. The suffix is the maximal
// trailing run of letters, or a single '%'; it is split off before the math
// is parsed. Whitespace inside the math portion is insignificant.
func EvaluateAny(expression string) (float64, string, error) {
	expr, suffix := splitUnit(strings.TrimSpace(expression))

	// whitespace is insignificant anywhere in the math portion
	expr = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
	if len(expr) == 0 {
		return 0, "", fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return 0, "", err
	}
	rpn, err := toPostfix(foldUnaryMinus(tokens))
	if err != nil {
		return 0, "", err
	}
	num, err := evalPostfix(rpn)
	if err != nil {
		return 0, "", err
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, "", fmt.Errorf("%w: result is not finite", ErrInvalidExpression)
	}
	return num, suffix, nil
}

// splitUnit strips the unit suffix from the tail of the trimmed input:
// either a single '%' or a maximal run of alphabetic characters.
func splitUnit(s string) (string, string) {
	if strings.HasSuffix(s, "%") {
		return s[:len(s)-1], "%"
	}
	end := len(s)
	for end > 0 {
		r := rune(s[end-1])
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			end--
			continue
		}
		break
	}
	return s[:end], s[end:]
}

// tokenize scans the whitespace-free math string left to right into tagged
// tokens. Signs are not consumed here - unary minus is folded afterwards.
func tokenize(s string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			j := i + 1
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			num, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, s[i:j])
			}
			tokens = append(tokens, token{kind: tokenNumber, num: num})
			i = j
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, token{kind: tokenOp, op: c})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidExpression, c)
		}
	}
	return tokens, nil
}

// foldUnaryMinus merges a '-' into the following number token when nothing
// that could end an operand precedes it: at the start of the input or right
// after '(', '+', '-', '*' or '/'. A folded negative number is itself a
// number token, so repeating the pass until a fixpoint supports chained
// unary minus ("2 * - -3").
func foldUnaryMinus(tokens []token) []token {
	for changed := true; changed; {
		changed = false
		out := make([]token, 0, len(tokens))
		for i := 0; i < len(tokens); i++ {
			t := tokens[i]
			if t.kind == tokenOp && t.op == '-' && i+1 < len(tokens) && tokens[i+1].kind == tokenNumber {
				unary := len(out) == 0
				if !unary {
					prev := out[len(out)-1]
					unary = prev.kind == tokenLParen || prev.kind == tokenOp
				}
				if unary {
					out = append(out, token{kind: tokenNumber, num: -tokens[i+1].num})
					i++
					changed = true
					continue
				}
			}
			out = append(out, t)
		}
		tokens = out
	}
	return tokens
}

func precedence(op byte) int {
	if op == '*' || op == '/' {
		return 2
	}
	return 1
}

// toPostfix converts the infix token sequence to postfix order with the
// shunting-yard algorithm. Both precedence levels are left-associative,
// enforced by popping on equal precedence.
func toPostfix(tokens []token) ([]token, error) {
	var output, stack []token
	for _, t := range tokens {
		switch t.kind {
		case tokenNumber:
			output = append(output, t)
		case tokenLParen:
			stack = append(stack, t)
		case tokenRParen:
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: unbalanced parentheses", ErrInvalidExpression)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLParen {
					break
				}
				output = append(output, top)
			}
		case tokenOp:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp || precedence(top.op) < precedence(t.op) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLParen {
			return nil, fmt.Errorf("%w: unbalanced parentheses", ErrInvalidExpression)
		}
		output = append(output, top)
	}
	if len(output) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}
	return output, nil
}

// evalPostfix walks the postfix sequence with a numeric stack. Pops are
// guarded - operand underflow means the original token sequence was not a
// well-formed expression.
func evalPostfix(tokens []token) (float64, error) {
	stack := make([]float64, 0, len(tokens))
	for _, t := range tokens {
		if t.kind == tokenNumber {
			stack = append(stack, t.num)
			continue
		}
		if len(stack) < 2 {
			return 0, fmt.Errorf("%w: missing operand", ErrInvalidExpression)
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var r float64
		switch t.op {
		case '+':
			r = a + b
		case '-':
			r = a - b
		case '*':
			r = a * b
		case '/':
			if b == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidExpression)
			}
			r = a / b
		}
		stack = append(stack, r)
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: malformed expression", ErrInvalidExpression)
	}
	return stack[0], nil
}
