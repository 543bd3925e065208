// Package calc evaluates arithmetic expressions for the calculator view.
// Parsing uses the shunting-yard algorithm, so operator precedence and
// parentheses behave the way a pocket calculator user expects.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluation errors.
var (
	ErrDivideByZero = errors.New("division by zero")
	ErrSyntax       = errors.New("syntax error")
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind  tokenKind
	value float64
	op    byte
}

// operator precedence, higher binds tighter
var precedence = map[byte]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'%': 2,
	'u': 3, // Unary minus
	'^': 4,
}

// rightAssoc marks operators that associate right to left.
var rightAssoc = map[byte]bool{
	'u': true,
	'^': true,
}

// Eval evaluates an arithmetic expression. Supported: + - * / % ^,
// parentheses, unary minus, and decimal numbers.
func Eval(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, ErrSyntax
	}
	rpn, err := toRPN(tokens)
	if err != nil {
		return 0, err
	}
	return evalRPN(rpn)
}

// tokenize splits the expression into tokens, resolving unary minus: a
// minus at the start or after an operator or '(' negates, otherwise it
// subtracts.
func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case unicode.IsDigit(rune(c)) || c == '.':
			j := i
			for j < len(expr) && (unicode.IsDigit(rune(expr[j])) || expr[j] == '.') {
				j++
			}
			val, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, expr[i:j])
			}
			tokens = append(tokens, token{kind: tokenNumber, value: val})
			i = j
		case c == '(':
			tokens = append(tokens, token{kind: tokenLeftParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRightParen})
			i++
		case strings.IndexByte("+-*/%^", c) >= 0:
			op := c
			if c == '-' && unaryPosition(tokens) {
				op = 'u'
			}
			tokens = append(tokens, token{kind: tokenOperator, op: op})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, c)
		}
	}
	return tokens, nil
}

// unaryPosition reports whether a minus at this point negates rather
// than subtracts.
func unaryPosition(tokens []token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	return last.kind == tokenOperator || last.kind == tokenLeftParen
}

// toRPN converts the token stream to reverse Polish notation using the
// shunting-yard algorithm.
func toRPN(tokens []token) ([]token, error) {
	var output []token
	var stack []token

	for _, t := range tokens {
		switch t.kind {
		case tokenNumber:
			output = append(output, t)
		case tokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOperator {
					break
				}
				if precedence[top.op] > precedence[t.op] ||
					(precedence[top.op] == precedence[t.op] && !rightAssoc[t.op]) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		case tokenLeftParen:
			stack = append(stack, t)
		case tokenRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w: unmatched ')'", ErrSyntax)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLeftParen {
			return nil, fmt.Errorf("%w: unmatched '('", ErrSyntax)
		}
		output = append(output, top)
	}
	return output, nil
}

// evalRPN reduces an RPN token stream to a single value.
func evalRPN(rpn []token) (float64, error) {
	var stack []float64
	pop := func() (float64, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, t := range rpn {
		if t.kind == tokenNumber {
			stack = append(stack, t.value)
			continue
		}

		if t.op == 'u' {
			v, ok := pop()
			if !ok {
				return 0, ErrSyntax
			}
			stack = append(stack, -v)
			continue
		}

		b, okB := pop()
		a, okA := pop()
		if !okA || !okB {
			return 0, ErrSyntax
		}

		switch t.op {
		case '+':
			stack = append(stack, a+b)
		case '-':
			stack = append(stack, a-b)
		case '*':
			stack = append(stack, a*b)
		case '/':
			if b == 0 {
				return 0, ErrDivideByZero
			}
			stack = append(stack, a/b)
		case '%':
			if b == 0 {
				return 0, ErrDivideByZero
			}
			stack = append(stack, math.Mod(a, b))
		case '^':
			stack = append(stack, math.Pow(a, b))
		}
	}

	if len(stack) != 1 {
		return 0, ErrSyntax
	}
	return stack[0], nil
}

// Format renders a result the way the calculator display shows it:
// integers without a decimal point, everything else trimmed.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 12, 64)
}
