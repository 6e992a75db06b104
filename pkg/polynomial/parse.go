package polynomial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DefaultVariable is the free variable used when none is given.
const DefaultVariable = "x"

// marker replaces the free variable before scanning. It is outside the
// characters users type so that other letters never collide with it.
const marker = '\uFFFC'

// ErrMalformed is returned by ParseStrict when part of the input is not a term.
var ErrMalformed = errors.New("malformed polynomial")

// Parse converts text into a Polynomial in the free variable.
//
// Parsing is tolerant: anything that is not a term is skipped. Coefficients
// default to 1 (or -1 after a bare minus sign) and exponents default to 1.
// Empty or entirely unparseable input gives an empty Polynomial.
func Parse(text, variable string) Polynomial {
	p, _ := scan(normalize(text, variable))
	return p
}

// ParseStrict is Parse, but returns an error wrapping ErrMalformed describing
// the first fragment that was skipped.
//
// Offsets in the error refer to the input after whitespace and '*' are removed.
func ParseStrict(text, variable string) (Polynomial, error) {
	p, skipped := scan(normalize(text, variable))
	if len(skipped) > 0 {
		first := skipped[0]
		return nil, fmt.Errorf("%w: unexpected %q at offset %d",
			ErrMalformed, first.text(variable), first.offset)
	}

	return p, nil
}

// normalize swaps the variable for marker and removes whitespace and
// multiplication signs, leaving a juxtaposition grammar like 3x^2-2x+1.
func normalize(text, variable string) []rune {
	if variable == "" {
		variable = DefaultVariable
	}

	text = strings.ReplaceAll(text, variable, string(marker))
	text = strings.Map(func(r rune) rune {
		if r == '*' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	return []rune(text)
}

type fragment struct {
	offset int
	runes  []rune
}

func (f fragment) text(variable string) string {
	return strings.ReplaceAll(string(f.runes), string(marker), variable)
}

// scan reads terms left to right. At each position it tries a variable term,
// then a constant term, and otherwise skips a single rune.
func scan(src []rune) (Polynomial, []fragment) {
	var (
		terms   Polynomial
		skipped []fragment
	)

	skip := func(start, end int) {
		if n := len(skipped); n > 0 {
			last := &skipped[n-1]
			if last.offset+len(last.runes) == start {
				last.runes = src[last.offset:end]
				return
			}
		}
		skipped = append(skipped, fragment{offset: start, runes: src[start:end]})
	}

	for pos := 0; pos < len(src); {
		end, term, ok := variableTerm(src, pos)
		if end < 0 {
			end, term, ok = constantTerm(src, pos)
		}

		switch {
		case end < 0:
			skip(pos, pos+1)
			pos++
		case !ok:
			skip(pos, end)
			pos = end
		default:
			terms = append(terms, term)
			pos = end
		}
	}

	return terms, skipped
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func digits(src []rune, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i
}

// variableTerm matches [+-]?\d*\.?\d*<marker>(\^\d+)? at start.
//
// end is -1 if nothing matched. ok is false if the text matched the shape but
// does not hold a usable number, such as a coefficient of ".".
func variableTerm(src []rune, start int) (end int, term Term, ok bool) {
	i := start
	if i < len(src) && isSign(src[i]) {
		i++
	}
	i = digits(src, i)
	if i < len(src) && src[i] == '.' {
		i++
	}
	i = digits(src, i)

	if i >= len(src) || src[i] != marker {
		return -1, Term{}, false
	}
	coefficient := string(src[start:i])
	i++

	power := 1
	ok = true
	if i+1 < len(src) && src[i] == '^' && isDigit(src[i+1]) {
		j := digits(src, i+1)
		var err error
		power, err = strconv.Atoi(string(src[i+1 : j]))
		if err != nil {
			ok = false
		}
		i = j
	}

	c, valid := parseCoefficient(coefficient)
	if !valid {
		ok = false
	}

	return i, Term{Coefficient: c, Power: power}, ok
}

// constantTerm matches [+-]?\d+\.?\d* at start.
func constantTerm(src []rune, start int) (end int, term Term, ok bool) {
	i := start
	if i < len(src) && isSign(src[i]) {
		i++
	}

	j := digits(src, i)
	if j == i {
		return -1, Term{}, false
	}
	i = j

	if i < len(src) && src[i] == '.' {
		i++
	}
	i = digits(src, i)

	c, ok := parseNumber(string(src[start:i]))
	return i, Term{Coefficient: c, Power: 0}, ok
}

func parseCoefficient(s string) (float64, bool) {
	switch s {
	case "", "+":
		return 1.0, true
	case "-":
		return -1.0, true
	}

	return parseNumber(s)
}

// parseNumber accepts out-of-range values as infinities.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0.0, false
	}

	return f, true
}
