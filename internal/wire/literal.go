package wire

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// The daemon script formats structured payloads as Python-style literals,
// e.g. "(100, 200)" or "('0x90cb4', [('0x101a2', 'Button1')])". parseLiteral
// handles the subset it actually produces: integers (decimal and 0x hex),
// single- or double-quoted strings, and arbitrarily nested tuples and lists.

// parseLiteral parses a complete literal, requiring the whole input to be
// consumed. Sequences come back as []any, integers as int, strings as string.
func parseLiteral(s string) (any, error) {
	p := &literalParser{input: s}

	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()

	if p.pos != len(p.input) {
		return nil, fmt.Errorf("trailing data at offset %d in literal %q", p.pos, s)
	}

	return val, nil
}

type literalParser struct {
	input string
	pos   int
}

func (p *literalParser) parseValue() (any, error) {
	p.skipSpaces()

	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of literal %q", p.input)
	}

	switch c := p.input[p.pos]; {
	case c == '(':
		return p.parseSequence('(', ')')
	case c == '[':
		return p.parseSequence('[', ']')
	case c == '\'' || c == '"':
		return p.parseString(c)
	case c == '-' || unicode.IsDigit(rune(c)):
		return p.parseNumber()
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d in literal %q", c, p.pos, p.input)
	}
}

func (p *literalParser) parseSequence(open, closing byte) ([]any, error) {
	p.pos++ // consume open

	items := make([]any, 0, 4)

	for {
		p.skipSpaces()

		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unterminated sequence in literal %q", p.input)
		}

		if p.input[p.pos] == closing {
			p.pos++

			return items, nil
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		items = append(items, val)

		p.skipSpaces()

		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.pos++

			continue
		}

		if p.pos < len(p.input) && p.input[p.pos] == closing {
			p.pos++

			return items, nil
		}

		return nil, fmt.Errorf("expected ',' or %q at offset %d in literal %q", closing, p.pos, p.input)
	}
}

func (p *literalParser) parseString(quote byte) (string, error) {
	p.pos++ // consume opening quote

	var sb strings.Builder

	for p.pos < len(p.input) {
		c := p.input[p.pos]

		switch c {
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", fmt.Errorf("dangling escape in literal %q", p.input)
			}

			next := p.input[p.pos+1]
			switch next {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(next)
			}

			p.pos += 2

		case quote:
			p.pos++

			return sb.String(), nil

		default:
			sb.WriteByte(c)
			p.pos++
		}
	}

	return "", fmt.Errorf("unterminated string in literal %q", p.input)
}

func (p *literalParser) parseNumber() (int, error) {
	start := p.pos

	if p.input[p.pos] == '-' {
		p.pos++
	}

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if unicode.IsDigit(rune(c)) || c == 'x' || c == 'X' ||
			(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			p.pos++

			continue
		}

		break
	}

	text := p.input[start:p.pos]

	// Base 0 accepts both decimal and the 0x hex spelling used for hwnd ids.
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q in literal %q", text, p.input)
	}

	return int(n), nil
}

func (p *literalParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
