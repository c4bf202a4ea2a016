// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package vuepress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// scanner converts an object literal into JSON. It knows only the
// literal subset configuration files are written in: no expressions,
// no function calls, no template strings.
type scanner struct {
	src []byte
	pos int
	out bytes.Buffer
	// pendingComma is dropped when the next token closes an object or array
	pendingComma bool
}

func toJSON(src []byte) ([]byte, error) {
	s := &scanner{src: src}
	for {
		s.skipSpaceAndComments()
		if s.pos >= len(s.src) {
			break
		}
		if s.src[s.pos] == ';' {
			s.pos++
			s.skipSpaceAndComments()
			if s.pos < len(s.src) {
				return nil, fmt.Errorf("unexpected content after ; at offset %d", s.pos)
			}
			break
		}
		if err := s.token(); err != nil {
			return nil, err
		}
	}
	if s.pendingComma {
		return nil, fmt.Errorf("unexpected trailing comma at end of input")
	}
	return s.out.Bytes(), nil
}

func (s *scanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.pos++
		case bytes.HasPrefix(s.src[s.pos:], []byte("//")):
			if i := bytes.IndexByte(s.src[s.pos:], '\n'); i >= 0 {
				s.pos += i + 1
			} else {
				s.pos = len(s.src)
			}
		case bytes.HasPrefix(s.src[s.pos:], []byte("/*")):
			if i := bytes.Index(s.src[s.pos+2:], []byte("*/")); i >= 0 {
				s.pos += i + 4
			} else {
				s.pos = len(s.src)
			}
		default:
			return
		}
	}
}

func (s *scanner) flushComma(closing bool) {
	if s.pendingComma && !closing {
		s.out.WriteByte(',')
	}
	s.pendingComma = false
}

func (s *scanner) token() error {
	c := s.src[s.pos]
	switch {
	case c == ',':
		if s.pendingComma {
			return fmt.Errorf("unexpected , at offset %d", s.pos)
		}
		s.pendingComma = true
		s.pos++
	case c == '}' || c == ']':
		s.flushComma(true)
		s.out.WriteByte(c)
		s.pos++
	case c == '{' || c == '[' || c == ':':
		s.flushComma(false)
		s.out.WriteByte(c)
		s.pos++
	case c == '\'' || c == '"':
		s.flushComma(false)
		v, err := s.str(c)
		if err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		s.out.Write(b)
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		s.flushComma(false)
		start := s.pos
		for s.pos < len(s.src) && strings.IndexByte("0123456789.eE+-", s.src[s.pos]) >= 0 {
			s.pos++
		}
		n := string(s.src[start:s.pos])
		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return fmt.Errorf("invalid number %q at offset %d", n, start)
		}
		s.out.WriteString(strings.TrimPrefix(n, "+"))
	case c == '_' || c == '$' || isLetter(c):
		s.flushComma(false)
		start := s.pos
		for s.pos < len(s.src) && (isLetter(s.src[s.pos]) || isDigit(s.src[s.pos]) || s.src[s.pos] == '_' || s.src[s.pos] == '$') {
			s.pos++
		}
		ident := string(s.src[start:s.pos])
		switch ident {
		case "true", "false", "null":
			s.out.WriteString(ident)
			return nil
		}
		s.skipSpaceAndComments()
		if s.pos >= len(s.src) || s.src[s.pos] != ':' {
			return fmt.Errorf("unsupported expression %q at offset %d: only literal values are allowed", ident, start)
		}
		b, _ := json.Marshal(ident)
		s.out.Write(b)
	default:
		r, _ := utf8.DecodeRune(s.src[s.pos:])
		return fmt.Errorf("unexpected character %q at offset %d", r, s.pos)
	}
	return nil
}

// str reads a quoted string starting at the opening quote
func (s *scanner) str(quote byte) (string, error) {
	start := s.pos
	s.pos++
	var sb strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch c {
		case quote:
			s.pos++
			return sb.String(), nil
		case '\n':
			return "", fmt.Errorf("unterminated string at offset %d", start)
		case '\\':
			if s.pos+1 >= len(s.src) {
				return "", fmt.Errorf("unterminated string at offset %d", start)
			}
			s.pos++
			e := s.src[s.pos]
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case '0':
				sb.WriteByte(0)
			case 'u':
				if s.pos+4 >= len(s.src) {
					return "", fmt.Errorf("invalid unicode escape at offset %d", s.pos)
				}
				code, err := strconv.ParseUint(string(s.src[s.pos+1:s.pos+5]), 16, 32)
				if err != nil {
					return "", fmt.Errorf("invalid unicode escape at offset %d", s.pos)
				}
				r := rune(code)
				s.pos += 4
				if utf16.IsSurrogate(r) {
					if low, ok := s.lowSurrogate(); ok {
						if pair := utf16.DecodeRune(r, low); pair != unicode.ReplacementChar {
							r = pair
							s.pos += 6
						}
					}
				}
				sb.WriteRune(r)
			case '\n':
				// line continuation
			default:
				sb.WriteByte(e)
			}
			s.pos++
		default:
			sb.WriteByte(c)
			s.pos++
		}
	}
	return "", fmt.Errorf("unterminated string at offset %d", start)
}

// lowSurrogate reads the \uXXXX escape following the current position
// without consuming it
func (s *scanner) lowSurrogate() (rune, bool) {
	next := s.src[s.pos+1:]
	if len(next) < 6 || next[0] != '\\' || next[1] != 'u' {
		return 0, false
	}
	code, err := strconv.ParseUint(string(next[2:6]), 16, 32)
	if err != nil || code < 0xDC00 || code > 0xDFFF {
		return 0, false
	}
	return rune(code), true
}

func isLetter(c byte) bool {
	return c < utf8.RuneSelf && unicode.IsLetter(rune(c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
