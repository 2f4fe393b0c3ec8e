// Package parser converts JSON text into the in-memory document model.
//
// The parser is a hand-rolled recursive descent over a character stream:
// single pass, single-rune lookahead, no backtracking. It is deliberately
// lenient in two places: unknown string escapes are preserved verbatim,
// and a bare token that is not true, false, null, undefined or a number is
// captured whole as an unknown literal instead of failing.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/model"
)

// Parse reads exactly one JSON value from reader. Anything other than
// whitespace after the first value is an error.
func Parse(reader io.Reader) (model.Value, error) {
	s := &scanner{r: bufio.NewReader(reader)}

	if err := s.skipSpace(); err != nil {
		return model.Undefined(), errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}
	v, err := s.parseValue()
	if err != nil {
		return model.Undefined(), err
	}

	// The document must hold a single value.
	if err := s.skipSpace(); err == nil {
		r, _ := s.next()
		return model.Undefined(), errors.NewParsingError(
			fmt.Sprintf("unexpected character %q after the first JSON value", r),
			errors.ErrTrailingData,
		)
	}
	return v, nil
}

// ParseString parses JSON from a string.
func ParseString(jsonString string) (model.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		// Provide a specific error for truly empty or whitespace-only strings
		return model.Undefined(), errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path.
func ParseFile(filePath string) (model.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return model.Undefined(), errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Undefined(), errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return model.Undefined(), errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return model.Undefined(), errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return model.Undefined(), errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}

// scanner wraps the input stream with single-rune lookahead.
type scanner struct {
	r *bufio.Reader
}

func (s *scanner) next() (rune, error) {
	r, _, err := s.r.ReadRune()
	return r, err
}

func (s *scanner) unread() {
	// UnreadRune only fails when nothing was read, which never happens on
	// this call path.
	_ = s.r.UnreadRune()
}

// skipSpace consumes whitespace and stops with the next significant rune
// still unread. It returns io.EOF when the stream ends first.
func (s *scanner) skipSpace() error {
	for {
		r, err := s.next()
		if err != nil {
			return err
		}
		if !isSpace(r) {
			s.unread()
			return nil
		}
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isLiteralEnd(r rune) bool {
	return isSpace(r) || r == ',' || r == '}' || r == ']'
}

// parseValue parses one value of any kind. The stream must be positioned
// at its first significant rune.
func (s *scanner) parseValue() (model.Value, error) {
	if err := s.skipSpace(); err != nil {
		return model.Undefined(), eofError("while expecting a value")
	}
	r, err := s.next()
	if err != nil {
		return model.Undefined(), eofError("while expecting a value")
	}
	return s.parseValueFrom(r)
}

// parseValueFrom dispatches on an already-consumed first rune.
func (s *scanner) parseValueFrom(r rune) (model.Value, error) {
	switch r {
	case '{':
		return s.parseObject()
	case '[':
		return s.parseArray()
	case '"':
		text, err := s.parseStringText()
		if err != nil {
			return model.Undefined(), err
		}
		return model.NewString(text), nil
	default:
		return s.parseLiteral(r)
	}
}

// parseObject parses the members of an object. The opening brace has
// already been consumed.
func (s *scanner) parseObject() (model.Value, error) {
	obj := model.NewObject()
	havePrev := false  // at least one property has been parsed
	afterComma := false // a separating comma demands another property

	for {
		if err := s.skipSpace(); err != nil {
			return model.Undefined(), eofError("inside an object")
		}
		r, err := s.next()
		if err != nil {
			return model.Undefined(), eofError("inside an object")
		}
		switch r {
		case '}':
			if afterComma {
				return model.Undefined(), syntaxError("unexpected '}' after ',' in object")
			}
			return model.NewObjectValue(obj), nil
		case ',':
			if !havePrev {
				return model.Undefined(), syntaxError("unexpected ',' before the first property of an object")
			}
			if afterComma {
				return model.Undefined(), syntaxError("unexpected second ',' between properties of an object")
			}
			afterComma = true
		case '"':
			if havePrev && !afterComma {
				return model.Undefined(), syntaxError("expected ',' between properties of an object")
			}
			name, err := s.parseStringText()
			if err != nil {
				return model.Undefined(), err
			}
			if err := s.skipSpace(); err != nil {
				return model.Undefined(), eofError("while expecting ':' after a property name")
			}
			colon, err := s.next()
			if err != nil {
				return model.Undefined(), eofError("while expecting ':' after a property name")
			}
			if colon != ':' {
				return model.Undefined(), syntaxError(fmt.Sprintf("expected ':' after property name %q, found %q", name, colon))
			}
			if err := s.skipSpace(); err != nil {
				return model.Undefined(), eofError("while expecting a property value")
			}
			peek, err := s.next()
			if err != nil {
				return model.Undefined(), eofError("while expecting a property value")
			}
			if peek == ':' {
				return model.Undefined(), syntaxError(fmt.Sprintf("duplicated ':' after property name %q", name))
			}
			value, err := s.parseValueFrom(peek)
			if err != nil {
				return model.Undefined(), err
			}
			obj.Add(name, value)
			havePrev = true
			afterComma = false
		default:
			return model.Undefined(), syntaxError(fmt.Sprintf("unexpected character %q in object, expected a property name", r))
		}
	}
}

// parseArray parses the elements of an array. The opening bracket has
// already been consumed. The comma rules match parseObject.
func (s *scanner) parseArray() (model.Value, error) {
	arr := model.NewArray()
	havePrev := false
	afterComma := false

	for {
		if err := s.skipSpace(); err != nil {
			return model.Undefined(), eofError("inside an array")
		}
		r, err := s.next()
		if err != nil {
			return model.Undefined(), eofError("inside an array")
		}
		switch r {
		case ']':
			if afterComma {
				return model.Undefined(), syntaxError("unexpected ']' after ',' in array")
			}
			return model.NewArrayValue(arr), nil
		case ',':
			if !havePrev {
				return model.Undefined(), syntaxError("unexpected ',' before the first element of an array")
			}
			if afterComma {
				return model.Undefined(), syntaxError("unexpected second ',' between elements of an array")
			}
			afterComma = true
		default:
			if havePrev && !afterComma {
				return model.Undefined(), syntaxError(fmt.Sprintf("expected ',' or ']' in array, found %q", r))
			}
			value, err := s.parseValueFrom(r)
			if err != nil {
				return model.Undefined(), err
			}
			arr.Append(value)
			havePrev = true
			afterComma = false
		}
	}
}

// parseStringText reads the body of a quoted string. The opening quote
// has already been consumed. The short escapes \b \f \n \r \t \" \\ are
// decoded; any other escape is preserved verbatim, backslash included.
func (s *scanner) parseStringText() (string, error) {
	var sb strings.Builder
	for {
		r, err := s.next()
		if err != nil {
			return "", eofError("inside a string")
		}
		switch r {
		case '"':
			return sb.String(), nil
		case '\\':
			esc, err := s.next()
			if err != nil {
				return "", eofError("inside a string escape")
			}
			switch esc {
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				// Unknown escape, kept as-is.
				sb.WriteByte('\\')
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(r)
		}
	}
}

// parseLiteral accumulates a bare token starting with first and
// classifies it. A token that looked like a number the whole way through
// becomes a number; otherwise it is matched against the known literals,
// falling back to an unknown literal. End of stream is a valid terminator
// here so that a top-level bare value parses.
func (s *scanner) parseLiteral(first rune) (model.Value, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	couldBeNumber := isNumberRune(first)

	for {
		r, err := s.next()
		if err != nil {
			break
		}
		if isLiteralEnd(r) {
			s.unread()
			break
		}
		sb.WriteRune(r)
		if couldBeNumber && !isNumberRune(r) {
			couldBeNumber = false
		}
	}

	text := sb.String()
	if couldBeNumber {
		return model.NewNumber(text), nil
	}
	switch text {
	case "null":
		return model.Null(), nil
	case "true", "false":
		return model.NewRaw(model.TypeBoolean, text), nil
	case "undefined":
		return model.Undefined(), nil
	default:
		return model.NewUnknownLiteral(text), nil
	}
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == 'e' || r == 'E'
}

func syntaxError(message string) error {
	return errors.NewParsingError(message, errors.ErrInvalidJSON)
}

func eofError(context string) error {
	return errors.NewParsingError(
		fmt.Sprintf("unexpected end of input %s", context),
		stderrors.Join(errors.ErrInvalidJSON, errors.ErrUnexpectedEOF),
	)
}
