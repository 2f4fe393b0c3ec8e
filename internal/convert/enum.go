package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsondom/internal/model"
)

// EnumFormat selects the text style an enum value is encoded with. The
// eight case styles derive word boundaries from case transitions in the
// canonical PascalCase member name, applied per flag; the two numeric
// styles ignore names entirely.
type EnumFormat int

const (
	EnumPascalCase EnumFormat = iota
	EnumCamelCase
	EnumLower
	EnumUpper
	EnumLowerUnderscore
	EnumUpperUnderscore
	EnumLowerHyphen
	EnumUpperHyphen
	EnumNumber
	EnumNumberString
)

func (f EnumFormat) check() {
	if f < EnumPascalCase || f > EnumNumberString {
		panic(fmt.Sprintf("jsondom: invalid EnumFormat %d", int(f)))
	}
}

// DefaultFlagsSeparator joins and splits flag combinations unless the
// caller configures another separator.
const DefaultFlagsSeparator = ","

// EnumMember is one symbolic name of an enumeration. Names are canonical
// in PascalCase.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumType describes an enumeration: its ordered members and whether its
// values combine as bit flags.
type EnumType struct {
	members []EnumMember
	flags   bool
}

// NewEnumType creates an enumeration description.
func NewEnumType(flags bool, members ...EnumMember) *EnumType {
	e := &EnumType{flags: flags}
	e.members = append(e.members, members...)
	return e
}

// Flags reports whether the enumeration combines as bit flags.
func (e *EnumType) Flags() bool {
	return e.flags
}

// namesFor decomposes a value into member names. An exact member match
// (including explicitly named combinations) wins; for flag enums the
// remaining values decompose into the member flags they cover. It reports
// false when some bits have no name.
func (e *EnumType) namesFor(value int64) ([]string, bool) {
	for _, m := range e.members {
		if m.Value == value {
			return []string{m.Name}, true
		}
	}
	if !e.flags {
		return nil, false
	}
	var names []string
	rest := value
	for _, m := range e.members {
		if m.Value == 0 {
			continue
		}
		if rest&m.Value == m.Value {
			names = append(names, m.Name)
			rest &^= m.Value
		}
	}
	if rest != 0 || len(names) == 0 {
		return nil, false
	}
	return names, true
}

// match resolves one name token to its value. Strict matching compares
// the canonical name exactly. Ignore-format matching tries the exact
// comparison first and only then strips underscore and hyphen word
// separators and folds case; the two phases keep legitimately-underscored
// names from being misread.
func (e *EnumType) match(token string, ignoreFormat bool) (int64, bool) {
	for _, m := range e.members {
		if m.Name == token {
			return m.Value, true
		}
	}
	if !ignoreFormat {
		return 0, false
	}
	key := foldEnumName(token)
	for _, m := range e.members {
		if foldEnumName(m.Name) == key {
			return m.Value, true
		}
	}
	return 0, false
}

// foldEnumName strips the word separators and case distinctions the
// ignore-format mode tolerates.
func foldEnumName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.ToLower(sb.String())
}

// styleEnumName renders one canonical member name in the given case
// style.
func styleEnumName(name string, format EnumFormat) string {
	switch format {
	case EnumPascalCase:
		return name
	case EnumCamelCase:
		return strcase.ToLowerCamel(name)
	case EnumLower:
		return strings.ToLower(name)
	case EnumUpper:
		return strings.ToUpper(name)
	case EnumLowerUnderscore:
		return strcase.ToSnake(name)
	case EnumUpperUnderscore:
		return strcase.ToScreamingSnake(name)
	case EnumLowerHyphen:
		return strcase.ToKebab(name)
	case EnumUpperHyphen:
		return strcase.ToScreamingKebab(name)
	}
	panic(fmt.Sprintf("jsondom: invalid EnumFormat %d", int(format)))
}

// TryGetEnum interprets the value as a member of e. Numeric text always
// converts directly. Otherwise the text is split on sep (for flag enums)
// and each token resolved by name; ignoreFormat enables the lenient
// two-phase match. An empty separator means DefaultFlagsSeparator.
func TryGetEnum(v model.Value, e *EnumType, ignoreFormat bool, sep string, expect model.Type) (int64, bool) {
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}
	if sep == "" {
		sep = DefaultFlagsSeparator
	}
	tokens := []string{text}
	if e.flags {
		tokens = strings.Split(text, sep)
	}
	var total int64
	for _, token := range tokens {
		n, ok := e.match(strings.TrimSpace(token), ignoreFormat)
		if !ok {
			return 0, false
		}
		total |= n
	}
	return total, true
}

// AsEnum returns the value as a member of e, or nil when it cannot
// convert.
func AsEnum(v model.Value, e *EnumType, ignoreFormat bool, sep string, expect model.Type) *int64 {
	if n, ok := TryGetEnum(v, e, ignoreFormat, sep, expect); ok {
		return &n
	}
	return nil
}

// EnumOrDefault returns the value as a member of e, or def when it
// cannot convert.
func EnumOrDefault(v model.Value, e *EnumType, def int64, ignoreFormat bool, sep string, expect model.Type) int64 {
	if n, ok := TryGetEnum(v, e, ignoreFormat, sep, expect); ok {
		return n
	}
	return def
}

// EnumToJSON encodes an enum value in the given style. Flag combinations
// render each flag's name in the style independently, joined with sep
// (DefaultFlagsSeparator when empty). A value with unnamed bits falls
// back to its numeric text. An out-of-range format panics.
func EnumToJSON(e *EnumType, value int64, format EnumFormat, sep string) model.Value {
	format.check()
	switch format {
	case EnumNumber:
		return model.NewNumber(strconv.FormatInt(value, 10))
	case EnumNumberString:
		return model.NewString(strconv.FormatInt(value, 10))
	}
	names, ok := e.namesFor(value)
	if !ok {
		return model.NewString(strconv.FormatInt(value, 10))
	}
	if sep == "" {
		sep = DefaultFlagsSeparator
	}
	styled := make([]string, len(names))
	for i, name := range names {
		styled[i] = styleEnumName(name, format)
	}
	return model.NewString(strings.Join(styled, sep))
}
