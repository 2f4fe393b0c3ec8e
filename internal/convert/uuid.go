package convert

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/mcncl/jsondom/internal/model"
)

// Only the canonical 36-character hyphenated form is recognized; the
// braced, URN and bare-hex spellings uuid.Parse would otherwise accept
// are rejected up front.
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// TryGetUUID interprets the value as a UUID. The value must be
// string-typed regardless of the expected-type gate; numbers and bare
// literals never convert.
func TryGetUUID(v model.Value, expect model.Type) (uuid.UUID, bool) {
	if !typeMatches(v, expect) || v.Type() != model.TypeString {
		return uuid.UUID{}, false
	}
	text, _ := v.Text()
	if !uuidRegex.MatchString(text) {
		return uuid.UUID{}, false
	}
	u, err := uuid.Parse(text)
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}

// AsUUID returns the value as a UUID, or nil when it cannot convert.
func AsUUID(v model.Value, expect model.Type) *uuid.UUID {
	if u, ok := TryGetUUID(v, expect); ok {
		return &u
	}
	return nil
}

// UUIDOrDefault returns the value as a UUID, or def when it cannot
// convert.
func UUIDOrDefault(v model.Value, def uuid.UUID, expect model.Type) uuid.UUID {
	if u, ok := TryGetUUID(v, expect); ok {
		return u
	}
	return def
}

// UUIDToJSON encodes a UUID as its canonical hyphenated string.
func UUIDToJSON(u uuid.UUID) model.Value {
	return model.NewString(u.String())
}
