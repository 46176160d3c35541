package cache

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-cv-backend/internal/naming"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "_"

// defaultKeySerializer joins snake_cased segments, so
// SerializeKey("companies", "AllWithProjects") yields "companies_all_with_projects".
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from a namespace and segments. Empty
// segments are dropped.
func (s *defaultKeySerializer) SerializeKey(method string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	if seg := naming.ToSnake(method); seg != "" {
		parts = append(parts, seg)
	}

	for _, arg := range args {
		if seg := s.serializeValue(arg); seg != "" {
			parts = append(parts, seg)
		}
	}

	return strings.Join(parts, KeySeparator)
}

func (s *defaultKeySerializer) serializeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return naming.ToSnake(val)
	case fmt.Stringer:
		return naming.ToSnake(val.String())
	default:
		return naming.ToSnake(fmt.Sprintf("%v", val))
	}
}
