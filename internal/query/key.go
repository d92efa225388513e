package query

import (
	"fmt"
	"strings"
)

// Key identifies a cache entry. Parts are compared in order, so a shorter key
// addresses every entry it prefixes.
type Key []string

func NewKey(parts ...interface{}) Key {
	key := make(Key, len(parts))
	for i, part := range parts {
		key[i] = fmt.Sprint(part)
	}
	return key
}

func (k Key) String() string {
	return strings.Join(k, "/")
}

func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}
