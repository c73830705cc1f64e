package cache

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Key builds a stable key from a prefix and a parameter set. Parameter order
// does not matter; a missing parameter and an empty one produce different keys.
func Key(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString("|")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
