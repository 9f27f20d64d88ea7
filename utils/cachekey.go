package utils

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// CacheKey derives a cache key from a logical operation name and a canonical
// serialization of its parameters. Parameters are serialized in sorted key
// order so equivalent requests always hit the same entry, then hashed to
// keep keys bounded.
func CacheKey(operation string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return operation + "_" + hex.EncodeToString(hash[:])
}
