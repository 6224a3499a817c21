package bdoc

import "strconv"

// ============================================================
// Positional Field-Name Cache
// ============================================================

// smallIndexLimit bounds the precomputed decimal names. Arrays larger
// than this fall back to formatting on demand.
const smallIndexLimit = 1024

// smallIndexNames holds the decimal form of every index below
// smallIndexLimit. Built once during package initialization and never
// mutated afterwards.
var smallIndexNames = buildSmallIndexNames()

// smallIndexReady guards against reading the cache from other
// package-level initializers that may run before smallIndexNames is
// assigned. Once observed true the cache contents are final.
var smallIndexReady = len(smallIndexNames) == smallIndexLimit && smallIndexNames[0] == "0"

func buildSmallIndexNames() []string {
	names := make([]string, smallIndexLimit)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

// IndexName returns the decimal field name for a positional array
// index. Indices below smallIndexLimit are served from the cache.
func IndexName(i int) string {
	if smallIndexReady && i >= 0 && i < smallIndexLimit {
		return smallIndexNames[i]
	}
	return strconv.Itoa(i)
}
