package bdoc

import "strconv"

// AppendNumericString interprets s as a numeric literal and appends the
// parsed number instead of a string. It reports whether coercion
// succeeded; on failure nothing is appended and the caller chooses a
// fallback (typically AppendString).
//
// The grammar is deliberately narrow: an optional leading minus, then
// digits with at most one decimal point. Exponents and signs anywhere
// else are rejected. A literal with a decimal point becomes a double; a
// short digit run (fewer than 8 characters) becomes an int32 without
// wide parsing; anything longer becomes an int64, failing if the value
// does not fit.
func (b *Builder) AppendNumericString(name, s string) bool {
	if s == "" || s == "-" || s == "." {
		return false
	}

	pos := 0
	if s[0] == '-' {
		pos++
	}
	hasDec := false
	for ; pos < len(s); pos++ {
		c := s[pos]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' {
			if hasDec {
				return false
			}
			hasDec = true
			continue
		}
		return false
	}

	if hasDec {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		b.AppendDouble(name, f)
		return true
	}

	// Seven or fewer characters always fit an int32.
	if len(s) < 8 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		b.AppendInt32(name, int32(n))
		return true
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	b.AppendInt64(name, n)
	return true
}
