package version

import "fmt"

// The build suffix is a bijective base-26 numeral written with the letters
// 'a'..'z': "a"=1, "b"=2, ..., "z"=26, "aa"=27, "ab"=28, and so on, like
// spreadsheet column names. There is no zero digit. The numeric value is
// used only for ordering and is never persisted.

// EncodeAlpha converts a positive ordinal into its bijective base-26
// representation. Values below 1 encode to the empty string.
func EncodeAlpha(n int) string {
	if n < 1 {
		return ""
	}
	buf := make([]byte, 0, 4)
	for n > 0 {
		n--
		buf = append(buf, byte('a'+n%26))
		n /= 26
	}
	// Digits were produced least-significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// DecodeAlpha converts a bijective base-26 string back into its ordinal.
// Returns an error for empty input or characters outside 'a'..'z'.
func DecodeAlpha(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty suffix", ErrMalformedVersion)
	}
	value := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: suffix %q contains %q", ErrMalformedVersion, s, c)
		}
		value = value*26 + int(c-'a') + 1
	}
	return value, nil
}

// IncrementAlpha returns the successor of s in bijective base-26 order:
// "a" -> "b", "z" -> "aa", "az" -> "ba", "zz" -> "aaa".
// The empty string is the base case and increments to "a".
func IncrementAlpha(s string) string {
	if s == "" {
		return "a"
	}
	buf := []byte(s)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] == 'z' {
			buf[i] = 'a'
			continue
		}
		buf[i]++
		return string(buf)
	}
	// Every position carried; grow by one digit.
	return "a" + string(buf)
}
