package utils

// OnlyLetters strips a string down to its ASCII letters, uppercased.
// Everything else (digits, punctuation, separators) is dropped.
func OnlyLetters(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}
	return string(out)
}

// IsUpperWord reports whether a string consists only of uppercase A-Z.
func IsUpperWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
