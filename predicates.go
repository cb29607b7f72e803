package mailchars

// IsWS reports whether ch is the space or horizontal tab char. Note that
// "\r" and "\n" are not ws; they only appear at soft line break boundaries,
// which a parser has to handle on its own.
func IsWS(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

// IsVChar reports whether ch is a visible (printing) us-ascii char, i.e. in
// the range following SP up to and including "~".
func IsVChar(ch rune) bool {
	return ' ' < ch && ch <= '~'
}
