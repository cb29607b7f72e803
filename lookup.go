package mailchars

// LookupResult is the classification of a single char, produced by Lookup.
//
// It is a copy of the table byte for the char (or the fact that the char is
// outside the table), so it is cheap to pass around and its membership tests
// behave exactly like the direct tests on Charset:
//
//	res := mailchars.Lookup('.')
//	res.IsASCII()              // true
//	res.Is(mailchars.Token)    // true
//	res.Is(mailchars.CTextWs)  // true
//	res.Is(mailchars.AText)    // false
type LookupResult struct {
	mask  Charset
	ascii bool
}

// IsASCII reports whether the looked up char was an us-ascii char, i.e.
// within the domain of the lookup table.
func (r LookupResult) IsASCII() bool {
	return r.ascii
}

// Is reports whether the looked up char is part of the given charset.
// Chars outside the us-ascii range are never part of any set.
func (r LookupResult) Is(s Charset) bool {
	return r.matches(s, false)
}

// IsOrNonASCII reports whether the looked up char is part of the given
// charset or is not an us-ascii char at all (see
// Charset.ContainsOrNonASCII).
func (r LookupResult) IsOrNonASCII(s Charset) bool {
	return r.matches(s, true)
}

func (r LookupResult) matches(s Charset, outOfTable bool) bool {
	if !r.ascii {
		return outOfTable
	}
	return r.mask&s != 0
}
