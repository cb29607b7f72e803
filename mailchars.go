// Package mailchars contains char classification for mail related grammar
// parts/charsets, i.e. whether a given char is valid in atext, ctext, dtext,
// token etc.
//
// The Charset type names the supported sets of chars. To check if a char is
// in a set either test it directly with Charset.Contains, or classify it once
// with Lookup and test the result against several sets without indexing the
// internal table again.
//
// # Why WS is merged into CTextWs, DTextWs and QTextWs
//
// Any grammar part in which qtext/ctext/dtext is used is in a form which
// 1. repeats and 2. prepends FWS in the repeating part.
//
// That means any parser has to scan for chars which are qtext/ctext/dtext OR
// ws anyway (with special handling if it hits another char like "\r"
// indicating the start of a soft line break). For example wrt. dtext the
// grammar is `... *([FWS] dtext) [FWS] ...`, which you can validate by
// scanning chars which are either dtext or ws, and if you hit a "\r" (which
// is not in ws) you make sure it is followed by "\n " or "\n\t" before
// continuing.
//
// # Alternative interface
//
// All charsets are additionally exposed from a subpackage named after the
// RFC where they are specified. E.g. mailchars.CTextWs is also available as
// rfc5322.CTextWs.
package mailchars

import "strconv"

// Charset is a set of chars represented through an internal lookup table.
//
// Each charset is a single bit, so several of them fit into one table byte
// and a char can be a member of many sets at once.
type Charset uint8

const (
	// QTextWs is qtext plus ws, basically anything which can appear in a
	// quoted string and is not a quoted-pair. The obsolete part of the
	// grammar is excluded.
	//
	// Note: this is equivalent to rfc7230 qdtext, excluding the obsolete
	// part of both grammars.
	//
	// rfc: 5322
	QTextWs Charset = 1 << iota

	// CTextWs is ctext plus ws. The obsolete part of the grammar is
	// excluded.
	//
	// rfc: 5322
	CTextWs

	// DTextWs is dtext plus ws.
	//
	// rfc: 5322
	DTextWs

	// AText is atext.
	//
	// rfc: 5322
	AText

	// RestrictedToken is the restricted-name-char subset of the rfc2045
	// token charset, with which IETF-tokens and IANA-tokens have to comply.
	//
	// rfc: 6838 (related rfc2045)
	RestrictedToken

	// Token is token. There are multiple mail related definitions of
	// token, this is the rfc2045 based one.
	//
	// rfc: 2045
	Token

	// ObsNoWsCtl is obs-NO-WS-CTL. Combine it with CTextWs or QTextWs to
	// support the obsolete part of the grammar:
	//
	//	func isCTextWithObs(ch rune) bool {
	//		res := mailchars.Lookup(ch)
	//		return res.Is(mailchars.CTextWs) || res.Is(mailchars.ObsNoWsCtl)
	//	}
	//
	// rfc: 5322
	ObsNoWsCtl

	// Rfc7230Token is token as defined in rfc7230 (HTTP/1.1). Not directly
	// a mail grammar, but relevant for shared utilities like anything
	// Media Type (i.e. MIME-Type/Content-Type) related.
	//
	// rfc: 7230
	Rfc7230Token
)

// Contains reports whether ch is part of this set of chars.
// Chars outside the us-ascii range are never part of any set.
func (s Charset) Contains(ch rune) bool {
	return s.contains(ch, false)
}

// ContainsOrNonASCII reports whether ch is part of this set of chars or is
// not an us-ascii char at all.
//
// This is mainly meant to be used in combination with rfc6532, which extends
// all *text grammar parts/charsets to contain any non-us-ascii char.
func (s Charset) ContainsOrNonASCII(ch rune) bool {
	return s.contains(ch, true)
}

func (s Charset) contains(ch rune, outOfTable bool) bool {
	if i := uint32(ch); i < 0x80 {
		return usASCII[i]&s != 0
	}
	return outOfTable
}

func (s Charset) String() string {
	switch s {
	case QTextWs:
		return "QTextWs"
	case CTextWs:
		return "CTextWs"
	case DTextWs:
		return "DTextWs"
	case AText:
		return "AText"
	case RestrictedToken:
		return "RestrictedToken"
	case Token:
		return "Token"
	case ObsNoWsCtl:
		return "ObsNoWsCtl"
	case Rfc7230Token:
		return "Rfc7230Token"
	}
	return "Charset(0b" + strconv.FormatUint(uint64(s), 2) + ")"
}

// Lookup classifies ch through the internal lookup table. The result can be
// tested against any number of charsets without repeating the table lookup.
func Lookup(ch rune) LookupResult {
	if i := uint32(ch); i < 0x80 {
		return LookupResult{mask: usASCII[i], ascii: true}
	}
	return LookupResult{}
}
