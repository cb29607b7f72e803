package mailchars

// usASCII maps every us-ascii codepoint to the charsets it is a member of.
//
// From the collected ABNF of the mail grammars:
//
// WS             = SP / HTAB
// qtext          = %d33 / %d35-91 / %d93-126     ; rfc5322; no DQUOTE, no "\"
// ctext          = %d33-39 / %d42-91 / %d93-126  ; rfc5322; no "(", ")", "\"
// dtext          = %d33-90 / %d94-126            ; rfc5322; no "[", "]", "\"
// atext          = ALPHA / DIGIT /               ; rfc5322
//                  "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "/" /
//                  "=" / "?" / "^" / "_" / "`" / "{" / "|" / "}" / "~"
// obs-NO-WS-CTL  = %d1-8 / %d11 / %d12 / %d14-31 / %d127 ; rfc5322
// token          = 1*<any CHAR except SPACE, CTLs, or tspecials> ; rfc2045
// tspecials      = "(" / ")" / "<" / ">" / "@" / "," / ";" / ":" / "\" / <"> /
//                  "/" / "[" / "]" / "?" / "="
// restricted-name-chars =                        ; rfc6838
//                  ALPHA / DIGIT / "!" / "#" / "$" / "&" / "-" / "^" / "_" /
//                  "." / "+"
// tchar          = ALPHA / DIGIT /               ; rfc7230
//                  "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//                  "^" / "_" / "`" / "|" / "~"
var usASCII [128]Charset

func init() {
	for c := 0; c < 0x80; c++ {
		var t Charset

		if c == ' ' || c == '\t' {
			t |= QTextWs | CTextWs | DTextWs
		}
		if c == 33 || 35 <= c && c <= 91 || 93 <= c && c <= 126 {
			t |= QTextWs
		}
		if 33 <= c && c <= 39 || 42 <= c && c <= 91 || 93 <= c && c <= 126 {
			t |= CTextWs
		}
		if 33 <= c && c <= 90 || 94 <= c && c <= 126 {
			t |= DTextWs
		}
		if 1 <= c && c <= 8 || c == 11 || c == 12 || 14 <= c && c <= 31 || c == 127 {
			t |= ObsNoWsCtl
		}

		alnum := '0' <= c && c <= '9' || 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
		if alnum {
			t |= AText | RestrictedToken | Rfc7230Token
		}
		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~':
			t |= AText
		}
		switch c {
		case '!', '#', '$', '&', '-', '^', '_', '.', '+':
			t |= RestrictedToken
		}
		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
			t |= Rfc7230Token
		}

		var tspecial bool
		switch c {
		case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=':
			tspecial = true
		}
		if 33 <= c && c <= 126 && !tspecial {
			t |= Token
		}

		usASCII[c] = t
	}
}
