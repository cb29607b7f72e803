// Package rfc7230 re-exports the charsets specified by RFC 7230 (HTTP/1.1).
//
// Note that QTextWs (rfc5322) is re-exported as QDText: the two charsets are
// equivalent once the obsolete part of both grammars is excluded.
package rfc7230

import mailchars "github.com/dac-gmbh/mail-chars"

const (
	QDText = mailchars.QTextWs
	Token  = mailchars.Rfc7230Token
)
