// Package rfc5322 re-exports the charsets specified by RFC 5322.
package rfc5322

import mailchars "github.com/dac-gmbh/mail-chars"

const (
	QTextWs    = mailchars.QTextWs
	CTextWs    = mailchars.CTextWs
	DTextWs    = mailchars.DTextWs
	AText      = mailchars.AText
	ObsNoWsCtl = mailchars.ObsNoWsCtl
)
