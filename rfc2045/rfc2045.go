// Package rfc2045 re-exports the charsets specified by RFC 2045.
package rfc2045

import mailchars "github.com/dac-gmbh/mail-chars"

const Token = mailchars.Token
