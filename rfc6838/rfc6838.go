// Package rfc6838 re-exports the charsets specified by RFC 6838.
package rfc6838

import mailchars "github.com/dac-gmbh/mail-chars"

const RestrictedToken = mailchars.RestrictedToken
