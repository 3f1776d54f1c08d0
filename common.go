package asn1codec

/*
common.go contains small helpers and import aliases used throughout the
package, in the style the teacher codebase uses to avoid repeating
fully-qualified stdlib calls at every site.
*/

import (
	"strconv"
	"strings"
)

var itoa func(int) string = strconv.Itoa

func newStrBuilder() strings.Builder { return strings.Builder{} }
