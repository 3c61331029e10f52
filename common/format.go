package common

import (
	"fmt"
	"strconv"
)

// DebugPreview renders at most maxLen bytes of b as a quoted, escaped string,
// so that corruption errors can carry a look at the offending bytes without
// dumping the whole block into the message.
func DebugPreview(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return strconv.Quote(string(b))
	}
	return fmt.Sprintf("%s... (%d bytes total)", strconv.Quote(string(b[:maxLen])), len(b))
}
