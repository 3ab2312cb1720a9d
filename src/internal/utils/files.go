package utils

import (
	"io"

	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

// CloseOrWarn closes c and logs a warning if that fails. Use it on paths
// where a close error cannot change the result.
func CloseOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}
