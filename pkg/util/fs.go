package util

import (
	"math/rand"
	"os"
	"strconv"

	"github.com/pingcap/errors"
)

// AtomicWrite writes content to path atomically by using mv.
func AtomicWrite(path string, content []byte) error {
	// there's a little chance that rand.Int conflicts
	tmpFile := path + ".tmp" + strconv.Itoa(rand.Int())
	if err := os.WriteFile(tmpFile, content, 0666); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(os.Rename(tmpFile, path))
}
