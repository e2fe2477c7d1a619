package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/specterlang/effectcore/internal/ir"
)

// Key derives a stable content-addressed cache key from the module
// and definition a scheme belongs to, its expression id, and a
// caller-supplied source fingerprint (e.g. a hash of the source
// text). Any change to the fingerprint yields a different key; with a
// whole-source fingerprint, as cmd/effectinfer passes, every edit to
// the source changes every key.
func Key(moduleName, defName string, id ir.ID, fingerprint string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s\x00%d\x00%s", moduleName, defName, id, fingerprint)))
	return hex.EncodeToString(sum[:])
}
