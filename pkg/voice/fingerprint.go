package voice

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// fingerprintVersion tags the key schema. Bumping it invalidates every
// existing cache entry instead of silently colliding with them.
const fingerprintVersion = "v1"

// Fingerprint derives the content-addressed cache key for a request and its
// resolved reference identity. Field order and separator are fixed: changing
// either is a schema change and requires a version bump.
func Fingerprint(req Request, reference string) string {
	fields := []string{
		fingerprintVersion,
		req.Text,
		req.Language,
		strconv.FormatFloat(req.Speed, 'g', -1, 64),
		string(req.Agent),
		reference,
	}

	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))

	return hex.EncodeToString(sum[:])
}
