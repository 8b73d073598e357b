package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateRunID creates a unique ID for a pipeline run based on timestamp
// and pipeline name. Format: epochNanos_md5(name)[:8]
func GenerateRunID(pipelineName string) string {
	epochNanos := time.Now().UnixNano()

	hash := md5.Sum([]byte(pipelineName))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochNanos, hashStr)
}
