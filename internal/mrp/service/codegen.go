package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateCode builds a reference of the form PREFIX-YYYYMMDD-XXXXXX, where
// the suffix is six hex characters of a random UUID. Collisions are caught
// by the unique constraint on the code column.
func generateCode(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}
