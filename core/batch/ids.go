package batch

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDFunc synthesizes the MaterialView ID of a stored record that has none.
type IDFunc func(kind Kind, pos int, rec Record) string

// RandomID returns "<kind>-<unix millis>-<random>". Such IDs are only valid
// against the view list they were produced for.
func RandomID(kind Kind, _ int, _ Record) string {
	return fmt.Sprintf("%s-%d-%s", kind.Singular(), time.Now().UnixMilli(), uuid.NewString())
}

// ContentID returns "<kind>-<dateTimeStamp>-<digest>" where digest covers the
// position and the stored content. The ID survives reloads as long as the record
// and its position do not change, and stops resolving once either does.
func ContentID(kind Kind, pos int, rec Record) string {
	h := sha1.New()
	h.Write([]byte(strconv.Itoa(pos)))
	h.Write([]byte{0})
	// map keys are sorted by encoding/json
	if data, err := json.Marshal(rec); err == nil {
		h.Write(data)
	}
	ts := strings.ReplaceAll(rec.DateTimeStamp(), "-", "")
	if ts == "" {
		ts = "0"
	}
	return fmt.Sprintf("%s-%s-%s", kind.Singular(), ts, hex.EncodeToString(h.Sum(nil))[:12])
}
