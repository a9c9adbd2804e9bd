package xid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// New returns an id of the form prefix-<unixnano>-<hexTail>. The tail comes
// from crypto/rand; when the read fails the timestamp alone is used.
func New(prefix string) string {
	ts := time.Now().UnixNano()
	var tail [8]byte
	if _, err := rand.Read(tail[:]); err != nil {
		return fmt.Sprintf("%s-%d", prefix, ts)
	}
	return fmt.Sprintf("%s-%d-%x", prefix, ts, tail)
}

// NewTicketNo returns a service ticket number of the form TS-YYMMDD-NNNN.
func NewTicketNo(now time.Time) string {
	var buf [4]byte
	n := uint32(now.UnixNano())
	if _, err := rand.Read(buf[:]); err == nil {
		n = binary.BigEndian.Uint32(buf[:])
	}
	return fmt.Sprintf("TS-%s-%04d", now.Format("060102"), n%10000)
}
