package formatter

import (
	"strconv"
	"time"
)

const threadIDTag = "\t\tThread ID : "

// AppendTimestamp appends t's civil fields as
// "{Y}-{M}-{D} {h}:{m}:{s}.{ns}" and returns the extended slice.
// Fields are printed unpadded.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	dst = strconv.AppendInt(dst, int64(y), 10)
	dst = append(dst, '-')
	dst = strconv.AppendInt(dst, int64(mo), 10)
	dst = append(dst, '-')
	dst = strconv.AppendInt(dst, int64(d), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(h), 10)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(mi), 10)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(s), 10)
	dst = append(dst, '.')
	dst = strconv.AppendInt(dst, int64(t.Nanosecond()), 10)
	return dst
}

// AppendLine appends the full sink line for one record and returns the
// extended slice. The trailing newline is included.
func AppendLine(dst []byte, t time.Time, shardID int, text string) []byte {
	dst = AppendTimestamp(dst, t)
	dst = append(dst, threadIDTag...)
	dst = strconv.AppendInt(dst, int64(shardID), 10)
	dst = append(dst, '\t')
	dst = append(dst, text...)
	dst = append(dst, '\n')
	return dst
}
