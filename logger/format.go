package logger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasttemplate"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	functionTemplate = fasttemplate.New("{func}:", "{", "}")
	callSiteTemplate = fasttemplate.New("{file}:{line}:{func}:", "{", "}")
)

// functionHeader renders the "fn:" field of a debug record.
func functionHeader(function string) string {
	return functionTemplate.ExecuteString(map[string]interface{}{
		"func": function,
	})
}

// callSiteHeader renders the "file:line:fn:" field of an error record.
func callSiteHeader(file, function string, line int) string {
	return callSiteTemplate.ExecuteString(map[string]interface{}{
		"file": file,
		"line": strconv.Itoa(line),
		"func": function,
	})
}

// appendRecord appends everything after the tag: a space, the optional
// header, the values separated by single spaces, and the line terminator.
// A record without header or values still ends in "tag \n".
func appendRecord(buf []byte, header string, values []any) []byte {
	buf = append(buf, ' ')
	if header != "" {
		buf = append(buf, header...)
		if len(values) > 0 {
			buf = append(buf, ' ')
		}
	}
	buf = appendValues(buf, values)
	return append(buf, '\n')
}

// appendValues renders each value with its default text form, left to right.
func appendValues(buf []byte, values []any) []byte {
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Append(buf, v)
	}
	return buf
}

// appendTimestamp appends "[YYYY-MM-DD HH:MM:SS] " in UTC.
func appendTimestamp(buf []byte, t time.Time) []byte {
	buf = append(buf, '[')
	buf = t.UTC().AppendFormat(buf, timestampLayout)
	return append(buf, ']', ' ')
}
