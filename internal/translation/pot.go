package translation

import (
	"strconv"
	"strings"
)

// potHeader is the minimal gettext template header.
const potHeader = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

`

// marshalPOT renders entries as a gettext template: one msgid/msgstr pair
// per key, sorted, after the standard header.
func marshalPOT(entries map[string]string) []byte {
	var sb strings.Builder
	sb.WriteString(potHeader)

	for _, k := range SortedKeys(entries) {
		sb.WriteString("msgid ")
		sb.WriteString(strconv.Quote(k))
		sb.WriteByte('\n')
		sb.WriteString("msgstr ")
		sb.WriteString(strconv.Quote(entries[k]))
		sb.WriteString("\n\n")
	}

	return []byte(sb.String())
}

// parsePOT extracts msgid/msgstr pairs. The header entry (empty msgid) is
// dropped. Multi-line strings are concatenated per the gettext format.
func parsePOT(data []byte) map[string]string {
	entries := make(map[string]string)

	var msgid string
	var value strings.Builder
	state := "" // "msgid" or "msgstr"

	flush := func() {
		if state == "msgstr" && msgid != "" {
			entries[msgid] = value.String()
		}
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "msgid "):
			flush()
			msgid = unquotePOT(strings.TrimPrefix(line, "msgid "))
			value.Reset()
			state = "msgid"
		case strings.HasPrefix(line, "msgstr "):
			value.Reset()
			value.WriteString(unquotePOT(strings.TrimPrefix(line, "msgstr ")))
			state = "msgstr"
		case strings.HasPrefix(line, `"`):
			s := unquotePOT(line)
			if state == "msgid" {
				msgid += s
			} else if state == "msgstr" {
				value.WriteString(s)
			}
		case line == "" || strings.HasPrefix(line, "#"):
			// comment or separator
		}
	}
	flush()

	return entries
}

func unquotePOT(s string) string {
	s = strings.TrimSpace(s)
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return strings.Trim(s, `"`)
}
