package parse

import (
	"regexp"
	"strings"
)

// fieldValueMaxLen bounds a captured field value. Anything longer is
// narrative, not a field.
const fieldValueMaxLen = 160

var fieldLabelRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 /&_-]{0,40})\s*:\s*(.*)$`)

// CaptureFields scans free text for "Label: value" lines and returns the
// captured fields keyed by normalized label. A label stays active for the
// unlabeled lines that follow it, so wrapped values are stitched back
// together up to the per-field length bound.
func CaptureFields(text string, normalize func(string) string) map[string]string {
	if text == "" {
		return nil
	}

	fields := make(map[string]string)
	active := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line == "" {
			active = ""
			continue
		}

		if m := fieldLabelRe.FindStringSubmatch(line); m != nil && !strings.HasPrefix(m[2], "//") {
			key := normalize(m[1])
			if key == "" {
				continue
			}
			active = key
			fields[key] = clip(m[2])
			continue
		}

		// Continuation of the active field.
		if active == "" {
			continue
		}
		current := fields[active]
		if len(current) >= fieldValueMaxLen {
			continue
		}
		if current == "" {
			fields[active] = clip(line)
		} else {
			fields[active] = clip(current + " " + line)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > fieldValueMaxLen {
		return s[:fieldValueMaxLen]
	}
	return s
}
