package wpctl

import (
	"regexp"
	"strings"
)

const (
	audioSection   = "Audio"
	groupDelimiter = " ├─"
	itemDelimiter  = " │  "
)

var volumePattern = regexp.MustCompile(`^vol: ([01]\.\d+)( MUTED)?$`)

// ParseStatus converts `wpctl status` output into a Snapshot. Only the lines
// between the "Audio" header and the next blank line are considered; a report
// without that header yields an empty snapshot.
func ParseStatus(report string) *Snapshot {
	snapshot := newSnapshot()

	inAudio := false
	current := ""
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !inAudio {
			inAudio = line == audioSection
			continue
		}
		switch {
		case line == "":
			return snapshot
		case line == itemDelimiter:
			current = ""
		case strings.HasPrefix(line, groupDelimiter):
			current = cleanCategory(line)
			if current != "" {
				snapshot.start(current)
			}
		case current != "" && strings.HasPrefix(line, itemDelimiter):
			if cleanLine(line) == "" {
				continue
			}
			snapshot.add(current, ParseLine(line))
		}
	}
	return snapshot
}

// ParseLine converts a single item line from the status tree into an Object.
// Tree-drawing prefixes are stripped before parsing, so both raw report lines
// and already-cleaned text are accepted.
func ParseLine(line string) Object {
	line = cleanLine(line)

	main, bracketed := splitBrackets(line)

	var obj Object
	if strings.Contains(main, "*") {
		obj.Active = true
		main = strings.ReplaceAll(main, "*", "")
	}

	id, name, _ := strings.Cut(main, ".")
	obj.ID = strings.TrimSpace(id)
	obj.Name = strings.TrimSpace(name)

	if bracketed == "" {
		return obj
	}
	if match := volumePattern.FindStringSubmatch(bracketed); match != nil {
		obj.Volume = &Volume{Level: match[1], Muted: match[2] != ""}
	} else {
		obj.Extra = bracketed
	}
	return obj
}

// splitBrackets separates the text before the first '[' from the content
// between it and the first ']'. An unclosed bracket keeps the rest verbatim.
func splitBrackets(line string) (string, string) {
	main, rest, found := strings.Cut(line, "[")
	if !found {
		return main, ""
	}
	if end := strings.Index(rest, "]"); end >= 0 {
		rest = rest[:end]
	}
	return main, rest
}

func cleanLine(line string) string {
	line = strings.ReplaceAll(line, groupDelimiter, "")
	line = strings.ReplaceAll(line, itemDelimiter, "")
	return strings.TrimSpace(line)
}

func cleanCategory(line string) string {
	return strings.ToLower(strings.ReplaceAll(cleanLine(line), ":", ""))
}
