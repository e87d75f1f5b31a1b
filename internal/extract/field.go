package extract

import "strings"

// ExtractLineField returns the trimmed remainder of the first line whose
// text starts with label, ignoring case and markdown bold markers.
func ExtractLineField(label string, lines []string) string {
	labelLower := strings.ToLower(label)
	for _, line := range lines {
		clean := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if strings.HasPrefix(strings.ToLower(clean), labelLower) {
			return strings.TrimSpace(clean[len(label):])
		}
	}
	return ""
}

// ExtractBlockField anchors on label like ExtractLineField, then collects
// the subsequent lines as the field body. Blank lines are skipped. A
// colon-terminated line ends the block, unless it is the line immediately
// after the anchor: LLM output often renders the first body line with a
// trailing colon, and that line still belongs to the block.
func ExtractBlockField(label string, lines []string) string {
	labelLower := strings.ToLower(label)
	for i, line := range lines {
		clean := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if !strings.HasPrefix(strings.ToLower(clean), labelLower) {
			continue
		}

		var block []string
		if rest := strings.TrimSpace(clean[len(label):]); rest != "" {
			block = append(block, rest)
		}
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(strings.ReplaceAll(lines[j], "**", ""))
			if next == "" {
				continue
			}
			if strings.HasSuffix(next, ":") && j > i+1 {
				break
			}
			block = append(block, next)
		}
		return strings.TrimSpace(strings.Join(block, "\n"))
	}
	return ""
}
