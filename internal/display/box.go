// Package display holds small terminal-formatting helpers shared by the
// CLI commands.
package display

import (
	"fmt"
	"strings"
)

// SummaryBox renders title and lines inside a double-ruled ASCII box,
// sized to the longest line.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("╚%s╝", border))

	return sb.String()
}
