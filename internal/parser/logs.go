package parser

import (
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
)

// Color palette
var (
	cRed    = lipgloss.Color("196") // Red
	cYellow = lipgloss.Color("220") // Yellow
	cGray   = lipgloss.Color("240") // Gray

	// Target color palette for log prefixes
	targetColorPalette = []lipgloss.Color{
		lipgloss.Color("39"),  // Cyan
		lipgloss.Color("42"),  // Green
		lipgloss.Color("220"), // Yellow
		lipgloss.Color("201"), // Magenta
		lipgloss.Color("141"), // Purple
		lipgloss.Color("208"), // Orange
		lipgloss.Color("51"),  // Light Blue
		lipgloss.Color("82"),  // Light Green
		lipgloss.Color("213"), // Pink
		lipgloss.Color("228"), // Light Yellow
	}
)

// Regex patterns
var (
	logLevelRegex = regexp.MustCompile(`(?i)\b(FATAL|ERROR|ERR|WARN|WARNING|INFO|DEBUG|TRACE)\b`)
	ansiRegex     = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
)

// LogLineInfo contains parsed information from a log line
type LogLineInfo struct {
	OriginalLine string
	LogLevel     string // ERROR, WARN, INFO, DEBUG, etc.
	IsJSON       bool
}

// Sanitize strips ANSI escape sequences and collapses tabs and newlines
// to spaces so a raw container line renders as a single terminal row.
func Sanitize(line string) string {
	line = ansiRegex.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "\n", " ")
	line = strings.ReplaceAll(line, "\t", " ")
	return line
}

// ParseLogLine extracts level and format information from a log line
func ParseLogLine(line string) LogLineInfo {
	info := LogLineInfo{OriginalLine: line}

	// Structured JSON logs carry their level in a field
	trimmed := strings.TrimSpace(line)
	info.IsJSON = (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"))
	if info.IsJSON {
		for _, field := range []string{"level", "severity", "lvl"} {
			if v := gjson.Get(trimmed, field); v.Exists() {
				info.LogLevel = strings.ToUpper(v.String())
				return info
			}
		}
	}

	// Fall back to scanning for level keywords
	if matches := logLevelRegex.FindStringSubmatch(line); len(matches) > 1 {
		info.LogLevel = strings.ToUpper(matches[1])
	}

	return info
}

// GetTargetColor returns a consistent color for a target key using hash
func GetTargetColor(key string) lipgloss.Color {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(key))
	return targetColorPalette[hasher.Sum32()%uint32(len(targetColorPalette))]
}

// GetLogLevelColor returns the color for a log level
func GetLogLevelColor(level string) lipgloss.Color {
	normalized := strings.ToUpper(strings.TrimSpace(level))
	switch normalized {
	case "FATAL", "ERROR", "ERR":
		return cRed
	case "WARN", "WARNING":
		return cYellow
	case "INFO":
		return lipgloss.Color("39") // Cyan
	case "DEBUG":
		return cGray
	case "TRACE":
		return lipgloss.Color("238") // Darker gray
	default:
		return lipgloss.Color("255") // Default white
	}
}

// FormatTargetPrefix formats the "pod container" display prefix with the
// target's stable color
func FormatTargetPrefix(key, label string) string {
	style := lipgloss.NewStyle().Foreground(GetTargetColor(key)).Bold(true)
	return style.Render(label)
}

// ColorizeLogLevel applies color to log level keywords in a line
func ColorizeLogLevel(line string) string {
	matches := logLevelRegex.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return line
	}

	var result strings.Builder
	lastIndex := 0

	for _, match := range matches {
		start, end := match[0], match[1]

		// Write content before match
		result.WriteString(line[lastIndex:start])

		// Colorize the level
		level := line[start:end]
		color := GetLogLevelColor(level)
		style := lipgloss.NewStyle().Foreground(color).Bold(true)
		result.WriteString(style.Render(level))

		lastIndex = end
	}

	// Write remaining content
	result.WriteString(line[lastIndex:])
	return result.String()
}

// HighlightKeyword emphasizes every occurrence of keyword in line.
// Matching is case-sensitive and literal, like the filter itself.
func HighlightKeyword(line, keyword string) string {
	if keyword == "" || !strings.Contains(line, keyword) {
		return line
	}
	style := lipgloss.NewStyle().Background(cYellow).Foreground(lipgloss.Color("0"))
	return strings.ReplaceAll(line, keyword, style.Render(keyword))
}
