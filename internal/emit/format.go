package emit

import (
	"fmt"
	"regexp"
	"strings"
)

// Letters permitted for list markers and sub-clauses by GOST R 2.105-2019
// (ё, з-lookalikes and soft/hard signs are excluded by the standard).
var subclauseLetters = []rune("абвгдежзиклмнопрстуфхцчшщэюя")

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// subclauseLetter returns the marker letter for a 0-based index, or a
// bracketed ordinal past the end of the alphabet.
func subclauseLetter(index int) string {
	if index >= 0 && index < len(subclauseLetters) {
		return string(subclauseLetters[index])
	}
	return fmt.Sprintf("[%d]", index+1)
}

func hasTerminalPunct(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	switch runes[len(runes)-1] {
	case ';', '.', ':':
		return true
	}
	return false
}

// formatListItem renders one list item with its marker and trailing
// punctuation: mid-list items end with a semicolon, the last with a full
// stop, unless the text already carries terminal punctuation.
func formatListItem(text string, index int, style string, last bool) string {
	text = strings.TrimSpace(text)

	if style == "no_bullet" {
		if !hasTerminalPunct(text) && text != "" {
			return text + "."
		}
		return text
	}

	var marker string
	switch style {
	case "alpha":
		marker = subclauseLetter(index) + ") "
	case "numeric":
		marker = fmt.Sprintf("%d) ", index+1)
	case "roman":
		if index < len(romanNumerals) {
			marker = romanNumerals[index] + ") "
		} else {
			marker = fmt.Sprintf("[%d]) ", index+1)
		}
	default: // bullet and anything unknown
		marker = "– "
	}

	if hasTerminalPunct(text) {
		return marker + text
	}
	delim := ";"
	if last {
		delim = "."
	}
	return marker + text + delim
}

var sizePattern = regexp.MustCompile(`^([\d.]+)(\D*)$`)

// scaleSize multiplies a unit-suffixed size ("12cm") by a factor, keeping
// the unit. Unparseable sizes are returned unchanged.
func scaleSize(size string, factor float64) string {
	size = strings.TrimSpace(size)
	g := sizePattern.FindStringSubmatch(size)
	if g == nil {
		return size
	}
	var value float64
	if _, err := fmt.Sscanf(g[1], "%f", &value); err != nil {
		return size
	}
	unit := g[2]
	if unit == "" {
		unit = "cm"
	}
	scaled := value * factor
	switch unit {
	case "pt", "px":
		return fmt.Sprintf("%.1f%s", scaled, unit)
	default:
		return fmt.Sprintf("%.2f%s", scaled, unit)
	}
}
