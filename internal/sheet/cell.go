package sheet

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// checkCellText rejects text excelize would truncate or rewrite.
func checkCellText(text string) error {
	if n := utf8.RuneCountInString(text); n > excelize.TotalCellChars {
		return fmt.Errorf(
			"text has %d characters, cell limit is %d",
			n,
			excelize.TotalCellChars,
		)
	}
	for i, r := range text {
		if !isXMLChar(r) {
			return fmt.Errorf("text has unsupported character %U at byte %d", r, i)
		}
	}
	return nil
}

// XML 1.0 Char production
func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
