package services

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var nonDigits = regexp.MustCompile(`\D`)

// stripHTML drops markup and returns the concatenated text content.
func stripHTML(s string) string {

	if !strings.ContainsRune(s, '<') {
		return s
	}

	var builder strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}
		if tokenType == html.TextToken {
			builder.Write(tokenizer.Text())
		}
	}
	return builder.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// parseSalary keeps only the digits of a possibly formatted salary string
// and parses them as one integer; absent or unparseable input yields 0.
func parseSalary(s string) int {
	digits := nonDigits.ReplaceAllString(s, "")
	if digits == "" {
		return 0
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return value
}
