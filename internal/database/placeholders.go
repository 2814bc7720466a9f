// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"regexp"
	"strings"
)

// maxPlaceholder returns the highest $n placeholder index in query.
// String literals, quoted identifiers, comments and dollar-quoted bodies
// are skipped, so '$1' inside a literal does not count.
func maxPlaceholder(query string) int {
	highest := 0
	n := len(query)

	for i := 0; i < n; i++ {
		c := query[i]
		switch {
		case c == '\'' || c == '"':
			i = skipQuoted(query, i, c)

		case c == '-' && i+1 < n && query[i+1] == '-':
			if j := strings.IndexByte(query[i:], '\n'); j >= 0 {
				i += j
			} else {
				i = n
			}

		case c == '/' && i+1 < n && query[i+1] == '*':
			if j := strings.Index(query[i+2:], "*/"); j >= 0 {
				i += j + 3
			} else {
				i = n
			}

		case c == '$':
			if i > 0 && isIdentChar(query[i-1]) {
				continue
			}
			if i+1 < n && isDigit(query[i+1]) {
				j := i + 1
				idx := 0
				for j < n && isDigit(query[j]) {
					idx = idx*10 + int(query[j]-'0')
					j++
				}
				if idx > highest {
					highest = idx
				}
				i = j - 1
				continue
			}
			if tag, ok := dollarTag(query, i); ok {
				if end := strings.Index(query[i+len(tag):], tag); end >= 0 {
					i += len(tag) + end + len(tag) - 1
				} else {
					i = n
				}
			}
		}
	}
	return highest
}

// skipQuoted returns the index of the closing quote starting at open.
// A doubled quote character is an escaped quote.
func skipQuoted(query string, open int, q byte) int {
	for j := open + 1; j < len(query); j++ {
		if query[j] != q {
			continue
		}
		if j+1 < len(query) && query[j+1] == q {
			j++
			continue
		}
		return j
	}
	return len(query)
}

// dollarTag recognises $$ and $tag$ openers at position i.
func dollarTag(query string, i int) (string, bool) {
	j := i + 1
	for j < len(query) && isIdentChar(query[j]) {
		j++
	}
	if j < len(query) && query[j] == '$' {
		if j > i+1 && isDigit(query[i+1]) {
			return "", false
		}
		return query[i : j+1], true
	}
	return "", false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentChar(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

var fromRelation = regexp.MustCompile(`(?i)\bfrom\s+("?[a-z_][a-z0-9_$]*"?(?:\."?[a-z_][a-z0-9_$]*"?)?)`)

// viewName returns the first relation named after FROM, without schema or
// quotes, for use as a bounded-cardinality metric label.
func viewName(query string) string {
	m := fromRelation.FindStringSubmatch(query)
	if m == nil {
		return "unknown"
	}
	name := m[1]
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.Trim(name, `"`)
}
