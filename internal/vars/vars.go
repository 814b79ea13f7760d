// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package vars provides helpers over prompt template content.
package vars

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// variablePattern matches {{variable_name}} placeholders.
var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Extract returns the template variable names found in the content, in
// order of appearance. Duplicates are kept as they occur.
func Extract(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// ValidContent reports whether prompt content is substantial enough to
// store: not blank and at least 10 characters once trimmed.
func ValidContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	return utf8.RuneCountInString(trimmed) >= 10
}
