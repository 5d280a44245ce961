// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of BROWNFREQ.
//
//  BROWNFREQ is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  BROWNFREQ is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with BROWNFREQ.  If not, see <https://www.gnu.org/licenses/>.

package tagging

import (
	"regexp"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

// TagNil is the canonical tag used when a token carries no usable
// part-of-speech information (empty or explicit `nil` in the source data).
const TagNil = "nil"

var (
	punctTags = []string{".", ",", ":", ";", "(", ")", "\"", "'", "?", "!"}

	// matches a single -hl/-tl/-nc marker followed by another hyphen
	// or the end of the tag; the trailing separator is kept ($2) so
	// stacked markers (nn-hl-tl) remain strippable on the next pass
	tagMarkerRegexp = regexp.MustCompile(`-(hl|tl|nc)(-|$)`)
)

// CleanTag normalizes a raw Brown corpus part-of-speech tag into its
// canonical lowercase form. The second return value is false when the
// tag marks a token which must be dropped entirely (punctuation tags
// and tags containing the `*` negation marker).
//
// The cleaning steps, in order:
//  1. empty input or `nil` yields TagNil
//  2. punctuation tags and tags with `*` are discarded
//  3. -hl, -tl, -nc markers are stripped, repeatedly, wherever they
//     are followed by another hyphen or the end of the tag
//  4. one of the fw-, nc-, np- prefixes is removed
//  5. for compound tags, only the part before the first `+` is kept
//  6. anything after a remaining hyphen is dropped
func CleanTag(tag string) (string, bool) {
	if tag == "" || tag == TagNil {
		return TagNil, true
	}
	tag = strings.ToLower(tag)
	if collections.SliceContains(punctTags, tag) || strings.Contains(tag, "*") {
		return "", false
	}
	for tagMarkerRegexp.MatchString(tag) {
		tag = tagMarkerRegexp.ReplaceAllString(tag, "${2}")
	}
	for _, prefix := range []string{"fw-", "nc-", "np-"} {
		if strings.HasPrefix(tag, prefix) {
			tag = tag[len(prefix):]
			break
		}
	}
	if idx := strings.Index(tag, "+"); idx > -1 {
		tag = tag[:idx]
	}
	if idx := strings.Index(tag, "-"); idx > -1 {
		tag = tag[:idx]
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return TagNil, true
	}
	return tag, true
}
