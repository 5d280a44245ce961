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
	"unicode"
)

var (
	numRangeRegexp = regexp.MustCompile(`^\d+(?:-\d+)+$`)
	fractionRegexp = regexp.MustCompile(`^\d+/\d+$`)
)

func isPunctOnly(word string) bool {
	for _, ch := range word {
		if !unicode.IsPunct(ch) && !unicode.IsSymbol(ch) {
			return false
		}
	}
	return true
}

// CleanWord normalizes the word part of a tagged token. The second
// return value is false when the word must be dropped (empty after
// stripping or consisting solely of punctuation).
//
// Numeric ranges (1940-50), hyphenated compounds not ending with a
// dangling hyphen, and simple fractions (3/4) are kept verbatim.
// A trailing possessive marker ('s) is removed.
func CleanWord(word string) (string, bool) {
	word = strings.Trim(word, `'" `)
	word = strings.TrimSuffix(word, "'s")
	if word == "" || isPunctOnly(word) {
		return "", false
	}
	if strings.Contains(word, "-") {
		if numRangeRegexp.MatchString(word) {
			return word, true
		}
		if !strings.HasSuffix(word, "-") {
			return word, true
		}
	}
	if fractionRegexp.MatchString(word) {
		return word, true
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	return word, true
}

// IsPureWord tests whether a canonical word consists of letters only.
// Such words form the "words only" view of the final counts.
func IsPureWord(word string) bool {
	if word == "" {
		return false
	}
	for _, ch := range word {
		if !unicode.IsLetter(ch) {
			return false
		}
	}
	return true
}
