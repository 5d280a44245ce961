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

	"brownfreq/merror"
)

// Emission is a single canonical (word, tag) pair produced from
// a raw corpus token. One token may yield zero, one or several
// emissions.
type Emission struct {
	Word string
	Tag  string
}

var (
	// two words sharing one tag, e.g. and/or/cc, input/output/nn
	sharedTagRegexp = regexp.MustCompile(`^[a-z]+/[a-z]+/[a-z]+$`)

	// slash-joined digit groups with a trailing alphabetic tag, e.g. 1/2/cd
	multiNumRegexp = regexp.MustCompile(`^\d+(?:/\d+)+/[a-z]+$`)
)

// ResolveToken decodes one whitespace-delimited raw corpus token into
// its canonical (word, tag) emissions. Tokens without a slash carry no
// tag and are ignored. The caller is expected to hand in lowercased
// input (whole-file lowercasing happens at ingestion).
//
// Token shapes are tried in a fixed order and the first matching one
// wins: shared-tag (two words, one tag), multi-slash numeric word,
// compound word (embedded slash which is not a fraction), and finally
// the plain word/tag split on the last slash.
//
// A panic while decoding a single token is converted to
// a merror.TokenResolutionError so one malformed token cannot abort
// a whole run.
func ResolveToken(token string) (ans []Emission, err error) {
	defer func() {
		if r := recover(); r != nil {
			ans = nil
			err = merror.TokenResolutionError{
				Token: token,
				Msg:   merror.PanicValueToErr(r).Error(),
			}
		}
	}()

	if token == "" || !strings.Contains(token, "/") {
		return nil, nil
	}

	if sharedTagRegexp.MatchString(token) {
		parts := strings.Split(token, "/")
		tag, ok := CleanTag(parts[len(parts)-1])
		if !ok {
			return nil, nil
		}
		for _, rawWord := range parts[:len(parts)-1] {
			if word, ok := CleanWord(rawWord); ok {
				ans = append(ans, Emission{Word: word, Tag: tag})
			}
		}
		return ans, nil
	}

	var rawWord, rawTag string
	if multiNumRegexp.MatchString(token) {
		parts := strings.Split(token, "/")
		rawWord = strings.Join(parts[:len(parts)-1], "/")
		rawTag = parts[len(parts)-1]

	} else {
		idx := strings.LastIndex(token, "/")
		rawWord, rawTag = token[:idx], token[idx+1:]
	}
	if rawWord == "" || rawTag == "" {
		return nil, nil
	}

	tag, ok := CleanTag(rawTag)
	if !ok {
		return nil, nil
	}

	if strings.Contains(rawWord, "/") && !fractionRegexp.MatchString(rawWord) && !multiNumRegexp.MatchString(token) {
		for _, part := range strings.Split(rawWord, "/") {
			if word, ok := CleanWord(part); ok {
				ans = append(ans, Emission{Word: word, Tag: tag})
			}
		}
		return ans, nil
	}

	word, ok := CleanWord(rawWord)
	if !ok {
		return nil, nil
	}
	return []Emission{{Word: word, Tag: tag}}, nil
}
