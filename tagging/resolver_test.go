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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTokenDefault(t *testing.T) {
	emissions, err := ResolveToken("dog/nn")
	assert.NoError(t, err)
	assert.Equal(t, []Emission{{Word: "dog", Tag: "nn"}}, emissions)
}

func TestResolveTokenNoSlash(t *testing.T) {
	emissions, err := ResolveToken("dog")
	assert.NoError(t, err)
	assert.Empty(t, emissions)
}

func TestResolveTokenEmpty(t *testing.T) {
	emissions, err := ResolveToken("")
	assert.NoError(t, err)
	assert.Empty(t, emissions)
}

func TestResolveTokenSharedTag(t *testing.T) {
	emissions, err := ResolveToken("and/or/cc")
	assert.NoError(t, err)
	assert.Equal(
		t,
		[]Emission{{Word: "and", Tag: "cc"}, {Word: "or", Tag: "cc"}},
		emissions,
	)
}

func TestResolveTokenSharedTagAlphaOnly(t *testing.T) {
	emissions, err := ResolveToken("input/output/nn")
	assert.NoError(t, err)
	assert.Equal(
		t,
		[]Emission{{Word: "input", Tag: "nn"}, {Word: "output", Tag: "nn"}},
		emissions,
	)
}

func TestResolveTokenMultiSlashNumeric(t *testing.T) {
	emissions, err := ResolveToken("1/2/cd")
	assert.NoError(t, err)
	assert.Equal(t, []Emission{{Word: "1/2", Tag: "cd"}}, emissions)
}

func TestResolveTokenLongerMultiSlashNumeric(t *testing.T) {
	emissions, err := ResolveToken("1/2/3/cd")
	assert.NoError(t, err)
	assert.Equal(t, []Emission{{Word: "1/2/3", Tag: "cd"}}, emissions)
}

func TestResolveTokenCompoundWord(t *testing.T) {
	emissions, err := ResolveToken("his/her/pp$")
	assert.NoError(t, err)
	assert.Equal(
		t,
		[]Emission{{Word: "his", Tag: "pp$"}, {Word: "her", Tag: "pp$"}},
		emissions,
	)
}

func TestResolveTokenPunctuationTag(t *testing.T) {
	emissions, err := ResolveToken("./.")
	assert.NoError(t, err)
	assert.Empty(t, emissions)
}

func TestResolveTokenDiscardedWord(t *testing.T) {
	emissions, err := ResolveToken("--/nn")
	assert.NoError(t, err)
	assert.Empty(t, emissions)
}

func TestResolveTokenEmptyTagPart(t *testing.T) {
	emissions, err := ResolveToken("dog/")
	assert.NoError(t, err)
	assert.Empty(t, emissions)
}

func TestResolveTokenEmptyWordPart(t *testing.T) {
	emissions, err := ResolveToken("/nn")
	assert.NoError(t, err)
	assert.Empty(t, emissions)
}
