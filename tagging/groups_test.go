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

func TestGroupOfKnownTags(t *testing.T) {
	assert.Equal(t, GroupNoun, GroupOf("nn"))
	assert.Equal(t, GroupVerb, GroupOf("vbz"))
	assert.Equal(t, GroupVerb, GroupOf("bez"))
	assert.Equal(t, GroupAdj, GroupOf("jjr"))
	assert.Equal(t, GroupAdv, GroupOf("rb"))
	assert.Equal(t, GroupPron, GroupOf("ppss"))
	assert.Equal(t, GroupDet, GroupOf("at"))
	assert.Equal(t, GroupAdp, GroupOf("in"))
	assert.Equal(t, GroupConj, GroupOf("cc"))
	assert.Equal(t, GroupNum, GroupOf("cd"))
}

func TestGroupOfUnknownTag(t *testing.T) {
	assert.Equal(t, GroupOther, GroupOf("uh"))
	assert.Equal(t, GroupOther, GroupOf("xyz"))
}

func TestGroupOfNil(t *testing.T) {
	assert.Equal(t, GroupOther, GroupOf(TagNil))
}

func TestGroupTableHasNoDuplicates(t *testing.T) {
	var numTags int
	for _, tags := range groupTags {
		numTags += len(tags)
	}
	assert.Equal(t, numTags, len(tagToGroup))
}
