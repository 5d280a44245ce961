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

// POSGroup is a coarse grammatical category several canonical
// Brown tags map onto.
type POSGroup string

const (
	GroupNoun  POSGroup = "NOUN"
	GroupVerb  POSGroup = "VERB"
	GroupAdj   POSGroup = "ADJ"
	GroupAdv   POSGroup = "ADV"
	GroupPron  POSGroup = "PRON"
	GroupDet   POSGroup = "DET"
	GroupAdp   POSGroup = "ADP"
	GroupConj  POSGroup = "CONJ"
	GroupNum   POSGroup = "NUM"
	GroupOther POSGroup = "OTHER"
)

func (g POSGroup) String() string {
	return string(g)
}

// groupTags lists, per group, the canonical (i.e. already cleaned)
// Brown tags belonging to it. Tags not listed anywhere (incl. `nil`)
// fall into GroupOther.
var groupTags = map[POSGroup][]string{
	GroupNoun: {"nn", "nns", "np", "nps", "nr", "nrs"},
	GroupVerb: {
		"vb", "vbd", "vbg", "vbn", "vbz",
		"be", "bed", "bedz", "beg", "bem", "ben", "ber", "bez",
		"do", "dod", "doz",
		"hv", "hvd", "hvg", "hvn", "hvz",
		"md",
	},
	GroupAdj: {"jj", "jjr", "jjs", "jjt"},
	GroupAdv: {"rb", "rbr", "rbt", "rn", "rp", "ql", "qlp", "wrb"},
	GroupPron: {
		"pn", "pn$", "pp$", "pp$$", "ppl", "ppls", "ppo", "pps", "ppss",
		"wp$", "wpo", "wps",
	},
	GroupDet:  {"at", "dt", "dti", "dts", "dtx", "wdt", "abn", "abx", "ap", "ap$"},
	GroupAdp:  {"in"},
	GroupConj: {"cc", "cs"},
	GroupNum:  {"cd", "od"},
}

var tagToGroup = func() map[string]POSGroup {
	ans := make(map[string]POSGroup)
	for group, tags := range groupTags {
		for _, tag := range tags {
			ans[tag] = group
		}
	}
	return ans
}()

// GroupOf returns the coarse grammatical category of a canonical tag.
// Unknown tags (incl. TagNil) map to GroupOther.
func GroupOf(tag string) POSGroup {
	if group, ok := tagToGroup[tag]; ok {
		return group
	}
	return GroupOther
}
