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

package results

import (
	"sort"

	"brownfreq/tagging"
)

// WordPosCounts maps canonical word -> canonical tag -> number
// of occurrences.
type WordPosCounts map[string]map[string]int

// PosTotalCounts maps canonical tag -> number of occurrences
// across all words.
type PosTotalCounts map[string]int

// GroupedPosCounts maps a coarse grammatical category -> number
// of occurrences attributed to it.
type GroupedPosCounts map[tagging.POSGroup]int

// CorpusCounts aggregates the three counters maintained during a run.
// All updates are increments; once a run finishes the value is only read.
type CorpusCounts struct {
	Words  WordPosCounts
	Tags   PosTotalCounts
	Groups GroupedPosCounts
}

func NewCorpusCounts() *CorpusCounts {
	return &CorpusCounts{
		Words:  make(WordPosCounts),
		Tags:   make(PosTotalCounts),
		Groups: make(GroupedPosCounts),
	}
}

// Add records one occurrence of a canonical (word, tag) pair.
func (cc *CorpusCounts) Add(word, tag string) {
	posCounts, ok := cc.Words[word]
	if !ok {
		posCounts = make(map[string]int)
		cc.Words[word] = posCounts
	}
	posCounts[tag]++
	cc.Tags[tag]++
	cc.Groups[tagging.GroupOf(tag)]++
}

// MergeWith sums counters from another instance into the receiver.
// All operations are plain additions so merging worker-local counters
// in any order yields the same result.
func (cc *CorpusCounts) MergeWith(other *CorpusCounts) {
	for word, posCounts := range other.Words {
		dst, ok := cc.Words[word]
		if !ok {
			dst = make(map[string]int, len(posCounts))
			cc.Words[word] = dst
		}
		for tag, num := range posCounts {
			dst[tag] += num
		}
	}
	for tag, num := range other.Tags {
		cc.Tags[tag] += num
	}
	for group, num := range other.Groups {
		cc.Groups[group] += num
	}
}

// TotalOccurrences returns the number of all recorded (word, tag)
// occurrences, i.e. the corpus size after cleaning.
func (cc *CorpusCounts) TotalOccurrences() int {
	var ans int
	for _, num := range cc.Tags {
		ans += num
	}
	return ans
}

// PureWordOccurrences returns the number of occurrences belonging to
// purely alphabetic words.
func (cc *CorpusCounts) PureWordOccurrences() int {
	var ans int
	for word, posCounts := range cc.Words {
		if !tagging.IsPureWord(word) {
			continue
		}
		for _, num := range posCounts {
			ans += num
		}
	}
	return ans
}

func (cc *CorpusCounts) NumDistinctWords() int {
	return len(cc.Words)
}

func (cc *CorpusCounts) NumDistinctPureWords() int {
	var ans int
	for word := range cc.Words {
		if tagging.IsPureWord(word) {
			ans++
		}
	}
	return ans
}

func (cc *CorpusCounts) NumDistinctTags() int {
	return len(cc.Tags)
}

// WordsOnly returns a view of Words filtered to purely alphabetic
// words (no digits, no punctuation).
func (cc *CorpusCounts) WordsOnly() WordPosCounts {
	ans := make(WordPosCounts)
	for word, posCounts := range cc.Words {
		if tagging.IsPureWord(word) {
			ans[word] = posCounts
		}
	}
	return ans
}

// TagFreq is a single row of the per-tag frequency report.
type TagFreq struct {
	Tag  string `json:"tag"`
	Freq int    `json:"freq"`
}

// TagsByFreq returns per-tag totals sorted by descending frequency
// (ties resolved alphabetically to keep the report stable).
func (cc *CorpusCounts) TagsByFreq() []TagFreq {
	ans := make([]TagFreq, 0, len(cc.Tags))
	for tag, num := range cc.Tags {
		ans = append(ans, TagFreq{Tag: tag, Freq: num})
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Freq == ans[j].Freq {
			return ans[i].Tag < ans[j].Tag
		}
		return ans[i].Freq > ans[j].Freq
	})
	return ans
}

// GroupFreq is a single row of the grouped-category report.
type GroupFreq struct {
	Group tagging.POSGroup `json:"group"`
	Freq  int              `json:"freq"`
}

// GroupsByFreq returns grouped totals sorted by descending frequency.
func (cc *CorpusCounts) GroupsByFreq() []GroupFreq {
	ans := make([]GroupFreq, 0, len(cc.Groups))
	for group, num := range cc.Groups {
		ans = append(ans, GroupFreq{Group: group, Freq: num})
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Freq == ans[j].Freq {
			return ans[i].Group < ans[j].Group
		}
		return ans[i].Freq > ans[j].Freq
	})
	return ans
}
