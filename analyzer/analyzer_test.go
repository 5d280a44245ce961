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

package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"brownfreq/cnf"
	"brownfreq/results"
	"brownfreq/tagging"
)

func mkCorpusDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		assert.NoError(t, err)
	}
	return dir
}

func TestRunSingleFile(t *testing.T) {
	dir := mkCorpusDir(t, map[string]string{
		"ca01": "the/at dog/nn barks/vbz ./. ",
	})
	conf := &cnf.Conf{CorpusDir: dir, NumWorkers: 1}
	ana := NewAnalyzer(conf, "test-run")
	counts, summary := ana.Run()

	assert.Equal(
		t,
		results.WordPosCounts{
			"the":   {"at": 1},
			"dog":   {"nn": 1},
			"barks": {"vbz": 1},
		},
		counts.Words,
	)
	assert.Equal(
		t,
		results.PosTotalCounts{"at": 1, "nn": 1, "vbz": 1},
		counts.Tags,
	)
	assert.Equal(
		t,
		results.GroupedPosCounts{
			tagging.GroupDet:  1,
			tagging.GroupNoun: 1,
			tagging.GroupVerb: 1,
		},
		counts.Groups,
	)
	assert.Equal(t, 1, summary.NumFiles)
	assert.Equal(t, 0, summary.NumFailedFiles)
	assert.Equal(t, 0, summary.NumFailedTokens)
	assert.Equal(t, 3, summary.TotalOccurrences)
}

func TestRunLowercasesInput(t *testing.T) {
	dir := mkCorpusDir(t, map[string]string{
		"ca01": "The/AT Dog/NN-TL",
	})
	conf := &cnf.Conf{CorpusDir: dir, NumWorkers: 1}
	ana := NewAnalyzer(conf, "test-run")
	counts, _ := ana.Run()

	assert.Equal(t, 1, counts.Words["the"]["at"])
	assert.Equal(t, 1, counts.Words["dog"]["nn"])
}

func TestRunSharedTagToken(t *testing.T) {
	dir := mkCorpusDir(t, map[string]string{
		"ca01": "and/or/cc",
	})
	conf := &cnf.Conf{CorpusDir: dir, NumWorkers: 1}
	ana := NewAnalyzer(conf, "test-run")
	counts, _ := ana.Run()

	assert.Equal(t, 1, counts.Words["and"]["cc"])
	assert.Equal(t, 1, counts.Words["or"]["cc"])
	assert.Equal(t, 2, counts.Tags["cc"])
}

func TestRunIgnoresNonCorpusFiles(t *testing.T) {
	dir := mkCorpusDir(t, map[string]string{
		"ca01":   "dog/nn",
		"README": "cat/nn cat/nn cat/nn",
	})
	conf := &cnf.Conf{CorpusDir: dir, NumWorkers: 1}
	ana := NewAnalyzer(conf, "test-run")
	counts, summary := ana.Run()

	assert.Equal(t, 1, summary.NumFiles)
	assert.Equal(t, 1, counts.TotalOccurrences())
}

func TestRunMissingDir(t *testing.T) {
	conf := &cnf.Conf{
		CorpusDir:  filepath.Join(t.TempDir(), "nope"),
		NumWorkers: 1,
	}
	ana := NewAnalyzer(conf, "test-run")
	counts, summary := ana.Run()

	assert.Equal(t, 0, summary.NumFiles)
	assert.Equal(t, 0, counts.TotalOccurrences())
}

func TestRunParallelMatchesSequential(t *testing.T) {
	files := map[string]string{
		"ca01": "the/at dog/nn barks/vbz and/or/cc 1/2/cd",
		"ca02": "the/at cat/nn sleeps/vbz john's/np$ ./.",
		"cb03": "a/at well-known/jj fact/nn is/bez nn-hl-tl/nil",
	}
	seqConf := &cnf.Conf{CorpusDir: mkCorpusDir(t, files), NumWorkers: 1}
	parConf := &cnf.Conf{CorpusDir: mkCorpusDir(t, files), NumWorkers: 3}

	seqCounts, _ := NewAnalyzer(seqConf, "seq-run").Run()
	parCounts, _ := NewAnalyzer(parConf, "par-run").Run()

	assert.Equal(t, seqCounts.Words, parCounts.Words)
	assert.Equal(t, seqCounts.Tags, parCounts.Tags)
	assert.Equal(t, seqCounts.Groups, parCounts.Groups)
}

func TestProcessContentTokensWithoutSlash(t *testing.T) {
	conf := &cnf.Conf{CorpusDir: ".", NumWorkers: 1}
	ana := NewAnalyzer(conf, "test-run")
	cc := results.NewCorpusCounts()
	numFailed := ana.ProcessContent("stray ; tokens without tags", cc)

	assert.Equal(t, 0, numFailed)
	assert.Equal(t, 0, cc.TotalOccurrences())
}

func TestStopwordsLoadedButNotApplied(t *testing.T) {
	dir := mkCorpusDir(t, map[string]string{
		"ca01": "the/at dog/nn",
	})
	stopPath := filepath.Join(t.TempDir(), "stopwords.txt")
	err := os.WriteFile(stopPath, []byte("the\n"), 0644)
	assert.NoError(t, err)

	conf := &cnf.Conf{CorpusDir: dir, StopwordsFile: stopPath, NumWorkers: 1}
	ana := NewAnalyzer(conf, "test-run")
	counts, _ := ana.Run()

	assert.True(t, ana.Stopwords().Contains("the"))
	// the stopword list is a configuration hook only - counts still include "the"
	assert.Equal(t, 1, counts.Words["the"]["at"])
}
