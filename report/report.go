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

// Package report turns final counters into the user-facing outputs:
// key-sorted JSON files and a console statistics block.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"brownfreq/results"
)

const (
	wordPosCountsFile    = "word_pos_counts.json"
	wordsOnlyCountsFile  = "words_only_counts.json"
	posTotalCountsFile   = "pos_total_counts.json"
	groupedPosCountsFile = "grouped_pos_counts.json"
)

func writeJSONFile(dir, name string, value any) error {
	rawData, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, rawData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	log.Info().Str("file", path).Msg("saved counts")
	return nil
}

// WriteJSON persists all result mappings into outputDir. Map keys are
// sorted by encoding/json so the files are stable between runs.
func WriteJSON(outputDir string, counts *results.CorpusCounts) error {
	if err := writeJSONFile(outputDir, wordPosCountsFile, counts.Words); err != nil {
		return err
	}
	if err := writeJSONFile(outputDir, wordsOnlyCountsFile, counts.WordsOnly()); err != nil {
		return err
	}
	if err := writeJSONFile(outputDir, posTotalCountsFile, counts.Tags); err != nil {
		return err
	}
	return writeJSONFile(outputDir, groupedPosCountsFile, counts.Groups)
}

// PrintSummary writes the corpus statistics block to stdout.
func PrintSummary(counts *results.CorpusCounts, summary *results.RunSummary) {
	fmt.Println("\nCorpus Statistics:")
	fmt.Println("\nTotal number of words (including repetitions):")
	fmt.Printf("  - all tuples: %d\n", summary.TotalOccurrences)
	fmt.Printf("  - pure words only: %d\n", summary.PureWordOccurrences)
	fmt.Println("\nTotal number of distinct words:")
	fmt.Printf("  - all tuples: %d\n", summary.NumDistinctWords)
	fmt.Printf("  - pure words only: %d\n", summary.NumDistinctPureWords)
	fmt.Printf("\nTotal number of distinct parts of speech: %d\n", summary.NumDistinctTags)

	fmt.Println("\nOccurrences for each part of speech:")
	for _, item := range counts.TagsByFreq() {
		fmt.Printf("%s: %d\n", item.Tag, item.Freq)
	}

	total := summary.TotalOccurrences
	fmt.Println("\nOccurrences for each grammatical category:")
	for _, item := range counts.GroupsByFreq() {
		var share float64
		if total > 0 {
			share = results.NormRound(float64(item.Freq) / float64(total) * 100)
		}
		fmt.Printf("%s: %d (%v%%)\n", item.Group, item.Freq, share)
	}
}
