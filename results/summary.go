// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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
	"encoding/json"
	"math"
	"time"
)

// RunSummary wraps derived scalar statistics of a finished run along
// with basic run metadata. It is computed once from CorpusCounts and
// never touches the raw corpus again.
type RunSummary struct {
	RunID                string    `json:"runId"`
	Begin                time.Time `json:"begin"`
	End                  time.Time `json:"end"`
	NumFiles             int       `json:"numFiles"`
	NumFailedFiles       int       `json:"numFailedFiles"`
	NumFailedTokens      int       `json:"numFailedTokens"`
	TotalOccurrences     int       `json:"totalOccurrences"`
	PureWordOccurrences  int       `json:"pureWordOccurrences"`
	NumDistinctWords     int       `json:"numDistinctWords"`
	NumDistinctPureWords int       `json:"numDistinctPureWords"`
	NumDistinctTags      int       `json:"numDistinctTags"`
	NumDistinctGroups    int       `json:"numDistinctGroups"`
}

func (rs *RunSummary) ToJSON() (string, error) {
	ans, err := json.Marshal(rs)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

// NewRunSummary derives the report statistics from final counters.
func NewRunSummary(
	runID string,
	counts *CorpusCounts,
	begin, end time.Time,
	numFiles, numFailedFiles, numFailedTokens int,
) *RunSummary {
	return &RunSummary{
		RunID:                runID,
		Begin:                begin,
		End:                  end,
		NumFiles:             numFiles,
		NumFailedFiles:       numFailedFiles,
		NumFailedTokens:      numFailedTokens,
		TotalOccurrences:     counts.TotalOccurrences(),
		PureWordOccurrences:  counts.PureWordOccurrences(),
		NumDistinctWords:     counts.NumDistinctWords(),
		NumDistinctPureWords: counts.NumDistinctPureWords(),
		NumDistinctTags:      counts.NumDistinctTags(),
		NumDistinctGroups:    len(counts.Groups),
	}
}

// NormRound performs a normalized rounding to
// the three decimal places so we can provide
// consistent rounding across all the results
func NormRound(val float64) float64 {
	return math.Round(val*1000) / 1000
}
