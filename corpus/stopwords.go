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

package corpus

import (
	"bufio"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"brownfreq/merror"
)

// LoadStopwords reads a stopword list file - one word per line, blank
// lines ignored. The list is a configuration hook kept for compatibility
// with older report tooling; the cleaning rules do not consult it.
func LoadStopwords(path string) (*collections.Set[string], error) {
	ans := collections.NewSet[string]()
	if path == "" {
		return ans, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, merror.FileReadError{Path: path, Msg: err.Error()}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			ans.Add(strings.ToLower(word))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, merror.FileReadError{Path: path, Msg: err.Error()}
	}
	return ans, nil
}
