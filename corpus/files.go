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
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/czcorpus/cnc-gokit/fs"

	"brownfreq/merror"
)

// Brown corpus data files are named like ca01, cj65 - a `c`,
// a genre letter and a two-digit sequence number
var corpusFileRegexp = regexp.MustCompile(`^c[a-z]\d{2}$`)

// IsCorpusFile tests whether a file name (without path) looks like
// a Brown corpus data file.
func IsCorpusFile(name string) bool {
	return corpusFileRegexp.MatchString(name)
}

// ScanDir lists corpus data files in a directory, sorted by name.
// A non-existing directory produces merror.MissingDirectoryError.
func ScanDir(dir string) ([]string, error) {
	if !fs.PathExists(dir) {
		return nil, merror.MissingDirectoryError{Path: dir}
	}
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, merror.MissingDirectoryError{Path: dir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var ans []string
	for _, entry := range entries {
		if !entry.IsDir() && IsCorpusFile(entry.Name()) {
			ans = append(ans, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(ans)
	return ans, nil
}

// ReadFile loads the whole contents of a single corpus file.
// Read failures are wrapped as merror.FileReadError so callers
// can skip the file and keep the run going.
func ReadFile(path string) (string, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return "", merror.FileReadError{Path: path, Msg: err.Error()}
	}
	return string(rawData), nil
}
