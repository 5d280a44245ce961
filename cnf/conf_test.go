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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(
		path,
		[]byte(`{"corpusDir": "/data/brown", "numWorkers": 4, "logLevel": "debug"}`),
		0644,
	)
	assert.NoError(t, err)

	conf := LoadConfig(path)
	assert.Equal(t, "/data/brown", conf.CorpusDir)
	assert.Equal(t, 4, conf.NumWorkers)
	assert.True(t, conf.IsDebugMode())
	assert.Equal(t, path, conf.GetSourcePath())
}

func TestValidateAndDefaults(t *testing.T) {
	conf := &Conf{CorpusDir: "/data/brown"}
	ValidateAndDefaults(conf)
	assert.Equal(t, 1, conf.NumWorkers)
	assert.Equal(t, ".", conf.OutputDir)
}
