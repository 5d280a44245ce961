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
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltNumWorkers = 1
	dfltOutputDir  = "."
)

// Conf is a global configuration of the app
type Conf struct {
	CorpusDir     string           `json:"corpusDir"`
	StopwordsFile string           `json:"stopwordsFile"`
	OutputDir     string           `json:"outputDir"`
	NumWorkers    int              `json:"numWorkers"`
	CaseSensitive bool             `json:"caseSensitive"`
	LogFile       string           `json:"logFile"`
	LogLevel      logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.CorpusDir == "" {
		log.Fatal().Msg("corpusDir not specified")
		return
	}
	if conf.NumWorkers == 0 {
		conf.NumWorkers = dfltNumWorkers
		log.Warn().Msgf(
			"numWorkers not specified, using default: %d",
			dfltNumWorkers,
		)
	}
	if conf.NumWorkers < 0 {
		log.Fatal().Msg("numWorkers must be a positive number")
		return
	}
	if conf.OutputDir == "" {
		conf.OutputDir = dfltOutputDir
		log.Warn().
			Str("outputDir", dfltOutputDir).
			Msg("outputDir not set, using current directory")
	}
	if conf.CaseSensitive {
		log.Warn().Msg(
			"caseSensitive mode enabled - tag matching expects lowercase input data",
		)
	}
}
