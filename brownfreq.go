// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"brownfreq/analyzer"
	"brownfreq/cnf"
	"brownfreq/general"
	"brownfreq/report"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runAnalyze(conf *cnf.Conf) {
	runID := uuid.New().String()
	log.Logger = log.Logger.With().Str("runId", runID).Logger()

	ana := analyzer.NewAnalyzer(conf, runID)
	counts, summary := ana.Run()

	if err := report.WriteJSON(conf.OutputDir, counts); err != nil {
		log.Fatal().Err(err).Msg("failed to save results")
		return
	}
	report.PrintSummary(counts, summary)
	log.Info().
		Int("numFiles", summary.NumFiles).
		Int("numFailedFiles", summary.NumFailedFiles).
		Int("numFailedTokens", summary.NumFailedTokens).
		Dur("procTime", summary.End.Sub(summary.Begin)).
		Msg("finished run")
}

func main() {
	version := general.VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "BROWNFREQ - a Brown corpus POS frequency analyzer\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] analyze [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("brownfreq %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(logging.LoggingConf{
		Path:  conf.LogFile,
		Level: conf.LogLevel,
	})

	switch action {
	case "test":
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
	case "analyze":
		log.Info().Msg("Starting BROWNFREQ")
		cnf.ValidateAndDefaults(conf)
		runAnalyze(conf)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
