// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
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

package analyzer

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"brownfreq/cnf"
	"brownfreq/corpus"
	"brownfreq/merror"
	"brownfreq/results"
	"brownfreq/tagging"
)

// Analyzer drives cleaning and aggregation over a corpus directory.
// It owns no counter state itself - each run produces a fresh
// results.CorpusCounts (parallel runs use worker-local instances
// merged afterwards, all counter updates being plain additions).
type Analyzer struct {
	conf  *cnf.Conf
	runID string

	// tokenCache memoizes resolved tokens; the token vocabulary is
	// small compared to the token stream so the hit rate is high
	tokenCache *cache.Cache

	stopwords *collections.Set[string]
}

// partial is what a single worker contributes to the final result.
type partial struct {
	counts          *results.CorpusCounts
	numFailedFiles  int
	numFailedTokens int
}

func (a *Analyzer) Stopwords() *collections.Set[string] {
	return a.stopwords
}

func (a *Analyzer) resolveToken(token string) ([]tagging.Emission, error) {
	if v, ok := a.tokenCache.Get(token); ok {
		return v.([]tagging.Emission), nil
	}
	emissions, err := tagging.ResolveToken(token)
	if err != nil {
		return nil, err
	}
	a.tokenCache.Set(token, emissions, cache.NoExpiration)
	return emissions, nil
}

// ProcessContent cleans and aggregates all tokens of a single file's
// contents into cc. Tokens which cannot be resolved are logged and
// skipped; the number of such tokens is returned.
func (a *Analyzer) ProcessContent(content string, cc *results.CorpusCounts) int {
	if !a.conf.CaseSensitive {
		content = strings.ToLower(content)
	}
	var numFailed int
	for _, token := range strings.Fields(content) {
		emissions, err := a.resolveToken(token)
		if err != nil {
			log.Error().Err(err).Str("token", token).Msg("skipping token")
			numFailed++
			continue
		}
		for _, em := range emissions {
			cc.Add(em.Word, em.Tag)
		}
	}
	return numFailed
}

func (a *Analyzer) processFile(path string, p *partial) {
	content, err := corpus.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("skipping file")
		p.numFailedFiles++
		return
	}
	p.numFailedTokens += a.ProcessContent(content, p.counts)
}

func (a *Analyzer) runSequential(files []string) partial {
	ans := partial{counts: results.NewCorpusCounts()}
	for _, path := range files {
		a.processFile(path, &ans)
	}
	return ans
}

func (a *Analyzer) runParallel(files []string) partial {
	jobs := make(chan string)
	partials := make(chan partial, a.conf.NumWorkers)
	var wg sync.WaitGroup
	wg.Add(a.conf.NumWorkers)
	for i := 0; i < a.conf.NumWorkers; i++ {
		go func() {
			defer wg.Done()
			p := partial{counts: results.NewCorpusCounts()}
			for path := range jobs {
				a.processFile(path, &p)
			}
			partials <- p
		}()
	}
	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(partials)

	ans := partial{counts: results.NewCorpusCounts()}
	for p := range partials {
		ans.counts.MergeWith(p.counts)
		ans.numFailedFiles += p.numFailedFiles
		ans.numFailedTokens += p.numFailedTokens
	}
	return ans
}

// Run processes all corpus data files found in the configured
// directory and returns the final counters along with derived run
// statistics. A missing corpus directory is reported and yields
// an empty (but valid) result.
func (a *Analyzer) Run() (*results.CorpusCounts, *results.RunSummary) {
	begin := time.Now()

	files, err := corpus.ScanDir(a.conf.CorpusDir)
	if err != nil {
		var mdErr merror.MissingDirectoryError
		if errors.As(err, &mdErr) {
			log.Error().Err(err).Msg("nothing to process")

		} else {
			log.Error().Err(err).Str("dir", a.conf.CorpusDir).Msg("failed to scan corpus directory")
		}
		files = nil
	}
	log.Info().Int("numFiles", len(files)).Msg("processing corpus files")

	if a.conf.StopwordsFile != "" {
		a.stopwords, err = corpus.LoadStopwords(a.conf.StopwordsFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to load stopwords, continuing without them")
			a.stopwords = collections.NewSet[string]()

		} else {
			// the stopword list is loaded for report tooling only,
			// cleaning rules do not apply it
			log.Info().Int("numStopwords", a.stopwords.Size()).Msg("loaded stopword list")
		}
	}

	var ans partial
	if a.conf.NumWorkers > 1 {
		ans = a.runParallel(files)

	} else {
		ans = a.runSequential(files)
	}

	summary := results.NewRunSummary(
		a.runID,
		ans.counts,
		begin,
		time.Now(),
		len(files),
		ans.numFailedFiles,
		ans.numFailedTokens,
	)
	return ans.counts, summary
}

func NewAnalyzer(conf *cnf.Conf, runID string) *Analyzer {
	return &Analyzer{
		conf:       conf,
		runID:      runID,
		tokenCache: cache.New(cache.NoExpiration, 0),
		stopwords:  collections.NewSet[string](),
	}
}
