// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gsea

import (
	"math/rand"
	"sync"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
)

// analyzeSets scores all gene sets concurrently.
// Each worker owns its random number generator
// and its shuffler,
// so the workers never share mutable state.
func analyzeSets(ex *expr.Experiment, ranked []RankedGene, sets []*geneset.GeneSet, opt Options) []*Result {
	results := make([]*Result, len(sets))

	setChan := make(chan int, opt.CPU)
	var wg sync.WaitGroup
	for w := 0; w < opt.CPU; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			rnd := rand.New(rand.NewSource(opt.Seed + int64(w)))
			var sh shuffler
			if opt.PermutePhenotypes {
				sh = newPhenotypeShuffler(ex, opt.Metric, opt.Weight, rnd)
			} else {
				sh = newGeneShuffler(ranked, opt.Weight, rnd)
			}

			for i := range setChan {
				results[i] = analyzeSet(sets[i], ranked, sh, opt)
			}
		}(w)
	}

	for i := range sets {
		setChan <- i
	}
	close(setChan)
	wg.Wait()

	return results
}
