// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gsea

import (
	"math/rand"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
)

// A shuffler builds one sample of the null distribution:
// it permutes the experiment labels
// and scores a gene set on the permuted data.
type shuffler interface {
	permuteAndScore(set *geneset.GeneSet) float64
}

// geneShuffler permutes the gene labels
// of the ranked gene list,
// keeping the scores in place.
type geneShuffler struct {
	ranked []RankedGene
	perm   []RankedGene
	weight float64
	rnd    *rand.Rand
}

func newGeneShuffler(ranked []RankedGene, weight float64, rnd *rand.Rand) *geneShuffler {
	perm := make([]RankedGene, len(ranked))
	copy(perm, ranked)
	return &geneShuffler{
		ranked: ranked,
		perm:   perm,
		weight: weight,
		rnd:    rnd,
	}
}

func (sh *geneShuffler) permuteAndScore(set *geneset.GeneSet) float64 {
	sh.rnd.Shuffle(len(sh.perm), func(i, j int) {
		sh.perm[i].Gene, sh.perm[j].Gene = sh.perm[j].Gene, sh.perm[i].Gene
	})
	return EnrichmentScore(sh.perm, set, sh.weight)
}

// phenotypeShuffler permutes the sample labels:
// it pools all samples,
// shuffles them,
// and splits them again
// into random case and control groups
// of the original sizes.
type phenotypeShuffler struct {
	samples []*expr.Sample
	nCase   int
	metric  expr.Metric
	weight  float64
	rnd     *rand.Rand
}

func newPhenotypeShuffler(ex *expr.Experiment, metric expr.Metric, weight float64, rnd *rand.Rand) *phenotypeShuffler {
	var all []*expr.Sample
	all = append(all, ex.Case.Samples...)
	all = append(all, ex.Control.Samples...)
	return &phenotypeShuffler{
		samples: all,
		nCase:   len(ex.Case.Samples),
		metric:  metric,
		weight:  weight,
		rnd:     rnd,
	}
}

func (sh *phenotypeShuffler) permuteAndScore(set *geneset.GeneSet) float64 {
	sh.rnd.Shuffle(len(sh.samples), func(i, j int) {
		sh.samples[i], sh.samples[j] = sh.samples[j], sh.samples[i]
	})

	cases := &expr.Collection{Name: "case", Samples: sh.samples[:sh.nCase]}
	control := &expr.Collection{Name: "control", Samples: sh.samples[sh.nCase:]}

	ranked := RankedList(cases, control, sh.metric)
	return EnrichmentScore(ranked, set, sh.weight)
}
