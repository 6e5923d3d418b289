// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package gsea implements Gene Set Enrichment Analysis,
// a rank based enrichment statistic,
// as described in:
//
// Subramanian A. et al. (2005)
// "Gene set enrichment analysis: A knowledge-based approach
// for interpreting genome-wide expression profiles",
// PNAS 102: 15545-15550.
//
// Mootha V.K. et al. (2003)
// Nat. Genet. 34: 267-273.
package gsea

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/method"
)

// A RankedGene is a gene with its differential expression score.
type RankedGene struct {
	Gene  expr.Gene
	Score float64
}

// RankedList scores every gene of the experiment
// with a differential expression metric
// and returns the genes sorted from the highest
// to the lowest score
// (the ranked gene list L of the GSEA publication).
func RankedList(cases, control *expr.Collection, metric expr.Metric) []RankedGene {
	gs := cases.Genes()
	ranked := make([]RankedGene, 0, len(gs))
	for _, g := range gs {
		ranked = append(ranked, RankedGene{
			Gene:  g,
			Score: metric(cases.OfGene(g), control.OfGene(g)),
		})
	}
	slices.SortFunc(ranked, func(a, b RankedGene) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})
	return ranked
}

// RunningSum returns the running sum statistic
// of a gene set over a ranked gene list,
// with the given enrichment weighting exponent
// (p in the publication).
// Hits increase the sum
// in proportion to the weighted gene score,
// misses decrease it by a constant step.
func RunningSum(ranked []RankedGene, set *geneset.GeneSet, weight float64) []float64 {
	n := len(ranked)
	nh := 0
	nr := 0.0
	for _, r := range ranked {
		if set.Contains(r.Gene) {
			nh++
			nr += math.Pow(math.Abs(r.Score), weight)
		}
	}
	if nh == 0 || nh == n || nr == 0 {
		return make([]float64, n)
	}

	miss := 1 / float64(n-nh)
	rs := make([]float64, n)
	sum := 0.0
	for i, r := range ranked {
		if set.Contains(r.Gene) {
			sum += math.Pow(math.Abs(r.Score), weight) / nr
		} else {
			sum -= miss
		}
		rs[i] = sum
	}
	return rs
}

// EnrichmentScore returns the enrichment score of a gene set:
// the maximum deviation from zero
// of the running sum statistic.
func EnrichmentScore(ranked []RankedGene, set *geneset.GeneSet, weight float64) float64 {
	es := 0.0
	for _, v := range RunningSum(ranked, set, weight) {
		if math.Abs(v) > math.Abs(es) {
			es = v
		}
	}
	return es
}

// A Result is the score of a single gene set.
type Result struct {
	// Name of the gene set.
	Name string

	// ES is the raw enrichment score.
	ES float64

	// NES is the normalized enrichment score
	// (NaN when the matching tail
	// of the null distribution is empty).
	NES float64

	// P is the nominal p-value.
	// A value of zero indicates a p-value
	// smaller than 1/permutations.
	P float64

	// FDR is the false discovery rate q-value.
	FDR float64

	// null is the normalized null distribution,
	// kept for the FDR computation.
	null []float64
}

// Options are the parameters of a GSEA run.
type Options struct {
	// Metric is the gene ranking metric.
	// By default the signal to noise ratio is used.
	Metric expr.Metric

	// Weight is the enrichment weighting exponent
	// (p in the publication).
	// By default 1.
	Weight float64

	// Permutations is the number of permutation rounds
	// used to build the null distribution.
	// By default 1000.
	Permutations int

	// PermutePhenotypes selects sample label permutation
	// instead of the default gene label permutation.
	PermutePhenotypes bool

	// NoNormalize disables the enrichment score
	// normalization.
	NoNormalize bool

	// CPU is the number of concurrent processes.
	// By default it uses all available processors.
	CPU int

	// Seed of the random number generator.
	// If zero, the current time is used.
	Seed int64
}

func (o Options) fill() Options {
	if o.Metric == nil {
		o.Metric = expr.SignalToNoise
	}
	if o.Weight == 0 {
		o.Weight = 1
	}
	if o.Permutations == 0 {
		o.Permutations = 1000
	}
	if o.CPU == 0 {
		o.CPU = runtime.GOMAXPROCS(0)
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Run scores every gene set of a collection
// on a case-control experiment.
// Gene sets are returned
// sorted by their normalized enrichment score,
// from the most enriched in the case group
// to the most enriched in the control group.
func Run(ex *expr.Experiment, db *geneset.Collection, opt Options) ([]*Result, error) {
	opt = opt.fill()
	if db.Len() == 0 {
		return nil, errors.New("gsea: empty gene set collection")
	}

	ranked := RankedList(ex.Case, ex.Control, opt.Metric)
	if len(ranked) == 0 {
		return nil, errors.New("gsea: no genes in the experiment")
	}

	sets := db.Sets()
	results := analyzeSets(ex, ranked, sets, opt)

	computeFDR(results)

	slices.SortFunc(results, func(a, b *Result) int {
		// NaN scores go last
		switch {
		case math.IsNaN(a.NES) && math.IsNaN(b.NES):
			return 0
		case math.IsNaN(a.NES):
			return 1
		case math.IsNaN(b.NES):
			return -1
		case a.NES > b.NES:
			return -1
		case a.NES < b.NES:
			return 1
		}
		return 0
	})
	return results, nil
}

// analyzeSet performs the three steps of the publication
// for a single gene set:
// the enrichment score,
// its significance level over a permutation null,
// and the normalization
// used for multiple hypothesis testing.
func analyzeSet(set *geneset.GeneSet, ranked []RankedGene, sh shuffler, opt Options) *Result {
	es := EnrichmentScore(ranked, set, opt.Weight)

	null := make([]float64, opt.Permutations)
	for i := range null {
		null[i] = sh.permuteAndScore(set)
	}

	p := significance(es, null)

	nes := es
	if !opt.NoNormalize {
		nes, null = normalize(es, null)
	}

	return &Result{
		Name: set.Name,
		ES:   es,
		NES:  nes,
		P:    p,
		null: null,
	}
}

// significance estimates the nominal p-value
// using only the tail of the null distribution
// that matches the sign of the enrichment score.
func significance(es float64, null []float64) float64 {
	tail := 0
	hits := 0
	for _, v := range null {
		if (es > 0) != (v > 0) || v == 0 {
			continue
		}
		tail++
		if math.Abs(v) > math.Abs(es) {
			hits++
		}
	}
	if tail == 0 {
		return 0
	}
	return float64(hits) / float64(tail)
}

// normalize adjusts an enrichment score
// and its null distribution
// for the variation in gene set sizes,
// dividing by the mean of the same-sign null scores.
// When a score has no same-sign null scores
// the normalized value is NaN
// (as stipulated by GSEA 3.0).
func normalize(es float64, null []float64) (float64, []float64) {
	var sumPos, sumNeg float64
	var nPos, nNeg int
	for _, v := range null {
		if v > 0 {
			sumPos += v
			nPos++
		} else if v < 0 {
			sumNeg += v
			nNeg++
		}
	}

	norm := func(v float64) float64 {
		if v > 0 {
			if nPos == 0 {
				return math.NaN()
			}
			return v / (sumPos / float64(nPos))
		}
		if v < 0 {
			if nNeg == 0 {
				return math.NaN()
			}
			return v / math.Abs(sumNeg/float64(nNeg))
		}
		return 0
	}

	nn := make([]float64, len(null))
	for i, v := range null {
		nn[i] = norm(v)
	}
	return norm(es), nn
}

// computeFDR assigns the false discovery rate q-value
// of every analyzed gene set:
// the ratio of the share of more extreme scores
// in the pooled null distributions
// to the share of more extreme observed scores.
func computeFDR(results []*Result) {
	for _, r := range results {
		if math.IsNaN(r.NES) {
			r.FDR = math.NaN()
			continue
		}

		moreRandom := 0
		allRandom := 0
		moreObserved := 0

		for _, o := range results {
			for _, v := range o.null {
				if math.Abs(v) > math.Abs(r.NES) {
					moreRandom++
				}
			}
			allRandom += len(o.null)
			if math.Abs(o.NES) > math.Abs(r.NES) {
				moreObserved++
			}
		}

		denom := float64(moreObserved) / float64(len(results))
		if denom == 0 {
			r.FDR = math.NaN()
			continue
		}
		r.FDR = (float64(moreRandom) / float64(allRandom)) / denom
	}
}

// Method is the entry of GSEA
// in the method registry.
// The gene set database must be assigned
// before running the analysis.
type Method struct {
	DB  *geneset.Collection
	Opt Options
}

func init() {
	method.Register(Method{})
}

// Name implements the method.Method interface.
func (m Method) Name() string { return "gsea" }

// Summary implements the method.Method interface.
func (m Method) Summary() string {
	return "gene set enrichment analysis, a rank based enrichment statistic"
}

// Run implements the method.Method interface.
func (m Method) Run(ex *expr.Experiment) (*method.Result, error) {
	if m.DB == nil {
		return nil, errors.New("gsea: gene set database not defined")
	}
	rs, err := Run(ex, m.DB, m.Opt)
	if err != nil {
		return nil, err
	}

	out := &method.Result{
		Columns: []string{"name", "ES", "NES", "p-value", "FDR"},
		Notes: "For help with interpreting the results see:\n" +
			"http://software.broadinstitute.org/gsea/doc/GSEAUserGuideTEXT.htm#_Interpreting_GSEA_Results",
	}
	for _, r := range rs {
		err := out.Add(
			r.Name,
			fmt.Sprintf("%.6g", r.ES),
			fmt.Sprintf("%.6g", r.NES),
			fmt.Sprintf("%.6g", r.P),
			fmt.Sprintf("%.6g", r.FDR),
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
