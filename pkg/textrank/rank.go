package textrank

// Rank runs damped power iteration over g for nodes 0..n-1. Scores
// start uniform at 1/n, run exactly cfg.Iterations rounds with
//
//	score[i] = (1-d)/n + d * Σ_j w(j,i)/outWeight(j) * score[j]
//
// and are normalized to sum to 1 at the end. An isolated node keeps
// only the teleport term, so an edgeless graph ranks uniformly.
// n <= 0 returns nil.
func Rank(g Graph, n int, cfg Config) []float64 {
	if n <= 0 {
		return nil
	}

	uniform := 1.0 / float64(n)
	scores := make([]float64, n)
	next := make([]float64, n)
	for i := range scores {
		scores[i] = uniform
	}

	// Out-weight sums never change across iterations.
	outWeight := make([]float64, n)
	for i := 0; i < n; i++ {
		for _, w := range g[i] {
			outWeight[i] += w
		}
	}

	d := cfg.Damping
	teleport := (1 - d) / float64(n)

	for it := 0; it < cfg.Iterations; it++ {
		for i := 0; i < n; i++ {
			var rank float64
			for j, w := range g[i] {
				if j < 0 || j >= n || outWeight[j] == 0 {
					continue
				}
				rank += scores[j] * w / outWeight[j]
			}
			next[i] = teleport + d*rank
		}
		scores, next = next, scores
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for i := range scores {
			scores[i] /= total
		}
	}
	return scores
}
