package results

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Summary holds the per-artifact statistics the analyze command reports.
type Summary struct {
	Games         int
	Rounds        int     // length of the longest game, after padding
	MeanFinal     float64 // mean final balance across games
	StdDevFinal   float64 // standard deviation of final balances
	MeanProfit    float64 // mean final balance minus starting balance
	MeanRounds    float64 // average rounds survived per game
	BustPercent   float64 // share of games ending at zero balance
	FitSlope      float64 // least-squares slope of per-round average balance
	FitIntercept  float64
	RoundAverages []float64
}

// Summarize computes the statistical summary of one results artifact.
func Summarize(r *Results) (*Summary, error) {
	if len(r.Scores) == 0 {
		return nil, fmt.Errorf("results %q contain no games", r.Name)
	}

	padded, longest := padScores(r.Scores)

	s := &Summary{
		Games:  len(padded),
		Rounds: longest,
	}

	finals := make([]float64, len(padded))
	totalRounds := 0
	for i, run := range r.Scores {
		totalRounds += len(run)
		finals[i] = float64(run[len(run)-1])
	}

	s.MeanFinal = mean(finals)
	s.StdDevFinal = stdDev(finals)
	s.MeanProfit = s.MeanFinal - float64(r.StartingBalance)
	s.MeanRounds = float64(totalRounds) / float64(len(r.Scores))
	// A game ended by exhaustion records no trailing zero in its series, so
	// busts come from the artifact's own counter.
	s.BustPercent = float64(r.Busts) / float64(len(r.Scores)) * 100

	s.RoundAverages = roundAverages(padded, longest)
	s.FitSlope, s.FitIntercept = linearFit(s.RoundAverages)

	return s, nil
}

// LoadAll reads several results files concurrently, preserving input order.
func LoadAll(paths []string) ([]*Results, error) {
	loaded := make([]*Results, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			r, err := ReadFile(path)
			if err != nil {
				return err
			}
			loaded[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// padScores equalises game lengths by repeating each game's final balance,
// so per-round aggregates compare games that busted early against games
// that ran the shoe out. Returns padded copies and the longest run length.
func padScores(scores [][]int) ([][]int, int) {
	longest := 0
	for _, run := range scores {
		if len(run) > longest {
			longest = len(run)
		}
	}

	padded := make([][]int, len(scores))
	for i, run := range scores {
		p := make([]int, longest)
		copy(p, run)
		for j := len(run); j < longest; j++ {
			p[j] = run[len(run)-1]
		}
		padded[i] = p
	}
	return padded, longest
}

// roundAverages returns the mean balance at each round index.
func roundAverages(padded [][]int, longest int) []float64 {
	averages := make([]float64, longest)
	for j := 0; j < longest; j++ {
		sum := 0.0
		for _, run := range padded {
			sum += float64(run[j])
		}
		averages[j] = sum / float64(len(padded))
	}
	return averages
}

// linearFit returns the least-squares slope and intercept of ys against
// their indices. With fewer than two points the fit degenerates to a flat
// line through the single value.
func linearFit(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	if len(ys) < 2 {
		if len(ys) == 1 {
			return 0, ys[0]
		}
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope = (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation, matching how the original
// analysis reported spread of final balances.
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
