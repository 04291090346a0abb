package engine

// Weights are the evaluation coefficients. They are read once at
// engine construction and never change during a search.
//
// Window weights apply symmetrically: a window held only by the
// scoring player adds the weight, a window held only by the opponent
// subtracts it. Win must dwarf every possible sum of positional
// terms; with 69 windows and the center column, the defaults keep
// heuristic scores below ~3000 against a win band of one million.
type Weights struct {
	// Center is added per own piece in the center column (and
	// subtracted per opponent piece there).
	Center int
	// OpenTwo scores a window holding exactly two own pieces and two
	// empties.
	OpenTwo int
	// OpenThree scores a window holding exactly three own pieces and
	// one empty.
	OpenThree int
	// Win is the saturating magnitude for a completed four. The
	// search biases it by ply so faster wins score higher.
	Win int
}

func DefaultWeights() Weights {
	return Weights{
		Center:    3,
		OpenTwo:   3,
		OpenThree: 40,
		Win:       1_000_000,
	}
}
