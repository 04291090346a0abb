package engine

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fourstack/connect4/internal/domain"
)

const (
	minScore = math.MinInt32
	maxScore = math.MaxInt32
)

// Config is the immutable engine setup. Zero-valued weights or depth
// fall back to defaults in New.
type Config struct {
	Weights Weights
	// Depth is the search horizon in plies.
	Depth int
	// MoveTime bounds the wall-clock time per ChooseMove; zero means
	// unbounded.
	MoveTime time.Duration
	// NodeBudget bounds the number of moves tried per ChooseMove;
	// unlike MoveTime, a node budget is deterministic. Zero means
	// unbounded.
	NodeBudget int64
	// Parallel fans the top-level columns out to worker goroutines,
	// each on its own board clone. Budgets other than context
	// cancellation do not apply in parallel mode.
	Parallel bool
}

const DefaultDepth = 7

// Result is what the search hands back: the chosen column, its score
// from the mover's perspective, and the horizon actually completed.
type Result struct {
	Column int
	Score  int
	Depth  int
}

type Engine struct {
	weights    Weights
	depth      int
	moveTime   time.Duration
	nodeBudget int64
	parallel   bool
}

func New(cfg Config) *Engine {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	return &Engine{
		weights:    cfg.Weights,
		depth:      cfg.Depth,
		moveTime:   cfg.MoveTime,
		nodeBudget: cfg.NodeBudget,
		parallel:   cfg.Parallel,
	}
}

// ChooseMove picks a column for player on b. The board is borrowed
// under drop/undo discipline and is back in its original state when
// this returns. Calling it on a full board is a caller bug and fails
// with ErrNoLegalMoves.
//
// Under a time or node budget the search deepens iteratively and, on
// cutoff, returns the result of the deepest fully completed horizon;
// a partially searched depth is never used.
func (e *Engine) ChooseMove(ctx context.Context, b *domain.Board, player domain.Cell) (Result, error) {
	if b.IsFull() {
		return Result{Column: -1}, domain.ErrNoLegalMoves
	}

	if e.parallel {
		return e.chooseParallel(ctx, b, player)
	}

	st := newSearchState(ctx, e.moveTime, e.nodeBudget)
	if !st.budgeted {
		res, ok := e.searchRoot(st, b, player, e.depth)
		if ok {
			return res, nil
		}
		// Context cancelled mid-search: finish the shallowest horizon
		// so the caller still gets a deterministic, fully searched move.
		return e.fallbackShallow(b, player), nil
	}

	// A forced win (or loss) cannot improve with more depth.
	decisive := e.weights.Win - domain.Rows*domain.Columns

	var best Result
	have := false
	for depth := 1; depth <= e.depth; depth++ {
		res, ok := e.searchRoot(st, b, player, depth)
		if !ok {
			break
		}
		best, have = res, true
		if res.Score >= decisive || res.Score <= -decisive {
			break
		}
	}
	if !have {
		best = e.fallbackShallow(b, player)
	}
	return best, nil
}

// fallbackShallow runs an unbudgeted one-ply search, the cheapest
// fully completed horizon there is.
func (e *Engine) fallbackShallow(b *domain.Board, player domain.Cell) Result {
	res, _ := e.searchRoot(newSearchState(context.Background(), 0, 0), b, player, 1)
	return res
}

// searchRoot scores every legal column at the given depth and picks
// by bestColumn. Each column gets a full alpha-beta window, so every
// root score is the exact minimax value and pruning inside the
// subtrees can never change which column wins a tie. Returns ok=false
// if the budget expired before all columns were scored.
func (e *Engine) searchRoot(st *searchState, b *domain.Board, player domain.Cell, depth int) (Result, bool) {
	scores := make([]columnScore, 0, domain.Columns)
	for _, col := range b.LegalMoves() {
		if st.expired() {
			return Result{}, false
		}
		st.nodes++
		row, err := b.Drop(col, player)
		if err != nil {
			return Result{}, false
		}
		value := e.valueAfterMove(st, b, player, col, row, 1, depth)
		b.Undo(col)
		if st.aborted {
			return Result{}, false
		}
		scores = append(scores, columnScore{col, value})
	}
	best := bestColumn(scores)
	return Result{Column: best.column, Score: best.score, Depth: depth}, true
}

// valueAfterMove scores the position just created by mover dropping
// in (col, row), from mover's perspective. ply is how many moves deep
// that drop is; depth is the remaining horizon including it.
func (e *Engine) valueAfterMove(st *searchState, b *domain.Board, mover domain.Cell, col, row, ply, depth int) int {
	switch {
	case domain.Winner(b, col, row) == mover:
		return e.weights.Win - ply
	case b.IsFull():
		return 0
	case depth <= 1:
		return Evaluate(b, mover, e.weights)
	default:
		return -e.negamax(st, b, mover.Opponent(), ply+1, depth-1, minScore, maxScore)
	}
}

// negamax returns the best achievable score for toMove, looking depth
// plies ahead. The opponent's best reply, negated, is this player's
// value for a branch; alpha-beta cutoffs only discard branches that
// cannot affect the result.
func (e *Engine) negamax(st *searchState, b *domain.Board, toMove domain.Cell, ply, depth, alpha, beta int) int {
	best := minScore
	for _, col := range b.LegalMoves() {
		if st.expired() {
			st.aborted = true
			return best
		}
		st.nodes++
		row, err := b.Drop(col, toMove)
		if err != nil {
			st.aborted = true
			return best
		}
		var value int
		switch {
		case domain.Winner(b, col, row) == toMove:
			value = e.weights.Win - ply
		case b.IsFull():
			value = 0
		case depth <= 1:
			value = Evaluate(b, toMove, e.weights)
		default:
			value = -e.negamax(st, b, toMove.Opponent(), ply+1, depth-1, -beta, -alpha)
		}
		b.Undo(col)
		if st.aborted {
			return best
		}
		if value > best {
			best = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// chooseParallel splits the root columns across workers, one board
// clone each, then applies the same selection pass once all workers
// are done. Fixed depth: per-depth budgets would make the combined
// result depend on scheduling.
func (e *Engine) chooseParallel(ctx context.Context, b *domain.Board, player domain.Cell) (Result, error) {
	legal := b.LegalMoves()
	values := make([]int, len(legal))

	g, gctx := errgroup.WithContext(ctx)
	for i, col := range legal {
		i, col := i, col
		g.Go(func() error {
			local := b.Clone()
			st := newSearchState(gctx, 0, 0)
			row, err := local.Drop(col, player)
			if err != nil {
				return err
			}
			values[i] = e.valueAfterMove(st, local, player, col, row, 1, e.depth)
			if st.aborted {
				return gctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Column: -1}, err
	}

	scores := make([]columnScore, len(legal))
	for i, col := range legal {
		scores[i] = columnScore{col, values[i]}
	}
	best := bestColumn(scores)
	return Result{Column: best.column, Score: best.score, Depth: e.depth}, nil
}

type columnScore struct {
	column int
	score  int
}

// bestColumn picks the maximum score; among tied columns the one
// nearest the center wins, and of two equidistant columns the lower
// index wins. The maximum is taken even when every score is negative;
// the center column gets no special treatment beyond its distance.
func bestColumn(scores []columnScore) columnScore {
	best := scores[0]
	for _, cs := range scores[1:] {
		if cs.score > best.score ||
			(cs.score == best.score && centerDistance(cs.column) < centerDistance(best.column)) {
			best = cs
		}
	}
	return best
}

func centerDistance(column int) int {
	d := column - domain.CenterColumn
	if d < 0 {
		return -d
	}
	return d
}

// searchState carries the per-ChooseMove budget bookkeeping.
type searchState struct {
	ctx        context.Context
	deadline   time.Time
	hasTime    bool
	nodeBudget int64
	nodes      int64
	budgeted   bool
	aborted    bool
}

func newSearchState(ctx context.Context, moveTime time.Duration, nodeBudget int64) *searchState {
	st := &searchState{
		ctx:        ctx,
		nodeBudget: nodeBudget,
		budgeted:   moveTime > 0 || nodeBudget > 0,
	}
	if moveTime > 0 {
		st.deadline = time.Now().Add(moveTime)
		st.hasTime = true
	}
	return st
}

func (st *searchState) expired() bool {
	if st.aborted {
		return true
	}
	if st.nodeBudget > 0 && st.nodes >= st.nodeBudget {
		return true
	}
	if st.hasTime && time.Now().After(st.deadline) {
		return true
	}
	select {
	case <-st.ctx.Done():
		return true
	default:
		return false
	}
}
