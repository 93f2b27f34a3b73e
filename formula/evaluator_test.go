// SPDX-License-Identifier: MIT

package formula_test

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/parlab/formula"
	"github.com/katalvlaran/parlab/matrix"
	"github.com/katalvlaran/parlab/report"
	"github.com/katalvlaran/parlab/workpool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func rows(t testing.TB, r [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(r)
	require.NoError(t, err)
	return m
}

func randomDense(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64() * 10000
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)
	return m
}

func smallInputs(t testing.TB) formula.Inputs {
	return formula.Inputs{
		B:    rows(t, [][]float64{{1, 2}}),
		D:    rows(t, [][]float64{{3, 4}}),
		MC:   rows(t, [][]float64{{1, 2}, {3, 4}}),
		MD:   rows(t, [][]float64{{2, 0}, {0, 2}}),
		MX:   rows(t, [][]float64{{1, 0}, {0, 1}}),
		Beta: 0.5,
	}
}

// referenceResult recomputes both formulas with the sequential kernels only.
func referenceResult(t testing.TB, in formula.Inputs) (e, ma *matrix.Dense) {
	t.Helper()
	must := func(m *matrix.Dense, err error) *matrix.Dense {
		require.NoError(t, err)
		return m
	}
	low, err := matrix.Min(in.MC)
	require.NoError(t, err)
	e = must(matrix.Add(must(matrix.MulSequential(in.B, in.MC)), must(matrix.Scale(in.D, low))))

	left := must(matrix.MulSequential(in.MD, must(matrix.Sub(in.MC, in.MX))))
	right := must(matrix.MulSequential(in.MX, in.MC))
	ma = must(matrix.Add(must(matrix.Scale(left, in.Beta)), must(matrix.Scale(right, in.Beta))))
	return e, ma
}

// EvaluatorSuite shares one pool between evaluators, as the CLI does.
type EvaluatorSuite struct {
	suite.Suite
	pool *workpool.Pool
}

func (s *EvaluatorSuite) SetupSuite() {
	p, err := workpool.New(4)
	s.Require().NoError(err)
	s.pool = p
}

func (s *EvaluatorSuite) TearDownSuite() {
	s.Require().NoError(s.pool.Close())
}

// TestSmallValues checks both formulas on hand-computed operands.
func (s *EvaluatorSuite) TestSmallValues() {
	ev := formula.NewEvaluator(formula.WithExecutor(s.pool))
	res, err := ev.Evaluate(smallInputs(s.T()))
	s.Require().NoError(err)
	s.Require().NoError(res.Err())

	// B·MC = [7,10]; min(MC) = 1; D·1 = [3,4].
	s.Require().Equal([][]float64{{10, 14}}, res.E.ToRows())
	// MC−MX = [[0,2],[3,3]]; MD·(MC−MX) = [[0,4],[6,6]]; MX·MC = MC.
	s.Require().Equal([][]float64{{0.5, 3}, {4.5, 5}}, res.MA.ToRows())
}

// TestMatchesSequentialReference checks bit-identity with the sequential
// composition for generated inputs of the production shape (1×n, n×n).
func (s *EvaluatorSuite) TestMatchesSequentialReference() {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 3, 9, 20} {
		in := formula.Inputs{
			B:    randomDense(s.T(), rng, 1, n),
			D:    randomDense(s.T(), rng, 1, n),
			MC:   randomDense(s.T(), rng, n, n),
			MD:   randomDense(s.T(), rng, n, n),
			MX:   randomDense(s.T(), rng, n, n),
			Beta: rng.Float64() * 10000,
		}
		wantE, wantMA := referenceResult(s.T(), in)

		for _, w := range []int{1, 3, 8} {
			ev := formula.NewEvaluator(formula.WithWorkers(w), formula.WithExecutor(s.pool))
			res, err := ev.Evaluate(in)
			s.Require().NoError(err)
			s.Require().True(wantE.Equal(res.E), "E n=%d W=%d", n, w)
			s.Require().True(wantMA.Equal(res.MA), "MA n=%d W=%d", n, w)
		}
	}
}

// TestFailureIsolation breaks E only; MA must still complete.
func (s *EvaluatorSuite) TestFailureIsolation() {
	in := smallInputs(s.T())
	in.B = rows(s.T(), [][]float64{{1, 2, 3}}) // 1×3 · 2×2

	rec := &report.Recorder{}
	ev := formula.NewEvaluator(formula.WithExecutor(s.pool), formula.WithReporter(rec))
	res, err := ev.Evaluate(in)

	s.Require().ErrorIs(err, matrix.ErrDimensionMismatch)
	s.Require().ErrorIs(res.EErr, matrix.ErrDimensionMismatch)
	s.Require().Contains(res.EErr.Error(), "E: ")
	s.Require().Nil(res.E)
	s.Require().NoError(res.MAErr)
	s.Require().Equal([][]float64{{0.5, 3}, {4.5, 5}}, res.MA.ToRows())

	eRecs, maRecs := rec.ByName(formula.NameE), rec.ByName(formula.NameMA)
	s.Require().Len(eRecs, 1)
	s.Require().Equal(report.KindError, eRecs[0].Kind)
	s.Require().Len(maRecs, 1)
	s.Require().Equal(report.KindResult, maRecs[0].Kind)
	s.Require().True(res.MA.Equal(maRecs[0].Matrix))
}

// TestBothFail collects both failures at the join point.
func (s *EvaluatorSuite) TestBothFail() {
	in := smallInputs(s.T())
	in.B = rows(s.T(), [][]float64{{1, 2, 3}})
	in.MX = rows(s.T(), [][]float64{{1, 0, 0}, {0, 1, 0}})

	ev := formula.NewEvaluator(formula.WithExecutor(s.pool))
	res, err := ev.Evaluate(in)
	s.Require().Error(err)
	s.Require().Len(multierr.Errors(err), 2)
	s.Require().ErrorIs(res.EErr, matrix.ErrDimensionMismatch)
	s.Require().ErrorIs(res.MAErr, matrix.ErrDimensionMismatch)
	s.Require().Contains(res.MAErr.Error(), "MA: ")
	s.Require().Nil(res.E)
	s.Require().Nil(res.MA)
}

// TestNilInputs reports missing matrices per formula.
func (s *EvaluatorSuite) TestNilInputs() {
	in := smallInputs(s.T())
	in.MD = nil

	res, err := formula.NewEvaluator().Evaluate(in)
	s.Require().ErrorIs(err, formula.ErrNilInput)
	s.Require().NoError(res.EErr)
	s.Require().ErrorIs(res.MAErr, formula.ErrNilInput)
}

// TestConcurrentEvaluations shares one evaluator and one pool across callers.
func (s *EvaluatorSuite) TestConcurrentEvaluations() {
	rng := rand.New(rand.NewSource(17))
	n := 12
	in := formula.Inputs{
		B: randomDense(s.T(), rng, 1, n), D: randomDense(s.T(), rng, 1, n),
		MC: randomDense(s.T(), rng, n, n), MD: randomDense(s.T(), rng, n, n),
		MX: randomDense(s.T(), rng, n, n), Beta: 3,
	}
	wantE, wantMA := referenceResult(s.T(), in)
	ev := formula.NewEvaluator(formula.WithExecutor(s.pool))

	var wg sync.WaitGroup
	for c := 0; c < 8; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ev.Evaluate(in)
			if assert.NoError(s.T(), err) {
				assert.True(s.T(), wantE.Equal(res.E))
				assert.True(s.T(), wantMA.Equal(res.MA))
			}
		}()
	}
	wg.Wait()
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func TestEvaluateVariables_EndToEnd(t *testing.T) {
	vs := formula.Variables{
		formula.NameB:    formula.MatrixValue(rows(t, [][]float64{{1, 2}})),
		formula.NameD:    formula.MatrixValue(rows(t, [][]float64{{3, 4}})),
		formula.NameMC:   formula.MatrixValue(rows(t, [][]float64{{1, 2}, {3, 4}})),
		formula.NameMD:   formula.MatrixValue(rows(t, [][]float64{{1, 2}, {3, 4}})),
		formula.NameMX:   formula.MatrixValue(rows(t, [][]float64{{1, 2}, {3, 4}})),
		formula.NameBeta: formula.Scalar(2),
	}
	res, err := formula.NewEvaluator().EvaluateVariables(vs)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, 14}}, res.E.ToRows())
	// MD = MX = MC: first product is zero, second is 2·MC².
	require.Equal(t, [][]float64{{14, 20}, {30, 44}}, res.MA.ToRows())

	delete(vs, formula.NameMX)
	_, err = formula.NewEvaluator().EvaluateVariables(vs)
	require.ErrorIs(t, err, formula.ErrMissingVariable)
}

func TestEvaluator_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	in := smallInputs(t)
	in.B = rows(t, [][]float64{{1}})

	_, err := formula.NewEvaluator(formula.WithLogger(zap.New(core))).Evaluate(in)
	require.Error(t, err)

	failed := logs.FilterMessage("formula failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, formula.NameE, failed[0].ContextMap()["formula"])

	ok := logs.FilterMessage("formula evaluated").All()
	require.Len(t, ok, 1)
	require.Equal(t, formula.NameMA, ok[0].ContextMap()["formula"])
}

func TestOptions_NilFallbacks(t *testing.T) {
	ev := formula.NewEvaluator(formula.WithLogger(nil), formula.WithReporter(nil), nil)
	res, err := ev.Evaluate(smallInputs(t))
	require.NoError(t, err)
	require.NotNil(t, res.E)

	require.Panics(t, func() { formula.WithWorkers(0) })
	require.Panics(t, func() { formula.WithExecutor(nil) })
}

// barrierExecutor holds every Run until want Runs are in flight at once or
// the timeout fires. met counts the Runs released by the barrier.
type barrierExecutor struct {
	want    int
	timeout time.Duration
	all     chan struct{}
	met     atomic.Int32

	mu      sync.Mutex
	arrived int
}

func newBarrierExecutor(want int, timeout time.Duration) *barrierExecutor {
	return &barrierExecutor{want: want, timeout: timeout, all: make(chan struct{})}
}

func (b *barrierExecutor) Run(tasks ...func()) error {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.want {
		close(b.all)
	}
	b.mu.Unlock()

	select {
	case <-b.all:
		b.met.Add(1)
	case <-time.After(b.timeout):
	}
	for _, task := range tasks {
		task()
	}

	return nil
}

// TestProductsRunConcurrently needs B·MC, MD·(MC−MX) and MX·MC in flight
// together; any serialization leaves a Run stuck until the timeout.
func TestProductsRunConcurrently(t *testing.T) {
	barrier := newBarrierExecutor(3, 5*time.Second)
	ev := formula.NewEvaluator(formula.WithWorkers(1), formula.WithExecutor(barrier))

	res, err := ev.Evaluate(smallInputs(t))
	require.NoError(t, err)
	require.EqualValues(t, 3, barrier.met.Load())
	require.Equal(t, [][]float64{{10, 14}}, res.E.ToRows())
	require.Equal(t, [][]float64{{0.5, 3}, {4.5, 5}}, res.MA.ToRows())
}

// gatedExecutor runs single-task batches at once and holds every wider batch
// until the test sends on release; done fires when a held batch finishes.
type gatedExecutor struct {
	entered chan struct{}
	release chan struct{}
	done    chan struct{}
}

func (g *gatedExecutor) Run(tasks ...func()) error {
	if len(tasks) > 1 {
		g.entered <- struct{}{}
		<-g.release
		defer func() { g.done <- struct{}{} }()
	}
	for _, task := range tasks {
		task()
	}

	return nil
}

// TestMAWaitsForBothProducts holds the two n×n products of MA (two row
// bands each) while B·MC (one row) runs free. MA must not be reported
// until the second product is released.
func TestMAWaitsForBothProducts(t *testing.T) {
	gate := &gatedExecutor{
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
		done:    make(chan struct{}, 2),
	}
	rec := &report.Recorder{}
	ev := formula.NewEvaluator(formula.WithWorkers(2), formula.WithExecutor(gate), formula.WithReporter(rec))

	type outcome struct {
		res formula.Result
		err error
	}
	out := make(chan outcome, 1)
	go func() {
		res, err := ev.Evaluate(smallInputs(t))
		out <- outcome{res, err}
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-gate.entered:
		case <-time.After(5 * time.Second):
			t.Fatal("MA products were not forked together")
		}
	}
	// E does not wait for MA.
	require.Eventually(t, func() bool { return len(rec.ByName(formula.NameE)) == 1 },
		5*time.Second, time.Millisecond)

	gate.release <- struct{}{}
	<-gate.done
	require.Never(t, func() bool { return len(rec.ByName(formula.NameMA)) > 0 },
		50*time.Millisecond, time.Millisecond)

	gate.release <- struct{}{}
	got := <-out
	require.NoError(t, got.err)
	require.Equal(t, [][]float64{{0.5, 3}, {4.5, 5}}, got.res.MA.ToRows())
	maRecs := rec.ByName(formula.NameMA)
	require.Len(t, maRecs, 1)
	require.Equal(t, report.KindResult, maRecs[0].Kind)
}
