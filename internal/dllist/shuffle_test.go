package dllist_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/testlog"
	"golang.org/x/exp/slices"

	"github.com/sirkon/ranklist/internal/dllist"
	"github.com/sirkon/ranklist/internal/mocks"
)

func TestShuffle(t *testing.T) {
	type test struct {
		name  string
		algo  dllist.ShuffleAlgorithm
		draws [][2]int
		want  []string
	}

	tests := []test{
		{
			name: "uniform",
			algo: dllist.ShuffleUniform,
			draws: [][2]int{
				{4, 1},
				{3, 2},
				{2, 0},
			},
			want: []string{"B", "D", "C", "A"},
		},
		{
			name: "legacy",
			algo: dllist.ShuffleLegacy,
			draws: [][2]int{
				{4, 2},
				{4, 0},
				{4, 3},
				{4, 3},
			},
			want: []string{"B", "C", "D", "A"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rnd := mocks.NewRandomMock(ctrl)
			logger := mocks.NewLoggerMock(ctrl)

			var calls []*gomock.Call
			for _, d := range tt.draws {
				calls = append(calls, rnd.EXPECT().Intn(d[0]).Return(d[1]))
			}
			gomock.InOrder(calls...)
			logger.EXPECT().DebugListShuffled(gomock.Any(), 4, tt.algo)

			l := newList[string](t, dllist.WithRandom(rnd), dllist.WithShuffle(tt.algo), dllist.WithLogger(logger))
			nodes := appendAll(t, l, "A", "B", "C", "D")

			if err := l.Shuffle(); err != nil {
				testlog.Error(t, errors.Wrap(err, "shuffle"))
				return
			}

			checkLinks(t, l)
			checkSameNodes(t, l, nodes)
			deepequal.SideBySide(t, "shuffled values", tt.want, values(l))
		})
	}
}

func TestShuffleNoop(t *testing.T) {
	for _, vs := range [][]string{nil, {"A"}} {
		vs := vs
		t.Run(strings.Join(append([]string{"size"}, vs...), "-"), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rnd := mocks.NewRandomMock(ctrl)
			budget := dllist.NewBudget(10)

			l := newList[string](t, dllist.WithRandom(rnd), dllist.WithAllocator(budget))
			appendAll(t, l, vs...)

			if err := l.Shuffle(); err != nil {
				testlog.Error(t, errors.Wrap(err, "shuffle"))
				return
			}

			if v := budget.Allocated(dllist.KindIndex); v != 0 {
				t.Errorf("no index must be allocated, got %d cells", v)
			}
			checkLinks(t, l)
			deepequal.SideBySide(t, "values", append([]string{}, vs...), values(l))
		})
	}

	t.Run("nil", func(t *testing.T) {
		var l *dllist.List[string]
		if err := l.Shuffle(); err != nil {
			testlog.Error(t, errors.Wrap(err, "shuffle nil list"))
		}
	})
}

func TestShufflePermutation(t *testing.T) {
	for _, algo := range []dllist.ShuffleAlgorithm{dllist.ShuffleUniform, dllist.ShuffleLegacy} {
		algo := algo
		t.Run(algo.String(), func(t *testing.T) {
			budget := dllist.NewBudget(64)
			l := newList[string](
				t,
				dllist.WithRandom(dllist.NewSeededRandom(1)),
				dllist.WithShuffle(algo),
				dllist.WithAllocator(budget),
			)
			nodes := appendAll(t, l, "A", "B", "C", "D")

			for i := 0; i < 20; i++ {
				if err := l.Shuffle(); err != nil {
					testlog.Error(t, errors.Wrapf(err, "shuffle %d", i))
					return
				}

				got := values(l)
				slices.Sort(got)
				if !slices.Equal(got, []string{"A", "B", "C", "D"}) {
					t.Errorf("shuffle %d changed the set of values: %v", i, got)
					return
				}
			}

			checkLinks(t, l)
			checkSameNodes(t, l, nodes)
			if v := budget.Live(dllist.KindIndex); v != 0 {
				t.Errorf("shuffle index must be released, %d cells are live", v)
			}
		})
	}
}

func TestShuffleUniformDistribution(t *testing.T) {
	const trials = 60000

	rnd := dllist.NewSeededRandom(42)
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		l := newList[string](t, dllist.WithRandom(rnd))
		appendAll(t, l, "A", "B", "C")
		if err := l.Shuffle(); err != nil {
			testlog.Error(t, errors.Wrap(err, "shuffle"))
			return
		}
		counts[strings.Join(values(l), "")]++
		l.Destroy()
	}

	if len(counts) != 6 {
		t.Errorf("all 6 permutations must appear, got %d", len(counts))
	}

	const expected = trials / 6
	for perm, count := range counts {
		if count < expected*9/10 || count > expected*11/10 {
			t.Errorf("permutation %s appeared %d times, expected about %d", perm, count, expected)
		}
	}
}

func TestShuffleAllocationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	alloc := mocks.NewAllocatorMock(ctrl)
	rnd := mocks.NewRandomMock(ctrl)
	logger := mocks.NewLoggerMock(ctrl)

	alloc.EXPECT().Allocate(dllist.KindList, 1).Return(nil)
	alloc.EXPECT().Allocate(dllist.KindNode, 1).Return(nil).Times(3)
	alloc.EXPECT().Allocate(dllist.KindIndex, 3).Return(errors.Wrap(dllist.ErrorAllocation, "no memory"))
	logger.EXPECT().ListAllocationFailed(gomock.Any(), "shuffle", gomock.Any())

	l := newList[string](t, dllist.WithAllocator(alloc), dllist.WithRandom(rnd), dllist.WithLogger(logger))
	nodes := appendAll(t, l, "A", "B", "C")

	err := l.Shuffle()
	if err == nil {
		t.Error("allocation error was expected")
		return
	}
	if !errors.Is(err, dllist.ErrorAllocation) {
		testlog.Error(t, errors.Wrap(err, "unexpected error"))
		return
	}
	testlog.Log(t, errors.Wrap(err, "expected error"))

	checkLinks(t, l)
	checkSameNodes(t, l, nodes)
	deepequal.SideBySide(t, "values", []string{"A", "B", "C"}, values(l))
}

func appendAll[T any](t *testing.T, l *dllist.List[T], vs ...T) []*dllist.Node[T] {
	t.Helper()

	var nodes []*dllist.Node[T]
	for _, v := range vs {
		n, err := l.Append(v)
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "append value"))
			t.FailNow()
		}
		nodes = append(nodes, n)
	}

	return nodes
}

// checkSameNodes перемешивание не должно трогать сами узлы.
func checkSameNodes[T any](t *testing.T, l *dllist.List[T], nodes []*dllist.Node[T]) {
	t.Helper()

	var i int
	for n := l.First(); n != nil; n = n.Next() {
		if i >= len(nodes) || nodes[i] != n {
			t.Errorf("node at position %d was replaced", i)
			return
		}
		i++
	}

	if i != len(nodes) {
		t.Errorf("expected %d nodes, got %d", len(nodes), i)
	}
}
