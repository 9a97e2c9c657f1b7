package gridmap_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rayannott/flipmap/internal/gridmap"
	"github.com/rayannott/flipmap/internal/pendulum"
)

// rowIndexOf recovers the row index of a theta1 grid value.
func rowIndexOf(theta1 float64, n int) int {
	return int(math.Round(theta1 / math.Pi * float64(n-1)))
}

// syntheticCell is a fast, pure stand-in for the real evaluator: the count
// is a deterministic function of the cell's angles.
func syntheticCell(theta1, theta2 float64, cnst pendulum.Constants) (int, error) {
	return int(math.Round(theta1*100)) + int(math.Round((theta2+math.Pi)*10)), nil
}

var _ = Describe("Builder", func() {
	var (
		builder *gridmap.Builder
		cnst    pendulum.Constants
	)

	BeforeEach(func() {
		builder = gridmap.NewBuilder()
		cnst = pendulum.DefaultConstants()
	})

	Describe("parameter validation", func() {
		It("rejects a resolution below 2", func() {
			_, err := builder.Build(context.Background(), 1, cnst)
			Expect(err).To(MatchError(gridmap.ErrResolution))
		})

		It("rejects a non-positive worker count", func() {
			builder.Workers = 0
			_, err := builder.Build(context.Background(), 5, cnst)
			Expect(err).To(MatchError(gridmap.ErrWorkers))
		})

		It("rejects invalid physical constants before any work", func() {
			cnst.L1 = -1
			_, err := builder.Build(context.Background(), 5, cnst)
			Expect(err).To(MatchError(pendulum.ErrLength))
		})
	})

	Describe("grid shape", func() {
		It("produces an (N, 2N-1) matrix", func() {
			cnst.TFinal = 1
			m, err := builder.Build(context.Background(), 5, cnst)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Rows).To(Equal(5))
			Expect(m.Cols).To(Equal(9))
		})

		It("lays out the axes per the grid contract", func() {
			theta1s := gridmap.Theta1s(5)
			theta2s := gridmap.Theta2s(5)
			Expect(theta1s).To(HaveLen(5))
			Expect(theta2s).To(HaveLen(9))
			Expect(theta1s[0]).To(BeZero())
			Expect(theta1s[4]).To(Equal(math.Pi))
			Expect(theta2s[0]).To(Equal(-math.Pi))
			Expect(theta2s[4]).To(BeNumerically("~", 0, 1e-12))
			Expect(theta2s[8]).To(Equal(math.Pi))
		})
	})

	Describe("row-order invariance", func() {
		It("matches the sequential build even when rows finish in reverse order", func() {
			const n = 5

			var mu sync.Mutex
			var completion []int

			builder.Workers = n
			builder.Cell = func(theta1, theta2 float64, c pendulum.Constants) (int, error) {
				// earlier rows sleep longer, reversing completion order
				i := rowIndexOf(theta1, n)
				time.Sleep(time.Duration(n-1-i) * 10 * time.Millisecond)
				return syntheticCell(theta1, theta2, c)
			}
			builder.Progress = func(row int) {
				mu.Lock()
				completion = append(completion, row)
				mu.Unlock()
			}

			parallel, err := builder.Build(context.Background(), n, cnst)
			Expect(err).NotTo(HaveOccurred())

			Expect(completion).To(HaveLen(n))
			Expect(completion[0]).To(Equal(n-1), "expected the last row to finish first")

			seq := gridmap.NewBuilder()
			seq.Cell = syntheticCell
			sequential, err := seq.BuildSequential(context.Background(), n, cnst)
			Expect(err).NotTo(HaveOccurred())

			Expect(parallel.Equal(sequential)).To(BeTrue(), "parallel and sequential maps differ")
		})

		It("matches the sequential build with the real evaluator", func() {
			cnst.TFinal = 1

			parallel, err := builder.Build(context.Background(), 3, cnst)
			Expect(err).NotTo(HaveOccurred())

			sequential, err := builder.BuildSequential(context.Background(), 3, cnst)
			Expect(err).NotTo(HaveOccurred())

			Expect(parallel.Equal(sequential)).To(BeTrue())
		})
	})

	Describe("failure propagation", func() {
		injectAtRow := func(n, bad int) {
			builder.Cell = func(theta1, theta2 float64, c pendulum.Constants) (int, error) {
				if rowIndexOf(theta1, n) == bad {
					return 0, errors.New("synthetic cell failure")
				}
				return syntheticCell(theta1, theta2, c)
			}
		}

		It("aborts the parallel build and names the offending row", func() {
			injectAtRow(5, 2)
			m, err := builder.Build(context.Background(), 5, cnst)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("row 2"))
			Expect(m).To(BeNil(), "no partial map on failure")
		})

		It("aborts the sequential build the same way", func() {
			injectAtRow(5, 2)
			m, err := builder.BuildSequential(context.Background(), 5, cnst)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("row 2"))
			Expect(m).To(BeNil())
		})
	})

	Describe("cancellation", func() {
		It("aborts when the context is already canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			builder.Cell = syntheticCell
			m, err := builder.Build(ctx, 5, cnst)
			Expect(err).To(MatchError(context.Canceled))
			Expect(m).To(BeNil())
		})
	})

	Describe("single-cell evaluator", func() {
		It("is deterministic for fixed inputs and tolerance", func() {
			cnst.TFinal = 2
			a, err := gridmap.Evaluate(2.0, -1.0, cnst)
			Expect(err).NotTo(HaveOccurred())
			b, err := gridmap.Evaluate(2.0, -1.0, cnst)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("reports zero flips for the pendulum at rest", func() {
			count, err := gridmap.Evaluate(0, 0, cnst)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})

var _ = Describe("Map", func() {
	It("round-trips through FromRows", func() {
		rows := [][]int{
			{0, 1, 2, 3, 4},
			{5, 6, 7, 8, 9},
			{1, 1, 2, 3, 5},
		}
		m, err := gridmap.FromRows(rows)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.N).To(Equal(3))
		Expect(m.At(1, 3)).To(Equal(8))
		Expect(m.Max()).To(Equal(9))
	})

	It("rejects malformed row data", func() {
		_, err := gridmap.FromRows([][]int{{1, 2, 3}})
		Expect(err).To(MatchError(gridmap.ErrRowShape))

		_, err = gridmap.FromRows([][]int{{1, 2}, {3, 4}})
		Expect(err).To(MatchError(gridmap.ErrRowShape))
	})
})
