package adder

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_TwoNumbers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, Add(1, 2))
}

func TestAdd_NegativeNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, Add(1, -2))
}

func TestAdd_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"zeros", 0, 0, 0},
		{"both negative", -5, -7, -12},
		{"cancel out", 42, -42, 0},
		{"large", 1 << 40, 1 << 40, 1 << 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

var sampleInts = []int64{0, 1, -1, 2, -2, 7, -13, 1000, -99999, math.MaxInt32, math.MinInt32}

func TestAdd_Commutative(t *testing.T) {
	t.Parallel()
	for _, a := range sampleInts {
		for _, b := range sampleInts {
			assert.Equal(t, Add(a, b), Add(b, a), "Add(%d, %d)", a, b)
		}
	}
}

func TestAdd_Identity(t *testing.T) {
	t.Parallel()
	for _, a := range sampleInts {
		assert.Equal(t, a, Add(a, 0))
		assert.Equal(t, a, Add(0, a))
	}
}

func TestAdd_MatchesOperator(t *testing.T) {
	t.Parallel()
	for _, a := range sampleInts {
		for _, b := range sampleInts {
			assert.Equal(t, a+b, Add(a, b))
		}
	}
}

func TestAdd_Floats(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.75, Add(0.5, 0.25))
	assert.InDelta(t, 0.3, Add(0.1, 0.2), 1e-12)
	assert.Equal(t, float32(-1.5), Add(float32(1), float32(-2.5)))
}

func TestAdd_FloatSpecialValues(t *testing.T) {
	t.Parallel()
	assert.True(t, math.IsNaN(Add(math.NaN(), 1)))
	assert.True(t, math.IsInf(Add(math.Inf(1), 1), 1))
	assert.True(t, math.IsNaN(Add(math.Inf(1), math.Inf(-1))))
}

func TestAdd_IntegerOverflowWraps(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int8(math.MinInt8), Add(int8(math.MaxInt8), int8(1)))
	assert.Equal(t, int64(math.MinInt64), Add(int64(math.MaxInt64), int64(1)))
	assert.Equal(t, uint8(0), Add(uint8(math.MaxUint8), uint8(1)))
}

type celsius float64

func TestAdd_NamedType(t *testing.T) {
	t.Parallel()
	got := Add(celsius(20), celsius(1.5))
	assert.Equal(t, celsius(21.5), got)
}

func TestAdd_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 16
	results := make([]int, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Add(i, -2*i)
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, -i, got)
	}
}
