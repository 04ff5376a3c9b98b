package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_PreservesOrder(t *testing.T) {
	in := []int{5, 1, 8, 2, 9, 3}
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{8, 2}, Filter(in, even))
}

func TestFilter_Idempotent(t *testing.T) {
	in := []string{"rex", "luna", "rocky", "lola"}
	startsR := func(s string) bool { return s[0] == 'r' }

	once := Filter(in, startsR)
	twice := Filter(once, startsR)

	assert.Equal(t, once, twice)
}

func TestFilter_Composable(t *testing.T) {
	// Aplicar A y luego B equivale a aplicar la conjunción {A,B} de una vez.
	type dog struct {
		breed string
		age   int
	}
	in := []dog{
		{"labrador", 3},
		{"beagle", 5},
		{"labrador retriever", 7},
		{"poodle", 2},
	}

	min := 3
	a := func(d dog) bool { return MatchFold(d.breed, "labrador") }
	b := func(d dog) bool { return InIntRange(d.age, &min, nil) }
	both := func(d dog) bool { return a(d) && b(d) }

	sequential := Filter(Filter(in, a), b)
	conjoined := Filter(in, both)

	require.Equal(t, conjoined, sequential)
	assert.Equal(t, []dog{{"labrador", 3}, {"labrador retriever", 7}}, conjoined)
}

func TestMatchFold(t *testing.T) {
	assert.True(t, MatchFold("Golden Retriever", "retriever"))
	assert.True(t, MatchFold("Golden Retriever", "GOLDEN"))
	assert.False(t, MatchFold("Golden Retriever", "poodle"))

	// query vacío o en blanco no impone restricción
	assert.True(t, MatchFold("anything", ""))
	assert.True(t, MatchFold("anything", "   "))
}

func TestInIntRange_InclusiveBounds(t *testing.T) {
	min, max := 3, 7

	assert.True(t, InIntRange(3, &min, &max))
	assert.True(t, InIntRange(7, &min, &max))
	assert.False(t, InIntRange(2, &min, &max))
	assert.False(t, InIntRange(8, &min, &max))

	// límites ausentes no restringen
	assert.True(t, InIntRange(1000, nil, nil))
	assert.True(t, InIntRange(2, nil, &max))
	assert.True(t, InIntRange(8, &min, nil))
}

func TestInFloatRange_InclusiveBounds(t *testing.T) {
	min, max := 0.5, 20.0

	assert.True(t, InFloatRange(0.5, &min, &max))
	assert.True(t, InFloatRange(20.0, &min, &max))
	assert.False(t, InFloatRange(20.01, &min, &max))
}

func TestInDateRange_InclusiveBounds(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, InDateRange(from, &from, &to))
	assert.True(t, InDateRange(to, &from, &to))
	assert.False(t, InDateRange(from.Add(-time.Second), &from, &to))
	assert.False(t, InDateRange(to.Add(time.Second), &from, &to))
	assert.True(t, InDateRange(time.Now(), nil, nil))
}
