package probemap

import (
	"fmt"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainedMap_Basic(t *testing.T) {
	m := NewChained[int](16)

	m.Put("foo", 42)

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	m.Put("foo", 100)

	v, ok = m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, m.Size())

	_, ok = m.Get("bar")
	assert.False(t, ok)

	assert.True(t, m.Remove("foo"))
	assert.False(t, m.Remove("foo"))
	assert.Zero(t, m.Size())
}

func TestChainedMap_CollisionChain(t *testing.T) {
	m := NewChained[string](10, WithHashFunc(collisionHash))
	require.Equal(t, 11, m.Capacity())

	m.Put("A", "a")
	m.Put("B", "b")
	m.Put("C", "c")

	// Everything chains in one bucket; the other ten stay empty.
	require.Equal(t, 3, m.Size())
	require.Equal(t, 10, m.EmptyBuckets())

	// Unlink from the middle of the chain.
	require.True(t, m.Remove("B"))

	for _, key := range []string{"A", "C"} {
		_, ok := m.Get(key)
		require.True(t, ok, "lost %q after unlinking its chain neighbor", key)
	}

	_, ok := m.Get("B")
	require.False(t, ok)
}

func TestChainedMap_GrowthThreshold(t *testing.T) {
	m := NewChained[int](10)
	require.Equal(t, 11, m.Capacity())

	// Chains tolerate a load factor of 1.0 before growing.
	for i := range 11 {
		m.Put(fmt.Sprintf("key%d", i), i)
		require.Equal(t, 11, m.Capacity())
	}
	require.Equal(t, float64(1), m.TableLoad())

	m.Put("key11", 11)
	require.Equal(t, 23, m.Capacity())
	require.Equal(t, 12, m.Size())

	for i := range 12 {
		v, ok := m.Get(fmt.Sprintf("key%d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestChainedMap_Resize(t *testing.T) {
	m := NewChained[int](10)
	for i := range 10 {
		m.Put(fmt.Sprintf("key%d", i), i)
	}
	before := m.KeysAndValues()

	t.Run("refuse target below one", func(t *testing.T) {
		m.Resize(0)
		require.Equal(t, 11, m.Capacity())
	})

	t.Run("tight target re-doubles until the load fits", func(t *testing.T) {
		// 3 -> 7 -> 17 before ten entries fit at a load factor of 1 or less.
		m.Resize(3)
		require.Equal(t, 17, m.Capacity())
		assert.ElementsMatch(t, before, m.KeysAndValues())
	})

	t.Run("grow to prime target", func(t *testing.T) {
		m.Resize(100)
		require.Equal(t, 101, m.Capacity())
		assert.ElementsMatch(t, before, m.KeysAndValues())
	})
}

func TestChainedMap_EmptyBuckets(t *testing.T) {
	m := NewChained[int](10)
	require.Equal(t, m.Capacity(), m.EmptyBuckets())

	// Distinct buckets under the default hash are not guaranteed, so only the
	// bounds are fixed: at least capacity-size, at most capacity-1.
	m.Put("a", 1)
	m.Put("b", 2)
	require.GreaterOrEqual(t, m.EmptyBuckets(), m.Capacity()-2)
	require.LessOrEqual(t, m.EmptyBuckets(), m.Capacity()-1)
}

func TestChainedMap_Clear(t *testing.T) {
	m := NewChained[int](10)
	for i := range 20 {
		m.Put(fmt.Sprintf("key%d", i), i)
	}
	capacity := m.Capacity()

	m.Clear()

	require.Equal(t, capacity, m.Capacity())
	require.Zero(t, m.Size())
	require.Equal(t, m.Capacity(), m.EmptyBuckets())
}

func TestChainedMap_All(t *testing.T) {
	m := NewChained[int](10)
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Put(k, v)
	}

	require.Equal(t, want, maps.Collect(m.All()))

	seen := 0
	for range m.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestChainedMap_Stats(t *testing.T) {
	m := NewChained[int](10, WithHashFunc(collisionHash))
	m.Put("a", 1)
	m.Put("b", 2)

	require.Equal(t, Stats{
		Size:         2,
		Capacity:     11,
		EmptyBuckets: 10,
		Load:         float64(2) / float64(11),
	}, m.Stats())
}
