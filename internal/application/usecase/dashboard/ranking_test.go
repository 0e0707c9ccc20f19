package dashboard

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankDescending(t *testing.T) {
	type item struct {
		name  string
		score int
	}
	byScore := func(a, b item) int { return cmp.Compare(a.score, b.score) }

	t.Run("sorts descending and truncates", func(t *testing.T) {
		items := []item{{"a", 1}, {"b", 7}, {"c", 3}, {"d", 9}, {"e", 2}, {"f", 5}, {"g", 4}}

		ranked := rankDescending(items, TopN, byScore)

		assert.Equal(t, []item{{"d", 9}, {"b", 7}, {"f", 5}, {"g", 4}, {"c", 3}}, ranked)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		items := []item{{"first", 5}, {"low", 1}, {"second", 5}, {"third", 5}}

		ranked := rankDescending(items, TopN, byScore)

		assert.Equal(t, []item{{"first", 5}, {"second", 5}, {"third", 5}, {"low", 1}}, ranked)
	})

	t.Run("input is not modified", func(t *testing.T) {
		items := []item{{"a", 1}, {"b", 2}}

		rankDescending(items, TopN, byScore)

		assert.Equal(t, []item{{"a", 1}, {"b", 2}}, items)
	})

	t.Run("nil input yields an empty slice", func(t *testing.T) {
		ranked := rankDescending[item](nil, TopN, byScore)

		assert.NotNil(t, ranked)
		assert.Empty(t, ranked)
	})
}
