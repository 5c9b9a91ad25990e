package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexesOrder(t *testing.T) {
	c := require.New(t)

	table := Table{
		Name:    "orders",
		HashKey: Key{Name: "PK", Type: KeyTypeString},
		GlobalSecondaryIndexes: []SecondaryIndex{
			{Name: "g1", Type: IndexTypeGlobal, HashKey: Key{Name: "a", Type: KeyTypeString}},
			{Name: "g2", Type: IndexTypeGlobal, HashKey: Key{Name: "b", Type: KeyTypeNumber}},
		},
		LocalSecondaryIndexes: []SecondaryIndex{
			{Name: "l1", Type: IndexTypeLocal, HashKey: Key{Name: "PK", Type: KeyTypeString}},
		},
	}

	names := []string{}
	for _, idx := range table.Indexes() {
		names = append(names, idx.Name)
	}

	c.Equal([]string{"g1", "g2", "l1"}, names)
}

func TestIndexLookup(t *testing.T) {
	c := require.New(t)

	table := Table{
		HashKey: Key{Name: "PK", Type: KeyTypeString},
		GlobalSecondaryIndexes: []SecondaryIndex{
			{Name: "g1", Type: IndexTypeGlobal, HashKey: Key{Name: "a", Type: KeyTypeString}},
		},
	}

	idx, ok := table.Index("g1")
	c.True(ok)
	c.Equal("a", idx.HashKey.Name)

	_, ok = table.Index("missing")
	c.False(ok)
}
