// Package schema models the key layout of a table and its secondary
// indexes. It is a read-only snapshot supplied by the table-metadata
// collaborator; the compiler never mutates it.
package schema

// KeyType is the attribute type of a key: S, N or B.
type KeyType string

const (
	// KeyTypeString string key attribute
	KeyTypeString KeyType = "S"
	// KeyTypeNumber number key attribute
	KeyTypeNumber KeyType = "N"
	// KeyTypeBinary binary key attribute
	KeyTypeBinary KeyType = "B"
)

// Key is a key attribute: its name and type.
type Key struct {
	Name string
	Type KeyType
}

// IndexType distinguishes global from local secondary indexes.
type IndexType string

const (
	// IndexTypeGlobal global secondary index, independent partitioning
	IndexTypeGlobal IndexType = "global"
	// IndexTypeLocal local secondary index, shares the table hash key
	IndexTypeLocal IndexType = "local"
)

// SecondaryIndex is an alternate key projection of the table.
type SecondaryIndex struct {
	Name    string
	Type    IndexType
	HashKey Key
	SortKey *Key
}

// Table describes a table's key schema. SortKey is nil for hash-only
// tables. Indexes keep their declaration order: the planner's tie-break
// between indexes follows it.
type Table struct {
	Name                   string
	HashKey                Key
	SortKey                *Key
	GlobalSecondaryIndexes []SecondaryIndex
	LocalSecondaryIndexes  []SecondaryIndex
}

// Indexes returns all secondary indexes in planner precedence order:
// global indexes first, then local, each in declaration order.
func (t Table) Indexes() []SecondaryIndex {
	indexes := make([]SecondaryIndex, 0, len(t.GlobalSecondaryIndexes)+len(t.LocalSecondaryIndexes))
	indexes = append(indexes, t.GlobalSecondaryIndexes...)
	indexes = append(indexes, t.LocalSecondaryIndexes...)

	return indexes
}

// Index returns the secondary index with the given name.
func (t Table) Index(name string) (SecondaryIndex, bool) {
	for _, idx := range t.Indexes() {
		if idx.Name == name {
			return idx, true
		}
	}

	return SecondaryIndex{}, false
}
