package cluster

import (
	"fmt"
	"sort"
)

// Cluster is one connected component of the match-pair graph: the row
// indices of every record judged, directly or transitively, to be the same
// investor. Members are ascending. A singleton cluster is a row with no
// duplicate found.
type Cluster struct {
	Members []int
}

// Builder accumulates matching pairs and produces the final partition.
// Matching A~B and B~C places A, B and C in one cluster even when A and C
// would not match on direct comparison; chained identity resolution is the
// intended behavior, not an accident of implementation.
type Builder struct {
	uf *UnionFind
}

// NewBuilder creates a builder over n row indices, each starting in its own
// singleton cluster.
func NewBuilder(n int) *Builder {
	return &Builder{uf: NewUnionFind(n)}
}

// Link records that rows a and b matched.
func (b *Builder) Link(a, c int) {
	b.uf.Union(a, c)
}

// Clusters extracts the partition. Clusters are ordered by their lowest
// member index and members within a cluster are ascending, so output order
// is deterministic for a given input ordering.
func (b *Builder) Clusters() []Cluster {
	groups := make(map[int][]int)
	for i := 0; i < b.uf.Len(); i++ {
		root := b.uf.Find(i)
		groups[root] = append(groups[root], i)
	}

	clusters := make([]Cluster, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)
		clusters = append(clusters, Cluster{Members: members})
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Members[0] < clusters[j].Members[0]
	})

	return clusters
}

// VerifyPartition checks that the clusters cover every row index exactly
// once. A violation is a programming error in the builder, never a data
// condition, so callers abort the run instead of recovering.
func VerifyPartition(clusters []Cluster, n int) error {
	seen := make(map[int]int)
	total := 0
	for ci, c := range clusters {
		if len(c.Members) == 0 {
			return fmt.Errorf("cluster %d is empty", ci)
		}
		for _, m := range c.Members {
			if m < 0 || m >= n {
				return fmt.Errorf("cluster %d contains out-of-range row %d", ci, m)
			}
			if prev, dup := seen[m]; dup {
				return fmt.Errorf("row %d appears in clusters %d and %d", m, prev, ci)
			}
			seen[m] = ci
			total++
		}
	}
	if total != n {
		return fmt.Errorf("clusters cover %d rows, expected %d", total, n)
	}
	return nil
}
