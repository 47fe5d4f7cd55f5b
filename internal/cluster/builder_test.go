package cluster

import (
	"reflect"
	"testing"
)

func TestClustersPartition(t *testing.T) {
	b := NewBuilder(6)
	b.Link(0, 2)
	b.Link(2, 4)
	b.Link(1, 5)

	clusters := b.Clusters()
	want := [][]int{{0, 2, 4}, {1, 5}, {3}}

	if len(clusters) != len(want) {
		t.Fatalf("got %d clusters, want %d", len(clusters), len(want))
	}
	for i, c := range clusters {
		if !reflect.DeepEqual(c.Members, want[i]) {
			t.Errorf("cluster %d members = %v, want %v", i, c.Members, want[i])
		}
	}

	if err := VerifyPartition(clusters, 6); err != nil {
		t.Errorf("VerifyPartition() = %v, want nil", err)
	}
}

func TestTransitivityImposed(t *testing.T) {
	// A matches B and B matches C; A and C end up together even though
	// they never matched directly.
	b := NewBuilder(3)
	b.Link(0, 1)
	b.Link(1, 2)

	clusters := b.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1", len(clusters))
	}
	if !reflect.DeepEqual(clusters[0].Members, []int{0, 1, 2}) {
		t.Errorf("members = %v, want [0 1 2]", clusters[0].Members)
	}
}

func TestSingletonsAreValidClusters(t *testing.T) {
	b := NewBuilder(3)

	clusters := b.Clusters()
	if len(clusters) != 3 {
		t.Fatalf("got %d clusters, want 3 singletons", len(clusters))
	}
	for i, c := range clusters {
		if len(c.Members) != 1 || c.Members[0] != i {
			t.Errorf("cluster %d = %v, want singleton [%d]", i, c.Members, i)
		}
	}
}

func TestUnionFindIdempotent(t *testing.T) {
	uf := NewUnionFind(4)
	uf.Union(0, 1)
	uf.Union(0, 1)
	uf.Union(1, 0)

	if uf.Find(0) != uf.Find(1) {
		t.Error("0 and 1 should share a root")
	}
	if uf.Find(2) == uf.Find(0) {
		t.Error("2 should remain separate")
	}
}

func TestVerifyPartitionViolations(t *testing.T) {
	tests := []struct {
		name     string
		clusters []Cluster
		n        int
	}{
		{"duplicate row", []Cluster{{Members: []int{0, 1}}, {Members: []int{1}}}, 2},
		{"missing row", []Cluster{{Members: []int{0}}}, 2},
		{"empty cluster", []Cluster{{Members: nil}, {Members: []int{0}}}, 1},
		{"out of range", []Cluster{{Members: []int{0, 5}}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := VerifyPartition(tt.clusters, tt.n); err == nil {
				t.Error("VerifyPartition() = nil, want error")
			}
		})
	}
}
