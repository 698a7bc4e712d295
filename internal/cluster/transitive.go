package cluster

import (
	"sort"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/media"
)

// ClusterTransitive groups items by the transitive closure of the
// similarity relation: union-find over all similar pairs. Unlike
// Cluster, two members of the same group may be connected only through
// a chain of intermediate items. Opt-in; it deliberately produces
// different groups than the default greedy pass and is never the
// default.
//
// Members keep input order within a group, so the last member plays the
// canonical role just like the greedy anchor does. Groups are sorted by
// descending size, ties keeping the order of their first members.
func ClusterTransitive(items []media.Item, alg fingerprint.Algorithm, threshold int) []Group {
	parent := make([]int, len(items))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		parent[find(a)] = find(b)
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if alg.Distance(items[i].Fingerprint, items[j].Fingerprint) < threshold {
				union(i, j)
			}
		}
	}

	byRoot := make(map[int]*Group)
	var order []int
	for i, item := range items {
		root := find(i)
		g, ok := byRoot[root]
		if !ok {
			g = &Group{}
			byRoot[root] = g
			order = append(order, root)
		}
		g.Items = append(g.Items, item)
	}

	groups := make([]Group, 0, len(order))
	for _, root := range order {
		groups = append(groups, *byRoot[root])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Items) > len(groups[j].Items)
	})
	return groups
}
