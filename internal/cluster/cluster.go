// Package cluster partitions fingerprinted items into duplicate groups.
package cluster

import (
	"sort"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/media"
)

// Group is one duplicate cluster. Every group has at least one member;
// the last member is the anchor the others were compared against.
type Group struct {
	Items []media.Item
}

// Canonical returns the member used as the naming anchor: the item that
// was popped from the working set, always appended last.
func (g Group) Canonical() media.Item {
	return g.Items[len(g.Items)-1]
}

// Cluster groups items by greedy nearest-neighbor comparison against a
// shrinking working set. It consumes the input slice.
//
// The working set is treated as a stack: the top item is popped as the
// group anchor, the remaining set is scanned from its end toward its
// start, and every item within the similarity threshold of the anchor
// is moved into the anchor's group. Similarity is only ever checked
// against the anchor, so a group may contain two members that are not
// similar to each other. That non-transitivity is part of the grouping
// contract; ClusterTransitive is the explicit alternative.
//
// Groups are returned sorted by descending member count, ties keeping
// construction order. The clustering itself is strictly sequential:
// it mutates one shared working set with ordered removals.
func Cluster(items []media.Item, alg fingerprint.Algorithm, threshold int) []Group {
	work := items
	var groups []Group

	for len(work) > 0 {
		anchor := work[len(work)-1]
		work = work[:len(work)-1]

		group := Group{}
		for i := len(work) - 1; i >= 0; i-- {
			if alg.Distance(anchor.Fingerprint, work[i].Fingerprint) < threshold {
				group.Items = append(group.Items, work[i])
				work = append(work[:i], work[i+1:]...)
			}
		}
		group.Items = append(group.Items, anchor)
		groups = append(groups, group)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Items) > len(groups[j].Items)
	})
	return groups
}
