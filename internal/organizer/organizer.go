// Package organizer performs the final move of grouped images into the
// target directory under their fingerprint-derived names.
package organizer

import (
	"log"
	"os"
	"path/filepath"

	"github.com/kozaktomas/photo-dedupe/internal/cluster"
	"github.com/kozaktomas/photo-dedupe/internal/naming"
)

// Stats summarizes a move pass.
type Stats struct {
	Moved  int
	Failed int
}

// Move renames every group member into targetDir. The canonical member
// (last in the group) gets rank 0; the remaining members get ranks
// 1..n-1 in group order.
//
// A failed rename leaves the source file untouched, is logged, and does
// not stop the remaining moves. An already existing destination counts
// as a failure: os.Rename would silently replace it.
func Move(groups []cluster.Group, targetDir string) Stats {
	var stats Stats
	for _, group := range groups {
		canonical := group.Canonical()
		for i, member := range group.Items {
			rank := i + 1
			if i == len(group.Items)-1 {
				rank = 0
			}
			name := naming.FileName(canonical.Fingerprint, member.Fingerprint, rank, member.Format)
			dst := filepath.Join(targetDir, name)

			if _, err := os.Stat(dst); err == nil {
				log.Printf("not moving %s: destination %s already exists", member.Path, dst)
				stats.Failed++
				continue
			}
			if err := os.Rename(member.Path, dst); err != nil {
				log.Printf("failed to move %s: %v", member.Path, err)
				stats.Failed++
				continue
			}
			stats.Moved++
		}
	}
	return stats
}
