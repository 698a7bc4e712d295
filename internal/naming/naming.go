// Package naming derives deterministic output names for duplicate
// group members. Names are a pure function of the canonical
// fingerprint, the member fingerprint, the member's rank within the
// group and the recognized format.
package naming

import (
	"fmt"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/media"
)

// BaseName returns the output basename for a group member.
//
// Rank 0 is the canonical member and is named by its own fingerprint
// alone. Every other member carries the canonical fingerprint as a
// group prefix, its rank, and its own fingerprint, so a renamed file
// stays traceable both to its group and to its exact content.
func BaseName(canonical, member fingerprint.Fingerprint, rank int) string {
	if rank == 0 {
		return canonical.String()
	}
	return fmt.Sprintf("%s-%d-%s", canonical, rank, member)
}

// FileName appends the canonical extension of the recognized input
// format. The extension never comes from the source filename; .jpeg,
// .jpe and -large variants all normalize to the format's own extension.
func FileName(canonical, member fingerprint.Fingerprint, rank int, format media.Format) string {
	return BaseName(canonical, member, rank) + format.Ext()
}
