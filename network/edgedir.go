package network

import "fmt"

// DirCompare classifies one edge direction against another.
type DirCompare int

// Direction comparison outcomes.
const (
	// Different: the two directions do not connect the same stations
	// (or one is invalid).
	Different DirCompare = iota

	// Forward: both directions agree.
	Forward

	// Reverse: the directions connect the same stations oppositely.
	Reverse
)

// EdgeDir is the ordered station-key pair fixing how an undirected
// graph edge's transform is to be interpreted: the transform carries
// From-frame coordinates into Into-frame coordinates.
type EdgeDir struct {
	From StaKey
	Into StaKey
}

// IsValid reports whether the direction connects two distinct valid
// stations.
func (d EdgeDir) IsValid() bool {
	return d.From.IsValid() && d.Into.IsValid() && d.From != d.Into
}

// CompareTo classifies testDir relative to d: Forward when both agree,
// Reverse when testDir runs the same edge the other way, Different
// otherwise.
func (d EdgeDir) CompareTo(testDir EdgeDir) DirCompare {
	if !d.IsValid() {
		return Different
	}
	switch {
	case testDir.From == d.From && testDir.Into == d.Into:
		return Forward
	case testDir.Into == d.From && testDir.From == d.Into:
		return Reverse
	}
	return Different
}

// Reversed returns the direction with domain and range swapped.
func (d EdgeDir) Reversed() EdgeDir {
	return EdgeDir{From: d.Into, Into: d.From}
}

// IsForward reports whether the direction runs low key to high key.
func (d EdgeDir) IsForward() bool { return d.From < d.Into }

// IsReverse reports whether the direction runs high key to low key.
func (d EdgeDir) IsReverse() bool { return d.Into < d.From }

// InfoString describes the direction, prefixed with title when
// non-empty.
func (d EdgeDir) InfoString(title string) string {
	pre := ""
	if title != "" {
		pre = title + " "
	}
	if !d.IsValid() {
		return pre + "<null>"
	}
	return fmt.Sprintf("%sfrom: %d into: %d", pre, d.From, d.Into)
}

// String satisfies fmt.Stringer.
func (d EdgeDir) String() string { return d.InfoString("") }
