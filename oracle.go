package gridpane

// SectionOracle maps pixel offsets to row or column sections and back.
// One oracle instance serves one axis; a pane holds two, one for rows
// and one for columns.
//
// The pane only reads from its oracles and never assumes ownership:
// oracle lifetime is managed by the caller.
type SectionOracle interface {
	// SectionAt returns the index of the section covering the given
	// pixel offset, or false when the offset lies beyond all sections.
	SectionAt(offset int) (int, bool)

	// SectionPosition returns the pixel offset of the section's start.
	SectionPosition(index int) int

	// SectionSize returns the pixel size of the section.
	SectionSize(index int) int

	// SectionCount returns the number of sections.
	SectionCount() int
}

// SectionNotifier is an optional interface for oracles that announce
// section size changes. The pane subscribes on assignment and closes the
// subscription when the oracle is replaced or the pane is closed.
type SectionNotifier interface {
	// OnSectionsResized registers fn to run after any section changes
	// size or the section count changes.
	OnSectionsResized(fn func()) Subscription
}

// Subscription is a handle to a registered notification callback.
type Subscription interface {
	// Close unregisters the callback. Close is idempotent.
	Close()
}
