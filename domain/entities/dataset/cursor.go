package dataset

import "bikeshare/domain/entities/trip"

// Cursor is the position of a row window over a FilteredDataset.
// Cursors are values: Next returns a new cursor instead of moving this one.
type Cursor struct {
	Start int
	Count int
}

func NewCursor(pageSize int) Cursor {
	return Cursor{Start: 0, Count: pageSize}
}

// Next returns the cursor of the following window
func (c Cursor) Next() Cursor {
	return Cursor{Start: c.Start + c.Count, Count: c.Count}
}

// Read returns the rows of fd under the cursor
func (c Cursor) Read(fd *FilteredDataset) []trip.TripRecord {
	return fd.Window(c.Start, c.Count)
}

// Exhausted returns true when no row remains after the cursor window
func (c Cursor) Exhausted(fd *FilteredDataset) bool {
	return c.Start+c.Count >= fd.Len()
}
