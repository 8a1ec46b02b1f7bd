package squad

// Troop is one member of the squad. Its position is an offset from the
// player anchor; troops have no identity beyond their slot index.
type Troop struct {
	OffsetX float64
	OffsetY float64
}

// FormationColumns is the fixed width of the formation grid.
const FormationColumns = 3

// Rebuild reassigns every troop's offset from its index.
// Column grows leftward from the anchor, row grows downward.
func Rebuild(troops []Troop, unitW, unitH, gap float64) {
	for i := range troops {
		col := i % FormationColumns
		row := i / FormationColumns
		troops[i].OffsetX = -float64(col) * (unitW + gap)
		troops[i].OffsetY = float64(row) * (unitH + gap)
	}
}

// Formation is the player's squad laid out on a 3-wide grid.
type Formation struct {
	troops []Troop
	unitW  float64
	unitH  float64
	gap    float64
	max    int
}

// NewFormation creates a formation with count troops, clamped to [0, max].
func NewFormation(count, max int, unitW, unitH, gap float64) *Formation {
	f := &Formation{
		troops: make([]Troop, 0, max),
		unitW:  unitW,
		unitH:  unitH,
		gap:    gap,
		max:    max,
	}
	for i := 0; i < count; i++ {
		f.Add()
	}
	return f
}

// Len returns the number of troops.
func (f *Formation) Len() int {
	return len(f.troops)
}

// Max returns the formation cap.
func (f *Formation) Max() int {
	return f.max
}

// Troops returns the troops in slot order. Callers must not retain the slice.
func (f *Formation) Troops() []Troop {
	return f.troops
}

// Add appends one troop. It is a no-op at capacity and reports whether a troop was added.
func (f *Formation) Add() bool {
	if len(f.troops) >= f.max {
		return false
	}
	f.troops = append(f.troops, Troop{})
	f.rebuild()
	return true
}

// RemoveTail removes up to n troops from the highest indices and returns how many went.
func (f *Formation) RemoveTail(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(f.troops) {
		n = len(f.troops)
	}
	f.troops = f.troops[:len(f.troops)-n]
	f.rebuild()
	return n
}

// RemoveAt removes the troop in slot i. Out-of-range indices are ignored.
func (f *Formation) RemoveAt(i int) bool {
	if i < 0 || i >= len(f.troops) {
		return false
	}
	f.troops = append(f.troops[:i], f.troops[i+1:]...)
	f.rebuild()
	return true
}

// Clear removes every troop.
func (f *Formation) Clear() {
	f.troops = f.troops[:0]
}

// Depth returns the largest row offset, used to keep the formation on the bridge.
func (f *Formation) Depth() float64 {
	depth := 0.0
	for _, t := range f.troops {
		if t.OffsetY > depth {
			depth = t.OffsetY
		}
	}
	return depth
}

func (f *Formation) rebuild() {
	Rebuild(f.troops, f.unitW, f.unitH, f.gap)
}
