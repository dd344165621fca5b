package items

// Loadout is the run's equipped artifacts, at most one per slot.
type Loadout map[Slot]Artifact

// Occupied counts the filled slots.
func (l Loadout) Occupied() int {
	return len(l)
}

// Full reports whether all five slots are occupied.
func (l Loadout) Full() bool {
	return len(l) == len(Slots())
}

// InOrder returns the equipped artifacts in slot-declaration order,
// skipping empty slots. Scoring resolves contributions in this order.
func (l Loadout) InOrder() []Artifact {
	out := make([]Artifact, 0, len(l))
	for _, slot := range Slots() {
		if artifact, ok := l[slot]; ok {
			out = append(out, artifact)
		}
	}
	return out
}
