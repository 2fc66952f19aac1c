package model

import "strings"

// Prepend returns a new list with c first, matching the newest-first order
// of the counter list.
func Prepend(counters []Counter, c Counter) []Counter {
	out := make([]Counter, 0, len(counters)+1)
	out = append(out, c)
	return append(out, counters...)
}

// Remove returns counters without the one matching id and whether it was
// found.
func Remove(counters []Counter, id string) ([]Counter, bool) {
	out := make([]Counter, 0, len(counters))
	found := false
	for _, c := range counters {
		if c.ID == id {
			found = true
			continue
		}
		out = append(out, c)
	}
	return out, found
}

// Update applies fn to the counter matching id in a copy of counters.
func Update(counters []Counter, id string, fn func(*Counter)) ([]Counter, bool) {
	out := make([]Counter, len(counters))
	copy(out, counters)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
			return out, true
		}
	}
	return out, false
}

// Move takes the counter with draggedID out of the list and inserts it at the
// index currently held by targetID. The list is returned unchanged when the
// ids are equal or either one is missing.
func Move(counters []Counter, draggedID, targetID string) []Counter {
	out := make([]Counter, len(counters))
	copy(out, counters)
	if draggedID == "" || draggedID == targetID {
		return out
	}
	from, to := IndexOf(out, draggedID), IndexOf(out, targetID)
	if from < 0 || to < 0 {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Counter{moved}, out[to:]...)...)
	return out
}

// Merge puts imported counters first and keeps every existing counter whose
// id is not among them. Only the first imported copy of an id is kept.
func Merge(imported, existing []Counter) []Counter {
	seen := make(map[string]bool, len(imported))
	out := make([]Counter, 0, len(imported)+len(existing))
	for _, c := range imported {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	for _, c := range existing {
		if seen[c.ID] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Widgets returns the pinned counters in list order.
func Widgets(counters []Counter) []Counter {
	out := make([]Counter, 0, len(counters))
	for _, c := range counters {
		if c.IsWidget {
			out = append(out, c)
		}
	}
	return out
}

func IndexOf(counters []Counter, id string) int {
	for i, c := range counters {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Find resolves a counter by exact id first, then by case-insensitive name.
func Find(counters []Counter, ref string) (Counter, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Counter{}, false
	}
	for _, c := range counters {
		if c.ID == ref {
			return c, true
		}
	}
	for _, c := range counters {
		if strings.EqualFold(c.Name, ref) {
			return c, true
		}
	}
	return Counter{}, false
}
