package domain

// IsSeed reports whether h is one of the two seeds, Adam or Eve.
func IsSeed(h Human) bool {
	switch v := h.(type) {
	case *Adam:
		return isAdam(v)
	case *Eve:
		return isEve(v)
	default:
		return false
	}
}

// Parents returns the mother then the father of h, skipping absent ones.
func Parents(h Human) []Human {
	if absent(h) {
		return nil
	}

	out := make([]Human, 0, 2)
	if m := h.Mother(); !absent(m) {
		out = append(out, m)
	}
	if f := h.Father(); !absent(f) {
		out = append(out, f)
	}
	return out
}

// Ancestors walks the lineage of h breadth-first, nearest generation first.
// Each ancestor appears once even when reachable through several paths.
func Ancestors(h Human) []Human {
	var out []Human
	seen := map[Human]bool{}

	queue := Parents(h)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if seen[cur] {
			continue
		}
		seen[cur] = true
		out = append(out, cur)

		queue = append(queue, Parents(cur)...)
	}
	return out
}

// DescendsFrom reports whether ancestor appears in the lineage of h.
func DescendsFrom(h, ancestor Human) bool {
	if absent(ancestor) {
		return false
	}
	for _, a := range Ancestors(h) {
		if a == ancestor {
			return true
		}
	}
	return false
}

// Generation is 0 for the seeds and one more than the deepest parent
// otherwise. Eve counts as generation 0 even though Adam is her father.
func Generation(h Human) int {
	return generation(h, map[Human]int{})
}

func generation(h Human, memo map[Human]int) int {
	if absent(h) || IsSeed(h) {
		return 0
	}
	if g, ok := memo[h]; ok {
		return g
	}

	deepest := 0
	for _, p := range Parents(h) {
		if g := generation(p, memo); g > deepest {
			deepest = g
		}
	}

	memo[h] = deepest + 1
	return deepest + 1
}
