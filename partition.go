package poly2mesh

// partition splits ring r (length m >= 3) into a list of y-monotone
// sub-rings whose union equals r. It processes a work queue of rings: each
// iteration either replaces one ring with the two halves produced by a
// valid split/merge diagonal, or declares it y-monotone and appends it to
// the result.
//
// Rather than splitting off sub-polygons within one continuous sweep, this
// restarts on the first diagonal found: the moment a valid diagonal is
// found the ring is cut in two and both halves are requeued. Each split
// strictly shrinks the largest ring in the queue, so the queue is finite.
func partition(r ring, c coords, log Logger) ([]ring, error) {
	if len(r) < 3 {
		return nil, preconditionf("ring has %d vertices, need >= 3", len(r))
	}
	if log == nil {
		log = noopLogger{}
	}

	lp, rp := extrema(r, c)
	if lp == rp {
		return nil, degenerateGeometryf("no distinct leftmost/rightmost vertex (all %d vertices share x=%v)", len(r), c.x(r[lp]))
	}
	a, b := r[lp], r[rp]
	collinear := true
	for _, v := range r {
		if (c.x(b)-c.x(a))*(c.y(v)-c.y(a))-(c.x(v)-c.x(a))*(c.y(b)-c.y(a)) != 0 {
			collinear = false
			break
		}
	}
	if collinear {
		return nil, degenerateGeometryf("all %d vertices are collinear", len(r))
	}

	var monotone []ring
	queue := []ring{r}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur) == 3 {
			// Every triangle is trivially monotone.
			monotone = append(monotone, cur)
			continue
		}

		r1, r2, split := splitOnce(cur, c, log)
		if !split {
			monotone = append(monotone, cur)
			continue
		}
		queue = append(queue, r1, r2)
	}

	return monotone, nil
}

// extrema returns the ring positions of the leftmost and rightmost
// vertices by x, ties broken by lower ring position.
func extrema(r ring, c coords) (leftPos, rightPos int) {
	for i := 1; i < len(r); i++ {
		if c.x(r[i]) < c.x(r[leftPos]) {
			leftPos = i
		}
		if c.x(r[i]) > c.x(r[rightPos]) {
			rightPos = i
		}
	}
	return leftPos, rightPos
}

// xOrderNeighbors returns, for every ring position, the adjacent position
// in x-ascending order (ties broken by lower y, then by ring position), or
// -1 when no such neighbor exists. This is built directly from a sort
// rather than incremental splicing since both produce the same global
// x-order.
func xOrderNeighbors(r ring, c coords) (left, right []int) {
	m := len(r)
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	// Insertion sort: m is small in practice and this keeps tie-breaking
	// explicit.
	less := func(a, b int) bool {
		xa, xb := c.x(r[a]), c.x(r[b])
		if xa != xb {
			return xa < xb
		}
		ya, yb := c.y(r[a]), c.y(r[b])
		if ya != yb {
			return ya < yb
		}
		return a < b
	}
	for i := 1; i < m; i++ {
		for j := i; j > 0 && less(order[j], order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	left = make([]int, m)
	right = make([]int, m)
	for i := range left {
		left[i] = -1
		right[i] = -1
	}
	for i, pos := range order {
		if i > 0 {
			left[pos] = order[i-1]
		}
		if i < m-1 {
			right[pos] = order[i+1]
		}
	}
	return left, right
}

// splitOnce walks r's x-sorted chain from its leftmost vertex looking for
// the first valid split or merge diagonal, advancing along each vertex's
// x-order successor rather than the polygon's own next/prev order — a
// vertex can be x-between the extrema without being ring-adjacent to
// either, and only the x-order walk is guaranteed to visit it before the
// walk reaches the rightmost vertex. If a diagonal is found, it returns the
// two resulting rings and true. Otherwise it returns (nil, nil, false): r
// is y-monotone.
func splitOnce(r ring, c coords, log Logger) (ring, ring, bool) {
	m := len(r)
	leftPos, rightPos := extrema(r, c)
	left, right := xOrderNeighbors(r, c)

	for p := leftPos; ; p = right[p] {
		prevPos := wrap(p-1, m)
		nextPos := wrap(p+1, m)
		v, pv, qv := r[p], r[prevPos], r[nextPos]
		xv, xp, xq := c.x(v), c.x(pv), c.x(qv)

		var connPos int
		isSplit := xp > xv && xq > xv && p != leftPos
		isMerge := !isSplit && xp < xv && xq < xv && p != rightPos
		switch {
		case isSplit:
			connPos = left[p]
		case isMerge:
			connPos = right[p]
		default:
			connPos = -1
		}

		if connPos >= 0 && validDiagonal(c, v, pv, qv, r[connPos]) {
			log.Printf("poly2mesh: partition: diagonal (%d, %d) [%s]", v, r[connPos], map[bool]string{true: "split", false: "merge"}[isSplit])
			a, b := p, connPos
			if a > b {
				a, b = b, a
			}
			return splitRingAt(r, a, b), splitRingAt(r, b, a), true
		}

		if p == rightPos {
			break
		}
	}
	return nil, nil, false
}

// validDiagonal reports whether the ray from v through conn enters the
// polygon interior, judged by where conn's direction falls relative to the
// wedge swept from v's edge to its next neighbor q through its previous
// neighbor p.
func validDiagonal(c coords, v, p, q, conn int) bool {
	thetaP := c.angleTo(v, p)
	thetaQ := c.angleTo(v, q)
	thetaC := c.angleTo(v, conn)
	if c.y(p) > c.y(q) {
		return thetaC > thetaP || thetaC < thetaQ
	}
	return thetaP < thetaC && thetaC < thetaQ
}

// splitRingAt returns the sub-ring R[from], R[from+1], ..., R[to] walking
// forward cyclically. Both endpoints are included exactly once.
func splitRingAt(r ring, from, to int) ring {
	m := len(r)
	n := wrap(to-from, m) + 1
	out := make(ring, n)
	for i := 0; i < n; i++ {
		out[i] = r[wrap(from+i, m)]
	}
	return out
}
