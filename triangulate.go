package poly2mesh

// triangulate fans a single y-monotone ring s (length k >= 3) into k-2
// triangles, written as vertex-index triples into out starting at cursor.
// It returns the advanced cursor. Precondition: s is y-monotone, and out
// has room for at least cursor+3*(k-2) entries.
//
// This is the classic monotone-polygon sweep (two chains plus a pending
// stack). Case B's ear test is expressed as a signed-triangle-area check
// against the ring's own orientation: does the bend at the stack top turn
// into the polygon interior. The area form has no 2*pi wraparound edge to
// get backwards, and it reuses the same sign test already needed for
// emission winding below. Which chain a vertex arrived on still flips the
// sign — a vertex on the top chain and one on the bottom chain bend in
// opposite senses relative to the ring's orientation, so the test can't
// use one fixed sign for both.
func triangulate(s ring, c coords, out []uint32, cursor int, log Logger) int {
	k := len(s)
	if log == nil {
		log = noopLogger{}
	}
	budget := cursor + 3*(k-2)
	if len(out) < budget {
		internalInvariant("triangulate: output buffer too small for %d-vertex ring (need %d, have %d)", k, budget, len(out))
	}

	leftPos, rightPos := extrema(s, c)

	orient := 0.0
	for i := 0; i < k; i++ {
		j := wrap(i+1, k)
		orient += c.x(s[i])*c.y(s[j]) - c.x(s[j])*c.y(s[i])
	}

	topIdx, bottomIdx := leftPos, leftPos
	current := leftPos
	remaining := []int{leftPos} // ring positions, oldest to newest

	// triArea is the signed area of triangle (u, v, w).
	triArea := func(u, v, w Vec2) float64 {
		return ((v.X-u.X)*(w.Y-u.Y) - (w.X-u.X)*(v.Y-u.Y)) / 2
	}

	area := func(aPos, bPos, cPos int) float64 {
		return triArea(c[s[aPos]], c[s[bPos]], c[s[cPos]])
	}

	// emit writes (cur, x, y) choosing the order of x,y so the triangle's
	// winding matches the ring's own orientation.
	emit := func(curPos, xPos, yPos int) {
		if cursor+3 > budget {
			internalInvariant("triangulate: write cursor exceeded budget of %d", budget)
		}
		curIdx, xIdx, yIdx := s[curPos], s[xPos], s[yPos]
		if triArea(c[curIdx], c[xIdx], c[yIdx])*orient < 0 {
			xIdx, yIdx = yIdx, xIdx
		}
		out[cursor] = uint32(curIdx)
		out[cursor+1] = uint32(xIdx)
		out[cursor+2] = uint32(yIdx)
		cursor += 3
	}

	for step := 0; step < k-1; step++ {
		nextTop := wrap(topIdx+1, k)
		nextBottom := wrap(bottomIdx-1, k)
		moveTop := (c.x(s[nextTop]) < c.x(s[nextBottom]) || bottomIdx == rightPos) && topIdx != rightPos

		last := current
		if moveTop {
			topIdx = nextTop
			current = topIdx
		} else {
			bottomIdx = nextBottom
			current = bottomIdx
		}

		var chainSwitch bool
		if moveTop {
			chainSwitch = wrap(current-1, k) != last
		} else {
			chainSwitch = wrap(current+1, k) != last
		}

		if chainSwitch {
			// Case A: current fans out against every vertex still pending.
			n := len(remaining)
			for j := 0; j < n-1; j++ {
				vertA := remaining[0]
				remaining = remaining[1:]
				vertB := remaining[0]
				if current == vertA || current == vertB {
					log.Printf("poly2mesh: triangulate: aborting fan at %d (%d, %d)", s[current], s[vertA], s[vertB])
					break
				}
				emit(current, vertA, vertB)
			}
			remaining = append(remaining, current)
		} else {
			// Case B: clip ears off the same chain until the bend no
			// longer turns into the polygon interior. The sign a
			// "turns inward" triangle carries depends on which chain
			// current just joined, so chainSign flips the comparison
			// accordingly.
			chainSign := -1.0
			if moveTop {
				chainSign = 1.0
			}
			for len(remaining) >= 2 {
				p := remaining[len(remaining)-1]
				pp := remaining[len(remaining)-2]
				if area(pp, p, current)*orient*chainSign <= 0 {
					break
				}
				emit(current, p, pp)
				remaining = remaining[:len(remaining)-1]
			}
			remaining = append(remaining, current)
		}
	}

	return cursor
}
