package fst

// computeProperties performs the single-pass scan §4.2's Properties(mask,
// test=true) promises: visit every state and arc once, deriving the
// acceptor, label-sorted, weighted, cyclic, top-sorted, string,
// determinism and epsilon bits. For a non-empty Fst the accessible,
// coaccessible, initial-cyclic and unweighted-cycles pairs are not
// computed: neither their Yes nor their No bit is set.
func computeProperties(f Fst) Properties {
	n := 0
	for it := f.States(); !it.Done(); it.Next() {
		n++
	}
	if n == 0 {
		return AcceptorYes | ILabelSortedYes | OLabelSortedYes | WeightedNo | CyclicNo |
			InitialCyclicNo | AccessibleYes | CoAccessibleYes | StringYes |
			IDeterministicYes | ODeterministicYes | NoEpsilonsYes | NoIEpsilonsYes |
			NoOEpsilonsYes | TopSortedYes | UnweightedCyclesNo
	}

	acceptor := true
	iSorted := true
	oSorted := true
	weighted := false
	hasEpsilon := false
	hasIEpsilon := false
	hasOEpsilon := false
	iDet := true
	oDet := true
	maxOutDegree := 0

	for it := f.States(); !it.Done(); it.Next() {
		s := it.Value()
		if w := f.Final(s); !w.ApproxEqual(w.Zero(), 0) && !w.ApproxEqual(w.One(), 0) {
			weighted = true
		}
		lastI := Label(-1 << 62)
		lastO := Label(-1 << 62)
		seenI := make(map[Label]bool)
		seenO := make(map[Label]bool)
		count := 0
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			count++
			if a.ILabel != a.OLabel {
				acceptor = false
			}
			if a.ILabel < lastI {
				iSorted = false
			}
			lastI = a.ILabel
			if a.OLabel < lastO {
				oSorted = false
			}
			lastO = a.OLabel
			if !a.Weight.ApproxEqual(a.Weight.Zero(), 0) && !a.Weight.ApproxEqual(a.Weight.One(), 0) {
				weighted = true
			}
			if a.IsEpsilon() {
				hasEpsilon = true
			}
			if a.IsInputEpsilon() {
				hasIEpsilon = true
			} else {
				if seenI[a.ILabel] {
					iDet = false
				}
				seenI[a.ILabel] = true
			}
			if a.IsOutputEpsilon() {
				hasOEpsilon = true
			} else {
				if seenO[a.OLabel] {
					oDet = false
				}
				seenO[a.OLabel] = true
			}
		}
		if count > maxOutDegree {
			maxOutDegree = count
		}
	}

	cyclic := hasCycle(f)

	p := Expanded
	if acceptor {
		p |= AcceptorYes
	} else {
		p |= AcceptorNo
	}
	if iSorted {
		p |= ILabelSortedYes
	} else {
		p |= ILabelSortedNo
	}
	if oSorted {
		p |= OLabelSortedYes
	} else {
		p |= OLabelSortedNo
	}
	if weighted {
		p |= WeightedYes
	} else {
		p |= WeightedNo
	}
	if cyclic {
		p |= CyclicYes
	} else {
		p |= CyclicNo
		p |= TopSortedYes
	}
	if !hasEpsilon {
		p |= NoEpsilonsYes
	} else {
		p |= NoEpsilonsNo
	}
	if !hasIEpsilon {
		p |= NoIEpsilonsYes
	} else {
		p |= NoIEpsilonsNo
	}
	if !hasOEpsilon {
		p |= NoOEpsilonsYes
	} else {
		p |= NoOEpsilonsNo
	}
	if iDet {
		p |= IDeterministicYes
	} else {
		p |= IDeterministicNo
	}
	if oDet {
		p |= ODeterministicYes
	} else {
		p |= ODeterministicNo
	}
	if maxOutDegree <= 1 {
		p |= StringYes
	} else {
		p |= StringNo
	}
	return p
}

// hasCycle runs a plain white/gray/black DFS from every state (the Fst may
// not be fully connected yet) to detect any back-edge.
func hasCycle(f Fst) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[StateId]int)
	var stack []StateId
	var iterStack []ArcIterator

	for it := f.States(); !it.Done(); it.Next() {
		root := it.Value()
		if color[root] != white {
			continue
		}
		stack = append(stack, root)
		iterStack = append(iterStack, f.Arcs(root))
		color[root] = gray
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			ai := iterStack[len(iterStack)-1]
			advanced := false
			for !ai.Done() {
				a := ai.Value()
				ai.Next()
				switch color[a.NextState] {
				case white:
					color[a.NextState] = gray
					stack = append(stack, a.NextState)
					iterStack = append(iterStack, f.Arcs(a.NextState))
					advanced = true
				case gray:
					return true
				}
				if advanced {
					break
				}
			}
			if !advanced {
				color[top] = black
				stack = stack[:len(stack)-1]
				iterStack = iterStack[:len(iterStack)-1]
			}
		}
	}
	return false
}
