package mls

// The work area backing Public, Sign and Recover is a parallel pair of
// slices: w holds, for each entry currently on the combining stack, the
// level at which that entry sits (0 = a leaf hash), and wh holds the
// entries' hash values themselves, b bytes apart at matching indices.
// Combining two adjacent equal-level entries into one entry at the next
// level up is what turns a flat left-to-right sequence of leaf hashes
// into a Merkle root without ever materialising the whole tree.

// mergeStack assumes the entry at index j has just been placed (w[j] and
// wh[j*b:(j+1)*b] are valid) and repeatedly folds it into the entry below
// while the two sit at the same level, stopping at barrier: entries below
// index barrier are frozen and are never merged into. It returns the index
// of the top entry after merging.
func mergeStack(hc HashContext, w, wh []byte, b, j, barrier int) int {
	for j > barrier && w[j-1] == w[j] {
		j--
		w[j]++
		hc.Init()
		hc.Update(wh[j*b : j*b+2*b])
		hc.Finalize(wh[j*b : j*b+b])
	}
	return j
}

// placeAndMerge marks the entry already written at wh[j*b:(j+1)*b] as a
// level-0 entry, merges it per mergeStack, and returns the resulting
// stack height (the index of the next free slot).
func placeAndMerge(hc HashContext, w, wh []byte, b, j, barrier int) int {
	w[j] = 0
	return mergeStack(hc, w, wh, b, j, barrier) + 1
}

// pushLeaf hashes leaf into slot j of the stack, then merges and returns
// the new stack height, exactly as the private-key-enumeration loops in
// Public and Sign do for each successive key block.
func pushLeaf(hc HashContext, w, wh []byte, b, j int, leaf []byte, barrier int) int {
	hc.Init()
	hc.Update(leaf)
	hc.Finalize(wh[j*b : j*b+b])
	return placeAndMerge(hc, w, wh, b, j, barrier)
}
