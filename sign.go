package mls

// Sign produces a signature over the B-byte message hash a using leaf
// offset o, writing into sig (capacity at least SgSz(h,S) bytes) and
// returning the prefix of sig actually written, or nil if any input is
// invalid, o is out of range, or the capability cannot be allocated.
//
// The private key is walked in three phases: a left Merkle prefix up to
// the chosen leaf, the Lamport reveal of that leaf against a, and a
// right Merkle suffix covering the remaining leaves. The right suffix
// omits any stack entry the recoverer can re-derive from material
// already written to the left stack or reconstructed from the Lamport
// reveal — that bookkeeping is the carry-level scan below.
func Sign(p *Params, key, wa, a, sig []byte, o uint32) []byte {
	if p == nil || p.Cap == nil || key == nil || wa == nil || a == nil || sig == nil {
		return nil
	}
	if uint64(o) >= uint64(1)<<uint(p.S) {
		return nil
	}
	h := p.Cap.H()
	prSz := PrSz(h, p.S)
	if prSz == 0 || Sz(len(key)) < prSz {
		return nil
	}
	waSz := WaSz(h, p.S)
	if waSz == 0 || Sz(len(wa)) < waSz {
		return nil
	}
	b := 1 << h
	if len(a) < b {
		return nil
	}
	sgSz := SgSz(h, p.S)
	if sgSz == 0 || Sz(len(sig)) < sgSz {
		return nil
	}

	hc, release, ok := allocHash(p.Cap)
	if !ok {
		return nil
	}
	defer release()

	entries := waEntries(h, p.S)
	w := wa[:entries]
	wh := wa[entries:]
	totalBlocks := int(prSz >> Sz(h))

	// Phase A: left Merkle prefix, one leaf per private-key block up to
	// the chosen offset.
	oBlocks := int(o) << (int(h) + 4)
	i, j := 0, 0
	for ; i < oBlocks; i++ {
		j = pushLeaf(hc, w, wh, b, j, key[i*b:(i+1)*b], 0)
	}

	// Phase B: emit the left stack.
	pos := 0
	sig[pos] = byte(j)
	pos++
	for k := 0; k < j; k++ {
		sig[pos] = w[k]
		pos++
		copy(sig[pos:pos+b], wh[k*b:(k+1)*b])
		pos += b
	}

	// Phase C: establish the carry level m. The revealed leaf's root sits
	// at level h+4; walking the left stack from the top, each entry whose
	// level is at most the running m folds with it on the recoverer's
	// side and raises m by one. n keeps the emitted left-stack size for
	// the scan in Phase E.
	m := int(h) + 4
	n := j
	for j > 0 && int(w[j-1]) <= m {
		m++
		j--
	}

	// Phase D: Lamport reveal of the chosen leaf against a.
	for k := 0; k < b; k++ {
		for t := byte(0x80); t != 0; t >>= 1 {
			if a[k]&t != 0 {
				hc.Init()
				hc.Update(key[i*b : (i+1)*b])
				hc.Finalize(sig[pos : pos+b])
				pos += b
				i++
				copy(sig[pos:pos+b], key[i*b:(i+1)*b])
				pos += b
			} else {
				copy(sig[pos:pos+b], key[i*b:(i+1)*b])
				pos += b
				i++
				hc.Init()
				hc.Update(key[i*b : (i+1)*b])
				hc.Finalize(sig[pos : pos+b])
				pos += b
			}
			i++
		}
	}

	// Phase E: right Merkle suffix, barrier k protects the portion of
	// the stack already folded past the carry level.
	k := 0
	j = 0
	for ; i < totalBlocks; i++ {
		hc.Init()
		hc.Update(key[i*b : (i+1)*b])
		hc.Finalize(wh[j*b : j*b+b])
		w[j] = 0
		top := mergeStack(hc, w, wh, b, j, k)
		if int(w[top]) == m {
			k++
			m++
			for idx := n - 1; idx >= 0; idx-- {
				lvl := int(sig[1+idx*(1+b)])
				if lvl > m {
					break
				}
				if lvl == m {
					m++
				}
			}
		}
		j = top + 1
	}

	// Phase F: emit the right stack.
	sig[pos] = byte(j)
	pos++
	for kk := 0; kk < j; kk++ {
		sig[pos] = w[kk]
		pos++
		copy(sig[pos:pos+b], wh[kk*b:(kk+1)*b])
		pos += b
	}

	return sig[:pos]
}
