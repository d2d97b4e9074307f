package mls

// Public computes the Merkle root over the entirety of key, the private
// key buffer (PrSz(h,S) bytes), using wa as scratch (WaSz(h,S) bytes). It
// returns a slice of wa holding the root hash, or nil if p is
// incomplete, or key or wa is too small.
//
// Computing the root requires hashing every leaf derived from key, so
// this is the expensive, normally-once-per-key operation. Sign likewise
// hashes every block of the private key; Recover reads only the
// signature and keeps a handful of stack entries.
func Public(p *Params, key, wa []byte) []byte {
	if p == nil || p.Cap == nil || key == nil || wa == nil {
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

	hc, release, ok := allocHash(p.Cap)
	if !ok {
		return nil
	}
	defer release()

	b := 1 << h
	entries := waEntries(h, p.S)
	w := wa[:entries]
	wh := wa[entries:]

	blocks := int(prSz >> Sz(h))
	j := 0
	for i := 0; i < blocks; i++ {
		j = pushLeaf(hc, w, wh, b, j, key[i*b:(i+1)*b], 0)
	}
	return wh[:b]
}
