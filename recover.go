package mls

// Recover replays sig against the B-byte message hash a using wa as
// scratch (capacity at least RcSz(h, sig) bytes) and returns the
// recovered public root, or nil if any input is invalid, sig is too
// short to be well-formed, or the capability cannot be allocated.
//
// The returned root must be compared by the caller against a previously
// trusted root; Recover never rejects a syntactically well-formed
// signature on its own, it simply computes whatever root that signature
// happens to fold to.
func Recover(cap Capability, wa, a, sig []byte) []byte {
	if cap == nil || wa == nil || a == nil || sig == nil {
		return nil
	}
	h := cap.H()
	jL, jR, ok := stackLens(h, sig)
	if !ok || EgSz(h, sig) == 0 {
		return nil
	}
	total := jL + jR
	if total > 255 {
		return nil
	}
	waSz := WaSz(h, uint8(total))
	if waSz == 0 || Sz(len(wa)) < waSz {
		return nil
	}
	b := 1 << h
	if len(a) < b {
		return nil
	}

	hc, release, ok := allocHash(cap)
	if !ok {
		return nil
	}
	defer release()

	entries := waEntries(h, uint8(total))
	w := wa[:entries]
	wh := wa[entries:]

	pos := 1
	j := jL
	for k := 0; k < jL; k++ {
		w[k] = sig[pos]
		pos++
		copy(wh[k*b:(k+1)*b], sig[pos:pos+b])
		pos += b
	}

	for k := 0; k < b; k++ {
		for t := byte(0x80); t != 0; t >>= 1 {
			w[j] = 0
			if a[k]&t != 0 {
				copy(wh[j*b:(j+1)*b], sig[pos:pos+b])
				pos += b
				j++
				hc.Init()
				hc.Update(sig[pos : pos+b])
				hc.Finalize(wh[j*b : j*b+b])
				pos += b
			} else {
				hc.Init()
				hc.Update(sig[pos : pos+b])
				hc.Finalize(wh[j*b : j*b+b])
				pos += b
				j++
				copy(wh[j*b:(j+1)*b], sig[pos:pos+b])
				pos += b
			}
			j = placeAndMerge(hc, w, wh, b, j, 0)
		}
	}

	pos++ // skip the right-stack count byte, already captured in jR
	for k := 0; k < jR; k++ {
		w[j] = sig[pos]
		pos++
		copy(wh[j*b:(j+1)*b], sig[pos:pos+b])
		pos += b
		j = mergeStack(hc, w, wh, b, j, 0) + 1
	}

	return wh[:b]
}
