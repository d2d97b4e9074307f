// Package leafstore implements the persistent "used-leaf bitmap" the
// core's design notes call for: the signing core itself never tracks
// which leaf offsets have been spent, so any long-lived private key
// needs a wrapper that does, to avoid ever signing twice from the same
// offset. Store is that wrapper, backed by a memory-mapped file.
package leafstore

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/bwesterb/byteswriter"
	"github.com/cespare/xxhash"
	mmap "github.com/edsrzf/mmap-go"
	"github.com/hashicorp/go-multierror"
	"github.com/nightlyone/lockfile"

	mls "github.com/gdavidbutler/MerkleLamportSignature"
)

const magic = "mlsleafv1"

// header is the fixed-size record at the start of the store file.
type header struct {
	Magic    [9]byte
	Leaves   uint64 // number of leaf offsets this store tracks, i.e. 2^s
	Checksum uint64 // xxhash.Sum64 of Magic||Leaves
}

const headerSize = 9 + 8 + 8

// Store tracks, for one private key, which of its 2^s leaf offsets have
// already been used for a signature. It is not safe for concurrent use
// by multiple processes beyond the single advisory lock taken at Open;
// callers in the same process must serialize their own access.
type Store struct {
	path  string
	flock lockfile.Lockfile
	file  *os.File
	data  mmap.MMap

	leaves       uint64
	bitmapOffset int64
}

// Open opens or creates the leaf store at path for a key with 2^s
// available signings. If the file already exists, its recorded leaf
// count must match leaves or Open fails.
func Open(path string, leaves uint64) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, wrap(err, "resolve leaf store path")
	}

	flock, err := lockfile.New(abs + ".lock")
	if err != nil {
		return nil, wrap(err, "create leaf store lockfile")
	}
	if err := flock.TryLock(); err != nil {
		return nil, wrap(err, "lock leaf store")
	}

	bitmapBytes := int64((leaves + 7) / 8)
	totalSize := int64(headerSize) + bitmapBytes

	_, statErr := os.Stat(abs)
	isNew := os.IsNotExist(statErr)

	file, err := os.OpenFile(abs, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		flock.Unlock()
		return nil, wrap(err, "open leaf store file")
	}

	if isNew {
		if err := file.Truncate(totalSize); err != nil {
			file.Close()
			flock.Unlock()
			return nil, wrap(err, "size new leaf store file")
		}
	}

	data, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		file.Close()
		flock.Unlock()
		return nil, wrap(err, "mmap leaf store file")
	}

	if isNew {
		if err := writeHeader(data, leaves); err != nil {
			data.Unmap()
			file.Close()
			flock.Unlock()
			return nil, err
		}
		mls.Logf("leafstore: created %s for %d leaves", abs, leaves)
	} else {
		if err := verifyHeader(data, leaves); err != nil {
			data.Unmap()
			file.Close()
			flock.Unlock()
			return nil, err
		}
		mls.Logf("leafstore: opened %s for %d leaves", abs, leaves)
	}

	return &Store{
		path:         abs,
		flock:        flock,
		file:         file,
		data:         data,
		leaves:       leaves,
		bitmapOffset: int64(headerSize),
	}, nil
}

// writeHeader serialises a fresh header directly into the mapped file:
// byteswriter turns the fixed-size []byte window into an io.Writer so
// binary.Write can target it in place.
func writeHeader(data mmap.MMap, leaves uint64) error {
	var h header
	copy(h.Magic[:], magic)
	h.Leaves = leaves
	h.Checksum = checksum(h.Magic, leaves)

	bufWriter := byteswriter.NewWriter(data[:headerSize])
	if err := binary.Write(bufWriter, binary.BigEndian, &h); err != nil {
		return wrap(err, "write leaf store header")
	}
	return nil
}

func verifyHeader(data mmap.MMap, wantLeaves uint64) error {
	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.BigEndian, &h); err != nil {
		return wrap(err, "read leaf store header")
	}
	if string(h.Magic[:]) != magic {
		return mls.NewError("leafstore: bad magic, not a leaf store file")
	}
	if h.Checksum != checksum(h.Magic, h.Leaves) {
		return mls.NewError("leafstore: header checksum mismatch")
	}
	if h.Leaves != wantLeaves {
		return mls.NewError("leafstore: leaf count mismatch with existing file")
	}
	return nil
}

func checksum(magic [9]byte, leaves uint64) uint64 {
	buf := make([]byte, 9+8)
	copy(buf, magic[:])
	binary.BigEndian.PutUint64(buf[9:], leaves)
	return xxhash.Sum64(buf)
}

// IsUsed reports whether offset has already been marked used.
func (s *Store) IsUsed(offset uint64) (bool, error) {
	if offset >= s.leaves {
		return false, mls.NewError("leafstore: offset out of range")
	}
	idx, bit := offset/8, byte(1<<(offset%8))
	return s.data[s.bitmapOffset+int64(idx)]&bit != 0, nil
}

// MarkUsed records offset as spent and flushes the change to disk. It is
// idempotent: marking an already-used offset is not an error.
func (s *Store) MarkUsed(offset uint64) error {
	if offset >= s.leaves {
		return mls.NewError("leafstore: offset out of range")
	}
	idx, bit := offset/8, byte(1<<(offset%8))
	s.data[s.bitmapOffset+int64(idx)] |= bit
	if err := s.data.Flush(); err != nil {
		return wrap(err, "flush leaf store")
	}
	return nil
}

// Close unmaps, closes, and unlocks the store, aggregating any errors
// from the individual teardown steps rather than stopping at the first.
func (s *Store) Close() error {
	var result *multierror.Error
	if err := s.data.Unmap(); err != nil {
		result = multierror.Append(result, wrap(err, "unmap leaf store"))
	}
	if err := s.file.Close(); err != nil {
		result = multierror.Append(result, wrap(err, "close leaf store file"))
	}
	if err := s.flock.Unlock(); err != nil {
		result = multierror.Append(result, wrap(err, "unlock leaf store"))
	}
	mls.Logf("leafstore: closed %s", s.path)
	return result.ErrorOrNil()
}

func wrap(err error, msg string) error {
	return mls.WrapError(err, "leafstore: "+msg)
}
