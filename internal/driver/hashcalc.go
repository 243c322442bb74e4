package driver

import (
	"crypto/sha256"
	"encoding/binary"

	"vhdlparser/internal/version"
)

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// cacheKey covers everything that changes the output for the same bytes:
// the raw content, every option that reaches the parser or encoder, and
// the build that produced it.
func cacheKey(raw []byte, opts Options) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(version.Version))
	var buf [8]byte
	for _, v := range []int{
		int(opts.Parse.Standard),
		int(opts.Parse.Encoding),
		opts.Parse.MaxDepth,
		opts.Parse.MaxDiagnostics,
	} {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	if opts.JSON.Pretty {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte(opts.JSON.Indent))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(raw)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
