package r1cs

import (
	"encoding/binary"
	"hash"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Transcript is a small Merlin-style Fiat-Shamir transcript: every
// byte absorbed (via AppendMessage) and every challenge produced (via
// ChallengeBytes) folds forward into one running hash, so a challenge
// can never be replayed against a different set of committed wires.
//
// gnark-crypto ships its own transcript,
// github.com/consensys/gnark-crypto/fiat-shamir, used by the fflonk
// prover for its fixed five-challenge protocol. It requires every
// challenge label to be declared up front at construction time, which
// doesn't fit Cloak: each shuffle/mix gadget registers its own
// randomized-constraints closure and asks for challenges by ad hoc
// label from inside it, so the full label set isn't known until the
// whole circuit has been built. This transcript keeps the same
// hash-based sponge idea (built on golang.org/x/crypto/blake2b, a
// direct teacher dependency) without the up-front label requirement.
type Transcript struct {
	h hash.Hash
}

// NewTranscript starts a transcript domain-separated by label.
func NewTranscript(label string) *Transcript {
	h, err := blake2b.New512(nil)
	if err != nil {
		// blake2b.New512 only errors on bad key length, and we pass nil.
		panic(err)
	}
	t := &Transcript{h: h}
	t.AppendMessage("dom-sep", []byte(label))
	return t
}

func (t *Transcript) writeFramed(b []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(b)))
	t.h.Write(lenBuf[:])
	t.h.Write(b)
}

// AppendMessage absorbs a labeled message into the transcript.
func (t *Transcript) AppendMessage(label string, data []byte) {
	t.writeFramed([]byte(label))
	t.writeFramed(data)
}

// AppendScalar absorbs a field element's canonical byte encoding.
func (t *Transcript) AppendScalar(label string, s fr.Element) {
	b := s.Bytes()
	t.AppendMessage(label, b[:])
}

// AppendPoint absorbs a compressed-point byte encoding, e.g. a
// Pedersen commitment.
func (t *Transcript) AppendPoint(label string, compressed []byte) {
	t.AppendMessage(label, compressed)
}

// ChallengeBytes derives a 64-byte challenge bound to everything
// absorbed so far, then folds the challenge itself back into the
// running state so the next challenge can't be derived without it.
func (t *Transcript) ChallengeBytes(label string) [64]byte {
	t.writeFramed([]byte(label))
	digest := t.h.Sum(nil) // Sum does not mutate t.h's running state.
	var out [64]byte
	copy(out[:], digest)
	t.h.Write(digest)
	return out
}

// ChallengeScalar derives a field element challenge bound to label.
// The 64-byte challenge is wider than the scalar field, so it is
// reduced through big.Int rather than truncated, to avoid biasing the
// low bits of the result.
func (t *Transcript) ChallengeScalar(label string) fr.Element {
	digest := t.ChallengeBytes(label)
	bi := new(big.Int).SetBytes(digest[:])
	var s fr.Element
	s.SetBigInt(bi)
	return s
}
