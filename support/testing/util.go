package testing

import (
	"crypto/sha256"

	"github.com/filecoin-project/go-address"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// NewIDAddr returns an ID address for the given id, panicking on failure.
func NewIDAddr(id uint64) address.Address {
	addr, err := address.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return addr
}

// MakeCID builds a CID over a sha256 digest of input, wearing the given
// codec and multihash code. The commitment hash functions have no registered
// Go implementation, so the digest is wrapped rather than computed.
func MakeCID(input string, codec uint64, mhType uint64) cid.Cid {
	digest := sha256.Sum256([]byte(input))
	encoded, err := mh.Encode(digest[:], mhType)
	if err != nil {
		panic(err)
	}
	return cid.NewCidV1(codec, encoded)
}

// MakePieceCID builds a piece commitment CID from an arbitrary seed string.
func MakePieceCID(input string) cid.Cid {
	return MakeCID(input, cid.FilCommitmentUnsealed, mh.SHA2_256_TRUNC254_PADDED)
}

// MakeSealedCID builds a sealed sector commitment CID from a seed string.
func MakeSealedCID(input string) cid.Cid {
	return MakeCID(input, cid.FilCommitmentSealed, mh.POSEIDON_BLS12_381_A1_FC1)
}
