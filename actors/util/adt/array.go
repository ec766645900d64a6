package adt

import (
	"bytes"

	amt "github.com/filecoin-project/go-amt-ipld/v4"
	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

var DefaultAmtOptions = []amt.Option{}

// Array stores a sparse sequence of values in an AMT.
type Array struct {
	root  *amt.Root
	store Store
}

// AsArray interprets a store as an AMT-based array with root `r`.
func AsArray(s Store, r cid.Cid, bitwidth int) (*Array, error) {
	options := append(DefaultAmtOptions, amt.UseTreeBitWidth(uint(bitwidth)))
	root, err := amt.LoadAMT(s.Context(), s, r, options...)
	if err != nil {
		return nil, xerrors.Errorf("failed to root: %w", err)
	}

	return &Array{
		root:  root,
		store: s,
	}, nil
}

// MakeEmptyArray creates a new array backed by an empty AMT.
func MakeEmptyArray(s Store, bitwidth int) (*Array, error) {
	options := append(DefaultAmtOptions, amt.UseTreeBitWidth(uint(bitwidth)))
	root, err := amt.NewAMT(s, options...)
	if err != nil {
		return nil, err
	}
	return &Array{
		root:  root,
		store: s,
	}, nil
}

// StoreEmptyArray creates and stores a new empty array, returning its CID.
func StoreEmptyArray(s Store, bitwidth int) (cid.Cid, error) {
	arr, err := MakeEmptyArray(s, bitwidth)
	if err != nil {
		return cid.Undef, err
	}
	return arr.Root()
}

// Root flushes the array, writes it to the store, and returns its root CID.
func (a *Array) Root() (cid.Cid, error) {
	return a.root.Flush(a.store.Context())
}

// Set adds or replaces the value at index `i`.
func (a *Array) Set(i uint64, value cbor.Marshaler) error {
	if err := a.root.Set(a.store.Context(), i, value); err != nil {
		return xerrors.Errorf("array set idx %d value %v: %w", i, value, err)
	}
	return nil
}

// Get retrieves the value at index `i` into `out`, if it is present.
// Returns whether the index was found.
func (a *Array) Get(i uint64, out cbor.Unmarshaler) (bool, error) {
	found, err := a.root.Get(a.store.Context(), i, out)
	if err != nil {
		return false, xerrors.Errorf("array get idx %d: %w", i, err)
	}
	return found, nil
}

// TryDelete removes the value at index `i`, if it is present.
// Returns whether the index was found.
func (a *Array) TryDelete(i uint64) (bool, error) {
	found, err := a.root.Delete(a.store.Context(), i)
	if err != nil {
		return false, xerrors.Errorf("array delete idx %d: %w", i, err)
	}
	return found, nil
}

// Delete removes the value at index `i`, expecting it to exist.
func (a *Array) Delete(i uint64) error {
	found, err := a.root.Delete(a.store.Context(), i)
	if err != nil {
		return xerrors.Errorf("array delete idx %d: %w", i, err)
	} else if !found {
		return xerrors.Errorf("no such index %d to delete in array", i)
	}
	return nil
}

// ForEach iterates all entries in the array in index order, deserializing
// each value in turn into `out` and then calling a function.
// Iteration halts if the function returns an error.
// If the output parameter is nil, deserialization is skipped.
func (a *Array) ForEach(out cbor.Unmarshaler, fn func(i int64) error) error {
	return a.root.ForEach(a.store.Context(), func(k uint64, val *cbg.Deferred) error {
		if out != nil {
			if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		return fn(int64(k))
	})
}
