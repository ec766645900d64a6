package adt

import (
	"context"

	ipldcbor "github.com/ipfs/go-ipld-cbor"
)

// Store defines an interface required to back the ADT implementations in this
// package. It mirrors the block-store access actors get from the runtime: a
// content-addressed get/put plus the context the operations run under.
type Store interface {
	Context() context.Context
	ipldcbor.IpldStore
}

// WrapStore adapts a vanilla IPLD store to the ADT store interface.
func WrapStore(ctx context.Context, store ipldcbor.IpldStore) Store {
	return &wstore{
		ctx:       ctx,
		IpldStore: store,
	}
}

type wstore struct {
	ctx context.Context
	ipldcbor.IpldStore
}

var _ Store = &wstore{}

func (s *wstore) Context() context.Context {
	return s.ctx
}
