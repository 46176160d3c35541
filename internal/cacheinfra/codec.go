package cacheinfra

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Encoded is a serialized cache payload as stored by byte-oriented backends.
type Encoded []byte

// Encode serializes v with msgpack.
func Encode(v any) (Encoded, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "encode cache value").
			WithTextCode(TextCodeCacheFailure)
	}
	return b, nil
}

// Decode deserializes payload into dest, which must be a pointer.
func Decode(payload Encoded, dest any) error {
	if err := msgpack.Unmarshal(payload, dest); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "decode cache value").
			WithTextCode(TextCodeCacheFailure)
	}
	return nil
}
