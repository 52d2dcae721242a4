package bloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	cbor "github.com/fxamacker/cbor/v2"
)

// Payload is the wire form of a filter, with short field tags to keep the
// encoded form small next to the bitset bytes.
type Payload struct {
	HN string `cbor:"hn"` // hasher name
	BK uint64 `cbor:"bk"` // hash count
	BM uint64 `cbor:"bm"` // filter size in bits
	BB []byte `cbor:"bb"` // bitset binary
}

// CborEncode encodes the payload in CBOR.
func CborEncode(pl interface{}) ([]byte, error) {
	return cbor.Marshal(pl)
}

// CborDecode decodes the payload from CBOR.
func CborDecode(b []byte, v interface{}) error {
	return cbor.Unmarshal(b, v)
}

// Payload returns the wire form of the filter.
func (f *Filter) Payload() (*Payload, error) {
	bb, err := f.bits.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("bloom: marshaling bitset: %w", err)
	}
	return &Payload{
		HN: f.shape.HasherName,
		BK: f.shape.K,
		BM: f.shape.M,
		BB: bb,
	}, nil
}

// FromPayload reconstructs a filter from its wire form.
func FromPayload(pl *Payload) (*Filter, error) {
	shape := Shape{HasherName: pl.HN, K: pl.BK, M: pl.BM}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	bits := bitset.New(uint(shape.M))
	if err := bits.UnmarshalBinary(pl.BB); err != nil {
		return nil, fmt.Errorf("bloom: unmarshaling bitset: %w", err)
	}
	if uint64(bits.Len()) != shape.M {
		return nil, fmt.Errorf("%w: bitset holds %d bits, shape declares %d",
			ErrBadShape, bits.Len(), shape.M)
	}
	return &Filter{shape: shape, bits: bits}, nil
}

// Encode returns the CBOR encoding of the payload.
func (pl *Payload) Encode() ([]byte, error) {
	return CborEncode(pl)
}

// DecodePayload decodes a CBOR-encoded payload.
func DecodePayload(b []byte) (*Payload, error) {
	var pl Payload
	if err := CborDecode(b, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}
