package bigint

import (
	"encoding"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ encoding.TextMarshaler   = Int{}
	_ encoding.TextUnmarshaler = (*Int)(nil)
	_ msgpack.CustomEncoder    = (*Int)(nil)
	_ msgpack.CustomDecoder    = (*Int)(nil)
)

// MarshalText renders the canonical decimal representation.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText parses decimal text with Parse's lenient rules. It never
// fails; text without digits decodes as zero.
func (x *Int) UnmarshalText(text []byte) error {
	x.SetString(string(text))
	return nil
}

// EncodeMsgpack writes the value as a two-element array: sign flag and
// magnitude blocks.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	return enc.Encode(x.digits)
}

// DecodeMsgpack reads the two-element array written by EncodeMsgpack. The
// decoded value is re-canonicalized so corrupted payloads cannot produce
// non-canonical integers.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("bigint: unexpected msgpack array length %d", n)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	var digits []uint32
	if err := dec.Decode(&digits); err != nil {
		return err
	}
	for _, d := range digits {
		if d >= Radix {
			return fmt.Errorf("bigint: msgpack block %d exceeds radix", d)
		}
	}
	x.digits = trimBlocks(digits)
	x.neg = neg && len(x.digits) != 0
	return nil
}
