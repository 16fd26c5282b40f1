package bruteforce

import (
	"encoding/binary"
	"errors"
	"math"
)

// MarshalBinary stores: dim(uint32), n(uint32), then for each item:
// idLen(uint32), id bytes, vec(float32[dim]), all little-endian.
func (i *Index) MarshalBinary() ([]byte, error) {
	return Encode(i.ids, i.vecs, i.dim), nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}

// Encode writes ids and vectors of the given dimension in the index binary format.
func Encode(ids []string, vecs [][]float32, dim int) []byte {
	size := 8
	for _, id := range ids {
		size += 4 + len(id) + 4*dim
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(dim))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ids)))
	for n, id := range ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		for _, v := range vecs[n][:dim] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	}
	return out
}

// Decode parses data written by Encode.
func Decode(data []byte) ([]string, [][]float32, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("bruteforce: invalid data")
	}
	r := reader{data: data}
	dim := int(r.u32())
	n := int(r.u32())
	if n == 0 {
		return nil, nil, nil
	}
	// every record carries at least its 4-byte id length and 4*dim vector bytes
	if budget := (len(data) - 8) / 4; n > budget || dim > budget {
		return nil, nil, errors.New("bruteforce: truncated")
	}
	ids := make([]string, n)
	vecs := make([][]float32, n)
	for idx := 0; idx < n; idx++ {
		if !r.has(4) {
			return nil, nil, errors.New("bruteforce: truncated")
		}
		idLen := int(r.u32())
		if !r.has(idLen) {
			return nil, nil, errors.New("bruteforce: truncated id")
		}
		ids[idx] = string(r.data[r.off : r.off+idLen])
		r.off += idLen
		if !r.has(4 * dim) {
			return nil, nil, errors.New("bruteforce: truncated vec")
		}
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(r.u32())
		}
		vecs[idx] = vec
	}
	return ids, vecs, nil
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) has(n int) bool { return n >= 0 && r.off+n <= len(r.data) }

func (r *reader) u32() uint32 {
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}
