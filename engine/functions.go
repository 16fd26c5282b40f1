package engine

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/viant/vec/search"
	sqlite "modernc.org/sqlite"
)

type scalarFunc struct {
	name    string
	compute func(a, b []float32) (float64, error)
}

var vectorFunctions = []scalarFunc{
	{name: "vec_l2", compute: l2},
	{name: "vec_cosine", compute: cosine},
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers vec_l2(a, b) and vec_cosine(a, b) with the
// driver. Both take little-endian float32 BLOBs. Registration is global and
// only affects connections opened afterwards; repeated calls are no-ops.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() {
		for _, fn := range vectorFunctions {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.name, 2, binaryVectorFunc(fn)); err != nil {
				if strings.Contains(err.Error(), "already") {
					continue
				}
				registerErr = fmt.Errorf("engine: register %s: %w", fn.name, err)
				return
			}
		}
	})
	return registerErr
}

func binaryVectorFunc(fn scalarFunc) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", fn.name, len(args))
		}
		a, err := asEmbedding(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.name, err)
		}
		b, err := asEmbedding(args[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.name, err)
		}
		if a == nil || b == nil {
			return nil, nil
		}
		if len(a) != len(b) {
			return nil, fmt.Errorf("%s: dimension mismatch %d vs %d", fn.name, len(a), len(b))
		}
		return fn.compute(a, b)
	}
}

func asEmbedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeEmbedding(v)
	default:
		return nil, fmt.Errorf("unsupported argument type %T for embedding; want BLOB", arg)
	}
}

// decodeEmbedding mirrors vector.DecodeEmbedding; vector tests open
// databases through this package, so importing it here would cycle.
func decodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d", len(b))
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

func l2(a, b []float32) (float64, error) {
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

func cosine(a, b []float32) (float64, error) {
	ma := search.Float32s(a).Magnitude()
	mb := search.Float32s(b).Magnitude()
	if ma == 0 || mb == 0 {
		return 0, fmt.Errorf("cosine with zero-magnitude vector")
	}
	return 1 - float64(search.Float32s(a).CosineDistance(b)), nil
}
