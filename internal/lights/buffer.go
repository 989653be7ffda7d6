package lights

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferNotInitialized is returned when a buffer is read before the
	// scene generated it.
	ErrBufferNotInitialized = errors.New("lights: buffer not initialized")
	// ErrBufferShape is returned when an attribute length is not
	// stride*count.
	ErrBufferShape = errors.New("lights: buffer shape mismatch")
)

// Attribute names consumed by the light programs.
const (
	AttrOffset  = "aOffset"
	AttrMetrics = "aMetrics"
	AttrMetric  = "aMetric"
	AttrColor   = "aColor"
)

// Attribute is one flat per-instance array with a fixed component stride.
type Attribute struct {
	Name   string
	Stride int
	Data   []float32
}

// At returns the components of instance i.
func (a Attribute) At(i int) []float32 {
	return a.Data[i*a.Stride : (i+1)*a.Stride]
}

// InstanceBuffer holds the parallel attribute arrays of one light group. It
// is never mutated after generation; regenerating means building a new one.
type InstanceBuffer struct {
	Count   int
	Offsets Attribute
	Metrics Attribute
	Colors  Attribute
}

func newInstanceBuffer(count, offsetStride, metricStride int, metricName string) *InstanceBuffer {
	return &InstanceBuffer{
		Count:   count,
		Offsets: Attribute{Name: AttrOffset, Stride: offsetStride, Data: make([]float32, 0, count*offsetStride)},
		Metrics: Attribute{Name: metricName, Stride: metricStride, Data: make([]float32, 0, count*metricStride)},
		Colors:  Attribute{Name: AttrColor, Stride: 3, Data: make([]float32, 0, count*3)},
	}
}

// Attributes returns the upload set in binding order.
func (b *InstanceBuffer) Attributes() []Attribute {
	return []Attribute{b.Offsets, b.Metrics, b.Colors}
}

// Check verifies the buffer was generated and every attribute has exactly
// Count instances.
func (b *InstanceBuffer) Check() error {
	if b == nil {
		return ErrBufferNotInitialized
	}
	for _, a := range b.Attributes() {
		if a.Stride <= 0 || len(a.Data) != a.Stride*b.Count {
			return fmt.Errorf("%w: %s has %d values, expected %d x %d", ErrBufferShape, a.Name, len(a.Data), b.Count, a.Stride)
		}
	}
	return nil
}
