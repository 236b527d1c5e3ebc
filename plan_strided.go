package algofht

// InPlaceStrided transforms the Len() elements data[0], data[stride], ...,
// data[(Len()-1)*stride] in place. Elements between them are not touched.
// For example, stride=numCols transforms a matrix column in row-major storage.
//
// Returns ErrNilSlice if data is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if data is too short for the given stride.
func (p *Plan) InPlaceStrided(data []float64, stride int) error {
	if err := p.validateStrided("Plan.InPlaceStrided", data, stride); err != nil {
		return err
	}

	if stride == 1 {
		p.kernel(data[:p.n])
		return nil
	}

	p.strided(data, p.n, stride)

	return nil
}

func (p *Plan) validateStrided(op string, data []float64, stride int) error {
	if data == nil {
		return opError(op, ErrNilSlice, "data is nil")
	}

	if stride < 1 {
		return opError(op, ErrInvalidStride, "stride %d", stride)
	}

	required, ok := span(p.n, stride)
	if !ok {
		return opError(op, ErrInvalidStride, "stride %d overflows for size %d", stride, p.n)
	}

	if len(data) < required {
		return opError(op, ErrLengthMismatch, "len %d, need %d for size %d stride %d", len(data), required, p.n, stride)
	}

	return nil
}

const maxInt = int(^uint(0) >> 1)

// span returns 1 + (n-1)*stride, the slice length needed to address n
// elements at the given stride, and false if that overflows.
func span(n, stride int) (int, bool) {
	if n <= 0 {
		return 0, true
	}

	maxIndex := n - 1
	if maxIndex > 0 && maxIndex > (maxInt-1)/stride {
		return 0, false
	}

	return 1 + maxIndex*stride, true
}
