package rowfft

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Column transforms cover the second pass of a 2-D reciprocal-space
// transform: rows first, then columns over the same row-major buffer. Lane
// i of a column's work-group accesses data[col+i*cols] directly, so no
// transpose is materialized.

// ForwardColumns transforms every column of a row-major N-by-cols matrix
// in place, one work-group per column.
func (p *Plan) ForwardColumns(data []complex64, cols int) error {
	return p.transformColumns(data, cols, signForward)
}

// InverseColumns is the inverse counterpart of ForwardColumns, including
// the 1/N normalization.
func (p *Plan) InverseColumns(data []complex64, cols int) error {
	if err := p.transformColumns(data, cols, signInverse); err != nil {
		return err
	}

	// cols transforms of length n cover the whole matrix.
	p.scale(data, cols)

	return nil
}

// TransformColumns computes either forward or inverse column transforms
// based on the inverse flag.
func (p *Plan) TransformColumns(data []complex64, cols int, inverse bool) error {
	if inverse {
		return p.InverseColumns(data, cols)
	}

	return p.ForwardColumns(data, cols)
}

func (p *Plan) transformColumns(data []complex64, cols int, sign float32) error {
	if data == nil {
		return ErrNilSlice
	}

	if cols < 1 {
		return ErrInvalidStride
	}

	if len(data) < p.n*cols {
		return ErrLengthMismatch
	}

	if cols == 1 {
		p.runGroup(data, 0, 1, sign)

		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for col := 0; col < cols; col++ {
		base := col

		eg.Go(func() error {
			p.runGroup(data, base, cols, sign)

			return nil
		})
	}

	return eg.Wait()
}
