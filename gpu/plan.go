package gpu

// Plan is a backend-backed row-transform plan for a specific length.
//
// The plan owns its context and streams. It is safe for concurrent use
// only if the underlying backend is thread-safe.
type Plan struct {
	n       int
	ctx     Context
	streams []Stream
	options PlanOptions
	impl    PlanImpl
}

// NewPlan creates a plan using the registered backend.
func NewPlan(n int, opts PlanOptions) (*Plan, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	backend := getBackend()
	if backend == nil {
		return nil, ErrNoBackend
	}

	if !backend.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := backend.NewContext(opts.DeviceIndex)
	if err != nil {
		return nil, err
	}

	streamCount := opts.StreamCount
	if streamCount <= 0 {
		streamCount = 1
	}

	streams := make([]Stream, 0, streamCount)
	for i := 0; i < streamCount; i++ {
		stream, err := ctx.NewStream()
		if err != nil {
			for _, s := range streams {
				_ = s.Close()
			}
			_ = ctx.Close()

			return nil, err
		}
		streams = append(streams, stream)
	}

	impl, err := ctx.NewRowPlan(n, opts)
	if err != nil {
		for _, s := range streams {
			_ = s.Close()
		}
		_ = ctx.Close()

		return nil, err
	}

	return &Plan{
		n:       n,
		ctx:     ctx,
		streams: streams,
		options: opts,
		impl:    impl,
	}, nil
}

// Len returns the transform length for this plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}

	return p.n
}

// Device reports the device the plan executes on.
func (p *Plan) Device() DeviceInfo {
	if p == nil || p.ctx == nil {
		return DeviceInfo{}
	}

	return p.ctx.Device()
}

// NewBuffer allocates a device buffer sized for rows transform rows.
func (p *Plan) NewBuffer(rows int) (Buffer, error) {
	if p == nil || p.ctx == nil {
		return nil, ErrNoBackend
	}

	if rows < 1 {
		return nil, ErrInvalidLength
	}

	return p.ctx.NewBuffer(rows * p.n)
}

// Forward transforms rows rows of buf in place on the device.
func (p *Plan) Forward(buf Buffer, rows int) error {
	if err := p.validate(buf, rows); err != nil {
		return err
	}

	return p.impl.Forward(buf, rows)
}

// Inverse transforms rows rows of buf in place on the device, including
// the 1/N normalization.
func (p *Plan) Inverse(buf Buffer, rows int) error {
	if err := p.validate(buf, rows); err != nil {
		return err
	}

	return p.impl.Inverse(buf, rows)
}

// ForwardHost uploads data, transforms it on the device, and downloads the
// result back into data. Convenience path for callers without persistent
// device buffers.
func (p *Plan) ForwardHost(data []complex64, rows int) error {
	return p.transformHost(data, rows, false)
}

// InverseHost is the inverse counterpart of ForwardHost.
func (p *Plan) InverseHost(data []complex64, rows int) error {
	return p.transformHost(data, rows, true)
}

func (p *Plan) transformHost(data []complex64, rows int, inverse bool) error {
	if p == nil || p.impl == nil {
		return ErrNotImplemented
	}

	if data == nil {
		return ErrNilSlice
	}

	if rows < 1 || len(data) < rows*p.n {
		return ErrLengthMismatch
	}

	buf, err := p.NewBuffer(rows)
	if err != nil {
		return err
	}
	defer func() { _ = buf.Close() }()

	if err := buf.Upload(data[:rows*p.n]); err != nil {
		return err
	}

	if inverse {
		err = p.impl.Inverse(buf, rows)
	} else {
		err = p.impl.Forward(buf, rows)
	}
	if err != nil {
		return err
	}

	return buf.Download(data[:rows*p.n])
}

func (p *Plan) validate(buf Buffer, rows int) error {
	if p == nil || p.impl == nil {
		return ErrNotImplemented
	}

	if buf == nil {
		return ErrNilSlice
	}

	if rows < 1 || buf.Len() < rows*p.n {
		return ErrLengthMismatch
	}

	return nil
}

// Close releases the resources associated with the plan.
func (p *Plan) Close() error {
	if p == nil {
		return nil
	}

	if p.impl != nil {
		_ = p.impl.Close()
		p.impl = nil
	}

	var firstErr error
	for _, s := range p.streams {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.streams = nil

	if p.ctx != nil {
		if err := p.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.ctx = nil
	}

	return firstErr
}
