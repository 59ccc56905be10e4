package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-eeg/dsp/core"
)

// Transformer computes the zero-padded forward transform of a real signal.
type Transformer interface {
	Transform(signal []float64) (Result, error)
}

// Radix2 is the stateless built-in transform. It is safe for concurrent use.
type Radix2 struct{}

// Transform implements [Transformer].
func (Radix2) Transform(signal []float64) (Result, error) {
	return Forward(signal), nil
}

// Planned delegates to algo-fft plans, created lazily per transform size
// and reused across calls. A Planned value is not safe for concurrent use.
type Planned struct {
	plans map[int]*algofft.Plan[complex128]
	in    []complex128
	out   []complex128
}

// NewPlanned returns an empty plan-backed transformer.
func NewPlanned() *Planned {
	return &Planned{plans: make(map[int]*algofft.Plan[complex128])}
}

// Transform implements [Transformer].
func (p *Planned) Transform(signal []float64) (Result, error) {
	n := core.NextPowerOfTwo(len(signal))
	if n < 2 {
		return Forward(signal), nil
	}

	plan, err := p.plan(n)
	if err != nil {
		return Result{}, err
	}

	if cap(p.in) < n {
		p.in = make([]complex128, n)
		p.out = make([]complex128, n)
	}
	in := p.in[:n]
	out := p.out[:n]

	for i := range in {
		in[i] = 0
	}
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("fft: planned forward (n=%d): %w", n, err)
	}

	res := Result{
		Re:            make([]float64, n),
		Im:            make([]float64, n),
		N:             n,
		LogicalLength: len(signal),
	}
	for i, c := range out {
		res.Re[i] = real(c)
		res.Im[i] = imag(c)
	}

	return res, nil
}

func (p *Planned) plan(n int) (*algofft.Plan[complex128], error) {
	if p.plans == nil {
		p.plans = make(map[int]*algofft.Plan[complex128])
	}

	if plan, ok := p.plans[n]; ok {
		return plan, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan (n=%d): %w", n, err)
	}
	p.plans[n] = plan

	return plan, nil
}
