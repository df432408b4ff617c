// SPDX-License-Identifier: MIT

package sia

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/subsystem"
)

// Fields carries everything New needs. CutSubsystem defaults to Subsystem.
type Fields struct {
	Phi              float64
	UnpartitionedCES CauseEffectStructure
	PartitionedCES   CauseEffectStructure
	Subsystem        Subsystem
	CutSubsystem     Subsystem
	Time             time.Duration // whole analysis
	SmallPhiTime     time.Duration // unpartitioned structure only
}

// Analysis is the immutable result of a system irreducibility analysis.
type Analysis struct {
	phi           float64
	unpartitioned CauseEffectStructure
	partitioned   CauseEffectStructure
	sub           Subsystem
	cutSub        Subsystem
	elapsed       time.Duration
	smallPhiTime  time.Duration
	eps           float64
	hash          uint64
}

// New validates f and freezes it into an Analysis.
// Stage 1 (Validate): phi finite and not below -eps; subsystem present;
// cut subsystem on a network with the same content; timings non-negative.
// Stage 2 (Finalize): copy both structures, hash once.
// Errors: ErrValidation together with ErrPhi, ErrSubsystem or ErrDuration.
func New(f Fields, opts ...Option) (*Analysis, error) {
	o := gatherOptions(opts)

	if math.IsNaN(f.Phi) || math.IsInf(f.Phi, 0) || f.Phi < -o.eps {
		return nil, invalid(ErrPhi, "phi = %v", f.Phi)
	}
	if f.Subsystem == nil {
		return nil, invalid(ErrSubsystem, "missing subsystem")
	}
	if f.CutSubsystem == nil {
		f.CutSubsystem = f.Subsystem
	}
	if !f.Subsystem.Network().Equal(f.CutSubsystem.Network()) {
		return nil, invalid(ErrSubsystem, "cut subsystem belongs to a different network")
	}
	if f.Time < 0 || f.SmallPhiTime < 0 {
		return nil, invalid(ErrDuration, "time = %v, small phi time = %v", f.Time, f.SmallPhiTime)
	}

	a := &Analysis{
		phi:           f.Phi,
		unpartitioned: NewCauseEffectStructure(f.UnpartitionedCES...),
		partitioned:   NewCauseEffectStructure(f.PartitionedCES...),
		sub:           f.Subsystem,
		cutSub:        f.CutSubsystem,
		elapsed:       f.Time,
		smallPhiTime:  f.SmallPhiTime,
		eps:           o.eps,
	}
	a.hash = a.computeHash()

	return a, nil
}

// Null returns the analysis of a reducible subsystem: phi 0, empty
// structures, and the subsystem standing in as its own cut subsystem.
// Errors: ErrValidation with ErrSubsystem when sub is nil.
func Null(sub Subsystem, opts ...Option) (*Analysis, error) {
	return New(Fields{Subsystem: sub, CutSubsystem: sub}, opts...)
}

func (a *Analysis) computeHash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range []uint64{
		a.unpartitioned.Hash(),
		a.partitioned.Hash(),
		a.sub.Hash(),
		a.cutSub.Hash(),
	} {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// Phi returns big phi.
func (a *Analysis) Phi() float64 { return a.phi }

// UnpartitionedCES returns the cause-effect structure of the whole subsystem.
func (a *Analysis) UnpartitionedCES() CauseEffectStructure {
	return append(CauseEffectStructure{}, a.unpartitioned...)
}

// PartitionedCES returns the cause-effect structure under the cut.
func (a *Analysis) PartitionedCES() CauseEffectStructure {
	return append(CauseEffectStructure{}, a.partitioned...)
}

// Subsystem returns the analysed subsystem.
func (a *Analysis) Subsystem() Subsystem { return a.sub }

// CutSubsystem returns the subsystem with the minimal cut applied.
func (a *Analysis) CutSubsystem() Subsystem { return a.cutSub }

// Cut returns the cut of the cut subsystem.
func (a *Analysis) Cut() subsystem.Cut { return a.cutSub.Cut() }

// Network returns the network of the subsystem.
func (a *Analysis) Network() *network.Network { return a.sub.Network() }

// Time returns how long the whole analysis took.
func (a *Analysis) Time() time.Duration { return a.elapsed }

// SmallPhiTime returns how long the unpartitioned structure took.
func (a *Analysis) SmallPhiTime() time.Duration { return a.smallPhiTime }

// Epsilon returns the phi tolerance.
func (a *Analysis) Epsilon() float64 { return a.eps }

// Irreducible reports whether phi clears the tolerance.
func (a *Analysis) Irreducible() bool { return a.phi > a.eps }

// Equal compares phi within the larger of the two tolerances, both
// structures and both subsystems. Timings are ignored.
func (a *Analysis) Equal(o *Analysis) bool {
	if a == nil || o == nil {
		return a == o
	}

	eps := math.Max(a.eps, o.eps)

	return a.hash == o.hash &&
		math.Abs(a.phi-o.phi) <= eps &&
		a.unpartitioned.Equal(o.unpartitioned, eps) &&
		a.partitioned.Equal(o.partitioned, eps) &&
		sameSubsystem(a.sub, o.sub) &&
		sameSubsystem(a.cutSub, o.cutSub)
}

// Hash returns the hash computed at construction.
func (a *Analysis) Hash() uint64 { return a.hash }

// String renders e.g. "Analysis(phi=0.25, nodes=[0 1], cut=[0] -/-> [1])".
func (a *Analysis) String() string {
	return fmt.Sprintf("Analysis(phi=%g, nodes=%v, cut=%v)", a.phi, a.sub.NodeIndices(), a.Cut())
}

// MarshalJSON emits exactly phi, unpartitioned_ces, partitioned_ces,
// subsystem, cut_subsystem, time and small_phi_time. Timings are seconds.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phi              float64              `json:"phi"`
		UnpartitionedCES CauseEffectStructure `json:"unpartitioned_ces"`
		PartitionedCES   CauseEffectStructure `json:"partitioned_ces"`
		Subsystem        Subsystem            `json:"subsystem"`
		CutSubsystem     Subsystem            `json:"cut_subsystem"`
		Time             float64              `json:"time"`
		SmallPhiTime     float64              `json:"small_phi_time"`
	}{
		Phi:              a.phi,
		UnpartitionedCES: a.unpartitioned,
		PartitionedCES:   a.partitioned,
		Subsystem:        a.sub,
		CutSubsystem:     a.cutSub,
		Time:             a.elapsed.Seconds(),
		SmallPhiTime:     a.smallPhiTime.Seconds(),
	})
}
