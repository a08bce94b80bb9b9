// Package tether implements the grappling hook: a tethered projectile that,
// once attached, restrains its shooter through a radial tension force while
// the cable length is reeled in or paid out.
//
// The authority owns the projectile and the desired length. Controlling
// clients accumulate input locally and send requests; every participant
// mirrors the authoritative State and reacts only to actual value changes.
package tether

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Phase is the attachment state of a tether.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFlying
	PhaseAttached
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFlying:
		return "flying"
	case PhaseAttached:
		return "attached"
	}
	return "unknown"
}

// Role selects which halves of the tool run on a participant. A listen
// server or single-player game runs both.
type Role uint8

const (
	RoleAuthority Role = 1 << iota
	RoleController
)

// Has reports whether r includes all bits of o.
func (r Role) Has(o Role) bool { return r&o == o }

// State is the replicated part of a tether. Only the authority writes it.
type State struct {
	Projectile    uuid.UUID  // uuid.Nil when no projectile exists
	Attached      bool       // set on impact, cleared on retract
	DesiredLength float64    // 0 while not attached
	Anchor        mgl64.Vec3 // projectile position while one exists
	LengthSeq     uint32     // last length request the authority processed
}

// HasProjectile reports whether a projectile exists.
func (s State) HasProjectile() bool { return s.Projectile != uuid.Nil }

// Phase derives the attachment phase from the mirrored fields.
func (s State) Phase() Phase {
	switch {
	case !s.HasProjectile():
		return PhaseIdle
	case s.Attached:
		return PhaseAttached
	default:
		return PhaseFlying
	}
}

// AttachmentPoint returns the anchor, or false when no projectile exists.
func (s State) AttachmentPoint() (mgl64.Vec3, bool) {
	if !s.HasProjectile() {
		return mgl64.Vec3{}, false
	}
	return s.Anchor, true
}

// Digest hashes every field so callers can skip publishing unchanged state.
func (s State) Digest() uint64 {
	var buf [16 + 1 + 8 + 24 + 4]byte
	copy(buf[0:16], s.Projectile[:])
	if s.Attached {
		buf[16] = 1
	}
	binary.LittleEndian.PutUint64(buf[17:25], math.Float64bits(s.DesiredLength))
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint64(buf[25+i*8:33+i*8], math.Float64bits(s.Anchor[i]))
	}
	binary.LittleEndian.PutUint32(buf[49:53], s.LengthSeq)
	return xxh3.Hash(buf[:])
}
