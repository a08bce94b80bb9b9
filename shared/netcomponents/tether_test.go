package netcomponents

import (
	"testing"

	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func TestNetTetherCarriesState(t *testing.T) {
	s := tether.State{
		Projectile:    uuid.New(),
		Attached:      true,
		DesiredLength: 1234.5,
		Anchor:        mgl64.Vec3{10, -20, 0},
		LengthSeq:     7,
	}
	d := NetTetherFrom(s, 984.5)
	if d.VisualLength != 984.5 {
		t.Fatalf("visual length = %v", d.VisualLength)
	}
	if got := d.State(); got != s {
		t.Fatalf("State() = %+v, want %+v", got, s)
	}
	if got := d.State().Digest(); got != s.Digest() {
		t.Fatal("digest must survive the component round trip")
	}
}

func TestLerpNetProjectile(t *testing.T) {
	from := NetProjectileData{X: 0, Y: 0, OwnerNetworkID: 3}
	to := NetProjectileData{X: 100, Y: -50, VelX: 10, OwnerNetworkID: 3, Attached: true}
	got := LerpNetProjectile(from, to, 0.5)
	if got.X != 50 || got.Y != -25 || got.VelX != 10 || !got.Attached {
		t.Fatalf("LerpNetProjectile = %+v", got)
	}
}
