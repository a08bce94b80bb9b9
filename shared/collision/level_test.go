package collision

import (
	"math"
	"os"
	"testing"

	"github.com/asgmods/grapplehook/shared/leveldata"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/go-gl/mathgl/mgl64"
)

func testLevel() *Level {
	return NewLevel("test", &leveldata.CollisionData{
		MapWidth:  320,
		MapHeight: 160,
		SolidRects: []leveldata.SolidRect{
			{X: 0, Y: 144, W: 320, H: 16}, // floor
			{X: 96, Y: 32, W: 64, H: 16},  // ledge
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 16, Y: 128}},
	}, 10, 100)
}

func TestRaycast(t *testing.T) {
	lvl := testLevel()
	tests := []struct {
		name   string
		from   mgl64.Vec3
		to     mgl64.Vec3
		hit    bool
		pos    mgl64.Vec3
		normal mgl64.Vec3
	}{
		{"straight down onto floor", mgl64.Vec3{500, 1000, 0}, mgl64.Vec3{500, 2000, 0}, true, mgl64.Vec3{500, 1440, 0}, mgl64.Vec3{0, -1, 0}},
		{"up into ledge underside", mgl64.Vec3{1200, 1000, 0}, mgl64.Vec3{1200, 0, 0}, true, mgl64.Vec3{1200, 480, 0}, mgl64.Vec3{0, 1, 0}},
		{"sideways into ledge", mgl64.Vec3{500, 400, 0}, mgl64.Vec3{2000, 400, 0}, true, mgl64.Vec3{960, 400, 0}, mgl64.Vec3{-1, 0, 0}},
		{"short of the floor", mgl64.Vec3{500, 1000, 0}, mgl64.Vec3{500, 1400, 0}, false, mgl64.Vec3{}, mgl64.Vec3{}},
		{"passes beside the ledge", mgl64.Vec3{2000, 1000, 0}, mgl64.Vec3{2000, 0, 0}, false, mgl64.Vec3{}, mgl64.Vec3{}},
		{"nan start", mgl64.Vec3{math.NaN(), math.NaN(), 0}, mgl64.Vec3{500, 2000, 0}, false, mgl64.Vec3{}, mgl64.Vec3{}},
		{"infinite end", mgl64.Vec3{500, 1000, 0}, mgl64.Vec3{500, math.Inf(1), 0}, false, mgl64.Vec3{}, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := lvl.Raycast(tt.from, tt.to, tether.FilterProjectile)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if !ok {
				return
			}
			if !hit.Position.ApproxEqualThreshold(tt.pos, 1e-9) {
				t.Errorf("position = %v, want %v", hit.Position, tt.pos)
			}
			if hit.Normal != tt.normal {
				t.Errorf("normal = %v, want %v", hit.Normal, tt.normal)
			}
		})
	}
}

func TestRaycastNearestSolidWins(t *testing.T) {
	lvl := testLevel()
	hit, ok := lvl.Raycast(mgl64.Vec3{1200, 100, 0}, mgl64.Vec3{1200, 3000, 0}, tether.FilterProjectile)
	if !ok || math.Abs(hit.Position[1]-320) > 1e-9 {
		t.Fatalf("hit = %+v %v, want ledge top at y=320", hit, ok)
	}
}

func TestNewLevelScalesGeometry(t *testing.T) {
	lvl := testLevel()
	if lvl.Width != 3200 || lvl.Height != 1600 {
		t.Fatalf("size = %vx%v", lvl.Width, lvl.Height)
	}
	if got := lvl.SpawnPoint(3); got != (mgl64.Vec3{160, 1280, 0}) {
		t.Fatalf("spawn = %v", got)
	}
	if lvl.Solids[1] != (Rect{X: 960, Y: 320, W: 640, H: 160}) {
		t.Fatalf("ledge = %+v", lvl.Solids[1])
	}
}

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := Load(os.DirFS("../../assets"), "levels", "quarry", 6.25, 100)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lvl.SpawnPoints) != 2 || len(lvl.Solids) == 0 {
		t.Fatalf("level = %d spawns, %d solids", len(lvl.SpawnPoints), len(lvl.Solids))
	}
}
