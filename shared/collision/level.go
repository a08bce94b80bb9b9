// Package collision builds the world-space collision geometry of a level and
// answers the raycasts the grapple needs. The plane is Y-down with Z = 0.
package collision

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/asgmods/grapplehook/shared/leveldata"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Rect is an axis-aligned solid in world units.
type Rect struct {
	X, Y, W, H float64
}

// Level holds a level's collision space and spawn data in world units.
type Level struct {
	Name        string
	Space       *resolv.Space
	Solids      []Rect
	SpawnPoints []mgl64.Vec3
	Width       float64
	Height      float64
}

// NewLevel scales parsed collision data by scale and builds a resolv.Space
// with square cells of cellSize.
func NewLevel(name string, data *leveldata.CollisionData, scale float64, cellSize int) *Level {
	if scale <= 0 {
		scale = 1
	}
	if cellSize <= 0 {
		cellSize = 16
	}
	width := float64(data.MapWidth) * scale
	height := float64(data.MapHeight) * scale
	space := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize)

	lvl := &Level{
		Name:   name,
		Space:  space,
		Width:  width,
		Height: height,
	}
	for _, r := range data.SolidRects {
		rect := Rect{X: r.X * scale, Y: r.Y * scale, W: r.W * scale, H: r.H * scale}
		obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
		space.Add(obj)
		lvl.Solids = append(lvl.Solids, rect)
	}
	for _, sp := range data.SpawnPoints {
		lvl.SpawnPoints = append(lvl.SpawnPoints, mgl64.Vec3{sp.X * scale, sp.Y * scale, 0})
	}
	return lvl
}

// Load reads the named level from levelsDir inside fsys.
func Load(fsys fs.FS, levelsDir, name string, scale float64, cellSize int) (*Level, error) {
	data, err := leveldata.LoadCollisionData(fsys, levelsDir+"/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	return NewLevel(name, data, scale, cellSize), nil
}

// SpawnPoint returns spawn i, wrapping around, or the level centre when the
// level has none.
func (l *Level) SpawnPoint(i int) mgl64.Vec3 {
	if len(l.SpawnPoints) == 0 {
		return mgl64.Vec3{l.Width / 2, l.Height / 2, 0}
	}
	if i < 0 {
		i = -i
	}
	return l.SpawnPoints[i%len(l.SpawnPoints)]
}

// Raycast returns the first solid surface on the segment from..to. A start
// point inside a solid hits at from with a zero normal.
func (l *Level) Raycast(from, to mgl64.Vec3, filter tether.Filter) (tether.Hit, bool) {
	if filter != tether.FilterProjectile || !gamemath.IsFinite(from) || !gamemath.IsFinite(to) {
		return tether.Hit{}, false
	}
	d := to.Sub(from)
	best := math.Inf(1)
	var bestNormal mgl64.Vec3
	for _, r := range l.Solids {
		t, n, ok := segmentRect(from, d, r)
		if ok && t < best {
			best, bestNormal = t, n
		}
	}
	if math.IsInf(best, 1) {
		return tether.Hit{}, false
	}
	return tether.Hit{Position: from.Add(d.Mul(best)), Normal: bestNormal}, true
}

// segmentRect is a slab test of from + d*t, t in [0,1], against r.
func segmentRect(from, d mgl64.Vec3, r Rect) (float64, mgl64.Vec3, bool) {
	lo := [2]float64{r.X, r.Y}
	hi := [2]float64{r.X + r.W, r.Y + r.H}
	tmin, tmax := 0.0, 1.0
	var normal mgl64.Vec3
	for axis := 0; axis < 2; axis++ {
		if math.Abs(d[axis]) < 1e-12 {
			if from[axis] < lo[axis] || from[axis] > hi[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (lo[axis] - from[axis]) * inv
		t2 := (hi[axis] - from[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl64.Vec3{}
			normal[axis] = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}
	return tmin, normal, true
}
