package app

import (
	"testing"

	"portfolio3d/internal/config"
	"portfolio3d/internal/effects"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEditorUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.MaxHistory = 3
	ed := NewEditor(cfg, zap.NewNop())

	assert.Equal(t, 1, ed.History().Len(), "baseline entry")
	assert.Zero(t, ed.Scene().Len())
	for range 5 {
		_, err := ed.AddShape("box")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, ed.History().Len())
}

func TestExportSettings(t *testing.T) {
	s := exportSettings(config.ExportConfig{ShowGrid: true, Width: 640, Height: 480})
	assert.True(t, s.ShowGrid)
	assert.False(t, s.ShowHelpers)
	assert.Equal(t, int32(640), s.Width)
	assert.Equal(t, int32(480), s.Height)
}

func TestProjectToPlane(t *testing.T) {
	ray := rl.Ray{Position: rl.Vector3{X: 1, Y: 2, Z: 30}, Direction: rl.Vector3{Z: -1}}
	p, ok := projectToPlane(ray)
	require.True(t, ok)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2}, p)

	_, ok = projectToPlane(rl.Ray{Position: rl.Vector3{Z: 30}, Direction: rl.Vector3{X: 1}})
	assert.False(t, ok, "parallel")
	_, ok = projectToPlane(rl.Ray{Position: rl.Vector3{Z: 30}, Direction: rl.Vector3{Z: 1}})
	assert.False(t, ok, "pointing away")
}

func TestPointerHeight(t *testing.T) {
	assert.Equal(t, float32(1), pointerHeight(0, 720))
	assert.Equal(t, float32(0), pointerHeight(360, 720))
	assert.Equal(t, float32(-1), pointerHeight(720, 720))
	assert.Equal(t, float32(0), pointerHeight(100, 0))
}

func TestShowcaseScrollClamps(t *testing.T) {
	sc := newShowcase(1)
	sc.scrollBy(-1)
	assert.Equal(t, float32(0), sc.scroll)
	sc.scrollBy(10)
	assert.Equal(t, maxScroll, sc.scroll)
}

func TestShowcaseSpinnerFollowsScroll(t *testing.T) {
	sc := newShowcase(1)
	sc.scrollBy(0.5)
	ray := rl.Ray{Position: rl.Vector3{Y: 100, Z: 30}, Direction: rl.Vector3{Z: -1}}
	for range 200 {
		sc.step(ray, rl.Vector2{}, 1280, 720, false, false)
	}
	assert.InDelta(t, effects.ScrollTarget(0.5), sc.spinner.Position.X, 0.01)
}

func TestShowcaseAboutPageTilts(t *testing.T) {
	sc := newShowcase(1)
	sc.page = pageAbout
	ray := rl.Ray{Position: rl.Vector3{Z: 30}, Direction: rl.Vector3{Z: -1}}
	for range 300 {
		sc.step(ray, rl.Vector2{Y: 0}, 1280, 720, false, false)
	}
	assert.InDelta(t, 0.3, sc.tilter.Rotation.Y, 0.01)
	assert.Equal(t, float32(0), sc.spinner.Position.X, "hero torus paused")
}

func TestShowcasePagesCycle(t *testing.T) {
	sc := newShowcase(1)
	assert.Equal(t, pageHero, sc.page)
	sc.nextPage()
	sc.nextPage()
	assert.Equal(t, pageContact, sc.page)
	assert.Equal(t, effects.StreamCamera(), sc.camera())

	z := sc.squares.Squares[0].Position.Z
	sc.step(rl.Ray{}, rl.Vector2{}, 1280, 720, false, false)
	assert.NotEqual(t, z, sc.squares.Squares[0].Position.Z)

	sc.nextPage()
	assert.Equal(t, pageEditorMenu, sc.page)
	assert.Equal(t, effects.BackdropCamera(), sc.camera())

	sc.nextPage()
	assert.Equal(t, pageHero, sc.page)
	assert.Equal(t, showcaseCamera(), sc.camera())
}

func TestShowcaseEditorMenuFollowsPointer(t *testing.T) {
	sc := newShowcase(1)
	for sc.page != pageEditorMenu {
		sc.nextPage()
	}
	z := sc.squares.Squares[0].Position.Z

	// pointer at the right edge, vertically centred
	for range 60 {
		sc.step(rl.Ray{}, rl.Vector2{X: 1280, Y: 360}, 1280, 720, false, false)
	}
	assert.Equal(t, z, sc.squares.Squares[0].Position.Z, "other pages are paused")
	assert.Greater(t, sc.orbit.SkyRotation.Y, float32(60*0.0001), "sky leans with the pointer")
	assert.InDelta(t, 0.0002*60, sc.orbit.SkyRotation.X, 1e-5, "no vertical lean at mid height")
	assert.Less(t, sc.orbit.GridZ, float32(0))
}

func TestPointerAcross(t *testing.T) {
	assert.Equal(t, float32(-1), pointerAcross(0, 800))
	assert.Equal(t, float32(0), pointerAcross(400, 800))
	assert.Equal(t, float32(1), pointerAcross(800, 800))
	assert.Equal(t, float32(0), pointerAcross(10, 0))
}

func TestAssetDir(t *testing.T) {
	dir, ok := assetDir("/opt/portfolio/bin/portfolio")
	assert.True(t, ok)
	assert.Equal(t, "/opt/portfolio/bin", dir)

	_, ok = assetDir("/tmp/go-build123/b001/exe/portfolio")
	assert.False(t, ok, "go run binaries stay in the caller's directory")
}
