package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/sharkie/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDt        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dtMs float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDt = dtMs
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 720, 480)

	assert.NotNil(t, g)
	assert.Same(t, mockInitial, g.Current())
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_PassesFixedStep(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 720, 480)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.InDelta(t, 16.667, mockInitial.lastDt, 0.001)

	g.SetTPS(30)
	_ = g.Update()
	assert.InDelta(t, 33.333, mockInitial.lastDt, 0.001)

	g.SetTPS(0)
	assert.InDelta(t, 33.333, g.StepMs(), 0.001, "non-positive tps is ignored")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 720, 480)

	img := ebiten.NewImage(720, 480)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 720, 480)

	w, h := g.Layout(1440, 960)
	assert.Equal(t, 720, w)
	assert.Equal(t, 480, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 720, 480)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 720, 480)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}
	g := New(scene1, 720, 480)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, scene1.onExitCalled)
}

func TestGame_Quit(t *testing.T) {
	scene1 := &mockScene{updateErr: scene.ErrQuit}
	g := New(scene1, 720, 480)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, scene1.onExitCalled, "quitting exits the scene")
}
