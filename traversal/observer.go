package traversal

import (
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/frontier"
)

// Observer receives Stepper lifecycle notifications. Rendering and metrics
// hang off this interface so the walker itself never touches either.
//
// Calls happen synchronously on the goroutine driving the Stepper.
type Observer interface {
	// OnInitialize fires after names are assigned and edges synthesized.
	OnInitialize(g *core.Graph, edges []core.Edge)

	// OnStart fires when a search starts from start.
	OnStart(alg Algorithm, start core.VertexID)

	// OnVisit fires when id is visited for the first time. prev is the
	// previously visited vertex of this search, or core.NoVertex.
	OnVisit(alg Algorithm, id, prev core.VertexID)

	// OnAlreadySeen fires when a popped vertex had already been visited.
	OnAlreadySeen(id core.VertexID)

	// OnFrontier fires after every step, start, switch and reset with the
	// frontier contents in pop order.
	OnFrontier(kind frontier.Kind, items []core.VertexID)

	// OnContinue fires when an exhausted frontier is reseeded with id.
	OnContinue(id core.VertexID)

	// OnFinish fires on the transition to Finished.
	OnFinish(alg Algorithm, visited []core.VertexID)

	// OnReset fires when the stepper returns to Idle through Reset.
	OnReset()

	// OnSwitch fires when the algorithm changes.
	OnSwitch(from, to Algorithm)
}

// NopObserver implements Observer with no-ops. Embed it to implement only
// the notifications you need.
type NopObserver struct{}

func (NopObserver) OnInitialize(*core.Graph, []core.Edge) {}
func (NopObserver) OnStart(Algorithm, core.VertexID) {}
func (NopObserver) OnVisit(Algorithm, core.VertexID, core.VertexID) {}
func (NopObserver) OnAlreadySeen(core.VertexID) {}
func (NopObserver) OnFrontier(frontier.Kind, []core.VertexID) {}
func (NopObserver) OnContinue(core.VertexID) {}
func (NopObserver) OnFinish(Algorithm, []core.VertexID) {}
func (NopObserver) OnReset() {}
func (NopObserver) OnSwitch(Algorithm, Algorithm) {}

var _ Observer = NopObserver{}
