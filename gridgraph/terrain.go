package gridgraph

import "github.com/katalvlaran/navgraph/core"

// TerrainType is the traversal cost class of a cell.
type TerrainType int

const (
	// Ground is the default, cheapest terrain.
	Ground TerrainType = 1
	// Mud costs twice as much as Ground.
	Mud TerrainType = 2
	// Water is impassable under the default threshold.
	Water TerrainType = DefaultImpassableCost
)

// String returns the terrain name.
func (t TerrainType) String() string {
	switch t {
	case Ground:
		return "ground"
	case Mud:
		return "mud"
	case Water:
		return "water"
	default:
		return "custom"
	}
}

// TerrainNode is a grid cell payload carrying a terrain class.
type TerrainNode struct {
	Terrain TerrainType
}

// NewTerrainNode is a node factory producing Ground cells.
func NewTerrainNode(int) TerrainNode { return TerrainNode{Terrain: Ground} }

// TraversalCost implements core.Coster.
func (n TerrainNode) TraversalCost() int { return int(n.Terrain) }

// NodeColor implements core.Colored.
func (n TerrainNode) NodeColor() core.Color {
	switch n.Terrain {
	case Ground:
		return core.Color{R: 0.55, G: 0.45, B: 0.3, A: 1}
	case Mud:
		return core.Color{R: 0.35, G: 0.25, B: 0.15, A: 1}
	case Water:
		return core.Color{R: 0.1, G: 0.3, B: 0.9, A: 1}
	default:
		return core.DefaultNodeColor
	}
}
