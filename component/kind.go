package component

import "strings"

// Kind tags the pattern behavior of an entity; immutable after spawn
type Kind uint8

const (
	KindVertical Kind = iota
	KindHorizontal
	KindDiagonal
	KindTriangle
	KindQuadCluster
	KindZigZag
	KindFast
	KindStar
	KindRectangle
	KindEgg
	KindBoss
	KindBouncing
	KindExploding
	KindHoming
	KindSpiral
	KindRadialBurst
	KindWave
	KindBoomerang
	KindSplitter
	KindStaticTrap

	KindCount
)

var kindNames = [KindCount]string{
	KindVertical:    "vertical",
	KindHorizontal:  "horizontal",
	KindDiagonal:    "diagonal",
	KindTriangle:    "triangle",
	KindQuadCluster: "quad",
	KindZigZag:      "zigzag",
	KindFast:        "fast",
	KindStar:        "star",
	KindRectangle:   "rectangle",
	KindEgg:         "egg",
	KindBoss:        "boss",
	KindBouncing:    "bouncing",
	KindExploding:   "exploding",
	KindHoming:      "homing",
	KindSpiral:      "spiral",
	KindRadialBurst: "radial",
	KindWave:        "wave",
	KindBoomerang:   "boomerang",
	KindSplitter:    "splitter",
	KindStaticTrap:  "trap",
}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind by its String name, case-insensitive
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// AllKinds returns every kind in declaration order
func AllKinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
