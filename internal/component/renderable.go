package component

import (
	"ecs-chipmunk/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderColor ecs.ComponentType = 9

// RenderColor overrides the palette color the renderer picks for the
// entity's colliders.
type RenderColor struct {
	Color tcell.Color
}

func (RenderColor) Type() ecs.ComponentType { return CRenderColor }
