package geom

import "github.com/san-kum/beerslab/internal/reactive"

// Movable is a draggable location constrained to DragBounds. Entities that
// can be dragged embed it by value.
type Movable struct {
	Location   *reactive.Value[Vec2]
	DragBounds Bounds2
}

// NewMovable places a movable at location, clamped to bounds.
func NewMovable(location Vec2, bounds Bounds2) Movable {
	return Movable{
		Location:   reactive.NewValue(location).WithClamp(bounds.Clamp),
		DragBounds: bounds,
	}
}

// MoveTo sets the location; points outside the drag bounds are clamped.
func (m Movable) MoveTo(p Vec2) { m.Location.Set(p) }

func (m Movable) Reset() { m.Location.Reset() }
