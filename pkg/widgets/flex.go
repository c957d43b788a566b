package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/theme"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	// No space before the first or after the last child.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	case MainAxisAlignmentSpaceAround:
		return "space_around"
	case MainAxisAlignmentSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis
// (vertical for [Row], horizontal for [Column]).
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter CrossAxisAlignment = iota
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

type flexChild[T any] struct {
	pod  *core.WidgetPod[T]
	flex float64
}

// Flex lays its children out in a line. Children added with WithChild keep
// their natural size; the space left over is split between flex children
// in proportion to their factors.
//
// Example:
//
//	board := widgets.Column[Game]().
//	    MainAxisAlignment(widgets.MainAxisAlignmentSpaceEvenly).
//	    WithFlexChild(reset, 1).
//	    WithFlexChild(grid, 4)
type Flex[T any] struct {
	direction       Axis
	alignment       MainAxisAlignment
	crossAlignment  CrossAxisAlignment
	fill            bool
	children        []flexChild[T]
	unboundedWarned bool
}

// Row creates a horizontal flex.
func Row[T any]() *Flex[T] {
	return &Flex[T]{direction: AxisHorizontal}
}

// Column creates a vertical flex.
func Column[T any]() *Flex[T] {
	return &Flex[T]{direction: AxisVertical}
}

// WithChild appends a child that keeps its natural size.
func (f *Flex[T]) WithChild(child core.Widget[T]) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: core.NewWidgetPod(child)})
	return f
}

// WithFlexChild appends a child that takes a share of the free space.
// Non-positive factors make it a plain child.
func (f *Flex[T]) WithFlexChild(child core.Widget[T], flex float64) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: core.NewWidgetPod(child), flex: max(flex, 0)})
	return f
}

// WithSpacer appends empty space of the given length along the main axis.
func (f *Flex[T]) WithSpacer(length float64) *Flex[T] {
	size := f.makeSize(length, 0)
	return f.WithChild(Fixed[T](nil, size))
}

// MainAxisAlignment sets the main axis alignment.
func (f *Flex[T]) MainAxisAlignment(a MainAxisAlignment) *Flex[T] {
	f.alignment = a
	return f
}

// CrossAxisAlignment sets the cross axis alignment.
func (f *Flex[T]) CrossAxisAlignment(a CrossAxisAlignment) *Flex[T] {
	f.crossAlignment = a
	return f
}

// MustFillMainAxis makes the flex take all the main axis space it is
// offered, even without flex children.
func (f *Flex[T]) MustFillMainAxis() *Flex[T] {
	f.fill = true
	return f
}

// Len returns the number of children, spacers included.
func (f *Flex[T]) Len() int {
	return len(f.children)
}

// ChildRect returns the rect of child i in the flex's coordinate space,
// as of the last layout.
func (f *Flex[T]) ChildRect(i int) graphics.Rect {
	return f.children[i].pod.Rect()
}

// Child returns the widget of child i.
func (f *Flex[T]) Child(i int) core.Widget[T] {
	return f.children[i].pod.Widget()
}

func (f *Flex[T]) mainAxis(size graphics.Size) float64 {
	if f.direction == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f *Flex[T]) crossAxis(size graphics.Size) float64 {
	if f.direction == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f *Flex[T]) makeSize(main, cross float64) graphics.Size {
	if f.direction == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f *Flex[T]) makeOffset(main, cross float64) graphics.Offset {
	if f.direction == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

func (f *Flex[T]) Event(ctx core.EventCtx, ev core.Event, data *T, env *theme.Env) {
	for _, c := range f.children {
		c.pod.Event(ctx, ev, data, env)
	}
}

func (f *Flex[T]) Lifecycle(ctx core.LifeCycleCtx, ev core.LifeCycle, data T, env *theme.Env) {
	for _, c := range f.children {
		c.pod.Lifecycle(ctx, ev, data, env)
	}
}

func (f *Flex[T]) Update(ctx core.UpdateCtx, old, data T, env *theme.Env) {
	for _, c := range f.children {
		c.pod.Update(ctx, old, data, env)
	}
}

func (f *Flex[T]) Layout(ctx core.LayoutCtx, bc layout.BoxConstraints, data T, env *theme.Env) graphics.Size {
	bc.DebugCheck("Flex")
	maxSize := graphics.Size{Width: bc.MaxWidth, Height: bc.MaxHeight}
	maxMain := f.mainAxis(maxSize)
	loose := layout.Loose(maxSize)

	mainSize := 0.0
	crossSize := 0.0
	totalFlex := 0.0

	for _, c := range f.children {
		if c.flex > 0 {
			totalFlex += c.flex
			continue
		}
		childSize := c.pod.Layout(ctx, loose, data, env)
		mainSize += f.mainAxis(childSize)
		crossSize = math.Max(crossSize, f.crossAxis(childSize))
	}

	remaining := 0.0
	if totalFlex > 0 {
		if math.IsInf(maxMain, 1) {
			if !f.unboundedWarned {
				errors.Warn("Flex.Layout", errors.KindLayout, "Flex",
					"flex children used with unbounded %s axis; they get no space", f.direction)
				f.unboundedWarned = true
			}
		} else {
			remaining = max(maxMain-mainSize, 0)
		}
	}

	for _, c := range f.children {
		if c.flex <= 0 {
			continue
		}
		allocated := remaining * c.flex / totalFlex
		childSize := c.pod.Layout(ctx, f.flexConstraints(bc, allocated), data, env)
		mainSize += f.mainAxis(childSize)
		crossSize = math.Max(crossSize, f.crossAxis(childSize))
	}

	finalMain := mainSize
	if (f.fill || totalFlex > 0) && !math.IsInf(maxMain, 1) {
		finalMain = maxMain
	}
	size := bc.Constrain(f.makeSize(finalMain, crossSize))

	freeSpace := math.Max(0, f.mainAxis(size)-mainSize)
	spacing, cursor := f.computeSpacing(freeSpace)

	baseline := math.Inf(1)
	for _, c := range f.children {
		childSize := c.pod.Size()
		origin := f.makeOffset(cursor, f.crossAxisOffset(f.crossAxis(size), childSize))
		c.pod.SetOrigin(origin)
		cursor += f.mainAxis(childSize) + spacing
		if f.direction == AxisHorizontal {
			baseline = math.Min(baseline, size.Height-(origin.Y+childSize.Height)+c.pod.BaselineOffset())
		}
	}
	if f.direction == AxisVertical && len(f.children) > 0 {
		last := f.children[len(f.children)-1].pod
		baseline = size.Height - last.Rect().Bottom + last.BaselineOffset()
	}
	if !math.IsInf(baseline, 1) {
		ctx.SetBaselineOffset(baseline)
	}
	return size
}

func (f *Flex[T]) flexConstraints(bc layout.BoxConstraints, main float64) layout.BoxConstraints {
	if f.direction == AxisHorizontal {
		return layout.BoxConstraints{MinWidth: main, MaxWidth: main, MaxHeight: bc.MaxHeight}
	}
	return layout.BoxConstraints{MaxWidth: bc.MaxWidth, MinHeight: main, MaxHeight: main}
}

func (f *Flex[T]) crossAxisOffset(cross float64, childSize graphics.Size) float64 {
	freeSpace := cross - f.crossAxis(childSize)
	if freeSpace <= 0 {
		return 0
	}
	switch f.crossAlignment {
	case CrossAxisAlignmentEnd:
		return freeSpace
	case CrossAxisAlignmentCenter:
		return freeSpace * 0.5
	default:
		return 0
	}
}

func (f *Flex[T]) computeSpacing(freeSpace float64) (spacing, offset float64) {
	n := len(f.children)
	switch f.alignment {
	case MainAxisAlignmentEnd:
		offset = freeSpace
	case MainAxisAlignmentCenter:
		offset = freeSpace * 0.5
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return
}

func (f *Flex[T]) Paint(ctx core.PaintCtx, data T, env *theme.Env) {
	for _, c := range f.children {
		c.pod.Paint(ctx, data, env)
	}
}
