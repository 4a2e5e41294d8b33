package ui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/starview"
)

const (
	// Horizontal field of view in degrees
	fovH = 90.0

	// Terminal cells are roughly twice as tall as they are wide
	cellAspect = 0.5

	// Points closer than this to the camera plane are clipped
	nearPlane = 0.05

	// Star glyphs
	glyphSelected    = '◉'
	glyphHighlighted = '✶'
	glyphBright      = '✦' // mag < 1.5
	glyphMedium      = '+' // mag 1.5-3.0
	glyphDim         = '·' // mag 3.0-6.0
	glyphFaint       = '.' // mag > 6.0
	glyphHalo        = '·'

	colorBackground = "236"
	colorLabel      = "250"
)

// LabelMode controls which star names are drawn.
type LabelMode int

const (
	LabelAuto LabelMode = iota // Highlighted named stars and the selection
	LabelAll                   // Every named star
	LabelNone                  // No labels
)

func (l LabelMode) String() string {
	switch l {
	case LabelAuto:
		return "auto"
	case LabelAll:
		return "all"
	default:
		return "off"
	}
}

// projector maps world positions onto a character grid through a camera pose.
type projector struct {
	origin         astro.Vec3
	fwd, right, up astro.Vec3
	width, height  int
	scale          float64
}

func newProjector(p camera.Pose, width, height int) projector {
	fwd := p.LookAt.Sub(p.Position).Normalized()
	if fwd == (astro.Vec3{}) {
		fwd = astro.Vec3{Y: 1}
	}

	worldUp := astro.Vec3{Z: 1}
	right := fwd.Cross(worldUp).Normalized()
	if right == (astro.Vec3{}) {
		// Looking straight along the pole
		right = fwd.Cross(astro.Vec3{Y: 1}).Normalized()
	}
	up := right.Cross(fwd)

	return projector{
		origin: p.Position,
		fwd:    fwd,
		right:  right,
		up:     up,
		width:  width,
		height: height,
		scale:  float64(width) / 2 / math.Tan(fovH/2*math.Pi/180),
	}
}

// project returns the cell for a world point and its depth along the view
// direction. ok is false for points behind the camera or off the grid.
func (p projector) project(v astro.Vec3) (x, y int, depth float64, ok bool) {
	d := v.Sub(p.origin)
	depth = d.Dot(p.fwd)
	if depth < nearPlane {
		return 0, 0, depth, false
	}

	sx := float64(p.width)/2 + d.Dot(p.right)/depth*p.scale
	sy := float64(p.height)/2 - d.Dot(p.up)/depth*p.scale*cellAspect

	x = int(math.Round(sx))
	y = int(math.Round(sy))
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return x, y, depth, false
	}
	return x, y, depth, true
}

// screenStar is a star placed on the canvas.
type screenStar struct {
	x, y  int
	depth float64
	vis   starview.VisualState
}

// starFrame is one projected frame, kept for drawing and hit-testing.
type starFrame struct {
	width, height int
	stars         []screenStar // far to near
}

func projectFrame(pose camera.Pose, visuals []starview.VisualState, width, height int) starFrame {
	f := starFrame{width: width, height: height}
	if width <= 0 || height <= 0 {
		return f
	}

	proj := newProjector(pose, width, height)
	for _, v := range visuals {
		x, y, depth, ok := proj.project(v.Position)
		if !ok {
			continue
		}
		f.stars = append(f.stars, screenStar{x: x, y: y, depth: depth, vis: v})
	}

	// Painter's order: far first, emphasized tiers last
	sort.SliceStable(f.stars, func(i, j int) bool {
		a, b := f.stars[i], f.stars[j]
		if a.vis.Tier != b.vis.Tier {
			return a.vis.Tier < b.vis.Tier
		}
		return a.depth > b.depth
	})
	return f
}

// hitTest returns the visual id of the star under a cell. A one-cell slop
// is allowed; the closest candidate wins, then the one nearest the camera.
func (f starFrame) hitTest(x, y int) (string, bool) {
	best := -1
	bestScore := math.MaxInt
	for i, s := range f.stars {
		dx, dy := s.x-x, s.y-y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			continue
		}
		score := dx*dx + 4*dy*dy
		if score < bestScore || (score == bestScore && s.depth < f.stars[best].depth) {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", false
	}
	return f.stars[best].vis.ID, true
}

// starGlyph picks a glyph from the tier. Regular stars use their
// magnitude, brightened by the tier size so a larger regular style reads
// as a brighter star.
func starGlyph(v starview.VisualState) rune {
	switch v.Tier {
	case starview.TierSelected:
		return glyphSelected
	case starview.TierHighlighted:
		return glyphHighlighted
	}

	mag := v.Mag
	if v.SizeMultiplier > 0 {
		mag -= 2.5 * math.Log10(v.SizeMultiplier)
	}
	switch {
	case mag < 1.5:
		return glyphBright
	case mag < 3.0:
		return glyphMedium
	case mag < 6.0:
		return glyphDim
	default:
		return glyphFaint
	}
}

// labelPos tracks a label for collision handling.
type labelPos struct {
	x, y     int
	text     string
	color    lipgloss.Color
	priority bool
}

// render draws the frame into a string of width x height cells.
func (f starFrame) render(labels LabelMode) string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	canvas := make([][]rune, f.height)
	colors := make([][]lipgloss.Color, f.height)
	for y := 0; y < f.height; y++ {
		canvas[y] = make([]rune, f.width)
		colors[y] = make([]lipgloss.Color, f.width)
		for x := 0; x < f.width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorBackground
		}
	}

	var pending []labelPos
	for _, s := range f.stars {
		color := lipgloss.Color(s.vis.Color)

		// Glow spreads a dim halo into empty neighbors
		if s.vis.GlowMultiplier >= 2 {
			for _, dx := range []int{-1, 1} {
				hx := s.x + dx
				if hx >= 0 && hx < f.width && canvas[s.y][hx] == ' ' {
					canvas[s.y][hx] = glyphHalo
					colors[s.y][hx] = color
				}
			}
		}

		canvas[s.y][s.x] = starGlyph(s.vis)
		colors[s.y][s.x] = color

		if s.vis.Name == "" {
			continue
		}
		selected := s.vis.Tier == starview.TierSelected
		show := false
		switch labels {
		case LabelAuto:
			show = s.vis.ShowLabel || selected
		case LabelAll:
			show = true
		}
		if !show {
			continue
		}
		text := s.vis.Name
		lc := lipgloss.Color(colorLabel)
		if selected || s.vis.Highlighted {
			lc = color
		}
		if selected {
			text = "◄ " + text
		}
		pending = append(pending, labelPos{x: s.x + 2, y: s.y, text: text, color: lc, priority: selected})
	}

	drawLabels(canvas, colors, f.width, pending)

	var b strings.Builder
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < f.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// drawLabels writes labels to the right of their stars. Priority labels
// claim their cells first and are never overwritten.
func drawLabels(canvas [][]rune, colors [][]lipgloss.Color, width int, labels []labelPos) {
	claims := make(map[int]map[int]bool) // y -> x -> claimed

	for _, l := range labels {
		if !l.priority {
			continue
		}
		if claims[l.y] == nil {
			claims[l.y] = make(map[int]bool)
		}
		for i := range []rune(l.text) {
			claims[l.y][l.x+i] = true
		}
	}

	// Non-priority first so priority labels paint over them
	sort.SliceStable(labels, func(i, j int) bool {
		return !labels[i].priority && labels[j].priority
	})

	for _, l := range labels {
		for i, r := range []rune(l.text) {
			x := l.x + i
			if x < 0 || x >= width {
				break
			}
			if !l.priority && claims[l.y][x] {
				continue
			}
			canvas[l.y][x] = r
			colors[l.y][x] = l.color
		}
	}
}
