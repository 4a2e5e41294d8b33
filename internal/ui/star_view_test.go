package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/starview"
)

func TestProject(t *testing.T) {
	pose := camera.Pose{Position: astro.Vec3{Y: -10}, LookAt: astro.Origin}
	p := newProjector(pose, 80, 24)

	tests := []struct {
		name   string
		point  astro.Vec3
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"look-at point is centered", astro.Origin, 40, 12, true},
		{"right of center", astro.Vec3{X: 1}, 44, 12, true},
		{"above center", astro.Vec3{Z: 1}, 40, 10, true},
		{"behind camera", astro.Vec3{Y: -20}, 0, 0, false},
		{"outside field of view", astro.Vec3{X: 100}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, _, ok := p.project(tt.point)
			if ok != tt.wantOK {
				t.Fatalf("project(%v) ok = %v, want %v", tt.point, ok, tt.wantOK)
			}
			if ok && (x != tt.wantX || y != tt.wantY) {
				t.Errorf("project(%v) = (%d,%d), want (%d,%d)", tt.point, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProject_StraightDown(t *testing.T) {
	pose := camera.Pose{Position: astro.Vec3{Z: 10}, LookAt: astro.Origin}
	p := newProjector(pose, 40, 20)

	x, y, depth, ok := p.project(astro.Origin)
	if !ok || x != 20 || y != 10 {
		t.Errorf("project(origin) = (%d,%d,%v), want (20,10,true)", x, y, ok)
	}
	if depth != 10 {
		t.Errorf("depth = %v, want 10", depth)
	}
}

func TestProjectFrame_PaintOrder(t *testing.T) {
	pose := camera.Pose{Position: astro.Vec3{Y: -10}, LookAt: astro.Origin}
	visuals := []starview.VisualState{
		{ID: "1", CatalogID: 1, Position: astro.Vec3{Y: -5}, Tier: starview.TierSelected},
		{ID: "2", CatalogID: 2, Position: astro.Vec3{Y: 5}},
		{ID: "3", CatalogID: 3, Position: astro.Vec3{Y: 0}},
	}

	f := projectFrame(pose, visuals, 80, 24)
	if len(f.stars) != 3 {
		t.Fatalf("projected %d stars, want 3", len(f.stars))
	}

	var order []string
	for _, s := range f.stars {
		order = append(order, s.vis.ID)
	}
	if got := strings.Join(order, ","); got != "2,3,1" {
		t.Errorf("paint order = %s, want 2,3,1", got)
	}
}

func TestHitTest(t *testing.T) {
	f := starFrame{
		width:  80,
		height: 24,
		stars: []screenStar{
			{x: 10, y: 5, depth: 5, vis: starview.VisualState{ID: "1"}},
			{x: 11, y: 5, depth: 3, vis: starview.VisualState{ID: "2"}},
			{x: 40, y: 12, depth: 9, vis: starview.VisualState{ID: "3"}},
			{x: 40, y: 12, depth: 4, vis: starview.VisualState{ID: "4"}},
		},
	}

	tests := []struct {
		name    string
		x, y    int
		want    string
		wantHit bool
	}{
		{"exact cell", 10, 5, "1", true},
		{"horizontal slop", 12, 5, "2", true},
		{"vertical slop prefers column match", 10, 6, "1", true},
		{"same cell picks nearer star", 40, 12, "4", true},
		{"empty space", 30, 5, "", false},
		{"two rows away", 10, 7, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := f.hitTest(tt.x, tt.y)
			if got != tt.want || hit != tt.wantHit {
				t.Errorf("hitTest(%d,%d) = %q, %v; want %q, %v", tt.x, tt.y, got, hit, tt.want, tt.wantHit)
			}
		})
	}
}

func TestStarGlyph(t *testing.T) {
	styles := starview.DefaultStyles()

	tests := []struct {
		name string
		vis  starview.VisualState
		want rune
	}{
		{"selected", starview.VisualState{Tier: starview.TierSelected, SizeMultiplier: styles.Selected.SizeMultiplier, Mag: 5}, glyphSelected},
		{"highlighted", starview.VisualState{Tier: starview.TierHighlighted, SizeMultiplier: styles.Highlighted.SizeMultiplier, Mag: 5}, glyphHighlighted},
		{"selected small style", starview.VisualState{Tier: starview.TierSelected, SizeMultiplier: 1, Mag: 5}, glyphSelected},
		{"bright", starview.VisualState{Tier: starview.TierRegular, SizeMultiplier: 1, Mag: -1.46}, glyphBright},
		{"medium", starview.VisualState{Tier: starview.TierRegular, SizeMultiplier: 1, Mag: 2.0}, glyphMedium},
		{"dim", starview.VisualState{Tier: starview.TierRegular, SizeMultiplier: 1, Mag: 4.5}, glyphDim},
		{"faint", starview.VisualState{Tier: starview.TierRegular, SizeMultiplier: 1, Mag: 11.1}, glyphFaint},
		{"large regular stays regular", starview.VisualState{Tier: starview.TierRegular, SizeMultiplier: 2, Mag: 5}, glyphDim},
		{"large regular brightens", starview.VisualState{Tier: starview.TierRegular, SizeMultiplier: 2, Mag: 2.0}, glyphBright},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := starGlyph(tt.vis); got != tt.want {
				t.Errorf("starGlyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Labels(t *testing.T) {
	f := starFrame{
		width:  40,
		height: 5,
		stars: []screenStar{
			{x: 2, y: 1, vis: starview.VisualState{ID: "1", Name: "Vega", Color: "#ffffff", SizeMultiplier: 1}},
			{x: 2, y: 3, vis: starview.VisualState{ID: "2", Name: "Deneb", Color: "#ffd700", SizeMultiplier: 1.5, Highlighted: true, ShowLabel: true, Tier: starview.TierHighlighted}},
			{x: 20, y: 3, vis: starview.VisualState{ID: "3", Name: "Altair", Color: "#00ffff", SizeMultiplier: 2, Tier: starview.TierSelected}},
		},
	}

	tests := []struct {
		mode    LabelMode
		want    []string
		notWant []string
	}{
		{LabelAuto, []string{"Deneb", "◄ Altair"}, []string{"Vega"}},
		{LabelAll, []string{"Vega", "Deneb", "Altair"}, nil},
		{LabelNone, nil, []string{"Vega", "Deneb", "Altair"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out := f.render(tt.mode)
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("render(%v) missing %q", tt.mode, s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("render(%v) should not contain %q", tt.mode, s)
				}
			}
		})
	}
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0, "#3B82F6"},
		{1, "#EC4899"},
		{-3, "#3B82F6"},
		{7, "#EC4899"},
	}
	for _, tt := range tests {
		if got := gradientColor(tt.x); got != tt.want {
			t.Errorf("gradientColor(%v) = %s, want %s", tt.x, got, tt.want)
		}
	}
}
