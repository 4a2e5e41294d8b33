// Package ui provides the terminal star view using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/session"
	"github.com/litescript/ls-starfield/internal/starview"
	"github.com/litescript/ls-starfield/internal/version"
)

const (
	animFrameRate = 30 * time.Millisecond

	headerLines = 2
	footerLines = 2
)

// Msg types for Bubble Tea
type (
	// AnimTickMsg advances the camera animation.
	AnimTickMsg time.Time

	// ReloadMsg reports a catalog file reload.
	ReloadMsg struct {
		Reload catalog.Reload
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	session *session.Session
	exec    *camera.Executor
	reloads <-chan catalog.Reload
	log     *logging.Logger
	now     func() time.Time

	// UI state
	width     int
	height    int
	ready     bool
	labelMode LabelMode
	searching bool
	query     string
	statusMsg string
	animTick  int
}

// Option configures a Model.
type Option func(*Model)

// WithReloads delivers catalog reload notifications to the view.
func WithReloads(ch <-chan catalog.Reload) Option {
	return func(m *Model) { m.reloads = ch }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithClock overrides the animation clock.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New creates the root UI model.
func New(sess *session.Session, exec *camera.Executor, opts ...Option) Model {
	m := Model{
		session: sess,
		exec:    exec,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.log = logging.OrDiscard(m.log).Named("ui")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{animTickCmd()}
	if m.reloads != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searching {
			m = m.updateSearch(msg)
			break
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		m.advance(time.Time(msg))

	case ReloadMsg:
		r := msg.Reload
		if r.Err != nil {
			m.log.Warn("catalog reload: %v", r.Err)
			m.statusMsg = fmt.Sprintf("Reload failed: %v", r.Err)
		} else {
			m.statusMsg = fmt.Sprintf("Reloaded %d stars", r.Count)
			m.session.Refresh()
			m.advance(m.now())
		}
		if m.reloads != nil {
			cmds = append(cmds, waitForReload(m.reloads))
		}
	}

	return m, tea.Batch(cmds...)
}

// advance steps the executor, forwards a completion, and starts whatever
// the machine has pending.
func (m Model) advance(now time.Time) {
	if _, a, done := m.exec.Step(now); done {
		m.session.Complete(a.Seq)
	}
	pending, ok := m.session.Camera().Pending()
	m.exec.Sync(pending, ok, now)
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "/":
		m.searching = true
		m.query = ""
	case "j", "down", "tab":
		m = m.pickRelative(1)
	case "k", "up", "shift+tab":
		m = m.pickRelative(-1)
	case "enter":
		star, ok := m.session.Selected()
		if !ok {
			m.statusMsg = "Nothing selected"
			break
		}
		m.session.Click(starview.FormatID(star.ID))
	case "esc":
		m = m.escape()
	case "r":
		m.command(camera.KindResetView)
	case "c":
		m.command(camera.KindCenterView)
	case "o":
		m.command(camera.KindOrbit)
	case "f":
		if !m.session.FocusSelected() {
			m.statusMsg = "Nothing selected"
		}
	case "m":
		m.session.SetMode(m.session.Mode().Toggle())
		m.statusMsg = "Mode: " + m.session.Mode().String()
	case "l":
		m.labelMode = (m.labelMode + 1) % 3
	}
	m.advance(m.now())
	return m
}

// escape unwinds one layer: detail panel, then highlight, then selection.
func (m Model) escape() Model {
	if _, ok := m.session.Detail(); ok {
		m.session.CloseDetail()
		return m
	}
	if !m.session.Highlighted().Empty() {
		m.session.ClearHighlight()
		m.statusMsg = ""
		return m
	}
	m.session.Miss()
	return m
}

func (m Model) command(kind camera.Kind) {
	m.session.Command(camera.Request{Kind: string(kind)})
}

// pickRelative moves the selection through the visible stars in render
// order.
func (m Model) pickRelative(step int) Model {
	visuals := m.session.Visuals()
	if len(visuals) == 0 {
		return m
	}
	if m.session.Mode() == starview.ModeInstanced {
		m.statusMsg = "Picking is disabled in instanced mode"
		return m
	}

	idx := -1
	if sel, ok := m.session.Selected(); ok {
		for i, v := range visuals {
			if v.CatalogID == sel.ID {
				idx = i
				break
			}
		}
	}

	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(visuals) - 1
	default:
		idx = (idx + step + len(visuals)) % len(visuals)
	}
	m.session.Pick(visuals[idx].ID)
	return m
}

func (m Model) updateSearch(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		n := m.session.Search(m.query)
		switch {
		case strings.TrimSpace(m.query) == "":
			m.statusMsg = ""
		case n == 1:
			m.statusMsg = fmt.Sprintf("1 match for %q", m.query)
		default:
			m.statusMsg = fmt.Sprintf("%d matches for %q", n, m.query)
		}
		m.advance(m.now())
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	}
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}

	w, h := m.canvasSize()
	x, y := msg.X, msg.Y-headerLines
	if x < 0 || x >= w || y < 0 || y >= h {
		return m
	}

	frame := projectFrame(m.exec.Pose(), m.session.Visuals(), w, h)
	id, hit := frame.hitTest(x, y)

	switch msg.Button {
	case tea.MouseButtonLeft:
		if hit {
			m.session.Pick(id)
		} else {
			m.session.Miss()
		}
	case tea.MouseButtonRight:
		if hit {
			m.session.Click(id)
		}
	}
	m.advance(m.now())
	return m
}

// canvasSize returns the star canvas dimensions.
func (m Model) canvasSize() (int, int) {
	w := m.width
	if _, ok := m.session.Detail(); ok && w > detailPanelWidth+20 {
		w -= detailPanelWidth
	}
	h := m.height - headerLines - footerLines
	if h < 0 {
		h = 0
	}
	return w, h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	w, h := m.canvasSize()
	frame := projectFrame(m.exec.Pose(), m.session.Visuals(), w, h)
	content := frame.render(m.labelMode)

	if star, ok := m.session.Detail(); ok && w < m.width {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, renderDetail(star, h))
	}

	return m.renderHeader(len(frame.stars)) + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader(onScreen int) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd700"))

	title := renderGradient("✦ STARFIELD") + dimStyle.Render(" v"+version.Version)

	parts := []string{
		title,
		dimStyle.Render("Mode: ") + m.session.Mode().String(),
		dimStyle.Render("Camera: ") + m.cameraStatus(),
		dimStyle.Render(fmt.Sprintf("Stars: %d", onScreen)),
		dimStyle.Render("Labels: ") + m.labelMode.String(),
	}
	line1 := strings.Join(parts, dimStyle.Render(" | "))

	var line2 string
	if star, ok := m.session.Selected(); ok {
		line2 = accentStyle.Render(fmt.Sprintf(">>> %s  %.2f pc  mag %.2f", displayName(star), star.Distance(), star.Mag))
	} else if n := m.session.Highlighted().Len(); n > 0 {
		line2 = accentStyle.Render(fmt.Sprintf("%d highlighted", n))
	} else {
		line2 = dimStyle.Render("No selection")
	}
	return line1 + "\n" + line2
}

func (m Model) cameraStatus() string {
	a, ok := m.session.Camera().Pending()
	if !ok {
		return "idle"
	}
	return string(a.Command.Kind())
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	var status string
	if m.searching {
		status = accentStyle.Render("/") + m.query + accentStyle.Render("█")
	} else {
		status = dimStyle.Render(m.statusMsg)
	}

	help := dimStyle.Render("j/k: pick | click: select | right-click/enter: details | /: search | r/c/o/f: camera | m: mode | l: labels | q: quit")
	return "  " + status + "\n  " + help
}

// renderGradient renders text with a horizontal blue to pink gradient.
func renderGradient(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		color := gradientColor(float64(i) / float64(len(runes)))
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return b.String()
}

// gradientStops run blue, purple, magenta, pink.
var gradientStops = [][3]float64{
	{59, 130, 246},
	{139, 92, 246},
	{217, 70, 239},
	{236, 72, 153},
}

// gradientColor returns a hex color at position x in [0,1].
func gradientColor(x float64) string {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	seg := x * float64(len(gradientStops)-1)
	i := int(seg)
	if i >= len(gradientStops)-1 {
		i = len(gradientStops) - 2
	}
	t := seg - float64(i)
	a, b := gradientStops[i], gradientStops[i+1]

	var rgb [3]int
	for k := range rgb {
		rgb[k] = int(a[k] + t*(b[k]-a[k]))
	}
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}

func animTickCmd() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

func waitForReload(ch <-chan catalog.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ReloadMsg{Reload: r}
	}
}
