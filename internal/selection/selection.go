// Package selection turns pick and click events on rendered stars into
// application callbacks.
package selection

import (
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/starview"
)

// SelectFunc receives a new selection, or (nil, nil) on deselection.
type SelectFunc func(star *catalog.Star, id *int)

// StarFunc receives a resolved star.
type StarFunc func(star catalog.Star)

// Controller routes pick, click, and miss events. Picking is disabled in
// instanced mode; clicks for detail are never gated.
type Controller struct {
	acc  catalog.Accessor
	mode starview.Mode

	onSelect SelectFunc
	onClick  StarFunc
	onFocus  StarFunc

	log *logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithMode sets the initial rendering mode.
func WithMode(m starview.Mode) Option {
	return func(c *Controller) {
		c.mode = m
	}
}

// OnSelect sets the selection callback.
func OnSelect(fn SelectFunc) Option {
	return func(c *Controller) {
		c.onSelect = fn
	}
}

// OnClick sets the detail-click callback.
func OnClick(fn StarFunc) Option {
	return func(c *Controller) {
		c.onClick = fn
	}
}

// OnFocusRequest sets the callback fired after a successful pick.
func OnFocusRequest(fn StarFunc) Option {
	return func(c *Controller) {
		c.onFocus = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New creates a controller resolving ids against acc.
func New(acc catalog.Accessor, opts ...Option) *Controller {
	c := &Controller{acc: acc}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logging.OrDiscard(c.log).Named("selection")
	return c
}

// Mode returns the current rendering mode.
func (c *Controller) Mode() starview.Mode {
	return c.mode
}

// SetMode changes the rendering mode.
func (c *Controller) SetMode(m starview.Mode) {
	c.mode = m
}

// Interactive reports whether picking is enabled.
func (c *Controller) Interactive() bool {
	return c.mode != starview.ModeInstanced
}

// lookup resolves a visual id. Unknown and malformed ids miss silently:
// they may refer to stars outside the rendered subset.
func (c *Controller) lookup(rawID string) (catalog.Star, bool) {
	if c.acc == nil {
		return catalog.Star{}, false
	}
	id, ok := starview.ParseID(rawID)
	if !ok {
		return catalog.Star{}, false
	}
	return c.acc.StarByID(id)
}

// Pick handles a pointer pick on a star. It emits onSelect followed by
// onFocusRequest and returns true, or does nothing and returns false when
// picking is disabled or the id does not resolve.
func (c *Controller) Pick(rawID string) bool {
	if !c.Interactive() {
		c.log.Debug("pick %s ignored in %s mode", rawID, c.mode)
		return false
	}

	star, ok := c.lookup(rawID)
	if !ok {
		return false
	}

	id := star.ID
	c.log.Debug("picked %d %q", id, star.Name)
	if c.onSelect != nil {
		c.onSelect(&star, &id)
	}
	if c.onFocus != nil {
		c.onFocus(star)
	}
	return true
}

// Click handles a detail click. It is not gated by mode.
func (c *Controller) Click(rawID string) bool {
	star, ok := c.lookup(rawID)
	if !ok {
		return false
	}
	if c.onClick != nil {
		c.onClick(star)
	}
	return true
}

// Miss handles a pointer event that hit no star and clears the selection.
// Like Pick it is inert in instanced mode, where no selection can exist.
func (c *Controller) Miss() bool {
	if !c.Interactive() {
		return false
	}
	if c.onSelect != nil {
		c.onSelect(nil, nil)
	}
	return true
}
