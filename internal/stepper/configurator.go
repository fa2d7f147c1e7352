package stepper

import (
	"github.com/alexisbeaulieu97/stepperlab/internal/logger"
)

// Listener receives the reconciled configuration and its resolved view after
// every transition.
type Listener func(cfg Config, view View)

type subscription struct {
	id       int
	listener Listener
}

// Configurator owns the single Config record and is its only writer.
// It is not safe for concurrent use; callers process one event at a time.
type Configurator struct {
	cfg    Config
	subs   []subscription
	nextID int
	log    *logger.Logger
}

// Option customises a Configurator.
type Option func(*Configurator)

// WithLogger routes transition logs to log.
func WithLogger(log *logger.Logger) Option {
	return func(c *Configurator) {
		if log != nil {
			c.log = log
		}
	}
}

// NewConfigurator creates a Configurator in the default state.
func NewConfigurator(opts ...Option) *Configurator {
	c := &Configurator{
		cfg: DefaultConfig(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current configuration.
func (c *Configurator) Snapshot() Config {
	return c.cfg
}

// View resolves the current configuration for rendering.
func (c *Configurator) View() View {
	return Resolve(c.cfg)
}

// Controls reports the current control enablement.
func (c *Configurator) Controls() Controls {
	return ResolveControls(c.cfg)
}

// Subscribe registers a listener and returns a function that removes it.
func (c *Configurator) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, listener: listener})

	return func() {
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies one intent, notifies listeners and returns the new state.
func (c *Configurator) Dispatch(in Intent) Config {
	before := c.cfg
	c.cfg = Reduce(c.cfg, in)

	if err := Check(c.cfg); err != nil {
		c.log.Error(err, "reconciliation left an inconsistent configuration", "intent", in.Field())
	}
	if c.cfg != before {
		c.log.Debug("transition applied", "intent", in.Field(), "config", c.cfg.Fields())
	}

	if len(c.subs) > 0 {
		view := Resolve(c.cfg)
		for _, sub := range append([]subscription(nil), c.subs...) {
			sub.listener(c.cfg, view)
		}
	}
	return c.cfg
}

func (c *Configurator) SetVertical(v bool) Config         { return c.Dispatch(SetVertical{Value: v}) }
func (c *Configurator) SetAlternativeLabel(v bool) Config { return c.Dispatch(SetAlternativeLabel{Value: v}) }
func (c *Configurator) SetHasContent(v bool) Config       { return c.Dispatch(SetHasContent{Value: v}) }
func (c *Configurator) SetAccordion(v bool) Config        { return c.Dispatch(SetAccordion{Value: v}) }
func (c *Configurator) SetFill(v bool) Config             { return c.Dispatch(SetFill{Value: v}) }
func (c *Configurator) SetLarge(v bool) Config            { return c.Dispatch(SetLarge{Value: v}) }
func (c *Configurator) SetErrored(v bool) Config          { return c.Dispatch(SetErrored{Value: v}) }
func (c *Configurator) SetIconSet(set IconSet) Config     { return c.Dispatch(SetIconSet{Set: set}) }

func (c *Configurator) Next() Config     { return c.Dispatch(Next{}) }
func (c *Configurator) Previous() Config { return c.Dispatch(Previous{}) }
func (c *Configurator) Reset() Config    { return c.Dispatch(Reset{}) }
