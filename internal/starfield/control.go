package starfield

// Drone is the sustained ambient layer the controller starts and stops.
type Drone interface {
	AttackDrones()
	ReleaseDrones()
}

// State is the run state of the controller.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Controller maps the control surface onto a field and its drone layer.
type Controller struct {
	field *Field
	drone Drone
	state State

	placing      bool
	hasPointer   bool
	lastX, lastY float64
}

// NewController wires a controller to f. A nil drone is allowed.
func NewController(f *Field, d Drone) *Controller {
	return &Controller{field: f, drone: d}
}

// Field returns the controlled field.
func (c *Controller) Field() *Field { return c.field }

// State reports whether the field is idle, running or paused.
func (c *Controller) State() State { return c.state }

// Running reports whether Tick advances the field.
func (c *Controller) Running() bool { return c.state == StateRunning }

// Start begins ticking and attacks the drones. It is a no-op once started.
func (c *Controller) Start() {
	if c.state != StateIdle {
		return
	}
	c.resume()
}

// TogglePause pauses a running field or resumes a paused one. From idle it
// behaves like Start.
func (c *Controller) TogglePause() {
	if c.state == StateRunning {
		c.Pause()
		return
	}
	c.resume()
}

// Pause stops ticking and releases the drones. Star state is kept as is.
func (c *Controller) Pause() {
	if c.state != StateRunning {
		return
	}
	c.state = StatePaused
	if c.drone != nil {
		c.drone.ReleaseDrones()
	}
}

func (c *Controller) resume() {
	c.state = StateRunning
	if c.drone != nil {
		c.drone.AttackDrones()
	}
}

// Tick advances the field once if running and reports whether it did.
func (c *Controller) Tick() bool {
	if c.state != StateRunning {
		return false
	}
	c.field.Update()
	return true
}

func (c *Controller) SpeedUp() { c.field.ChangeSpeed(SpeedUp) }

func (c *Controller) SpeedDown() { c.field.ChangeSpeed(SpeedDown) }

// SetPlacing sets the continuous-placement modifier.
func (c *Controller) SetPlacing(held bool) { c.placing = held }

// Placing reports whether the continuous-placement modifier is held.
func (c *Controller) Placing() bool { return c.placing }

// Click places a star at (x, y) when it lies right of the midpoint.
func (c *Controller) Click(x, y float64) bool {
	if x <= c.field.Midpoint() {
		return false
	}
	c.field.AddStarAt(x, y)
	return true
}

// PointerMoved places a star at every new pointer position while the
// placement modifier is held.
func (c *Controller) PointerMoved(x, y float64) bool {
	moved := !c.hasPointer || x != c.lastX || y != c.lastY
	c.hasPointer = true
	c.lastX, c.lastY = x, y
	if !moved || !c.placing {
		return false
	}
	c.field.AddStarAt(x, y)
	return true
}
