package animations

// Animation steps through frame indices [First, Last]. It advances either by
// game ticks (Update) or by elapsed seconds (Advance).
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	elapsed          float64
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// Update advances one game tick.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.next()
	}
}

// Advance moves the animation forward by deltaSeconds at fps frames per second.
func (a *Animation) Advance(deltaSeconds, fps float64) {
	if fps <= 0 || deltaSeconds <= 0 {
		return
	}
	a.elapsed += deltaSeconds
	perFrame := 1 / fps
	for a.elapsed >= perFrame {
		a.elapsed -= perFrame
		a.next()
	}
}

func (a *Animation) next() {
	a.frame += a.Step
	if a.frame <= a.Last {
		return
	}
	a.Looped = true
	if a.FreezeOnComplete {
		a.frame = a.Last
	} else {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.elapsed = 0
	a.Looped = false
}
