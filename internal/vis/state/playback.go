package state

import "time"

// Playback owns the current step of the animation loop.
type Playback struct {
	Step     int           // next step to render
	Shown    int           // last rendered step, -1 before the first frame
	MaxStep  int           // exclusive bound, at least 1
	Interval time.Duration // base frame interval
	Speed    float64       // interval divisor, 1.0 = profile speed
	Playing  bool
	next     time.Time
}

// NewPlayback starts playing at step 0.
func NewPlayback(maxStep int, interval time.Duration) *Playback {
	if maxStep < 1 {
		maxStep = 1
	}
	return &Playback{
		MaxStep:  maxStep,
		Interval: interval,
		Shown:    -1,
		Speed:    1.0,
		Playing:  true,
	}
}

// Advance moves to the following step, wrapping to 0 after the last one.
func (p *Playback) Advance() {
	p.Step = (p.Step + 1) % p.MaxStep
}

// TogglePlay pauses or resumes.
func (p *Playback) TogglePlay() {
	if p.Playing {
		p.Pause()
		return
	}
	p.Play()
}

// Play resumes playback.
func (p *Playback) Play() {
	p.Playing = true
	p.next = time.Time{}
}

// Pause stops playback on the step last shown.
func (p *Playback) Pause() {
	if p.Playing && p.Shown >= 0 {
		p.Step = p.Shown
	}
	p.Playing = false
}

// Pending reports whether a paused playback was moved off the step on screen.
func (p *Playback) Pending() bool {
	return !p.Playing && p.Step != p.Shown
}

// Reset rewinds to step 0 without changing play state.
func (p *Playback) Reset() {
	p.Step = 0
	p.next = time.Time{}
}

// Seek sets the next step, clamped to the loop.
func (p *Playback) Seek(step int) {
	if step < 0 {
		step = 0
	}
	if step >= p.MaxStep {
		step = p.MaxStep - 1
	}
	p.Step = step
	p.next = time.Time{}
}

// SeekFraction seeks to a position in [0, 1] of the loop.
func (p *Playback) SeekFraction(f float64) {
	p.Seek(int(f * float64(p.MaxStep)))
}

// StepForward pauses and moves one step ahead.
func (p *Playback) StepForward() {
	p.Pause()
	p.Advance()
}

// StepBack pauses and moves one step back, wrapping to the last step.
func (p *Playback) StepBack() {
	p.Pause()
	p.Step = (p.Step - 1 + p.MaxStep) % p.MaxStep
}

// SetSpeed sets the playback speed multiplier.
func (p *Playback) SetSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 10 {
		speed = 10
	}
	p.Speed = speed
}

// FrameInterval is the interval scaled by speed.
func (p *Playback) FrameInterval() time.Duration {
	return time.Duration(float64(p.Interval) / p.Speed)
}

// Due reports whether a frame should be rendered at now. When it returns
// true the next deadline is scheduled one interval later.
func (p *Playback) Due(now time.Time) bool {
	if !p.Playing {
		return false
	}
	if p.next.IsZero() || !now.Before(p.next) {
		p.next = now.Add(p.FrameInterval())
		return true
	}
	return false
}

// Next returns the next deadline, zero when none is scheduled.
func (p *Playback) Next() time.Time {
	return p.next
}

// Progress returns Step / MaxStep.
func (p *Playback) Progress() float64 {
	return float64(p.Step) / float64(p.MaxStep)
}
