package random

// Counter counts the draws made through it.
type Counter struct {
	Source
	n int
}

func NewCounter(src Source) *Counter {
	return &Counter{Source: src}
}

func (c *Counter) Draw(k int) int {
	c.n++
	return c.Source.Draw(k)
}

// Count returns the number of draws so far.
func (c *Counter) Count() int {
	return c.n
}

// Step is one recorded draw.
type Step struct {
	Bound int `json:"bound"`
	Value int `json:"value"`
}

// Recorder keeps every draw made through it, in order.
type Recorder struct {
	Source
	steps []Step
}

func NewRecorder(src Source) *Recorder {
	return &Recorder{Source: src}
}

func (r *Recorder) Draw(k int) int {
	v := r.Source.Draw(k)
	r.steps = append(r.steps, Step{Bound: k, Value: v})
	return v
}

// Steps returns the recorded draws. The slice is shared with the recorder.
func (r *Recorder) Steps() []Step {
	return r.steps
}
