package core

// Cross detects the moment one series crosses another by comparing the sign
// of (a-b) against the sign of the previous pair. The zero value is ready to
// use; the first call has no prior pair and always reports None.
type Cross struct {
	prev   float64
	primed bool
}

// Next consumes one (a, b) pair and returns Buy when a crossed above b,
// Sell when a crossed below b, and None otherwise.
func (c *Cross) Next(a, b float64) Action {
	diff := a - b
	if !c.primed {
		c.prev = diff
		c.primed = true
		return None
	}
	prev := c.prev
	c.prev = diff
	if prev <= 0 && diff > 0 {
		return Buy
	}
	if prev >= 0 && diff < 0 {
		return Sell
	}
	return None
}
