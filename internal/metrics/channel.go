package metrics

import (
	"errors"
	"fmt"
)

var ErrUnknownChannel = errors.New("metrics: unknown channel")

// channel locates one column of a sample by label.
type channel struct {
	label string
	index int
}

func (c *channel) bind(labels []string) error {
	for i, l := range labels {
		if l == c.label {
			c.index = i
			return nil
		}
	}
	c.index = -1
	return fmt.Errorf("%w: %q", ErrUnknownChannel, c.label)
}

func (c *channel) read(x []float64) (float64, bool) {
	if c.index < 0 || c.index >= len(x) {
		return 0, false
	}
	return x[c.index], true
}
