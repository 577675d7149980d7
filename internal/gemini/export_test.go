package gemini

import "time"

// SetSleep replaces the backoff pause so tests can record delays
// instead of waiting them out.
func (c *Client) SetSleep(fn func(time.Duration)) {
	c.sleep = fn
}
