// Package slidertest provides a manual clock and a recording host for
// driving sliders in tests.
package slidertest

import (
	"sort"
	"time"

	"github.com/five82/carousel/internal/slider"
)

// Clock is a slider.Scheduler whose time only moves on Advance.
type Clock struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	clock *Clock
	at    time.Duration
	seq   int
	f     func()
}

func (t *timer) Stop() bool {
	for i, p := range t.clock.timers {
		if p == t {
			t.clock.timers = append(t.clock.timers[:i], t.clock.timers[i+1:]...)
			return true
		}
	}
	return false
}

// AfterFunc schedules f at now+d.
func (c *Clock) AfterFunc(d time.Duration, f func()) slider.Timer {
	c.seq++
	t := &timer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Callbacks scheduled while advancing fire too if they fall due.
func (c *Clock) Advance(d time.Duration) {
	end := c.now + d
	for {
		t := c.nextDue(end)
		if t == nil {
			break
		}
		t.Stop()
		c.now = t.at
		t.f()
	}
	c.now = end
}

// Now is the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration { return c.now }

// Pending is the number of callbacks not yet fired or stopped.
func (c *Clock) Pending() int { return len(c.timers) }

func (c *Clock) nextDue(end time.Duration) *timer {
	due := make([]*timer, 0, len(c.timers))
	for _, t := range c.timers {
		if t.at <= end {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}
