package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/slider"
)

// timerMsg delivers a scheduled slider callback back to the update loop.
type timerMsg struct {
	id uint64
}

// scheduler runs slider timers through the Bubble Tea event loop so every
// callback executes on the goroutine that owns the model. A timer that was
// stopped keeps its tick in flight; the message is ignored when it lands.
type scheduler struct {
	seq    uint64
	live   map[uint64]func()
	queued []tea.Cmd
}

func newScheduler() *scheduler {
	return &scheduler{live: make(map[uint64]func())}
}

// AfterFunc implements slider.Scheduler.
func (s *scheduler) AfterFunc(d time.Duration, f func()) slider.Timer {
	s.seq++
	id := s.seq
	s.live[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return schedTimer{s: s, id: id}
}

// fire runs the callback for id if it is still pending.
func (s *scheduler) fire(id uint64) {
	f, ok := s.live[id]
	if !ok {
		return
	}
	delete(s.live, id)
	f()
}

// flush hands the ticks scheduled since the last flush to the runtime.
func (s *scheduler) flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *scheduler) pending() int {
	return len(s.live)
}

type schedTimer struct {
	s  *scheduler
	id uint64
}

func (t schedTimer) Stop() bool {
	if _, ok := t.s.live[t.id]; !ok {
		return false
	}
	delete(t.s.live, t.id)
	return true
}
