package memory

// StartTimer starts the countdown for the live session, replacing any
// countdown already running.
func (e *Engine) StartTimer() {
	s := e.session
	if s == nil {
		return
	}
	s.stopTimer()
	s.timer = e.sched.Every(TickInterval, func() {
		e.tick(s)
	})
}

// StopTimer stops the countdown. Calling it with no timer running is a
// no-op.
func (e *Engine) StopTimer() {
	if e.session != nil {
		e.session.stopTimer()
	}
}

// tick advances the countdown by one second unless paused.
func (e *Engine) tick(s *Session) {
	if s != e.session || s.timer == nil || s.paused {
		return
	}

	s.remaining--
	if s.remaining < 0 {
		s.remaining = 0
	}
	e.ui.UpdateStats(s.score, s.remaining, s.matched)

	if s.remaining > 0 {
		return
	}

	s.stopTimer()
	s.paused = true
	s.outcome = OutcomeTimeOver
	e.store.ClearSnapshot()
	e.record(s)
	e.logger.Info("time over", "session", s.id, "level", s.level, "score", s.score, "matched", s.matched)
	e.ui.ShowGameOver(s.score)
}
