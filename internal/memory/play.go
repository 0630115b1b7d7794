package memory

// HandleCardClick flips the card at index. The click is dropped when the
// session is paused or finished, the card is not hidden, or two cards are
// already face up.
func (e *Engine) HandleCardClick(index int) {
	s := e.session
	if s == nil || s.paused || s.outcome != OutcomePlaying {
		return
	}
	if index < 0 || index >= len(s.cards) {
		return
	}
	if s.cards[index].State != CardHidden || len(s.selection) == 2 {
		return
	}

	e.audio.Play(CueFlip)
	s.cards[index].State = CardFlipped
	e.ui.UpdateCard(s.cards[index])
	s.selection = append(s.selection, index)

	if len(s.selection) == 2 {
		e.resolve(s)
	}
}

// resolve compares the two selected cards. Clicks are blocked via the
// paused flag until resolution completes.
func (e *Engine) resolve(s *Session) {
	s.paused = true
	first, second := s.selection[0], s.selection[1]
	a, b := &s.cards[first], &s.cards[second]

	if a.Value != b.Value {
		e.audio.Play(CueWrong)
		e.logger.Debug("mismatch", "session", s.id, "first", first, "second", second)
		s.reversion = e.sched.After(MismatchDelay, func() {
			e.revert(s, first, second)
		})
		return
	}

	e.audio.Play(CueMatch)
	a.State = CardMatched
	b.State = CardMatched
	e.ui.UpdateCard(*a)
	e.ui.UpdateCard(*b)

	s.score += MatchPoints
	s.matched += 2
	s.selection = nil
	s.paused = false
	e.ui.UpdateStats(s.score, s.remaining, s.matched)
	e.logger.Debug("match", "session", s.id, "value", a.Value, "score", s.score, "matched", s.matched)

	if s.matched == s.totalCards {
		e.win(s)
	}
}

// revert turns a mismatched pair face down again.
func (e *Engine) revert(s *Session, indices ...int) {
	if s != e.session {
		return
	}
	s.reversion = nil
	for _, i := range indices {
		if s.cards[i].State == CardFlipped {
			s.cards[i].State = CardHidden
			e.ui.UpdateCard(s.cards[i])
		}
	}
	s.selection = nil
	s.paused = false
}

// win ends the session after the last pair is matched.
func (e *Engine) win(s *Session) {
	s.stopTimer()
	s.outcome = OutcomeWon
	e.store.ClearSnapshot()
	e.audio.Play(CueWin)

	if best := e.store.HighScore(); s.score > best {
		e.store.SetHighScore(s.score)
		e.logger.Info("new high score", "score", s.score, "previous", best)
	}
	e.ui.UpdateHighScore(e.store.HighScore())

	e.record(s)
	e.logger.Info("level complete", "session", s.id, "level", s.level, "score", s.score, "remaining", s.remaining)
	e.ui.ShowWin(s.score)
}

// record stores the finished session when the store keeps history.
func (e *Engine) record(s *Session) {
	rec, ok := e.store.(ResultRecorder)
	if !ok {
		return
	}
	rec.RecordResult(Result{
		SessionID:     s.id,
		Level:         s.level,
		Score:         s.score,
		Outcome:       s.outcome,
		RemainingTime: s.remaining,
	})
}
