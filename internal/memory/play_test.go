package memory

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
)

func TestMatchScoresPair(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.setValues(map[int]int{0: 5, 1: 5})

	h.engine.HandleCardClick(0)
	h.engine.HandleCardClick(1)

	st := h.engine.State()
	if st.Score != 10 {
		t.Errorf("score = %d, want 10", st.Score)
	}
	if st.Matched != 2 {
		t.Errorf("matched = %d, want 2", st.Matched)
	}
	if st.Cards[0].State != CardMatched || st.Cards[1].State != CardMatched {
		t.Errorf("cards = %s, %s; want matched", st.Cards[0].State, st.Cards[1].State)
	}
	if len(st.Selection) != 0 || st.Paused {
		t.Errorf("selection = %v paused = %v after match", st.Selection, st.Paused)
	}
	if got := h.ui.lastStats(); got != (statsCall{10, 60, 2}) {
		t.Errorf("stats = %+v, want {10 60 2}", got)
	}
	if h.audio.count(CueFlip) != 2 || h.audio.count(CueMatch) != 1 {
		t.Errorf("cues = %v", h.audio.played)
	}
	if h.ui.cards[0].State != CardMatched || h.ui.cards[1].State != CardMatched {
		t.Error("presenter not told about matched cards")
	}
}

func TestMismatchRevertsAfterDelay(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.setValues(map[int]int{0: 1, 1: 2})

	h.engine.HandleCardClick(0)
	h.engine.HandleCardClick(1)

	st := h.engine.State()
	if !st.Paused {
		t.Error("session should block clicks while the pair is shown")
	}
	if st.Cards[0].State != CardFlipped || st.Cards[1].State != CardFlipped {
		t.Fatal("mismatched cards should stay face up during the delay")
	}
	if h.audio.count(CueWrong) != 1 {
		t.Errorf("cues = %v, want one wrong", h.audio.played)
	}

	h.sched.Advance(MismatchDelay - time.Millisecond)
	if h.engine.State().Cards[0].State != CardFlipped {
		t.Fatal("cards reverted before the delay elapsed")
	}

	h.sched.Advance(time.Millisecond)
	st = h.engine.State()
	if st.Cards[0].State != CardHidden || st.Cards[1].State != CardHidden {
		t.Errorf("cards = %s, %s; want hidden", st.Cards[0].State, st.Cards[1].State)
	}
	if len(st.Selection) != 0 || st.Paused {
		t.Errorf("selection = %v paused = %v after revert", st.Selection, st.Paused)
	}
	if st.Score != 0 || st.Matched != 0 {
		t.Errorf("score = %d matched = %d, want 0 0", st.Score, st.Matched)
	}
	if h.ui.cards[0].State != CardHidden {
		t.Error("presenter not told about reverted card")
	}
}

func TestClickSameCardTwice(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)

	h.engine.HandleCardClick(3)
	h.engine.HandleCardClick(3)

	st := h.engine.State()
	if len(st.Selection) != 1 || st.Selection[0] != 3 {
		t.Errorf("selection = %v, want [3]", st.Selection)
	}
	if st.Paused {
		t.Error("a single card must not trigger resolution")
	}
	if h.audio.count(CueFlip) != 1 {
		t.Errorf("flip cues = %d, want 1", h.audio.count(CueFlip))
	}
}

func TestClicksDroppedDuringMismatchWindow(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.setValues(map[int]int{0: 1, 1: 2})

	h.engine.HandleCardClick(0)
	h.engine.HandleCardClick(1)
	h.engine.HandleCardClick(2)

	if got := h.engine.State().Cards[2].State; got != CardHidden {
		t.Errorf("card 2 is %s, want hidden", got)
	}

	h.sched.Advance(MismatchDelay)

	// Dropped, not queued
	if got := h.engine.State().Cards[2].State; got != CardHidden {
		t.Errorf("card 2 is %s after delay, want hidden", got)
	}
}

func TestClicksIgnoredOnMatchedCard(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.setValues(map[int]int{0: 4, 1: 4})

	h.engine.HandleCardClick(0)
	h.engine.HandleCardClick(1)
	h.engine.HandleCardClick(0)

	st := h.engine.State()
	if len(st.Selection) != 0 {
		t.Errorf("selection = %v, want empty", st.Selection)
	}
	if st.Score != 10 {
		t.Errorf("score = %d, want 10", st.Score)
	}
}

func TestClickIgnoredWhenPaused(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)

	if !h.engine.TogglePause() {
		t.Fatal("TogglePause should report paused")
	}
	h.engine.HandleCardClick(0)

	if got := h.engine.State().Cards[0].State; got != CardHidden {
		t.Errorf("card flipped while paused: %s", got)
	}
	if len(h.audio.played) != 0 {
		t.Errorf("cues played while paused: %v", h.audio.played)
	}
}

func TestClickOutOfRange(t *testing.T) {
	h := newHarness(t)
	h.engine.HandleCardClick(0) // no session

	h.engine.ChooseLevel(config.DifficultyEasy)
	h.engine.HandleCardClick(-1)
	h.engine.HandleCardClick(16)

	if st := h.engine.State(); len(st.Selection) != 0 {
		t.Errorf("selection = %v, want empty", st.Selection)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyMedium)

	byValue := pairs(h.engine.State().Cards)
	lastScore, lastMatched := 0, 0
	for v := 1; v <= 18; v++ {
		idx := byValue[v]
		other := byValue[v%18+1]

		// A wrong guess first
		h.engine.HandleCardClick(idx[0])
		h.engine.HandleCardClick(other[0])
		h.sched.Advance(MismatchDelay)

		st := h.engine.State()
		if st.Score != lastScore || st.Matched != lastMatched {
			t.Fatalf("mismatch changed score/matched to %d/%d", st.Score, st.Matched)
		}

		h.engine.HandleCardClick(idx[0])
		h.engine.HandleCardClick(idx[1])

		st = h.engine.State()
		if st.Score != lastScore+MatchPoints || st.Matched != lastMatched+2 {
			t.Fatalf("match %d: score/matched = %d/%d, want %d/%d",
				v, st.Score, st.Matched, lastScore+MatchPoints, lastMatched+2)
		}
		lastScore, lastMatched = st.Score, st.Matched
	}
}

func TestWinStopsTimerAndStoresHighScore(t *testing.T) {
	h := newHarness(t)
	h.store.high = 50
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.sched.Advance(2 * time.Second)

	h.solve()

	st := h.engine.State()
	if st.Outcome != OutcomeWon {
		t.Fatalf("outcome = %s, want won", st.Outcome)
	}
	if st.TimerActive {
		t.Error("timer should stop on win")
	}
	if st.Score != 80 || st.Matched != 16 {
		t.Errorf("score/matched = %d/%d, want 80/16", st.Score, st.Matched)
	}
	if h.store.high != 80 {
		t.Errorf("high score = %d, want 80", h.store.high)
	}
	if len(h.ui.wins) != 1 || h.ui.wins[0] != 80 {
		t.Errorf("wins = %v, want [80]", h.ui.wins)
	}
	if got := h.ui.highScores[len(h.ui.highScores)-1]; got != 80 {
		t.Errorf("displayed high score = %d, want 80", got)
	}
	if h.audio.count(CueWin) != 1 {
		t.Errorf("win cues = %d, want 1", h.audio.count(CueWin))
	}

	remaining := st.RemainingTime
	h.sched.Advance(10 * time.Second)
	if got := h.engine.State().RemainingTime; got != remaining {
		t.Errorf("remaining changed after win: %d -> %d", remaining, got)
	}

	if len(h.store.results) != 1 {
		t.Fatalf("results = %v, want one", h.store.results)
	}
	r := h.store.results[0]
	if r.Outcome != OutcomeWon || r.Score != 80 || r.Level != config.DifficultyEasy || r.RemainingTime != 58 {
		t.Errorf("result = %+v", r)
	}
}

func TestHighScoreOnlyOnStrictImprovement(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		wantHits int
		wantHigh int
	}{
		{"lower previous", 70, 1, 80},
		{"equal previous", 80, 0, 80},
		{"higher previous", 200, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.store.high = tt.previous
			h.engine.ChooseLevel(config.DifficultyEasy)

			h.solve()

			if h.store.setHighHits != tt.wantHits {
				t.Errorf("SetHighScore calls = %d, want %d", h.store.setHighHits, tt.wantHits)
			}
			if h.store.high != tt.wantHigh {
				t.Errorf("high score = %d, want %d", h.store.high, tt.wantHigh)
			}
		})
	}
}

func TestClicksIgnoredAfterTimeOver(t *testing.T) {
	h := newHarness(t)
	h.engine.RestoreBoard(Snapshot{Level: config.DifficultyEasy, TotalCards: 16, RemainingTime: 1})
	h.sched.Advance(time.Second)

	// Unpausing must not reopen a finished game
	h.engine.TogglePause()
	h.engine.HandleCardClick(5)

	if got := h.engine.State().Cards[5].State; got != CardHidden {
		t.Errorf("card flipped after time over: %s", got)
	}
}

func TestWinDropsRestoredSave(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.engine.Back()
	h.engine.ChooseLevel(config.DifficultyEasy)

	h.solve()

	if st := h.engine.State(); st.Outcome != OutcomeWon {
		t.Fatalf("outcome = %s, want won", st.Outcome)
	}
	if h.store.snap != nil {
		t.Error("win should drop the saved session")
	}
}
