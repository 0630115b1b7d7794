package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
)

func TestBootShowsStartAndHighScore(t *testing.T) {
	h := newHarness(t)
	h.store.high = 120

	h.engine.Boot()

	if h.ui.lastScreen() != ScreenStart {
		t.Errorf("screen = %q, want start", h.ui.lastScreen())
	}
	if len(h.ui.highScores) != 1 || h.ui.highScores[0] != 120 {
		t.Errorf("high score updates = %v, want [120]", h.ui.highScores)
	}

	h.engine.Start()
	if h.ui.lastScreen() != ScreenLevel {
		t.Errorf("screen after Start = %q, want level", h.ui.lastScreen())
	}
}

func TestNewBoard(t *testing.T) {
	tests := []struct {
		level   config.Difficulty
		cards   int
		columns int
		time    int
	}{
		{config.DifficultyEasy, 16, 4, 60},
		{config.DifficultyMedium, 36, 6, 120},
		{config.DifficultyHard, 64, 8, 150},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			h := newHarness(t)
			if !h.engine.NewBoard(tt.level) {
				t.Fatal("NewBoard returned false")
			}

			st := h.engine.State()
			if st.Level != tt.level || st.TotalCards != tt.cards || st.RemainingTime != tt.time {
				t.Errorf("state = %+v", st)
			}
			if st.Score != 0 || st.Matched != 0 || st.Paused || len(st.Selection) != 0 {
				t.Errorf("fresh session not zeroed: %+v", st)
			}
			if st.TimerActive {
				t.Error("NewBoard should not start the timer")
			}
			if h.ui.columns != tt.columns {
				t.Errorf("rendered %d columns, want %d", h.ui.columns, tt.columns)
			}
			if len(h.ui.cards) != tt.cards {
				t.Errorf("rendered %d cards, want %d", len(h.ui.cards), tt.cards)
			}
			if got := h.ui.lastStats(); got != (statsCall{0, tt.time, 0}) {
				t.Errorf("stats = %+v, want {0 %d 0}", got, tt.time)
			}
		})
	}
}

func TestNewBoardUnknownLevel(t *testing.T) {
	h := newHarness(t)
	if h.engine.NewBoard("nightmare") {
		t.Error("NewBoard should reject unknown level")
	}
	if h.engine.HasSession() {
		t.Error("no session should exist")
	}
}

func TestChooseLevelStartsFreshGame(t *testing.T) {
	h := newHarness(t)

	if !h.engine.ChooseLevel(config.DifficultyEasy) {
		t.Fatal("ChooseLevel returned false")
	}

	st := h.engine.State()
	if !st.TimerActive {
		t.Error("timer should run after choosing a level")
	}
	if h.ui.lastScreen() != ScreenGame {
		t.Errorf("screen = %q, want game", h.ui.lastScreen())
	}
	if st.ID != "session-1" {
		t.Errorf("session id = %q", st.ID)
	}
}

func TestChooseLevelRestoresMatchingSave(t *testing.T) {
	h := newHarness(t)
	h.store.snap = &Snapshot{
		SessionID:     "saved",
		Level:         config.DifficultyMedium,
		TotalCards:    36,
		RemainingTime: 77,
		Score:         30,
		Matched:       6,
	}

	h.engine.ChooseLevel(config.DifficultyMedium)

	st := h.engine.State()
	if st.ID != "saved" || st.Score != 30 || st.Matched != 6 || st.RemainingTime != 77 {
		t.Errorf("restored state = %+v", st)
	}
	if !st.TimerActive {
		t.Error("timer should restart after restore")
	}
}

func TestChooseLevelIgnoresSaveForOtherLevel(t *testing.T) {
	h := newHarness(t)
	h.store.snap = &Snapshot{
		Level:         config.DifficultyHard,
		TotalCards:    64,
		RemainingTime: 10,
		Score:         50,
		Matched:       10,
	}

	h.engine.ChooseLevel(config.DifficultyEasy)

	st := h.engine.State()
	if st.Level != config.DifficultyEasy || st.Score != 0 || st.RemainingTime != 60 {
		t.Errorf("expected fresh easy board, got %+v", st)
	}
	if h.store.snap == nil {
		t.Error("save for another level should be kept")
	}
}

func TestChooseLevelFallsBackOnCorruptSave(t *testing.T) {
	h := newHarness(t)
	h.store.snap = &Snapshot{
		Level:         config.DifficultyEasy,
		TotalCards:    16,
		RemainingTime: 30,
		Matched:       3, // odd
	}

	h.engine.ChooseLevel(config.DifficultyEasy)

	st := h.engine.State()
	if st.Matched != 0 || st.RemainingTime != 60 || !st.TimerActive {
		t.Errorf("expected fresh board, got %+v", st)
	}
}

func TestChooseLevelUnknown(t *testing.T) {
	h := newHarness(t)
	if h.engine.ChooseLevel("impossible") {
		t.Error("ChooseLevel should reject unknown level")
	}
	if len(h.ui.screens) != 0 {
		t.Errorf("no screen change expected, got %v", h.ui.screens)
	}
}

func TestRestoreMarksFirstCardsMatched(t *testing.T) {
	h := newHarness(t)
	snap := Snapshot{
		SessionID:     "abc",
		Level:         config.DifficultyEasy,
		TotalCards:    16,
		RemainingTime: 42,
		Score:         20,
		Matched:       4,
	}

	if !h.engine.RestoreBoard(snap) {
		t.Fatal("RestoreBoard returned false")
	}

	st := h.engine.State()
	for i, c := range st.Cards {
		want := CardHidden
		if i < 4 {
			want = CardMatched
		}
		if c.State != want {
			t.Errorf("card %d is %s, want %s", i, c.State, want)
		}
	}
	if got := h.ui.lastStats(); got != (statsCall{20, 42, 4}) {
		t.Errorf("stats = %+v, want {20 42 4}", got)
	}
	if !st.TimerActive {
		t.Error("restore should restart the timer")
	}

	h.sched.Advance(time.Second)
	if st := h.engine.State(); st.RemainingTime != 41 {
		t.Errorf("remaining after one tick = %d, want 41", st.RemainingTime)
	}
}

func TestRestoreRejectsInvalidSnapshots(t *testing.T) {
	valid := Snapshot{Level: config.DifficultyEasy, TotalCards: 16, RemainingTime: 10, Score: 0, Matched: 2}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"unknown level", func(s *Snapshot) { s.Level = "extreme" }},
		{"no level", func(s *Snapshot) { s.Level = config.DifficultyNone }},
		{"card count mismatch", func(s *Snapshot) { s.TotalCards = 36 }},
		{"odd matched", func(s *Snapshot) { s.Matched = 3 }},
		{"negative matched", func(s *Snapshot) { s.Matched = -2 }},
		{"all matched", func(s *Snapshot) { s.Matched = 16 }},
		{"no time left", func(s *Snapshot) { s.RemainingTime = 0 }},
		{"negative score", func(s *Snapshot) { s.Score = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := valid
			tt.mutate(&snap)

			if err := snap.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("Validate() = %v, want ErrInvalidSnapshot", err)
			}

			h := newHarness(t)
			if h.engine.RestoreBoard(snap) {
				t.Error("RestoreBoard should reject snapshot")
			}
			if h.engine.HasSession() {
				t.Error("rejected snapshot must not create a session")
			}
		})
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("valid snapshot rejected: %v", err)
	}
}

func TestBackSavesAndStopsTimer(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)
	h.sched.Advance(3 * time.Second)

	h.engine.Back()

	if h.engine.State().TimerActive {
		t.Error("timer should stop on back")
	}
	if h.ui.lastScreen() != ScreenLevel {
		t.Errorf("screen = %q, want level", h.ui.lastScreen())
	}
	if h.store.snap == nil {
		t.Fatal("back should save the session")
	}
	want := Snapshot{SessionID: "session-1", Level: config.DifficultyEasy, TotalCards: 16, RemainingTime: 57}
	if *h.store.snap != want {
		t.Errorf("saved %+v, want %+v", *h.store.snap, want)
	}

	// Time does not advance while on the level screen
	h.sched.Advance(5 * time.Second)
	if got := h.engine.State().RemainingTime; got != 57 {
		t.Errorf("remaining = %d after back, want 57", got)
	}

	// Re-entering the level resumes the save
	h.engine.ChooseLevel(config.DifficultyEasy)
	if st := h.engine.State(); st.RemainingTime != 57 || st.ID != "session-1" {
		t.Errorf("resumed state = %+v", st)
	}
}

func TestRestartClearsSave(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyMedium)
	h.engine.Back()
	h.engine.ChooseLevel(config.DifficultyMedium)

	h.engine.Restart()

	if h.store.snap != nil {
		t.Error("restart should clear the save")
	}
	st := h.engine.State()
	if st.Level != config.DifficultyMedium || st.RemainingTime != 120 || !st.TimerActive {
		t.Errorf("restart state = %+v", st)
	}
	if st.ID == "session-1" {
		t.Error("restart should create a new session")
	}
}

func TestRestartWithoutSession(t *testing.T) {
	h := newHarness(t)
	h.engine.Restart()
	if h.engine.HasSession() {
		t.Error("restart without a level must be a no-op")
	}
}

func TestModalControls(t *testing.T) {
	h := newHarness(t)
	h.engine.ChooseLevel(config.DifficultyEasy)

	h.engine.ModalBack()
	if h.ui.modalHides != 1 {
		t.Errorf("modal hides = %d, want 1", h.ui.modalHides)
	}
	if h.store.snap != nil {
		t.Error("modal back must not save")
	}
	if h.engine.State().TimerActive {
		t.Error("modal back should stop the timer")
	}
	if h.ui.lastScreen() != ScreenLevel {
		t.Errorf("screen = %q, want level", h.ui.lastScreen())
	}

	h.engine.ModalRestart()
	if h.ui.modalHides != 2 {
		t.Errorf("modal hides = %d, want 2", h.ui.modalHides)
	}
	if !h.engine.State().TimerActive {
		t.Error("modal restart should start a new timer")
	}
	if h.store.clears != 1 {
		t.Errorf("clears = %d, want 1", h.store.clears)
	}
}

func TestToggleMute(t *testing.T) {
	h := newHarness(t)
	if !h.engine.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if h.engine.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}

func TestMissingPersistence(t *testing.T) {
	ui := newFakePresenter()
	sched := &manualScheduler{}
	e := NewEngine(Options{Presenter: ui, Scheduler: sched})

	e.Boot()
	if len(ui.highScores) != 1 || ui.highScores[0] != 0 {
		t.Errorf("high score = %v, want [0]", ui.highScores)
	}

	e.ChooseLevel(config.DifficultyEasy)
	e.Back()
	if _, ok := e.Load(); ok {
		t.Error("nop store should never return a snapshot")
	}

	e.ChooseLevel(config.DifficultyEasy)
	for _, idx := range pairs(e.State().Cards) {
		e.HandleCardClick(idx[0])
		e.HandleCardClick(idx[1])
	}
	if e.State().Outcome != OutcomeWon {
		t.Error("game should be winnable without storage")
	}
}

func TestNewEngineRequiresScheduler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEngine without a scheduler should panic")
		}
	}()
	NewEngine(Options{})
}
