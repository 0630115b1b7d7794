package memory

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// manualScheduler runs timers against a virtual clock advanced by tests.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	every   time.Duration // Zero for one-shot timers
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() { t.stopped = true }

func (m *manualScheduler) add(d, every time.Duration, fn func()) *manualTimer {
	m.seq++
	t := &manualTimer{due: m.now + d, every: every, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

func (m *manualScheduler) Every(d time.Duration, fn func()) Timer { return m.add(d, d, fn) }
func (m *manualScheduler) After(d time.Duration, fn func()) Timer { return m.add(d, 0, fn) }

// Advance moves the clock forward, firing due timers in order.
func (m *manualScheduler) Advance(d time.Duration) {
	end := m.now + d
	for {
		var next *manualTimer
		for _, t := range m.timers {
			if t.stopped || t.due > end {
				continue
			}
			if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			break
		}
		m.now = next.due
		if next.every > 0 {
			next.due += next.every
		} else {
			next.stopped = true
		}
		next.fn()
	}
	m.now = end
}

// Active returns the number of timers that can still fire.
func (m *manualScheduler) Active() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type statsCall struct{ score, remaining, matched int }

type fakePresenter struct {
	screens    []Screen
	boards     int
	columns    int
	level      config.Difficulty
	cards      map[int]Card
	stats      []statsCall
	highScores []int
	wins       []int
	gameOvers  []int
	modalHides int
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{cards: make(map[int]Card)}
}

func (p *fakePresenter) ShowScreen(s Screen) { p.screens = append(p.screens, s) }

func (p *fakePresenter) RenderBoard(cards []Card, columns int, level config.Difficulty) {
	p.boards++
	p.columns = columns
	p.level = level
	p.cards = make(map[int]Card, len(cards))
	for _, c := range cards {
		p.cards[c.Index] = c
	}
}

func (p *fakePresenter) UpdateCard(c Card) { p.cards[c.Index] = c }

func (p *fakePresenter) UpdateStats(score, remaining, matched int) {
	p.stats = append(p.stats, statsCall{score, remaining, matched})
}

func (p *fakePresenter) UpdateHighScore(v int) { p.highScores = append(p.highScores, v) }
func (p *fakePresenter) ShowWin(score int)     { p.wins = append(p.wins, score) }
func (p *fakePresenter) ShowGameOver(score int) {
	p.gameOvers = append(p.gameOvers, score)
}
func (p *fakePresenter) HideModal() { p.modalHides++ }

func (p *fakePresenter) lastScreen() Screen {
	if len(p.screens) == 0 {
		return ""
	}
	return p.screens[len(p.screens)-1]
}

func (p *fakePresenter) lastStats() statsCall {
	if len(p.stats) == 0 {
		return statsCall{}
	}
	return p.stats[len(p.stats)-1]
}

type fakeAudio struct {
	played []Cue
	muted  bool
}

func (a *fakeAudio) Play(c Cue) {
	if a.muted {
		return
	}
	a.played = append(a.played, c)
}

func (a *fakeAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *fakeAudio) count(c Cue) int {
	n := 0
	for _, p := range a.played {
		if p == c {
			n++
		}
	}
	return n
}

type fakeStore struct {
	high        int
	setHighHits int
	snap        *Snapshot
	clears      int
	results     []Result
}

func (s *fakeStore) HighScore() int { return s.high }

func (s *fakeStore) SetHighScore(v int) {
	s.setHighHits++
	s.high = v
}

func (s *fakeStore) SaveSnapshot(snap Snapshot) { s.snap = &snap }

func (s *fakeStore) LoadSnapshot() (Snapshot, bool) {
	if s.snap == nil {
		return Snapshot{}, false
	}
	return *s.snap, true
}

func (s *fakeStore) ClearSnapshot() {
	s.clears++
	s.snap = nil
}

func (s *fakeStore) RecordResult(r Result) { s.results = append(s.results, r) }

type harness struct {
	engine *Engine
	ui     *fakePresenter
	audio  *fakeAudio
	store  *fakeStore
	sched  *manualScheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		ui:    newFakePresenter(),
		audio: &fakeAudio{},
		store: &fakeStore{},
		sched: &manualScheduler{},
	}
	ids := 0
	h.engine = NewEngine(Options{
		Presenter: h.ui,
		Audio:     h.audio,
		Store:     h.store,
		Scheduler: h.sched,
		Rand:      rand.New(rand.NewSource(42)),
		NewID: func() string {
			ids++
			return "session-" + strconv.Itoa(ids)
		},
	})
	return h
}

// setValues overwrites card faces on the live board.
func (h *harness) setValues(values map[int]int) {
	for i, v := range values {
		h.engine.session.cards[i].Value = v
	}
}

// pairs groups card indices by face value.
func pairs(cards []Card) map[int][]int {
	byValue := make(map[int][]int)
	for _, c := range cards {
		byValue[c.Value] = append(byValue[c.Value], c.Index)
	}
	return byValue
}

// solve clicks every unmatched pair on the board.
func (h *harness) solve() {
	for _, idx := range pairs(h.engine.State().Cards) {
		h.engine.HandleCardClick(idx[0])
		h.engine.HandleCardClick(idx[1])
	}
}
