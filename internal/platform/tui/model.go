package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardentis/runeway/internal/config"
	"github.com/ardentis/runeway/internal/core"
	"github.com/ardentis/runeway/internal/player"
	"github.com/ardentis/runeway/internal/sim"
	"github.com/ardentis/runeway/internal/storage"
)

// burst is a transient visual sparkle driven by a drained BurstEvent.
type burst struct {
	pos   sim.Vec3
	color core.Color
	ticks int
}

// Model is the Bubble Tea model that hosts one run session. It owns the
// world and is the single writer of all simulation state; rendering only
// reads. The tick handler drains the simulation's event queue and feeds
// hits back through World.Damage.
type Model struct {
	world   *sim.World
	plr     *player.Player
	screen  *core.Screen
	store   *storage.Store
	gameCfg *config.Config
	runtime core.RuntimeConfig
	keys    *KeyMapper
	input   core.InputFrame

	quitting   bool
	runSaved   bool // Whether the current terminal run has been persisted
	flashTicks int  // Hit feedback countdown
	bursts     []burst
}

// NewModel creates a session model for the given tuning and runtime
// config. store may be nil; the game then runs without persistence.
func NewModel(gameCfg *config.Config, store *storage.Store, runtime core.RuntimeConfig) Model {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		world:   sim.NewWorld(gameCfg, runtime.Seed),
		plr:     player.New(gameCfg),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:   store,
		gameCfg: gameCfg,
		runtime: runtime,
		keys:    NewKeyMapper(),
		input:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input into the next tick's command frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adjusts the screen buffer to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick: start/restart commands first,
// then player movement, the world step, and the event drain.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.runtime.TickRate)
	st := m.world.State()

	if m.input.Has(core.ActionStart) {
		switch st.Status {
		case sim.StatusMenu:
			m.world.StartGame()
			m = m.resetSession()
		case sim.StatusGameOver, sim.StatusVictory:
			m.world.RestartGame()
			m = m.resetSession()
		}
	}

	if st.Status == sim.StatusPlaying {
		m.plr.Apply(m.input, st.LaneCount)
		m.plr.ClampToCorridor(st.LaneCount)
		m.plr.Update(dt)

		events := m.world.Step(m.plr.Position(), dt)
		for _, ev := range events {
			switch e := ev.(type) {
			case sim.PlayerHitEvent:
				// The hit signal is applied here, not inside the sim,
				// so movement mechanics could veto it.
				m.world.Damage()
				m.flashTicks = 6
				m.bursts = append(m.bursts, burst{pos: e.Pos, color: core.ColorBrightRed, ticks: 10})
			case sim.BurstEvent:
				m.bursts = append(m.bursts, burst{pos: e.Pos, color: e.Color, ticks: 12})
			}
		}
	}

	m = m.persistIfFinished()
	m = m.decayEffects()

	m.input.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// resetSession clears per-run presentation state alongside a world reset.
func (m Model) resetSession() Model {
	m.plr.Reset()
	m.runSaved = false
	m.flashTicks = 0
	m.bursts = nil
	return m
}

// persistIfFinished saves a terminal run once, best effort. A failed or
// missing store never affects the game.
func (m Model) persistIfFinished() Model {
	st := m.world.State()
	if m.runSaved || (st.Status != sim.StatusGameOver && st.Status != sim.StatusVictory) {
		return m
	}

	m.runSaved = true
	if m.store == nil || st.Score <= 0 {
		return m
	}

	outcome := storage.OutcomeGameOver
	if st.Status == sim.StatusVictory {
		outcome = storage.OutcomeVictory
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunEntry{
		Score:    st.Score,
		Level:    st.Level,
		Gems:     st.Gems,
		Distance: st.Distance,
		Outcome:  outcome,
	})
	return m
}

// decayEffects counts down the hit flash and burst sparkles.
func (m Model) decayEffects() Model {
	if m.flashTicks > 0 {
		m.flashTicks--
	}

	alive := m.bursts[:0]
	for _, b := range m.bursts {
		b.ticks--
		if b.ticks > 0 {
			alive = append(alive, b)
		}
	}
	m.bursts = alive
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg *config.Config, store *storage.Store, runtime core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
