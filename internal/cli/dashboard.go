package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ecoquest/internal/cli/formatter"
	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/service"
	"github.com/alexanderramin/ecoquest/internal/stats"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// footerHeight is the rows reserved below the viewport for notice and help.
const footerHeight = 3

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarn
)

// dashboardModel is the interactive widget: challenge card, stats and trend
// above a key help footer. Tracker calls run inside Update; they are local
// sqlite writes.
type dashboardModel struct {
	ctx     context.Context
	tracker service.ChallengeTracker
	keys    dashboardKeyMap
	help    help.Model
	vp      viewport.Model

	window     int
	confirming bool
	notice     string
	kind       noticeKind
	width      int
	height     int
	quitting   bool
}

func newDashboardModel(ctx context.Context, app *App) dashboardModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = dashboardViewportKeyMap()

	return dashboardModel{
		ctx:     ctx,
		tracker: app.Tracker,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		vp:      vp,
		window:  app.trendDays(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-footerHeight, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.confirming {
			m, cmd = m.handleConfirmKey(msg)
		} else {
			m, cmd = m.handleKey(msg)
		}
		m.refresh()
		return m, cmd
	}
	return m, nil
}

// refresh re-renders the body into the stored viewport so scrolling works on
// current content. SetContent keeps the scroll offset when it still fits.
func (m *dashboardModel) refresh() {
	if m.height > 0 {
		m.vp.SetContent(m.renderBody())
	}
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Consumption):
		m.selectType(domain.ChallengeConsumption)
	case key.Matches(msg, m.keys.Waste):
		m.selectType(domain.ChallengeWaste)
	case key.Matches(msg, m.keys.Electricity):
		m.selectType(domain.ChallengeElectricity)
	case key.Matches(msg, m.keys.Fuel):
		m.selectType(domain.ChallengeFuel)
	case key.Matches(msg, m.keys.NextType):
		m.selectType(nextChallengeType(m.tracker.ChallengeType()))

	case key.Matches(msg, m.keys.Generate):
		if _, err := m.tracker.GenerateChallenge(m.ctx); err != nil {
			m.setNotice(noticeWarn, err.Error())
		} else {
			m.setNotice(noticeInfo, "New challenge drawn.")
		}

	case key.Matches(msg, m.keys.Complete):
		m.record(domain.OutcomeCompleted)
	case key.Matches(msg, m.keys.Fail):
		m.record(domain.OutcomeFailed)

	case key.Matches(msg, m.keys.Reset):
		m.confirming = true
		m.setNotice(noticeWarn, service.ResetPrompt)

	case key.Matches(msg, m.keys.Shorter):
		m.window = stats.PrevTrendWindow(m.window)
	case key.Matches(msg, m.keys.Longer):
		m.window = stats.NextTrendWindow(m.window)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) handleConfirmKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	var answer bool
	switch {
	case key.Matches(msg, m.keys.Confirm):
		answer = true
	case key.Matches(msg, m.keys.Cancel):
		answer = false
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}

	m.confirming = false
	confirm := service.ConfirmFunc(func(context.Context, string) (bool, error) {
		return answer, nil
	})
	err := m.tracker.Reset(m.ctx, confirm)
	switch {
	case errors.Is(err, domain.ErrResetNotConfirmed):
		m.setNotice(noticeInfo, "Reset cancelled.")
	case err != nil:
		m.setNotice(noticeWarn, err.Error())
	default:
		m.setNotice(noticeSuccess, "All progress has been reset.")
	}
	return m, nil
}

func (m *dashboardModel) selectType(t domain.ChallengeType) {
	if err := m.tracker.SelectChallengeType(m.ctx, t); err != nil {
		m.setNotice(noticeWarn, err.Error())
		return
	}
	m.setNotice(noticeInfo, fmt.Sprintf("Challenge type: %s", t.Label()))
}

func (m *dashboardModel) record(outcome domain.Outcome) {
	entry, err := m.tracker.RecordOutcome(m.ctx, outcome)
	if errors.Is(err, domain.ErrNoActiveChallenge) {
		m.setNotice(noticeWarn, "No active challenge. Press g to generate one.")
		return
	}
	if err != nil {
		m.setNotice(noticeWarn, err.Error())
		return
	}
	if entry.Completed() {
		m.setNotice(noticeSuccess, "Great job! Challenge completed.")
		return
	}
	m.setNotice(noticeInfo, "Challenge marked as not completed. Try another one!")
}

func (m *dashboardModel) setNotice(kind noticeKind, text string) {
	m.kind = kind
	m.notice = text
}

func nextChallengeType(current domain.ChallengeType) domain.ChallengeType {
	for i, t := range domain.AllChallengeTypes {
		if t == current {
			return domain.AllChallengeTypes[(i+1)%len(domain.AllChallengeTypes)]
		}
	}
	return domain.DefaultChallengeType
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	body := m.vp.View()
	if m.height == 0 {
		body = m.renderBody()
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")
	if m.confirming {
		b.WriteString(m.help.View(confirmKeyMap{Confirm: m.keys.Confirm, Cancel: m.keys.Cancel}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m dashboardModel) renderBody() string {
	snap := m.tracker.Snapshot(m.window)

	title := formatter.StyleHeader.Render("ECOQUEST") + "  " + formatter.Dim("daily eco-challenges")
	card := formatter.FormatChallenge(snap.ChallengeType, snap.CurrentChallenge, snap.HasChallenge)
	progress := formatter.RenderBox("Progress", formatter.FormatSummary(snap.Stats, snap.CompletionRate, snap.Streak))
	byType := formatter.RenderBox("By type", formatter.FormatTally(snap.Tally))
	trend := formatter.RenderBox(fmt.Sprintf("Last %d days", snap.TrendWindow), formatter.FormatTrend(snap.Trend))

	var top string
	if m.width >= 100 {
		top = lipgloss.JoinHorizontal(lipgloss.Top, strings.TrimRight(card, "\n"), " ", strings.TrimRight(progress, "\n"))
	} else {
		top = lipgloss.JoinVertical(lipgloss.Left, strings.TrimRight(card, "\n"), strings.TrimRight(progress, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		top,
		strings.TrimRight(byType, "\n"),
		strings.TrimRight(trend, "\n"),
	)
}

func (m dashboardModel) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	switch m.kind {
	case noticeSuccess:
		return formatter.StyleGreen.Render(m.notice)
	case noticeWarn:
		return formatter.StyleYellow.Render(m.notice)
	default:
		return formatter.Dim(m.notice)
	}
}

func runDashboard(ctx context.Context, app *App) error {
	if err := requireTracker(app); err != nil {
		return err
	}
	p := tea.NewProgram(newDashboardModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard needs an interactive terminal")
			}
			return runDashboard(cmd.Context(), app)
		},
	}
}
