// Package tui renders the pair grid in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"harnesspair/internal/domain"
	"harnesspair/internal/sampler"
)

// Generator produces a fresh run each time it is called
type Generator interface {
	Generate(ctx context.Context) (*domain.PairRun, error)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type runMsg struct{ run *domain.PairRun }

type errMsg struct{ err error }

// Model is the bubbletea model of the grid
type Model struct {
	ctx     context.Context
	gen     Generator
	table   table.Model
	run     *domain.PairRun
	err     error
	loading bool
}

// New creates a grid model; Init triggers the first generation
func New(ctx context.Context, gen Generator) Model {
	columns := make([]table.Column, len(domain.PairColumns))
	for i, title := range domain.PairColumns {
		width := len(title) + 2
		if width < 10 {
			width = 10
		}
		columns[i] = table.Column{Title: title, Width: width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(sampler.MaxResultCount+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{ctx: ctx, gen: gen, table: t, loading: true}
}

func (m Model) generate() tea.Cmd {
	return func() tea.Msg {
		run, err := m.gen.Generate(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return runMsg{run}
	}
}

func (m Model) Init() tea.Cmd {
	return m.generate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.generate()
		}

	case runMsg:
		m.loading = false
		m.err = nil
		m.run = msg.run
		rows := make([]table.Row, len(msg.run.Pairs))
		for i, p := range msg.run.Pairs {
			rows[i] = table.Row(p.Columns())
		}
		m.table.SetRows(rows)
		m.table.SetCursor(0)
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Harness pairs"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r refresh • ↑/↓ move • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) status() string {
	switch {
	case m.loading:
		return statusStyle.Render("generating...")
	case m.err != nil:
		return errorStyle.Render("error: " + m.err.Error())
	case m.run != nil:
		return statusStyle.Render(fmt.Sprintf("%d pairs, %d with duplicate housings, %d attempts",
			len(m.run.Pairs), m.run.DuplicateCount(), m.run.Attempts))
	default:
		return ""
	}
}

// Run starts the program on the terminal and blocks until the user quits
func Run(ctx context.Context, gen Generator) error {
	p := tea.NewProgram(New(ctx, gen), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
