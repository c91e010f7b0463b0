package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"

	"github.com/robby/glassign/internal/domain"
	"github.com/robby/glassign/internal/reconcile"
)

// PromptConfirmer asks the user to confirm each matched pair interactively.
// It runs one small Bubble Tea program per pair; the engine blocks until a
// decision key is pressed.
type PromptConfirmer struct{}

// Confirm displays the pair and waits for a decision.
func (PromptConfirmer) Confirm(pair domain.MatchedPair) (reconcile.Decision, error) {
	final, err := tea.NewProgram(newConfirmModel(pair)).Run()
	if err != nil {
		return reconcile.DecisionQuit, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok {
		return reconcile.DecisionQuit, fmt.Errorf("unexpected prompt model type %T", final)
	}
	return m.decision, nil
}

// confirmModel is the Bubble Tea model for a single yes/no prompt.
type confirmModel struct {
	pair     domain.MatchedPair
	keys     ConfirmKeyMap
	width    int
	decision reconcile.Decision
	openErr  error
}

func newConfirmModel(pair domain.MatchedPair) confirmModel {
	return confirmModel{
		pair:     pair,
		keys:     DefaultConfirmKeyMap(),
		width:    80,
		decision: reconcile.DecisionNo,
	}
}

// Init implements tea.Model.
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.decision = reconcile.DecisionYes
			return m, tea.Quit
		case key.Matches(msg, m.keys.No):
			m.decision = reconcile.DecisionNo
			return m, tea.Quit
		case key.Matches(msg, m.keys.All):
			m.decision = reconcile.DecisionAll
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.decision = reconcile.DecisionQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open):
			if m.pair.Dest.WebURL != "" {
				m.openErr = browser.OpenURL(m.pair.Dest.WebURL)
			}
			return m, nil
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m confirmModel) View() string {
	source := fmt.Sprintf("source      %s : %s", m.pair.Source.ShortRef(), m.pair.Source.Title)
	dest := fmt.Sprintf("destination %s : %s", m.pair.Dest.ShortRef(), m.pair.Dest.Title)

	view := MatchStyle.Render(wordwrap.String(source, m.width)) + "\n" +
		MatchStyle.Render(wordwrap.String(dest, m.width)) + "\n" +
		PromptStyle.Render("Update assignee?") + "\n" +
		DimStyle.Render(renderHelp(m.keys)) + "\n"

	if m.openErr != nil {
		view += ErrorStyle.Render(fmt.Sprintf("could not open browser: %v", m.openErr)) + "\n"
	}

	return view
}

// renderHelp formats the short help line for the prompt key bindings.
func renderHelp(keys ConfirmKeyMap) string {
	help := ""
	for i, b := range keys.ShortHelp() {
		if i > 0 {
			help += "  "
		}
		help += b.Help().Key + " " + b.Help().Desc
	}
	return help
}

var _ reconcile.Confirmer = PromptConfirmer{}
