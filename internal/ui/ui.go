// Package ui implements the terminal chat front-end with Bubble Tea. It
// renders replies and status updates; all chat semantics live in the chat
// package.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/sidekick/internal/chat"
)

// Session is the slice of the orchestrator the UI drives.
type Session interface {
	HandleUserMessage(ctx context.Context, text string, bundle *chat.ContextBundle) chat.Reply
	ClearHistory()
}

// StatusUpdate is an ephemeral phase notification from the orchestrator.
type StatusUpdate struct {
	Phase   string
	Message string
}

// message is one rendered chat entry.
type message struct {
	role    string // "user", "assistant", "error"
	content string
}

// Model implements tea.Model for the chat screen.
type Model struct {
	session  Session
	renderer MarkdownRenderer
	statusCh <-chan StatusUpdate

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	messages []message
	waiting  bool
	phase    string
	status   string
	width    int
	height   int
	ready    bool
}

// NewModel creates the chat model. statusCh receives orchestrator phase
// updates; it may be nil.
func NewModel(session Session, renderer MarkdownRenderer, statusCh <-chan StatusUpdate) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about your workspace... (ctrl+l clears history, ctrl+c quits)"
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		session:  session,
		renderer: renderer,
		statusCh: statusCh,
		input:    ti,
		viewport: viewport.New(80, 20),
		spin:     sp,
	}
}

// Internal messages.
type replyMsg chat.Reply
type statusMsg StatusUpdate

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, listenForStatus(m.statusCh))
}

// listenForStatus forwards orchestrator status updates into the program.
func listenForStatus(ch <-chan StatusUpdate) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return nil
		}
		return statusMsg(update)
	}
}

// sendMessage runs one chat turn off the UI goroutine.
func sendMessage(session Session, text string) tea.Cmd {
	return func() tea.Msg {
		return replyMsg(session.HandleUserMessage(context.Background(), text, nil))
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.input.Width = msg.Width - 6
		m.ready = true
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.session.ClearHistory()
			m.messages = nil
			m.refreshViewport()
			return m, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.messages = append(m.messages, message{role: "user", content: text})
			m.input.Reset()
			m.waiting = true
			m.phase = "thinking"
			m.refreshViewport()
			return m, sendMessage(m.session, text)
		}

	case replyMsg:
		m.waiting = false
		m.phase = ""
		m.status = ""
		reply := chat.Reply(msg)
		if reply.Err != nil {
			m.messages = append(m.messages, message{role: "error", content: reply.Err.Error()})
		} else {
			m.messages = append(m.messages, message{role: "assistant", content: reply.Text})
		}
		m.refreshViewport()

	case statusMsg:
		m.phase = msg.Phase
		m.status = msg.Message
		cmds = append(cmds, listenForStatus(m.statusCh))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// renderMessages formats the transcript for the viewport.
func (m *Model) renderMessages() string {
	if len(m.messages) == 0 {
		return statusReadyStyle.Render("No messages yet. Type a message to start.")
	}

	var lines []string
	for _, msg := range m.messages {
		switch msg.role {
		case "user":
			lines = append(lines, userMessageStyle.Render("You: "+msg.content))
		case "error":
			lines = append(lines, errorStyle.Render("Error: "+msg.content))
		default:
			rendered, err := m.renderer.Render(msg.content, m.width)
			if err != nil {
				rendered = msg.content
			}
			lines = append(lines, assistantMessageStyle.Render(rendered))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting..."
	}

	statusLine := statusReadyStyle.Render("Ready")
	if m.waiting {
		label := m.status
		if label == "" {
			label = "Thinking..."
		}
		switch m.phase {
		case "executing":
			statusLine = toolNoteStyle.Render(fmt.Sprintf("%s %s", m.spin.View(), label))
		default:
			statusLine = statusThinkingStyle.Render(fmt.Sprintf("%s %s", m.spin.View(), label))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		inputStyle.Render(m.input.View()),
		statusLine,
	)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(session Session, statusCh <-chan StatusUpdate) error {
	model := NewModel(session, NewGlamourRenderer(), statusCh)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
