package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/i18n"
	"zenith/internal/store"
	"zenith/internal/tools"
)

const replyDelay = 600 * time.Millisecond

// Canned assistant replies, cycled per message.
var cannedReplies = []string{
	"I can help with that. Check the board for open cards, or ask /tools to see what I can look up.",
	"Based on the current sprint, the development track is the busiest. Consider moving a card back to review.",
	"Noted. I'd suggest breaking that into smaller cards with explicit due dates.",
	"The timeline shows two tasks overlapping next week. Worth flagging in the next sync.",
}

type chatRole int

const (
	roleUser chatRole = iota
	roleAssistant
)

type chatMessage struct {
	role chatRole
	text string
}

type chatModel struct {
	store    *store.Store
	i18n     *i18n.Store
	registry *tools.Registry
	width    int
	height   int

	messages []chatMessage
	viewport viewport.Model
	input    textinput.Model

	// seq orders sends; replies carrying an older seq are dropped.
	seq     int
	pending bool
	replies int
}

func newChatModel(s *store.Store, tr *i18n.Store, reg *tools.Registry) chatModel {
	input := textinput.New()
	input.Placeholder = tr.Translate("typeMessage")
	input.CharLimit = 400
	input.Focus()

	return chatModel{
		store:    s,
		i18n:     tr,
		registry: reg,
		viewport: viewport.New(60, 10),
		input:    input,
	}
}

func (c *chatModel) setSize(w, h int) {
	c.width = w
	c.height = h
	c.viewport.Width = w - 8
	c.viewport.Height = max(4, h-8)
	c.input.Width = w - 12
	c.syncViewport()
}

func (c chatModel) capturing() bool {
	return c.input.Focused()
}

func (c chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		// A newer send or a clear supersedes this reply.
		if msg.seq != c.seq {
			return c, nil
		}
		c.pending = false
		c.messages = append(c.messages, chatMessage{role: roleAssistant, text: msg.text})
		c.syncViewport()
		return c, nil

	case toolResultMsg:
		if msg.seq != c.seq {
			return c, nil
		}
		c.pending = false
		c.messages = append(c.messages, chatMessage{role: roleAssistant, text: c.formatToolResult(msg)})
		c.syncViewport()
		return c, nil

	case researchDoneMsg:
		if msg.seq != c.seq {
			return c, nil
		}
		c.pending = false
		doc, err := c.store.CreateResearchReport("Pesquisa: "+msg.query, msg.report, "Usuário Atual")
		text := ""
		if err != nil {
			text = fmt.Sprintf("Research error: %v", err)
		} else {
			text = fmt.Sprintf("%s %q", c.i18n.Translate("researchComplete"), doc.Title)
		}
		c.messages = append(c.messages, chatMessage{role: roleAssistant, text: text})
		c.syncViewport()
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			c.input.Blur()
			return c, nil
		case "i", "/":
			if !c.input.Focused() {
				cmd := c.input.Focus()
				if msg.String() == "/" {
					c.input.SetValue("/")
					c.input.CursorEnd()
				}
				return c, cmd
			}
		case "ctrl+l":
			c.messages = nil
			c.seq++
			c.pending = false
			c.syncViewport()
			return c, nil
		case "enter":
			if c.input.Focused() {
				return c.send()
			}
		case "up", "k", "down", "j", "pgup", "pgdown":
			if !c.input.Focused() {
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}
		}
	}

	if c.input.Focused() {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c chatModel) send() (chatModel, tea.Cmd) {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return c, nil
	}
	c.input.Reset()
	c.messages = append(c.messages, chatMessage{role: roleUser, text: text})
	c.seq++
	c.pending = true
	seq := c.seq

	if strings.HasPrefix(text, "/") {
		return c.runCommand(text, seq)
	}

	reply := cannedReplies[c.replies%len(cannedReplies)]
	c.replies++
	c.syncViewport()
	return c, tea.Tick(replyDelay, func(time.Time) tea.Msg {
		return chatReplyMsg{seq: seq, text: reply}
	})
}

func (c chatModel) runCommand(text string, seq int) (chatModel, tea.Cmd) {
	fields := strings.Fields(strings.TrimPrefix(text, "/"))
	if len(fields) == 0 {
		c.pending = false
		c.syncViewport()
		return c, nil
	}
	name := fields[0]
	query := strings.Join(fields[1:], " ")

	if name == "tools" {
		c.pending = false
		c.messages = append(c.messages, chatMessage{role: roleAssistant, text: c.listTools()})
		c.syncViewport()
		return c, nil
	}

	if name == "research" {
		if query == "" {
			c.pending = false
			c.messages = append(c.messages, chatMessage{
				role: roleAssistant,
				text: c.i18n.Translate("researchQueryRequired"),
			})
			c.syncViewport()
			return c, nil
		}
		report := researchReport(c.i18n.Language(), query)
		c.syncViewport()
		return c, tea.Tick(researchDelay, func(time.Time) tea.Msg {
			return researchDoneMsg{seq: seq, query: query, report: report}
		})
	}

	tool, ok := c.registry.ByName(name)
	if !ok {
		c.pending = false
		c.messages = append(c.messages, chatMessage{
			role: roleAssistant,
			text: fmt.Sprintf("Unknown tool %q. Try /tools.", name),
		})
		c.syncViewport()
		return c, nil
	}

	c.syncViewport()
	return c, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		result, err := tool.Invoke(ctx, tools.Params{Query: query})
		return toolResultMsg{seq: seq, result: result, err: err}
	}
}

func (c chatModel) listTools() string {
	var sb strings.Builder
	sb.WriteString("Available tools:\n")
	for _, t := range c.registry.All() {
		state := "ready"
		if !t.Available() {
			state = c.i18n.Translate("notConfigured")
		}
		fmt.Fprintf(&sb, "  /%s  %s (%s)\n", t.Name, t.Description, state)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (c chatModel) formatToolResult(msg toolResultMsg) string {
	if msg.err != nil {
		if errors.Is(msg.err, tools.ErrUnavailable) {
			return c.i18n.Translate("notConfigured") + ". Add the API key in " +
				c.i18n.Translate("settings") + "."
		}
		return fmt.Sprintf("Tool error: %v", msg.err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s):\n", c.i18n.Translate("results"), msg.result.Tool)
	for _, item := range msg.result.Items {
		fmt.Fprintf(&sb, "  • %s — %s\n", item.Title, item.Snippet)
		if item.Link != "" {
			fmt.Fprintf(&sb, "    %s\n", item.Link)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (c *chatModel) syncViewport() {
	var sb strings.Builder
	for _, m := range c.messages {
		switch m.role {
		case roleUser:
			sb.WriteString(userMsgStyle.Render("you") + "  " + m.text + "\n\n")
		default:
			sb.WriteString(assistantMsgStyle.Render(m.text) + "\n\n")
		}
	}
	if c.pending {
		sb.WriteString(mutedStyle.Render("...") + "\n")
	}
	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

func (c chatModel) view() string {
	w := c.width - 4

	title := titleStyle.Render(c.i18n.Translate("assistant"))
	hint := mutedStyle.Render("  enter: " + c.i18n.Translate("send") + "  /tools: list tools  ctrl+l: clear  esc: scroll mode")

	body := c.viewport.View()
	if len(c.messages) == 0 && !c.pending {
		body = mutedStyle.Render("Ask anything, run /tools to see integrations, or /research <query> to generate a report.")
	}

	inputStyle := panelStyle
	if c.input.Focused() {
		inputStyle = activePanelStyle
	}
	inputView := inputStyle.UnsetPadding().Padding(0, 1).Render(c.input.View())

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", inputView, hint),
	)
}
