package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventure/internal/session"
	"github.com/abhisek/mathadventure/internal/ui/components"
	"github.com/abhisek/mathadventure/internal/ui/theme"
)

// mascotMinHeight is the content height below which feedback drops the mascot.
const mascotMinHeight = 26

func statusLine(s *session.State) string {
	return fmt.Sprintf("⭐ %d/%d", s.Score, s.Attempts)
}

func (p *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		p.renderScoreboard(cw),
		p.renderProblem(cw),
		p.renderFeedback(cw, height >= mascotMinHeight),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// renderScoreboard shows stars earned, accuracy and the current streak.
func (p *PlayScreen) renderScoreboard(cw int) string {
	s := p.state

	stars := lipgloss.NewStyle().Foreground(theme.Sunshine).Bold(true).
		Render(fmt.Sprintf("Stars Earned ⭐ %d", s.Score))

	line := stars
	if s.Streak > 0 {
		streak := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("🔥 %d in a row!", s.Streak))
		line += "    " + streak
	}

	bar := components.NewProgressBar("How Good? 🎯", s.Accuracy(), cw-4).View()
	return components.Card(line+"\n"+bar, cw, theme.Sky)
}

// renderProblem shows the current problem and the answer box.
func (p *PlayScreen) renderProblem(cw int) string {
	problem := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(p.state.Current.String() + " = ?")

	body := problem + "\n\n" + p.input.View()
	if p.hint != "" {
		body += "\n" + theme.Hint.Render(p.hint)
	}
	return components.Card(body, cw, theme.Primary)
}

// renderFeedback shows the verdict on the last answer while feedback is up.
func (p *PlayScreen) renderFeedback(cw int, mascot bool) string {
	res := p.state.Last
	if p.state.Phase != session.PhaseFeedback || res == nil {
		return theme.Subtitle.Width(cw).Render("Type your answer and press Enter!")
	}

	text := p.message.Emoji + " " + p.message.Text
	var b strings.Builder
	if res.Correct {
		b.WriteString(theme.Correct.Render(text))
		if res.Milestone {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("Wow, %d in a row! 🔥", res.Streak)))
		}
	} else {
		b.WriteString(theme.Incorrect.Render(text))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s = %d", res.Problem.String(), res.Problem.Answer)))
	}

	border, mood := theme.Success, components.MoodCheering
	if !res.Correct {
		border, mood = theme.Error, components.MoodHugging
	}
	body := b.String()
	if mascot {
		body = lipgloss.JoinHorizontal(lipgloss.Center, components.Mascot(mood), "   ", body)
	}
	return components.Card(body, cw, border)
}
