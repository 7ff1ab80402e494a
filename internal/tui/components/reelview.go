package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/reelium/internal/reels"
	"github.com/interpretive-systems/reelium/internal/theme"
	tuiansi "github.com/interpretive-systems/reelium/internal/tui/ansi"
	"github.com/interpretive-systems/reelium/internal/viewer"
)

const collapsedCaptionLines = 3

// Zone is a clickable control area on one rendered row. End is exclusive.
type Zone struct {
	Control viewer.Control
	Row     int
	Start   int
	End     int
}

// ReelViewData is everything the viewer modal shows for the current reel.
type ReelViewData struct {
	Reel            reels.Reel
	Index           int
	Count           int
	Muted           bool
	CaptionExpanded bool
	Active          bool
	Paused          bool
	Failure         error
	Now             time.Time
}

// ReelView renders the full-screen reel viewer and remembers where its
// controls were drawn.
type ReelView struct {
	theme theme.Theme
	zones []Zone
}

// NewReelView creates a viewer renderer.
func NewReelView(th theme.Theme) *ReelView {
	return &ReelView{theme: th}
}

type viewLine struct {
	text  string
	zones []Zone
}

type button struct {
	control viewer.Control
	label   string
	active  bool
}

// Render renders the modal to exactly height lines of the given width.
func (v *ReelView) Render(d ReelViewData, width, height int) []string {
	if width < 10 {
		width = 10
	}
	top := v.header(d, width)
	top = append(top, viewLine{text: v.theme.DividerText(strings.Repeat("─", width))}, viewLine{})
	top = append(top, v.playback(d, width)...)
	top = append(top, viewLine{}, viewLine{text: " " + v.stats(d)}, viewLine{})

	bottom := []viewLine{
		{},
		v.buttonRow(width, []button{
			{control: viewer.ControlPrev, label: "▲ prev", active: d.Index > 0},
			{control: viewer.ControlNext, label: "▼ next", active: d.Index < d.Count-1},
			{control: viewer.ControlMute, label: muteLabel(d.Muted), active: true},
			{control: viewer.ControlClose, label: "esc close", active: true},
		}),
		{text: " " + v.theme.FaintText("↑/↓ wheel: navigate · space: play/pause · m: mute · enter: caption · esc: close")},
	}

	captionRoom := height - len(top) - len(bottom)
	caption := v.caption(d, width, captionRoom)

	all := make([]viewLine, 0, height)
	all = append(all, top...)
	all = append(all, caption...)
	for len(all)+len(bottom) < height {
		all = append(all, viewLine{})
	}
	all = append(all, bottom...)
	if height > 0 && len(all) > height {
		all = all[:height]
	}

	v.zones = v.zones[:0]
	lines := make([]string, len(all))
	for row, l := range all {
		lines[row] = tuiansi.PadExact(l.text, width)
		for _, z := range l.zones {
			z.Row = row
			v.zones = append(v.zones, z)
		}
	}
	return lines
}

func (v *ReelView) header(d ReelViewData, width int) []viewLine {
	counter := v.theme.Title(fmt.Sprintf(" %d / %d", d.Index+1, d.Count))
	closeBtn := v.theme.Button("✕", true)
	cw := lipgloss.Width(closeBtn)
	start := width - cw - 1
	pad := start - lipgloss.Width(counter)
	if pad < 1 {
		pad = 1
		start = lipgloss.Width(counter) + 1
	}
	return []viewLine{{
		text:  counter + strings.Repeat(" ", pad) + closeBtn,
		zones: []Zone{{Control: viewer.ControlClose, Start: start, End: start + cw}},
	}}
}

func (v *ReelView) playback(d ReelViewData, width int) []viewLine {
	var status string
	switch {
	case d.Failure != nil:
		status = v.theme.ErrorText("⚠ playback unavailable")
	case !d.Active:
		status = v.theme.FaintText("…")
	case d.Paused:
		status = v.theme.HighlightText("❚❚ paused")
	default:
		status = v.theme.HighlightText("▶ playing")
	}
	out := []viewLine{{text: tuiansi.Center(status, width)}}
	if d.Failure != nil {
		out = append(out, viewLine{text: tuiansi.Center(v.theme.FaintText(d.Failure.Error()), width)})
	}
	sound := "♪ sound on"
	if d.Muted {
		sound = "♪ muted"
	}
	out = append(out, viewLine{text: tuiansi.Center(v.theme.FaintText(sound), width)})
	return out
}

func (v *ReelView) stats(d ReelViewData) string {
	parts := []string{
		"♥ " + reels.FormatCount(d.Reel.Likes) + " likes",
		"✎ " + reels.FormatCount(d.Reel.Comments) + " comments",
	}
	if d.Reel.HasViews() {
		parts = append(parts, "▶ "+reels.FormatCount(d.Reel.Views)+" views")
	}
	s := strings.Join(parts, "   ")
	if date := reels.FormatPosted(d.Reel.PostedAt, d.Now); date != "" {
		s += "   " + v.theme.FaintText(date)
	}
	return s
}

func (v *ReelView) caption(d ReelViewData, width, room int) []viewLine {
	if room <= 0 {
		return nil
	}
	if strings.TrimSpace(d.Reel.Caption) == "" {
		return []viewLine{{text: " " + v.theme.FaintText("(no caption)")}}
	}

	textW := width - 2
	var wrapped []string
	for _, para := range strings.Split(d.Reel.Caption, "\n") {
		wrapped = append(wrapped, tuiansi.WrapLine(para, textW)...)
	}

	long := d.Reel.HasLongCaption()
	if !d.CaptionExpanded {
		wrapped, _ = tuiansi.ClampLines(wrapped, collapsedCaptionLines, textW)
	}
	limit := room
	if long {
		limit--
	}
	if limit < 1 {
		limit = 1
	}
	if len(wrapped) > limit {
		wrapped, _ = tuiansi.ClampLines(wrapped, limit, textW)
	}

	out := make([]viewLine, 0, len(wrapped)+1)
	for _, l := range wrapped {
		out = append(out, viewLine{text: " " + l})
	}
	if long {
		label := "Show more"
		if d.CaptionExpanded {
			label = "Show less"
		}
		out = append(out, v.buttonRow(width, []button{{control: viewer.ControlCaption, label: label, active: true}}))
	}
	return out
}

func (v *ReelView) buttonRow(width int, buttons []button) viewLine {
	var b strings.Builder
	zones := make([]Zone, 0, len(buttons))
	x := 1
	b.WriteString(" ")
	for i, btn := range buttons {
		if i > 0 {
			b.WriteString("  ")
			x += 2
		}
		rendered := v.theme.Button(btn.label, btn.active)
		w := lipgloss.Width(rendered)
		if x+w > width {
			break
		}
		b.WriteString(rendered)
		zones = append(zones, Zone{Control: btn.control, Start: x, End: x + w})
		x += w
	}
	return viewLine{text: b.String(), zones: zones}
}

func muteLabel(muted bool) string {
	if muted {
		return "m unmute"
	}
	return "m mute"
}

// Zones returns the control areas of the last Render.
func (v *ReelView) Zones() []Zone {
	return append([]Zone(nil), v.zones...)
}

// ControlAt returns the control drawn at the given position of the last
// Render, relative to the modal's top-left corner.
func (v *ReelView) ControlAt(x, y int) viewer.Control {
	for _, z := range v.zones {
		if z.Row == y && x >= z.Start && x < z.End {
			return z.Control
		}
	}
	return viewer.ControlNone
}
