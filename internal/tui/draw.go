package tui

import (
	"fmt"
	"strings"

	"github.com/MyelinBots/catmanager-go/internal/cat"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const helpLine = "n spawn  f feed  p play  s sleep  m mate  r restock  arrows/hjkl move  q quit"

var (
	styleText     = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleMarked   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleAsleep   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleToast    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleDialog   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

func (a *App) draw() {
	a.screen.Clear()

	entries := a.roster.List()
	a.drawText(0, 0, a.width, styleTitle,
		fmt.Sprintf("Cat shelter  %d/%d cats  %s", len(entries), a.roster.Cap(), a.manager.PantryStatus()))
	a.drawText(0, 1, a.width, styleDim, helpLine)

	cardWidth := max(a.width/columns, 1)
	visible := a.visibleRows()
	a.scrollTo(a.selected / columns)

	for i, e := range entries {
		row := i/columns - a.top
		if row < 0 || row >= visible {
			continue
		}
		x := (i % columns) * cardWidth
		y := headerLines + row*cardHeight
		a.drawCard(x, y, cardWidth-1, i, e.Cat)
	}

	a.drawToasts()
	if a.confirmQuit {
		a.drawDialog("Quit the shelter? (y/n)")
	}
	a.screen.Show()
}

func (a *App) drawCard(x, y, w, i int, c cat.CatInfo) {
	border := styleDim
	switch {
	case i == a.selected:
		border = styleSelected
	case i == a.marked:
		border = styleMarked
	}
	name := styleText
	if c.Sleep {
		name = styleAsleep
	}

	gender := "F"
	if c.Gender == cat.Male {
		gender = "M"
	}
	title := fmt.Sprintf("#%d %s", i+1, c.Name)
	if i == a.marked {
		title += " *"
	}

	a.drawBox(x, y, w, cardHeight-1, border)
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{title, name},
		{fmt.Sprintf("%s  age %d", gender, c.Age), styleText},
		{c.Color.String(), styleDim},
		{c.Race.String(), styleDim},
		{fmt.Sprintf("%.2f kg", c.Weight), styleText},
		{"HP   " + bar(c.Health, cat.MaxHealth, w-8), styleText},
		{"Food " + bar(c.Food, cat.MaxFood, w-8), styleText},
	}
	if c.Sleep {
		lines[1].text += "  zzz"
	}
	for j, l := range lines {
		a.drawText(x+1, y+1+j, w-2, l.style, l.text)
	}
}

func (a *App) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for i := x + 1; i < x+w-1; i++ {
		a.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		a.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		a.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		a.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}
	a.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	a.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	a.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	a.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func (a *App) drawToasts() {
	for i, t := range a.toasts {
		y := a.height - len(a.toasts) + i
		if y < headerLines {
			continue
		}
		a.drawText(0, y, a.width, styleToast, " "+t.text+" ")
	}
}

func (a *App) drawDialog(msg string) {
	w := runewidth.StringWidth(msg) + 4
	x := max((a.width-w)/2, 0)
	y := a.height / 2
	a.drawText(x, y, w, styleDialog, strings.Repeat(" ", w))
	a.drawText(x+2, y, w-2, styleDialog, msg)
}

// drawText writes s from x, clipped to w cells.
func (a *App) drawText(x, y, w int, style tcell.Style, s string) {
	end := x + w
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > end || x+rw > a.width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
}

func (a *App) visibleRows() int {
	return max((a.height-headerLines)/cardHeight, 1)
}

// scrollTo keeps row on screen.
func (a *App) scrollTo(row int) {
	visible := a.visibleRows()
	switch {
	case row < a.top:
		a.top = row
	case row >= a.top+visible:
		a.top = row - visible + 1
	}
}

func bar(v, limit float64, w int) string {
	if w <= 0 {
		return fmt.Sprintf("%.0f", v)
	}
	filled := int(v / limit * float64(w))
	filled = min(max(filled, 0), w)
	return strings.Repeat("#", filled) + strings.Repeat(".", w-filled)
}
