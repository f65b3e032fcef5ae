package widgets

import (
	"image"
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/render"
)

const (
	cursorWidth = 1
	// blinkPeriod is the length of one on-off cycle of the cursor, in
	// seconds.
	blinkPeriod = 1.0
)

// TextField is a single-line text input. Its label scrolls horizontally to
// keep the cursor in view.
//
// Every edit posts TextFieldModified with the new text and calls OnChange.
// Enter posts TextFieldClosed and calls OnClose. Up, Down, Tab and Escape
// are left to focus navigation. Ctrl+C copies the whole text, Ctrl+X cuts
// it and Ctrl+V pastes the first line of the clipboard at the cursor.
type TextField struct {
	Box
	scroll *element.Scroll
	label  *Label

	runes  []rune
	cursor int
	blink  float64

	// MaxLength limits the text to that many runes; zero means no limit.
	MaxLength int
	// Clipboard defaults to the system clipboard.
	Clipboard Clipboard

	OnChange func(text string)
	OnClose  func(text string)
}

// NewTextField returns an empty text field.
func NewTextField(tree *element.Tree, th *Theme) *TextField {
	t := &TextField{Clipboard: SystemClipboard{}}
	t.InitBox(t, tree, TextFieldClass, th)
	t.SetFocusable(true)

	t.scroll = element.NewScroll(tree, layout.Horizontal)
	t.scroll.BarWidth = 0
	t.scroll.Duration = 0
	t.scroll.OverscrollEnd = cursorWidth
	_ = t.scroll.SetW(layout.Fill())

	t.label = NewLabel(tree, "")
	_ = t.label.SetX(layout.Start(0))
	_ = t.scroll.SetChild(t.label)
	_ = t.Append(t.scroll)
	return t
}

// Text returns the current text.
func (t *TextField) Text() string { return string(t.runes) }

// SetText replaces the text without posting an event and moves the cursor
// to the end.
func (t *TextField) SetText(s string) {
	t.runes = []rune(firstLine(s))
	if t.MaxLength > 0 && len(t.runes) > t.MaxLength {
		t.runes = t.runes[:t.MaxLength]
	}
	t.cursor = len(t.runes)
	t.label.SetText(string(t.runes))
}

// Cursor returns the cursor position in runes.
func (t *TextField) Cursor() int { return t.cursor }

// SetCursor moves the cursor, clamped to the text.
func (t *TextField) SetCursor(i int) {
	t.cursor = max(0, min(len(t.runes), i))
	t.blink = 0
}

// Label returns the label showing the text.
func (t *TextField) Label() *Label { return t.label }

func (t *TextField) HandleEvent(ev events.Event) bool {
	if t.disabled {
		return false
	}
	switch ev.Type {
	case events.KeyDown:
		return t.key(ev)
	case events.PointerDown:
		if ev.Button != 0 {
			return false
		}
		t.Focus()
		t.SetCursor(t.indexAt(ev.Pos.X))
		return true
	}
	return false
}

func (t *TextField) key(ev events.Event) bool {
	switch ev.Key {
	case events.KeyEscape, events.KeyTab, events.KeyArrowUp, events.KeyArrowDown, events.KeyPageUp, events.KeyPageDown:
		return false
	}
	if ev.Mods.Has(events.ModCtrl) || ev.Mods.Has(events.ModMeta) {
		switch ev.Key {
		case events.KeyV:
			t.paste()
		case events.KeyC:
			t.copyText()
		case events.KeyX:
			if t.copyText() {
				t.edit(nil, 0)
			}
		}
		return true
	}
	if ev.Rune != 0 {
		if unicode.IsPrint(ev.Rune) {
			t.insert(string(ev.Rune))
		}
		return true
	}
	switch ev.Key {
	case events.KeyEnter:
		t.close()
	case events.KeyBackspace:
		if t.cursor > 0 {
			t.edit(slices.Delete(t.runes, t.cursor-1, t.cursor), t.cursor-1)
		}
	case events.KeyDelete:
		if t.cursor < len(t.runes) {
			t.edit(slices.Delete(t.runes, t.cursor, t.cursor+1), t.cursor)
		}
	case events.KeyArrowLeft:
		t.SetCursor(t.cursor - 1)
	case events.KeyArrowRight:
		t.SetCursor(t.cursor + 1)
	case events.KeyHome:
		t.SetCursor(0)
	case events.KeyEnd:
		t.SetCursor(len(t.runes))
	}
	return true
}

// insert adds s at the cursor, truncated to the room MaxLength leaves.
func (t *TextField) insert(s string) {
	rs := []rune(s)
	if t.MaxLength > 0 {
		rs = rs[:min(len(rs), max(0, t.MaxLength-len(t.runes)))]
	}
	if len(rs) == 0 {
		return
	}
	t.edit(slices.Insert(t.runes, t.cursor, rs...), t.cursor+len(rs))
}

func (t *TextField) edit(runes []rune, cursor int) {
	t.runes = runes
	t.SetCursor(cursor)
	text := string(t.runes)
	t.label.SetText(text)
	t.Post(events.TextFieldModified, text)
	if t.OnChange != nil {
		t.OnChange(text)
	}
}

func (t *TextField) close() {
	text := string(t.runes)
	t.Post(events.TextFieldClosed, text)
	if t.OnClose != nil {
		t.OnClose(text)
	}
}

func (t *TextField) paste() {
	if t.Clipboard == nil {
		return
	}
	s, err := t.Clipboard.ReadAll()
	if err != nil {
		errors.Logger().Warn("clipboard read failed", "element", t.String(), "err", err)
		return
	}
	t.insert(firstLine(s))
}

func (t *TextField) copyText() bool {
	if t.Clipboard == nil || len(t.runes) == 0 {
		return false
	}
	if err := t.Clipboard.WriteAll(string(t.runes)); err != nil {
		errors.Logger().Warn("clipboard write failed", "element", t.String(), "err", err)
		return false
	}
	return true
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// cursorX returns the cursor offset from the start of the text.
func (t *TextField) cursorX() float64 {
	return float64(t.label.Font().WidthOfLine(string(t.runes[:t.cursor])))
}

// indexAt returns the rune boundary nearest to view x.
func (t *TextField) indexAt(x float64) int {
	f := t.label.Font()
	rel := x - t.label.Rect().X
	best, dist := 0, math.Abs(rel)
	for i := 1; i <= len(t.runes); i++ {
		if d := math.Abs(rel - float64(f.WidthOfLine(string(t.runes[:i])))); d < dist {
			best, dist = i, d
		}
	}
	return best
}

func (t *TextField) Focused() {
	t.blink = 0
	t.Box.Focused()
}

// Update blinks the cursor and keeps it in view.
func (t *TextField) Update(dt float64) {
	t.Box.Update(dt)
	t.blink += dt
	if t.HasFocus() {
		t.scroll.ScrollToShowPosition(t.cursorX(), cursorWidth)
	}
}

// CursorVisible reports whether the cursor is drawn this frame.
func (t *TextField) CursorVisible() bool {
	return t.HasFocus() && math.Mod(t.blink, blinkPeriod) < blinkPeriod/2
}

// PaintOver draws the cursor, clipped to the scrolled area.
func (t *TextField) PaintOver(r render.Renderer, dst render.Surface, alpha float64) {
	if !t.CursorVisible() {
		return
	}
	clip := t.scroll.BlitRect().Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	lr := t.label.BlitRect()
	x := int(math.Round(t.label.Rect().X + t.cursorX()))
	r.DrawRect(r.Subsurface(dst, clip), image.Rect(x, lr.Min.Y, x+cursorWidth, lr.Max.Y), t.theme.Accent, alpha)
}
