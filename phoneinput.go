package phonefield

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// focusSettledMsg arrives one tick after the field gains focus, once
// selection state has settled, so the caret can be corrected out of
// the protected zone.
type focusSettledMsg struct{}

// PhoneInput is a phone number field with a country selector. The raw
// text always starts with "+" and the selected country's dial code;
// the edit engine rejects or adjusts any edit that would break that.
//
// usage:
//
//	phone := New().
//	    Country("GB").
//	    Preferred("GB", "US", "DE").
//	    Placeholder("phone number").
//	    OnChange(func(v Value) { ... })
type PhoneInput struct {
	opts    ListOptions
	working []Country
	pref    []Country

	country *Country
	edit    EditState

	dropdown *Dropdown
	keymap   KeyMap
	styles   Styles

	focused     bool
	disabled    bool
	readOnly    bool
	emojiFlags  bool
	noParens    bool
	width       int
	placeholder string
	register    string // internal cut/paste register

	onChange        func(Value)
	onCountryChange func(Country)
}

// New creates a phone input over the full catalog with the first
// country selected. Use Country or DialCode to pick the initial one.
func New() *PhoneInput {
	p := &PhoneInput{
		keymap:     DefaultKeyMap(),
		styles:     DefaultStyles(),
		emojiFlags: true,
	}
	p.rebuildLists()
	p.selectDefault("")
	return p
}

// Ref passes the component to f and returns it, for capturing a
// reference mid-declaration.
func (p *PhoneInput) Ref(f func(*PhoneInput)) *PhoneInput { f(p); return p }

// ============================================================================
// Configuration (fluent)
// ============================================================================

// Country selects the initial country by ISO2 code. Unknown codes
// leave the current selection in place.
func (p *PhoneInput) Country(iso2 string) *PhoneInput {
	if c, ok := ByIso2(iso2); ok && Contains(p.working, c.Iso2) {
		p.applyCountry(c, false)
	}
	return p
}

// DialCode selects the initial country by dial code, resolving shared
// codes through the catalog's primary tie-break.
func (p *PhoneInput) DialCode(code string) *PhoneInput {
	if c, ok := ByDialCode(code); ok && Contains(p.working, c.Iso2) {
		p.applyCountry(c, false)
	}
	return p
}

// Only restricts the selectable countries to the given ISO2 codes.
func (p *PhoneInput) Only(iso2 ...string) *PhoneInput {
	p.opts.Only = iso2
	p.rebuildLists()
	p.selectDefault(p.currentIso2())
	return p
}

// Exclude removes the given ISO2 codes from the selectable countries.
func (p *PhoneInput) Exclude(iso2 ...string) *PhoneInput {
	p.opts.Exclude = iso2
	p.rebuildLists()
	p.selectDefault(p.currentIso2())
	return p
}

// Preferred pins the given countries to the top of the dropdown.
func (p *PhoneInput) Preferred(iso2 ...string) *PhoneInput {
	p.opts.Preferred = iso2
	p.rebuildLists()
	return p
}

// Distinct keeps one country per shared dial code.
func (p *PhoneInput) Distinct() *PhoneInput {
	p.opts.Distinct = true
	p.rebuildLists()
	p.selectDefault(p.currentIso2())
	return p
}

// Placeholder sets the text shown while no national digits are typed.
func (p *PhoneInput) Placeholder(s string) *PhoneInput {
	p.placeholder = s
	return p
}

// Disabled blocks all interaction.
func (p *PhoneInput) Disabled(on bool) *PhoneInput {
	p.disabled = on
	return p
}

// ReadOnly allows navigation but blocks edits and country changes.
func (p *PhoneInput) ReadOnly(on bool) *PhoneInput {
	p.readOnly = on
	return p
}

// Width sets a minimum display width for the digit field. Short
// content pads with spaces; long content is never clipped.
func (p *PhoneInput) Width(w int) *PhoneInput {
	p.width = w
	return p
}

// EmojiFlags toggles flag emoji in the selector and dropdown.
func (p *PhoneInput) EmojiFlags(on bool) *PhoneInput {
	p.emojiFlags = on
	p.rebuildLists()
	return p
}

// DisableParentheses drops '(' and ')' from formatted display.
func (p *PhoneInput) DisableParentheses() *PhoneInput {
	p.noParens = true
	return p
}

// KeyMap replaces the key bindings.
func (p *PhoneInput) KeyMap(km KeyMap) *PhoneInput {
	p.keymap = km
	return p
}

// Styles replaces the style set.
func (p *PhoneInput) Styles(s Styles) *PhoneInput {
	p.styles = s
	return p
}

// SearchPlaceholder sets the dropdown search placeholder.
func (p *PhoneInput) SearchPlaceholder(s string) *PhoneInput {
	p.dropdown.Placeholder(s)
	return p
}

// EmptyText sets the dropdown no-results text.
func (p *PhoneInput) EmptyText(s string) *PhoneInput {
	p.dropdown.EmptyText(s)
	return p
}

// NoSearch disables the dropdown search input.
func (p *PhoneInput) NoSearch() *PhoneInput {
	p.dropdown.EnableSearch(false)
	return p
}

// OnChange registers a callback fired with the parsed value after
// every accepted edit.
func (p *PhoneInput) OnChange(fn func(Value)) *PhoneInput {
	p.onChange = fn
	return p
}

// OnCountryChange registers a callback fired when the selection moves
// to a different country.
func (p *PhoneInput) OnCountryChange(fn func(Country)) *PhoneInput {
	p.onCountryChange = fn
	return p
}

// ============================================================================
// Imperative handle
// ============================================================================

// Focus gives the field keyboard focus. The returned command delivers
// the one-tick-later caret correction.
func (p *PhoneInput) Focus() tea.Cmd {
	p.focused = true
	return func() tea.Msg { return focusSettledMsg{} }
}

// Blur removes keyboard focus and closes the dropdown.
func (p *PhoneInput) Blur() {
	p.focused = false
	p.dropdown.Close()
}

// Focused reports whether the field has keyboard focus.
func (p *PhoneInput) Focused() bool {
	return p.focused
}

// DropdownOpen reports whether the country dropdown is open.
func (p *PhoneInput) DropdownOpen() bool {
	return p.dropdown.IsOpen()
}

// Value parses the current text into a structured phone value.
func (p *PhoneInput) Value() Value {
	return Parse(p.edit.Text, p.country)
}

// Raw returns the raw field text.
func (p *PhoneInput) Raw() string {
	return p.edit.Text
}

// CurrentCountry returns the selected catalog record.
func (p *PhoneInput) CurrentCountry() *Country {
	return p.country
}

// SetCountry switches the selection by ISO2 code, preserving typed
// national digits and end-trimming them to the new country's maximum
// length. Codes outside the working list are ignored.
func (p *PhoneInput) SetCountry(iso2 string) {
	c, ok := ByIso2(iso2)
	if !ok || !Contains(p.working, c.Iso2) {
		return
	}
	p.applyCountry(c, true)
}

// SetValue pushes an externally-owned value into the field. The text
// is normalized, and when an international value's dial code resolves
// to a different country present in the working list, the selection
// follows. Values without a leading "+" are taken as national digits
// for the current country.
func (p *PhoneInput) SetValue(raw string) {
	next := p.country
	if strings.HasPrefix(strings.TrimSpace(raw), "+") {
		if c, ok := GuessFromNumber(raw); ok && Contains(p.working, c.Iso2) {
			next = c
		}
	}
	changed := p.country == nil || next == nil || next.Iso2 != p.country.Iso2
	p.country = next
	p.edit.Text = Normalize(raw, next)
	p.edit.Prefix = p.prefixLen()
	p.edit.Limit = p.limit()
	p.edit = p.edit.collapse(len(p.edit.Text))
	if changed && next != nil && p.onCountryChange != nil {
		p.onCountryChange(*next)
	}
	p.emit()
}

// Clear resets the field to the bare protected prefix.
func (p *PhoneInput) Clear() {
	p.edit.Text = "+" + p.dialCode()
	p.edit = p.edit.collapse(len(p.edit.Text))
	p.emit()
}

// Click places the caret from a pointer position given as an index
// into the raw text. Positions inside the protected prefix snap to
// its end.
func (p *PhoneInput) Click(pos int) {
	p.edit = p.edit.Click(pos)
}

// Drag applies a pointer selection given as raw text indices,
// remapped away from the protected prefix.
func (p *PhoneInput) Drag(start, end int) {
	p.edit = p.edit.Select(start, end)
}

// ============================================================================
// Update — event routing
// ============================================================================

// Update routes a bubbletea message to the widget. It returns a
// command when a deferred correction is scheduled.
func (p *PhoneInput) Update(msg tea.Msg) tea.Cmd {
	if p.disabled {
		return nil
	}

	switch msg := msg.(type) {
	case focusSettledMsg:
		p.edit = p.edit.Focus()
		return nil
	case tea.KeyMsg:
		if !p.focused {
			return nil
		}
		if p.dropdown.IsOpen() {
			p.updateDropdown(msg)
			return nil
		}
		return p.updateField(msg)
	}
	return nil
}

func (p *PhoneInput) updateDropdown(msg tea.KeyMsg) {
	km := p.keymap
	switch {
	case key.Matches(msg, km.Close):
		p.dropdown.Close()
	case key.Matches(msg, km.Accept):
		if opt := p.dropdown.Selected(); opt != nil && !p.readOnly {
			p.applyCountry(&opt.Country, true)
		}
		p.dropdown.Close()
	case key.Matches(msg, km.Up):
		p.dropdown.MoveUp()
	case key.Matches(msg, km.Down):
		p.dropdown.MoveDown()
	case key.Matches(msg, km.Backspace):
		p.dropdown.EraseRune()
	default:
		if msg.Type == tea.KeyRunes && !msg.Paste {
			for _, r := range msg.Runes {
				p.dropdown.TypeRune(r)
			}
		}
	}
}

func (p *PhoneInput) updateField(msg tea.KeyMsg) tea.Cmd {
	km := p.keymap
	before := p.edit.Text

	// navigation is allowed in read-only mode, edits are not
	switch {
	case key.Matches(msg, km.Open):
		p.dropdown.Open()
		if p.country != nil {
			p.dropdown.Highlight(p.country.Iso2)
		}
		return nil
	case key.Matches(msg, km.Left):
		p.edit = p.edit.ArrowLeft(false)
	case key.Matches(msg, km.Right):
		p.edit = p.edit.ArrowRight(false)
	case key.Matches(msg, km.ShiftLeft):
		p.edit = p.edit.ArrowLeft(true)
	case key.Matches(msg, km.ShiftRight):
		p.edit = p.edit.ArrowRight(true)
	case key.Matches(msg, km.Home):
		p.edit = p.edit.Home(false)
	case key.Matches(msg, km.End):
		p.edit = p.edit.End(false)
	case key.Matches(msg, km.ShiftHome):
		p.edit = p.edit.Home(true)
	case key.Matches(msg, km.ShiftEnd):
		p.edit = p.edit.End(true)
	case p.readOnly:
		return nil
	case key.Matches(msg, km.Backspace):
		p.edit = p.edit.Backspace()
	case key.Matches(msg, km.Delete):
		p.edit = p.edit.Delete()
	case key.Matches(msg, km.Cut):
		var clip string
		p.edit, clip = p.edit.Cut()
		if clip != "" {
			p.register = clip
		}
	case key.Matches(msg, km.PasteReg):
		p.edit = p.edit.Paste(p.register)
	default:
		if msg.Type == tea.KeyRunes {
			if msg.Paste {
				p.edit = p.edit.Paste(string(msg.Runes))
			} else {
				for _, r := range msg.Runes {
					p.edit = p.edit.InsertRune(r)
				}
			}
		}
	}

	if p.edit.Text != before {
		p.emit()
	}
	return nil
}

// ============================================================================
// Orchestration
// ============================================================================

func (p *PhoneInput) rebuildLists() {
	p.working = p.opts.Working()
	p.pref = p.opts.PreferredList(p.working)
	opts := optionsOf(p.working, p.pref, p.emojiFlags)
	if p.dropdown == nil {
		p.dropdown = NewDropdown(opts)
	} else {
		p.dropdown.SetOptions(opts)
	}
}

// selectDefault ensures a valid selection after the working list
// changed: keep the current country when it survived the filter,
// otherwise fall back to the first preferred country, then the first
// of the working list.
func (p *PhoneInput) selectDefault(keep string) {
	if keep != "" && Contains(p.working, keep) {
		return
	}
	var next *Country
	if len(p.pref) > 0 {
		next = &p.pref[0]
	} else if len(p.working) > 0 {
		next = &p.working[0]
	}
	if next != nil {
		p.applyCountry(next, false)
	} else {
		p.country = nil
		p.edit = EditState{Text: "+", Prefix: 1, SelStart: 1, SelEnd: 1}
	}
}

// applyCountry re-synthesizes the text for a new country: the old
// prefix is stripped, previously typed national digits are kept and
// end-trimmed to the new maximum, and the new prefix is prepended.
func (p *PhoneInput) applyCountry(c *Country, notify bool) {
	national := ""
	if p.country != nil {
		national = Parse(p.edit.Text, p.country).NationalNumber
	}
	national = clampNational(national, c)

	changed := p.country == nil || p.country.Iso2 != c.Iso2
	p.country = c
	p.edit.Text = "+" + c.DialCode + national
	p.edit.Prefix = p.prefixLen()
	p.edit.Limit = p.limit()
	p.edit = p.edit.collapse(len(p.edit.Text))

	if notify {
		if changed && p.onCountryChange != nil {
			p.onCountryChange(*c)
		}
		p.emit()
	}
}

func (p *PhoneInput) emit() {
	if p.onChange != nil {
		p.onChange(p.Value())
	}
}

func (p *PhoneInput) currentIso2() string {
	if p.country == nil {
		return ""
	}
	return p.country.Iso2
}

func (p *PhoneInput) dialCode() string {
	if p.country == nil {
		return ""
	}
	return p.country.DialCode
}

func (p *PhoneInput) prefixLen() int {
	return 1 + len(p.dialCode())
}

func (p *PhoneInput) limit() int {
	if p.country == nil {
		return 0
	}
	return p.country.maxDigits
}

// ============================================================================
// View
// ============================================================================

// View renders the selector, the field and — when open — the dropdown.
func (p *PhoneInput) View() string {
	st := p.styles

	var selector string
	if p.country != nil {
		label := "+" + p.country.DialCode
		if p.emojiFlags {
			label = p.country.Flag() + " " + label
		}
		selector = st.Selector.Render("[" + label + " ▾]")
	} else {
		selector = st.Selector.Render("[?]")
	}

	field := p.renderField()
	if p.width > 0 {
		plain, _ := p.displayText(p.edit.norm())
		if pad := p.width - runewidth.StringWidth(plain); pad > 0 {
			field += strings.Repeat(" ", pad)
		}
	}
	out := selector + " " + field
	if p.dropdown.IsOpen() {
		out += "\n" + p.dropdown.View(st)
	}
	return out
}

// renderField draws the raw text through the country's format
// template, carrying the caret and selection across the inserted
// separator characters.
func (p *PhoneInput) renderField() string {
	st := p.styles
	s := p.edit.norm()
	display, posMap := p.displayText(s)

	if len(s.Text) <= s.Prefix && p.placeholder != "" && !p.focused {
		return st.Prefix.Render(display) + st.Placeholder.Render(" "+p.placeholder)
	}

	digitStyle := st.Digits
	if v := p.Value(); v.NationalNumber != "" && !v.IsValid {
		digitStyle = st.Invalid
	}

	runes := []rune(display)
	prefixEnd := posMap[s.Prefix]
	var b strings.Builder
	b.WriteString(st.Prefix.Render(string(runes[:prefixEnd])))

	selStart, selEnd := posMap[s.SelStart], posMap[s.SelEnd]
	if selStart < prefixEnd {
		selStart = prefixEnd
	}
	if selEnd < selStart {
		selEnd = selStart
	}

	if s.HasSelection() {
		b.WriteString(digitStyle.Render(string(runes[prefixEnd:selStart])))
		b.WriteString(st.Selection.Render(string(runes[selStart:selEnd])))
		b.WriteString(digitStyle.Render(string(runes[selEnd:])))
		return b.String()
	}

	caret := posMap[s.SelEnd]
	if caret < prefixEnd {
		caret = prefixEnd
	}
	b.WriteString(digitStyle.Render(string(runes[prefixEnd:caret])))
	if p.focused {
		if caret < len(runes) {
			b.WriteString(st.Cursor.Render(string(runes[caret])))
			b.WriteString(digitStyle.Render(string(runes[caret+1:])))
		} else {
			b.WriteString(st.Cursor.Render(" "))
		}
	} else if caret < len(runes) {
		b.WriteString(digitStyle.Render(string(runes[caret:])))
	}
	return b.String()
}

// displayText builds the formatted display string and a map from raw
// text indices (0..len) to display rune indices.
func (p *PhoneInput) displayText(s EditState) (string, []int) {
	raw := s.Text
	posMap := make([]int, len(raw)+1)

	var b []rune
	for i := 0; i < s.Prefix && i < len(raw); i++ {
		posMap[i] = len(b)
		b = append(b, rune(raw[i]))
	}

	national := raw[minInt(s.Prefix, len(raw)):]
	if len(national) > 0 {
		b = append(b, ' ')
	}

	tmpl := ""
	if p.country != nil {
		tmpl = p.country.Format
	}

	di := 0 // index into national
	for _, r := range tmpl {
		if di >= len(national) {
			break
		}
		if r == '.' {
			posMap[s.Prefix+di] = len(b)
			b = append(b, rune(national[di]))
			di++
			continue
		}
		if p.noParens && (r == '(' || r == ')') {
			continue
		}
		b = append(b, r)
	}
	for ; di < len(national); di++ {
		posMap[s.Prefix+di] = len(b)
		b = append(b, rune(national[di]))
	}
	posMap[len(raw)] = len(b)
	return string(b), posMap
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
