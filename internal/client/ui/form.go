package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/datex"
)

// FieldKind selects the editing behavior of a form field.
type FieldKind int

const (
	TextField FieldKind = iota
	NumberField
	DateField     // Brazilian DD/MM/YYYY with a typing mask
	DateTimeField // Brazilian DD/MM/YYYY HH:mm with a typing mask
	SelectField   // cycles through Options with left/right
	CheckField    // toggled with space
)

// Field is one line of a form drawer. Validation messages render inline
// under the field; Hidden fields are skipped entirely (not rendered,
// not validated, not included in Values).
type Field struct {
	Key      string
	Label    string
	Kind     FieldKind
	Required bool

	// Options feeds SelectField. When nil and OptionsKey is set, the
	// page resolves options at form-open time (remotely loaded sets).
	Options    []models.Option
	OptionsKey string

	// Validate runs after the built-in checks. It receives the field's
	// value and the full value map and returns "" when valid.
	Validate func(value string, values map[string]string) string

	// Hidden removes the field based on the current value map (e.g.
	// schedule fields only shown while the schedule toggle is on).
	Hidden func(values map[string]string) bool

	value   string
	checked bool
	errText string
}

// Form is a modal drawer of fields over a list page. It is a pure state
// machine: arrow keys move between fields, typing edits the focused one,
// enter validates and reports the values via onSubmit.
type Form struct {
	Title  string
	fields []Field
	cursor int
}

// NewForm builds a drawer with the given fields.
func NewForm(title string, fields []Field) *Form {
	return &Form{Title: title, fields: fields}
}

// SetValue prefills a field (update drawers load the current entity
// state through this).
func (f *Form) SetValue(key, value string) {
	for i := range f.fields {
		if f.fields[i].Key != key {
			continue
		}
		if f.fields[i].Kind == CheckField {
			f.fields[i].checked = value == "true"
		} else {
			f.fields[i].value = value
		}
		return
	}
}

// ResolveOptions fills fields that declared an OptionsKey from the
// page's remotely loaded option sets.
func (f *Form) ResolveOptions(sets map[string][]models.Option) {
	for i := range f.fields {
		if f.fields[i].OptionsKey != "" && len(f.fields[i].Options) == 0 {
			f.fields[i].Options = sets[f.fields[i].OptionsKey]
		}
	}
}

// Values renders the visible fields as a key/value map. Checkboxes
// yield "true"/"false"; selects yield the option's wire value.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for i := range f.fields {
		fd := &f.fields[i]
		if fd.Kind == CheckField {
			values[fd.Key] = strconv.FormatBool(fd.checked)
		} else {
			values[fd.Key] = strings.TrimSpace(fd.value)
		}
	}
	for i := range f.fields {
		fd := &f.fields[i]
		if fd.Hidden != nil && fd.Hidden(values) {
			delete(values, fd.Key)
		}
	}
	return values
}

// Valid runs every visible field's checks and records inline messages.
// It returns whether the whole form passed.
func (f *Form) Valid() bool {
	values := f.Values()
	ok := true
	for i := range f.fields {
		fd := &f.fields[i]
		fd.errText = ""
		if fd.Hidden != nil && fd.Hidden(values) {
			continue
		}
		v := values[fd.Key]
		if fd.Required && fd.Kind != CheckField && v == "" {
			fd.errText = "Campo obrigatório"
			ok = false
			continue
		}
		if v != "" {
			switch fd.Kind {
			case NumberField:
				if _, err := strconv.Atoi(v); err != nil {
					fd.errText = "Número inválido"
					ok = false
					continue
				}
			case DateField:
				if !datex.IsValidDate(v) {
					fd.errText = "Data inválida"
					ok = false
					continue
				}
			case DateTimeField:
				if _, valid := datex.BrazilianDateTimeToUTC(v); !valid {
					fd.errText = "Data e hora inválidas"
					ok = false
					continue
				}
			}
		}
		if fd.Validate != nil {
			if msg := fd.Validate(v, values); msg != "" {
				fd.errText = msg
				ok = false
			}
		}
	}
	return ok
}

// visible returns the indexes of fields shown for the current values.
func (f *Form) visible() []int {
	values := f.Values()
	idx := make([]int, 0, len(f.fields))
	for i := range f.fields {
		if f.fields[i].Hidden != nil && f.fields[i].Hidden(values) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Update consumes one key event. It reports submitted=true when the
// user pressed enter and every check passed; canceled=true on esc.
func (f *Form) Update(msg tea.KeyMsg) (submitted, canceled bool) {
	vis := f.visible()
	if len(vis) == 0 {
		return false, true
	}
	if f.cursor >= len(vis) {
		f.cursor = len(vis) - 1
	}
	fd := &f.fields[vis[f.cursor]]

	switch msg.String() {
	case "esc":
		return false, true
	case "enter":
		if f.Valid() {
			return true, false
		}
		return false, false
	case "up", "shift+tab":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "tab":
		if f.cursor < len(vis)-1 {
			f.cursor++
		}
	case "left":
		if fd.Kind == SelectField {
			f.cycle(fd, -1)
		}
	case "right":
		if fd.Kind == SelectField {
			f.cycle(fd, +1)
		}
	case " ":
		if fd.Kind == CheckField {
			fd.checked = !fd.checked
		} else {
			f.edit(fd, " ")
		}
	case "backspace":
		if fd.Kind != SelectField && fd.Kind != CheckField && fd.value != "" {
			fd.value = trimLastRune(fd.value)
			f.remask(fd)
		}
	default:
		if msg.Type == tea.KeyRunes {
			f.edit(fd, string(msg.Runes))
		}
	}
	return false, false
}

func (f *Form) edit(fd *Field, text string) {
	switch fd.Kind {
	case SelectField, CheckField:
		return
	case NumberField:
		for _, r := range text {
			if r >= '0' && r <= '9' {
				fd.value += string(r)
			}
		}
	default:
		fd.value += text
		f.remask(fd)
	}
}

func (f *Form) remask(fd *Field) {
	switch fd.Kind {
	case DateField:
		fd.value = datex.TypingDateMask(fd.value)
	case DateTimeField:
		fd.value = datex.TypingDateTimeMask(fd.value)
	}
}

func (f *Form) cycle(fd *Field, dir int) {
	if len(fd.Options) == 0 {
		return
	}
	current := 0
	for i, opt := range fd.Options {
		if opt.Value == fd.value {
			current = i
			break
		}
	}
	next := (current + dir + len(fd.Options)) % len(fd.Options)
	fd.value = fd.Options[next].Value
}

// View renders the drawer.
func (f *Form) View(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(f.Title))
	b.WriteString("\n\n")

	vis := f.visible()
	if f.cursor >= len(vis) && len(vis) > 0 {
		f.cursor = len(vis) - 1
	}

	for pos, i := range vis {
		fd := &f.fields[i]
		focused := pos == f.cursor

		label := fd.Label
		if fd.Required {
			label += " *"
		}
		b.WriteString(styles.Label.Render(label))
		b.WriteString("  ")

		display := fd.value
		switch fd.Kind {
		case SelectField:
			if opt := models.FindOption(fd.Options, fd.value); opt != nil {
				display = "◂ " + opt.Label + " ▸"
			} else {
				display = "◂ selecione ▸"
			}
		case CheckField:
			if fd.checked {
				display = "[x]"
			} else {
				display = "[ ]"
			}
		default:
			if display == "" {
				display = styles.Muted.Render("…")
			}
		}

		if focused {
			b.WriteString(styles.InputFocus.Render("> " + display))
		} else {
			b.WriteString(styles.Input.Render("  " + display))
		}
		if fd.errText != "" {
			b.WriteString("\n    " + styles.FieldError.Render(fd.errText))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("enter salvar · esc cancelar · ↑/↓ campo · ◂/▸ opção"))
	return styles.Dialog.Render(b.String())
}

// trimLastRune drops the final rune, not the final byte; accented input
// ("José", "fêmea") must survive backspace as valid UTF-8.
func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// fmtInt is a tiny helper for numeric prefills.
func fmtInt(n int) string { return fmt.Sprintf("%d", n) }
