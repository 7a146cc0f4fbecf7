package settings

import "fmt"

// Field is a togglable boolean preference.
type Field int

const (
	FieldShowStandard Field = iota
	FieldShowCursive
	FieldShowUppercase
	FieldShowLowercase
	FieldPlayPhonics
	FieldPlayLetterName
	FieldPlayWord
	FieldUseMinimalStyle
)

// Group is the settings panel section a field is listed under.
type Group string

const (
	GroupDisplay    Group = "Display"
	GroupAudio      Group = "Audio"
	GroupAppearance Group = "Appearance"
)

type fieldInfo struct {
	name  string
	label string
	group Group
}

var fieldInfos = map[Field]fieldInfo{
	FieldShowStandard:    {"showStandard", "Show Standard", GroupDisplay},
	FieldShowCursive:     {"showCursive", "Show Cursive", GroupDisplay},
	FieldShowUppercase:   {"showUppercase", "Show Uppercase", GroupDisplay},
	FieldShowLowercase:   {"showLowercase", "Show Lowercase", GroupDisplay},
	FieldPlayPhonics:     {"playPhonics", "Play Phonics Sound", GroupAudio},
	FieldPlayLetterName:  {"playLetterName", "Play Letter Name", GroupAudio},
	FieldPlayWord:        {"playWord", "Play Word", GroupAudio},
	FieldUseMinimalStyle: {"useMinimalStyle", "Minimal Style", GroupAppearance},
}

// Name is the field's JSON key.
func (f Field) Name() string { return fieldInfos[f].name }

// Label is the human-readable text shown in the settings panel.
func (f Field) Label() string { return fieldInfos[f].label }

// Group is the panel section of the field.
func (f Field) Group() Group { return fieldInfos[f].group }

func (f Field) String() string {
	if info, ok := fieldInfos[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Fields lists the fields offered for a variant in panel order. The
// appearance section only exists on the retro board.
func Fields(v Variant) []Field {
	fields := []Field{
		FieldShowStandard, FieldShowCursive, FieldShowUppercase, FieldShowLowercase,
		FieldPlayPhonics, FieldPlayLetterName, FieldPlayWord,
	}
	if v == Retro {
		fields = append(fields, FieldUseMinimalStyle)
	}
	return fields
}

// ParseField resolves a field by JSON key or label, case-insensitively.
func ParseField(s string) (Field, bool) {
	for f, info := range fieldInfos {
		if equalFold(s, info.name) || equalFold(s, info.label) {
			return f, true
		}
	}
	return 0, false
}

// ptr returns the address of the field's value inside s.
func (f Field) ptr(s *Settings) *bool {
	switch f {
	case FieldShowStandard:
		return &s.ShowStandard
	case FieldShowCursive:
		return &s.ShowCursive
	case FieldShowUppercase:
		return &s.ShowUppercase
	case FieldShowLowercase:
		return &s.ShowLowercase
	case FieldPlayPhonics:
		return &s.PlayPhonics
	case FieldPlayLetterName:
		return &s.PlayLetterName
	case FieldPlayWord:
		return &s.PlayWord
	case FieldUseMinimalStyle:
		return &s.UseMinimalStyle
	}
	return nil
}

// Get returns the field's value in s.
func (f Field) Get(s Settings) bool {
	if p := f.ptr(&s); p != nil {
		return *p
	}
	return false
}
