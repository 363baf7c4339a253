// Package validate turns a raw form submission into a normalized
// record or a per-field error map. It never returns a Go error and
// has no side effects: network and storage stay untouched until the
// caller decides the submission is clean.
package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hy-wedding/rsvp-api/internal/form"
	"github.com/hy-wedding/rsvp-api/internal/models"
)

// FieldErrors maps a form field name to its guest-facing message.
// One message per field; the first violated rule wins for that field,
// but every violated field is reported in a single pass.
type FieldErrors map[string]string

// Submission validates raw against the form schema. Values may be
// string, []string, []any of strings, or JSON numbers; anything else
// is treated as a format violation, never trusted structurally.
//
// Validation runs in two phases: per-field rules first (required,
// length, pattern, enum) so that independent violations all surface
// at once, then the allergy conditional, which depends on the already
// coerced allergy flag.
func Submission(raw map[string]any) (models.RSVPFields, FieldErrors) {
	errs := FieldErrors{}

	strs := map[string]string{}
	enums := map[string]*int{}
	var allergy []string

	for _, f := range form.Fields() {
		switch f.Kind {
		case form.KindString:
			v, ok := stringValue(raw[f.Name])
			if !ok {
				errs[f.Name] = badValueMessage(f)
				continue
			}
			v = strings.TrimSpace(v)
			strs[f.Name] = v
			if f.Required && v == "" {
				errs[f.Name] = f.Messages.Required
				continue
			}
			if f.MaxLen > 0 && utf8.RuneCountInString(v) > f.MaxLen {
				errs[f.Name] = f.Messages.TooLong
				continue
			}
			if f.Pattern != nil && v != "" && !f.Pattern.MatchString(v) {
				errs[f.Name] = f.Messages.Format
			}
		case form.KindEnum:
			code, present, ok := enumValue(raw[f.Name])
			if !present {
				if f.Required {
					errs[f.Name] = f.Messages.Required
				}
				continue
			}
			if !ok || !containsInt(f.Enum, code) {
				errs[f.Name] = f.Messages.Format
				continue
			}
			c := code
			enums[f.Name] = &c
		case form.KindStringList:
			items, ok := listValue(raw[f.Name])
			if !ok {
				errs[f.Name] = badValueMessage(f)
				continue
			}
			allergy = items
		}
	}

	// Phase two: the allergy items are required exactly when the flag
	// says an allergy is present, and dropped when it says none.
	if flag := enums[form.FieldAllergyFlag]; flag != nil {
		switch models.AllergyFlag(*flag) {
		case models.AllergyPresent:
			if len(allergy) == 0 {
				f, _ := form.Lookup(form.FieldAllergy)
				errs[form.FieldAllergy] = f.Messages.Required
			}
		case models.AllergyNone:
			allergy = []string{}
		}
	}

	if len(errs) > 0 {
		return models.RSVPFields{}, errs
	}

	out := models.RSVPFields{
		Status:         models.AttendanceStatus(*enums[form.FieldStatus]),
		GuestSide:      models.GuestSide(*enums[form.FieldGuestSide]),
		JpnFamilyName:  strs[form.FieldJpnFamilyName],
		JpnFirstName:   strs[form.FieldJpnFirstName],
		KanaFamilyName: strs[form.FieldKanaFamilyName],
		KanaFirstName:  strs[form.FieldKanaFirstName],
		RomFamilyName:  strs[form.FieldRomFamilyName],
		RomFirstName:   strs[form.FieldRomFirstName],
		Email:          strs[form.FieldEmail],
		PhoneNumber:    strs[form.FieldPhoneNumber],
		Zipcode:        strs[form.FieldZipcode],
		Address:        strs[form.FieldAddress],
		Address2:       strs[form.FieldAddress2],
		AllergyFlag:    models.AllergyFlag(*enums[form.FieldAllergyFlag]),
		Allergy:        allergy,
		GuestMessage:   strs[form.FieldGuestMessage],
	}
	if age := enums[form.FieldAgeCategory]; age != nil {
		a := models.AgeCategory(*age)
		out.AgeCategory = &a
	}
	if out.Allergy == nil {
		out.Allergy = []string{}
	}
	return out, nil
}

// Resubmit reserializes a normalized record back into the raw map
// shape the form produces. Validating the result of a successful
// validation through this round trip yields the identical record.
func Resubmit(f models.RSVPFields) map[string]any {
	raw := map[string]any{
		form.FieldStatus:         strconv.Itoa(int(f.Status)),
		form.FieldGuestSide:      strconv.Itoa(int(f.GuestSide)),
		form.FieldJpnFamilyName:  f.JpnFamilyName,
		form.FieldJpnFirstName:   f.JpnFirstName,
		form.FieldKanaFamilyName: f.KanaFamilyName,
		form.FieldKanaFirstName:  f.KanaFirstName,
		form.FieldRomFamilyName:  f.RomFamilyName,
		form.FieldRomFirstName:   f.RomFirstName,
		form.FieldEmail:          f.Email,
		form.FieldPhoneNumber:    f.PhoneNumber,
		form.FieldZipcode:        f.Zipcode,
		form.FieldAddress:        f.Address,
		form.FieldAddress2:       f.Address2,
		form.FieldAllergyFlag:    strconv.Itoa(int(f.AllergyFlag)),
		form.FieldAllergy:        f.Allergy,
		form.FieldGuestMessage:   f.GuestMessage,
	}
	if f.AgeCategory != nil {
		raw[form.FieldAgeCategory] = strconv.Itoa(int(*f.AgeCategory))
	}
	return raw
}

func badValueMessage(f form.Field) string {
	if f.Messages.Format != "" {
		return f.Messages.Format
	}
	if f.Messages.Required != "" {
		return f.Messages.Required
	}
	return f.Messages.TooLong
}

// stringValue accepts absent values as empty strings; only values
// with a non-string shape are rejected.
func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	default:
		return "", false
	}
}

// enumValue coerces a radio-button value to its integer code.
// present is false for absent or blank values; ok is false when a
// present value is not an integral code.
func enumValue(v any) (code int, present, ok bool) {
	switch n := v.(type) {
	case nil:
		return 0, false, false
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false, false
		}
		c, err := strconv.Atoi(s)
		if err != nil {
			return 0, true, false
		}
		return c, true, true
	case float64:
		if n != float64(int(n)) {
			return 0, true, false
		}
		return int(n), true, true
	case int:
		return n, true, true
	default:
		return 0, true, false
	}
}

// listValue normalizes a checkbox group: entries are trimmed and
// blanks dropped, so the result is never nil and never holds "".
func listValue(v any) ([]string, bool) {
	var items []string
	switch l := v.(type) {
	case nil:
		return []string{}, true
	case []string:
		items = l
	case []any:
		for _, e := range l {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
	case string:
		// A single checked box can arrive as a bare string.
		items = []string{l}
	default:
		return nil, false
	}
	out := []string{}
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out, true
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
