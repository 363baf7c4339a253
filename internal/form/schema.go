// Package form is the single source of truth for the RSVP form:
// which fields exist, which are required, their length and format
// constraints, and the guest-facing validation messages. Both the
// validator and the presentation layer read from here so they can
// never disagree on a field name.
package form

import "regexp"

// Field names as they appear in the submitted key/value map.
const (
	FieldStatus         = "status"
	FieldGuestSide      = "guest_side"
	FieldJpnFamilyName  = "jpn_family_name"
	FieldJpnFirstName   = "jpn_first_name"
	FieldKanaFamilyName = "kana_family_name"
	FieldKanaFirstName  = "kana_first_name"
	FieldRomFamilyName  = "rom_family_name"
	FieldRomFirstName   = "rom_first_name"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phone_number"
	FieldZipcode        = "zipcode"
	FieldAddress        = "address"
	FieldAddress2       = "address2"
	FieldAgeCategory    = "age_category"
	FieldAllergyFlag    = "allergy_flag"
	FieldAllergy        = "allergy"
	FieldGuestMessage   = "guest_message"
)

type Kind int

const (
	KindString Kind = iota
	KindEnum
	KindStringList
)

// Messages holds the guest-facing text for each way a field can fail.
type Messages struct {
	Required string
	TooLong  string
	Format   string
}

// Field describes one form field. MaxLen is in runes, matching how
// the form counts characters. Enum lists the accepted codes for
// KindEnum fields. Pattern, when set, must match the whole value.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	MaxLen   int
	Pattern  *regexp.Regexp
	Enum     []int
	Messages Messages
}

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipcodePattern = regexp.MustCompile(`^(\d{7})?$`)
)

// AllergyOptions are the items offered by the form's allergy
// checkboxes. The validator does not restrict submissions to this
// list; it exists so the UI and any reporting share one spelling.
var AllergyOptions = []string{
	"えび",
	"かに",
	"くるみ",
	"小麦",
	"そば",
	"たまご",
	"乳",
	"落花生",
}

var fields = []Field{
	{
		Name: FieldStatus, Kind: KindEnum, Required: true, Enum: []int{1, 2},
		Messages: Messages{Required: "出欠をお選びください", Format: "出欠をお選びください"},
	},
	{
		Name: FieldGuestSide, Kind: KindEnum, Required: true, Enum: []int{0, 1},
		Messages: Messages{Required: "どちら側のゲストかお選びください", Format: "どちら側のゲストかお選びください"},
	},
	{
		Name: FieldJpnFamilyName, Kind: KindString, Required: true, MaxLen: 50,
		Messages: Messages{Required: "姓（漢字）をご入力ください", TooLong: "姓は50文字以内でご入力ください"},
	},
	{
		Name: FieldJpnFirstName, Kind: KindString, Required: true, MaxLen: 50,
		Messages: Messages{Required: "名（漢字）をご入力ください", TooLong: "名は50文字以内でご入力ください"},
	},
	{
		Name: FieldKanaFamilyName, Kind: KindString, MaxLen: 50,
		Messages: Messages{TooLong: "せい（ひらがな）は50文字以内でご入力ください"},
	},
	{
		Name: FieldKanaFirstName, Kind: KindString, MaxLen: 50,
		Messages: Messages{TooLong: "めい（ひらがな）は50文字以内でご入力ください"},
	},
	{
		Name: FieldRomFamilyName, Kind: KindString, Required: true, MaxLen: 50,
		Messages: Messages{Required: "Family Name（ローマ字）をご入力ください", TooLong: "Family Nameは50文字以内でご入力ください"},
	},
	{
		Name: FieldRomFirstName, Kind: KindString, Required: true, MaxLen: 50,
		Messages: Messages{Required: "First Name（ローマ字）をご入力ください", TooLong: "First Nameは50文字以内でご入力ください"},
	},
	{
		Name: FieldEmail, Kind: KindString, Required: true, MaxLen: 100, Pattern: emailPattern,
		Messages: Messages{
			Required: "メールアドレスをご入力ください",
			TooLong:  "メールアドレスは100文字以内でご入力ください",
			Format:   "正しいメールアドレスを入力してください",
		},
	},
	{
		Name: FieldPhoneNumber, Kind: KindString, MaxLen: 15,
		Messages: Messages{TooLong: "電話番号は15文字以内でご入力ください"},
	},
	{
		Name: FieldZipcode, Kind: KindString, Pattern: zipcodePattern,
		Messages: Messages{Format: "郵便番号は7桁の数字で入力してください（例：1234567）"},
	},
	{
		Name: FieldAddress, Kind: KindString, MaxLen: 200,
		Messages: Messages{TooLong: "住所は200文字以内でご入力ください"},
	},
	{
		Name: FieldAddress2, Kind: KindString, MaxLen: 100,
		Messages: Messages{TooLong: "住所2は100文字以内でご入力ください"},
	},
	{
		Name: FieldAgeCategory, Kind: KindEnum, Enum: []int{0, 1, 2},
		Messages: Messages{Format: "年齢区分をお選びください"},
	},
	{
		Name: FieldAllergyFlag, Kind: KindEnum, Required: true, Enum: []int{0, 1},
		Messages: Messages{Required: "アレルギーの有無をお選びください", Format: "アレルギーの有無をお選びください"},
	},
	{
		Name: FieldAllergy, Kind: KindStringList,
		Messages: Messages{Required: "アレルギー項目を最低1つ選択してください"},
	},
	{
		Name: FieldGuestMessage, Kind: KindString, MaxLen: 500,
		Messages: Messages{TooLong: "メッセージは500文字以内でご入力ください"},
	},
}

// Fields returns the schema in form order.
func Fields() []Field {
	return fields
}

// Lookup returns the schema entry for name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
