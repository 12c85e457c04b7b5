package app

import (
	"fmt"
	"slices"
	"strings"
)

// CheckoutForm - поля формы оформления заказа (оплата при получении).
type CheckoutForm struct {
	Name     string
	Phone    string
	District string
	Address  string
}

// Поля формы для ValidationError.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldDistrict = "district"
	FieldAddress  = "address"
)

// PhoneMaxLen - длина мобильного номера в Бангладеш.
const PhoneMaxLen = 11

// ValidationError - поле формы не заполнено или некорректно.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout %s: %s", e.Field, e.Reason)
}

// Normalize обрезает пробелы по краям всех полей.
func (f CheckoutForm) Normalize() CheckoutForm {
	return CheckoutForm{
		Name:     strings.TrimSpace(f.Name),
		Phone:    strings.TrimSpace(f.Phone),
		District: strings.TrimSpace(f.District),
		Address:  strings.TrimSpace(f.Address),
	}
}

// Validate проверяет обязательные поля в порядке формы.
func (f CheckoutForm) Validate() error {
	switch {
	case f.Name == "":
		return &ValidationError{Field: FieldName, Reason: "required"}
	case f.Phone == "":
		return &ValidationError{Field: FieldPhone, Reason: "required"}
	case len([]rune(f.Phone)) > PhoneMaxLen:
		return &ValidationError{Field: FieldPhone, Reason: fmt.Sprintf("at most %d characters", PhoneMaxLen)}
	case f.District == "":
		return &ValidationError{Field: FieldDistrict, Reason: "required"}
	case !IsDistrict(f.District):
		return &ValidationError{Field: FieldDistrict, Reason: "unknown district"}
	case f.Address == "":
		return &ValidationError{Field: FieldAddress, Reason: "required"}
	}
	return nil
}

// Total возвращает сумму к оплате: цена плюс доставка.
func Total(price, deliveryCharge int) int {
	return price + deliveryCharge
}

// Districts - 64 округа Бангладеш, отсортированы.
var Districts = func() []string {
	d := []string{
		"ঢাকা", "ফরিদপুর", "গাজীপুর", "গোপালগঞ্জ", "কিশোরগঞ্জ", "মাদারীপুর", "মানিকগঞ্জ", "মুন্সীগঞ্জ", "নারায়ণগঞ্জ", "নরসিংদী", "রাজবাড়ী", "শরীয়তপুর", "টাঙ্গাইল",
		"বাগেরহাট", "চুয়াডাঙ্গা", "যশোর", "ঝিনাইদহ", "খুলনা", "কুষ্টিয়া", "মাগুরা", "মেহেরপুর", "নড়াইল", "সাতক্ষীরা",
		"জামালপুর", "ময়মনসিংহ", "নেত্রকোণা", "শেরপুর",
		"বগুড়া", "জয়পুরহাট", "নওগাঁ", "নাটোর", "চাঁপাইনবাবগঞ্জ", "পাবনা", "রাজশাহী", "সিরাজগঞ্জ",
		"দিনাজপুর", "গাইবান্ধা", "কুড়িগ্রাম", "লালমনিরহাট", "নীলফামারী", "পঞ্চগড়", "রংপুর", "ঠাকুরগাঁও",
		"হবিগঞ্জ", "মৌলভীবাজার", "সুনামগঞ্জ", "সিলেট",
		"বরগুনা", "বরিশাল", "ভোলা", "ঝালকাঠি", "পটুয়াখালী", "পিরোজপুর",
		"বান্দরবান", "ব্রাহ্মণবাড়িয়া", "চাঁদপুর", "চট্টগ্রাম", "কুমিল্লা", "কক্সবাজার", "ফেনী", "খাগড়াছড়ি", "লক্ষ্মীপুর", "নোয়াখালী", "রাঙ্গামাটি",
	}
	slices.Sort(d)
	return d
}()

// IsDistrict проверяет, что название есть в списке округов.
func IsDistrict(name string) bool {
	_, ok := slices.BinarySearch(Districts, name)
	return ok
}
