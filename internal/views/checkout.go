package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ilkoid/hadikit/internal/app"
)

// Тексты оформления заказа.
const (
	CheckoutTitle  = "চেকআউট"
	CheckoutBack   = "ফিরে যান"
	LabelName      = "আপনার নাম লিখুন *"
	LabelPhone     = "আপনার মোবাইল নাম্বারটি লিখুন *"
	LabelDistrict  = "জেলা সিলেক্ট করুন *"
	LabelAddress   = "সম্পূর্ণ ঠিকানা *"
	ConfirmLabel   = "অর্ডার কনফার্ম করুন"
	Processing     = "Processing..."
	ProductHeading = "প্রোডাক্ট নাম"
	PriceHeading   = "বিক্রয় মূল্য"
	Subtotal       = "সাব-টোটাল"
	DeliveryLabel  = "ডেলিভারি চার্জ"
	DeliveryNote   = "(For deliveries outside Dhaka city.)"
	TotalLabel     = "টোটাল"
	CashOnDelivery = "Cash On Delivery"
	PayOnReceipt   = "পণ্য হাতে পেয়ে পেমেন্ট করুন"
	DeliveryTime   = "৩ - ৭ কর্মদিবসের মধ্যেই ডেলিভার করা হবে ইন’শা-আল্লাহ, এর মধ্যে কল দেওয়া হবে না।"
	SuccessTitle   = "অর্ডার সফল হয়েছে!"
)

// SuccessMessage - текст под заголовком экрана успеха.
func SuccessMessage(productName string) string {
	return "আপনার " + productName + " কিটটি শীঘ্রই আপনার ঠিকানায় পাঠানো হবে।"
}

// Checkout - форма заказа и сводка по цене.
func (r *Renderer) Checkout(snap app.Snapshot, f FormFrame, width int) string {
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		r.styles.Muted.Render(CheckoutBack+" [Esc]"),
		"   ",
		r.styles.Title.Render(CheckoutTitle),
	)

	form := r.checkoutForm(snap, f)
	summary := r.Summary(snap)

	var body string
	if width >= 2*cardWidth+40 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, "    ", summary)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, form, "", summary)
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, "", body)
}

func (r *Renderer) checkoutForm(snap app.Snapshot, f FormFrame) string {
	field := func(name, label, input string) string {
		style := r.styles.Label
		if f.Focus == name {
			style = r.styles.Subtitle
		}
		return lipgloss.JoinVertical(lipgloss.Left, style.Render(label), input, "")
	}

	lines := []string{
		field(app.FieldName, LabelName, f.Name),
		field(app.FieldPhone, LabelPhone, f.Phone),
		field(app.FieldDistrict, LabelDistrict, f.District),
		field(app.FieldAddress, LabelAddress, f.Address),
	}
	if f.Error != "" {
		lines = append(lines, r.styles.Error.Render(f.Error))
	}
	if snap.Order == app.OrderSubmitting {
		lines = append(lines, r.styles.ButtonBusy.Render(strings.TrimSpace(f.Spinner+" "+Processing)))
	} else {
		lines = append(lines, r.styles.Button.Render(ConfirmLabel+" [Enter]"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Summary - сводка заказа: товар, подытог, доставка, итого.
func (r *Renderer) Summary(snap app.Snapshot) string {
	p := snap.SelectedProduct
	row := func(left, right string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(cardWidth).Render(left),
			right,
		)
	}
	total := app.Total(p.Price, r.delivery)

	return r.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Label.Render(row(ProductHeading, PriceHeading)),
		row(truncate(p.Name, cardWidth-2), Money(p.Price)),
		r.styles.Muted.Render("Size: "+snap.SelectedSize+" | 1 Qty"),
		"",
		row(Subtotal, Money(p.Price)),
		row(DeliveryLabel, Money(r.delivery)),
		r.styles.Muted.Render(DeliveryNote),
		r.styles.Price.Render(row(TotalLabel, Money(total))),
		"",
		r.styles.Title.Render(CashOnDelivery),
		r.styles.Muted.Render(PayOnReceipt),
		"",
		r.styles.Muted.Render(DeliveryTime),
	))
}

// Success - экран после подтверждения заказа.
func (r *Renderer) Success(snap app.Snapshot, width int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Success.Render("✓"),
		"",
		r.styles.Success.Render(SuccessTitle),
		r.styles.Muted.Render(SuccessMessage(snap.SelectedProduct.Name)),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
