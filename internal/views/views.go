// Package views - чистые функции отрисовки витрины.
//
// Каждая функция получает снимок состояния (и отрисованные виджеты из UI)
// и возвращает строку. Побочных эффектов нет: один и тот же снимок всегда
// дает один и тот же вывод.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ilkoid/hadikit/internal/app"
	"github.com/ilkoid/hadikit/pkg/catalog"
	"github.com/ilkoid/hadikit/pkg/tui"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const (
	cardWidth = 28
	minWidth  = 40
)

// Тексты витрины.
const (
	Brand           = "HADIKIT"
	AnnouncementBn  = "২০০০ টাকার বেশি অর্ডারে ফ্রি ডেলিভারি!"
	AnnouncementEn  = "FREE DELIVERY ON ORDERS OVER 2000 TK!"
	FooterTagline   = "Exclusive athletic gear for those who demand excellence."
	FooterCopyright = "© 2024 HADIKIT.v3"

	EmptyTitle = "No Gear Found"
	EmptyHint  = "Adjust your filters to see more kits."
	ResetLabel = "Reset Search"

	BackToCollection = "← Back to Collection"
	NewSeason        = "New Season"
	SelectSize       = "Select Your Size"
	BuyNow           = "Buy Now"
	FreeExpress      = "Free express delivery on all authentic kits."

	StylistTitle    = "GEMINI_STYLIST"
	StylistSubtitle = "Active Neural Link"
	StylistWelcome  = "Welcome to the hub. I can analyze your style preferences and recommend the perfect kit for any occasion. What are you looking for today?"
	StylistThinking = "Thinking..."
)

// Suggestions - быстрые вопросы стилисту при пустой переписке.
var Suggestions = []string{
	"Recommend a Retro Classic",
	"Best Pitch-to-Street Kit",
	"New Season Football Kits",
}

// Options - настройки Renderer.
type Options struct {
	Scheme         tui.ColorScheme
	MarkdownStyle  string
	DeliveryCharge int
}

// Renderer хранит стили и markdown-рендерер; сам по себе состояния не имеет.
type Renderer struct {
	styles   Styles
	markdown *Markdown
	delivery int
}

// New создает Renderer.
func New(opts Options) *Renderer {
	return &Renderer{
		styles:   NewStyles(opts.Scheme),
		markdown: NewMarkdown(opts.MarkdownStyle),
		delivery: opts.DeliveryCharge,
	}
}

// DeliveryCharge возвращает стоимость доставки в TK.
func (r *Renderer) DeliveryCharge() int {
	return r.delivery
}

// Frame - UI-часть кадра: размеры и уже отрисованные виджеты.
type Frame struct {
	Width   int
	Height  int    // Высота области товаров на Home, 0 = без ограничения
	Cursor  int    // Выбранная карточка на Home
	Search  string // Поле поиска
	Command string // Командная строка, "" если закрыта
	Form    FormFrame
	Chat    ChatFrame
	Status  string
	Help    string
}

// FormFrame - поля формы оформления.
type FormFrame struct {
	Name, Phone, District, Address string
	Focus                          string // app.Field*
	Error                          string
	Spinner                        string
}

// ChatFrame - панель стилиста.
type ChatFrame struct {
	Transcript string // Вид viewport'а с перепиской
	Input      string
	Spinner    string
}

// Page собирает полный кадр: шапку, активный экран, чат и подвал.
func (r *Renderer) Page(snap app.Snapshot, products []catalog.Product, f Frame) string {
	width := max(f.Width, minWidth)

	parts := []string{
		r.Announcement(width),
		r.Header(snap, f.Search, width),
		"",
		r.Main(snap, products, f),
		"",
	}
	if snap.ChatOpen {
		parts = append(parts, r.ChatPanel(snap, f.Chat, width), "")
	}
	parts = append(parts, r.Footer(width))
	if f.Command != "" {
		parts = append(parts, f.Command)
	}
	if f.Status != "" {
		parts = append(parts, f.Status)
	}
	if f.Help != "" {
		parts = append(parts, f.Help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Main выбирает отрисовку по активному экрану.
func (r *Renderer) Main(snap app.Snapshot, products []catalog.Product, f Frame) string {
	width := max(f.Width, minWidth)
	switch snap.View {
	case app.ViewProduct:
		if snap.SelectedProduct != nil {
			return r.Product(snap, width)
		}
	case app.ViewCheckout:
		if snap.SelectedProduct != nil {
			if snap.Order == app.OrderConfirmed {
				return r.Success(snap, width)
			}
			return r.Checkout(snap, f.Form, width)
		}
	}
	return r.Home(snap, products, f.Cursor, width, f.Height)
}

// Announcement - полоса с акцией бесплатной доставки.
func (r *Renderer) Announcement(width int) string {
	text := AnnouncementBn + " • " + AnnouncementEn
	return r.styles.Announcement.Width(width).Align(lipgloss.Center).Render(truncate(text, width))
}

// Header - логотип, поле поиска и индикатор стилиста.
func (r *Renderer) Header(snap app.Snapshot, search string, width int) string {
	stylist := "Stylist [Ctrl+T]"
	if snap.ChatPending {
		stylist = "Stylist ● " + StylistThinking
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		r.styles.Logo.Render(Brand),
		"   ",
		search,
		"   ",
		r.styles.Muted.Render(stylist),
	)
}

// Footer - подвал магазина.
func (r *Renderer) Footer(width int) string {
	return r.styles.Footer.Width(width).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			r.styles.Logo.Render(Brand),
			FooterTagline,
			FooterCopyright,
		))
}

// Home - чипы категорий, счетчик и сетка карточек.
//
// height > 0 ограничивает число строк сетки; видимое окно следует за cursor.
func (r *Renderer) Home(snap app.Snapshot, products []catalog.Product, cursor, width, height int) string {
	var chips []string
	for _, c := range catalog.Categories() {
		style := r.styles.Chip
		if c == snap.SelectedCategory {
			style = r.styles.ChipActive
		}
		chips = append(chips, style.Render(c))
	}

	count := r.styles.Muted.Render(fmt.Sprintf("%d Premium Kits Available", len(products)))
	top := lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, chips...), count)

	if len(products) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			r.styles.Title.Render(EmptyTitle),
			r.styles.Muted.Render(EmptyHint),
			"",
			r.styles.Button.Render(ResetLabel+" [r]"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, top, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, empty))
	}

	cols := Columns(width)
	rows := (len(products) + cols - 1) / cols
	first, last := 0, rows
	if height > 0 {
		visible := max(height/cardHeight, 1)
		cursorRow := clamp(cursor, 0, len(products)-1) / cols
		if cursorRow >= visible {
			first = cursorRow - visible + 1
		}
		last = min(first+visible, rows)
	}

	var grid []string
	for row := first; row < last; row++ {
		var cards []string
		for i := row * cols; i < min((row+1)*cols, len(products)); i++ {
			cards = append(cards, r.Card(products[i], i == cursor))
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, "", lipgloss.JoinVertical(lipgloss.Left, grid...))
}

// cardHeight - высота карточки с рамкой.
const cardHeight = 6

// Columns возвращает число карточек в строке для ширины width.
func Columns(width int) int {
	return max(width/(cardWidth+2), 1)
}

// Card - карточка товара в сетке.
func (r *Renderer) Card(p catalog.Product, selected bool) string {
	badge := " "
	switch {
	case p.IsNew:
		badge = r.styles.BadgeNew.Render("New")
	case p.IsPopular:
		badge = r.styles.BadgeHot.Render("Hot")
	}

	style := r.styles.Card
	if selected {
		style = r.styles.CardActive
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		badge,
		r.styles.Title.Render(truncate(p.Name, cardWidth-4)),
		r.styles.Muted.Render(string(p.Category)),
		r.styles.Price.Render(FormatPrice(p.Price)),
	))
}

// Product - детальная карточка товара.
func (r *Renderer) Product(snap app.Snapshot, width int) string {
	p := snap.SelectedProduct
	textWidth := min(width, 80)

	tags := []string{r.styles.Chip.Render(string(p.Category) + " Gear")}
	if p.IsNew {
		tags = append(tags, r.styles.BadgeNew.Render(NewSeason))
	}
	if p.IsPopular {
		tags = append(tags, r.styles.BadgeHot.Render("Hot"))
	}

	var sizes []string
	for _, s := range p.Sizes {
		style := r.styles.Chip
		if s == snap.SelectedSize {
			style = r.styles.ChipActive
		}
		sizes = append(sizes, style.Render(s))
	}

	lines := []string{
		r.styles.Muted.Render(BackToCollection + " [Esc]"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, tags...),
		r.styles.Title.Render(strings.ToUpper(p.Name)),
		r.styles.Price.Render(FormatPrice(p.Price)),
		"",
		wordwrap.String(p.Description, textWidth),
		r.styles.Muted.Render("Image: " + p.Image),
	}
	if len(p.Colors) > 0 {
		lines = append(lines, r.styles.Muted.Render("Colors: "+strings.Join(p.Colors, ", ")))
	}
	lines = append(lines,
		"",
		r.styles.Label.Render(SelectSize+" [←/→]"),
		lipgloss.JoinHorizontal(lipgloss.Top, sizes...),
		"",
		r.styles.Button.Render(BuyNow+" [b]"),
		r.styles.Muted.Render(FreeExpress),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// FormatPrice - цена на витрине: TK.1100.00.
func FormatPrice(price int) string {
	return fmt.Sprintf("TK.%d.00", price)
}

// Money - сумма в сводке заказа: TK.1210.
func Money(amount int) string {
	return fmt.Sprintf("TK.%d", amount)
}

// truncate обрезает строку до ширины терминала width с многоточием.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
