// Package catalog предоставляет неизменяемый каталог товаров магазина.
//
// Каталог заполняется один раз при старте и дальше только читается.
// Все методы возвращают копии записей, поэтому вызывающий код
// не может изменить товар в каталоге.
package catalog

import (
	"slices"
	"strings"
)

// Category - категория товара (закрытый набор).
type Category string

const (
	Football   Category = "Football"
	Basketball Category = "Basketball"
	Baseball   Category = "Baseball"
	Classic    Category = "Classic"
)

// AllCategories - значение фильтра "без фильтра по категории".
const AllCategories = "All"

// categories - порядок чипов категорий на главной странице.
var categories = []Category{Football, Basketball, Baseball, Classic}

// Product - запись каталога.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int // Целые TK, без копеек
	Category    Category
	Image       string
	Sizes       []string // Непустой, порядок важен: первый размер - размер по умолчанию
	Colors      []string // Только для отображения
	IsNew       bool
	IsPopular   bool
}

// clone возвращает глубокую копию товара.
func (p Product) clone() Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	return p
}

// HasSize проверяет, доступен ли размер для товара.
func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// Store - каталог товаров.
//
// Thread-safe без мьютекса: после NewStore данные не меняются.
type Store struct {
	products []Product
	byID     map[string]int
}

// NewStore создает каталог из списка товаров.
//
// Дубликаты ID игнорируются (побеждает первая запись), порядок сохраняется.
func NewStore(products []Product) *Store {
	s := &Store{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p.clone())
	}
	return s
}

// Default возвращает каталог с витриной HADIKIT.
func Default() *Store {
	return NewStore(sampleProducts)
}

// List возвращает все товары в порядке каталога.
func (s *Store) List() []Product {
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.clone()
	}
	return out
}

// Len возвращает количество товаров.
func (s *Store) Len() int {
	return len(s.products)
}

// Find ищет товар по ID. Для неизвестного ID возвращает false.
func (s *Store) Find(id string) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i].clone(), true
}

// Names возвращает названия товаров для стилиста.
//
// limit > 0 ограничивает список первыми limit товарами.
func (s *Store) Names(limit int) []string {
	n := len(s.products)
	if limit > 0 && limit < n {
		n = limit
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = s.products[i].Name
	}
	return names
}

// Filter возвращает товары главной страницы.
//
// Товар попадает в выдачу, если category == "All" или совпадает с его
// категорией, и query входит в название без учета регистра.
// Порядок каталога сохраняется, пересортировки нет.
func (s *Store) Filter(category, query string) []Product {
	q := strings.ToLower(query)
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != AllCategories && string(p.Category) != category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p.clone())
	}
	return out
}

// Categories возвращает метки чипов: "All" и затем все категории.
func Categories() []string {
	out := make([]string, 0, len(categories)+1)
	out = append(out, AllCategories)
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}

// ValidCategory проверяет, что метка - "All" или известная категория.
func ValidCategory(label string) bool {
	return slices.Contains(Categories(), label)
}
