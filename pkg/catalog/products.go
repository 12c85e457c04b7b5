package catalog

// Стандартная размерная сетка джерси.
var jerseySizes = []string{"S", "M", "L", "XL", "XXL"}

const kitDescription = "Authentic-fit replica jersey with breathable mesh panels."

// sampleProducts - витрина HADIKIT. 20 футбольных комплектов идут первыми.
var sampleProducts = []Product{
	{ID: "1", Name: "Portugal World Cup 2026 Home", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/rGLkYbBM/1.webp", IsNew: true, Colors: []string{"#c8102e", "#046a38"}},
	{ID: "2", Name: "Germany World Cup 2026 Home", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/KjBphY94/2.webp", IsNew: true, Colors: []string{"#ffffff", "#000000"}},
	{ID: "3", Name: "Argentina World Cup 2026 Home", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/d4DhfF3D/3.webp", IsPopular: true, Colors: []string{"#75aadb", "#ffffff"}},
	{ID: "4", Name: "Barcelona Away Black 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/6hdXLZn/4.webp", IsPopular: true, Colors: []string{"#000000", "#edbb00"}},
	{ID: "5", Name: "Man City 3rd Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/WWpfgSvR/5.webp", Colors: []string{"#6cabdd"}},
	{ID: "6", Name: "Manchester United 3rd Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/fGxN3nYR/6.webp", Colors: []string{"#ffffff", "#da291c"}},
	{ID: "7", Name: "Liverpool Away Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/tPk5Vr8d/7.jpg", Colors: []string{"#f5f5dc"}},
	{ID: "8", Name: "Barcelona Third Jersey 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/DHnDMqKs/8.jpg", Colors: []string{"#a7c7e7"}},
	{ID: "9", Name: "Al Nassr Third Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/nqNfC98j/9.webp", Colors: []string{"#ffffff", "#0033a0"}},
	{ID: "10", Name: "Man United Home Jersey 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/DDZChjXS/10.webp", Colors: []string{"#da291c"}},
	{ID: "11", Name: "AC Milan Home Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/YBfD3qpR/11.jpg", Colors: []string{"#fb090b", "#000000"}},
	{ID: "12", Name: "AC Milan Away Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/QFN9T1Nx/12.jpg", Colors: []string{"#ffffff"}},
	{ID: "13", Name: "Barcelona 125th Anniversary Kit", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/PGfMyfyq/13.webp", IsPopular: true, Colors: []string{"#a50044", "#004d98"}},
	{ID: "14", Name: "Real Madrid Third Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/KxNZK7rk/14.webp", Colors: []string{"#2b2b2b"}},
	{ID: "15", Name: "Barcelona Away Jersey 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/Cs2FhmTG/15.webp", Colors: []string{"#edbb00"}},
	{ID: "16", Name: "Inter Miami Third Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/Swvx74nY/16.webp", Colors: []string{"#f7b5cd", "#231f20"}},
	{ID: "17", Name: "Chelsea Away Jersey 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/Wv4jK7KQ/17.webp", Colors: []string{"#f2f2f2"}},
	{ID: "18", Name: "Bayern Munich Home 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/rR54nX51/18.jpg", Colors: []string{"#dc052d"}},
	{ID: "19", Name: "Man Utd Away Kit 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/HLRbZjFG/19.webp", Colors: []string{"#003a70"}},
	{ID: "20", Name: "Real Madrid Away 25/26", Price: 1100, Category: Football, Image: "https://i.ibb.co.com/0jLkL22c/20.jpg", Colors: []string{"#1c2841"}},

	{ID: "21", Name: "Lakers Icon Edition Jersey", Price: 1350, Category: Basketball, Image: "https://i.ibb.co.com/hadikit/21.webp", IsNew: true, Colors: []string{"#552583", "#fdb927"}},
	{ID: "22", Name: "Golden State Statement Jersey", Price: 1350, Category: Basketball, Image: "https://i.ibb.co.com/hadikit/22.webp", Colors: []string{"#1d428a", "#ffc72c"}},
	{ID: "23", Name: "Chicago Bulls City Edition", Price: 1450, Category: Basketball, Image: "https://i.ibb.co.com/hadikit/23.webp", IsPopular: true, Colors: []string{"#ce1141", "#000000"}},
	{ID: "24", Name: "Yankees Pinstripe Home Jersey", Price: 1250, Category: Baseball, Image: "https://i.ibb.co.com/hadikit/24.webp", Colors: []string{"#ffffff", "#0c2340"}},
	{ID: "25", Name: "Dodgers Road Button-Up", Price: 1250, Category: Baseball, Image: "https://i.ibb.co.com/hadikit/25.webp", IsNew: true, Colors: []string{"#a5acaf", "#005a9c"}},
	{ID: "26", Name: "Brazil 1970 Retro Classic", Price: 1200, Category: Classic, Image: "https://i.ibb.co.com/hadikit/26.webp", IsPopular: true, Colors: []string{"#ffdf00", "#009c3b"}},
	{ID: "27", Name: "Argentina 1986 Retro Home", Price: 1200, Category: Classic, Image: "https://i.ibb.co.com/hadikit/27.webp", Colors: []string{"#75aadb", "#ffffff"}},
	{ID: "28", Name: "Netherlands 1988 Retro Orange", Price: 1200, Category: Classic, Image: "https://i.ibb.co.com/hadikit/28.webp", Colors: []string{"#ff6600"}},
}

func init() {
	for i := range sampleProducts {
		if sampleProducts[i].Description == "" {
			sampleProducts[i].Description = kitDescription
		}
		if len(sampleProducts[i].Sizes) == 0 {
			sampleProducts[i].Sizes = jerseySizes
		}
	}
}
