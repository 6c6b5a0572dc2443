package tilemap

// DefaultLayout is the stock 11x13 board.
var DefaultLayout = []string{
	"1---------2",
	"|.........|",
	"|.b.[7].b.|",
	"|...._....|",
	"|.[]...[].|",
	"|....^....|",
	"|.b.[+].b.|",
	"|...._....|",
	"|.[]...[].|",
	"|....^....|",
	"|.b.[5].b.|",
	"|........P|",
	"4---------3",
}
