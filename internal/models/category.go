package models

type Category struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
	Colour string `db:"colour"`
}

// DefaultColour is assigned to categories created lazily from a transaction.
const DefaultColour = "#808080"

// DefaultCategories are created for a user the first time their category list
// turns out empty.
var DefaultCategories = []Category{
	{Name: "Alimentação", Colour: "#FF5733"},
	{Name: "Transporte", Colour: "#337AFF"},
	{Name: "Habitação", Colour: "#33FF49"},
	{Name: "Saúde", Colour: "#FF33F5"},
	{Name: "Lazer", Colour: "#33FFF5"},
	{Name: "Educação", Colour: "#FFA833"},
	{Name: "Serviços", Colour: "#8333FF"},
	{Name: "Outros", Colour: "#808080"},
}
