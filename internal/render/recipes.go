package render

import "github.com/Zachkp/folio/internal/domain"

// Recipes builds one card per recipe in input order.
func Recipes(recipes []domain.Recipe) View {
	if len(recipes) == 0 {
		return View{Empty: NoRecipes}
	}

	cards := make([]Card, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, Card{
			Title: r.Name,
			Fields: []Field{
				{"Ingredients", r.Ingredients},
				{"Diet", r.Diet},
				{"Prep time", domain.FormatMinutes(r.PrepTime)},
				{"Cook time", domain.FormatMinutes(r.CookTime)},
				{"Flavor profile", r.FlavorProfile},
				{"Course", r.Course},
				{"State", r.State},
				{"Region", r.Region},
			},
		})
	}
	return View{Cards: cards}
}
