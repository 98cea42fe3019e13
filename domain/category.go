package domain

// Macro categories a product can be classified into. The Gemini prompt
// enumerates exactly this vocabulary; anything else the model invents ends up
// stored as-is (permissive, matching the update endpoint).
const (
	CategoryAcougue    = "ACOGUE"
	CategoryPadaria    = "PADARIA"
	CategoryLaticinios = "LATICINIOS"
	CategoryHortifruti = "HORTIFRUTI"
	CategoryLimpeza    = "LIMPEZA"
	CategoryBebidas    = "BEBIDAS"
	CategoryMercearia  = "MERCEARIA"
	CategoryHigiene    = "HIGIENE"
	CategoryOutros     = "OUTROS"
)

var MacroCategories = []string{
	CategoryAcougue,
	CategoryPadaria,
	CategoryLaticinios,
	CategoryHortifruti,
	CategoryLimpeza,
	CategoryBebidas,
	CategoryMercearia,
	CategoryHigiene,
	CategoryOutros,
}

// Suggestion types returned by the smart search.
const (
	SearchTypeCategory = "CATEGORIA"
	SearchTypeProduct  = "PRODUTO"
)
