package categorizer

import (
	"fjacquet/nubank-analyzer/internal/models"
)

// DefaultTaxonomy is the built-in ordered category taxonomy for Brazilian
// bank statements. The slice order is load-bearing: when keywords from
// several categories match the same description, the earliest category in
// this list wins. "transferências" comes last on purpose so its broad
// keywords (pix, pagamento, ...) do not pre-empt more specific merchant
// matches.
var DefaultTaxonomy = []models.CategoryConfig{
	{
		Name: models.CategoryBills,
		Keywords: []string{
			"energia", "água", "gas natural", "internet", "fibra",
			"condomínio", "aluguel", "iptu", "taxa", "copasa",
			"cemig", "comgas", "fatura", "fgts", "seguro",
			"financiamento", "prestação", "parcela fixa",
		},
	},
	{
		Name: models.CategoryDining,
		Keywords: []string{
			"restaurante", "rest ", "bar", "food", "ifood",
			"lanchonete", "padaria", "cafeteria", "pizzaria",
			"hamburger", "açaí", "doceria", "confeitaria",
			"churrascaria", "sushi", "china", "mc donalds",
			"burger king", "subway", "habib", "spoleto",
			"giraffas", "outback", "starbucks", "kfc",
		},
	},
	{
		Name: models.CategoryGroceries,
		Keywords: []string{
			"mercado", "supermercado", "hortifruti", "mercearia",
			"atacadão", "atacadista", "feira", "sacolão",
			"carrefour", "pão de açúcar", "extra", "dia",
			"assaí", "sams club", "makro", "quitanda",
			"açougue", "peixaria", "natural",
		},
	},
	{
		Name: models.CategoryShopping,
		Keywords: []string{
			"shopping", "loja", "store", "magazine", "varejo",
			"americanas", "renner", "riachuelo", "c&a", "zara",
			"nike", "adidas", "amazon", "mercado livre", "aliexpress",
			"shopee", "magalu", "casas bahia", "ponto frio",
			"marisa", "centauro", "decathlon",
		},
	},
	{
		Name: models.CategoryTransport,
		Keywords: []string{
			"uber", "99taxi", "99 pop", "taxi", "cabify",
			"combustível", "gasolina", "etanol", "alcool",
			"posto", "shell", "ipiranga", "br ", "petrobras",
			"estacionamento", "zona azul", "pedágio", "sem parar",
			"conectcar", "move", "veloe", "bilhete", "metrô",
			"metro", "cptm", "sptrans", "brt", "van", "trem",
		},
	},
	{
		Name: models.CategoryHealth,
		Keywords: []string{
			"drogaria", "farmacia", "farmácia", "hospital",
			"clínica", "consultório", "médico", "dentista",
			"laboratório", "exame", "academia", "psicólogo",
			"fisioterapia", "nutricionista", "droga raia",
			"drogasil", "pacheco", "ultrafarma", "pague menos",
			"smart fit", "bio ritmo",
		},
	},
	{
		Name: models.CategoryLeisure,
		Keywords: []string{
			"cinema", "teatro", "show", "evento", "ingresso",
			"netflix", "spotify", "disney", "hbo", "prime",
			"youtube", "jogos", "games", "steam", "playstation",
			"xbox", "bilheteria", "festa", "boate", "bar",
			"parque", "museu", "livraria", "cultura",
		},
	},
	{
		Name: models.CategoryEducation,
		Keywords: []string{
			"escola", "faculdade", "universidade", "curso",
			"livro", "material escolar", "mensalidade",
			"matrícula", "udemy", "coursera", "alura",
			"kultivi", "duolingo", "babbel", "rosetta",
		},
	},
	{
		Name: models.CategoryTransfers,
		Keywords: []string{
			"transferência", "pix", "ted", "doc",
			"transferencia enviada", "transferência enviada",
			"envio pix", "pagamento",
		},
	},
}
