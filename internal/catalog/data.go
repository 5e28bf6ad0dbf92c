package catalog

import "github.com/freshmarket/storefront/internal/models"

var categories = []models.Category{
	{ID: "1", Name: "Hortifruti", Slug: "hortifruti", Image: "https://picsum.photos/seed/fruit/200/200"},
	{ID: "2", Name: "Carnes", Slug: "carnes", Image: "https://picsum.photos/seed/meat/200/200"},
	{ID: "3", Name: "Bebidas", Slug: "bebidas", Image: "https://picsum.photos/seed/drink/200/200"},
	{ID: "4", Name: "Padaria", Slug: "padaria", Image: "https://picsum.photos/seed/bread/200/200"},
	{ID: "5", Name: "Limpeza", Slug: "limpeza", Image: "https://picsum.photos/seed/clean/200/200"},
}

var products = []models.Product{
	{ID: "101", CategoryID: "1", Name: "Maçã Fuji", Description: "Maçã fresca e doce", LongDescription: "Maçãs Fuji selecionadas, perfeitas para lanches saudáveis e sobremesas. Origem controlada.", Price: 8.90, Unit: "kg", Image: "https://picsum.photos/seed/apple/300/300"},
	{ID: "102", CategoryID: "1", Name: "Banana Prata", Description: "Cacho maduro", LongDescription: "Bananas prata ricas em potássio. Ideais para consumo in natura ou vitaminas.", Price: 5.50, Unit: "kg", Image: "https://picsum.photos/seed/banana/300/300"},
	{ID: "103", CategoryID: "1", Name: "Alface Americana", Description: "Fresca e crocante", LongDescription: "Alface hidropônica lavada e pronta para consumo.", Price: 3.50, Unit: "un", Image: "https://picsum.photos/seed/lettuce/300/300"},
	{ID: "201", CategoryID: "2", Name: "Picanha Bovina", Description: "Peça nobre", LongDescription: "Picanha maturada, capa de gordura uniforme. Ideal para churrasco.", Price: 89.90, Unit: "kg", Image: "https://picsum.photos/seed/steak/300/300"},
	{ID: "202", CategoryID: "2", Name: "Filé de Frango", Description: "Cortes limpos", LongDescription: "Filé de peito de frango sem osso e sem pele, congelado individualmente.", Price: 19.90, Unit: "kg", Image: "https://picsum.photos/seed/chicken/300/300"},
	{ID: "301", CategoryID: "3", Name: "Suco de Laranja", Description: "100% Natural", LongDescription: "Suco de laranja integral sem adição de açúcares. Garrafa 1L.", Price: 12.00, Unit: "un", Image: "https://picsum.photos/seed/juice/300/300"},
	{ID: "302", CategoryID: "3", Name: "Cerveja Premium", Description: "Long Neck", LongDescription: "Cerveja puro malte, leve e refrescante. Pack com 6 unidades.", Price: 29.90, Unit: "pack", Image: "https://picsum.photos/seed/beer/300/300"},
	{ID: "401", CategoryID: "4", Name: "Pão Francês", Description: "Assado na hora", LongDescription: "Tradicional pão francês crocante por fora e macio por dentro.", Price: 15.90, Unit: "kg", Image: "https://picsum.photos/seed/bread2/300/300"},
	{ID: "402", CategoryID: "4", Name: "Bolo de Chocolate", Description: "Recheio cremoso", LongDescription: "Bolo caseiro de chocolate com cobertura de ganache.", Price: 25.00, Unit: "un", Image: "https://picsum.photos/seed/cake/300/300"},
	{ID: "501", CategoryID: "5", Name: "Detergente Líquido", Description: "Neutro", LongDescription: "Detergente concentrado, alto rendimento. 500ml.", Price: 2.50, Unit: "un", Image: "https://picsum.photos/seed/soap/300/300"},
}
