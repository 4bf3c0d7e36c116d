// Package bible holds the static canon book catalog the scripture browser
// lists. Chapter texts are fetched by the client from a public Bible API;
// only the book metadata lives here.
package bible

// Book is one canon book entry.
type Book struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Testament    string `json:"testament"` // "AT" or "NT"
	Chapters     int    `json:"chapters"`
}

// Books lists the 66 books in canon order, Portuguese naming.
var Books = []Book{
	{ID: "gn", Name: "Gênesis", Abbreviation: "Gn", Testament: "AT", Chapters: 50},
	{ID: "ex", Name: "Êxodo", Abbreviation: "Ex", Testament: "AT", Chapters: 40},
	{ID: "lv", Name: "Levítico", Abbreviation: "Lv", Testament: "AT", Chapters: 27},
	{ID: "nm", Name: "Números", Abbreviation: "Nm", Testament: "AT", Chapters: 36},
	{ID: "dt", Name: "Deuteronômio", Abbreviation: "Dt", Testament: "AT", Chapters: 34},
	{ID: "js", Name: "Josué", Abbreviation: "Js", Testament: "AT", Chapters: 24},
	{ID: "jz", Name: "Juízes", Abbreviation: "Jz", Testament: "AT", Chapters: 21},
	{ID: "rt", Name: "Rute", Abbreviation: "Rt", Testament: "AT", Chapters: 4},
	{ID: "1sm", Name: "1 Samuel", Abbreviation: "1Sm", Testament: "AT", Chapters: 31},
	{ID: "2sm", Name: "2 Samuel", Abbreviation: "2Sm", Testament: "AT", Chapters: 24},
	{ID: "1rs", Name: "1 Reis", Abbreviation: "1Rs", Testament: "AT", Chapters: 22},
	{ID: "2rs", Name: "2 Reis", Abbreviation: "2Rs", Testament: "AT", Chapters: 25},
	{ID: "1cr", Name: "1 Crônicas", Abbreviation: "1Cr", Testament: "AT", Chapters: 29},
	{ID: "2cr", Name: "2 Crônicas", Abbreviation: "2Cr", Testament: "AT", Chapters: 36},
	{ID: "ed", Name: "Esdras", Abbreviation: "Ed", Testament: "AT", Chapters: 10},
	{ID: "ne", Name: "Neemias", Abbreviation: "Ne", Testament: "AT", Chapters: 13},
	{ID: "et", Name: "Ester", Abbreviation: "Et", Testament: "AT", Chapters: 10},
	{ID: "jó", Name: "Jó", Abbreviation: "Jó", Testament: "AT", Chapters: 42},
	{ID: "sl", Name: "Salmos", Abbreviation: "Sl", Testament: "AT", Chapters: 150},
	{ID: "pv", Name: "Provérbios", Abbreviation: "Pv", Testament: "AT", Chapters: 31},
	{ID: "ec", Name: "Eclesiastes", Abbreviation: "Ec", Testament: "AT", Chapters: 12},
	{ID: "ct", Name: "Cânticos", Abbreviation: "Ct", Testament: "AT", Chapters: 8},
	{ID: "is", Name: "Isaías", Abbreviation: "Is", Testament: "AT", Chapters: 66},
	{ID: "jr", Name: "Jeremias", Abbreviation: "Jr", Testament: "AT", Chapters: 52},
	{ID: "lm", Name: "Lamentações", Abbreviation: "Lm", Testament: "AT", Chapters: 5},
	{ID: "ez", Name: "Ezequiel", Abbreviation: "Ez", Testament: "AT", Chapters: 48},
	{ID: "dn", Name: "Daniel", Abbreviation: "Dn", Testament: "AT", Chapters: 12},
	{ID: "os", Name: "Oséias", Abbreviation: "Os", Testament: "AT", Chapters: 14},
	{ID: "jl", Name: "Joel", Abbreviation: "Jl", Testament: "AT", Chapters: 3},
	{ID: "am", Name: "Amós", Abbreviation: "Am", Testament: "AT", Chapters: 9},
	{ID: "ob", Name: "Obadias", Abbreviation: "Ob", Testament: "AT", Chapters: 1},
	{ID: "jn", Name: "Jonas", Abbreviation: "Jn", Testament: "AT", Chapters: 4},
	{ID: "mq", Name: "Miquéias", Abbreviation: "Mq", Testament: "AT", Chapters: 7},
	{ID: "na", Name: "Naum", Abbreviation: "Na", Testament: "AT", Chapters: 3},
	{ID: "hc", Name: "Habacuque", Abbreviation: "Hc", Testament: "AT", Chapters: 3},
	{ID: "sf", Name: "Sofonias", Abbreviation: "Sf", Testament: "AT", Chapters: 3},
	{ID: "ag", Name: "Ageu", Abbreviation: "Ag", Testament: "AT", Chapters: 2},
	{ID: "zc", Name: "Zacarias", Abbreviation: "Zc", Testament: "AT", Chapters: 14},
	{ID: "ml", Name: "Malaquias", Abbreviation: "Ml", Testament: "AT", Chapters: 4},
	{ID: "mt", Name: "Mateus", Abbreviation: "Mt", Testament: "NT", Chapters: 28},
	{ID: "mc", Name: "Marcos", Abbreviation: "Mc", Testament: "NT", Chapters: 16},
	{ID: "lc", Name: "Lucas", Abbreviation: "Lc", Testament: "NT", Chapters: 24},
	{ID: "jo", Name: "João", Abbreviation: "Jo", Testament: "NT", Chapters: 21},
	{ID: "at", Name: "Atos", Abbreviation: "At", Testament: "NT", Chapters: 28},
	{ID: "rm", Name: "Romanos", Abbreviation: "Rm", Testament: "NT", Chapters: 16},
	{ID: "1co", Name: "1 Coríntios", Abbreviation: "1Co", Testament: "NT", Chapters: 16},
	{ID: "2co", Name: "2 Coríntios", Abbreviation: "2Co", Testament: "NT", Chapters: 13},
	{ID: "gl", Name: "Gálatas", Abbreviation: "Gl", Testament: "NT", Chapters: 6},
	{ID: "ef", Name: "Efésios", Abbreviation: "Ef", Testament: "NT", Chapters: 6},
	{ID: "fp", Name: "Filipenses", Abbreviation: "Fp", Testament: "NT", Chapters: 4},
	{ID: "cl", Name: "Colossenses", Abbreviation: "Cl", Testament: "NT", Chapters: 4},
	{ID: "1ts", Name: "1 Tessalonicenses", Abbreviation: "1Ts", Testament: "NT", Chapters: 5},
	{ID: "2ts", Name: "2 Tessalonicenses", Abbreviation: "2Ts", Testament: "NT", Chapters: 3},
	{ID: "1tm", Name: "1 Timóteo", Abbreviation: "1Tm", Testament: "NT", Chapters: 6},
	{ID: "2tm", Name: "2 Timóteo", Abbreviation: "2Tm", Testament: "NT", Chapters: 4},
	{ID: "tt", Name: "Tito", Abbreviation: "Tt", Testament: "NT", Chapters: 3},
	{ID: "fm", Name: "Filemom", Abbreviation: "Fm", Testament: "NT", Chapters: 1},
	{ID: "hb", Name: "Hebreus", Abbreviation: "Hb", Testament: "NT", Chapters: 13},
	{ID: "tg", Name: "Tiago", Abbreviation: "Tg", Testament: "NT", Chapters: 5},
	{ID: "1pe", Name: "1 Pedro", Abbreviation: "1Pe", Testament: "NT", Chapters: 5},
	{ID: "2pe", Name: "2 Pedro", Abbreviation: "2Pe", Testament: "NT", Chapters: 3},
	{ID: "1jo", Name: "1 João", Abbreviation: "1Jo", Testament: "NT", Chapters: 5},
	{ID: "2jo", Name: "2 João", Abbreviation: "2Jo", Testament: "NT", Chapters: 1},
	{ID: "3jo", Name: "3 João", Abbreviation: "3Jo", Testament: "NT", Chapters: 1},
	{ID: "jd", Name: "Judas", Abbreviation: "Jd", Testament: "NT", Chapters: 1},
	{ID: "ap", Name: "Apocalipse", Abbreviation: "Ap", Testament: "NT", Chapters: 22},
}

// ByTestament returns the books of "AT" or "NT" in canon order.
func ByTestament(testament string) []Book {
	out := make([]Book, 0, len(Books))
	for _, b := range Books {
		if b.Testament == testament {
			out = append(out, b)
		}
	}
	return out
}

// Find returns the book with the given id, or false.
func Find(id string) (Book, bool) {
	for _, b := range Books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}
