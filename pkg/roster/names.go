package roster

import "math/rand"

// Heights of synthesized students, in centimetres.
const (
	MinHeight = 130
	MaxHeight = 170
)

var firstNames = []string{
	"Emma", "Lucas", "Léa", "Hugo", "Chloé", "Louis", "Manon", "Nathan",
	"Jade", "Gabriel", "Inès", "Raphaël", "Lina", "Arthur", "Camille", "Jules",
	"Sarah", "Adam", "Alice", "Léo", "Louise", "Ethan", "Anna", "Noah",
	"Zoé", "Tom", "Clara", "Théo", "Eva", "Mathis", "Rose", "Sacha",
	"Ambre", "Axel", "Lola", "Mohamed", "Juliette", "Maxime", "Mila", "Enzo",
	"Nina", "Paul", "Margot", "Rayan", "Agathe", "Victor", "Lucie", "Aaron",
	"Olivia", "Nolan", "Iris", "Liam", "Charlotte", "Robin", "Pauline", "Oscar",
	"Lisa", "Gabin", "Victoire", "Malo",
}

var femaleNames = map[string]bool{
	"Emma": true, "Léa": true, "Chloé": true, "Manon": true, "Jade": true,
	"Inès": true, "Lina": true, "Camille": true, "Sarah": true, "Alice": true,
	"Louise": true, "Anna": true, "Zoé": true, "Clara": true, "Eva": true,
	"Rose": true, "Ambre": true, "Lola": true, "Juliette": true, "Mila": true,
	"Nina": true, "Margot": true, "Agathe": true, "Lucie": true, "Olivia": true,
	"Iris": true, "Charlotte": true, "Pauline": true, "Lisa": true, "Victoire": true,
}

var lastNames = []string{
	"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
	"Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel", "Garcia", "David",
	"Bertrand", "Roux", "Vincent", "Fournier", "Morel", "Girard", "André", "Mercier",
	"Dupont", "Lambert", "Bonnet", "François", "Martinez", "Legrand", "Garnier", "Faure",
	"Rousseau", "Blanc", "Guérin", "Muller", "Henry", "Roussel", "Nicolas", "Perrin",
	"Morin", "Mathieu", "Clément", "Gauthier", "Dumont", "Lopez", "Fontaine", "Chevalier",
	"Robin", "Masson", "Sanchez", "Gérard", "Nguyen", "Boyer", "Denis", "Lemaire",
	"Duval", "Joly", "Gautier", "Roger",
}

// Synthesize makes up a student to fill the given (0-based) place in the
// class. Names are picked by index and the height at random.
func Synthesize(index int, rng *rand.Rand) Student {
	firstName := firstNames[index%len(firstNames)]
	height := MinHeight + rng.Intn(MaxHeight-MinHeight+1)

	gender := Male
	if femaleNames[firstName] {
		gender = Female
	}

	return Student{
		LastName:  lastNames[index%len(lastNames)],
		FirstName: firstName,
		HeightCm:  &height,
		Gender:    gender,
	}
}
