package library

// Seed returns the items a fresh library starts with. The slice is a new copy
// on every call.
func Seed() []Item {
	return []Item{
		{
			ID:         "1",
			Title:      "Sobre la brevedad de la vida",
			Author:     "Séneca",
			Content:    "No es que tengamos poco tiempo, sino que perdemos mucho. La vida es lo bastante larga, y se ha dado con generosidad suficiente para la realización de las cosas más importantes si se emplea bien toda ella. Pero cuando se desperdicia en el lujo y el descuido, cuando no se gasta en ningún buen fin, forzados al fin por la última necesidad, nos damos cuenta de que ha pasado sin que nos diéramos cuenta de que estaba pasando.",
			Category:   CategoryStoicism,
			IsFavorite: true,
		},
		{
			ID:       "2",
			Title:    "Meditaciones, Libro IV",
			Author:   "Marco Aurelio",
			Content:  "Sé como el promontorio contra el que las olas rompen continuamente; pero él se mantiene firme y doma la furia del agua a su alrededor. \"Desdichado de mí, porque esto me ha sucedido\". No, al contrario: \"Afortunado de mí, porque a causa de lo que me ha sucedido, continúo sin pena, ni roto por el presente ni asustado por el futuro\".",
			Category: CategoryStoicism,
		},
		{
			ID:       "3",
			Title:    "Manual de Vida (Enquiridión)",
			Author:   "Epicteto",
			Content:  "No son las cosas las que perturban a los hombres, sino los juicios que se forman sobre las cosas. Por ejemplo, la muerte no es terrible, pues si lo fuera, a Sócrates también se lo habría parecido; lo terrible es el juicio de que la muerte es terrible.",
			Category: CategoryStoicism,
		},
		{
			ID:         "4",
			Title:      "Walden",
			Author:     "Henry David Thoreau",
			Content:    "Fui a los bosques porque quería vivir deliberadamente, enfrentar solo los hechos esenciales de la vida, y ver si no podía aprender lo que ella tenía que enseñar, no sea que cuando estuviera por morir descubriera que no había vivido.",
			Category:   CategoryReflection,
			IsFavorite: true,
		},
		{
			ID:       "5",
			Title:    "Tao Te King, Verso 8",
			Author:   "Lao Tse",
			Content:  "La bondad suprema es como el agua. El agua beneficia a todas las cosas sin competir con ellas. Mora en los lugares que todos desprecian. Por eso está cerca del Tao.",
			Category: CategoryMindfulness,
		},
		{
			ID:         "6",
			Title:      "La casa de los huéspedes",
			Author:     "Rumi",
			Content:    "Este ser humano es una casa de huéspedes. Cada mañana una nueva llegada. Una alegría, una depresión, una mezquindad, alguna conciencia momentánea llega como un visitante inesperado. ¡Dales la bienvenida y agasájalos a todos! Incluso si son una multitud de lamentos, que violentamente barren tu casa vaciándola de muebles, aun así, trata a cada huésped honorablemente. Puede que te esté limpiando para algún nuevo deleite.",
			Category:   CategoryPoetry,
			IsFavorite: true,
		},
		{
			ID:       "7",
			Title:    "Ensayos",
			Author:   "Michel de Montaigne",
			Content:  "La cosa más grande del mundo es saber ser uno mismo. Mi oficio y mi arte es vivir.",
			Category: CategoryReflection,
		},
		{
			ID:       "8",
			Title:    "Poema 254",
			Author:   "Emily Dickinson",
			Content:  "La esperanza es esa cosa con plumas que se posa en el alma, y entona la melodía sin palabras, y nunca se detiene en absoluto.",
			Category: CategoryPoetry,
		},
	}
}
