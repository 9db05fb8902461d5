package library

// corpus is the fixed set of excerpts discovery draws from.
var corpus = []Template{
	{
		Title:    "Sobre la ira",
		Author:   "Séneca",
		Content:  "La ira: un ácido que puede hacer más daño al recipiente en el que se almacena que a cualquier cosa sobre la que se vierte.",
		Category: CategoryStoicism,
	},
	{
		Title:    "Meditaciones, Libro VIII",
		Author:   "Marco Aurelio",
		Content:  "Recuerda que cambiar de opinión y seguir a quien te corrige es también un acto de libertad. Pues es tu propia acción la que se realiza de acuerdo con tu voluntad y tu juicio.",
		Category: CategoryStoicism,
	},
	{
		Title:    "Disertaciones",
		Author:   "Epicteto",
		Content:  "No esperes que los acontecimientos ocurran como tú quieres. Decide querer que ocurran como ocurren y serás feliz.",
		Category: CategoryStoicism,
	},
	{
		Title:    "Cartas a Lucilio",
		Author:   "Séneca",
		Content:  "Nadie es más infeliz que aquel a quien la adversidad olvida, pues no tiene oportunidad de ponerse a prueba.",
		Category: CategoryStoicism,
	},
	{
		Title:    "Meditaciones, Libro VII",
		Author:   "Marco Aurelio",
		Content:  "Mira hacia el pasado, con sus imperios cambiantes que se alzaron y cayeron, y podrás prever el futuro.",
		Category: CategoryStoicism,
	},
	{
		Title:    "Tao Te King, Verso 33",
		Author:   "Lao Tse",
		Content:  "Quien conoce a los demás es sabio. Quien se conoce a sí mismo está iluminado. Quien vence a los demás es fuerte. Quien se vence a sí mismo es poderoso.",
		Category: CategoryMindfulness,
	},
	{
		Title:    "Tao Te King, Verso 15",
		Author:   "Lao Tse",
		Content:  "¿Tienes la paciencia de esperar a que tu lodo se asiente y el agua se aclare? ¿Puedes permanecer inmóvil hasta que la acción correcta surja por sí misma?",
		Category: CategoryMindfulness,
	},
	{
		Title:    "El Sutra del Diamante",
		Author:   "Buda Gautama",
		Content:  "Así debéis percibir este mundo cambiante: Como una estrella al amanecer, una burbuja en un arroyo; un relámpago en una nube de verano, una lámpara parpadeante, un fantasma y un sueño.",
		Category: CategoryMindfulness,
	},
	{
		Title:    "Hojas de Hierba",
		Author:   "Walt Whitman",
		Content:  "Existo como soy, eso es suficiente. Si nadie más en el mundo se da cuenta, me siento contento. Si todos y cada uno se dan cuenta, me siento contento.",
		Category: CategoryMindfulness,
	},
	{
		Title:    "Más allá del bien y del mal",
		Author:   "Friedrich Nietzsche",
		Content:  "Quien con monstruos lucha cuide de no convertirse a su vez en monstruo. Cuando miras largo tiempo a un abismo, el abismo también mira dentro de ti.",
		Category: CategoryReflection,
	},
	{
		Title:    "Ensayos",
		Author:   "Michel de Montaigne",
		Content:  "Mi vida ha estado llena de terribles desgracias, la mayoría de las cuales nunca sucedieron.",
		Category: CategoryReflection,
	},
	{
		Title:    "Walden",
		Author:   "Henry David Thoreau",
		Content:  "Más que amor, dinero o fama, dame la verdad.",
		Category: CategoryReflection,
	},
	{
		Title:    "Así habló Zaratustra",
		Author:   "Friedrich Nietzsche",
		Content:  "Yo amo a quien vive para conocer, y quiere conocer para que algún día viva el superhombre. Y así quiere él su propio ocaso.",
		Category: CategoryReflection,
	},
	{
		Title:    "Paz",
		Author:   "Desconocido",
		Content:  "La paz mental llega cuando entiendes que: Lo que esta fuera de tu control también debe estar fuera de tu cabeza",
		Category: CategoryReflection,
	},
	{
		Title:    "La República",
		Author:   "Platón",
		Content:  "La victoria más dura es la victoria sobre uno mismo.",
		Category: CategoryReflection,
	},
	{
		Title:    "Ética",
		Author:   "Baruch Spinoza",
		Content:  "La paz no es la ausencia de guerra, es una virtud, un estado de la mente, una disposición a la benevolencia, la confianza y la justicia.",
		Category: CategoryReflection,
	},
	{
		Title:    "El Profeta",
		Author:   "Kahlil Gibran",
		Content:  "Vuestra alegría es vuestra tristeza sin máscara. Y el mismo pozo del que surge vuestra risa, a menudo se llenó con vuestras lágrimas.",
		Category: CategoryReflection,
	},
	{
		Title:    "Rimas",
		Author:   "Gustavo Adolfo Bécquer",
		Content:  "El alma que hablar puede con los ojos, también puede besar con la mirada.",
		Category: CategoryPoetry,
	},
	{
		Title:    "Soneto",
		Author:   "Sor Juana Inés de la Cruz",
		Content:  "En perseguirme, mundo, ¿qué interesas? ¿En qué te ofendo, cuando sólo intento poner bellezas en mi entendimiento y no mi entendimiento en las bellezas?",
		Category: CategoryPoetry,
	},
	{
		Title:    "Campos de Castilla",
		Author:   "Antonio Machado",
		Content:  "Caminante, son tus huellas el camino y nada más; Caminante, no hay camino, se hace camino al andar.",
		Category: CategoryPoetry,
	},
	{
		Title:    "Veinte poemas de amor",
		Author:   "Pablo Neruda",
		Content:  "Me gustas cuando callas porque estás como ausente, y me oyes desde lejos, y mi voz no te toca.",
		Category: CategoryPoetry,
	},
	{
		Title:    "Odas",
		Author:   "Rumi",
		Content:  "Ayer era inteligente y quería cambiar el mundo. Hoy soy sabio y quiero cambiarme a mí mismo.",
		Category: CategoryPoetry,
	},
	{
		Title:    "Nocturno a Rosario",
		Author:   "Manuel Acuña",
		Content:  "¡Comprendo que tus besos jamás han de ser míos, comprendo que en tus ojos no me he de ver jamás; y te amo, y en mis locos y ardientes desvaríos bendigo tus desdenes, adoro tus desvíos...",
		Category: CategoryPoetry,
	},
	{
		Title:    "Hojas de Hierba",
		Author:   "Walt Whitman",
		Content:  "Creo que una hoja de hierba no es menos que el día de trabajo de las estrellas.",
		Category: CategoryPoetry,
	},
}

// Corpus returns a copy of the discovery corpus.
func Corpus() []Template {
	out := make([]Template, len(corpus))
	copy(out, corpus)
	return out
}
