package models

import "github.com/levitenleser/levitenleser/internal/pkg/stories"

// fallbackIssue is the static issue served when the database cannot be
// reached. The storefront and the sitemap generator both read it so a
// broken database never produces an empty site or an empty urlset.
var fallbackIssue = []Story{
	{
		ID:       1,
		Title:    "Die Stille hinter den Schiebetüren",
		Category: "Feuilleton",
		Date:     "13. Oktober 2024",
		ReadTime: "8 Min",
		Tag:      "Digitales Feuilleton",
		Excerpt:  "In einem Pendlerzug entdecken Fremde eine flüchtige Gemeinschaft: ein Chor aus Kopfhörern, Bildschirmen und Gesten, die nichts bedeuten sollen und doch alles verraten.",
		Body:     "Der Zug atmete im Takt der Türen. Zwischen den Haltestellen flimmerte ein stummes Gespräch aus Kopfhörern, Bildschirmen und gestischen Abbrüchen. Niemand wollte auffallen, alle gehörten dazu. Als das Signal ertönte, stand eine Frau auf, ließ ihr Handy absichtlich liegen – und der Wagen hielt für einen Moment den Atem an.",
	},
	{
		ID:       2,
		Title:    "Das Telefon der Großmutter",
		Category: "Erzählung",
		Date:     "29. September 2024",
		ReadTime: "6 Min",
		Tag:      "Erinnerung",
		Excerpt:  "Auf dem Speicher liegt ein schwarzes Wählscheibenmodell, das noch immer klingeln könnte. Wer hebt ab, wenn niemand mehr angerufen wird?",
		Body:     "Das schwere Bakelit lag kühl in der Hand. Der Zeigefinger drehte die Scheibe, als wäre es noch gestern. In der Stille nach dem letzten Klick hörte der Enkel ein Summen, das keins war – nur Erinnerung, eingraviert in das Klingeln, das nie wieder kommen würde.",
	},
	{
		ID:       3,
		Title:    "Aufrecht gehen die Schatten",
		Category: "Feuilleton",
		Date:     "15. September 2024",
		ReadTime: "7 Min",
		Tag:      "Stadtspaziergang",
		Excerpt:  "Zwischen Kiosken und Kirchhöfen wandert ein Erzähler durch eine Stadt, die jeden Schritt mitliest – und sich dabei selbst vergisst.",
		Body:     "Er zählte die Kameras mit den Augen, die Plakate mit den Händen, die Blicke mit den Schultern. An der nächsten Ecke saß ein alter Mann und nickte ihm zu, als wüsste er, dass hier jeder Weg protokolliert wird – bis einer beschließt, einfach stehenzubleiben.",
	},
	{
		ID:       4,
		Title:    "Die Leselampe",
		Category: "Miniatur",
		Date:     "1. September 2024",
		ReadTime: "4 Min",
		Tag:      "Alltag",
		Excerpt:  "Ein Lichtkegel, ein alter Sessel, ein Stapel Bücher – und der Versuch, dem Tag noch ein einziges Kapitel abzuringen.",
		Body:     "Das Zimmer war klein genug, dass das Licht reichte. Der Sessel kannte jede Faser des Pullovers. Ein weiteres Kapitel, nur eines, dann schlafen – versprach sie sich. Als die Lampe flackerte, hielt sie den Atem an, bis das Licht wieder stand.",
	},
}

// FallbackStories returns the static issue with slugs filled in. The same
// EnsureSlug call runs here as in the storefront and the sitemap, so the
// fallback URLs never drift from the live ones.
func FallbackStories() []Story {
	out := make([]Story, len(fallbackIssue))
	copy(out, fallbackIssue)
	for i := range out {
		if out[i].Slug == "" {
			out[i].Slug = stories.EnsureSlug(stories.SlugSeed{
				Title:    out[i].Title,
				Tag:      out[i].Tag,
				Category: out[i].Category,
				ID:       out[i].ID,
				Position: i + 1,
			})
		}
	}
	return out
}
