// Package flavor renders the decorative sentences that precede every bracketed
// section of a document. The sentences carry no data.
package flavor

import (
	"strings"

	"github.com/RowanDark/culturecipher/internal/catalog"
	"github.com/RowanDark/culturecipher/internal/seeded"
)

// Generator produces sentences from a catalog. It is safe for concurrent use.
type Generator struct {
	buildings  []string
	verbs      []string
	adjectives []string
	history    []string
	motto      []string
	activities []string
	nature     []string
	templates  []string
}

// New snapshots the lists of cat.
func New(cat *catalog.Catalog) *Generator {
	return &Generator{
		buildings:  cat.Buildings(),
		verbs:      cat.Verbs(),
		adjectives: cat.Adjectives(),
		history:    cat.History(),
		motto:      cat.Motto(),
		activities: cat.Activities(),
		nature:     cat.Nature(),
		templates:  cat.Templates(),
	}
}

// Sentence picks one fragment per list and a template, all from a generator
// seeded with token+context, and fills the template in.
func (g *Generator) Sentence(context, token string) string {
	rnd := seeded.New(token + context)
	pick := func(list []string) string {
		return list[rnd.Intn(len(list))]
	}

	// Draw order is fixed so the same inputs always render the same sentence.
	building := pick(g.buildings)
	verb := pick(g.verbs)
	adjective := pick(g.adjectives)
	history := pick(g.history)
	motto := pick(g.motto)
	activity := pick(g.activities)
	nature := pick(g.nature)
	tmpl := pick(g.templates)

	return strings.NewReplacer(
		catalog.PlaceholderBuilding, building,
		catalog.PlaceholderVerb, verb,
		catalog.PlaceholderAdjective, adjective,
		catalog.PlaceholderHistory, history,
		catalog.PlaceholderMotto, motto,
		catalog.PlaceholderActivity, activity,
		catalog.PlaceholderNature, nature,
	).Replace(tmpl)
}
