package record

import (
	"math/rand/v2"
	"time"
)

// Source produces record collections. Implementations are synchronous and
// cheap enough to call from a UI action.
type Source interface {
	Generate(count int) []Record
}

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Brian", "Claude", "Dennis", "Edsger", "Frances",
	"Grace", "Hedy", "Ivan", "Joan", "Ken", "Linus", "Margaret", "Niklaus",
	"Ole", "Radia", "Rob", "Sophie", "Tim", "Ursula", "Whitfield", "Yukihiro",
}

var lastNames = []string{
	"Allen", "Backus", "Cerf", "Dijkstra", "Engelbart", "Floyd", "Goldberg",
	"Hamilton", "Hopper", "Iverson", "Kay", "Knuth", "Lamarr", "Liskov",
	"Lovelace", "McCarthy", "Perlman", "Pike", "Ritchie", "Shannon",
	"Thompson", "Turing", "Wilson", "Wirth",
}

// referenceTime anchors CreatedAt so that a seed fully determines output.
var referenceTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const createdAtSpan = 10 * 365 * 24 * time.Hour

// Generator is a deterministic Source backed by a PCG random stream. IDs
// keep increasing across calls so every generation has fresh identities.
type Generator struct {
	rng    *rand.Rand
	nextID int
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Generate returns count new records. A non-positive count yields an empty,
// non-nil slice.
func (g *Generator) Generate(count int) []Record {
	if count < 0 {
		count = 0
	}
	out := make([]Record, count)
	for i := range out {
		out[i] = g.newRecord()
	}
	return out
}

func (g *Generator) newRecord() Record {
	id := g.nextID
	g.nextID++
	return Record{
		ID:        id,
		FirstName: firstNames[g.rng.IntN(len(firstNames))],
		LastName:  lastNames[g.rng.IntN(len(lastNames))],
		Age:       g.rng.IntN(40),
		Visits:    g.rng.IntN(1000),
		Progress:  g.rng.IntN(100),
		Status:    Status(g.rng.IntN(len(statusRank))),
		CreatedAt: referenceTime.Add(-time.Duration(g.rng.Int64N(int64(createdAtSpan)))),
	}
}
