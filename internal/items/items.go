// Package items produces the synthetic catalogue shown in the item list.
package items

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// MaxPrice is the exclusive upper bound of generated prices.
const MaxPrice = 100_000

// Categories are assigned uniformly at random.
var Categories = []string{"Electronics", "Clothing", "Books", "Food"}

// Item is one generated catalogue entry.
type Item struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Price    int    `json:"price" yaml:"price"`
}

// Generator builds items from its own random source.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator. A zero seed draws a random one, any other
// value makes the output reproducible.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns n items with IDs offset, offset+1, ... A non-positive n
// yields an empty slice.
func (g *Generator) Generate(n, offset int) []Item {
	if n <= 0 {
		return []Item{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Item, n)
	for i := range out {
		id := offset + i
		out[i] = Item{
			ID:       id,
			Name:     fmt.Sprintf("Item %d", id),
			Category: Categories[g.rng.IntN(len(Categories))],
			Price:    g.rng.IntN(MaxPrice),
		}
	}
	return out
}

// Filter keeps items whose name or category contains query, ignoring case.
// An empty query returns the input unchanged.
func Filter(list []Item, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	out := make([]Item, 0, len(list))
	for _, item := range list {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Category), query) {
			out = append(out, item)
		}
	}
	return out
}

// TotalPrice sums the prices of list.
func TotalPrice(list []Item) int {
	total := 0
	for _, item := range list {
		total += item.Price
	}
	return total
}
