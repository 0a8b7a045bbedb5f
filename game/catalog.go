// game/catalog.go
package game

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Catalog is the static question data loaded once at startup. Keys look
// like "LAUGH/050.jpg"; values are the per-image question sets.
type Catalog struct {
	prefix  string
	entries map[string]json.RawMessage
	images  []int
}

// Load reads and parses the catalog file. The process cannot run
// without it, so callers treat an error here as fatal.
func Load(path, prefix string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	c := &Catalog{prefix: prefix, entries: entries}
	c.images = c.scanImages()
	return c, nil
}

// scanImages derives the usable image numbers from the catalog keys.
// Keys that don't match "<prefix>/<number>.<ext>" are skipped.
func (c *Catalog) scanImages() []int {
	var images []int
	for key := range c.entries {
		if !strings.HasPrefix(key, c.prefix+"/") {
			continue
		}
		name := strings.TrimPrefix(key, c.prefix+"/")
		numberStr, _, found := strings.Cut(name, ".")
		if !found {
			continue
		}
		number, err := strconv.Atoi(numberStr)
		if err != nil {
			continue
		}
		images = append(images, number)
	}
	sort.Ints(images)
	return images
}

// AvailableImages returns the image numbers present in the catalog,
// sorted ascending.
func (c *Catalog) AvailableImages() []int {
	return c.images
}

// Key formats the zero-padded catalog key for an image number.
func (c *Catalog) Key(number int) string {
	return fmt.Sprintf("%s/%03d.jpg", c.prefix, number)
}

// Entry looks up the raw question data for an image number.
func (c *Catalog) Entry(number int) (json.RawMessage, bool) {
	entry, ok := c.entries[c.Key(number)]
	return entry, ok
}

// Keys returns every key in the catalog, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Difficulties collects every difficulty label used across the catalog.
func (c *Catalog) Difficulties() []string {
	seen := map[string]bool{}
	for _, entry := range c.entries {
		var byDifficulty map[string]json.RawMessage
		if err := json.Unmarshal(entry, &byDifficulty); err != nil {
			continue
		}
		for difficulty := range byDifficulty {
			seen[difficulty] = true
		}
	}
	difficulties := make([]string, 0, len(seen))
	for difficulty := range seen {
		difficulties = append(difficulties, difficulty)
	}
	sort.Strings(difficulties)
	return difficulties
}

// MissingNumbers finds gaps in the image numbering, for diagnostics.
func (c *Catalog) MissingNumbers() []int {
	if len(c.images) == 0 {
		return nil
	}
	present := map[int]bool{}
	for _, n := range c.images {
		present[n] = true
	}
	var missing []int
	for n := c.images[0]; n <= c.images[len(c.images)-1]; n++ {
		if !present[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

// SampleImages draws min(n, available) distinct image numbers uniformly
// at random.
func (c *Catalog) SampleImages(n int) []int {
	shuffled := make([]int, len(c.images))
	copy(shuffled, c.images)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
