package bloom_test

import (
	"testing"

	"github.com/fission-codes/go-bloom-hash/bloom"
	"github.com/fission-codes/go-bloom-hash/hasher"
)

// End-to-end: accumulate items in a generator, set their positions in a
// filter, and test membership through a second generator over the same
// items.
func TestGeneratorFeedsFilter(t *testing.T) {
	shape := bloom.Shape{HasherName: hasher.Murmur128Name, K: 5, M: 4096}
	f, err := bloom.New(shape)
	if err != nil {
		t.Fatal(err)
	}

	add := func(items ...string) {
		g, err := hasher.New(hasher.Murmur128Name)
		if err != nil {
			t.Fatal(err)
		}
		for _, item := range items {
			if err := g.AddString(item); err != nil {
				t.Fatal(err)
			}
		}
		it, err := g.Indices(shape)
		if err != nil {
			t.Fatal(err)
		}
		f.AddIndices(it)
	}
	has := func(item string) bool {
		g, err := hasher.New(hasher.Murmur128Name)
		if err != nil {
			t.Fatal(err)
		}
		if err := g.AddString(item); err != nil {
			t.Fatal(err)
		}
		it, err := g.Indices(shape)
		if err != nil {
			t.Fatal(err)
		}
		return f.TestIndices(it)
	}

	add("one", "two", "three")

	for _, item := range []string{"one", "two", "three"} {
		if !has(item) {
			t.Errorf("%q should be in", item)
		}
	}
	if has("four") {
		t.Error("four should not be in")
	}
}

// A filter shaped for one hasher refuses index streams derived under
// another name at the generator, before the filter ever sees them.
func TestShapeNamesGateGenerators(t *testing.T) {
	shape := bloom.Shape{HasherName: hasher.Murmur128Name, K: 3, M: 512}

	g, err := hasher.New(hasher.XXH3Name)
	if err != nil {
		t.Fatal(err)
	}
	g.AddString("item")
	if _, err := g.Indices(shape); err == nil {
		t.Error("xxh3 generator accepted a murmur-shaped filter")
	}
}
