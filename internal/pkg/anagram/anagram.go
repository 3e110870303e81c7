// Package anagram groups words that are rearrangements of each other.
//
// The approach is the one suggested in column 2 of Bentley's
// Programming Pearls: sign each word with a tag made of its letters in
// sorted order, then gather words sharing a tag. Tags are kept in a
// trie, so besides exact lookups the index answers prefix queries over
// tags, and the word lists hang off the trie nodes.
//
// Matching is case and diacritic sensitive: "Abel" and "able" carry
// different tags. Callers wanting folded matching should normalize
// words before adding them.
package anagram

import (
	"bufio"
	"io"
	"slices"

	"github.com/derekparker/trie"
)

// Tag returns the word's signature: its runes in sorted order. Words
// are anagrams of each other exactly when their tags are equal.
func Tag(word string) string {
	runes := []rune(word)
	slices.Sort(runes)
	return string(runes)
}

// Index holds words keyed by their anagram tag.
type Index struct {
	tags  *trie.Trie
	words int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{tags: trie.New()}
}

// Add indexes one word. Empty words and exact duplicates are ignored.
func (ix *Index) Add(word string) {
	if word == "" {
		return
	}
	tag := Tag(word)
	group := ix.group(tag)
	if slices.Contains(group, word) {
		return
	}
	ix.tags.Add(tag, append(group, word))
	ix.words++
}

// AddFrom indexes every whitespace-separated word read from r and
// returns the number of new words indexed.
func (ix *Index) AddFrom(r io.Reader) (int, error) {
	before := ix.words
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		ix.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ix.words - before, err
	}
	return ix.words - before, nil
}

// Len returns the number of distinct words indexed.
func (ix *Index) Len() int {
	return ix.words
}

// Lookup returns the indexed anagrams of word in sorted order, the word
// itself included when indexed. The result is nil when nothing matches.
func (ix *Index) Lookup(word string) []string {
	if word == "" {
		return nil
	}
	return ix.Group(Tag(word))
}

// Group returns the sorted words carrying exactly the given tag.
func (ix *Index) Group(tag string) []string {
	group := ix.group(tag)
	if len(group) == 0 {
		return nil
	}
	out := slices.Clone(group)
	slices.Sort(out)
	return out
}

// Groups returns every anagram class with at least two members, each
// class sorted, classes ordered by tag.
func (ix *Index) Groups() [][]string {
	var tags []string
	for _, tag := range ix.tags.Keys() {
		if len(ix.group(tag)) > 1 {
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	out := make([][]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, ix.Group(tag))
	}
	return out
}

// TagsWithPrefix returns the sorted tags that start with the given
// prefix. An empty prefix returns every tag.
func (ix *Index) TagsWithPrefix(prefix string) []string {
	var tags []string
	if prefix == "" {
		tags = ix.tags.Keys()
	} else {
		tags = ix.tags.PrefixSearch(prefix)
	}
	slices.Sort(tags)
	return tags
}

// group returns the live word list for a tag, nil when absent.
func (ix *Index) group(tag string) []string {
	node, ok := ix.tags.Find(tag)
	if !ok {
		return nil
	}
	return node.Meta().([]string)
}
