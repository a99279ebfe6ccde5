// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

import (
	"strconv"

	"github.com/benbjohnson/immutable"
)

// NameSet is a persistent set of term-variable names, iterated in sorted order.
//
// The zero value is not usable; construct sets with NewNameSet.
type NameSet struct {
	m *immutable.SortedMap
}

// Create a set containing names.
func NewNameSet(names ...string) NameSet {
	b := immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))
	for _, name := range names {
		b.Set(name, struct{}{})
	}
	return NameSet{b.Map()}
}

// Len returns the number of names in the set.
func (s NameSet) Len() int { return s.m.Len() }

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s.m.Get(name)
	return ok
}

// Add returns a set which also contains name.
func (s NameSet) Add(name string) NameSet { return NameSet{s.m.Set(name, struct{}{})} }

// Remove returns a set which does not contain name.
func (s NameSet) Remove(name string) NameSet { return NameSet{s.m.Delete(name)} }

// Union returns a set containing the names of both s and other.
func (s NameSet) Union(other NameSet) NameSet {
	if other.Len() > s.Len() {
		s, other = other, s
	}
	if other.Len() == 0 {
		return s
	}
	m := s.m
	for it := other.m.Iterator(); !it.Done(); {
		k, _ := it.Next()
		m = m.Set(k, struct{}{})
	}
	return NameSet{m}
}

// Names returns the names within the set in sorted order.
func (s NameSet) Names() []string {
	names := make([]string, 0, s.m.Len())
	for it := s.m.Iterator(); !it.Done(); {
		k, _ := it.Next()
		names = append(names, k.(string))
	}
	return names
}

// Renaming is a persistent mapping from bound names to their replacements.
type Renaming struct {
	m *immutable.Map
}

// Create an empty renaming.
func NewRenaming() Renaming { return Renaming{immutable.NewMap(nil)} }

// Len returns the number of renamed names.
func (r Renaming) Len() int { return r.m.Len() }

// Get the replacement for name.
func (r Renaming) Get(name string) (string, bool) {
	v, ok := r.m.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Set returns a renaming which maps name to fresh, shadowing any previous replacement for name.
func (r Renaming) Set(name, fresh string) Renaming { return Renaming{r.m.Set(name, fresh)} }

// Prefix of fresh names generated by a NameSupply without a prefix of its own.
const DefaultNamePrefix = "_v"

// NameSupply generates fresh term-variable names: the supply's prefix followed by a sequence number,
// `_v0`, `_v1`, ... by default.
//
// Prefixes should begin with an underscore, which the parser does not accept as the leading character
// of an identifier, so fresh names never collide with names in source terms. Supplies with distinct
// prefixes never generate the same name.
type NameSupply struct {
	Prefix string
	Next   int
}

// Fresh returns the next unused name.
func (s *NameSupply) Fresh() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}
	name := prefix + strconv.Itoa(s.Next)
	s.Next++
	return name
}

// Reset the supply so that the next fresh name has sequence number 0.
func (s *NameSupply) Reset() { s.Next = 0 }
