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

package eval

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/plambda/ast"
)

var emptyStore = immutable.NewSortedMap(nil)

// Store is an immutable mapping from region ids to the current contents of each region.
//
// Every update returns a new store which shares structure with the original. A store also owns the
// counter from which fresh region ids are allocated, so region ids are unique within the lineage of
// stores derived from a single empty store. The zero value is an empty store.
type Store struct {
	m    *immutable.SortedMap
	next int
}

// Create an empty store.
func NewStore() Store { return Store{m: emptyStore} }

// Get the number of regions in the store.
func (s Store) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// NextRegion returns the id which the next allocation will receive.
func (s Store) NextRegion() int { return s.next }

// Get the contents of the region with the given id.
func (s Store) Get(id int) (ast.Term, bool) {
	if s.m == nil {
		return nil, false
	}
	v, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return v.(ast.Term), true
}

// Set returns a store in which the region with the given id contains t.
func (s Store) Set(id int, t ast.Term) Store {
	m := s.m
	if m == nil {
		m = emptyStore
	}
	next := s.next
	if id >= next {
		next = id + 1
	}
	return Store{m: m.Set(id, t), next: next}
}

// Alloc returns a fresh region containing t, and a store which includes it.
func (s Store) Alloc(t ast.Term) (*ast.Region, Store) {
	r := &ast.Region{Id: s.next}
	return r, s.Set(r.Id, t)
}

// Iterate sequentially through the regions in the store, ordered by id.
func (s Store) Range(f func(id int, t ast.Term) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(ast.Term)) {
			return
		}
	}
}
