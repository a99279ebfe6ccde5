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

package typeutil

import (
	"strconv"

	"github.com/wdamron/plambda/types"
)

// Prefix of type-variables allocated during inference.
const DefaultVarPrefix = "T"

// VarTracker allocates fresh type-variables and tracks allocations.
//
// Variables are named by the tracker's prefix followed by a sequence number: `T0`, `T1`, ...
type VarTracker struct {
	Prefix string
	NextId int
}

// Reset the tracker so that the next allocated variable has sequence number 0.
func (vt *VarTracker) Reset() { vt.NextId = 0 }

// Count returns the number of variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.NextId }

// NextName returns the name of the next variable, and advances the tracker.
func (vt *VarTracker) NextName() string {
	prefix := vt.Prefix
	if prefix == "" {
		prefix = DefaultVarPrefix
	}
	name := prefix + strconv.Itoa(vt.NextId)
	vt.NextId++
	return name
}

// New allocates a fresh type-variable.
func (vt *VarTracker) New() *types.Var {
	return &types.Var{Name: vt.NextName()}
}

// NewList allocates count fresh type-variables.
func (vt *VarTracker) NewList(count int) []*types.Var {
	vars := make([]*types.Var, count)
	for i := range vars {
		vars[i] = vt.New()
	}
	return vars
}
