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

// Default bound on the work performed by a single call to Unify.
const DefaultUnifyFuel = 1000

// CommonContext holds the state shared by the primitives of inference: the fresh-variable tracker
// and the unification budget.
type CommonContext struct {
	VarTracker VarTracker
	// Work budget for each call to Unify. A non-positive value selects DefaultUnifyFuel.
	UnifyFuel int
}

func (ctx *CommonContext) Reset() {
	ctx.VarTracker.Reset()
}

func (ctx *CommonContext) fuel() int {
	if ctx.UnifyFuel <= 0 {
		return DefaultUnifyFuel
	}
	return ctx.UnifyFuel
}
