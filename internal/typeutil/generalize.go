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
	"github.com/wdamron/plambda/types"
)

// Generalize quantifies t over each of its free type-variables which is not in envVars.
//
// The first free variable of t, in left-to-right order, is bound by the outermost quantifier:
// `(T0 -> (T1 -> T0))` generalizes to `(∀T0. (∀T1. (T0 -> (T1 -> T0))))`.
func Generalize(t types.Type, envVars types.VarSet) types.Type {
	free := types.FreeVars(t)
	for i := len(free) - 1; i >= 0; i-- {
		if envVars.Has(free[i]) {
			continue
		}
		t = &types.Forall{Var: free[i], Body: t}
	}
	return t
}
