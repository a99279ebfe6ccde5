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

// Instantiate strips the leading quantifiers of a type scheme, replacing each quantified variable
// with a fresh type-variable.
//
// Quantified variables are replaced simultaneously, so a fresh variable which happens to share the
// name of another quantified variable is never captured.
func (ctx *CommonContext) Instantiate(t types.Type) types.Type {
	vars, body := types.SplitForall(t)
	if len(vars) == 0 {
		return t
	}
	fresh := make(map[string]types.Type, len(vars))
	for _, name := range vars {
		fresh[name] = ctx.VarTracker.New()
	}
	return types.SubstituteAll(body, fresh)
}
