// Package yieldcheck defines an Analyzer that reports infinite loops inside
// routine bodies that can never reach a yield point. The pool scheduler is
// strictly cooperative: a routine that neither yields nor returns starves
// every other slot, and the defect surfaces only as a hang.
package yieldcheck

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const routinePackage = "github.com/greenlab/routine"

var Analyzer = &analysis.Analyzer{
	Name:     "yieldcheck",
	Doc:      "report routine bodies whose loops never yield control",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	ins.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if !isRoutineCall(pass, call, "Go") {
			return
		}
		for _, arg := range call.Args {
			if lit, ok := arg.(*ast.FuncLit); ok {
				checkBody(pass, lit)
			}
		}
	})
	return nil, nil
}

// isRoutineCall reports whether call invokes the named function or method of
// the routine package. Both the freestanding Go and (*Runtime).Go resolve
// here.
func isRoutineCall(pass *analysis.Pass, call *ast.CallExpr, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	obj := pass.TypesInfo.ObjectOf(sel.Sel)
	return isRoutineObject(obj, name)
}

func isRoutineObject(obj types.Object, name string) bool {
	return obj != nil && obj.Pkg() != nil &&
		obj.Pkg().Path() == routinePackage && obj.Name() == name
}

// checkBody reports condition-free for loops in a routine body that contain
// no way to give up control: no Yield call, no return, and no branch out of
// the loop.
func checkBody(pass *analysis.Pass, fn *ast.FuncLit) {
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		loop, ok := n.(*ast.ForStmt)
		if !ok || loop.Cond != nil {
			return true
		}
		if loopYields(pass, loop.Body) {
			return true
		}
		pass.Reportf(loop.For, "routine body never yields inside this loop; the scheduler cannot preempt it")
		return true
	})
}

func loopYields(pass *analysis.Pass, body *ast.BlockStmt) bool {
	found := false
	ast.Inspect(body, func(n ast.Node) bool {
		if found {
			return false
		}
		switch n := n.(type) {
		case *ast.FuncLit:
			// A nested literal runs on its own schedule; its statements do
			// not release this loop.
			return false
		case *ast.ReturnStmt:
			found = true
		case *ast.BranchStmt:
			if n.Tok == token.BREAK || n.Tok == token.GOTO {
				found = true
			}
		case *ast.CallExpr:
			if sel, ok := n.Fun.(*ast.SelectorExpr); ok {
				if isRoutineObject(pass.TypesInfo.ObjectOf(sel.Sel), "Yield") {
					found = true
				}
			}
		}
		return !found
	})
	return found
}
