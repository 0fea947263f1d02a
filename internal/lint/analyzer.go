package lint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// DefaultPackage is the import path of the assertion library.
const DefaultPackage = "assertr"

// Analyzer reports assertion chains that are never ended.
var Analyzer = &analysis.Analyzer{
	Name:     "assertrend",
	Doc:      "report assertion chains that are never ended with End or CaptureFailures",
	URL:      "https://pkg.go.dev/assertr/internal/lint",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var assertrPkg string

func init() {
	Analyzer.Flags.StringVar(&assertrPkg, "pkg", DefaultPackage, "import path of the assertion library")
}

// entryPoints start a new root chain.
var entryPoints = map[string]bool{
	"That":      true,
	"ThatRef":   true,
	"ThatPanic": true,
}

// terminators end a chain or hand its end over to a test cleanup.
var terminators = map[string]bool{
	"End":             true,
	"CaptureFailures": true,
	"BoundTo":         true,
}

type checker struct {
	pass *analysis.Pass
	pkg  string
}

func run(pass *analysis.Pass) (any, error) {
	c := &checker{pass: pass, pkg: assertrPkg}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	// Chains rooted in a local variable: declaration site per variable.
	candidates := map[types.Object]ast.Node{}
	var order []types.Object

	settled := map[types.Object]bool{}

	nodes := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.CallExpr)(nil),
	}

	insp.Preorder(nodes, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.ExprStmt:
			c.checkDropped(n)

		case *ast.AssignStmt:
			for i, lhs := range n.Lhs {
				if len(n.Rhs) != len(n.Lhs) {
					break
				}

				if obj := c.declaredVar(lhs); obj != nil && c.startsChain(n.Rhs[i]) {
					candidates[obj] = lhs
					order = append(order, obj)
					settled[obj] = settled[obj] || c.terminatedInline(n.Rhs[i])
				}
			}

		case *ast.ValueSpec:
			for i, name := range n.Names {
				if i >= len(n.Values) {
					break
				}

				if obj := c.pass.TypesInfo.Defs[name]; obj != nil && c.startsChain(n.Values[i]) {
					candidates[obj] = name
					order = append(order, obj)
					settled[obj] = settled[obj] || c.terminatedInline(n.Values[i])
				}
			}

		case *ast.CallExpr:
			if obj := c.terminatedVar(n); obj != nil {
				settled[obj] = true
			}
		}
	})

	insp.WithStack([]ast.Node{(*ast.Ident)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		obj := c.pass.TypesInfo.Uses[n.(*ast.Ident)]
		if _, ok := candidates[obj]; ok && c.escapes(n.(*ast.Ident), stack) {
			settled[obj] = true
		}

		return true
	})

	for _, obj := range order {
		if settled[obj] {
			continue
		}

		pass.Reportf(candidates[obj].Pos(),
			"assertion chain %s is never ended; call %s.End() or %s.CaptureFailures()",
			obj.Name(), obj.Name(), obj.Name())
	}

	return nil, nil
}

// checkDropped reports a statement that starts a chain and discards it.
func (c *checker) checkDropped(stmt *ast.ExprStmt) {
	if !c.isAssertThat(c.pass.TypesInfo.TypeOf(stmt.X)) {
		return
	}

	if _, ok := c.root(stmt.X).(*ast.CallExpr); ok {
		c.pass.Reportf(stmt.Pos(), "assertion chain is dropped without End() or CaptureFailures()")
	}
}

// startsChain reports whether e evaluates to a chain rooted in an entry point call.
func (c *checker) startsChain(e ast.Expr) bool {
	if !c.isAssertThat(c.pass.TypesInfo.TypeOf(e)) {
		return false
	}

	_, ok := c.root(e).(*ast.CallExpr)

	return ok
}

// declaredVar returns the variable newly defined by lhs, if any.
func (c *checker) declaredVar(lhs ast.Expr) types.Object {
	id, ok := lhs.(*ast.Ident)
	if !ok {
		return nil
	}

	if obj, ok := c.pass.TypesInfo.Defs[id].(*types.Var); ok {
		return obj
	}

	return nil
}

// terminatedVar returns the variable whose chain call ends: x.End(),
// x.IsEqualTo(1).CaptureFailures(), assertr.Map(x, f).End().
func (c *checker) terminatedVar(call *ast.CallExpr) types.Object {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || !terminators[sel.Sel.Name] || !c.isAssertThat(c.pass.TypesInfo.TypeOf(sel.X)) {
		return nil
	}

	id, ok := c.root(sel.X).(*ast.Ident)
	if !ok {
		return nil
	}

	return c.pass.TypesInfo.Uses[id]
}

// terminatedInline reports whether the chain expression e itself passes through a
// terminator, as in assertr.That(v).BoundTo(t).
func (c *checker) terminatedInline(e ast.Expr) bool {
	for {
		call, ok := ast.Unparen(e).(*ast.CallExpr)
		if !ok {
			return false
		}

		if fn := c.libraryFunc(call.Fun); fn != "" {
			if entryPoints[fn] || fn == "Derive" || len(call.Args) == 0 {
				return false
			}

			e = call.Args[0]

			continue
		}

		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok || !c.isAssertThat(c.pass.TypesInfo.TypeOf(sel.X)) {
			return false
		}

		if terminators[sel.Sel.Name] {
			return true
		}

		e = sel.X
	}
}

// root follows a chain expression back to where the chain came from: the entry
// point *ast.CallExpr, the *ast.Ident of a variable, or nil when unknown.
// Methods and library functions taking the chain first are followed; Derive
// starts a separate child chain and is not.
func (c *checker) root(e ast.Expr) ast.Node {
	for {
		switch x := ast.Unparen(e).(type) {
		case *ast.Ident:
			return x

		case *ast.CallExpr:
			fn := c.libraryFunc(x.Fun)
			switch {
			case fn == "":
				sel, ok := ast.Unparen(x.Fun).(*ast.SelectorExpr)
				if !ok || !c.isAssertThat(c.pass.TypesInfo.TypeOf(sel.X)) {
					return nil
				}

				e = sel.X
			case entryPoints[fn]:
				return x
			case fn == "Derive" || len(x.Args) == 0:
				return nil
			default:
				e = x.Args[0]
			}

		default:
			return nil
		}
	}
}

// libraryFunc returns the name of the package-level assertr function fun refers
// to, with or without explicit type arguments, or "".
func (c *checker) libraryFunc(fun ast.Expr) string {
	fun = ast.Unparen(fun)

	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	var id *ast.Ident

	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		id = f
	case *ast.SelectorExpr:
		id = f.Sel
	default:
		return ""
	}

	fn, ok := c.pass.TypesInfo.Uses[id].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != c.pkg {
		return ""
	}

	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return ""
	}

	return fn.Name()
}

// escapes reports whether the use id of a chain variable hands the chain to code
// that may end it: a return, an assignment, a composite literal, a channel send,
// or an argument to a function outside the library.
func (c *checker) escapes(id *ast.Ident, stack []ast.Node) bool {
	if len(stack) < 2 {
		return false
	}

	switch parent := stack[len(stack)-2].(type) {
	case *ast.ReturnStmt, *ast.CompositeLit, *ast.KeyValueExpr, *ast.SendStmt:
		return true

	case *ast.AssignStmt:
		for _, rhs := range parent.Rhs {
			if rhs == id {
				return true
			}
		}

	case *ast.CallExpr:
		for _, arg := range parent.Args {
			if arg == id {
				return c.libraryFunc(parent.Fun) == ""
			}
		}
	}

	return false
}

// isAssertThat reports whether t is *AssertThat[T] of the library.
func (c *checker) isAssertThat(t types.Type) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}

	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}

	obj := named.Origin().Obj()

	return obj.Name() == "AssertThat" && obj.Pkg() != nil && obj.Pkg().Path() == c.pkg
}
