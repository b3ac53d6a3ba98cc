// Package astjson is the only package that knows the stable AST wire
// shape of spec.md §6: for each node kind, a JSON object carrying
// "kind", "location", the kind-specific children, and optional
// "inferredType"/"errorMsg"/"errors". internal/ast itself carries no
// JSON tags, keeping the node contract free of transport concerns —
// the parser and the CLI exchange trees through this package instead.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/cwbudde/chocotype/internal/ast"
)

type obj = map[string]any

// Encode serializes program into the stable JSON shape, pretty-printed
// with tidwall/pretty so CLI output and golden test fixtures are
// human-readable.
func Encode(program *ast.Program) ([]byte, error) {
	data, err := json.Marshal(encodeProgram(program))
	if err != nil {
		return nil, fmt.Errorf("astjson: encode: %w", err)
	}
	return pretty.Pretty(data), nil
}

func encodeLocation(l ast.Location) obj {
	return obj{"line": l.Line, "col": l.Col}
}

func encodeNodeCommon(n ast.Node, o obj) obj {
	o["location"] = encodeLocation(n.Pos())
	if n.HasError() {
		o["errorMsg"] = n.ErrorMsg()
	}
	return o
}

func encodeExprCommon(e ast.Expression, kind string) obj {
	o := encodeNodeCommon(e, obj{"kind": kind})
	if t := e.InferredType(); t != nil {
		o["inferredType"] = t.String()
	}
	return o
}

func encodeStmtCommon(s ast.Statement, kind string) obj {
	o := encodeNodeCommon(s, obj{"kind": kind})
	o["isReturn"] = s.IsReturn()
	return o
}

func encodeProgram(p *ast.Program) obj {
	decls := make([]obj, len(p.Declarations))
	for i, d := range p.Declarations {
		decls[i] = encodeDecl(d)
	}
	stmts := make([]obj, len(p.Statements))
	for i, s := range p.Statements {
		stmts[i] = encodeStmt(s)
	}
	errs := make([]obj, len(p.Errors))
	for i, e := range p.Errors {
		errs[i] = obj{"location": encodeLocation(e.Loc), "message": e.Message, "kind": e.Kind}
	}
	return obj{
		"kind":         "Program",
		"declarations": decls,
		"statements":   stmts,
		"errors":       errs,
	}
}

func encodeTypeAnnotation(ta ast.TypeAnnotation) obj {
	switch t := ta.(type) {
	case *ast.ClassTypeAnnotation:
		return encodeNodeCommon(t, obj{"kind": "ClassTypeAnnotation", "name": t.Name})
	case *ast.ListTypeAnnotation:
		return encodeNodeCommon(t, obj{"kind": "ListTypeAnnotation", "element": encodeTypeAnnotation(t.Element)})
	default:
		return nil
	}
}

func encodeDecl(d ast.Declaration) obj {
	switch n := d.(type) {
	case *ast.VarDef:
		return encodeNodeCommon(n, obj{
			"kind":  "VarDef",
			"name":  encodeExpr(&n.Name),
			"type":  encodeTypeAnnotation(n.Type),
			"value": encodeExpr(n.Value),
		})
	case *ast.FuncDef:
		params := make([]obj, len(n.Params))
		for i, p := range n.Params {
			params[i] = encodeNodeCommon(&p, obj{"kind": "Param", "name": p.Name, "type": encodeTypeAnnotation(p.Type)})
		}
		decls := make([]obj, len(n.Declarations))
		for i, nested := range n.Declarations {
			decls[i] = encodeDecl(nested)
		}
		stmts := make([]obj, len(n.Statements))
		for i, s := range n.Statements {
			stmts[i] = encodeStmt(s)
		}
		o := encodeNodeCommon(n, obj{
			"kind":         "FuncDef",
			"name":         encodeExpr(&n.Name),
			"params":       params,
			"declarations": decls,
			"statements":   stmts,
		})
		if n.ReturnType != nil {
			o["returnType"] = encodeTypeAnnotation(n.ReturnType)
		}
		return o
	case *ast.ClassDef:
		decls := make([]obj, len(n.Declarations))
		for i, nested := range n.Declarations {
			decls[i] = encodeDecl(nested)
		}
		return encodeNodeCommon(n, obj{
			"kind":         "ClassDef",
			"name":         encodeExpr(&n.Name),
			"superClass":   encodeExpr(&n.SuperClass),
			"declarations": decls,
		})
	case *ast.GlobalDecl:
		return encodeNodeCommon(n, obj{"kind": "GlobalDecl", "name": encodeExpr(&n.Name)})
	case *ast.NonLocalDecl:
		return encodeNodeCommon(n, obj{"kind": "NonLocalDecl", "name": encodeExpr(&n.Name)})
	default:
		return nil
	}
}

func encodeExpr(e ast.Expression) obj {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		o := encodeExprCommon(n, "IntegerLiteral")
		o["value"] = n.Value
		return o
	case *ast.BooleanLiteral:
		o := encodeExprCommon(n, "BooleanLiteral")
		o["value"] = n.Value
		return o
	case *ast.StringLiteral:
		o := encodeExprCommon(n, "StringLiteral")
		o["value"] = n.Value
		return o
	case *ast.NoneLiteral:
		return encodeExprCommon(n, "NoneLiteral")
	case *ast.Identifier:
		o := encodeExprCommon(n, "Identifier")
		o["name"] = n.Name
		return o
	case *ast.ListExpr:
		elems := make([]obj, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = encodeExpr(el)
		}
		o := encodeExprCommon(n, "ListExpr")
		o["elements"] = elems
		return o
	case *ast.IndexExpr:
		o := encodeExprCommon(n, "IndexExpr")
		o["list"] = encodeExpr(n.List)
		o["index"] = encodeExpr(n.Index)
		return o
	case *ast.UnaryExpr:
		o := encodeExprCommon(n, "UnaryExpr")
		o["operator"] = n.Operator
		o["operand"] = encodeExpr(n.Operand)
		return o
	case *ast.BinaryExpr:
		o := encodeExprCommon(n, "BinaryExpr")
		o["operator"] = n.Operator
		o["left"] = encodeExpr(n.Left)
		o["right"] = encodeExpr(n.Right)
		return o
	case *ast.IfExpr:
		o := encodeExprCommon(n, "IfExpr")
		o["cond"] = encodeExpr(n.Cond)
		o["then"] = encodeExpr(n.Then)
		o["else"] = encodeExpr(n.Else)
		return o
	case *ast.CallExpr:
		args := make([]obj, len(n.Args))
		for i, a := range n.Args {
			args[i] = encodeExpr(a)
		}
		o := encodeExprCommon(n, "CallExpr")
		o["func"] = encodeExpr(&n.Func)
		o["args"] = args
		return o
	case *ast.MemberExpr:
		o := encodeExprCommon(n, "MemberExpr")
		o["object"] = encodeExpr(n.Object)
		o["member"] = encodeExpr(&n.Member)
		return o
	case *ast.MethodCallExpr:
		args := make([]obj, len(n.Args))
		for i, a := range n.Args {
			args[i] = encodeExpr(a)
		}
		o := encodeExprCommon(n, "MethodCallExpr")
		o["object"] = encodeExpr(n.Object)
		o["method"] = encodeExpr(&n.Method)
		o["args"] = args
		return o
	default:
		return nil
	}
}

func encodeStmt(s ast.Statement) obj {
	switch n := s.(type) {
	case *ast.AssignStmt:
		targets := make([]obj, len(n.Targets))
		for i, t := range n.Targets {
			targets[i] = encodeExpr(t)
		}
		o := encodeStmtCommon(n, "AssignStmt")
		o["targets"] = targets
		o["value"] = encodeExpr(n.Value)
		return o
	case *ast.ExprStmt:
		o := encodeStmtCommon(n, "ExprStmt")
		o["expr"] = encodeExpr(n.Expr)
		return o
	case *ast.PassStmt:
		return encodeStmtCommon(n, "PassStmt")
	case *ast.IfStmt:
		then := make([]obj, len(n.Then))
		for i, st := range n.Then {
			then[i] = encodeStmt(st)
		}
		els := make([]obj, len(n.Else))
		for i, st := range n.Else {
			els[i] = encodeStmt(st)
		}
		o := encodeStmtCommon(n, "IfStmt")
		o["cond"] = encodeExpr(n.Cond)
		o["then"] = then
		o["else"] = els
		return o
	case *ast.WhileStmt:
		body := make([]obj, len(n.Body))
		for i, st := range n.Body {
			body[i] = encodeStmt(st)
		}
		o := encodeStmtCommon(n, "WhileStmt")
		o["cond"] = encodeExpr(n.Cond)
		o["body"] = body
		return o
	case *ast.ForStmt:
		body := make([]obj, len(n.Body))
		for i, st := range n.Body {
			body[i] = encodeStmt(st)
		}
		o := encodeStmtCommon(n, "ForStmt")
		o["var"] = encodeExpr(&n.Var)
		o["iter"] = encodeExpr(n.Iter)
		o["body"] = body
		return o
	case *ast.ReturnStmt:
		o := encodeStmtCommon(n, "ReturnStmt")
		if n.Value != nil {
			o["value"] = encodeExpr(n.Value)
		}
		return o
	default:
		return nil
	}
}
