package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/chocotype/internal/ast"
)

// Decode is the inverse of Encode: it reconstructs a *ast.Program from
// the stable JSON shape. InferredType, isReturn, and errorMsg are not
// restored — Decode hands the checker a fresh, unannotated tree, the
// same shape a parser collaborator would hand it.
func Decode(data []byte) (*ast.Program, error) {
	var raw obj
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("astjson: decode: %w", err)
	}
	return decodeProgram(raw)
}

func asArray(o obj, key string) []any {
	v, _ := o[key].([]any)
	return v
}

func asObj(v any) obj {
	o, _ := v.(obj)
	return o
}

func asString(o obj, key string) string {
	s, _ := o[key].(string)
	return s
}

func decodeLocation(o obj) ast.Location {
	loc := asObj(o["location"])
	line, _ := loc["line"].(float64)
	col, _ := loc["col"].(float64)
	return ast.Location{Line: int(line), Col: int(col)}
}

func decodeProgram(o obj) (*ast.Program, error) {
	p := &ast.Program{}
	for _, d := range asArray(o, "declarations") {
		decl, err := decodeDecl(asObj(d))
		if err != nil {
			return nil, err
		}
		p.Declarations = append(p.Declarations, decl)
	}
	for _, s := range asArray(o, "statements") {
		stmt, err := decodeStmt(asObj(s))
		if err != nil {
			return nil, err
		}
		p.Statements = append(p.Statements, stmt)
	}
	for _, e := range asArray(o, "errors") {
		eo := asObj(e)
		p.Errors = append(p.Errors, ast.Diagnostic{
			Loc:     decodeLocation(eo),
			Message: asString(eo, "message"),
			Kind:    asString(eo, "kind"),
		})
	}
	return p, nil
}

func decodeIdentifier(o obj) ast.Identifier {
	if o == nil {
		return ast.Identifier{}
	}
	id := ast.Identifier{Name: asString(o, "name")}
	id.Loc = decodeLocation(o)
	return id
}

func decodeTypeAnnotation(v any) (ast.TypeAnnotation, error) {
	o := asObj(v)
	if o == nil {
		return nil, nil
	}
	switch asString(o, "kind") {
	case "ClassTypeAnnotation":
		t := &ast.ClassTypeAnnotation{Name: asString(o, "name")}
		t.Loc = decodeLocation(o)
		return t, nil
	case "ListTypeAnnotation":
		elem, err := decodeTypeAnnotation(o["element"])
		if err != nil {
			return nil, err
		}
		t := &ast.ListTypeAnnotation{Element: elem}
		t.Loc = decodeLocation(o)
		return t, nil
	default:
		return nil, fmt.Errorf("astjson: decode: unknown type annotation kind %q", o["kind"])
	}
}

func decodeDecl(o obj) (ast.Declaration, error) {
	switch asString(o, "kind") {
	case "VarDef":
		typ, err := decodeTypeAnnotation(o["type"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		n := &ast.VarDef{Name: decodeIdentifier(asObj(o["name"])), Type: typ, Value: value}
		n.Loc = decodeLocation(o)
		return n, nil
	case "FuncDef":
		n := &ast.FuncDef{Name: decodeIdentifier(asObj(o["name"]))}
		n.Loc = decodeLocation(o)
		for _, pv := range asArray(o, "params") {
			po := asObj(pv)
			typ, err := decodeTypeAnnotation(po["type"])
			if err != nil {
				return nil, err
			}
			param := ast.Param{Name: asString(po, "name"), Type: typ}
			param.Loc = decodeLocation(po)
			n.Params = append(n.Params, param)
		}
		if rt, ok := o["returnType"]; ok {
			typ, err := decodeTypeAnnotation(rt)
			if err != nil {
				return nil, err
			}
			n.ReturnType = typ
		}
		for _, dv := range asArray(o, "declarations") {
			decl, err := decodeDecl(asObj(dv))
			if err != nil {
				return nil, err
			}
			n.Declarations = append(n.Declarations, decl)
		}
		for _, sv := range asArray(o, "statements") {
			stmt, err := decodeStmt(asObj(sv))
			if err != nil {
				return nil, err
			}
			n.Statements = append(n.Statements, stmt)
		}
		return n, nil
	case "ClassDef":
		n := &ast.ClassDef{
			Name:       decodeIdentifier(asObj(o["name"])),
			SuperClass: decodeIdentifier(asObj(o["superClass"])),
		}
		n.Loc = decodeLocation(o)
		for _, dv := range asArray(o, "declarations") {
			decl, err := decodeDecl(asObj(dv))
			if err != nil {
				return nil, err
			}
			n.Declarations = append(n.Declarations, decl)
		}
		return n, nil
	case "GlobalDecl":
		n := &ast.GlobalDecl{Name: decodeIdentifier(asObj(o["name"]))}
		n.Loc = decodeLocation(o)
		return n, nil
	case "NonLocalDecl":
		n := &ast.NonLocalDecl{Name: decodeIdentifier(asObj(o["name"]))}
		n.Loc = decodeLocation(o)
		return n, nil
	default:
		return nil, fmt.Errorf("astjson: decode: unknown declaration kind %q", o["kind"])
	}
}

func decodeExpr(v any) (ast.Expression, error) {
	o := asObj(v)
	if o == nil {
		return nil, nil
	}
	switch asString(o, "kind") {
	case "IntegerLiteral":
		val, _ := o["value"].(float64)
		n := &ast.IntegerLiteral{Value: int64(val)}
		n.Loc = decodeLocation(o)
		return n, nil
	case "BooleanLiteral":
		val, _ := o["value"].(bool)
		n := &ast.BooleanLiteral{Value: val}
		n.Loc = decodeLocation(o)
		return n, nil
	case "StringLiteral":
		n := &ast.StringLiteral{Value: asString(o, "value")}
		n.Loc = decodeLocation(o)
		return n, nil
	case "NoneLiteral":
		n := &ast.NoneLiteral{}
		n.Loc = decodeLocation(o)
		return n, nil
	case "Identifier":
		id := decodeIdentifier(o)
		return &id, nil
	case "ListExpr":
		n := &ast.ListExpr{}
		n.Loc = decodeLocation(o)
		for _, ev := range asArray(o, "elements") {
			el, err := decodeExpr(ev)
			if err != nil {
				return nil, err
			}
			n.Elements = append(n.Elements, el)
		}
		return n, nil
	case "IndexExpr":
		list, err := decodeExpr(o["list"])
		if err != nil {
			return nil, err
		}
		index, err := decodeExpr(o["index"])
		if err != nil {
			return nil, err
		}
		n := &ast.IndexExpr{List: list, Index: index}
		n.Loc = decodeLocation(o)
		return n, nil
	case "UnaryExpr":
		operand, err := decodeExpr(o["operand"])
		if err != nil {
			return nil, err
		}
		n := &ast.UnaryExpr{Operator: asString(o, "operator"), Operand: operand}
		n.Loc = decodeLocation(o)
		return n, nil
	case "BinaryExpr":
		left, err := decodeExpr(o["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(o["right"])
		if err != nil {
			return nil, err
		}
		n := &ast.BinaryExpr{Operator: asString(o, "operator"), Left: left, Right: right}
		n.Loc = decodeLocation(o)
		return n, nil
	case "IfExpr":
		cond, err := decodeExpr(o["cond"])
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(o["then"])
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(o["else"])
		if err != nil {
			return nil, err
		}
		n := &ast.IfExpr{Cond: cond, Then: then, Else: els}
		n.Loc = decodeLocation(o)
		return n, nil
	case "CallExpr":
		n := &ast.CallExpr{Func: decodeIdentifier(asObj(o["func"]))}
		n.Loc = decodeLocation(o)
		for _, av := range asArray(o, "args") {
			a, err := decodeExpr(av)
			if err != nil {
				return nil, err
			}
			n.Args = append(n.Args, a)
		}
		return n, nil
	case "MemberExpr":
		object, err := decodeExpr(o["object"])
		if err != nil {
			return nil, err
		}
		n := &ast.MemberExpr{Object: object, Member: decodeIdentifier(asObj(o["member"]))}
		n.Loc = decodeLocation(o)
		return n, nil
	case "MethodCallExpr":
		object, err := decodeExpr(o["object"])
		if err != nil {
			return nil, err
		}
		n := &ast.MethodCallExpr{Object: object, Method: decodeIdentifier(asObj(o["method"]))}
		n.Loc = decodeLocation(o)
		for _, av := range asArray(o, "args") {
			a, err := decodeExpr(av)
			if err != nil {
				return nil, err
			}
			n.Args = append(n.Args, a)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("astjson: decode: unknown expression kind %q", o["kind"])
	}
}

func decodeStmt(o obj) (ast.Statement, error) {
	switch asString(o, "kind") {
	case "AssignStmt":
		n := &ast.AssignStmt{}
		n.Loc = decodeLocation(o)
		for _, tv := range asArray(o, "targets") {
			t, err := decodeExpr(tv)
			if err != nil {
				return nil, err
			}
			n.Targets = append(n.Targets, t)
		}
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		n.Value = value
		return n, nil
	case "ExprStmt":
		expr, err := decodeExpr(o["expr"])
		if err != nil {
			return nil, err
		}
		n := &ast.ExprStmt{Expr: expr}
		n.Loc = decodeLocation(o)
		return n, nil
	case "PassStmt":
		n := &ast.PassStmt{}
		n.Loc = decodeLocation(o)
		return n, nil
	case "IfStmt":
		cond, err := decodeExpr(o["cond"])
		if err != nil {
			return nil, err
		}
		n := &ast.IfStmt{Cond: cond}
		n.Loc = decodeLocation(o)
		for _, sv := range asArray(o, "then") {
			s, err := decodeStmt(asObj(sv))
			if err != nil {
				return nil, err
			}
			n.Then = append(n.Then, s)
		}
		for _, sv := range asArray(o, "else") {
			s, err := decodeStmt(asObj(sv))
			if err != nil {
				return nil, err
			}
			n.Else = append(n.Else, s)
		}
		return n, nil
	case "WhileStmt":
		cond, err := decodeExpr(o["cond"])
		if err != nil {
			return nil, err
		}
		n := &ast.WhileStmt{Cond: cond}
		n.Loc = decodeLocation(o)
		for _, sv := range asArray(o, "body") {
			s, err := decodeStmt(asObj(sv))
			if err != nil {
				return nil, err
			}
			n.Body = append(n.Body, s)
		}
		return n, nil
	case "ForStmt":
		iter, err := decodeExpr(o["iter"])
		if err != nil {
			return nil, err
		}
		n := &ast.ForStmt{Var: decodeIdentifier(asObj(o["var"])), Iter: iter}
		n.Loc = decodeLocation(o)
		for _, sv := range asArray(o, "body") {
			s, err := decodeStmt(asObj(sv))
			if err != nil {
				return nil, err
			}
			n.Body = append(n.Body, s)
		}
		return n, nil
	case "ReturnStmt":
		n := &ast.ReturnStmt{}
		n.Loc = decodeLocation(o)
		if v, ok := o["value"]; ok {
			value, err := decodeExpr(v)
			if err != nil {
				return nil, err
			}
			n.Value = value
		}
		return n, nil
	default:
		return nil, fmt.Errorf("astjson: decode: unknown statement kind %q", o["kind"])
	}
}
