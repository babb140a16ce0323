package config

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predeclared names available to integer expressions.
var predeclared = starlark.StringDict{
	"KiB": starlark.MakeInt(1 << 10),
	"MiB": starlark.MakeInt(1 << 20),
}

// Eval evaluates an integer expression such as "30000" or "32 * KiB".
func Eval(expr string) (value int, err error) {
	expr = strings.TrimSpace(expr)
	if len(expr) == 0 || strings.ContainsAny(expr, "\n;") {
		err = ErrExpression(expr)
		return
	}

	thread := starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared)
	if err != nil {
		err = ErrExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 != int64(int(st_int64)) {
		err = ErrExpression(expr)
		return
	}

	value = int(st_int64)
	return
}
