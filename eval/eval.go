//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of plp.
//
// plp is licensed under the latest version of the EUPL // (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Detlef Stern
//-----------------------------------------------------------------------------

// Package eval implements PLP's reduction loop: a single Eval entry point
// that special-form-dispatches a List, otherwise applies a callable to its
// evaluated arguments, rewriting its own (ast, env) pair in place for tail
// positions so that iteration and self-recursive tail calls use bounded
// host stack.
package eval

import (
	"plp.sh/plp"
	"plp.sh/plp/perr"
)

// Eval reduces ast in env to a value, or returns a *perr.Error.
func Eval(ast plp.Object, env *plp.Environment) (plp.Object, error) {
	for {
		switch v := ast.(type) {
		case plp.Symbol:
			val, ok := env.Lookup(v)
			if !ok {
				return nil, perr.Undefined(string(v))
			}
			return val, nil

		case plp.Vector:
			out := make(plp.Vector, len(v))
			for i, item := range v {
				val, err := Eval(item, env)
				if err != nil {
					return nil, err
				}
				out[i] = val
			}
			return out, nil

		case *plp.HashMap:
			out := v.Clone()
			err := v.Each(func(key, val plp.Object) error {
				evaluated, err := Eval(val, env)
				if err != nil {
					return err
				}
				return out.Update(key, evaluated)
			})
			if err != nil {
				return nil, err
			}
			return out, nil

		case plp.List:
			if len(v) == 0 {
				return v, nil
			}
			operator := v[0]
			args := v[1:]

			if sym, ok := plp.GetSymbol(operator); ok {
				switch sym {
				case "define":
					return evalDefine(args, env)
				case "do":
					next, err := evalDo(args, env)
					if err != nil {
						return nil, err
					}
					ast = next
					continue
				case "fn":
					return evalFn(args, env)
				case "if":
					next, err := evalIf(args, env)
					if err != nil {
						return nil, err
					}
					ast = next
					continue
				case "let*":
					next, nextEnv, err := evalLet(args, env)
					if err != nil {
						return nil, err
					}
					ast, env = next, nextEnv
					continue
				case "while":
					return evalWhile(args, env)
				case "quote":
					if len(args) != 1 {
						return nil, perr.Syntaxf("operator 'quote' expects 1 argument (got %d)", len(args))
					}
					return args[0], nil
				}
			}

			fn, err := Eval(operator, env)
			if err != nil {
				return nil, err
			}

			switch callee := fn.(type) {
			case *plp.Builtin:
				evaluated, err := evalArgs(args, env)
				if err != nil {
					return nil, err
				}
				if !callee.CheckArity(len(evaluated)) {
					return nil, perr.ArgCount("'%s' got %d argument(s)", callee.Name, len(evaluated))
				}
				return callee.Fn(evaluated)

			case *plp.Closure:
				evaluated, err := evalArgs(args, env)
				if err != nil {
					return nil, err
				}
				childEnv, err := plp.Extend(callee.Env, callee.Params, evaluated)
				if err != nil {
					return nil, perr.ArgCount("%s", err)
				}
				ast, env = callee.Body, childEnv
				continue

			default:
				return nil, perr.Syntaxf("'%s' is not a function; can't apply '%s' on given arguments", operator, operator)
			}

		default:
			return ast, nil
		}
	}
}

func evalArgs(args []plp.Object, env *plp.Environment) ([]plp.Object, error) {
	out := make([]plp.Object, len(args))
	for i, a := range args {
		val, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func evalDefine(args []plp.Object, env *plp.Environment) (plp.Object, error) {
	if len(args) != 2 {
		return nil, perr.Syntaxf("operator 'define' expects 2 arguments (got %d)", len(args))
	}
	key := args[0]
	sym, ok := plp.GetSymbol(key)
	if !ok {
		if _, isKeyword := plp.GetKeyword(key); isKeyword {
			return nil, perr.Syntaxf("operator 'define' can't use keyword '%s'", key)
		}
		return nil, perr.Syntaxf("operator 'define' can't redefine atom '%s'", key)
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Bind(sym, value)
	return value, nil
}

// evalLet returns the body expression and the child environment to
// tail-rewrite into.
func evalLet(args []plp.Object, env *plp.Environment) (plp.Object, *plp.Environment, error) {
	if len(args) != 2 {
		return nil, nil, perr.Syntaxf("operator 'let*' expects 2 arguments (got %d)", len(args))
	}
	bindings, ok := plp.GetList(args[0])
	if !ok {
		return nil, nil, perr.Syntaxf("operator 'let*' expects first parameter to be a list for bindings")
	}
	local := plp.NewChildEnvironment(env)
	for i := 0; i < len(bindings); {
		keyExpr, valExpr, ok := nextBinding(bindings, &i)
		if !ok {
			break // trailing key with no value expression; complete pairs only
		}
		key, ok := plp.GetSymbol(keyExpr)
		if !ok {
			return nil, nil, perr.Syntaxf("operator 'let*' expects odd bindings to be a symbol")
		}
		value, err := Eval(valExpr, local)
		if err != nil {
			return nil, nil, err
		}
		local.Bind(key, value)
	}
	return args[1], local, nil
}

// nextBinding pulls one (symbol expr) binding out of a let* binding list,
// advancing *i past it. Both binding shapes are accepted: grouped pairs,
// `((a 1) (b 2))`, and the flat form `(a 1 b 2)`. A grouped pair is any
// two-element inner list whose head is a symbol; a symbol in key position
// always starts a flat pair, so the shapes never collide.
func nextBinding(bindings []plp.Object, i *int) (keyExpr, valExpr plp.Object, ok bool) {
	if pair, isList := plp.GetList(bindings[*i]); isList && len(pair) == 2 {
		if _, isSym := plp.GetSymbol(pair[0]); isSym {
			*i++
			return pair[0], pair[1], true
		}
	}
	if *i+1 >= len(bindings) {
		return nil, nil, false
	}
	keyExpr, valExpr = bindings[*i], bindings[*i+1]
	*i += 2
	return keyExpr, valExpr, true
}

// evalDo returns the tail expression to rewrite into, after evaluating
// every other expression for effect.
func evalDo(args []plp.Object, env *plp.Environment) (plp.Object, error) {
	if len(args) == 0 {
		return nil, perr.Syntaxf("operator 'do' expects at least 1 argument (got 0)")
	}
	for _, expr := range args[:len(args)-1] {
		if _, err := Eval(expr, env); err != nil {
			return nil, err
		}
	}
	return args[len(args)-1], nil
}

// evalIf returns the branch expression to rewrite into.
func evalIf(args []plp.Object, env *plp.Environment) (plp.Object, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, perr.Syntaxf("operator 'if' expects either 2 or 3 arguments (got %d)", len(args))
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if plp.IsTruthy(cond) {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return plp.Nil(), nil
}

func evalFn(args []plp.Object, env *plp.Environment) (plp.Object, error) {
	if len(args) != 2 {
		return nil, perr.Syntaxf("operator 'fn' expects 2 arguments (got %d)", len(args))
	}
	rawParams, ok := plp.GetList(args[0])
	if !ok {
		return nil, perr.Syntaxf("operator 'fn' expects arguments to be in a list")
	}
	params := make([]plp.Symbol, len(rawParams))
	for i, p := range rawParams {
		sym, ok := plp.GetSymbol(p)
		if !ok {
			return nil, perr.Syntaxf("operator 'fn' expects arguments to not be atoms; found: %s", p)
		}
		params[i] = sym
	}
	return &plp.Closure{Params: params, Body: args[1], Env: env}, nil
}

func evalWhile(args []plp.Object, env *plp.Environment) (plp.Object, error) {
	if len(args) < 2 {
		return nil, perr.Syntaxf("operator 'while' expects at least 2 arguments (got %d)", len(args))
	}
	cond := args[0]
	body := args[1:]
	child := plp.NewChildEnvironment(env)
	for {
		val, err := Eval(cond, child)
		if err != nil {
			return nil, err
		}
		if !plp.IsTruthy(val) {
			break
		}
		for _, expr := range body {
			if _, err := Eval(expr, child); err != nil {
				return nil, err
			}
		}
	}
	propagateLoopBindings(child, env)
	return plp.Nil(), nil
}

// propagateLoopBindings copies every name bound in child back into outer,
// but only names outer's own frame already held before the loop ran; a
// name that resolves only through an ancestor is left alone, and anything
// newly introduced inside the loop stays loop-local.
func propagateLoopBindings(child, outer *plp.Environment) {
	for _, key := range child.OwnKeys() {
		if _, existedBefore := outer.LookupOwn(key); existedBefore {
			val, _ := child.LookupOwn(key)
			outer.Bind(key, val)
		}
	}
}
