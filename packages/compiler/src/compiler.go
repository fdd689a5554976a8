// Package compiler ties the markup pipeline together: tokenize and parse a
// source, generate its construction program, and optionally run it against
// an expression evaluator to obtain a virtual-DOM tree.
package compiler

import (
	"hmc-go/packages/compiler/src/config"
	"hmc-go/packages/compiler/src/markup_parser"
	"hmc-go/packages/compiler/src/program"
	"hmc-go/packages/compiler/src/vdom"
)

// Compiler compiles markup sources
type Compiler struct {
	config *config.CompilerConfig
}

// NewCompiler creates a new compiler instance
func NewCompiler(opts ...config.CompilerConfigOption) *Compiler {
	return &Compiler{config: config.NewCompilerConfig(opts...)}
}

// Compile parses one source and returns its construction program
func (c *Compiler) Compile(source, url string) (program.Program, error) {
	node, err := c.parse(source, url)
	if err != nil {
		return nil, err
	}
	return program.Generate(node), nil
}

// Render compiles one source and runs the program with the given evaluator
func (c *Compiler) Render(source, url string, eval program.ExprEvaluator) (vdom.VNode, error) {
	prog, err := c.Compile(source, url)
	if err != nil {
		return nil, err
	}
	return program.Run(prog, eval)
}

func (c *Compiler) parse(source, url string) (markup_parser.Node, error) {
	if c.config.Nested {
		node, err := markup_parser.ParseNested(source, url)
		if err != nil {
			return nil, err
		}
		return node, nil
	}
	node, err := markup_parser.Parse(source, url)
	if err != nil {
		return nil, err
	}
	return node, nil
}
