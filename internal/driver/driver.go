// Package driver wires the pipeline: lex, parse, nesting, layout, rules,
// and optionally format. Source text arrives in memory; the driver never
// touches a filesystem.
package driver

import (
	"path"

	"hufflint/internal/align"
	"hufflint/internal/ast"
	"hufflint/internal/config"
	"hufflint/internal/diag"
	"hufflint/internal/lexer"
	"hufflint/internal/nest"
	"hufflint/internal/parser"
	"hufflint/internal/rules"
	"hufflint/internal/source"
)

// Input is one batch of work: full source text per file identifier, plus
// the already-resolved include edges (who includes whom). Edges are
// optional; without them include targets outside the batch stay unknown.
type Input struct {
	Files    map[string]string
	Includes map[string][]string
}

// Result is the analysis outcome for one file. File is nil when lexing
// or parsing failed; the Bag then ends with the fatal diagnostic and the
// file contributed no rule findings.
type Result struct {
	Name   string
	FileID source.FileID
	Bag    *diag.Bag
	File   *ast.File
}

// Fatal reports whether the file could not be analyzed.
func (r Result) Fatal() bool { return r.File == nil }

// parseOne runs the front half of the pipeline for one file.
func parseOne(fs *source.FileSet, fileID source.FileID, bag *diag.Bag) *ast.File {
	reporter := diag.BagReporter{Bag: bag}
	src := fs.Get(fileID)

	toks, err := lexer.Tokenize(src, lexer.Options{Reporter: reporter})
	if err != nil {
		return nil
	}
	file, err := parser.ParseFile(fs, fileID, toks, parser.Options{Reporter: reporter})
	if err != nil {
		return nil
	}
	return file
}

// checkOne runs the back half: derive nesting and layout per scope, then
// the rule engine. The configuration's rule filter and severity
// overrides apply to everything, the nesting findings included.
func checkOne(fs *source.FileSet, cfg *config.Config, res Result, library map[string]bool) {
	src := fs.Get(res.FileID)
	reporter := diag.BagReporter{Bag: res.Bag}
	policy := rules.Policy(cfg, reporter)

	ctx := &rules.Context{
		FS:      fs,
		Src:     src,
		File:    res.File,
		Cfg:     cfg,
		Nesting: make(map[*ast.Decl]nest.Result),
		Layout:  make(map[*ast.Decl]align.Result),
		Library: library,
	}
	for _, decl := range res.File.Decls {
		if decl.Body == nil {
			continue
		}
		depths := nest.Compute(decl.Body, policy)
		ctx.Nesting[decl] = depths
		ctx.Layout[decl] = align.Compute(src, decl.Body, depths, cfg.BaseIndentWidth)
	}

	rules.Run(ctx, rules.All(), reporter)
	res.Bag.Sort()
}

// libraryRoles classifies every parsed batch file: a file with no MAIN
// and no CONSTRUCTOR plays the library role. Roles are keyed by base
// name, the form the include-naming rule looks up. Unparsed files get
// no entry and stay unknown.
//
// The include edges let a caller whose file identifiers differ from the
// include-path bases still get roles resolved: the n-th edge of a file
// names the target of its n-th include directive, so the target's role
// is registered under the directive's base name too.
func libraryRoles(results []Result, includes map[string][]string) map[string]bool {
	byName := make(map[string]bool, len(results))
	roles := make(map[string]bool, len(results))
	for _, r := range results {
		if r.File == nil {
			continue
		}
		isLib := !hasEntryPoint(r.File)
		byName[r.Name] = isLib
		roles[path.Base(r.Name)] = isLib
	}
	for _, r := range results {
		if r.File == nil {
			continue
		}
		edges := includes[r.Name]
		if len(edges) == 0 {
			continue
		}
		i := 0
		for _, decl := range r.File.Decls {
			if decl.Kind != ast.DeclInclude {
				continue
			}
			if i >= len(edges) {
				break
			}
			if isLib, ok := byName[edges[i]]; ok {
				roles[path.Base(decl.IncludePath)] = isLib
			}
			i++
		}
	}
	return roles
}

func hasEntryPoint(file *ast.File) bool {
	for _, decl := range file.Decls {
		if decl.Kind == ast.DeclMain || decl.Kind == ast.DeclConstructor {
			return true
		}
	}
	return false
}
