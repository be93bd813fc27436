// Package variant derives the module-system and license variant from an
// answer record and picks the template sets to copy for it.
package variant

import (
	"fmt"
	"path"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
)

// ModuleKind is the module system of the generated package.
type ModuleKind int

const (
	CommonJS ModuleKind = iota
	ESModules
)

func (k ModuleKind) String() string {
	if k == ESModules {
		return "esmodules"
	}
	return "commonjs"
}

// LicenseKind tells whether a license file is generated.
type LicenseKind int

const (
	LicenseExcluded LicenseKind = iota
	LicenseIncluded
)

// Selection is the variant chosen for a record.
type Selection struct {
	Module  ModuleKind
	License LicenseKind
}

// Config is the read-only variant view handed to contributors.
type Config struct {
	ESModules bool
}

// Config returns the contributor view of the selection.
func (s Selection) Config() Config {
	return Config{ESModules: s.Module == ESModules}
}

// Select derives the variant from a record. An unknown package type is a
// ConfigurationError.
func Select(rec answers.Record) (Selection, error) {
	var sel Selection
	switch rec.PackageType {
	case answers.CommonJS:
		sel.Module = CommonJS
	case answers.Module:
		sel.Module = ESModules
	default:
		return Selection{}, unknownType(rec.PackageType)
	}
	if rec.IncludeLicense {
		sel.License = LicenseIncluded
	}
	return sel, nil
}

// CopyClass selects which entries of a source tree a template set copies.
//
// NormalFiles, DotFiles and DotDirectories partition every tree: a path
// belongs to DotDirectories when one of its directories starts with a dot,
// to DotFiles when only its base name does, and to NormalFiles otherwise.
type CopyClass int

const (
	NormalFiles CopyClass = iota
	DotFiles
	DotDirectories
	// AllEntries copies everything, hidden entries included.
	AllEntries
	// Templates renders every file with the answer record.
	Templates
)

func (c CopyClass) String() string {
	switch c {
	case NormalFiles:
		return "normal files"
	case DotFiles:
		return "dotfiles"
	case DotDirectories:
		return "dot directories"
	case AllEntries:
		return "all entries"
	case Templates:
		return "templates"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// TemplateSet is one copy step: entries of Source matching Class land
// under Dest (relative to the destination root).
type TemplateSet struct {
	Name   string
	Source string
	Class  CopyClass
	Dest   string
}

const (
	commonStructure = "common_structure"
	templateFiles   = "template_files"
)

// SelectTemplateSets returns the ordered template sets for a record:
// the common structure, the module-system specific set, then the
// rendered templates. It does no I/O.
func SelectTemplateSets(rec answers.Record) ([]TemplateSet, error) {
	if !rec.PackageType.Valid() {
		return nil, unknownType(rec.PackageType)
	}
	pkgType := string(rec.PackageType)

	sets := []TemplateSet{
		{Name: commonStructure, Source: commonStructure, Class: NormalFiles, Dest: "."},
		{Name: commonStructure, Source: commonStructure, Class: DotFiles, Dest: "."},
		{Name: commonStructure, Source: commonStructure, Class: DotDirectories, Dest: "."},
		{Name: pkgType, Source: pkgType, Class: NormalFiles, Dest: "."},
	}
	// Only the commonjs variant carries hidden files of its own.
	if rec.PackageType == answers.CommonJS {
		sets = append(sets, TemplateSet{Name: pkgType, Source: pkgType, Class: DotFiles, Dest: "."})
	}
	sets = append(sets, TemplateSet{
		Name:   templateFiles + "/" + pkgType,
		Source: path.Join(templateFiles, pkgType),
		Class:  Templates,
		Dest:   ".",
	})
	return sets, nil
}

func unknownType(t answers.PackageType) error {
	return &answers.ConfigurationError{
		Key:    answers.KeyPackageType,
		Value:  string(t),
		Reason: fmt.Sprintf("unknown package type (want %q or %q)", answers.CommonJS, answers.Module),
	}
}
