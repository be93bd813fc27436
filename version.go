// Package hatch scaffolds npm package skeletons: it copies template files,
// merges a package.json and runs a fixed pipeline of tooling contributors.
package hatch

// Version is the hatch release reported by `hatch --version`.
const Version = "0.3.0"
