// Package batch loads rotation and path jobs from HCL files and runs them
// concurrently.
//
// A batch file holds `rotate` and `path` blocks, each labelled with a unique
// job name, and optional `locals` blocks whose values are visible to the
// jobs of the same file as `local.<name>`. Jobs keep their declaration
// order in the output regardless of which worker finishes first.
package batch
