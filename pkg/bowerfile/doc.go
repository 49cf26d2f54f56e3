// Package bowerfile reads, validates, and normalizes bower.json package
// manifests. It is the manifest layer of a package manager: given a
// directory or file path it locates the manifest (handling the shared
// component.json filename and the hidden .bower.json fallback), parses it,
// and checks it against the bower naming and structural rules.
package bowerfile
