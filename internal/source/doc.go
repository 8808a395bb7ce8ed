// Package source reads and writes project version strings embedded in
// source files: packaging descriptors (setup.py), READMEs, Python module
// initializers (__init__.py), and structured manifests (pyproject.toml,
// package.json). Extraction and mutation go through an injected filesystem
// so the package can be exercised in-memory in tests.
package source
