// Package registry maps type names to NodeType variants for one compilation
// unit, and links units together across import directives.
//
// A Registry starts pre-populated with the built-in variants (Nop, Die,
// Return, Out, the arithmetic/bitwise operators, the relational operators,
// and Use) and accumulates the unit's own user-defined graphs as they are
// declared. A Loader tracks the import relationship between units and
// detects cyclic imports before they can produce an infinite splice.
package registry
