// Package mathescape prepares math regions of chapter text for MathJax.
//
// Inside "$$...$$" and "$...$" regions, backslash pairs are doubled and
// underscores are escaped so the Markdown renderer hands the math to MathJax
// unchanged. Text outside regions is left as is, and "\$" is never treated
// as a region boundary.
package mathescape
