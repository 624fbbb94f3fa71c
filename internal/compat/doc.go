// Package compat decides whether the mdBook invoking the preprocessor is
// compatible with the version it was built against, using caret semantics.
package compat
