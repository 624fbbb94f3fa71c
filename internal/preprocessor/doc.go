// Package preprocessor applies math escaping to a whole book on behalf of
// mdBook. It owns the renderer capability answer and the host version check;
// the text rewriting itself lives in package mathescape.
package preprocessor
