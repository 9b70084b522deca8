package core

import "strings"

// tokenKind is the syntactic category assigned to one raw argument.
type tokenKind int

const (
	tokenBare tokenKind = iota // positional, subcommand name, or option value
	tokenLong                  // --name or --name=value
	tokenCluster               // -abc, possibly with a condensed or =-attached value
	tokenTerminator            // bare --
)

// token is the classified form of one raw argument. For tokenLong, name is
// the text between the dashes and any "=" and value holds the attached
// value. For tokenCluster, name is everything after the dash, undecoded;
// condensed and =-attached values are carved out during cluster expansion.
type token struct {
	kind  tokenKind
	text  string
	name  string
	value string
	hasEq bool
}

// classify assigns a raw token its syntactic category. A lone "-" (the
// conventional stdin placeholder) and anything shaped like a negative
// number are bare words, never clusters.
func classify(raw string) token {
	switch {
	case raw == "--":
		return token{kind: tokenTerminator, text: raw}
	case strings.HasPrefix(raw, "--"):
		if name, value, ok := strings.Cut(raw[2:], "="); ok {
			return token{kind: tokenLong, text: raw, name: name, value: value, hasEq: true}
		}
		return token{kind: tokenLong, text: raw, name: raw[2:]}
	case raw == "-" || raw == "":
		return token{kind: tokenBare, text: raw}
	case strings.HasPrefix(raw, "-"):
		if raw[1] >= '0' && raw[1] <= '9' {
			return token{kind: tokenBare, text: raw}
		}
		return token{kind: tokenCluster, text: raw, name: raw[1:]}
	default:
		return token{kind: tokenBare, text: raw}
	}
}

// flaglike reports whether a raw token would be consumed as anything other
// than a plain value. It is the lookahead rule for option value
// consumption: evaluated without advancing the cursor.
func flaglike(raw string) bool {
	return classify(raw).kind != tokenBare
}
