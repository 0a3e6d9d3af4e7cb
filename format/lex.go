package format

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	pairTerminatorToken = iota
	quotedValueToken
)

var (
	//pairTerminatorMatcher matches key=value up to and including ','
	pairTerminatorMatcher = parsly.NewToken(pairTerminatorToken, "key=value,", matcher.NewTerminator(',', true))
	//quotedValueMatcher matches {key=value} pair whose value may contain ','
	quotedValueMatcher = parsly.NewToken(quotedValueToken, "{key=value}", matcher.NewBlock('{', '}', '\\'))
)
