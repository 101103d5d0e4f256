package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntax
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynUnclosedParen    Code = 2003
	SynExpectIdentifier Code = 2004
	SynBadAssignTarget  Code = 2005
	SynTrailingInput    Code = 2006
	SynEmptyCall        Code = 2007

	// Evaluation
	EvalInfo              Code = 3000
	EvalDivisionByZero    Code = 3001
	EvalUndefinedVariable Code = 3002
	EvalUnknownFunction   Code = 3003
	EvalBadArity          Code = 3004
	EvalBadExponent       Code = 3005

	// I/O
	IOLoadFileError Code = 4000

	// Project configuration
	CfgInvalidManifest Code = 5000
	CfgUnknownKey      Code = 5001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown diagnostic",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "unknown character",
	LexBadNumber:          "malformed number literal",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "unexpected token",
	SynExpectExpression:   "expected an expression",
	SynUnclosedParen:      "unclosed parenthesis",
	SynExpectIdentifier:   "expected an identifier",
	SynBadAssignTarget:    "assignment target must be an identifier",
	SynTrailingInput:      "trailing input after expression",
	SynEmptyCall:          "call argument must not be empty",
	EvalInfo:              "Evaluation information",
	EvalDivisionByZero:    "division by zero",
	EvalUndefinedVariable: "undefined variable",
	EvalUnknownFunction:   "unknown function",
	EvalBadArity:          "wrong number of arguments",
	EvalBadExponent:       "invalid exponent",
	IOLoadFileError:       "I/O load file error",
	CfgInvalidManifest:    "invalid project manifest",
	CfgUnknownKey:         "unknown manifest key",
	ObsInfo:               "Observability information",
	ObsTimings:            "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
