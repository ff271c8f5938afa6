package ast

// ElementType tells which array a list element points into.
type ElementType uint8

// Element types
const (
	ElementList ElementType = iota
	ElementAtom
)

func (et ElementType) String() string {
	if et == ElementList {
		return "list"
	}
	return "atom"
}

// ListProperty is the semantic role of a list.
type ListProperty uint8

// List properties
const (
	ListInvalid ListProperty = iota
	ListGlobal
	ListFunction
	ListParamList
	ListParam
	ListStatementList
	ListIf
	ListWhile
	ListSet
	ListReturn
	ListCall
)

var listPropertyName = map[ListProperty]string{
	ListInvalid:       "invalid",
	ListGlobal:        "global",
	ListFunction:      "function",
	ListParamList:     "param_list",
	ListParam:         "param",
	ListStatementList: "statement_list",
	ListIf:            "if",
	ListWhile:         "while",
	ListSet:           "set",
	ListReturn:        "return",
	ListCall:          "call",
}

func (lp ListProperty) String() string {
	if s, ok := listPropertyName[lp]; ok {
		return s
	}
	return listPropertyName[ListInvalid]
}

// AtomProperty is the semantic role of an atom.
type AtomProperty uint8

// Atom properties
const (
	AtomInvalid AtomProperty = iota

	AtomKeywordFn
	AtomKeywordIf
	AtomKeywordWhile
	AtomKeywordSet
	AtomKeywordReturn

	AtomTypeInt
	AtomTypeFloat
	AtomTypeString
	AtomTypeBool

	AtomFunctionName
	AtomParameter
	AtomVariable
	AtomCallee

	AtomBool
	AtomInt
	AtomFloat
	AtomString
)

var atomPropertyName = map[AtomProperty]string{
	AtomInvalid:       "invalid",
	AtomKeywordFn:     "keyword_fn",
	AtomKeywordIf:     "keyword_if",
	AtomKeywordWhile:  "keyword_while",
	AtomKeywordSet:    "keyword_set",
	AtomKeywordReturn: "keyword_return",
	AtomTypeInt:       "type_int",
	AtomTypeFloat:     "type_float",
	AtomTypeString:    "type_string",
	AtomTypeBool:      "type_bool",
	AtomFunctionName:  "function_name",
	AtomParameter:     "parameter",
	AtomVariable:      "variable",
	AtomCallee:        "callee",
	AtomBool:          "bool",
	AtomInt:           "int",
	AtomFloat:         "float",
	AtomString:        "string",
}

func (ap AtomProperty) String() string {
	if s, ok := atomPropertyName[ap]; ok {
		return s
	}
	return atomPropertyName[AtomInvalid]
}

// IsLiteral returns true if the atom holds a literal value.
func (ap AtomProperty) IsLiteral() bool {
	return ap >= AtomBool && ap <= AtomString
}
