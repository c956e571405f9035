package token

var keywords = map[string]Kind{
	"macro":    KwMacro,
	"fn":       KwFn,
	"function": KwFunction,
	"constant": KwConstant,
	"takes":    KwTakes,
	"returns":  KwReturns,
}

var directives = map[string]Kind{
	"#include": HashInclude,
	"#define":  HashDefine,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupDirective returns the directive kind for a '#'-prefixed word.
func LookupDirective(word string) (Kind, bool) {
	k, ok := directives[word]
	return k, ok
}
