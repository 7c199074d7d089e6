package syntax

const (
	maxOperatorLen = 6
	maxKeywordLen  = 21
)

var operators = setOf(
	"::", "++", "--", "(", ")", "[", "]", ".", "->",
	"~", "!", "+", "-", "&", "*", "new", "delete", "sizeof",
	"%", "/", ">>", "<<", ">", "<", "<=", ">=", "==", "=",
	"^", "|", "||", "&&", "*=", "/=", "%=", "+=", "-=", ">>=",
	"<<=", "&=", "^=", "|=", "?", ":", ",",
)

var punctuators = setOf(";", "{", "}", "#", "\\", "@", "$", "`")

var keywords = setOf(
	"__abstract", "__alignof", "__asm", "__assume", "__based", "__box", "__cdecl",
	"__declspec", "__delegate", "__event", "__except", "__fastcall", "__finally",
	"__forceinline", "__gc", "__hook", "__identifier", "__if_exists", "__if_not_exists",
	"__inline", "__int16", "__int32", "__int64", "__int8", "__interface", "__leave",
	"__m128", "__m128d", "__m128i", "__m64", "__multiple_inheritance", "__nogc",
	"__noop", "__pin", "__property", "__raise", "__sealed", "__single_inheritance",
	"__stdcall", "__super", "__thiscall", "__try", "__try_cast", "__unaligned",
	"__unhook", "__uuidof", "__value", "__virtual_inheritance", "__w64", "__wchar_t",
	"wchar_t", "abstract", "array", "auto", "bool", "break", "case", "catch", "char",
	"class", "const", "const_cast", "continue", "decltype", "default", "delegate",
	"delete", "deprecated", "dllexport", "dllimport", "do", "double", "dynamic_cast",
	"else", "enum", "struct", "event", "explicit", "extern", "false", "finally",
	"float", "for", "each", "in", "friend", "friend_as", "gcnew", "generic", "goto",
	"if", "initonly", "inline", "int", "interface", "interior_ptr", "literal", "long",
	"mutable", "naked", "namespace", "new", "noinline", "noreturn", "nothrow",
	"novtable", "nullptr", "operator", "private", "property", "protected", "public",
	"ref", "register", "reinterpret_cast", "return", "safecast", "sealed",
	"selectany", "short", "signed", "sizeof", "static", "static_assert",
	"static_cast", "switch", "template", "this", "thread", "throw", "true", "try",
	"typedef", "typeid", "typename", "union", "unsigned", "using", "declaration",
	"directive", "uuid", "value",
	"virtual", "void", "volatile", "while",
)

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
