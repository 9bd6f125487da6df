package masker

// reservedWords holds C keywords, preprocessor keywords and common standard
// library identifiers. Names in this set are never keyed into a conversion
// table. The set is immutable for the process lifetime.
var reservedWords = map[string]bool{
	// basic types
	"int": true, "char": true, "short": true, "long": true, "float": true,
	"double": true, "void": true, "signed": true, "unsigned": true,
	// control flow
	"if": true, "else": true, "switch": true, "case": true, "default": true,
	"break": true, "continue": true, "for": true, "while": true, "do": true,
	"goto": true, "return": true,
	// storage classes
	"auto": true, "register": true, "static": true, "extern": true, "typedef": true,
	// qualifiers
	"const": true, "volatile": true, "restrict": true,
	// misc
	"struct": true, "union": true, "enum": true, "sizeof": true, "inline": true,
	// C99
	"_Bool": true, "_Complex": true, "_Imaginary": true,
	// C11
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Static_assert": true,
	"_Noreturn": true, "_Thread_local": true, "_Generic": true,
	// preprocessor keywords
	"define": true, "include": true, "undef": true, "ifdef": true, "ifndef": true,
	"endif": true, "elif": true, "pragma": true, "error": true, "defined": true,
	// common libc identifiers
	"printf": true, "scanf": true, "malloc": true, "calloc": true, "realloc": true,
	"free": true, "memcpy": true, "memmove": true, "memset": true, "memcmp": true,
	"strlen": true, "strcpy": true, "strncpy": true, "strcmp": true, "strncmp": true,
	"strcat": true, "strncat": true, "strchr": true, "strstr": true,
	"sprintf": true, "snprintf": true, "sscanf": true, "puts": true, "putchar": true,
	"getchar": true, "gets": true, "fgets": true, "fputs": true,
	"fopen": true, "fclose": true, "fread": true, "fwrite": true, "fprintf": true,
	"fscanf": true, "fseek": true, "ftell": true, "rewind": true, "feof": true,
	"exit": true, "abort": true, "atoi": true, "atof": true, "atol": true,
	"rand": true, "srand": true, "abs": true, "labs": true,
	"isdigit": true, "isalpha": true, "isalnum": true, "isspace": true,
	"toupper": true, "tolower": true,
	"NULL": true, "EOF": true, "FILE": true, "size_t": true, "ssize_t": true,
	"stdin": true, "stdout": true, "stderr": true,
	"true": true, "false": true, "bool": true,
	"int8_t": true, "int16_t": true, "int32_t": true, "int64_t": true,
	"uint8_t": true, "uint16_t": true, "uint32_t": true, "uint64_t": true,
	"intptr_t": true, "uintptr_t": true, "ptrdiff_t": true,
}

// IsReserved reports whether name is a C keyword, preprocessor keyword or a
// recognized standard library identifier.
func IsReserved(name string) bool {
	return reservedWords[name]
}
